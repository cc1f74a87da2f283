package postgres

import (
	"context"
	"time"

	"knect/internal/domain/entity"
	domainerrors "knect/internal/domain/errors"
	"knect/internal/domain/repository"
	"knect/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileUpsertColumns are overwritten when a profile row already exists. avatar_url has its own
// write path and is never touched by a profile save.
var profileUpsertColumns = []string{"full_name", "job_title", "linkedin", "github", "twitter", "instagram", "updated_at"}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by id")
	}

	return toProfileDomain(&profileM), nil
}

func (repo *profileRepository) Upsert(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)
	profileM.UpdatedAt = time.Now().UTC()

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(profileUpsertColumns),
		}).
		Create(profileM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("profile owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

func (repo *profileRepository) UpdateAvatarURL(ctx context.Context, id uuid.UUID, avatarURL string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"avatar_url": avatarURL, "updated_at": time.Now().UTC()})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update avatar url")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:        data.ID,
		FullName:  data.FullName,
		JobTitle:  data.JobTitle,
		AvatarURL: data.AvatarURL,
		LinkedIn:  data.LinkedIn,
		GitHub:    data.GitHub,
		Twitter:   data.Twitter,
		Instagram: data.Instagram,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:        data.ID,
		FullName:  data.FullName,
		JobTitle:  data.JobTitle,
		AvatarURL: data.AvatarURL,
		LinkedIn:  data.LinkedIn,
		GitHub:    data.GitHub,
		Twitter:   data.Twitter,
		Instagram: data.Instagram,
		UpdatedAt: data.UpdatedAt,
	}
}

package postgres

import (
	"context"
	"strings"
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

const connectionViewSelect = `connections.id, connections.connector_id, connections.connected_to_id,
connections.met_at, connections.latitude, connections.longitude,
COALESCE(profiles.full_name, '') AS full_name, COALESCE(profiles.job_title, '') AS job_title,
profiles.avatar_url AS avatar_url`

const counterpartJoin = "LEFT JOIN profiles ON profiles.id = connections.connected_to_id"

// connectionViewRow is the scan target of a connection joined with the counterpart profile.
type connectionViewRow struct {
	ID            uuid.UUID
	ConnectorID   uuid.UUID
	ConnectedToID uuid.UUID
	MetAt         time.Time
	Latitude      *float64
	Longitude     *float64
	FullName      string
	JobTitle      string
	AvatarURL     *string
}

type connectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository is the constructor for connectionRepository.
func NewConnectionRepository(db *gorm.DB) repository.ConnectionRepository {
	return &connectionRepository{
		db: db,
	}
}

// UpsertPair writes both rows one statement at a time so each RETURNING id maps to its row.
// Callers that need atomicity run it inside TransactionManager.Execute.
func (repo *connectionRepository) UpsertPair(ctx context.Context, pair [2]entity.Connection) ([2]entity.Connection, error) {
	var stored [2]entity.Connection

	for i := range pair {
		connM := fromConnectionDomain(&pair[i])
		connM.ID = uuid.Nil

		if err := repo.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "connector_id"}, {Name: "connected_to_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"met_at", "latitude", "longitude", "updated_at"}),
			}).
			Create(connM).Error; err != nil {
			if isForeignKeyConstraintViolation(err) {
				return stored, domainerrors.ErrUnknownUser.WrapMessage("connection references an unknown user")
			}
			if isCheckConstraintViolation(err) {
				return stored, domainerrors.ErrInvalidPair.WrapMessage("connection violates table constraints")
			}

			return stored, domainerrors.NewDatabaseExecuteError(err, "failed to upsert connection")
		}

		stored[i] = *toConnectionDomain(connM)
	}

	return stored, nil
}

func (repo *connectionRepository) Exists(ctx context.Context, connectorID, connectedToID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ConnectionModel{}).
		Where("connector_id = ? AND connected_to_id = ?", connectorID, connectedToID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check connection existence")
	}

	return count > 0, nil
}

func (repo *connectionRepository) ListByConnector(ctx context.Context, connectorID uuid.UUID, filter repository.ConnectionFilter) ([]*entity.ConnectionView, error) {
	var rows []connectionViewRow

	query := repo.db.WithContext(ctx).
		Model(&model.ConnectionModel{}).
		Select(connectionViewSelect).
		Joins(counterpartJoin).
		Where("connections.connector_id = ?", connectorID)

	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + escapeLike(q) + "%"
		query = query.Where("(profiles.full_name ILIKE ? OR profiles.job_title ILIKE ?)", pattern, pattern)
	}

	if err := query.
		Order("connections.met_at DESC").
		Order("connections.id").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list connections")
	}

	views := make([]*entity.ConnectionView, 0, len(rows))
	for i := range rows {
		views = append(views, rows[i].toDomain())
	}

	return views, nil
}

func (repo *connectionRepository) FindOwned(ctx context.Context, connectorID, id uuid.UUID) (*entity.ConnectionView, error) {
	var rows []connectionViewRow

	if err := repo.db.WithContext(ctx).
		Model(&model.ConnectionModel{}).
		Select(connectionViewSelect).
		Joins(counterpartJoin).
		Where("connections.id = ? AND connections.connector_id = ?", id, connectorID).
		Limit(1).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find connection")
	}

	if len(rows) == 0 {
		return nil, repository.ErrConnectionNotFound
	}

	return rows[0].toDomain(), nil
}

func (repo *connectionRepository) DeleteOwned(ctx context.Context, connectorID, id uuid.UUID) (*entity.Connection, error) {
	var deleted []model.ConnectionModel

	result := repo.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ? AND connector_id = ?", id, connectorID).
		Delete(&deleted)

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to delete connection")
	}

	if result.RowsAffected == 0 || len(deleted) == 0 {
		return nil, repository.ErrConnectionNotFound
	}

	return toConnectionDomain(&deleted[0]), nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// --- Mapper Functions ---

func (r *connectionViewRow) toDomain() *entity.ConnectionView {
	return &entity.ConnectionView{
		Connection: entity.Connection{
			ID:            r.ID,
			ConnectorID:   r.ConnectorID,
			ConnectedToID: r.ConnectedToID,
			MetAt:         r.MetAt.UTC(),
			Latitude:      r.Latitude,
			Longitude:     r.Longitude,
		},
		FullName:  r.FullName,
		JobTitle:  r.JobTitle,
		AvatarURL: r.AvatarURL,
	}
}

func toConnectionDomain(data *model.ConnectionModel) *entity.Connection {
	if data == nil {
		return nil
	}

	return &entity.Connection{
		ID:            data.ID,
		ConnectorID:   data.ConnectorID,
		ConnectedToID: data.ConnectedToID,
		MetAt:         data.MetAt.UTC(),
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
	}
}

func fromConnectionDomain(data *entity.Connection) *model.ConnectionModel {
	if data == nil {
		return nil
	}

	return &model.ConnectionModel{
		ID:            data.ID,
		ConnectorID:   data.ConnectorID,
		ConnectedToID: data.ConnectedToID,
		MetAt:         data.MetAt,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
	}
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. ID is the owning user's id.
type ProfileModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	FullName  string    `gorm:"type:varchar(100);not null;default:''"`
	JobTitle  string    `gorm:"type:varchar(100);not null;default:''"`
	AvatarURL *string   `gorm:"type:text"`
	LinkedIn  string    `gorm:"column:linkedin;type:varchar(255);not null;default:''"`
	GitHub    string    `gorm:"column:github;type:varchar(255);not null;default:''"`
	Twitter   string    `gorm:"type:varchar(255);not null;default:''"`
	Instagram string    `gorm:"type:varchar(255);not null;default:''"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

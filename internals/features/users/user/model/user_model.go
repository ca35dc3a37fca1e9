package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rayto1224/ksbc-web/internals/constants"
)

type UserModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;primaryKey" json:"user_id"`
	UserName     string    `gorm:"column:user_name;size:50;not null"  json:"user_name"`
	UserEmail    string    `gorm:"column:user_email;size:255;not null" json:"user_email"`
	UserPassword string    `gorm:"column:user_password;size:255;not null" json:"-"`
	UserRole     string    `gorm:"column:user_role;type:varchar(20);not null;default:'user'" json:"user_role"`
	UserIsActive bool      `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`

	// NOTE: unique email (case-insensitive) lives in the migration:
	// CREATE UNIQUE INDEX ux_users_email_lower ON users (LOWER(user_email));
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	if u.UserRole == "" {
		u.UserRole = constants.RoleUser
	}
	return nil
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenBlacklistModel holds revoked access tokens until they expire.
type TokenBlacklistModel struct {
	TokenBlacklistID        uuid.UUID `gorm:"column:token_blacklist_id;primaryKey" json:"token_blacklist_id"`
	TokenBlacklistToken     string    `gorm:"column:token_blacklist_token;not null" json:"token_blacklist_token"`
	TokenBlacklistExpiresAt time.Time `gorm:"column:token_blacklist_expires_at;not null" json:"token_blacklist_expires_at"`

	TokenBlacklistCreatedAt time.Time      `gorm:"column:token_blacklist_created_at;autoCreateTime" json:"token_blacklist_created_at"`
	TokenBlacklistDeletedAt gorm.DeletedAt `gorm:"column:token_blacklist_deleted_at;index" json:"token_blacklist_deleted_at,omitempty"`
}

func (TokenBlacklistModel) TableName() string {
	return "token_blacklist"
}

func (t *TokenBlacklistModel) BeforeCreate(tx *gorm.DB) error {
	if t.TokenBlacklistID == uuid.Nil {
		t.TokenBlacklistID = uuid.New()
	}
	return nil
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is one issued refresh token. Only the SHA-256 hash of the
// opaque value is stored; the raw token lives solely in the client cookie.
// Rows are flipped to revoked on rotation or logout and never deleted.
type RefreshToken struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	TokenHash string    `gorm:"uniqueIndex;not null;size:64" json:"-"`
	Revoked   bool      `gorm:"not null;default:false" json:"revoked"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

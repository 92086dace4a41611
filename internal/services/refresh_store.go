package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/drivehub/carrental/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// refreshTokenBytes gives 64 bytes of entropy per token, enough that
// collisions and guessing are both out of reach.
const refreshTokenBytes = 64

// RefreshTokenStore persists opaque refresh tokens. Only the SHA-256 hash
// of a token is written to the database; rows are revoked, never deleted.
type RefreshTokenStore struct {
	ttl time.Duration
}

func NewRefreshTokenStore(ttl time.Duration) *RefreshTokenStore {
	return &RefreshTokenStore{ttl: ttl}
}

// Generate returns a new opaque refresh token.
func (s *RefreshTokenStore) Generate() (string, error) {
	raw := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.URLEncoding.EncodeToString(raw), nil
}

// Create persists a new live token record for the user.
func (s *RefreshTokenStore) Create(db *gorm.DB, userID uuid.UUID, rawToken string) (*models.RefreshToken, error) {
	record := models.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: hashToken(rawToken),
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if err := db.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}
	return &record, nil
}

// Consume atomically revokes the token if it is still live and returns its
// record. Unknown, expired and already-revoked tokens are indistinguishable
// to the caller. The guarded UPDATE serializes concurrent rotation attempts
// against the same token: exactly one caller observes a live row.
func (s *RefreshTokenStore) Consume(db *gorm.DB, rawToken string) (*models.RefreshToken, error) {
	tokenHash := hashToken(rawToken)

	res := db.Model(&models.RefreshToken{}).
		Where("token_hash = ? AND revoked = ? AND expires_at > ?", tokenHash, false, time.Now()).
		Update("revoked", true)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrInvalidToken
	}

	var record models.RefreshToken
	if err := db.Where("token_hash = ?", tokenHash).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return &record, nil
}

// Revoke marks the token revoked if it is still live. Revoking a dead or
// unknown token reports ErrInvalidToken.
func (s *RefreshTokenStore) Revoke(db *gorm.DB, rawToken string) error {
	_, err := s.Consume(db, rawToken)
	return err
}

// TTL is the configured refresh-token lifetime.
func (s *RefreshTokenStore) TTL() time.Duration {
	return s.ttl
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}

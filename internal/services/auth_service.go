package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/drivehub/carrental/internal/config"
	"github.com/drivehub/carrental/internal/dto"
	"github.com/drivehub/carrental/internal/models"
	"github.com/drivehub/carrental/internal/security"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
)

// TokenPair is the result of a successful login or refresh. The access
// token goes in the response body, the refresh token in an HttpOnly cookie.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	RefreshExpiresAt time.Time
}

type AuthService struct {
	db     *gorm.DB
	issuer *security.TokenIssuer
	tokens *RefreshTokenStore
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{
		db:     db,
		issuer: security.NewTokenIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTAccessExpiry),
		tokens: NewRefreshTokenStore(cfg.JWTRefreshExpiry),
	}
}

func (s *AuthService) Register(req *dto.RegisterRequest) error {
	if req.Email == "" || req.UserName == "" || len(req.Password) < 8 {
		return errors.New("email and username are required and password must be at least 8 characters")
	}

	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return ErrEmailTaken
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.New(),
		Email:    req.Email,
		UserName: req.UserName,
		Password: hash,
		Role:     models.RoleUser,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Login verifies credentials and issues a fresh token pair. Unknown email
// and wrong password are reported identically.
func (s *AuthService) Login(req *dto.LoginRequest) (*TokenPair, error) {
	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if !security.CheckPassword(user.Password, req.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokenPair(s.db, &user)
}

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued in the same transaction, so a replayed token fails closed
// and a crash cannot leave the session without a live token.
func (s *AuthService) Refresh(rawToken string) (*TokenPair, error) {
	var pair *TokenPair

	err := s.db.Transaction(func(tx *gorm.DB) error {
		record, err := s.tokens.Consume(tx, rawToken)
		if err != nil {
			return err
		}

		var user models.User
		if err := tx.First(&user, "id = ?", record.UserID).Error; err != nil {
			return fmt.Errorf("user not found for refresh token: %w", err)
		}

		pair, err = s.issueTokenPair(tx, &user)
		return err
	})
	if err != nil {
		return nil, err
	}
	return pair, nil
}

// Logout revokes the presented refresh token. A dead or unknown token
// reports ErrInvalidToken; the missing-cookie case never reaches here.
func (s *AuthService) Logout(rawToken string) error {
	return s.tokens.Revoke(s.db, rawToken)
}

func (s *AuthService) issueTokenPair(db *gorm.DB, user *models.User) (*TokenPair, error) {
	accessToken, err := s.issuer.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	rawRefresh, err := s.tokens.Generate()
	if err != nil {
		return nil, err
	}

	record, err := s.tokens.Create(db, user.ID, rawRefresh)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     rawRefresh,
		RefreshExpiresAt: record.ExpiresAt,
	}, nil
}

package security

import (
	"errors"
	"time"

	"github.com/drivehub/carrental/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidAccessToken = errors.New("invalid or expired access token")

// AccessClaims is the claim set carried by an access token.
type AccessClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer mints and verifies HS256 access tokens. The signing key,
// issuer and audience are fixed per deployment and must match on both ends.
type TokenIssuer struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

func NewTokenIssuer(secret, issuer, audience string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
	}
}

// Issue signs an access token for the given user identity, expiring at
// now + the configured access lifetime.
func (ti *TokenIssuer) Issue(userID uuid.UUID, email string, role models.Role) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		Email: email,
		Role:  role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    ti.issuer,
			Audience:  jwt.ClaimStrings{ti.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ti.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ti.secret)
}

// Verify parses and validates a signed token. Bad signature, wrong
// issuer/audience and expiry are all reported as the same error.
func (ti *TokenIssuer) Verify(tokenString string) (*AccessClaims, error) {
	return ti.verifyAt(tokenString, time.Now)
}

func (ti *TokenIssuer) verifyAt(tokenString string, now func() time.Time) (*AccessClaims, error) {
	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidAccessToken
			}
			return ti.secret, nil
		},
		jwt.WithIssuer(ti.issuer),
		jwt.WithAudience(ti.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidAccessToken
	}

	return claims, nil
}

package middleware

import (
	"errors"

	"github.com/drivehub/carrental/internal/config"
	"github.com/drivehub/carrental/internal/dto"
	"github.com/drivehub/carrental/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const identityKey = "identity"

// Identity is the caller extracted from a verified access token.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   models.Role
}

// RequireIdentity runs after JWTProtected. It validates issuer and
// audience and parses the subject, email and role claims; any mismatch is
// a uniform 401.
func RequireIdentity(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ident, err := identityFromToken(c, cfg)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized: invalid or expired token",
			})
		}

		c.Locals(identityKey, ident)
		return c.Next()
	}
}

// CurrentIdentity returns the identity stored by RequireIdentity.
func CurrentIdentity(c *fiber.Ctx) (Identity, error) {
	ident, ok := c.Locals(identityKey).(Identity)
	if !ok {
		return Identity{}, errors.New("no identity in context")
	}
	return ident, nil
}

func identityFromToken(c *fiber.Ctx, cfg *config.Config) (Identity, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return Identity{}, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, errors.New("invalid claims")
	}

	if iss, err := claims.GetIssuer(); err != nil || iss != cfg.JWTIssuer {
		return Identity{}, errors.New("issuer mismatch")
	}

	aud, err := claims.GetAudience()
	if err != nil || !containsAudience(aud, cfg.JWTAudience) {
		return Identity{}, errors.New("audience mismatch")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return Identity{}, errors.New("missing sub claim")
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return Identity{}, errors.New("malformed sub claim")
	}

	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return Identity{
		UserID: userID,
		Email:  email,
		Role:   models.ParseRole(role),
	}, nil
}

func containsAudience(aud jwt.ClaimStrings, want string) bool {
	for _, a := range aud {
		if a == want {
			return true
		}
	}
	return false
}

package security

import (
	"testing"
	"time"

	"github.com/drivehub/carrental/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret   = "0123456789abcdef0123456789abcdef"
	testIssuer   = "CarRentalAPI"
	testAudience = "CarRentalClient"
)

func newTestIssuer(ttl time.Duration) *TokenIssuer {
	return NewTokenIssuer(testSecret, testIssuer, testAudience, ttl)
}

func TestTokenIssuer_IssueAndVerify(t *testing.T) {
	ti := newTestIssuer(15 * time.Minute)
	userID := uuid.New()

	token, err := ti.Issue(userID, "alice@example.com", models.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ti.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.Contains(t, claims.Audience, testAudience)
}

func TestTokenIssuer_ExpiryBoundary(t *testing.T) {
	ti := newTestIssuer(15 * time.Minute)

	token, err := ti.Issue(uuid.New(), "bob@example.com", models.RoleUser)
	require.NoError(t, err)

	claims, err := ti.Verify(token)
	require.NoError(t, err)
	expiry := claims.ExpiresAt.Time

	// Accepted strictly before expiry.
	_, err = ti.verifyAt(token, func() time.Time { return expiry.Add(-time.Second) })
	assert.NoError(t, err)

	// Rejected at the exact expiry instant and any time after.
	_, err = ti.verifyAt(token, func() time.Time { return expiry })
	assert.ErrorIs(t, err, ErrInvalidAccessToken)

	_, err = ti.verifyAt(token, func() time.Time { return expiry.Add(time.Hour) })
	assert.ErrorIs(t, err, ErrInvalidAccessToken)
}

func TestTokenIssuer_RejectsForeignTokens(t *testing.T) {
	ti := newTestIssuer(15 * time.Minute)
	userID := uuid.New()

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenIssuer("another-secret-another-secret!!!", testIssuer, testAudience, 15*time.Minute)
		token, err := other.Issue(userID, "c@example.com", models.RoleUser)
		require.NoError(t, err)

		_, err = ti.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidAccessToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := NewTokenIssuer(testSecret, "SomeoneElse", testAudience, 15*time.Minute)
		token, err := other.Issue(userID, "c@example.com", models.RoleUser)
		require.NoError(t, err)

		_, err = ti.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidAccessToken)
	})

	t.Run("wrong audience", func(t *testing.T) {
		other := NewTokenIssuer(testSecret, testIssuer, "SomeOtherClient", 15*time.Minute)
		token, err := other.Issue(userID, "c@example.com", models.RoleUser)
		require.NoError(t, err)

		_, err = ti.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidAccessToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ti.Verify("not.a.jwt")
		assert.ErrorIs(t, err, ErrInvalidAccessToken)
	})
}

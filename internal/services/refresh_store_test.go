package services_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/drivehub/carrental/internal/models"
	"github.com/drivehub/carrental/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshTokenStore_GenerateUnique(t *testing.T) {
	store := services.NewRefreshTokenStore(time.Hour)

	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		token, err := store.Generate()
		require.NoError(t, err)
		require.NotEmpty(t, token)

		_, dup := seen[token]
		require.False(t, dup, "duplicate token generated")
		seen[token] = struct{}{}
	}
}

func TestRefreshTokenStore_CreateAndConsume(t *testing.T) {
	db := newTestDB(t)
	store := services.NewRefreshTokenStore(24 * time.Hour)
	user := seedUser(t, db, "a@x.com", "password1", models.RoleUser)

	raw, err := store.Generate()
	require.NoError(t, err)

	record, err := store.Create(db, user.ID, raw)
	require.NoError(t, err)
	assert.False(t, record.Revoked)
	assert.Equal(t, user.ID, record.UserID)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), record.ExpiresAt, time.Minute)

	// The raw token never touches the database.
	var stored models.RefreshToken
	require.NoError(t, db.First(&stored, "id = ?", record.ID).Error)
	assert.NotEqual(t, raw, stored.TokenHash)
	assert.Len(t, stored.TokenHash, 64)

	consumed, err := store.Consume(db, raw)
	require.NoError(t, err)
	assert.Equal(t, record.ID, consumed.ID)
	assert.True(t, consumed.Revoked)
}

func TestRefreshTokenStore_ConsumeIsSingleUse(t *testing.T) {
	db := newTestDB(t)
	store := services.NewRefreshTokenStore(24 * time.Hour)
	user := seedUser(t, db, "a@x.com", "password1", models.RoleUser)

	raw, err := store.Generate()
	require.NoError(t, err)
	_, err = store.Create(db, user.ID, raw)
	require.NoError(t, err)

	_, err = store.Consume(db, raw)
	require.NoError(t, err)

	// Replay fails closed, indistinguishable from an unknown token.
	_, err = store.Consume(db, raw)
	assert.ErrorIs(t, err, services.ErrInvalidToken)
}

func TestRefreshTokenStore_ConcurrentConsumeSingleWinner(t *testing.T) {
	db := newTestDB(t)
	store := services.NewRefreshTokenStore(24 * time.Hour)
	user := seedUser(t, db, "a@x.com", "password1", models.RoleUser)

	raw, err := store.Generate()
	require.NoError(t, err)
	_, err = store.Create(db, user.ID, raw)
	require.NoError(t, err)

	// Race several consumers for the same token. The guarded UPDATE must
	// admit exactly one of them.
	const racers = 8
	errs := make(chan error, racers)
	var start sync.WaitGroup
	start.Add(1)
	for i := 0; i < racers; i++ {
		go func() {
			start.Wait()
			_, err := store.Consume(db, raw)
			errs <- err
		}()
	}
	start.Done()

	var wins, losses int
	for i := 0; i < racers; i++ {
		switch err := <-errs; {
		case err == nil:
			wins++
		case errors.Is(err, services.ErrInvalidToken):
			losses++
		default:
			t.Fatalf("unexpected consume error: %v", err)
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, racers-1, losses)
}

func TestRefreshTokenStore_ConsumeUnknownToken(t *testing.T) {
	db := newTestDB(t)
	store := services.NewRefreshTokenStore(24 * time.Hour)

	_, err := store.Consume(db, "never-issued")
	assert.ErrorIs(t, err, services.ErrInvalidToken)
}

func TestRefreshTokenStore_ConsumeExpiredToken(t *testing.T) {
	db := newTestDB(t)
	store := services.NewRefreshTokenStore(24 * time.Hour)
	user := seedUser(t, db, "a@x.com", "password1", models.RoleUser)

	raw, err := store.Generate()
	require.NoError(t, err)
	record, err := store.Create(db, user.ID, raw)
	require.NoError(t, err)

	require.NoError(t, db.Model(record).
		Update("expires_at", time.Now().Add(-time.Minute)).Error)

	_, err = store.Consume(db, raw)
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	// Expired rows stay in place; nothing is ever deleted.
	var count int64
	require.NoError(t, db.Model(&models.RefreshToken{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRefreshTokenStore_Revoke(t *testing.T) {
	db := newTestDB(t)
	store := services.NewRefreshTokenStore(24 * time.Hour)
	user := seedUser(t, db, "a@x.com", "password1", models.RoleUser)

	raw, err := store.Generate()
	require.NoError(t, err)
	_, err = store.Create(db, user.ID, raw)
	require.NoError(t, err)

	require.NoError(t, store.Revoke(db, raw))
	assert.ErrorIs(t, store.Revoke(db, raw), services.ErrInvalidToken)
}

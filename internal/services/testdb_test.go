package services_test

import (
	"testing"
	"time"

	"github.com/drivehub/carrental/internal/config"
	"github.com/drivehub/carrental/internal/database"
	"github.com/drivehub/carrental/internal/models"
	"github.com/drivehub/carrental/internal/security"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "0123456789abcdef0123456789abcdef",
		JWTIssuer:        "CarRentalAPI",
		JWTAudience:      "CarRentalClient",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 168 * time.Hour,
	}
}

func seedUser(t *testing.T, db *gorm.DB, email, password string, role models.Role) *models.User {
	t.Helper()

	hash, err := security.HashPassword(password)
	require.NoError(t, err)

	user := models.User{
		ID:       uuid.New(),
		Email:    email,
		UserName: "tester",
		Password: hash,
		Role:     role,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedCar(t *testing.T, db *gorm.DB, plate string, pricePerDay float64) *models.Car {
	t.Helper()

	car := models.Car{
		ID:           uuid.New(),
		Make:         "Toyota",
		Model:        "Corolla",
		Year:         2021,
		Color:        "Blue",
		Transmission: "Manual",
		FuelType:     "Petrol",
		LicensePlate: plate,
		PricePerDay:  pricePerDay,
	}
	require.NoError(t, db.Create(&car).Error)
	return &car
}

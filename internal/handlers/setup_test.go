package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/drivehub/carrental/internal/config"
	"github.com/drivehub/carrental/internal/database"
	"github.com/drivehub/carrental/internal/handlers"
	"github.com/drivehub/carrental/internal/models"
	"github.com/drivehub/carrental/internal/routes"
	"github.com/drivehub/carrental/internal/services"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWTSecret:        "0123456789abcdef0123456789abcdef",
		JWTIssuer:        "CarRentalAPI",
		JWTAudience:      "CarRentalClient",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 168 * time.Hour,
	}

	app := fiber.New()
	routes.Setup(app, cfg,
		handlers.NewAuthHandler(services.NewAuthService(db, cfg)),
		handlers.NewCarHandler(services.NewCarService(db)),
		handlers.NewBookingHandler(services.NewBookingService(db)),
		handlers.NewDashboardHandler(services.NewDashboardService(db)),
		handlers.NewHealthHandler(db),
	)

	return app, db
}

func jsonRequest(method, path string, body interface{}) *http.Request {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func refreshCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == "refreshToken" {
			return c
		}
	}
	return nil
}

func registerAndLogin(t *testing.T, app *fiber.App, email, password string) (accessToken string, cookie *http.Cookie) {
	t.Helper()

	resp, err := app.Test(jsonRequest("POST", "/api/auth/register", fiber.Map{
		"email": email, "userName": "tester", "password": password,
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest("POST", "/api/auth/login", fiber.Map{
		"email": email, "password": password,
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		AccessToken string `json:"accessToken"`
	}
	decodeBody(t, resp, &body)
	require.NotEmpty(t, body.AccessToken)

	cookie = refreshCookie(resp)
	require.NotNil(t, cookie)
	return body.AccessToken, cookie
}

func seedTestCar(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()
	car := models.Car{
		ID:           uuid.New(),
		Make:         "Toyota",
		Model:        "Corolla",
		Year:         2023,
		Color:        "Blue",
		Transmission: "Manual",
		FuelType:     "Petrol",
		LicensePlate: "TST-001",
		PricePerDay:  70,
	}
	require.NoError(t, db.Create(&car).Error)
	return car.ID
}

func promoteToAdmin(t *testing.T, db *gorm.DB, email string) {
	t.Helper()
	require.NoError(t, db.Model(&models.User{}).
		Where("email = ?", email).
		Update("role", models.RoleAdmin).Error)
}

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"enrollapp/config"
	"enrollapp/database"
	"enrollapp/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupGuard(t *testing.T, cfg *config.Config) (*AuthGuard, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return NewAuthGuard(db, cfg), db
}

func createUser(t *testing.T, db *gorm.DB, email, role string, active bool) *models.User {
	t.Helper()

	user := &models.User{
		Name:     "Test " + role,
		Email:    email,
		Password: "irrelevant-hash",
		Role:     role,
		IsActive: active,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

type apiResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

func decodeResponse(t *testing.T, resp *http.Response) apiResponse {
	t.Helper()

	var body apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func testApp(guard *AuthGuard, role string) *fiber.App {
	app := fiber.New()
	app.Get("/protected", guard.Authenticate(), guard.Require(role), func(c *fiber.Ctx) error {
		user, _ := CurrentUser(c)
		return JsonResponse(c, fiber.StatusOK, true, "ok", user.Email)
	})
	return app
}

func TestTokenRoundtrip(t *testing.T) {
	cfg := &config.Config{JWTKey: "test-secret", TokenExpiresMin: 30}
	guard, db := setupGuard(t, cfg)
	user := createUser(t, db, "student@example.com", models.RoleStudent, true)

	token, err := guard.GenerateJWT(user)
	require.NoError(t, err)

	app := testApp(guard, "")
	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	cfg := &config.Config{JWTKey: "test-secret", TokenExpiresMin: 30}
	guard, db := setupGuard(t, cfg)
	createUser(t, db, "student@example.com", models.RoleStudent, true)

	app := testApp(guard, "")

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc"},
		{"garbage token", "Bearer not-a-jwt"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	// Negative lifetime produces an already-expired token
	cfg := &config.Config{JWTKey: "test-secret", TokenExpiresMin: -1}
	guard, db := setupGuard(t, cfg)
	user := createUser(t, db, "student@example.com", models.RoleStudent, true)

	token, err := guard.GenerateJWT(user)
	require.NoError(t, err)

	app := testApp(guard, "")
	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestWrongSigningKeyRejected(t *testing.T) {
	cfg := &config.Config{JWTKey: "test-secret", TokenExpiresMin: 30}
	otherCfg := &config.Config{JWTKey: "other-secret", TokenExpiresMin: 30}

	guard, db := setupGuard(t, cfg)
	user := createUser(t, db, "student@example.com", models.RoleStudent, true)

	otherGuard := NewAuthGuard(db, otherCfg)
	token, err := otherGuard.GenerateJWT(user)
	require.NoError(t, err)

	app := testApp(guard, "")
	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestDeletedSubjectRejected(t *testing.T) {
	cfg := &config.Config{JWTKey: "test-secret", TokenExpiresMin: 30}
	guard, db := setupGuard(t, cfg)
	user := createUser(t, db, "student@example.com", models.RoleStudent, true)

	token, err := guard.GenerateJWT(user)
	require.NoError(t, err)

	require.NoError(t, db.Delete(&models.User{}, "id = ?", user.ID).Error)

	app := testApp(guard, "")
	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// The active check fires before the role check: an inactive user is told
// they are inactive, not that their role is wrong.
func TestRequireActivePrecedesRole(t *testing.T) {
	cfg := &config.Config{JWTKey: "test-secret", TokenExpiresMin: 30}
	guard, db := setupGuard(t, cfg)
	admin := createUser(t, db, "admin@example.com", models.RoleAdmin, false)

	token, err := guard.GenerateJWT(admin)
	require.NoError(t, err)

	app := testApp(guard, models.RoleStudent)
	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	body := decodeResponse(t, resp)
	assert.Contains(t, body.Message, "Inactive")
}

func TestRequireRole(t *testing.T) {
	cfg := &config.Config{JWTKey: "test-secret", TokenExpiresMin: 30}
	guard, db := setupGuard(t, cfg)
	student := createUser(t, db, "student@example.com", models.RoleStudent, true)
	admin := createUser(t, db, "admin@example.com", models.RoleAdmin, true)

	app := testApp(guard, models.RoleAdmin)

	studentToken, err := guard.GenerateJWT(student)
	require.NoError(t, err)
	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+studentToken)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	adminToken, err := guard.GenerateJWT(admin)
	require.NoError(t, err)
	req = httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

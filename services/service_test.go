package services

import (
	"testing"

	"enrollapp/config"
	"enrollapp/database"
	"enrollapp/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB builds a migrated in-memory store. A single connection keeps
// every session on the same database and enables the enrollment FK cascade.
func setupTestDB(t *testing.T) *gorm.DB {
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

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTKey:          "test-secret",
		TokenExpiresMin: 30,
		SaltRound:       bcrypt.MinCost,
	}
}

func createTestUser(t *testing.T, db *gorm.DB, email, role string, active bool) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("studentpassword"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Name:     "Test " + role,
		Email:    email,
		Password: string(hashed),
		Role:     role,
		IsActive: active,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestCourse(t *testing.T, db *gorm.DB, code string, capacity int, active bool) *models.Course {
	t.Helper()

	course := &models.Course{
		Title:    "Course " + code,
		Code:     code,
		Capacity: capacity,
		IsActive: active,
	}
	require.NoError(t, db.Create(course).Error)
	return course
}

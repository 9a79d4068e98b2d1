// internal/services/testing_test.go
package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/autovista/dealership-backend/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A fresh in-memory database per connection; pin the pool to one so
	// every query in the test sees the same database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Car{},
		&models.Motorcycle{},
		&models.FeaturedItem{},
		&models.Discount{},
		&models.ContactMessage{},
		&models.Subscriber{},
		&models.AuditLog{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	user := &models.User{
		Username: "staffer",
		Email:    "staffer@example.com",
	}
	require.NoError(t, user.SetPassword("Sup3r$ecret"))
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestCar(t *testing.T, db *gorm.DB, createdBy uuid.UUID, brand, model string, year int, price string) *models.Car {
	t.Helper()

	car := &models.Car{
		Title:        brand + " " + model,
		Description:  "well kept",
		Price:        decimal.RequireFromString(price),
		Brand:        brand,
		Model:        model,
		Year:         year,
		Transmission: models.TransmissionManual,
		Image:        "cars/2026/01/test.jpg",
		CreatedByID:  createdBy,
	}
	require.NoError(t, db.Create(car).Error)
	return car
}

func createTestMotorcycle(t *testing.T, db *gorm.DB, createdBy uuid.UUID, brand, model string, year int, price string) *models.Motorcycle {
	t.Helper()

	moto := &models.Motorcycle{
		Title:       brand + " " + model,
		Description: "low mileage",
		Price:       decimal.RequireFromString(price),
		Brand:       brand,
		Model:       model,
		Year:        year,
		Category:    models.MotorcycleCategoryCombustion,
		Image:       "motorcycles/2026/01/test.jpg",
		CreatedByID: createdBy,
	}
	require.NoError(t, db.Create(moto).Error)
	return moto
}

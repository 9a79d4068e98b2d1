// internal/services/car_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autovista/dealership-backend/internal/models"
	"github.com/autovista/dealership-backend/internal/utils"
)

func TestCarCreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCarService(db)
	user := createTestUser(t, db)

	car, err := svc.Create(&CreateCarRequest{
		Title:        "Corolla XEI",
		Description:  "single owner",
		Price:        decimal.RequireFromString("15000"),
		Brand:        "Toyota",
		Model:        "Corolla",
		Year:         2022,
		Transmission: models.TransmissionAutomatic,
		Gallery:      []string{"cars/a.jpg", "cars/b.jpg"},
	}, user.ID)
	require.NoError(t, err)

	got, err := svc.GetByID(car.ID)
	require.NoError(t, err)
	assert.Equal(t, "Corolla XEI", got.Title)
	assert.Equal(t, models.TransmissionAutomatic, got.Transmission)
	assert.Len(t, got.Gallery, 2)
	assert.False(t, got.IsSold)
	assert.Equal(t, "Toyota Corolla (2022)", got.DisplayTitle())
}

func TestCarPartialUpdate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCarService(db)
	user := createTestUser(t, db)
	car := createTestCar(t, db, user.ID, "Toyota", "Corolla", 2022, "15000")

	sold := true
	newPrice := decimal.RequireFromString("14500")
	updated, err := svc.Update(car.ID, &UpdateCarRequest{
		Price:  &newPrice,
		IsSold: &sold,
	})
	require.NoError(t, err)

	assert.True(t, updated.Price.Equal(newPrice))
	assert.True(t, updated.IsSold)
	// Untouched fields survive
	assert.Equal(t, "Toyota", updated.Brand)
	assert.Equal(t, 2022, updated.Year)
}

func TestCarListFiltersAndSorts(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCarService(db)
	user := createTestUser(t, db)
	createTestCar(t, db, user.ID, "Toyota", "Corolla", 2020, "15000")
	time.Sleep(2 * time.Millisecond)
	createTestCar(t, db, user.ID, "Toyota", "Hilux", 2024, "35000")
	time.Sleep(2 * time.Millisecond)
	createTestCar(t, db, user.ID, "Mazda", "3", 2023, "18000")

	params := utils.PaginationParams{Page: 1, Limit: 20, Sort: "created_at", Order: "desc"}

	result, err := svc.List(params, CarFilters{Brand: "Toyota"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Total)

	result, err = svc.List(params, CarFilters{YearMin: 2023})
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Total)

	// Newest first by default
	result, err = svc.List(params, CarFilters{})
	require.NoError(t, err)
	cars, ok := result.Data.([]models.Car)
	require.True(t, ok)
	require.Len(t, cars, 3)
	assert.Equal(t, "3", cars[0].Model)
}

func TestCarDeleteCleansUpLedgers(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCarService(db)
	featured := NewFeaturedService(db)
	discounts := NewDiscountService(db)
	user := createTestUser(t, db)
	car := createTestCar(t, db, user.ID, "Toyota", "Corolla", 2022, "15000")

	_, err := featured.Create(&FeaturedItemRequest{
		ItemType: models.VehicleKindCar,
		CarID:    &car.ID,
	}, user.ID)
	require.NoError(t, err)

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	_, err = discounts.Create(&DiscountRequest{
		ItemType:           models.VehicleKindCar,
		CarID:              &car.ID,
		DiscountPercentage: decimal.RequireFromString("10"),
		StartDate:          start,
		EndDate:            start.AddDate(0, 1, 0),
	}, user.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(car.ID))

	_, err = svc.GetByID(car.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var featuredCount, discountCount int64
	db.Model(&models.FeaturedItem{}).Count(&featuredCount)
	db.Model(&models.Discount{}).Count(&discountCount)
	assert.Zero(t, featuredCount)
	assert.Zero(t, discountCount)
}

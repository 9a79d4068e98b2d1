// internal/services/discount_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autovista/dealership-backend/internal/models"
)

func promoWindow() (time.Time, time.Time) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

func TestDiscountCreateComputesNewPrice(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDiscountService(db)
	user := createTestUser(t, db)
	car := createTestCar(t, db, user.ID, "Toyota", "Corolla", 2022, "20000")
	start, end := promoWindow()

	discount, err := svc.Create(&DiscountRequest{
		ItemType:           models.VehicleKindCar,
		CarID:              &car.ID,
		DiscountPercentage: decimal.RequireFromString("25"),
		StartDate:          start,
		EndDate:            end,
	}, user.ID)
	require.NoError(t, err)

	assert.Equal(t, "Toyota Corolla (2022)", discount.Title)
	assert.True(t, discount.OriginalPrice.Equal(decimal.RequireFromString("20000")))
	assert.True(t, discount.NewPrice.Equal(decimal.RequireFromString("15000")), "got %s", discount.NewPrice)
	assert.True(t, discount.IsActive)
}

func TestDiscountNewPriceRounding(t *testing.T) {
	d := models.Discount{
		OriginalPrice:      decimal.RequireFromString("9999.99"),
		DiscountPercentage: decimal.RequireFromString("33.33"),
	}
	// 9999.99 * 0.6667 = 6666.993333, rounds to 6666.99
	assert.Equal(t, "6666.99", d.ComputeNewPrice().StringFixed(2))
}

func TestDiscountDuplicateVehicleRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDiscountService(db)
	user := createTestUser(t, db)
	moto := createTestMotorcycle(t, db, user.ID, "Honda", "CB500", 2023, "7000")
	start, end := promoWindow()

	req := &DiscountRequest{
		ItemType:           models.VehicleKindMotorcycle,
		MotorcycleID:       &moto.ID,
		DiscountPercentage: decimal.RequireFromString("10"),
		StartDate:          start,
		EndDate:            end,
	}

	_, err := svc.Create(req, user.ID)
	require.NoError(t, err)

	_, err = svc.Create(req, user.ID)
	assert.ErrorIs(t, err, ErrDuplicateAssociation)
}

func TestDiscountPermissiveValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDiscountService(db)
	user := createTestUser(t, db)
	car := createTestCar(t, db, user.ID, "Toyota", "Corolla", 2022, "20000")
	start, end := promoWindow()

	// Over 100 percent and an inverted window are both stored as-is
	discount, err := svc.Create(&DiscountRequest{
		ItemType:           models.VehicleKindCar,
		CarID:              &car.ID,
		DiscountPercentage: decimal.RequireFromString("150"),
		StartDate:          end,
		EndDate:            start,
	}, user.ID)
	require.NoError(t, err)

	assert.True(t, discount.NewPrice.IsNegative())
	assert.True(t, discount.EndDate.Before(discount.StartDate))
}

func TestDiscountUpdateTogglesActive(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDiscountService(db)
	user := createTestUser(t, db)
	car := createTestCar(t, db, user.ID, "Toyota", "Corolla", 2022, "20000")
	start, end := promoWindow()

	inactive := false
	discount, err := svc.Create(&DiscountRequest{
		ItemType:           models.VehicleKindCar,
		CarID:              &car.ID,
		DiscountPercentage: decimal.RequireFromString("10"),
		StartDate:          start,
		EndDate:            end,
	}, user.ID)
	require.NoError(t, err)
	require.True(t, discount.IsActive)

	updated, err := svc.Update(discount.ID, &DiscountRequest{
		ItemType:           models.VehicleKindCar,
		CarID:              &car.ID,
		DiscountPercentage: decimal.RequireFromString("10"),
		StartDate:          start,
		EndDate:            end,
		IsActive:           &inactive,
	})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
}

func TestDiscountAvailabilityIgnoresInactive(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDiscountService(db)
	user := createTestUser(t, db)
	car := createTestCar(t, db, user.ID, "Toyota", "Corolla", 2022, "20000")
	other := createTestCar(t, db, user.ID, "Mazda", "3", 2023, "18000")
	start, end := promoWindow()

	discount, err := svc.Create(&DiscountRequest{
		ItemType:           models.VehicleKindCar,
		CarID:              &car.ID,
		DiscountPercentage: decimal.RequireFromString("10"),
		StartDate:          start,
		EndDate:            end,
	}, user.ID)
	require.NoError(t, err)

	cars, err := svc.AvailableCars()
	require.NoError(t, err)
	require.Len(t, cars, 1)
	assert.Equal(t, other.ID, cars[0].ID)

	// Deactivating the promotion frees the vehicle again
	inactive := false
	_, err = svc.Update(discount.ID, &DiscountRequest{
		ItemType:           models.VehicleKindCar,
		CarID:              &car.ID,
		DiscountPercentage: decimal.RequireFromString("10"),
		StartDate:          start,
		EndDate:            end,
		IsActive:           &inactive,
	})
	require.NoError(t, err)

	cars, err = svc.AvailableCars()
	require.NoError(t, err)
	assert.Len(t, cars, 2)
}

func TestDiscountSnapshotStaysStaleUntilSaved(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDiscountService(db)
	user := createTestUser(t, db)
	car := createTestCar(t, db, user.ID, "Toyota", "Corolla", 2022, "20000")
	start, end := promoWindow()

	discount, err := svc.Create(&DiscountRequest{
		ItemType:           models.VehicleKindCar,
		CarID:              &car.ID,
		DiscountPercentage: decimal.RequireFromString("25"),
		StartDate:          start,
		EndDate:            end,
	}, user.ID)
	require.NoError(t, err)

	require.NoError(t, db.Model(car).Update("price", decimal.RequireFromString("24000")).Error)

	stale, err := svc.GetByID(discount.ID)
	require.NoError(t, err)
	assert.True(t, stale.OriginalPrice.Equal(decimal.RequireFromString("20000")))
	assert.True(t, stale.NewPrice.Equal(decimal.RequireFromString("15000")))

	refreshed, err := svc.Update(discount.ID, &DiscountRequest{
		ItemType:           models.VehicleKindCar,
		CarID:              &car.ID,
		DiscountPercentage: decimal.RequireFromString("25"),
		StartDate:          start,
		EndDate:            end,
	})
	require.NoError(t, err)
	assert.True(t, refreshed.OriginalPrice.Equal(decimal.RequireFromString("24000")))
	assert.True(t, refreshed.NewPrice.Equal(decimal.RequireFromString("18000")))
}

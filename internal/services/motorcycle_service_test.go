// internal/services/motorcycle_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autovista/dealership-backend/internal/models"
	"github.com/autovista/dealership-backend/internal/utils"
)

func TestMotorcycleCategoryFilter(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMotorcycleService(db)
	user := createTestUser(t, db)

	combustion := createTestMotorcycle(t, db, user.ID, "Honda", "CB500", 2023, "7000")
	electric := createTestMotorcycle(t, db, user.ID, "Zero", "SR/F", 2024, "19000")
	require.NoError(t, db.Model(electric).Update("category", models.MotorcycleCategoryElectric).Error)

	params := utils.PaginationParams{Page: 1, Limit: 20, Sort: "created_at", Order: "desc"}

	result, err := svc.List(params, MotorcycleFilters{Category: string(models.MotorcycleCategoryCombustion)})
	require.NoError(t, err)
	require.Equal(t, int64(1), result.Total)

	motos, ok := result.Data.([]models.Motorcycle)
	require.True(t, ok)
	assert.Equal(t, combustion.ID, motos[0].ID)
}

func TestMotorcycleUpdateCategory(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMotorcycleService(db)
	user := createTestUser(t, db)
	moto := createTestMotorcycle(t, db, user.ID, "Honda", "Navi", 2024, "2000")

	category := models.MotorcycleCategorySemiAutomatic
	updated, err := svc.Update(moto.ID, &UpdateMotorcycleRequest{Category: &category})
	require.NoError(t, err)
	assert.Equal(t, models.MotorcycleCategorySemiAutomatic, updated.Category)
	assert.Equal(t, "Honda", updated.Brand)
}

func TestMotorcycleDeleteCleansUpLedgers(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMotorcycleService(db)
	featured := NewFeaturedService(db)
	user := createTestUser(t, db)
	moto := createTestMotorcycle(t, db, user.ID, "Honda", "CB500", 2023, "7000")

	_, err := featured.Create(&FeaturedItemRequest{
		ItemType:     models.VehicleKindMotorcycle,
		MotorcycleID: &moto.ID,
	}, user.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(moto.ID))

	var count int64
	db.Model(&models.FeaturedItem{}).Count(&count)
	assert.Zero(t, count)
}

// internal/services/search_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autovista/dealership-backend/internal/models"
)

func TestSearchIsCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSearchService(db)
	user := createTestUser(t, db)
	createTestCar(t, db, user.ID, "Toyota", "Corolla", 2022, "15000")
	createTestCar(t, db, user.ID, "Mazda", "3", 2023, "18000")

	results, err := svc.Search("CORolla", string(models.VehicleKindCar))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, models.VehicleKindCar, results[0].Type)
	assert.Equal(t, "Corolla", results[0].Car.Model)
}

func TestSearchMatchesDescriptionBrandAndModel(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSearchService(db)
	user := createTestUser(t, db)
	createTestCar(t, db, user.ID, "Toyota", "Corolla", 2022, "15000")

	for _, q := range []string{"toyota", "corolla", "well kept"} {
		results, err := svc.Search(q, string(models.VehicleKindCar))
		require.NoError(t, err)
		assert.Len(t, results, 1, "query %q", q)
	}
}

func TestSearchAllReturnsBothKindsTagged(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSearchService(db)
	user := createTestUser(t, db)
	createTestCar(t, db, user.ID, "Honda", "Civic", 2022, "17000")
	createTestMotorcycle(t, db, user.ID, "Honda", "CB500", 2023, "7000")

	results, err := svc.Search("honda", "all")
	require.NoError(t, err)
	require.Len(t, results, 2)

	kinds := map[models.VehicleKind]bool{}
	for _, r := range results {
		kinds[r.Type] = true
		switch r.Type {
		case models.VehicleKindCar:
			require.NotNil(t, r.Car)
			assert.Nil(t, r.Motorcycle)
		case models.VehicleKindMotorcycle:
			require.NotNil(t, r.Motorcycle)
			assert.Nil(t, r.Car)
		}
	}
	assert.True(t, kinds[models.VehicleKindCar])
	assert.True(t, kinds[models.VehicleKindMotorcycle])
}

func TestSearchScopedToSingleKind(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSearchService(db)
	user := createTestUser(t, db)
	createTestCar(t, db, user.ID, "Honda", "Civic", 2022, "17000")
	createTestMotorcycle(t, db, user.ID, "Honda", "CB500", 2023, "7000")

	results, err := svc.Search("honda", string(models.VehicleKindMotorcycle))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, models.VehicleKindMotorcycle, results[0].Type)

	// The plural query form scopes the same way
	results, err = svc.Search("honda", "cars")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, models.VehicleKindCar, results[0].Type)
}

func TestSearchNoMatchesReturnsEmptySlice(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSearchService(db)

	results, err := svc.Search("nothing here", "all")
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

// internal/services/search_service.go
package services

import (
	"strings"

	"gorm.io/gorm"

	"github.com/autovista/dealership-backend/internal/models"
)

type SearchService struct {
	db *gorm.DB
}

func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{db: db}
}

// SearchResult tags each hit with the vehicle kind so mixed result sets
// stay unambiguous.
type SearchResult struct {
	Type       models.VehicleKind `json:"type"`
	Car        *models.Car        `json:"car,omitempty"`
	Motorcycle *models.Motorcycle `json:"motorcycle,omitempty"`
}

// Search matches the query case-insensitively against title, description,
// brand and model. kind narrows the search to one catalog ("car"/"cars" or
// "motorcycle"/"motorcycles"); anything else, including empty, searches both.
func (s *SearchService) Search(query string, kind string) ([]SearchResult, error) {
	results := []SearchResult{}

	kind = strings.TrimSuffix(strings.ToLower(kind), "s")
	searchCars := kind != string(models.VehicleKindMotorcycle)
	searchMotos := kind != string(models.VehicleKindCar)

	if searchCars {
		cars, err := s.searchCars(query)
		if err != nil {
			return nil, err
		}
		for i := range cars {
			results = append(results, SearchResult{Type: models.VehicleKindCar, Car: &cars[i]})
		}
	}

	if searchMotos {
		motos, err := s.searchMotorcycles(query)
		if err != nil {
			return nil, err
		}
		for i := range motos {
			results = append(results, SearchResult{Type: models.VehicleKindMotorcycle, Motorcycle: &motos[i]})
		}
	}

	return results, nil
}

func (s *SearchService) searchCars(query string) ([]models.Car, error) {
	var cars []models.Car
	term := "%" + strings.ToLower(query) + "%"
	err := s.db.Where(
		"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(brand) LIKE ? OR LOWER(model) LIKE ?",
		term, term, term, term,
	).Order("created_at DESC").Find(&cars).Error
	return cars, err
}

func (s *SearchService) searchMotorcycles(query string) ([]models.Motorcycle, error) {
	var motos []models.Motorcycle
	term := "%" + strings.ToLower(query) + "%"
	err := s.db.Where(
		"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(brand) LIKE ? OR LOWER(model) LIKE ?",
		term, term, term, term,
	).Order("created_at DESC").Find(&motos).Error
	return motos, err
}

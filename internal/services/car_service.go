// internal/services/car_service.go
package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/autovista/dealership-backend/internal/models"
	"github.com/autovista/dealership-backend/internal/utils"
)

type CarService struct {
	db *gorm.DB
}

func NewCarService(db *gorm.DB) *CarService {
	return &CarService{db: db}
}

type CreateCarRequest struct {
	Title        string              `json:"title" binding:"required,max=200"`
	Description  string              `json:"description"`
	Price        decimal.Decimal     `json:"price" binding:"required"`
	Brand        string              `json:"brand" binding:"required,max=100"`
	Model        string              `json:"model" binding:"required,max=100"`
	Year         int                 `json:"year" binding:"required" validate:"vehicle_year"`
	Color        string              `json:"color"`
	Engine       string              `json:"engine"`
	Transmission models.Transmission `json:"transmission" binding:"required,oneof=manual automatic electric"`
	Mileage      int                 `json:"mileage"`
	FuelType     string              `json:"fuel_type"`
	Image        string              `json:"image"`
	Gallery      []string            `json:"gallery"`
	IsSold       *bool               `json:"is_sold"`
}

type UpdateCarRequest struct {
	Title        *string              `json:"title" binding:"omitempty,max=200"`
	Description  *string              `json:"description"`
	Price        *decimal.Decimal     `json:"price"`
	Brand        *string              `json:"brand" binding:"omitempty,max=100"`
	Model        *string              `json:"model" binding:"omitempty,max=100"`
	Year         *int                 `json:"year"`
	Color        *string              `json:"color"`
	Engine       *string              `json:"engine"`
	Transmission *models.Transmission `json:"transmission" binding:"omitempty,oneof=manual automatic electric"`
	Mileage      *int                 `json:"mileage"`
	FuelType     *string              `json:"fuel_type"`
	Image        *string              `json:"image"`
	Gallery      []string             `json:"gallery"`
	IsSold       *bool                `json:"is_sold"`
}

func (s *CarService) Create(req *CreateCarRequest, createdBy uuid.UUID) (*models.Car, error) {
	car := &models.Car{
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		Brand:        req.Brand,
		Model:        req.Model,
		Year:         req.Year,
		Color:        req.Color,
		Engine:       req.Engine,
		Transmission: req.Transmission,
		Mileage:      req.Mileage,
		FuelType:     req.FuelType,
		Image:        req.Image,
		Gallery:      pq.StringArray(req.Gallery),
		CreatedByID:  createdBy,
	}
	if req.IsSold != nil {
		car.IsSold = *req.IsSold
	}

	if err := s.db.Create(car).Error; err != nil {
		return nil, err
	}
	return car, nil
}

func (s *CarService) GetByID(id uuid.UUID) (*models.Car, error) {
	var car models.Car
	if err := s.db.First(&car, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &car, nil
}

func (s *CarService) List(params utils.PaginationParams, filters CarFilters) (*utils.PaginationResult, error) {
	var cars []models.Car
	var total int64

	query := s.db.Model(&models.Car{})
	query = applyCarFilters(query, filters)
	if params.Search != "" {
		term := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(brand) LIKE ? OR LOWER(model) LIKE ?",
			term, term, term, term,
		)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	query = utils.ApplySort(query, params, []string{"created_at", "price", "year", "brand", "mileage"})
	query = utils.ApplyPagination(query, params)
	if err := query.Find(&cars).Error; err != nil {
		return nil, err
	}

	result := utils.CreatePaginationResult(cars, total, params)
	return &result, nil
}

type CarFilters struct {
	Brand        string
	Transmission string
	FuelType     string
	YearMin      int
	YearMax      int
	IsSold       *bool
}

func applyCarFilters(query *gorm.DB, f CarFilters) *gorm.DB {
	if f.Brand != "" {
		query = query.Where("brand = ?", f.Brand)
	}
	if f.Transmission != "" {
		query = query.Where("transmission = ?", f.Transmission)
	}
	if f.FuelType != "" {
		query = query.Where("fuel_type = ?", f.FuelType)
	}
	if f.YearMin > 0 {
		query = query.Where("year >= ?", f.YearMin)
	}
	if f.YearMax > 0 {
		query = query.Where("year <= ?", f.YearMax)
	}
	if f.IsSold != nil {
		query = query.Where("is_sold = ?", *f.IsSold)
	}
	return query
}

func (s *CarService) Update(id uuid.UUID, req *UpdateCarRequest) (*models.Car, error) {
	car, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Brand != nil {
		updates["brand"] = *req.Brand
	}
	if req.Model != nil {
		updates["model"] = *req.Model
	}
	if req.Year != nil {
		updates["year"] = *req.Year
	}
	if req.Color != nil {
		updates["color"] = *req.Color
	}
	if req.Engine != nil {
		updates["engine"] = *req.Engine
	}
	if req.Transmission != nil {
		updates["transmission"] = *req.Transmission
	}
	if req.Mileage != nil {
		updates["mileage"] = *req.Mileage
	}
	if req.FuelType != nil {
		updates["fuel_type"] = *req.FuelType
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.Gallery != nil {
		updates["gallery"] = pq.StringArray(req.Gallery)
	}
	if req.IsSold != nil {
		updates["is_sold"] = *req.IsSold
	}

	if len(updates) > 0 {
		if err := s.db.Model(car).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return s.GetByID(id)
}

// Delete removes the car together with any curation or promotion entries
// that reference it, so the ledgers never point at a vanished vehicle.
func (s *CarService) Delete(id uuid.UUID) error {
	car, err := s.GetByID(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("car_id = ?", id).Delete(&models.FeaturedItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("car_id = ?", id).Delete(&models.Discount{}).Error; err != nil {
			return err
		}
		return tx.Delete(car).Error
	})
}

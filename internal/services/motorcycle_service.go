// internal/services/motorcycle_service.go
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

type MotorcycleService struct {
	db *gorm.DB
}

func NewMotorcycleService(db *gorm.DB) *MotorcycleService {
	return &MotorcycleService{db: db}
}

type CreateMotorcycleRequest struct {
	Title       string                    `json:"title" binding:"required,max=200"`
	Description string                    `json:"description"`
	Price       decimal.Decimal           `json:"price" binding:"required"`
	Brand       string                    `json:"brand" binding:"required,max=100"`
	Model       string                    `json:"model" binding:"required,max=100"`
	Year        int                       `json:"year" binding:"required" validate:"vehicle_year"`
	Color       string                    `json:"color"`
	Engine      string                    `json:"engine"`
	Category    models.MotorcycleCategory `json:"category" binding:"required,oneof=combustion electric automatic semi_automatic"`
	Mileage     int                       `json:"mileage"`
	FuelType    string                    `json:"fuel_type"`
	Image       string                    `json:"image"`
	Gallery     []string                  `json:"gallery"`
	IsSold      *bool                     `json:"is_sold"`
}

type UpdateMotorcycleRequest struct {
	Title       *string                    `json:"title" binding:"omitempty,max=200"`
	Description *string                    `json:"description"`
	Price       *decimal.Decimal           `json:"price"`
	Brand       *string                    `json:"brand" binding:"omitempty,max=100"`
	Model       *string                    `json:"model" binding:"omitempty,max=100"`
	Year        *int                       `json:"year"`
	Color       *string                    `json:"color"`
	Engine      *string                    `json:"engine"`
	Category    *models.MotorcycleCategory `json:"category" binding:"omitempty,oneof=combustion electric automatic semi_automatic"`
	Mileage     *int                       `json:"mileage"`
	FuelType    *string                    `json:"fuel_type"`
	Image       *string                    `json:"image"`
	Gallery     []string                   `json:"gallery"`
	IsSold      *bool                      `json:"is_sold"`
}

func (s *MotorcycleService) Create(req *CreateMotorcycleRequest, createdBy uuid.UUID) (*models.Motorcycle, error) {
	moto := &models.Motorcycle{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Brand:       req.Brand,
		Model:       req.Model,
		Year:        req.Year,
		Color:       req.Color,
		Engine:      req.Engine,
		Category:    req.Category,
		Mileage:     req.Mileage,
		FuelType:    req.FuelType,
		Image:       req.Image,
		Gallery:     pq.StringArray(req.Gallery),
		CreatedByID: createdBy,
	}
	if req.IsSold != nil {
		moto.IsSold = *req.IsSold
	}

	if err := s.db.Create(moto).Error; err != nil {
		return nil, err
	}
	return moto, nil
}

func (s *MotorcycleService) GetByID(id uuid.UUID) (*models.Motorcycle, error) {
	var moto models.Motorcycle
	if err := s.db.First(&moto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &moto, nil
}

type MotorcycleFilters struct {
	Brand    string
	Category string
	YearMin  int
	YearMax  int
	IsSold   *bool
}

func (s *MotorcycleService) List(params utils.PaginationParams, filters MotorcycleFilters) (*utils.PaginationResult, error) {
	var motos []models.Motorcycle
	var total int64

	query := s.db.Model(&models.Motorcycle{})
	if filters.Brand != "" {
		query = query.Where("brand = ?", filters.Brand)
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.YearMin > 0 {
		query = query.Where("year >= ?", filters.YearMin)
	}
	if filters.YearMax > 0 {
		query = query.Where("year <= ?", filters.YearMax)
	}
	if filters.IsSold != nil {
		query = query.Where("is_sold = ?", *filters.IsSold)
	}
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
	if err := query.Find(&motos).Error; err != nil {
		return nil, err
	}

	result := utils.CreatePaginationResult(motos, total, params)
	return &result, nil
}

func (s *MotorcycleService) Update(id uuid.UUID, req *UpdateMotorcycleRequest) (*models.Motorcycle, error) {
	moto, err := s.GetByID(id)
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
	if req.Category != nil {
		updates["category"] = *req.Category
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
		if err := s.db.Model(moto).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return s.GetByID(id)
}

func (s *MotorcycleService) Delete(id uuid.UUID) error {
	moto, err := s.GetByID(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("motorcycle_id = ?", id).Delete(&models.FeaturedItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("motorcycle_id = ?", id).Delete(&models.Discount{}).Error; err != nil {
			return err
		}
		return tx.Delete(moto).Error
	})
}

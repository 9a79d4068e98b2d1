// internal/services/discount_service.go
package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/autovista/dealership-backend/internal/models"
	"github.com/autovista/dealership-backend/internal/utils"
)

// DiscountService maintains the promotion ledger. Snapshot semantics match
// FeaturedService: every save recopies title, price and image from the
// referenced vehicle. The discounted price is derived on read, never stored.
type DiscountService struct {
	db *gorm.DB
}

func NewDiscountService(db *gorm.DB) *DiscountService {
	return &DiscountService{db: db}
}

type DiscountRequest struct {
	ItemType     models.VehicleKind `json:"item_type" binding:"required,oneof=car motorcycle"`
	CarID        *uuid.UUID         `json:"car_id"`
	MotorcycleID *uuid.UUID         `json:"motorcycle_id"`

	// Percentage and window are stored as supplied. Out-of-range values and
	// inverted windows are the operator's call.
	DiscountPercentage decimal.Decimal `json:"discount_percentage" binding:"required"`
	StartDate          time.Time       `json:"start_date" binding:"required"`
	EndDate            time.Time       `json:"end_date" binding:"required"`
	IsActive           *bool           `json:"is_active"`
}

func (s *DiscountService) Create(req *DiscountRequest, createdBy uuid.UUID) (*models.Discount, error) {
	discount := &models.Discount{
		ItemType:           req.ItemType,
		CarID:              req.CarID,
		MotorcycleID:       req.MotorcycleID,
		DiscountPercentage: req.DiscountPercentage,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		IsActive:           true,
		CreatedByID:        createdBy,
	}
	if req.IsActive != nil {
		discount.IsActive = *req.IsActive
	}

	if err := s.snapshot(discount); err != nil {
		return nil, err
	}

	if err := s.checkDuplicate(discount, uuid.Nil); err != nil {
		return nil, err
	}

	if err := s.db.Create(discount).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateAssociation
		}
		return nil, err
	}
	return s.GetByID(discount.ID)
}

func (s *DiscountService) Update(id uuid.UUID, req *DiscountRequest) (*models.Discount, error) {
	discount, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	discount.ItemType = req.ItemType
	discount.CarID = req.CarID
	discount.MotorcycleID = req.MotorcycleID
	discount.DiscountPercentage = req.DiscountPercentage
	discount.StartDate = req.StartDate
	discount.EndDate = req.EndDate
	if req.IsActive != nil {
		discount.IsActive = *req.IsActive
	}

	if err := s.snapshot(discount); err != nil {
		return nil, err
	}

	if err := s.checkDuplicate(discount, id); err != nil {
		return nil, err
	}

	// Save with Select so a false is_active survives the zero-value rules.
	if err := s.db.Model(discount).Select(
		"item_type", "car_id", "motorcycle_id", "title", "original_price", "image",
		"discount_percentage", "start_date", "end_date", "is_active",
	).Updates(discount).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateAssociation
		}
		return nil, err
	}
	return s.GetByID(id)
}

func (s *DiscountService) GetByID(id uuid.UUID) (*models.Discount, error) {
	var discount models.Discount
	err := s.db.Preload("Car").Preload("Motorcycle").First(&discount, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &discount, nil
}

func (s *DiscountService) List(params utils.PaginationParams, activeOnly bool) (*utils.PaginationResult, error) {
	var discounts []models.Discount
	var total int64

	query := s.db.Model(&models.Discount{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	query = utils.ApplySort(query, params, []string{"created_at", "title", "original_price", "start_date", "end_date"})
	query = utils.ApplyPagination(query, params)
	if err := query.Preload("Car").Preload("Motorcycle").Find(&discounts).Error; err != nil {
		return nil, err
	}

	result := utils.CreatePaginationResult(discounts, total, params)
	return &result, nil
}

func (s *DiscountService) Delete(id uuid.UUID) error {
	discount, err := s.GetByID(id)
	if err != nil {
		return err
	}
	return s.db.Delete(discount).Error
}

// AvailableCars lists cars without an active discount, newest first.
// Inactive discounts do not block a vehicle from getting a new one.
func (s *DiscountService) AvailableCars() ([]models.Car, error) {
	var cars []models.Car
	sub := s.db.Model(&models.Discount{}).Select("car_id").
		Where("car_id IS NOT NULL AND is_active = ?", true)
	err := s.db.Where("id NOT IN (?)", sub).Order("created_at DESC").Find(&cars).Error
	return cars, err
}

func (s *DiscountService) AvailableMotorcycles() ([]models.Motorcycle, error) {
	var motos []models.Motorcycle
	sub := s.db.Model(&models.Discount{}).Select("motorcycle_id").
		Where("motorcycle_id IS NOT NULL AND is_active = ?", true)
	err := s.db.Where("id NOT IN (?)", sub).Order("created_at DESC").Find(&motos).Error
	return motos, err
}

func (s *DiscountService) snapshot(discount *models.Discount) error {
	switch discount.ItemType {
	case models.VehicleKindCar:
		if discount.CarID == nil || discount.MotorcycleID != nil {
			return ErrInvalidReference
		}
		var car models.Car
		if err := s.db.First(&car, "id = ?", *discount.CarID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidReference
			}
			return err
		}
		discount.Title = car.DisplayTitle()
		discount.OriginalPrice = car.Price
		discount.Image = car.Image
	case models.VehicleKindMotorcycle:
		if discount.MotorcycleID == nil || discount.CarID != nil {
			return ErrInvalidReference
		}
		var moto models.Motorcycle
		if err := s.db.First(&moto, "id = ?", *discount.MotorcycleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidReference
			}
			return err
		}
		discount.Title = moto.DisplayTitle()
		discount.OriginalPrice = moto.Price
		discount.Image = moto.Image
	default:
		return ErrInvalidReference
	}

	discount.NewPrice = discount.ComputeNewPrice()
	return nil
}

func (s *DiscountService) checkDuplicate(discount *models.Discount, excludeID uuid.UUID) error {
	query := s.db.Model(&models.Discount{})
	switch discount.ItemType {
	case models.VehicleKindCar:
		query = query.Where("car_id = ?", *discount.CarID)
	case models.VehicleKindMotorcycle:
		query = query.Where("motorcycle_id = ?", *discount.MotorcycleID)
	}
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateAssociation
	}
	return nil
}

// internal/services/featured_service.go
package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/autovista/dealership-backend/internal/models"
	"github.com/autovista/dealership-backend/internal/utils"
)

// FeaturedService maintains the storefront curation ledger. Every save
// re-copies title, price and image from the vehicle currently referenced,
// so an entry only reflects vehicle edits made before its last save.
type FeaturedService struct {
	db *gorm.DB
}

func NewFeaturedService(db *gorm.DB) *FeaturedService {
	return &FeaturedService{db: db}
}

type FeaturedItemRequest struct {
	ItemType     models.VehicleKind `json:"item_type" binding:"required,oneof=car motorcycle"`
	CarID        *uuid.UUID         `json:"car_id"`
	MotorcycleID *uuid.UUID         `json:"motorcycle_id"`
}

func (s *FeaturedService) Create(req *FeaturedItemRequest, createdBy uuid.UUID) (*models.FeaturedItem, error) {
	item := &models.FeaturedItem{
		ItemType:     req.ItemType,
		CarID:        req.CarID,
		MotorcycleID: req.MotorcycleID,
		CreatedByID:  createdBy,
	}

	if err := s.snapshot(item); err != nil {
		return nil, err
	}

	if err := s.checkDuplicate(item, uuid.Nil); err != nil {
		return nil, err
	}

	if err := s.db.Create(item).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateAssociation
		}
		return nil, err
	}
	return s.GetByID(item.ID)
}

func (s *FeaturedService) Update(id uuid.UUID, req *FeaturedItemRequest) (*models.FeaturedItem, error) {
	item, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	item.ItemType = req.ItemType
	item.CarID = req.CarID
	item.MotorcycleID = req.MotorcycleID

	if err := s.snapshot(item); err != nil {
		return nil, err
	}

	if err := s.checkDuplicate(item, id); err != nil {
		return nil, err
	}

	err = s.db.Model(item).Select(
		"item_type", "car_id", "motorcycle_id", "title", "price", "image",
	).Updates(item).Error
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateAssociation
		}
		return nil, err
	}
	return s.GetByID(id)
}

func (s *FeaturedService) GetByID(id uuid.UUID) (*models.FeaturedItem, error) {
	var item models.FeaturedItem
	err := s.db.Preload("Car").Preload("Motorcycle").First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (s *FeaturedService) List(params utils.PaginationParams) (*utils.PaginationResult, error) {
	var items []models.FeaturedItem
	var total int64

	query := s.db.Model(&models.FeaturedItem{})
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	query = utils.ApplySort(query, params, []string{"created_at", "title", "price"})
	query = utils.ApplyPagination(query, params)
	if err := query.Preload("Car").Preload("Motorcycle").Find(&items).Error; err != nil {
		return nil, err
	}

	result := utils.CreatePaginationResult(items, total, params)
	return &result, nil
}

func (s *FeaturedService) Delete(id uuid.UUID) error {
	item, err := s.GetByID(id)
	if err != nil {
		return err
	}
	return s.db.Delete(item).Error
}

// AvailableCars lists cars that have no curation entry yet, newest first.
// The result is a plain slice: curation is an admin surface and the catalog
// is small enough that paginating here buys nothing.
func (s *FeaturedService) AvailableCars() ([]models.Car, error) {
	var cars []models.Car
	sub := s.db.Model(&models.FeaturedItem{}).Select("car_id").Where("car_id IS NOT NULL")
	err := s.db.Where("id NOT IN (?)", sub).Order("created_at DESC").Find(&cars).Error
	return cars, err
}

func (s *FeaturedService) AvailableMotorcycles() ([]models.Motorcycle, error) {
	var motos []models.Motorcycle
	sub := s.db.Model(&models.FeaturedItem{}).Select("motorcycle_id").Where("motorcycle_id IS NOT NULL")
	err := s.db.Where("id NOT IN (?)", sub).Order("created_at DESC").Find(&motos).Error
	return motos, err
}

// snapshot validates the exclusive vehicle reference and copies the display
// title, price and image from the referenced vehicle.
func (s *FeaturedService) snapshot(item *models.FeaturedItem) error {
	switch item.ItemType {
	case models.VehicleKindCar:
		if item.CarID == nil || item.MotorcycleID != nil {
			return ErrInvalidReference
		}
		var car models.Car
		if err := s.db.First(&car, "id = ?", *item.CarID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidReference
			}
			return err
		}
		item.Title = car.DisplayTitle()
		item.Price = car.Price
		item.Image = car.Image
	case models.VehicleKindMotorcycle:
		if item.MotorcycleID == nil || item.CarID != nil {
			return ErrInvalidReference
		}
		var moto models.Motorcycle
		if err := s.db.First(&moto, "id = ?", *item.MotorcycleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidReference
			}
			return err
		}
		item.Title = moto.DisplayTitle()
		item.Price = moto.Price
		item.Image = moto.Image
	default:
		return ErrInvalidReference
	}
	return nil
}

// checkDuplicate enforces one entry per vehicle at the application level.
// The composite unique index alone does not catch it: NULL columns compare
// distinct, so two (car_id, NULL) rows would coexist happily.
func (s *FeaturedService) checkDuplicate(item *models.FeaturedItem, excludeID uuid.UUID) error {
	query := s.db.Model(&models.FeaturedItem{})
	switch item.ItemType {
	case models.VehicleKindCar:
		query = query.Where("car_id = ?", *item.CarID)
	case models.VehicleKindMotorcycle:
		query = query.Where("motorcycle_id = ?", *item.MotorcycleID)
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

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

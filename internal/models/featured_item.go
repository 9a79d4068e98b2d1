// internal/models/featured_item.go
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FeaturedItem marks a single vehicle as curated for the storefront. Exactly
// one of CarID/MotorcycleID is set, and ItemType names which one. Title,
// Price and Image are snapshots copied from the referenced vehicle on every
// save; they do not track later edits to the vehicle unless the entry itself
// is saved again.
//
// Ledger entries are hard-deleted, so there is no DeletedAt column: a soft
// delete would keep occupying the vehicle-pair unique index.
type FeaturedItem struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ItemType     VehicleKind `json:"item_type" gorm:"type:varchar(12);not null;index"`
	CarID        *uuid.UUID  `json:"car_id" gorm:"type:uuid;uniqueIndex:idx_featured_vehicle_pair"`
	MotorcycleID *uuid.UUID  `json:"motorcycle_id" gorm:"type:uuid;uniqueIndex:idx_featured_vehicle_pair"`

	// Snapshot fields
	Title string          `json:"title" gorm:"size:255;not null"`
	Price decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Image string          `json:"image" gorm:"size:500"`

	ImageURL string `json:"image_url,omitempty" gorm:"-"`

	CreatedByID uuid.UUID `json:"created_by_id" gorm:"type:uuid;not null;index"`

	// Relationships
	Car        *Car        `json:"car,omitempty" gorm:"foreignKey:CarID"`
	Motorcycle *Motorcycle `json:"motorcycle,omitempty" gorm:"foreignKey:MotorcycleID"`
	CreatedBy  User        `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID"`
}

func (f *FeaturedItem) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

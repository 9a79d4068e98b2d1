// internal/models/discount.go
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Discount is a time-windowed promotion on a single vehicle, with the same
// exclusive-reference and snapshot pattern as FeaturedItem. IsActive is a
// separately toggled flag: the start/end window is advisory metadata and
// activity is never derived from it. NewPrice is recomputed on every read
// and never persisted.
type Discount struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ItemType     VehicleKind `json:"item_type" gorm:"type:varchar(12);not null;index"`
	CarID        *uuid.UUID  `json:"car_id" gorm:"type:uuid;uniqueIndex:idx_discount_vehicle_pair"`
	MotorcycleID *uuid.UUID  `json:"motorcycle_id" gorm:"type:uuid;uniqueIndex:idx_discount_vehicle_pair"`

	// Snapshot fields
	Title         string          `json:"title" gorm:"size:255;not null"`
	OriginalPrice decimal.Decimal `json:"original_price" gorm:"type:decimal(10,2);not null"`
	Image         string          `json:"image" gorm:"size:500"`

	// Range of the percentage is intentionally not validated server-side.
	DiscountPercentage decimal.Decimal `json:"discount_percentage" gorm:"type:decimal(5,2);not null"`
	StartDate          time.Time       `json:"start_date"`
	EndDate            time.Time       `json:"end_date"`
	IsActive           bool            `json:"is_active" gorm:"default:true;index"`

	NewPrice decimal.Decimal `json:"new_price" gorm:"-"`
	ImageURL string          `json:"image_url,omitempty" gorm:"-"`

	CreatedByID uuid.UUID `json:"created_by_id" gorm:"type:uuid;not null;index"`

	// Relationships
	Car        *Car        `json:"car,omitempty" gorm:"foreignKey:CarID"`
	Motorcycle *Motorcycle `json:"motorcycle,omitempty" gorm:"foreignKey:MotorcycleID"`
	CreatedBy  User        `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID"`
}

func (d *Discount) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

func (d *Discount) AfterFind(tx *gorm.DB) error {
	d.NewPrice = d.ComputeNewPrice()
	return nil
}

// ComputeNewPrice applies original_price * (1 - pct/100), rounded to two
// fraction digits.
func (d *Discount) ComputeNewPrice() decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	return d.OriginalPrice.Mul(hundred.Sub(d.DiscountPercentage)).Div(hundred).Round(2)
}

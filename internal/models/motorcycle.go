// internal/models/motorcycle.go
package models

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type Motorcycle struct {
	BaseModel
	Title       string             `json:"title" gorm:"size:200;not null"`
	Description string             `json:"description" gorm:"type:text"`
	Price       decimal.Decimal    `json:"price" gorm:"type:decimal(10,2);not null"`
	Brand       string             `json:"brand" gorm:"size:100;not null;index"`
	Model       string             `json:"model" gorm:"size:100;not null"`
	Year        int                `json:"year" gorm:"not null"`
	Color       string             `json:"color" gorm:"size:50"`
	Engine      string             `json:"engine" gorm:"size:100"`
	Category    MotorcycleCategory `json:"category" gorm:"type:varchar(15);not null"`
	Mileage     int                `json:"mileage"`
	FuelType    string             `json:"fuel_type" gorm:"size:50"`
	Image       string             `json:"image" gorm:"size:500"`
	Gallery     pq.StringArray     `json:"gallery" gorm:"type:text[]"`
	IsSold      bool               `json:"is_sold" gorm:"default:false"`
	ImageURL    string             `json:"image_url,omitempty" gorm:"-"`
	CreatedByID uuid.UUID          `json:"created_by_id" gorm:"type:uuid;not null;index"`

	// Relationships
	CreatedBy User `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE"`
}

func (m *Motorcycle) DisplayTitle() string {
	return fmt.Sprintf("%s %s (%d)", m.Brand, m.Model, m.Year)
}

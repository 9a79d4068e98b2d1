// internal/models/common.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// Assigning the ID here instead of relying on a database default keeps the
// models portable across postgres and the sqlite driver used in tests.
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// JSONB type for PostgreSQL
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, j)
}

// Enums
type VehicleKind string

const (
	VehicleKindCar        VehicleKind = "car"
	VehicleKindMotorcycle VehicleKind = "motorcycle"
)

type Transmission string

const (
	TransmissionManual    Transmission = "manual"
	TransmissionAutomatic Transmission = "automatic"
	TransmissionElectric  Transmission = "electric"
)

type MotorcycleCategory string

const (
	MotorcycleCategoryCombustion    MotorcycleCategory = "combustion"
	MotorcycleCategoryElectric      MotorcycleCategory = "electric"
	MotorcycleCategoryAutomatic     MotorcycleCategory = "automatic"
	MotorcycleCategorySemiAutomatic MotorcycleCategory = "semi_automatic"
)

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Car struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Make         string         `gorm:"not null;size:100" json:"make"`
	Model        string         `gorm:"not null;size:100" json:"model"`
	Year         int            `gorm:"not null" json:"year"`
	Color        string         `gorm:"not null;size:50" json:"color"`
	Transmission string         `gorm:"size:50;default:'Manual'" json:"transmission"`
	FuelType     string         `gorm:"size:50;default:'Petrol'" json:"fuelType"`
	LicensePlate string         `gorm:"not null;size:20;uniqueIndex" json:"licensePlate"`
	PricePerDay  float64        `gorm:"not null" json:"pricePerDay"`
	Features     datatypes.JSON `json:"features,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

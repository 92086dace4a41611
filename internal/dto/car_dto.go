package dto

import "gorm.io/datatypes"

type CarRequest struct {
	Make         string         `json:"make"`
	Model        string         `json:"model"`
	Year         int            `json:"year"`
	Color        string         `json:"color"`
	Transmission string         `json:"transmission"`
	FuelType     string         `json:"fuelType"`
	LicensePlate string         `json:"licensePlate"`
	PricePerDay  float64        `json:"pricePerDay"`
	Features     datatypes.JSON `json:"features,omitempty"`
}

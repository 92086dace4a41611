package dto

import (
	"time"

	"github.com/google/uuid"
)

type BookingRequest struct {
	CarID     uuid.UUID `json:"carId"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

type BookingStatusRequest struct {
	Status string `json:"status"`
}

type BookingResponse struct {
	ID         uuid.UUID `json:"id"`
	CarID      uuid.UUID `json:"carId"`
	CarMake    string    `json:"carMake"`
	CarModel   string    `json:"carModel"`
	UserEmail  string    `json:"userEmail"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	TotalPrice float64   `json:"totalPrice"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

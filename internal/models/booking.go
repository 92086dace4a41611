package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus is the closed lifecycle of a booking. Cancelled bookings
// are kept (soft cancel) and excluded from availability checks.
type BookingStatus string

const (
	BookingPending   BookingStatus = "Pending"
	BookingActive    BookingStatus = "Active"
	BookingCompleted BookingStatus = "Completed"
	BookingCancelled BookingStatus = "Cancelled"
)

// ValidBookingStatus reports whether s is one of the known statuses.
func ValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case BookingPending, BookingActive, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID         uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID     `gorm:"type:uuid;not null;index" json:"userId"`
	CarID      uuid.UUID     `gorm:"type:uuid;not null;index" json:"carId"`
	StartDate  time.Time     `gorm:"not null" json:"startDate"`
	EndDate    time.Time     `gorm:"not null" json:"endDate"`
	TotalPrice float64       `gorm:"not null" json:"totalPrice"`
	Status     BookingStatus `gorm:"size:20;not null;default:'Pending'" json:"status"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
	Car        Car           `gorm:"foreignKey:CarID" json:"-"`
	User       User          `gorm:"foreignKey:UserID" json:"-"`
}

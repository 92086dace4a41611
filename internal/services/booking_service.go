package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/drivehub/carrental/internal/dto"
	"github.com/drivehub/carrental/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrBookingForbidden = errors.New("not allowed to access this booking")
	ErrCarUnavailable   = errors.New("car is not available for the selected dates")
	ErrBadDates         = errors.New("invalid booking dates")
	ErrBadStatus        = errors.New("invalid status")
)

type BookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

// Create books a car for the user. Availability is a single overlap
// predicate against non-cancelled bookings of the same car; the total
// price is days multiplied by the car's daily rate.
func (s *BookingService) Create(userID uuid.UUID, req *dto.BookingRequest) (*dto.BookingResponse, error) {
	today := time.Now().Truncate(24 * time.Hour)
	if req.StartDate.Before(today) {
		return nil, fmt.Errorf("%w: start date cannot be in the past", ErrBadDates)
	}
	if !req.EndDate.After(req.StartDate) {
		return nil, fmt.Errorf("%w: end date must be after start date", ErrBadDates)
	}

	var car models.Car
	if err := s.db.First(&car, "id = ?", req.CarID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, err
	}

	var conflicts int64
	err := s.db.Model(&models.Booking{}).
		Where("car_id = ? AND status <> ? AND start_date <= ? AND end_date >= ?",
			req.CarID, models.BookingCancelled, req.EndDate, req.StartDate).
		Count(&conflicts).Error
	if err != nil {
		return nil, err
	}
	if conflicts > 0 {
		return nil, ErrCarUnavailable
	}

	days := int(req.EndDate.Sub(req.StartDate).Hours() / 24)
	booking := models.Booking{
		ID:         uuid.New(),
		UserID:     userID,
		CarID:      req.CarID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		TotalPrice: float64(days) * car.PricePerDay,
		Status:     models.BookingPending,
	}

	if err := s.db.Create(&booking).Error; err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return s.Get(booking.ID, userID, models.RoleUser)
}

// List returns bookings newest first: all of them for admins, only the
// caller's own otherwise.
func (s *BookingService) List(userID uuid.UUID, role models.Role) ([]dto.BookingResponse, error) {
	query := s.db.Model(&models.Booking{}).Preload("Car").Preload("User")
	if role != models.RoleAdmin {
		query = query.Where("user_id = ?", userID)
	}

	var bookings []models.Booking
	if err := query.Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return toBookingResponses(bookings), nil
}

func (s *BookingService) Get(id, userID uuid.UUID, role models.Role) (*dto.BookingResponse, error) {
	var booking models.Booking
	err := s.db.Preload("Car").Preload("User").First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if role != models.RoleAdmin && booking.UserID != userID {
		return nil, ErrBookingForbidden
	}

	resp := toBookingResponse(&booking)
	return &resp, nil
}

// UpdateStatus moves a booking to another state in the closed status set.
func (s *BookingService) UpdateStatus(id uuid.UUID, status string) error {
	if !models.ValidBookingStatus(status) {
		return ErrBadStatus
	}

	res := s.db.Model(&models.Booking{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// Cancel soft-cancels a booking; the row is kept for history and revenue
// queries. Non-admins may only cancel their own bookings.
func (s *BookingService) Cancel(id, userID uuid.UUID, role models.Role) error {
	var booking models.Booking
	if err := s.db.First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return err
	}

	if role != models.RoleAdmin && booking.UserID != userID {
		return ErrBookingForbidden
	}

	return s.db.Model(&booking).Update("status", models.BookingCancelled).Error
}

func toBookingResponses(bookings []models.Booking) []dto.BookingResponse {
	out := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i]))
	}
	return out
}

func toBookingResponse(b *models.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:         b.ID,
		CarID:      b.CarID,
		CarMake:    b.Car.Make,
		CarModel:   b.Car.Model,
		UserEmail:  b.User.Email,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		TotalPrice: b.TotalPrice,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt,
	}
}

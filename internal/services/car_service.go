package services

import (
	"errors"
	"fmt"

	"github.com/drivehub/carrental/internal/dto"
	"github.com/drivehub/carrental/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCarNotFound = errors.New("car not found")
	ErrCarInvalid  = errors.New("price per day must be greater than zero")
	ErrIDMismatch  = errors.New("id mismatch")
)

type CarService struct {
	db *gorm.DB
}

func NewCarService(db *gorm.DB) *CarService {
	return &CarService{db: db}
}

// List returns cars newest first, optionally filtered by an exact match on
// make, model or license plate.
func (s *CarService) List(search string) ([]models.Car, error) {
	query := s.db.Model(&models.Car{})
	if search != "" {
		query = query.Where("make = ? OR model = ? OR license_plate = ?", search, search, search)
	}

	var cars []models.Car
	if err := query.Order("created_at DESC").Find(&cars).Error; err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	return cars, nil
}

func (s *CarService) Get(id uuid.UUID) (*models.Car, error) {
	var car models.Car
	if err := s.db.First(&car, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, err
	}
	return &car, nil
}

func (s *CarService) Create(req *dto.CarRequest) (*models.Car, error) {
	if req.PricePerDay <= 0 {
		return nil, ErrCarInvalid
	}

	car := models.Car{
		ID:           uuid.New(),
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		Color:        req.Color,
		Transmission: defaultIfEmpty(req.Transmission, "Manual"),
		FuelType:     defaultIfEmpty(req.FuelType, "Petrol"),
		LicensePlate: req.LicensePlate,
		PricePerDay:  req.PricePerDay,
		Features:     req.Features,
	}

	if err := s.db.Create(&car).Error; err != nil {
		return nil, fmt.Errorf("failed to create car: %w", err)
	}
	return &car, nil
}

func (s *CarService) Update(id uuid.UUID, car *models.Car) error {
	if id != car.ID {
		return ErrIDMismatch
	}
	if car.PricePerDay <= 0 {
		return ErrCarInvalid
	}

	res := s.db.Model(&models.Car{}).Where("id = ?", id).Updates(map[string]interface{}{
		"make":          car.Make,
		"model":         car.Model,
		"year":          car.Year,
		"color":         car.Color,
		"transmission":  car.Transmission,
		"fuel_type":     car.FuelType,
		"license_plate": car.LicensePlate,
		"price_per_day": car.PricePerDay,
		"features":      car.Features,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCarNotFound
	}
	return nil
}

func (s *CarService) Delete(id uuid.UUID) error {
	res := s.db.Delete(&models.Car{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCarNotFound
	}
	return nil
}

func defaultIfEmpty(val, fallback string) string {
	if val == "" {
		return fallback
	}
	return val
}

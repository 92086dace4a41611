package services

import (
	"fmt"
	"time"

	"github.com/drivehub/carrental/internal/dto"
	"github.com/drivehub/carrental/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

func (s *DashboardService) Admin() (*dto.AdminDashboardResponse, error) {
	var resp dto.AdminDashboardResponse

	if err := s.db.Model(&models.Car{}).Count(&resp.TotalCars).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Booking{}).
		Where("status = ?", models.BookingActive).
		Count(&resp.ActiveBookings).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.User{}).Count(&resp.TotalCustomers).Error; err != nil {
		return nil, err
	}

	var err error
	if resp.TotalRevenue, err = s.completedRevenue(s.db.Model(&models.Booking{})); err != nil {
		return nil, err
	}

	var recent []models.Booking
	if err := s.db.Preload("Car").Preload("User").
		Order("created_at DESC").Limit(5).Find(&recent).Error; err != nil {
		return nil, fmt.Errorf("failed to load recent bookings: %w", err)
	}
	resp.RecentBookings = toBookingResponses(recent)

	if resp.MonthlyRevenue, err = s.monthlyRevenue(6); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (s *DashboardService) User(userID uuid.UUID) (*dto.UserDashboardResponse, error) {
	var resp dto.UserDashboardResponse

	if err := s.db.Model(&models.Booking{}).
		Where("user_id = ? AND status = ?", userID, models.BookingActive).
		Count(&resp.ActiveBookings).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Booking{}).
		Where("user_id = ?", userID).
		Count(&resp.TotalBookings).Error; err != nil {
		return nil, err
	}

	var err error
	query := s.db.Model(&models.Booking{}).Where("user_id = ?", userID)
	if resp.TotalSpent, err = s.completedRevenue(query); err != nil {
		return nil, err
	}
	// Every $10 spent earns one loyalty point.
	resp.LoyaltyPoints = int(resp.TotalSpent / 10)

	var mine []models.Booking
	if err := s.db.Preload("Car").Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").Limit(10).Find(&mine).Error; err != nil {
		return nil, fmt.Errorf("failed to load user bookings: %w", err)
	}
	resp.MyBookings = toBookingResponses(mine)

	return &resp, nil
}

func (s *DashboardService) completedRevenue(query *gorm.DB) (float64, error) {
	var total *float64
	err := query.Where("status = ?", models.BookingCompleted).
		Select("SUM(total_price)").Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

// monthlyRevenue sums completed-booking revenue per calendar month for the
// last n months, oldest first. Month windows keep the query portable
// across SQL dialects.
func (s *DashboardService) monthlyRevenue(n int) ([]dto.MonthlyRevenue, error) {
	now := time.Now()
	out := make([]dto.MonthlyRevenue, 0, n)

	for i := n - 1; i >= 0; i-- {
		month := now.AddDate(0, -i, 0)
		start := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)

		var total *float64
		err := s.db.Model(&models.Booking{}).
			Where("status = ? AND created_at >= ? AND created_at < ?",
				models.BookingCompleted, start, end).
			Select("SUM(total_price)").Scan(&total).Error
		if err != nil {
			return nil, err
		}

		revenue := 0.0
		if total != nil {
			revenue = *total
		}
		out = append(out, dto.MonthlyRevenue{
			Month:   start.Format("Jan"),
			Revenue: revenue,
		})
	}

	return out, nil
}

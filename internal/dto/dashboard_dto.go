package dto

type AdminDashboardResponse struct {
	TotalCars      int64             `json:"totalCars"`
	ActiveBookings int64             `json:"activeBookings"`
	TotalRevenue   float64           `json:"totalRevenue"`
	TotalCustomers int64             `json:"totalCustomers"`
	RecentBookings []BookingResponse `json:"recentBookings"`
	MonthlyRevenue []MonthlyRevenue  `json:"monthlyRevenue"`
}

type UserDashboardResponse struct {
	ActiveBookings int64             `json:"activeBookings"`
	TotalBookings  int64             `json:"totalBookings"`
	TotalSpent     float64           `json:"totalSpent"`
	LoyaltyPoints  int               `json:"loyaltyPoints"`
	MyBookings     []BookingResponse `json:"myBookings"`
}

type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}

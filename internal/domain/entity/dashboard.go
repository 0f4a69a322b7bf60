package entity

import (
	"time"

	"github.com/google/uuid"
)

// StatusCount is a count grouped by a status or role label.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// MonthlyAmount is one point of a monthly series. Month is formatted YYYY-MM.
type MonthlyAmount struct {
	Month  string `json:"month"`
	Amount int64  `json:"amount"`
	Count  int64  `json:"count"`
}

// DatedAmount is a raw row used to build monthly series.
type DatedAmount struct {
	At     time.Time
	Amount int64
}

// ListingViews is a listing ranked by views.
type ListingViews struct {
	VehicleID uuid.UUID `json:"vehicle_id"`
	Title     string    `json:"title"`
	ViewCount int64     `json:"view_count"`
	Favorites int64     `json:"favorites"`
}

// SellerDashboard aggregates a seller's marketplace activity.
type SellerDashboard struct {
	ListingsByStatus []StatusCount   `json:"listings_by_status"`
	TotalViews       int64           `json:"total_views"`
	TotalFavorites   int64           `json:"total_favorites"`
	Conversations    int64           `json:"conversations"`
	UnreadMessages   int64           `json:"unread_messages"`
	SalesCount       int64           `json:"sales_count"`
	RevenueMinor     int64           `json:"revenue_minor"`
	MonthlyRevenue   []MonthlyAmount `json:"monthly_revenue"`
	TopListings      []ListingViews  `json:"top_listings"`
}

// AdminDashboard aggregates marketplace-wide figures.
type AdminDashboard struct {
	UsersByRole          []StatusCount   `json:"users_by_role"`
	ListingsByStatus     []StatusCount   `json:"listings_by_status"`
	TransactionsByStatus []StatusCount   `json:"transactions_by_status"`
	GrossVolumeMinor     int64           `json:"gross_volume_minor"`
	MonthlyVolume        []MonthlyAmount `json:"monthly_volume"`
	MonthlyNewUsers      []MonthlyAmount `json:"monthly_new_users"`
}

// SystemStats is a host resource snapshot for the admin panel.
type SystemStats struct {
	Hostname      string  `json:"hostname"`
	OS            string  `json:"os"`
	Platform      string  `json:"platform"`
	CPUCores      int     `json:"cpu_cores"`
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryTotal   string  `json:"memory_total"`
	MemoryUsed    string  `json:"memory_used"`
	MemoryPercent float64 `json:"memory_percent"`
	DiskTotal     string  `json:"disk_total"`
	DiskUsed      string  `json:"disk_used"`
	DiskPercent   float64 `json:"disk_percent"`
	Uptime        string  `json:"uptime"`
	Goroutines    int     `json:"goroutines"`
	ProcessUptime string  `json:"process_uptime"`
}

package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard.
type DashboardSummaryDTO struct {
	ActivePlatforms int             `json:"active_platforms"`
	Customers       int             `json:"customers"`
	MonthlyRevenue  decimal.Decimal `json:"monthly_revenue"`
	// Metadatos del período
	DateLabel string `json:"date_label"` // ej: "Febrero 2026"
}

// MonthlyReportDTO respuesta de GET /api/reports/monthly: siempre 12 meses.
type MonthlyReportDTO struct {
	Year         int               `json:"year"`
	TotalRevenue decimal.Decimal   `json:"total_revenue"`
	Months       []MonthRevenueDTO `json:"months"`
}

// MonthRevenueDTO un mes del reporte.
type MonthRevenueDTO struct {
	Month int             `json:"month"`
	Name  string          `json:"name"` // Ene, Feb, ...
	Sales int             `json:"sales"`
	Total decimal.Decimal `json:"total"`
}

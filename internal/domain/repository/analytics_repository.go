package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyRevenueResult ingresos de un mes (1–12) por fecha de venta.
type MonthlyRevenueResult struct {
	Month   int
	Sales   int
	Revenue decimal.Decimal
}

// AnalyticsRepository define las consultas de lectura del dashboard y reportes de streaming.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	CountActivePlatforms(ctx context.Context) (int, error)
	CountCustomers(ctx context.Context) (int, error)
	// GetRevenue suma de precios de ventas con sale_date en [start, end).
	GetRevenue(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
	// GetMonthlyRevenue solo devuelve los meses con ventas.
	GetMonthlyRevenue(ctx context.Context, year int) ([]MonthlyRevenueResult, error)
}

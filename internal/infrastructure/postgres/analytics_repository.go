package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura del dashboard y reportes.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// CountActivePlatforms plataformas con is_active.
func (r *AnalyticsRepo) CountActivePlatforms(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM platforms WHERE is_active`).Scan(&n); err != nil {
		return 0, fmt.Errorf("analytics.CountActivePlatforms: %w", err)
	}
	return n, nil
}

// CountCustomers total de clientes.
func (r *AnalyticsRepo) CountCustomers(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("analytics.CountCustomers: %w", err)
	}
	return n, nil
}

// GetRevenue suma de precios con sale_date en [start, end).
func (r *AnalyticsRepo) GetRevenue(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	const query = `SELECT COALESCE(SUM(price), 0) FROM sales WHERE sale_date >= $1 AND sale_date < $2`
	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, start, end).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("analytics.GetRevenue: %w", err)
	}
	return total, nil
}

// GetMonthlyRevenue ventas e ingresos agrupados por mes de sale_date; solo meses con ventas.
func (r *AnalyticsRepo) GetMonthlyRevenue(ctx context.Context, year int) ([]repository.MonthlyRevenueResult, error) {
	const query = `
	SELECT
	    EXTRACT(MONTH FROM sale_date)::INT AS month,
	    COUNT(*)                           AS sales,
	    COALESCE(SUM(price), 0)            AS revenue
	FROM sales
	WHERE EXTRACT(YEAR FROM sale_date) = $1
	GROUP BY 1
	ORDER BY 1`

	rows, err := r.pool.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetMonthlyRevenue: %w", err)
	}
	defer rows.Close()

	var results []repository.MonthlyRevenueResult
	for rows.Next() {
		var row repository.MonthlyRevenueResult
		if err := rows.Scan(&row.Month, &row.Sales, &row.Revenue); err != nil {
			return nil, fmt.Errorf("analytics.GetMonthlyRevenue scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/analytics"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/repository"
)

var lima = time.FixedZone("America/Lima", -5*3600)

type fakeAnalytics struct {
	platforms, customers int
	revenue              decimal.Decimal
	months               []repository.MonthlyRevenueResult
	err                  error

	start, end time.Time
	year       int
}

func (f *fakeAnalytics) CountActivePlatforms(context.Context) (int, error) { return f.platforms, f.err }
func (f *fakeAnalytics) CountCustomers(context.Context) (int, error)       { return f.customers, nil }
func (f *fakeAnalytics) GetRevenue(_ context.Context, start, end time.Time) (decimal.Decimal, error) {
	f.start, f.end = start, end
	return f.revenue, nil
}
func (f *fakeAnalytics) GetMonthlyRevenue(_ context.Context, year int) ([]repository.MonthlyRevenueResult, error) {
	f.year = year
	return f.months, f.err
}

func reloj() time.Time { return time.Date(2026, 10, 16, 20, 0, 0, 0, lima) }

func TestGetSummary_MesEnCurso(t *testing.T) {
	repo := &fakeAnalytics{platforms: 4, customers: 27, revenue: decimal.RequireFromString("1234.567")}
	uc := analytics.NewDashboardUseCase(repo, lima).WithClock(reloj)

	s, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, s.ActivePlatforms)
	assert.Equal(t, 27, s.Customers)
	assert.Equal(t, "1234.57", s.MonthlyRevenue.StringFixed(2))
	assert.Equal(t, "Octubre 2026", s.DateLabel)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), repo.start)
	assert.Equal(t, time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC), repo.end)
}

func TestGetSummary_ErrorDeRepositorio(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeAnalytics{err: errors.New("db down")}, lima)
	_, err := uc.GetSummary(context.Background())
	assert.Error(t, err)
}

func TestMonthlyReport_DoceMesesConCeros(t *testing.T) {
	repo := &fakeAnalytics{months: []repository.MonthlyRevenueResult{
		{Month: 2, Sales: 3, Revenue: decimal.NewFromInt(45)},
		{Month: 10, Sales: 1, Revenue: decimal.RequireFromString("15.50")},
	}}
	uc := analytics.NewDashboardUseCase(repo, lima).WithClock(reloj)

	r, err := uc.MonthlyReport(context.Background(), 0)
	require.NoError(t, err)

	assert.Equal(t, 2026, repo.year, "año 0 usa el actual")
	require.Len(t, r.Months, 12)
	assert.Equal(t, "Ene", r.Months[0].Name)
	assert.True(t, r.Months[0].Total.IsZero())
	assert.Equal(t, 3, r.Months[1].Sales)
	assert.Equal(t, "Oct", r.Months[9].Name)
	assert.True(t, r.Months[9].Total.Equal(decimal.RequireFromString("15.50")))
	assert.True(t, r.TotalRevenue.Equal(decimal.RequireFromString("60.50")))
}

func TestMonthlyReport_AnioExplicito(t *testing.T) {
	repo := &fakeAnalytics{}
	r, err := analytics.NewDashboardUseCase(repo, lima).MonthlyReport(context.Background(), 2024)
	require.NoError(t, err)
	assert.Equal(t, 2024, r.Year)
	assert.True(t, r.TotalRevenue.IsZero())
}

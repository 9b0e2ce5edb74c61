// Package analytics contiene los casos de uso del dashboard y los reportes de ventas de streaming.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/dto"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/repository"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/pkg/fechas"
	"github.com/shopspring/decimal"
)

var (
	mesesLargos = [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	mesesCortos = [...]string{"Ene", "Feb", "Mar", "Abr", "May", "Jun", "Jul", "Ago", "Sep", "Oct", "Nov", "Dic"}
)

// DashboardUseCase genera el resumen del mes en curso y el reporte anual.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	loc           *time.Location
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, loc *time.Location) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, loc: loc, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// GetSummary construye el DashboardSummaryDTO.
//
// Tres llamadas en paralelo:
//  1. CountActivePlatforms
//  2. CountCustomers
//  3. GetRevenue(inicio de mes, mañana)
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	hoy := fechas.Hoy(uc.now(), uc.loc)
	monthStart := fechas.InicioMes(hoy)
	monthEnd := fechas.SiguienteDia(hoy)

	// ── Goroutines para paralelizar las 3 consultas DB ────────────────────────
	type countResult struct {
		n   int
		err error
	}
	type revenueResult struct {
		total decimal.Decimal
		err   error
	}

	platformsCh := make(chan countResult, 1)
	customersCh := make(chan countResult, 1)
	revenueCh := make(chan revenueResult, 1)

	go func() {
		n, err := uc.analyticsRepo.CountActivePlatforms(ctx)
		platformsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountCustomers(ctx)
		customersCh <- countResult{n, err}
	}()
	go func() {
		total, err := uc.analyticsRepo.GetRevenue(ctx, monthStart, monthEnd)
		revenueCh <- revenueResult{total, err}
	}()

	platforms := <-platformsCh
	customers := <-customersCh
	revenue := <-revenueCh

	if platforms.err != nil {
		return nil, fmt.Errorf("dashboard: plataformas activas: %w", platforms.err)
	}
	if customers.err != nil {
		return nil, fmt.Errorf("dashboard: clientes: %w", customers.err)
	}
	if revenue.err != nil {
		return nil, fmt.Errorf("dashboard: ingresos del mes: %w", revenue.err)
	}

	return &dto.DashboardSummaryDTO{
		ActivePlatforms: platforms.n,
		Customers:       customers.n,
		MonthlyRevenue:  revenue.total.Round(2),
		DateLabel:       monthLabel(hoy),
	}, nil
}

// MonthlyReport ingresos del año por mes de sale_date; los meses sin ventas van en cero.
// year <= 0 usa el año en curso.
func (uc *DashboardUseCase) MonthlyReport(ctx context.Context, year int) (*dto.MonthlyReportDTO, error) {
	if year <= 0 {
		year = fechas.Hoy(uc.now(), uc.loc).Year()
	}
	rows, err := uc.analyticsRepo.GetMonthlyRevenue(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("reporte mensual: %w", err)
	}

	out := &dto.MonthlyReportDTO{Year: year, TotalRevenue: decimal.Zero, Months: make([]dto.MonthRevenueDTO, 12)}
	for i := range out.Months {
		out.Months[i] = dto.MonthRevenueDTO{Month: i + 1, Name: mesesCortos[i], Total: decimal.Zero}
	}
	for _, r := range rows {
		if r.Month < 1 || r.Month > 12 {
			continue
		}
		m := &out.Months[r.Month-1]
		m.Sales += r.Sales
		m.Total = m.Total.Add(r.Revenue)
		out.TotalRevenue = out.TotalRevenue.Add(r.Revenue)
	}
	return out, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", mesesLargos[t.Month()-1], t.Year())
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Planes de venta.
const (
	PlanMonthly     = "MONTHLY"
	PlanYearly      = "YEARLY"
	PlanCustomRange = "CUSTOM_RANGE"
)

// Estados de venta.
const (
	SaleActive    = "ACTIVE"
	SaleCancelled = "CANCELLED"
	SaleExpired   = "EXPIRED"
)

// Sale suscripción vendida a un cliente.
type Sale struct {
	ID             string          `json:"id"`
	PlatformID     string          `json:"platform_id"`
	CustomerID     string          `json:"customer_id"`
	SaleDate       time.Time       `json:"sale_date"`
	PaymentMethod  *string         `json:"payment_method"`
	Plan           string          `json:"plan"`
	StartDate      time.Time       `json:"start_date"`
	EndDate        *time.Time      `json:"end_date"`
	NextChargeDate *time.Time      `json:"next_charge_date"`
	Price          decimal.Decimal `json:"price"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
}

// Recurrente planes que generan recordatorios sucesivos.
func (s *Sale) Recurrente() bool {
	return s.Plan == PlanMonthly || s.Plan == PlanYearly
}

// SaleDetalle venta con plataforma y cliente aplanados.
type SaleDetalle struct {
	Sale
	PlatformName  string  `json:"platform_name"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail *string `json:"customer_email"`
	CustomerPhone *string `json:"customer_phone"`
}

// PlanValido indica si p es un plan reconocido.
func PlanValido(p string) bool {
	switch p {
	case PlanMonthly, PlanYearly, PlanCustomRange:
		return true
	}
	return false
}

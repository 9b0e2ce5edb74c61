package dto

import (
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// PlatformRequest body para POST/PUT /api/platforms.
type PlatformRequest struct {
	Name         string          `json:"name" validate:"required,max=80"`
	MonthlyPrice decimal.Decimal `json:"monthly_price"`
	YearlyPrice  decimal.Decimal `json:"yearly_price"`
	IsActive     *bool           `json:"is_active"`
}

// CustomerRequest datos del cliente; email o teléfono lo identifican.
type CustomerRequest struct {
	FullName string `json:"full_name" validate:"required,max=150"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
}

// CreateSaleRequest body para POST /api/sales. Se usa CustomerID si viene; si no, Customer.
type CreateSaleRequest struct {
	CustomerID    string           `json:"customer_id" validate:"omitempty,uuid"`
	Customer      *CustomerRequest `json:"customer"`
	PlatformID    string           `json:"platform_id" validate:"required,uuid"`
	SaleDate      string           `json:"sale_date" validate:"omitempty,datetime=2006-01-02"`
	PaymentMethod string           `json:"payment_method" validate:"max=40"`
	Plan          string           `json:"plan" validate:"required,oneof=MONTHLY YEARLY CUSTOM_RANGE"`
	StartDate     string           `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate       string           `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Price         decimal.Decimal  `json:"price"`
}

// UpdateStatusRequest body para cambiar el estado de una venta u orden.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// MensajeWhatsAppRequest credenciales a enviar al cliente.
type MensajeWhatsAppRequest struct {
	Phone    string `json:"phone" validate:"omitempty,max=20"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Profile  string `json:"profile"`
	PIN      string `json:"pin"`
}

// MensajeWhatsAppResponse texto y enlace listo para abrir.
type MensajeWhatsAppResponse struct {
	Mensaje string `json:"mensaje"`
	URL     string `json:"url"`
}

// CronRemindersResponse resultado de GET /api/cron/reminders.
type CronRemindersResponse struct {
	Processed *int   `json:"processed,omitempty"`
	Message   string `json:"message,omitempty"`
}

// SaleResponse venta creada con plataforma y cliente.
type SaleResponse struct {
	*entity.SaleDetalle
}

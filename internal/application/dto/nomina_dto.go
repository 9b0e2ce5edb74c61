package dto

import (
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// SaldoPendienteResponse saldo de un empleado desde su último ciclo cerrado.
type SaldoPendienteResponse struct {
	EmpleadoID      string           `json:"empleado_id"`
	Nombre          string           `json:"nombre"`
	Codigo          string           `json:"codigo"`
	TotalProduccion decimal.Decimal  `json:"total_produccion"`
	TotalAdelantos  decimal.Decimal  `json:"total_adelantos"`
	TotalDescuentos decimal.Decimal  `json:"total_descuentos"`
	NetoPendiente   decimal.Decimal  `json:"neto_pendiente"`
	UltimoPagoFecha *string          `json:"ultimo_pago_fecha"`
	UltimoPagoMonto *decimal.Decimal `json:"ultimo_pago_monto"`
}

// LiquidarRequest body para POST /api/pagos/liquidar.
type LiquidarRequest struct {
	EmpleadoID  string          `json:"empleado_id" validate:"required,uuid"`
	TotalPagado decimal.Decimal `json:"total_pagado"`
}

// LiquidacionResponse ciclo y boleta creados. Advertencia aparece si total_pagado difiere del neto.
type LiquidacionResponse struct {
	Ciclo       *entity.Ciclo   `json:"ciclo"`
	Boleta      *entity.Boleta  `json:"boleta"`
	Neto        decimal.Decimal `json:"neto_pendiente"`
	Advertencia string          `json:"advertencia,omitempty"`
}

// CerrarCicloRequest body para POST /api/pagos/cerrar.
type CerrarCicloRequest struct {
	CicloID string `json:"cicloId"`
}

// OkResponse {"ok": true}.
type OkResponse struct {
	Ok bool `json:"ok"`
}

// URLResponse URL firmada de un archivo.
type URLResponse struct {
	URL      string `json:"url"`
	ExpiraEn int    `json:"expira_en"`
}

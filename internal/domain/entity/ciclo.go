package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de ciclo. Este sistema solo crea ciclos CERRADO.
const (
	CicloAbierto = "ABIERTO"
	CicloCerrado = "CERRADO"
)

// Ciclo periodo liquidado de un empleado.
type Ciclo struct {
	ID          string          `json:"id"`
	EmpleadoID  string          `json:"empleado_id"`
	FechaInicio time.Time       `json:"fecha_inicio"`
	FechaFin    time.Time       `json:"fecha_fin"`
	TotalPagado decimal.Decimal `json:"total_pagado"`
	Estado      string          `json:"estado"`
	CreatedAt   time.Time       `json:"created_at"`
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una marca de asistencia.
const (
	AsistenciaCompleto   = "COMPLETO"
	AsistenciaIncompleto = "INCOMPLETO"
	AsistenciaPendiente  = "PENDIENTE"
)

// Asistencia marca diaria de un empleado (por código). Las horas van como "HH:MM:SS".
type Asistencia struct {
	ID           string           `json:"id"`
	Fecha        time.Time        `json:"fecha"`
	Codigo       string           `json:"codigo"`
	Turno        string           `json:"turno"`
	Estado       string           `json:"estado"`
	HoraEntrada  *string          `json:"hora_entrada"`
	HoraSalida   *string          `json:"hora_salida"`
	HorasDecimal *decimal.Decimal `json:"horas_decimal"`
}

// AsistenciaDetalle marca con el empleado resuelto por código (nil si el código no existe).
type AsistenciaDetalle struct {
	Asistencia
	Empleado *Empleado `json:"empleado"`
}

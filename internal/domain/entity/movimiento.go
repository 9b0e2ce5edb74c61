package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento.
const (
	MovimientoAdelanto  = "adelanto"
	MovimientoDescuento = "descuento"
	MovimientoAjuste    = "ajuste"
	MovimientoBono      = "bono"
)

// Signos de movimiento: "+" suma a adelantos, "-" a descuentos.
const (
	SignoPositivo = "+"
	SignoNegativo = "-"
)

// Movimiento ajuste manual del saldo de un empleado.
type Movimiento struct {
	ID         string          `json:"id"`
	EmpleadoID string          `json:"empleado_id"`
	Tipo       string          `json:"tipo"`
	Monto      decimal.Decimal `json:"monto"`
	Signo      string          `json:"signo"`
	Fecha      time.Time       `json:"fecha"`
	Nota       *string         `json:"nota"`
	CreatedAt  time.Time       `json:"created_at"`
}

// MovimientoDetalle movimiento con el nombre del empleado.
type MovimientoDetalle struct {
	Movimiento
	EmpleadoNombre string `json:"empleado_nombre"`
}

// TipoMovimientoValido indica si t es un tipo reconocido.
func TipoMovimientoValido(t string) bool {
	switch t {
	case MovimientoAdelanto, MovimientoDescuento, MovimientoAjuste, MovimientoBono:
		return true
	}
	return false
}

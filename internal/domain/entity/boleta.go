package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Boleta boleta de pago de un ciclo (una por ciclo).
type Boleta struct {
	ID              string          `json:"id"`
	EmpleadoID      string          `json:"empleado_id"`
	CicloID         string          `json:"ciclo_id"`
	TotalProduccion decimal.Decimal `json:"total_produccion"`
	TotalAdelantos  decimal.Decimal `json:"total_adelantos"`
	TotalDescuentos decimal.Decimal `json:"total_descuentos"`
	TotalNeto       decimal.Decimal `json:"total_neto"`
	Pagado          bool            `json:"pagado"`
	PagadoAt        *time.Time      `json:"pagado_at"`
	PDFPath         *string         `json:"pdf_path"`
	CreatedAt       time.Time       `json:"created_at"`
}

// CalcularNeto producción menos adelantos y descuentos.
func (b *Boleta) CalcularNeto() {
	b.TotalNeto = b.TotalProduccion.Sub(b.TotalAdelantos).Sub(b.TotalDescuentos)
}

// BoletaDetalle boleta con el empleado y el periodo del ciclo aplanados.
type BoletaDetalle struct {
	Boleta
	EmpleadoNombre string    `json:"empleado_nombre"`
	EmpleadoCodigo string    `json:"empleado_codigo"`
	FechaInicio    time.Time `json:"fecha_inicio"`
	FechaFin       time.Time `json:"fecha_fin"`
}

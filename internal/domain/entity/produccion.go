package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produccion registro de trabajo a destajo. TarifaAplicada y Subtotal se congelan al insertar.
type Produccion struct {
	ID             string          `json:"id"`
	EmpleadoID     string          `json:"empleado_id"`
	TipoTrabajoID  string          `json:"tipo_trabajo_id"`
	Fecha          time.Time       `json:"fecha"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	TarifaAplicada decimal.Decimal `json:"tarifa_aplicada"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	CreatedAt      time.Time       `json:"created_at"`
}

// CalcularSubtotal cantidad × tarifa aplicada.
func (p *Produccion) CalcularSubtotal() {
	p.Subtotal = p.Cantidad.Mul(p.TarifaAplicada)
}

// ProduccionDetalle registro con empleado y tipo de trabajo aplanados.
type ProduccionDetalle struct {
	Produccion
	EmpleadoNombre    string `json:"empleado_nombre"`
	EmpleadoCodigo    string `json:"empleado_codigo"`
	TipoTrabajoNombre string `json:"tipo_trabajo_nombre"`
	Categoria         string `json:"categoria"`
}

// ProduccionStats resumen del día y de la semana en curso (desde el lunes).
type ProduccionStats struct {
	TotalHoy        decimal.Decimal `json:"total_hoy"`
	RegistrosSemana int             `json:"registros_semana"`
	TotalSemana     decimal.Decimal `json:"total_semana"`
}

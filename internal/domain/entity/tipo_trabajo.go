package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TipoTrabajo trabajo a destajo. Descripcion funciona como categoría en la boleta.
// TarifaActual solo se aplica a producción nueva.
type TipoTrabajo struct {
	ID           string          `json:"id"`
	Nombre       string          `json:"nombre"`
	Descripcion  string          `json:"descripcion"`
	TarifaActual decimal.Decimal `json:"tarifa_actual"`
	Activo       bool            `json:"activo"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Categoria etiqueta de agrupación; "General" si no tiene descripción.
func (t *TipoTrabajo) Categoria() string {
	if t.Descripcion == "" {
		return CategoriaGeneral
	}
	return t.Descripcion
}

// CategoriaGeneral agrupación para trabajos sin categoría.
const CategoriaGeneral = "General"

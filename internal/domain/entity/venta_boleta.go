package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SerieBoletaDefecto serie de boletas de venta.
const SerieBoletaDefecto = "B001"

// TasaIGV 18 %; los precios unitarios de las boletas de venta la incluyen.
var TasaIGV = decimal.NewFromFloat(0.18)

// VentaBoleta cabecera de una boleta de venta.
type VentaBoleta struct {
	ID               string          `json:"id"`
	Serie            string          `json:"serie"`
	Numero           int             `json:"numero"`
	Fecha            time.Time       `json:"fecha"`
	ClienteNombre    string          `json:"cliente_nombre"`
	ClienteDocumento string          `json:"cliente_documento"`
	ClienteDireccion string          `json:"cliente_direccion"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	IGV              decimal.Decimal `json:"igv"`
	Total            decimal.Decimal `json:"total"`
	CreatedAt        time.Time       `json:"created_at"`
	Detalle          []VentaDetalle  `json:"detalle"`
}

// VentaDetalle línea de la boleta de venta.
type VentaDetalle struct {
	ID             string          `json:"id"`
	BoletaID       string          `json:"boleta_id"`
	Descripcion    string          `json:"descripcion"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Total          decimal.Decimal `json:"total"`
}

// NumeroFormateado correlativo con 8 dígitos.
func (b *VentaBoleta) NumeroFormateado() string {
	return fmt.Sprintf("%08d", b.Numero)
}

// Codigo serie-correlativo, ej. B001-00000012.
func (b *VentaBoleta) Codigo() string {
	return b.Serie + "-" + b.NumeroFormateado()
}

// CalcularTotales total = Σ cantidad × precio (IGV incluido); subtotal = total / 1.18; igv = total − subtotal.
func (b *VentaBoleta) CalcularTotales() {
	total := decimal.Zero
	for i := range b.Detalle {
		d := &b.Detalle[i]
		d.Total = d.Cantidad.Mul(d.PrecioUnitario).Round(2)
		total = total.Add(d.Total)
	}
	b.Total = total
	b.Subtotal = total.Div(decimal.NewFromInt(1).Add(TasaIGV)).Round(2)
	b.IGV = total.Sub(b.Subtotal)
}

// ValorUnitario precio unitario sin IGV.
func (d *VentaDetalle) ValorUnitario() decimal.Decimal {
	return d.PrecioUnitario.Div(decimal.NewFromInt(1).Add(TasaIGV)).Round(2)
}

// Empresa datos del emisor.
type Empresa struct {
	Nombre    string
	RUC       string
	Direccion string
	Telefono  string
	Email     string
}

package dto

import "github.com/shopspring/decimal"

// VentaBoletaRequest body para POST/PUT /api/ventas/boletas.
type VentaBoletaRequest struct {
	Serie            string               `json:"serie" validate:"omitempty,len=4,alphanum"`
	Fecha            string               `json:"fecha" validate:"omitempty,datetime=2006-01-02"`
	ClienteNombre    string               `json:"cliente_nombre" validate:"required,max=150"`
	ClienteDocumento string               `json:"cliente_documento" validate:"omitempty,max=15"`
	ClienteDireccion string               `json:"cliente_direccion" validate:"max=200"`
	Detalle          []VentaDetalleRequest `json:"detalle" validate:"required,min=1,dive"`
}

// VentaDetalleRequest línea; precio_unitario incluye IGV.
type VentaDetalleRequest struct {
	Descripcion    string          `json:"descripcion" validate:"required,max=200"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}

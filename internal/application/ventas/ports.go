// Package ventas casos de uso de las boletas de venta del taller.
package ventas

import (
	"context"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/repository"
)

// VentasTxRunner ejecuta fn dentro de una transacción.
type VentasTxRunner interface {
	RunVentas(ctx context.Context, fn func(repo repository.VentaBoletaRepository) error) error
}

// VentaDocumento datos que necesita el PDF A4.
type VentaDocumento struct {
	Boleta      *entity.VentaBoleta
	Empresa     entity.Empresa
	MontoLetras string
	Hash        string
}

// VentaRenderer genera el PDF A4 de una boleta de venta.
type VentaRenderer interface {
	RenderVentaBoleta(doc *VentaDocumento) ([]byte, error)
}

// ComprobanteBuilder arma el XML UBL de la boleta y su digest canonicalizado (base64).
type ComprobanteBuilder interface {
	Build(b *entity.VentaBoleta, emisor entity.Empresa) (xml []byte, digest string, err error)
}

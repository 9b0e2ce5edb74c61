package nomina

import (
	"context"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/repository"
)

// LiquidacionTxRunner ejecuta fn dentro de una transacción con los repos que toca la liquidación.
type LiquidacionTxRunner interface {
	RunLiquidacion(ctx context.Context, fn func(
		empleadoRepo repository.EmpleadoRepository,
		produccionRepo repository.ProduccionRepository,
		movimientoRepo repository.MovimientoRepository,
		cicloRepo repository.CicloRepository,
		boletaRepo repository.BoletaRepository,
	) error) error
}

// JobQueue cola de generación de PDFs de boletas, con clave el id del ciclo.
type JobQueue interface {
	Enqueue(ctx context.Context, cicloID string) error
}

// BoletaDocumento datos para renderizar una boleta de pago.
type BoletaDocumento struct {
	Boleta      *entity.BoletaDetalle
	Produccion  []*entity.ProduccionDetalle
	Movimientos []*entity.Movimiento
}

// BoletaRenderer genera el PDF de la boleta de pago.
type BoletaRenderer interface {
	RenderBoletaPago(doc *BoletaDocumento) ([]byte, error)
}

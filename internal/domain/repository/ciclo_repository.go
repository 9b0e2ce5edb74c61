package repository

import (
	"context"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
)

// CicloRepository ciclos de pago.
type CicloRepository interface {
	Create(ctx context.Context, c *entity.Ciclo) error
	GetByID(ctx context.Context, id string) (*entity.Ciclo, error)
	// UltimoCerrado ciclo CERRADO con mayor fecha_fin; nil si no hay.
	UltimoCerrado(ctx context.Context, empleadoID string) (*entity.Ciclo, error)
	ListByEmpleado(ctx context.Context, empleadoID string) ([]*entity.Ciclo, error)
	UpdateEstado(ctx context.Context, id, estado string) error
}

// BoletaRepository boletas de pago (una por ciclo).
type BoletaRepository interface {
	// Upsert inserta o reemplaza la boleta del ciclo (conflicto por ciclo_id).
	Upsert(ctx context.Context, b *entity.Boleta) error
	GetByID(ctx context.Context, id string) (*entity.BoletaDetalle, error)
	GetByCicloID(ctx context.Context, cicloID string) (*entity.BoletaDetalle, error)
	List(ctx context.Context, empleadoID string) ([]*entity.BoletaDetalle, error)
	// MarcarPDF guarda la ruta del PDF y marca la boleta como pagada.
	MarcarPDF(ctx context.Context, id, path string) error
}

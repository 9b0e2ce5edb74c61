package repository

import (
	"context"
	"time"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
)

// ProduccionRepository libro de producción (solo inserción y borrado).
type ProduccionRepository interface {
	Create(ctx context.Context, p *entity.Produccion) error
	GetByID(ctx context.Context, id string) (*entity.Produccion, error)
	Delete(ctx context.Context, id string) error
	ListByFecha(ctx context.Context, fecha time.Time) ([]*entity.ProduccionDetalle, error)
	ListByEmpleado(ctx context.Context, empleadoID string, limit int) ([]*entity.ProduccionDetalle, error)
	// ListDesde registros con fecha estrictamente mayor que desde.
	ListDesde(ctx context.Context, empleadoID string, desde time.Time) ([]*entity.Produccion, error)
	// ListRango registros con fecha en [inicio, fin], con tipo de trabajo.
	ListRango(ctx context.Context, empleadoID string, inicio, fin time.Time) ([]*entity.ProduccionDetalle, error)
	// PrimeraFecha fecha del registro más antiguo; nil si no hay.
	PrimeraFecha(ctx context.Context, empleadoID string) (*time.Time, error)
	Stats(ctx context.Context, hoy, inicioSemana time.Time) (*entity.ProduccionStats, error)
}

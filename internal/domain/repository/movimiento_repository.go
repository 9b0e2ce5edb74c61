package repository

import (
	"context"
	"time"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
)

// MovimientoRepository libro de movimientos.
type MovimientoRepository interface {
	Create(ctx context.Context, m *entity.Movimiento) error
	Delete(ctx context.Context, id string) error
	// List últimos movimientos (empleadoID vacío = todos).
	List(ctx context.Context, empleadoID string, limit int) ([]*entity.MovimientoDetalle, error)
	ListDesde(ctx context.Context, empleadoID string, desde time.Time) ([]*entity.Movimiento, error)
	ListRango(ctx context.Context, empleadoID string, inicio, fin time.Time) ([]*entity.Movimiento, error)
}

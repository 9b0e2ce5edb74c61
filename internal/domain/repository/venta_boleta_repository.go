package repository

import (
	"context"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
)

// VentaBoletaRepository boletas de venta con su detalle.
type VentaBoletaRepository interface {
	// Create inserta cabecera y detalle.
	Create(ctx context.Context, b *entity.VentaBoleta) error
	// Update actualiza la cabecera y reemplaza todas las líneas de detalle.
	Update(ctx context.Context, b *entity.VentaBoleta) error
	GetByID(ctx context.Context, id string) (*entity.VentaBoleta, error)
	List(ctx context.Context, limit, offset int) ([]*entity.VentaBoleta, error)
	// Delete borra el detalle y luego la cabecera.
	Delete(ctx context.Context, id string) error
	SiguienteNumero(ctx context.Context, serie string) (int, error)
}

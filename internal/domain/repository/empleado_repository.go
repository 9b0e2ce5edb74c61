package repository

import (
	"context"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
)

// EmpleadoRepository define el puerto de persistencia para Empleado.
type EmpleadoRepository interface {
	Create(ctx context.Context, e *entity.Empleado) error
	Update(ctx context.Context, e *entity.Empleado) error
	GetByID(ctx context.Context, id string) (*entity.Empleado, error)
	GetByCodigo(ctx context.Context, codigo string) (*entity.Empleado, error)
	// List ordena por nombre; soloActivos filtra los inactivos.
	List(ctx context.Context, soloActivos bool) ([]*entity.Empleado, error)
	SetActivo(ctx context.Context, id string, activo bool) error
	Contar(ctx context.Context) (activos, inactivos int, err error)
	// LockByID bloquea la fila dentro de una transacción (SELECT ... FOR UPDATE).
	LockByID(ctx context.Context, id string) (*entity.Empleado, error)
}

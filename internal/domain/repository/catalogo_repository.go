package repository

import (
	"context"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
)

// TipoTrabajoRepository catálogo de tarifas.
type TipoTrabajoRepository interface {
	Create(ctx context.Context, t *entity.TipoTrabajo) error
	Update(ctx context.Context, t *entity.TipoTrabajo) error
	GetByID(ctx context.Context, id string) (*entity.TipoTrabajo, error)
	List(ctx context.Context, soloActivos bool) ([]*entity.TipoTrabajo, error)
	SetActivo(ctx context.Context, id string, activo bool) error
}

// TurnoRepository ventanas horarias.
type TurnoRepository interface {
	Create(ctx context.Context, t *entity.Turno) error
	Update(ctx context.Context, t *entity.Turno) error
	GetByID(ctx context.Context, id string) (*entity.Turno, error)
	List(ctx context.Context, soloActivos bool) ([]*entity.Turno, error)
	SetActivo(ctx context.Context, id string, activo bool) error
}

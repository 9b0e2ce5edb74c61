package repository

import (
	"context"
	"time"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
)

// AsistenciaRepository marcas diarias.
type AsistenciaRepository interface {
	Create(ctx context.Context, a *entity.Asistencia) error
	Update(ctx context.Context, a *entity.Asistencia) error
	GetByCodigoFecha(ctx context.Context, codigo string, fecha time.Time) (*entity.Asistencia, error)
	ListByFecha(ctx context.Context, fecha time.Time) ([]*entity.Asistencia, error)
}

package repository

import (
	"context"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
)

// SettingRepository parámetros clave/valor y configuración de ciclos.
type SettingRepository interface {
	List(ctx context.Context) ([]*entity.Setting, error)
	Get(ctx context.Context, clave string) (*entity.Setting, error)
	Update(ctx context.Context, clave, valor string) error
	GetCicloConfig(ctx context.Context) (*entity.CicloConfig, error)
	UpsertCicloConfig(ctx context.Context, c *entity.CicloConfig) error
}

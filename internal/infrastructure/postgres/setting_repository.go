package postgres

import (
	"context"
	"fmt"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ repository.SettingRepository = (*SettingRepo)(nil)

const settingColumns = `clave, valor, tipo, descripcion, updated_at`

// SettingRepo parámetros y frecuencia de ciclos sobre PostgreSQL.
type SettingRepo struct {
	q Querier
}

// NewSettingRepository construye el adaptador.
func NewSettingRepository(q Querier) *SettingRepo {
	return &SettingRepo{q: q}
}

func scanSetting(row pgx.Row) (*entity.Setting, error) {
	var s entity.Setting
	if err := row.Scan(&s.Clave, &s.Valor, &s.Tipo, &s.Descripcion, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingRepo) List(ctx context.Context) ([]*entity.Setting, error) {
	rows, err := r.q.Query(ctx, `SELECT `+settingColumns+` FROM settings ORDER BY clave`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()
	var list []*entity.Setting
	for rows.Next() {
		s, err := scanSetting(rows)
		if err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *SettingRepo) Get(ctx context.Context, clave string) (*entity.Setting, error) {
	s, err := scanSetting(r.q.QueryRow(ctx, `SELECT `+settingColumns+` FROM settings WHERE clave = $1`, clave))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get setting: %w", err)
	}
	return s, nil
}

func (r *SettingRepo) Update(ctx context.Context, clave, valor string) error {
	tag, err := r.q.Exec(ctx, `UPDATE settings SET valor = $2, updated_at = NOW() WHERE clave = $1`, clave, valor)
	if err != nil {
		return fmt.Errorf("update setting: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetCicloConfig configuración activa; nil si no hay.
func (r *SettingRepo) GetCicloConfig(ctx context.Context) (*entity.CicloConfig, error) {
	var c entity.CicloConfig
	err := r.q.QueryRow(ctx, `SELECT id, tipo, dia_inicio, activo FROM ciclos_config WHERE activo LIMIT 1`).
		Scan(&c.ID, &c.Tipo, &c.DiaInicio, &c.Activo)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ciclo config: %w", err)
	}
	return &c, nil
}

// UpsertCicloConfig guarda la configuración y desactiva cualquier otra.
func (r *SettingRepo) UpsertCicloConfig(ctx context.Context, c *entity.CicloConfig) error {
	if _, err := r.q.Exec(ctx, `UPDATE ciclos_config SET activo = FALSE WHERE id <> $1`, c.ID); err != nil {
		return fmt.Errorf("desactivar ciclos config: %w", err)
	}
	query := `INSERT INTO ciclos_config (id, tipo, dia_inicio, activo) VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET tipo = EXCLUDED.tipo, dia_inicio = EXCLUDED.dia_inicio, activo = EXCLUDED.activo`
	if _, err := r.q.Exec(ctx, query, c.ID, c.Tipo, c.DiaInicio, c.Activo); err != nil {
		return fmt.Errorf("upsert ciclo config: %w", err)
	}
	return nil
}

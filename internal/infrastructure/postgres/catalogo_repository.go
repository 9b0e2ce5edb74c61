package postgres

import (
	"context"
	"fmt"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var (
	_ repository.TipoTrabajoRepository = (*TipoTrabajoRepo)(nil)
	_ repository.TurnoRepository       = (*TurnoRepo)(nil)
)

// ─── Tipos de trabajo ─────────────────────────────────────────────────────

const tipoTrabajoColumns = `id, nombre, descripcion, tarifa_actual, activo, created_at`

// TipoTrabajoRepo catálogo de tarifas sobre PostgreSQL.
type TipoTrabajoRepo struct {
	q Querier
}

// NewTipoTrabajoRepository construye el adaptador.
func NewTipoTrabajoRepository(q Querier) *TipoTrabajoRepo {
	return &TipoTrabajoRepo{q: q}
}

func scanTipoTrabajo(row pgx.Row) (*entity.TipoTrabajo, error) {
	var t entity.TipoTrabajo
	if err := row.Scan(&t.ID, &t.Nombre, &t.Descripcion, &t.TarifaActual, &t.Activo, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TipoTrabajoRepo) Create(ctx context.Context, t *entity.TipoTrabajo) error {
	query := `INSERT INTO tipos_trabajo (` + tipoTrabajoColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.q.Exec(ctx, query, t.ID, t.Nombre, t.Descripcion, t.TarifaActual, t.Activo, t.CreatedAt); err != nil {
		return fmt.Errorf("insert tipo_trabajo: %w", err)
	}
	return nil
}

// Update cambia la tarifa vigente; la producción ya registrada conserva su tarifa_aplicada.
func (r *TipoTrabajoRepo) Update(ctx context.Context, t *entity.TipoTrabajo) error {
	query := `UPDATE tipos_trabajo SET nombre = $2, descripcion = $3, tarifa_actual = $4, activo = $5 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, t.ID, t.Nombre, t.Descripcion, t.TarifaActual, t.Activo)
	if err != nil {
		return fmt.Errorf("update tipo_trabajo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TipoTrabajoRepo) GetByID(ctx context.Context, id string) (*entity.TipoTrabajo, error) {
	t, err := scanTipoTrabajo(r.q.QueryRow(ctx, `SELECT `+tipoTrabajoColumns+` FROM tipos_trabajo WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tipo_trabajo: %w", err)
	}
	return t, nil
}

func (r *TipoTrabajoRepo) List(ctx context.Context, soloActivos bool) ([]*entity.TipoTrabajo, error) {
	query := `SELECT ` + tipoTrabajoColumns + ` FROM tipos_trabajo WHERE ($1 = FALSE OR activo) ORDER BY descripcion, nombre`
	rows, err := r.q.Query(ctx, query, soloActivos)
	if err != nil {
		return nil, fmt.Errorf("list tipos_trabajo: %w", err)
	}
	defer rows.Close()
	var list []*entity.TipoTrabajo
	for rows.Next() {
		t, err := scanTipoTrabajo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tipo_trabajo: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *TipoTrabajoRepo) SetActivo(ctx context.Context, id string, activo bool) error {
	tag, err := r.q.Exec(ctx, `UPDATE tipos_trabajo SET activo = $2 WHERE id = $1`, id, activo)
	if err != nil {
		return fmt.Errorf("set activo tipo_trabajo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ─── Turnos ───────────────────────────────────────────────────────────────

// Las horas se leen como HH:MM.
const turnoColumns = `id, nombre, to_char(hora_inicio, 'HH24:MI'), to_char(hora_fin, 'HH24:MI'), tolerancia_minutos, activo`

// TurnoRepo ventanas horarias sobre PostgreSQL.
type TurnoRepo struct {
	q Querier
}

// NewTurnoRepository construye el adaptador.
func NewTurnoRepository(q Querier) *TurnoRepo {
	return &TurnoRepo{q: q}
}

func scanTurno(row pgx.Row) (*entity.Turno, error) {
	var t entity.Turno
	if err := row.Scan(&t.ID, &t.Nombre, &t.HoraInicio, &t.HoraFin, &t.ToleranciaMinutos, &t.Activo); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TurnoRepo) Create(ctx context.Context, t *entity.Turno) error {
	query := `INSERT INTO turnos (id, nombre, hora_inicio, hora_fin, tolerancia_minutos, activo)
		VALUES ($1, $2, $3::time, $4::time, $5, $6)`
	if _, err := r.q.Exec(ctx, query, t.ID, t.Nombre, t.HoraInicio, t.HoraFin, t.ToleranciaMinutos, t.Activo); err != nil {
		return fmt.Errorf("insert turno: %w", err)
	}
	return nil
}

func (r *TurnoRepo) Update(ctx context.Context, t *entity.Turno) error {
	query := `UPDATE turnos SET nombre = $2, hora_inicio = $3::time, hora_fin = $4::time, tolerancia_minutos = $5, activo = $6
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, t.ID, t.Nombre, t.HoraInicio, t.HoraFin, t.ToleranciaMinutos, t.Activo)
	if err != nil {
		return fmt.Errorf("update turno: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TurnoRepo) GetByID(ctx context.Context, id string) (*entity.Turno, error) {
	t, err := scanTurno(r.q.QueryRow(ctx, `SELECT `+turnoColumns+` FROM turnos WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get turno: %w", err)
	}
	return t, nil
}

func (r *TurnoRepo) List(ctx context.Context, soloActivos bool) ([]*entity.Turno, error) {
	query := `SELECT ` + turnoColumns + ` FROM turnos WHERE ($1 = FALSE OR activo) ORDER BY hora_inicio`
	rows, err := r.q.Query(ctx, query, soloActivos)
	if err != nil {
		return nil, fmt.Errorf("list turnos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Turno
	for rows.Next() {
		t, err := scanTurno(rows)
		if err != nil {
			return nil, fmt.Errorf("scan turno: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *TurnoRepo) SetActivo(ctx context.Context, id string, activo bool) error {
	tag, err := r.q.Exec(ctx, `UPDATE turnos SET activo = $2 WHERE id = $1`, id, activo)
	if err != nil {
		return fmt.Errorf("set activo turno: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

const movimientoColumns = `m.id, m.empleado_id, m.tipo, m.monto, m.signo, m.fecha, m.nota, m.created_at`

// MovimientoRepo libro de movimientos sobre PostgreSQL.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador.
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

func scanMovimiento(row pgx.Row, extra ...any) (*entity.Movimiento, error) {
	var m entity.Movimiento
	dest := append([]any{&m.ID, &m.EmpleadoID, &m.Tipo, &m.Monto, &m.Signo, &m.Fecha, &m.Nota, &m.CreatedAt}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MovimientoRepo) Create(ctx context.Context, m *entity.Movimiento) error {
	query := `INSERT INTO movimientos (id, empleado_id, tipo, monto, signo, fecha, nota, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query, m.ID, m.EmpleadoID, m.Tipo, m.Monto, m.Signo, m.Fecha, m.Nota, m.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

func (r *MovimientoRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM movimientos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movimiento: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MovimientoRepo) List(ctx context.Context, empleadoID string, limit int) ([]*entity.MovimientoDetalle, error) {
	query := `SELECT ` + movimientoColumns + `, e.nombre
		FROM movimientos m JOIN empleados e ON e.id = m.empleado_id
		WHERE ($1::uuid IS NULL OR m.empleado_id = $1::uuid)
		ORDER BY m.fecha DESC, m.created_at DESC
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, nullIfEmpty(empleadoID), limit)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovimientoDetalle
	for rows.Next() {
		var nombre string
		m, err := scanMovimiento(rows, &nombre)
		if err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, &entity.MovimientoDetalle{Movimiento: *m, EmpleadoNombre: nombre})
	}
	return list, rows.Err()
}

func (r *MovimientoRepo) ListDesde(ctx context.Context, empleadoID string, desde time.Time) ([]*entity.Movimiento, error) {
	return r.list(ctx, `SELECT `+movimientoColumns+` FROM movimientos m WHERE m.empleado_id = $1 AND m.fecha > $2 ORDER BY m.fecha`,
		empleadoID, desde)
}

func (r *MovimientoRepo) ListRango(ctx context.Context, empleadoID string, inicio, fin time.Time) ([]*entity.Movimiento, error) {
	return r.list(ctx, `SELECT `+movimientoColumns+` FROM movimientos m WHERE m.empleado_id = $1 AND m.fecha BETWEEN $2 AND $3 ORDER BY m.fecha`,
		empleadoID, inicio, fin)
}

func (r *MovimientoRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Movimiento, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movimiento
	for rows.Next() {
		m, err := scanMovimiento(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

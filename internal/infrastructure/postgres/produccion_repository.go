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

var _ repository.ProduccionRepository = (*ProduccionRepo)(nil)

const produccionColumns = `p.id, p.empleado_id, p.tipo_trabajo_id, p.fecha, p.cantidad, p.tarifa_aplicada, p.subtotal, p.created_at`

// Detalle: empleado y tipo de trabajo; la categoría es la descripción del tipo ("General" si vacía).
const produccionDetalleSelect = `SELECT ` + produccionColumns + `,
	e.nombre, e.codigo, t.nombre, COALESCE(NULLIF(t.descripcion, ''), 'General')
	FROM produccion p
	JOIN empleados e ON e.id = p.empleado_id
	JOIN tipos_trabajo t ON t.id = p.tipo_trabajo_id`

// ProduccionRepo libro de producción sobre PostgreSQL.
type ProduccionRepo struct {
	q Querier
}

// NewProduccionRepository construye el adaptador.
func NewProduccionRepository(q Querier) *ProduccionRepo {
	return &ProduccionRepo{q: q}
}

func scanProduccion(row pgx.Row) (*entity.Produccion, error) {
	var p entity.Produccion
	if err := row.Scan(&p.ID, &p.EmpleadoID, &p.TipoTrabajoID, &p.Fecha, &p.Cantidad, &p.TarifaAplicada, &p.Subtotal, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func scanProduccionDetalle(row pgx.Row) (*entity.ProduccionDetalle, error) {
	var d entity.ProduccionDetalle
	p := &d.Produccion
	err := row.Scan(&p.ID, &p.EmpleadoID, &p.TipoTrabajoID, &p.Fecha, &p.Cantidad, &p.TarifaAplicada, &p.Subtotal, &p.CreatedAt,
		&d.EmpleadoNombre, &d.EmpleadoCodigo, &d.TipoTrabajoNombre, &d.Categoria)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *ProduccionRepo) Create(ctx context.Context, p *entity.Produccion) error {
	query := `INSERT INTO produccion (id, empleado_id, tipo_trabajo_id, fecha, cantidad, tarifa_aplicada, subtotal, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query, p.ID, p.EmpleadoID, p.TipoTrabajoID, p.Fecha, p.Cantidad, p.TarifaAplicada, p.Subtotal, p.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert produccion: %w", err)
	}
	return nil
}

func (r *ProduccionRepo) GetByID(ctx context.Context, id string) (*entity.Produccion, error) {
	p, err := scanProduccion(r.q.QueryRow(ctx, `SELECT `+produccionColumns+` FROM produccion p WHERE p.id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produccion: %w", err)
	}
	return p, nil
}

func (r *ProduccionRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM produccion WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete produccion: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProduccionRepo) ListByFecha(ctx context.Context, fecha time.Time) ([]*entity.ProduccionDetalle, error) {
	return r.listDetalle(ctx, produccionDetalleSelect+` WHERE p.fecha = $1 ORDER BY p.created_at DESC`, fecha)
}

func (r *ProduccionRepo) ListByEmpleado(ctx context.Context, empleadoID string, limit int) ([]*entity.ProduccionDetalle, error) {
	return r.listDetalle(ctx, produccionDetalleSelect+` WHERE p.empleado_id = $1 ORDER BY p.fecha DESC, p.created_at DESC LIMIT $2`,
		empleadoID, limit)
}

// ListRango incluye ambos extremos; ordenado por categoría y tipo para la boleta.
func (r *ProduccionRepo) ListRango(ctx context.Context, empleadoID string, inicio, fin time.Time) ([]*entity.ProduccionDetalle, error) {
	return r.listDetalle(ctx, produccionDetalleSelect+` WHERE p.empleado_id = $1 AND p.fecha BETWEEN $2 AND $3
		ORDER BY 12, t.nombre, p.fecha`, empleadoID, inicio, fin)
}

func (r *ProduccionRepo) ListDesde(ctx context.Context, empleadoID string, desde time.Time) ([]*entity.Produccion, error) {
	query := `SELECT ` + produccionColumns + ` FROM produccion p WHERE p.empleado_id = $1 AND p.fecha > $2 ORDER BY p.fecha`
	rows, err := r.q.Query(ctx, query, empleadoID, desde)
	if err != nil {
		return nil, fmt.Errorf("list produccion desde: %w", err)
	}
	defer rows.Close()
	var list []*entity.Produccion
	for rows.Next() {
		p, err := scanProduccion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan produccion: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *ProduccionRepo) PrimeraFecha(ctx context.Context, empleadoID string) (*time.Time, error) {
	var f *time.Time
	if err := r.q.QueryRow(ctx, `SELECT MIN(fecha) FROM produccion WHERE empleado_id = $1`, empleadoID).Scan(&f); err != nil {
		return nil, fmt.Errorf("primera fecha produccion: %w", err)
	}
	return f, nil
}

func (r *ProduccionRepo) Stats(ctx context.Context, hoy, inicioSemana time.Time) (*entity.ProduccionStats, error) {
	query := `
		SELECT COALESCE(SUM(subtotal) FILTER (WHERE fecha = $1), 0),
		       COUNT(*),
		       COALESCE(SUM(subtotal), 0)
		FROM produccion
		WHERE fecha BETWEEN $2 AND $1`
	var s entity.ProduccionStats
	if err := r.q.QueryRow(ctx, query, hoy, inicioSemana).Scan(&s.TotalHoy, &s.RegistrosSemana, &s.TotalSemana); err != nil {
		return nil, fmt.Errorf("stats produccion: %w", err)
	}
	return &s, nil
}

func (r *ProduccionRepo) listDetalle(ctx context.Context, query string, args ...any) ([]*entity.ProduccionDetalle, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list produccion: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProduccionDetalle
	for rows.Next() {
		d, err := scanProduccionDetalle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan produccion: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

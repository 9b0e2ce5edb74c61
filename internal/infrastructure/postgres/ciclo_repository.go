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
	_ repository.CicloRepository  = (*CicloRepo)(nil)
	_ repository.BoletaRepository = (*BoletaRepo)(nil)
)

// ─── Ciclos ───────────────────────────────────────────────────────────────

const cicloColumns = `id, empleado_id, fecha_inicio, fecha_fin, total_pagado, estado, created_at`

// CicloRepo ciclos de pago sobre PostgreSQL.
type CicloRepo struct {
	q Querier
}

// NewCicloRepository construye el adaptador.
func NewCicloRepository(q Querier) *CicloRepo {
	return &CicloRepo{q: q}
}

func scanCiclo(row pgx.Row) (*entity.Ciclo, error) {
	var c entity.Ciclo
	if err := row.Scan(&c.ID, &c.EmpleadoID, &c.FechaInicio, &c.FechaFin, &c.TotalPagado, &c.Estado, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CicloRepo) Create(ctx context.Context, c *entity.Ciclo) error {
	query := `INSERT INTO ciclos (` + cicloColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, c.ID, c.EmpleadoID, c.FechaInicio, c.FechaFin, c.TotalPagado, c.Estado, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert ciclo: %w", err)
	}
	return nil
}

func (r *CicloRepo) GetByID(ctx context.Context, id string) (*entity.Ciclo, error) {
	c, err := scanCiclo(r.q.QueryRow(ctx, `SELECT `+cicloColumns+` FROM ciclos WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ciclo: %w", err)
	}
	return c, nil
}

// UltimoCerrado ciclo CERRADO más reciente por fecha_fin (desempata created_at).
func (r *CicloRepo) UltimoCerrado(ctx context.Context, empleadoID string) (*entity.Ciclo, error) {
	query := `SELECT ` + cicloColumns + ` FROM ciclos
		WHERE empleado_id = $1 AND estado = $2
		ORDER BY fecha_fin DESC, created_at DESC
		LIMIT 1`
	c, err := scanCiclo(r.q.QueryRow(ctx, query, empleadoID, entity.CicloCerrado))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("ultimo ciclo: %w", err)
	}
	return c, nil
}

func (r *CicloRepo) ListByEmpleado(ctx context.Context, empleadoID string) ([]*entity.Ciclo, error) {
	query := `SELECT ` + cicloColumns + ` FROM ciclos WHERE empleado_id = $1 ORDER BY fecha_fin DESC, created_at DESC`
	rows, err := r.q.Query(ctx, query, empleadoID)
	if err != nil {
		return nil, fmt.Errorf("list ciclos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Ciclo
	for rows.Next() {
		c, err := scanCiclo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ciclo: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *CicloRepo) UpdateEstado(ctx context.Context, id, estado string) error {
	tag, err := r.q.Exec(ctx, `UPDATE ciclos SET estado = $2 WHERE id = $1`, id, estado)
	if err != nil {
		return fmt.Errorf("update estado ciclo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ─── Boletas ──────────────────────────────────────────────────────────────

const boletaDetalleSelect = `SELECT b.id, b.empleado_id, b.ciclo_id, b.total_produccion, b.total_adelantos,
	b.total_descuentos, b.total_neto, b.pagado, b.pagado_at, b.pdf_path, b.created_at,
	e.nombre, e.codigo, c.fecha_inicio, c.fecha_fin
	FROM boletas b
	JOIN empleados e ON e.id = b.empleado_id
	JOIN ciclos c ON c.id = b.ciclo_id`

// BoletaRepo boletas de pago sobre PostgreSQL.
type BoletaRepo struct {
	q Querier
}

// NewBoletaRepository construye el adaptador.
func NewBoletaRepository(q Querier) *BoletaRepo {
	return &BoletaRepo{q: q}
}

func scanBoletaDetalle(row pgx.Row) (*entity.BoletaDetalle, error) {
	var d entity.BoletaDetalle
	b := &d.Boleta
	err := row.Scan(&b.ID, &b.EmpleadoID, &b.CicloID, &b.TotalProduccion, &b.TotalAdelantos,
		&b.TotalDescuentos, &b.TotalNeto, &b.Pagado, &b.PagadoAt, &b.PDFPath, &b.CreatedAt,
		&d.EmpleadoNombre, &d.EmpleadoCodigo, &d.FechaInicio, &d.FechaFin)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Upsert una boleta por ciclo: si ya existe se reemplazan los totales y se conserva su id.
func (r *BoletaRepo) Upsert(ctx context.Context, b *entity.Boleta) error {
	query := `
		INSERT INTO boletas (id, empleado_id, ciclo_id, total_produccion, total_adelantos, total_descuentos,
			total_neto, pagado, pagado_at, pdf_path, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (ciclo_id) DO UPDATE SET
			total_produccion = EXCLUDED.total_produccion,
			total_adelantos  = EXCLUDED.total_adelantos,
			total_descuentos = EXCLUDED.total_descuentos,
			total_neto       = EXCLUDED.total_neto,
			pagado           = EXCLUDED.pagado,
			pagado_at        = EXCLUDED.pagado_at
		RETURNING id`
	err := r.q.QueryRow(ctx, query, b.ID, b.EmpleadoID, b.CicloID, b.TotalProduccion, b.TotalAdelantos,
		b.TotalDescuentos, b.TotalNeto, b.Pagado, b.PagadoAt, b.PDFPath, b.CreatedAt).Scan(&b.ID)
	if err != nil {
		return fmt.Errorf("upsert boleta: %w", err)
	}
	return nil
}

func (r *BoletaRepo) GetByID(ctx context.Context, id string) (*entity.BoletaDetalle, error) {
	d, err := scanBoletaDetalle(r.q.QueryRow(ctx, boletaDetalleSelect+` WHERE b.id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get boleta: %w", err)
	}
	return d, nil
}

func (r *BoletaRepo) GetByCicloID(ctx context.Context, cicloID string) (*entity.BoletaDetalle, error) {
	d, err := scanBoletaDetalle(r.q.QueryRow(ctx, boletaDetalleSelect+` WHERE b.ciclo_id = $1`, cicloID))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get boleta por ciclo: %w", err)
	}
	return d, nil
}

func (r *BoletaRepo) List(ctx context.Context, empleadoID string) ([]*entity.BoletaDetalle, error) {
	query := boletaDetalleSelect + ` WHERE ($1::uuid IS NULL OR b.empleado_id = $1::uuid) ORDER BY c.fecha_fin DESC, b.created_at DESC`
	rows, err := r.q.Query(ctx, query, nullIfEmpty(empleadoID))
	if err != nil {
		return nil, fmt.Errorf("list boletas: %w", err)
	}
	defer rows.Close()
	var list []*entity.BoletaDetalle
	for rows.Next() {
		d, err := scanBoletaDetalle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan boleta: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func (r *BoletaRepo) MarcarPDF(ctx context.Context, id, path string) error {
	query := `UPDATE boletas SET pdf_path = $2, pagado = TRUE, pagado_at = COALESCE(pagado_at, NOW()) WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, path)
	if err != nil {
		return fmt.Errorf("marcar pdf boleta: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ repository.EmpleadoRepository = (*EmpleadoRepo)(nil)

const empleadoColumns = `id, codigo, nombre, rol, activo, created_at`

// EmpleadoRepo implementación de EmpleadoRepository sobre PostgreSQL (usable con pool o tx).
type EmpleadoRepo struct {
	q Querier
}

// NewEmpleadoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmpleadoRepository(q Querier) *EmpleadoRepo {
	return &EmpleadoRepo{q: q}
}

func scanEmpleado(row pgx.Row) (*entity.Empleado, error) {
	var e entity.Empleado
	if err := row.Scan(&e.ID, &e.Codigo, &e.Nombre, &e.Rol, &e.Activo, &e.CreatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

// Create inserta un empleado; código repetido devuelve ErrDuplicate.
func (r *EmpleadoRepo) Create(ctx context.Context, e *entity.Empleado) error {
	query := `INSERT INTO empleados (` + empleadoColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, e.ID, e.Codigo, e.Nombre, e.Rol, e.Activo, e.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert empleado: %w", err)
	}
	return nil
}

// Update actualiza código, nombre, rol y estado.
func (r *EmpleadoRepo) Update(ctx context.Context, e *entity.Empleado) error {
	query := `UPDATE empleados SET codigo = $2, nombre = $3, rol = $4, activo = $5 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, e.ID, e.Codigo, e.Nombre, e.Rol, e.Activo)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update empleado: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID obtiene un empleado por ID.
func (r *EmpleadoRepo) GetByID(ctx context.Context, id string) (*entity.Empleado, error) {
	e, err := scanEmpleado(r.q.QueryRow(ctx, `SELECT `+empleadoColumns+` FROM empleados WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empleado: %w", err)
	}
	return e, nil
}

// GetByCodigo obtiene un empleado por código.
func (r *EmpleadoRepo) GetByCodigo(ctx context.Context, codigo string) (*entity.Empleado, error) {
	e, err := scanEmpleado(r.q.QueryRow(ctx, `SELECT `+empleadoColumns+` FROM empleados WHERE codigo = $1`, codigo))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empleado by codigo: %w", err)
	}
	return e, nil
}

// LockByID igual que GetByID pero bloquea la fila hasta el fin de la transacción.
func (r *EmpleadoRepo) LockByID(ctx context.Context, id string) (*entity.Empleado, error) {
	e, err := scanEmpleado(r.q.QueryRow(ctx, `SELECT `+empleadoColumns+` FROM empleados WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("lock empleado: %w", err)
	}
	return e, nil
}

// List empleados por nombre.
func (r *EmpleadoRepo) List(ctx context.Context, soloActivos bool) ([]*entity.Empleado, error) {
	query := `SELECT ` + empleadoColumns + ` FROM empleados WHERE ($1 = FALSE OR activo) ORDER BY nombre`
	rows, err := r.q.Query(ctx, query, soloActivos)
	if err != nil {
		return nil, fmt.Errorf("list empleados: %w", err)
	}
	defer rows.Close()

	var list []*entity.Empleado
	for rows.Next() {
		e, err := scanEmpleado(rows)
		if err != nil {
			return nil, fmt.Errorf("scan empleado: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// SetActivo activa o desactiva.
func (r *EmpleadoRepo) SetActivo(ctx context.Context, id string, activo bool) error {
	tag, err := r.q.Exec(ctx, `UPDATE empleados SET activo = $2 WHERE id = $1`, id, activo)
	if err != nil {
		return fmt.Errorf("set activo empleado: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Contar empleados activos e inactivos.
func (r *EmpleadoRepo) Contar(ctx context.Context) (activos, inactivos int, err error) {
	query := `SELECT COUNT(*) FILTER (WHERE activo), COUNT(*) FILTER (WHERE NOT activo) FROM empleados`
	if err := r.q.QueryRow(ctx, query).Scan(&activos, &inactivos); err != nil {
		return 0, 0, fmt.Errorf("contar empleados: %w", err)
	}
	return activos, inactivos, nil
}

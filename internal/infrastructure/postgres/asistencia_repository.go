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

var _ repository.AsistenciaRepository = (*AsistenciaRepo)(nil)

const asistenciaColumns = `id, fecha, codigo, turno, estado,
	to_char(hora_entrada, 'HH24:MI:SS'), to_char(hora_salida, 'HH24:MI:SS'), horas_decimal`

// AsistenciaRepo marcas diarias sobre PostgreSQL.
type AsistenciaRepo struct {
	q Querier
}

// NewAsistenciaRepository construye el adaptador.
func NewAsistenciaRepository(q Querier) *AsistenciaRepo {
	return &AsistenciaRepo{q: q}
}

func scanAsistencia(row pgx.Row) (*entity.Asistencia, error) {
	var a entity.Asistencia
	if err := row.Scan(&a.ID, &a.Fecha, &a.Codigo, &a.Turno, &a.Estado, &a.HoraEntrada, &a.HoraSalida, &a.HorasDecimal); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserta la marca de entrada; una segunda del mismo día choca con UNIQUE(codigo, fecha).
func (r *AsistenciaRepo) Create(ctx context.Context, a *entity.Asistencia) error {
	query := `INSERT INTO asistencia (id, fecha, codigo, turno, estado, hora_entrada, hora_salida, horas_decimal)
		VALUES ($1, $2, $3, $4, $5, $6::time, $7::time, $8)`
	_, err := r.q.Exec(ctx, query, a.ID, a.Fecha, a.Codigo, a.Turno, a.Estado, a.HoraEntrada, a.HoraSalida, a.HorasDecimal)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert asistencia: %w", err)
	}
	return nil
}

func (r *AsistenciaRepo) Update(ctx context.Context, a *entity.Asistencia) error {
	query := `UPDATE asistencia SET turno = $2, estado = $3, hora_entrada = $4::time, hora_salida = $5::time, horas_decimal = $6
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, a.ID, a.Turno, a.Estado, a.HoraEntrada, a.HoraSalida, a.HorasDecimal)
	if err != nil {
		return fmt.Errorf("update asistencia: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AsistenciaRepo) GetByCodigoFecha(ctx context.Context, codigo string, fecha time.Time) (*entity.Asistencia, error) {
	query := `SELECT ` + asistenciaColumns + ` FROM asistencia WHERE codigo = $1 AND fecha = $2`
	a, err := scanAsistencia(r.q.QueryRow(ctx, query, codigo, fecha))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asistencia: %w", err)
	}
	return a, nil
}

func (r *AsistenciaRepo) ListByFecha(ctx context.Context, fecha time.Time) ([]*entity.Asistencia, error) {
	query := `SELECT ` + asistenciaColumns + ` FROM asistencia WHERE fecha = $1 ORDER BY hora_entrada NULLS LAST, codigo`
	rows, err := r.q.Query(ctx, query, fecha)
	if err != nil {
		return nil, fmt.Errorf("list asistencia: %w", err)
	}
	defer rows.Close()
	var list []*entity.Asistencia
	for rows.Next() {
		a, err := scanAsistencia(rows)
		if err != nil {
			return nil, fmt.Errorf("scan asistencia: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

package postgres

import (
	"context"
	"fmt"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ repository.VentaBoletaRepository = (*VentaBoletaRepo)(nil)

const ventaBoletaColumns = `id, serie, numero, fecha, cliente_nombre, cliente_documento, cliente_direccion,
	subtotal, igv, total, created_at`

// VentaBoletaRepo boletas de venta y su detalle sobre PostgreSQL.
// Create, Update y Delete escriben varias tablas: usar dentro de TxRunner.RunVentas.
type VentaBoletaRepo struct {
	q Querier
}

// NewVentaBoletaRepository construye el adaptador.
func NewVentaBoletaRepository(q Querier) *VentaBoletaRepo {
	return &VentaBoletaRepo{q: q}
}

func scanVentaBoleta(row pgx.Row) (*entity.VentaBoleta, error) {
	var b entity.VentaBoleta
	err := row.Scan(&b.ID, &b.Serie, &b.Numero, &b.Fecha, &b.ClienteNombre, &b.ClienteDocumento, &b.ClienteDireccion,
		&b.Subtotal, &b.IGV, &b.Total, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *VentaBoletaRepo) Create(ctx context.Context, b *entity.VentaBoleta) error {
	query := `INSERT INTO ventas_boletas (` + ventaBoletaColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query, b.ID, b.Serie, b.Numero, b.Fecha, b.ClienteNombre, b.ClienteDocumento, b.ClienteDireccion,
		b.Subtotal, b.IGV, b.Total, b.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert venta boleta: %w", err)
	}
	return r.insertDetalle(ctx, b)
}

func (r *VentaBoletaRepo) Update(ctx context.Context, b *entity.VentaBoleta) error {
	query := `UPDATE ventas_boletas SET fecha = $2, cliente_nombre = $3, cliente_documento = $4, cliente_direccion = $5,
		subtotal = $6, igv = $7, total = $8 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, b.ID, b.Fecha, b.ClienteNombre, b.ClienteDocumento, b.ClienteDireccion,
		b.Subtotal, b.IGV, b.Total)
	if err != nil {
		return fmt.Errorf("update venta boleta: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM ventas_boletas_detalle WHERE boleta_id = $1`, b.ID); err != nil {
		return fmt.Errorf("delete detalle venta: %w", err)
	}
	return r.insertDetalle(ctx, b)
}

func (r *VentaBoletaRepo) insertDetalle(ctx context.Context, b *entity.VentaBoleta) error {
	query := `INSERT INTO ventas_boletas_detalle (id, boleta_id, descripcion, cantidad, precio_unitario, total)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, d := range b.Detalle {
		if _, err := r.q.Exec(ctx, query, d.ID, b.ID, d.Descripcion, d.Cantidad, d.PrecioUnitario, d.Total); err != nil {
			return fmt.Errorf("insert detalle venta: %w", err)
		}
	}
	return nil
}

func (r *VentaBoletaRepo) GetByID(ctx context.Context, id string) (*entity.VentaBoleta, error) {
	b, err := scanVentaBoleta(r.q.QueryRow(ctx, `SELECT `+ventaBoletaColumns+` FROM ventas_boletas WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta boleta: %w", err)
	}

	rows, err := r.q.Query(ctx, `SELECT id, boleta_id, descripcion, cantidad, precio_unitario, total
		FROM ventas_boletas_detalle WHERE boleta_id = $1 ORDER BY descripcion`, id)
	if err != nil {
		return nil, fmt.Errorf("get detalle venta: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var d entity.VentaDetalle
		if err := rows.Scan(&d.ID, &d.BoletaID, &d.Descripcion, &d.Cantidad, &d.PrecioUnitario, &d.Total); err != nil {
			return nil, fmt.Errorf("scan detalle venta: %w", err)
		}
		b.Detalle = append(b.Detalle, d)
	}
	return b, rows.Err()
}

// List cabeceras sin detalle.
func (r *VentaBoletaRepo) List(ctx context.Context, limit, offset int) ([]*entity.VentaBoleta, error) {
	query := `SELECT ` + ventaBoletaColumns + ` FROM ventas_boletas ORDER BY fecha DESC, numero DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ventas boletas: %w", err)
	}
	defer rows.Close()
	var list []*entity.VentaBoleta
	for rows.Next() {
		b, err := scanVentaBoleta(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venta boleta: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func (r *VentaBoletaRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM ventas_boletas_detalle WHERE boleta_id = $1`, id); err != nil {
		return fmt.Errorf("delete detalle venta: %w", err)
	}
	tag, err := r.q.Exec(ctx, `DELETE FROM ventas_boletas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete venta boleta: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SiguienteNumero correlativo siguiente de la serie. El bloqueo de tabla evita que dos
// transacciones tomen el mismo número.
func (r *VentaBoletaRepo) SiguienteNumero(ctx context.Context, serie string) (int, error) {
	if _, err := r.q.Exec(ctx, `LOCK TABLE ventas_boletas IN SHARE ROW EXCLUSIVE MODE`); err != nil {
		return 0, fmt.Errorf("lock ventas_boletas: %w", err)
	}
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COALESCE(MAX(numero), 0) + 1 FROM ventas_boletas WHERE serie = $1`, serie).Scan(&n); err != nil {
		return 0, fmt.Errorf("siguiente numero: %w", err)
	}
	return n, nil
}

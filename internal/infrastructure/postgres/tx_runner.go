package postgres

import (
	"context"
	"fmt"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/nomina"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/streaming"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/ventas"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	_ nomina.LiquidacionTxRunner = (*TxRunner)(nil)
	_ ventas.VentasTxRunner      = (*TxRunner)(nil)
	_ streaming.SalesTxRunner    = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// run inicia la transacción, ejecuta fn y hace Commit; cualquier error hace Rollback.
func (r *TxRunner) run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunLiquidacion repos de nómina atados a una tx (cierre de ciclo).
func (r *TxRunner) RunLiquidacion(ctx context.Context, fn func(
	empleadoRepo repository.EmpleadoRepository,
	produccionRepo repository.ProduccionRepository,
	movimientoRepo repository.MovimientoRepository,
	cicloRepo repository.CicloRepository,
	boletaRepo repository.BoletaRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(
			NewEmpleadoRepository(tx),
			NewProduccionRepository(tx),
			NewMovimientoRepository(tx),
			NewCicloRepository(tx),
			NewBoletaRepository(tx),
		)
	})
}

// RunVentas repo de boletas de venta atado a una tx (correlativo + detalle).
func (r *TxRunner) RunVentas(ctx context.Context, fn func(repo repository.VentaBoletaRepository) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewVentaBoletaRepository(tx))
	})
}

// RunSales repos de streaming atados a una tx (cliente + venta + recordatorio).
func (r *TxRunner) RunSales(ctx context.Context, fn func(
	customerRepo repository.CustomerRepository,
	saleRepo repository.SaleRepository,
	reminderRepo repository.ReminderRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewCustomerRepository(tx), NewSaleRepository(tx), NewReminderRepository(tx))
	})
}

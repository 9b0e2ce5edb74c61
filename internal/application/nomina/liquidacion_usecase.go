package nomina

import (
	"context"
	"fmt"
	"time"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/dto"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
	domnomina "github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/nomina"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/repository"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/pkg/fechas"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// LiquidacionUseCase cierra el ciclo de un empleado con el monto confirmado por el operador.
//
// Ciclo y boleta se escriben en una sola transacción; el PDF se genera después en la cola,
// de modo que un fallo del PDF no deshace el pago.
type LiquidacionUseCase struct {
	tx   LiquidacionTxRunner
	jobs JobQueue
	log  zerolog.Logger
	loc  *time.Location
	now  func() time.Time
}

// NewLiquidacionUseCase construye el caso de uso. loc define qué día es "hoy".
func NewLiquidacionUseCase(tx LiquidacionTxRunner, jobs JobQueue, log zerolog.Logger, loc *time.Location) *LiquidacionUseCase {
	return &LiquidacionUseCase{tx: tx, jobs: jobs, log: log, loc: loc, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *LiquidacionUseCase) WithClock(now func() time.Time) *LiquidacionUseCase {
	uc.now = now
	return uc
}

// Liquidar crea el ciclo CERRADO y su boleta, y encola la generación del PDF.
//
// TotalPagado se guarda tal cual aunque difiera del neto recalculado; en ese caso la respuesta
// lleva una advertencia. La boleta siempre guarda los totales recalculados.
func (uc *LiquidacionUseCase) Liquidar(ctx context.Context, in dto.LiquidarRequest) (*dto.LiquidacionResponse, error) {
	if in.EmpleadoID == "" || in.TotalPagado.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	hoy := fechas.Hoy(now, uc.loc)

	var (
		ciclo  *entity.Ciclo
		boleta *entity.Boleta
		saldo  domnomina.Saldo
	)
	err := uc.tx.RunLiquidacion(ctx, func(
		empleadoRepo repository.EmpleadoRepository,
		produccionRepo repository.ProduccionRepository,
		movimientoRepo repository.MovimientoRepository,
		cicloRepo repository.CicloRepository,
		boletaRepo repository.BoletaRepository,
	) error {
		// Serializa liquidaciones concurrentes del mismo empleado.
		emp, err := empleadoRepo.LockByID(ctx, in.EmpleadoID)
		if err != nil {
			return err
		}
		if emp == nil {
			return domain.ErrNotFound
		}

		var ultimo *entity.Ciclo
		saldo, ultimo, err = calcularSaldo(ctx, produccionRepo, movimientoRepo, cicloRepo, emp.ID, &hoy)
		if err != nil {
			return err
		}

		var primera *time.Time
		if ultimo == nil {
			if primera, err = produccionRepo.PrimeraFecha(ctx, emp.ID); err != nil {
				return err
			}
		}
		inicio, fin := domnomina.VentanaCiclo(ultimo, primera, hoy)
		if inicio.After(fin) {
			return domain.ErrCicloYaCerrado
		}

		ciclo = &entity.Ciclo{
			ID:          uuid.New().String(),
			EmpleadoID:  emp.ID,
			FechaInicio: inicio,
			FechaFin:    fin,
			TotalPagado: in.TotalPagado,
			Estado:      entity.CicloCerrado,
			CreatedAt:   now,
		}
		if err := cicloRepo.Create(ctx, ciclo); err != nil {
			return fmt.Errorf("crear ciclo: %w", err)
		}

		pagadoAt := now
		boleta = &entity.Boleta{
			ID:              uuid.New().String(),
			EmpleadoID:      emp.ID,
			CicloID:         ciclo.ID,
			TotalProduccion: saldo.TotalProduccion,
			TotalAdelantos:  saldo.TotalAdelantos,
			TotalDescuentos: saldo.TotalDescuentos,
			Pagado:          true,
			PagadoAt:        &pagadoAt,
			CreatedAt:       now,
		}
		boleta.CalcularNeto()
		if err := boletaRepo.Upsert(ctx, boleta); err != nil {
			return fmt.Errorf("crear boleta: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := &dto.LiquidacionResponse{Ciclo: ciclo, Boleta: boleta, Neto: saldo.NetoPendiente}
	if !in.TotalPagado.Equal(saldo.NetoPendiente) {
		resp.Advertencia = fmt.Sprintf("total pagado %s distinto del neto pendiente %s",
			in.TotalPagado.StringFixed(2), saldo.NetoPendiente.StringFixed(2))
		uc.log.Warn().
			Str("empleado_id", in.EmpleadoID).
			Str("ciclo_id", ciclo.ID).
			Str("total_pagado", in.TotalPagado.StringFixed(2)).
			Str("neto_pendiente", saldo.NetoPendiente.StringFixed(2)).
			Msg("liquidación con monto distinto al neto")
	}

	if err := uc.jobs.Enqueue(ctx, ciclo.ID); err != nil {
		uc.log.Error().Err(err).Str("ciclo_id", ciclo.ID).Msg("no se pudo encolar el PDF de la boleta")
	}
	return resp, nil
}

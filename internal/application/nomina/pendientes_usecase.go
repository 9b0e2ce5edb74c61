// Package nomina casos de uso de pagos a destajo: saldo pendiente, liquidación de ciclos
// y boletas de pago.
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
)

// PendientesUseCase calcula el saldo no liquidado de cada empleado.
// Se recalcula completo en cada llamada, sin saldo acumulado en la base de datos.
type PendientesUseCase struct {
	empleadoRepo   repository.EmpleadoRepository
	produccionRepo repository.ProduccionRepository
	movimientoRepo repository.MovimientoRepository
	cicloRepo      repository.CicloRepository
}

// NewPendientesUseCase construye el caso de uso.
func NewPendientesUseCase(
	empleadoRepo repository.EmpleadoRepository,
	produccionRepo repository.ProduccionRepository,
	movimientoRepo repository.MovimientoRepository,
	cicloRepo repository.CicloRepository,
) *PendientesUseCase {
	return &PendientesUseCase{
		empleadoRepo:   empleadoRepo,
		produccionRepo: produccionRepo,
		movimientoRepo: movimientoRepo,
		cicloRepo:      cicloRepo,
	}
}

// Listar saldos de todos los empleados activos, mayor neto pendiente primero.
func (uc *PendientesUseCase) Listar(ctx context.Context) ([]dto.SaldoPendienteResponse, error) {
	empleados, err := uc.empleadoRepo.List(ctx, true)
	if err != nil {
		return nil, err
	}
	saldos := make([]domnomina.SaldoEmpleado, 0, len(empleados))
	for _, e := range empleados {
		s, _, err := calcularSaldo(ctx, uc.produccionRepo, uc.movimientoRepo, uc.cicloRepo, e.ID, nil)
		if err != nil {
			return nil, fmt.Errorf("saldo de %s: %w", e.Codigo, err)
		}
		saldos = append(saldos, domnomina.SaldoEmpleado{Empleado: e, Saldo: s})
	}
	domnomina.OrdenarPorNeto(saldos)

	out := make([]dto.SaldoPendienteResponse, 0, len(saldos))
	for _, s := range saldos {
		out = append(out, toSaldoResponse(s.Empleado, s.Saldo))
	}
	return out, nil
}

// ObtenerPorEmpleado saldo de un solo empleado (activo o no).
func (uc *PendientesUseCase) ObtenerPorEmpleado(ctx context.Context, empleadoID string) (*dto.SaldoPendienteResponse, error) {
	e, err := uc.empleadoRepo.GetByID(ctx, empleadoID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	s, _, err := calcularSaldo(ctx, uc.produccionRepo, uc.movimientoRepo, uc.cicloRepo, e.ID, nil)
	if err != nil {
		return nil, err
	}
	resp := toSaldoResponse(e, s)
	return &resp, nil
}

// calcularSaldo lee el último ciclo cerrado y los registros posteriores a su fecha_fin.
// Con hasta no nulo ignora los registros de días posteriores (el ciclo que se cierra termina ahí).
// Recibe los repos por parámetro para poder usarse dentro de la transacción de liquidación.
func calcularSaldo(
	ctx context.Context,
	produccionRepo repository.ProduccionRepository,
	movimientoRepo repository.MovimientoRepository,
	cicloRepo repository.CicloRepository,
	empleadoID string,
	hasta *time.Time,
) (domnomina.Saldo, *entity.Ciclo, error) {
	ultimo, err := cicloRepo.UltimoCerrado(ctx, empleadoID)
	if err != nil {
		return domnomina.Saldo{}, nil, err
	}
	desde := domnomina.FechaDesde(ultimo)
	prod, err := produccionRepo.ListDesde(ctx, empleadoID, desde)
	if err != nil {
		return domnomina.Saldo{}, nil, err
	}
	movs, err := movimientoRepo.ListDesde(ctx, empleadoID, desde)
	if err != nil {
		return domnomina.Saldo{}, nil, err
	}
	if hasta != nil {
		prod, movs = domnomina.RecortarHasta(*hasta, prod, movs)
	}
	return domnomina.CalcularSaldo(ultimo, prod, movs), ultimo, nil
}

func toSaldoResponse(e *entity.Empleado, s domnomina.Saldo) dto.SaldoPendienteResponse {
	resp := dto.SaldoPendienteResponse{
		EmpleadoID:      e.ID,
		Nombre:          e.Nombre,
		Codigo:          e.Codigo,
		TotalProduccion: s.TotalProduccion,
		TotalAdelantos:  s.TotalAdelantos,
		TotalDescuentos: s.TotalDescuentos,
		NetoPendiente:   s.NetoPendiente,
		UltimoPagoMonto: s.UltimoPagoMonto,
	}
	if s.UltimoPagoFecha != nil {
		f := fechas.ISO(*s.UltimoPagoFecha)
		resp.UltimoPagoFecha = &f
	}
	return resp
}

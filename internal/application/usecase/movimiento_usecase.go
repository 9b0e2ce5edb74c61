package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/dto"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/repository"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/pkg/fechas"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/pkg/montos"
	"github.com/google/uuid"
)

// LimiteMovimientos cantidad de movimientos que devuelve el listado.
const LimiteMovimientos = 50

// MovimientoUseCase adelantos, descuentos, bonos y ajustes.
type MovimientoUseCase struct {
	movimientoRepo repository.MovimientoRepository
	empleadoRepo   repository.EmpleadoRepository
	loc            *time.Location
	now            func() time.Time
}

// NewMovimientoUseCase construye el caso de uso.
func NewMovimientoUseCase(movimientoRepo repository.MovimientoRepository, empleadoRepo repository.EmpleadoRepository, loc *time.Location) *MovimientoUseCase {
	return &MovimientoUseCase{movimientoRepo: movimientoRepo, empleadoRepo: empleadoRepo, loc: loc, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *MovimientoUseCase) WithClock(now func() time.Time) *MovimientoUseCase {
	uc.now = now
	return uc
}

// Create registra un movimiento para un empleado activo. Monto en céntimos y fecha no futura.
func (uc *MovimientoUseCase) Create(ctx context.Context, in dto.CreateMovimientoRequest) (*entity.Movimiento, error) {
	if !entity.TipoMovimientoValido(in.Tipo) || !in.Monto.IsPositive() || !montos.EnCentimos(in.Monto) {
		return nil, domain.ErrInvalidInput
	}
	if in.Signo != entity.SignoPositivo && in.Signo != entity.SignoNegativo {
		return nil, domain.ErrInvalidInput
	}
	hoy := fechas.Hoy(uc.now(), uc.loc)
	fecha := hoy
	if in.Fecha != "" {
		f, err := fechas.Parse(in.Fecha)
		if err != nil || f.After(hoy) {
			return nil, domain.ErrInvalidInput
		}
		fecha = f
	}
	emp, err := uc.empleadoRepo.GetByID(ctx, in.EmpleadoID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	if !emp.Activo {
		return nil, domain.ErrEmpleadoInactivo
	}

	m := &entity.Movimiento{
		ID:         uuid.New().String(),
		EmpleadoID: emp.ID,
		Tipo:       in.Tipo,
		Monto:      in.Monto,
		Signo:      in.Signo,
		Fecha:      fecha,
		CreatedAt:  uc.now(),
	}
	if nota := strings.TrimSpace(in.Nota); nota != "" {
		m.Nota = &nota
	}
	if err := uc.movimientoRepo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// List últimos movimientos (empleadoID vacío = todos).
func (uc *MovimientoUseCase) List(ctx context.Context, empleadoID string) ([]*entity.MovimientoDetalle, error) {
	return uc.movimientoRepo.List(ctx, empleadoID, LimiteMovimientos)
}

// Delete elimina un movimiento cargado por error.
func (uc *MovimientoUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.movimientoRepo.Delete(ctx, id)
}

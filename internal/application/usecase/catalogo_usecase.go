package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/dto"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/repository"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/pkg/montos"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogoUseCase tipos de trabajo (tarifas) y turnos.
type CatalogoUseCase struct {
	tipos  repository.TipoTrabajoRepository
	turnos repository.TurnoRepository
}

// NewCatalogoUseCase construye el caso de uso.
func NewCatalogoUseCase(tipos repository.TipoTrabajoRepository, turnos repository.TurnoRepository) *CatalogoUseCase {
	return &CatalogoUseCase{tipos: tipos, turnos: turnos}
}

// CreateTipo registra un tipo de trabajo con su tarifa.
func (uc *CatalogoUseCase) CreateTipo(ctx context.Context, in dto.TipoTrabajoRequest) (*entity.TipoTrabajo, error) {
	if !tarifaValida(in.TarifaActual) || strings.TrimSpace(in.Nombre) == "" {
		return nil, domain.ErrInvalidInput
	}
	t := &entity.TipoTrabajo{
		ID:           uuid.New().String(),
		Nombre:       strings.TrimSpace(in.Nombre),
		Descripcion:  strings.TrimSpace(in.Descripcion),
		TarifaActual: in.TarifaActual,
		Activo:       true,
		CreatedAt:    time.Now(),
	}
	if in.Activo != nil {
		t.Activo = *in.Activo
	}
	if err := uc.tipos.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// UpdateTipo cambia nombre, categoría o tarifa. La producción ya registrada conserva su tarifa.
func (uc *CatalogoUseCase) UpdateTipo(ctx context.Context, id string, in dto.TipoTrabajoRequest) (*entity.TipoTrabajo, error) {
	if !tarifaValida(in.TarifaActual) {
		return nil, domain.ErrInvalidInput
	}
	t, err := uc.tipos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	t.Nombre = strings.TrimSpace(in.Nombre)
	t.Descripcion = strings.TrimSpace(in.Descripcion)
	t.TarifaActual = in.TarifaActual
	if in.Activo != nil {
		t.Activo = *in.Activo
	}
	if err := uc.tipos.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// tarifaValida no negativa y en céntimos, como la columna tarifa_actual.
func tarifaValida(v decimal.Decimal) bool {
	return !v.IsNegative() && montos.EnCentimos(v)
}

// ListTipos tipos de trabajo por nombre.
func (uc *CatalogoUseCase) ListTipos(ctx context.Context, soloActivos bool) ([]*entity.TipoTrabajo, error) {
	return uc.tipos.List(ctx, soloActivos)
}

// SetTipoActivo activa o desactiva un tipo de trabajo.
func (uc *CatalogoUseCase) SetTipoActivo(ctx context.Context, id string, activo bool) error {
	t, err := uc.tipos.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNotFound
	}
	return uc.tipos.SetActivo(ctx, id, activo)
}

// CreateTurno registra un turno.
func (uc *CatalogoUseCase) CreateTurno(ctx context.Context, in dto.TurnoRequest) (*entity.Turno, error) {
	if in.HoraFin <= in.HoraInicio {
		return nil, domain.ErrInvalidInput
	}
	t := &entity.Turno{
		ID:                uuid.New().String(),
		Nombre:            strings.TrimSpace(in.Nombre),
		HoraInicio:        in.HoraInicio,
		HoraFin:           in.HoraFin,
		ToleranciaMinutos: in.ToleranciaMinutos,
		Activo:            true,
	}
	if in.Activo != nil {
		t.Activo = *in.Activo
	}
	if err := uc.turnos.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// UpdateTurno cambia la ventana horaria de un turno.
func (uc *CatalogoUseCase) UpdateTurno(ctx context.Context, id string, in dto.TurnoRequest) (*entity.Turno, error) {
	if in.HoraFin <= in.HoraInicio {
		return nil, domain.ErrInvalidInput
	}
	t, err := uc.turnos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	t.Nombre = strings.TrimSpace(in.Nombre)
	t.HoraInicio = in.HoraInicio
	t.HoraFin = in.HoraFin
	t.ToleranciaMinutos = in.ToleranciaMinutos
	if in.Activo != nil {
		t.Activo = *in.Activo
	}
	if err := uc.turnos.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// ListTurnos turnos por hora de inicio.
func (uc *CatalogoUseCase) ListTurnos(ctx context.Context, soloActivos bool) ([]*entity.Turno, error) {
	return uc.turnos.List(ctx, soloActivos)
}

// SetTurnoActivo activa o desactiva un turno.
func (uc *CatalogoUseCase) SetTurnoActivo(ctx context.Context, id string, activo bool) error {
	t, err := uc.turnos.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNotFound
	}
	return uc.turnos.SetActivo(ctx, id, activo)
}

package usecase

import (
	"context"
	"time"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/dto"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/repository"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/pkg/fechas"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/pkg/montos"
	"github.com/google/uuid"
)

// ProduccionUseCase registro de producción a destajo.
type ProduccionUseCase struct {
	produccionRepo repository.ProduccionRepository
	empleadoRepo   repository.EmpleadoRepository
	tipoRepo       repository.TipoTrabajoRepository
	loc            *time.Location
	now            func() time.Time
}

// NewProduccionUseCase construye el caso de uso.
func NewProduccionUseCase(
	produccionRepo repository.ProduccionRepository,
	empleadoRepo repository.EmpleadoRepository,
	tipoRepo repository.TipoTrabajoRepository,
	loc *time.Location,
) *ProduccionUseCase {
	return &ProduccionUseCase{
		produccionRepo: produccionRepo,
		empleadoRepo:   empleadoRepo,
		tipoRepo:       tipoRepo,
		loc:            loc,
		now:            time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *ProduccionUseCase) WithClock(now func() time.Time) *ProduccionUseCase {
	uc.now = now
	return uc
}

// Hoy fecha de calendario actual en la zona configurada.
func (uc *ProduccionUseCase) Hoy() time.Time {
	return fechas.Hoy(uc.now(), uc.loc)
}

// Create registra producción. La tarifa se copia del tipo de trabajo en este momento y el
// subtotal queda fijo; cambios posteriores de tarifa no lo afectan.
//
// La cantidad es un número entero de piezas: con tarifas en céntimos el subtotal sale exacto
// a dos decimales, igual que la columna. No se aceptan fechas posteriores a hoy.
func (uc *ProduccionUseCase) Create(ctx context.Context, in dto.CreateProduccionRequest) (*entity.Produccion, error) {
	if !in.Cantidad.IsPositive() || !in.Cantidad.IsInteger() {
		return nil, domain.ErrInvalidInput
	}
	hoy := uc.Hoy()
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
	tipo, err := uc.tipoRepo.GetByID(ctx, in.TipoTrabajoID)
	if err != nil {
		return nil, err
	}
	if tipo == nil {
		return nil, domain.ErrNotFound
	}
	if !tipo.Activo {
		return nil, domain.ErrTipoTrabajoInactivo
	}
	if !montos.EnCentimos(tipo.TarifaActual) {
		return nil, domain.ErrInvalidInput
	}

	p := &entity.Produccion{
		ID:             uuid.New().String(),
		EmpleadoID:     emp.ID,
		TipoTrabajoID:  tipo.ID,
		Fecha:          fecha,
		Cantidad:       in.Cantidad,
		TarifaAplicada: tipo.TarifaActual,
		CreatedAt:      uc.now(),
	}
	p.CalcularSubtotal()
	if err := uc.produccionRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ListByFecha producción de un día con empleado y tipo de trabajo.
func (uc *ProduccionUseCase) ListByFecha(ctx context.Context, fecha time.Time) ([]*entity.ProduccionDetalle, error) {
	return uc.produccionRepo.ListByFecha(ctx, fecha)
}

// ListByEmpleado últimos registros de un empleado.
func (uc *ProduccionUseCase) ListByEmpleado(ctx context.Context, empleadoID string, limit int) ([]*entity.ProduccionDetalle, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return uc.produccionRepo.ListByEmpleado(ctx, empleadoID, limit)
}

// Delete corrige un error de carga. No recalcula boletas ya emitidas.
func (uc *ProduccionUseCase) Delete(ctx context.Context, id string) error {
	p, err := uc.produccionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.produccionRepo.Delete(ctx, id)
}

// Stats total de hoy y de la semana en curso (desde el lunes).
func (uc *ProduccionUseCase) Stats(ctx context.Context) (*entity.ProduccionStats, error) {
	hoy := uc.Hoy()
	return uc.produccionRepo.Stats(ctx, hoy, fechas.InicioSemana(hoy))
}

package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/dto"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/repository"
	"github.com/google/uuid"
)

// EmpleadoUseCase casos de uso CRUD para empleados.
type EmpleadoUseCase struct {
	repo repository.EmpleadoRepository
}

// NewEmpleadoUseCase construye el caso de uso.
func NewEmpleadoUseCase(repo repository.EmpleadoRepository) *EmpleadoUseCase {
	return &EmpleadoUseCase{repo: repo}
}

// Create registra un empleado. El código se guarda en mayúsculas.
func (uc *EmpleadoUseCase) Create(ctx context.Context, in dto.EmpleadoRequest) (*entity.Empleado, error) {
	e := &entity.Empleado{
		ID:        uuid.New().String(),
		Codigo:    strings.ToUpper(strings.TrimSpace(in.Codigo)),
		Nombre:    strings.TrimSpace(in.Nombre),
		Rol:       in.Rol,
		Activo:    true,
		CreatedAt: time.Now(),
	}
	if in.Activo != nil {
		e.Activo = *in.Activo
	}
	if e.Codigo == "" || e.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// GetByID obtiene un empleado por ID.
func (uc *EmpleadoUseCase) GetByID(ctx context.Context, id string) (*entity.Empleado, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

// Update actualiza código, nombre, rol y estado.
func (uc *EmpleadoUseCase) Update(ctx context.Context, id string, in dto.EmpleadoRequest) (*entity.Empleado, error) {
	e, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	e.Codigo = strings.ToUpper(strings.TrimSpace(in.Codigo))
	e.Nombre = strings.TrimSpace(in.Nombre)
	e.Rol = in.Rol
	if in.Activo != nil {
		e.Activo = *in.Activo
	}
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// List empleados por nombre.
func (uc *EmpleadoUseCase) List(ctx context.Context, soloActivos bool) ([]*entity.Empleado, error) {
	return uc.repo.List(ctx, soloActivos)
}

// SetActivo activa o desactiva un empleado. Los inactivos no reciben producción ni movimientos.
func (uc *EmpleadoUseCase) SetActivo(ctx context.Context, id string, activo bool) error {
	if _, err := uc.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.repo.SetActivo(ctx, id, activo)
}

// Resumen cantidad de empleados activos e inactivos.
func (uc *EmpleadoUseCase) Resumen(ctx context.Context) (*dto.EmpleadosResumen, error) {
	activos, inactivos, err := uc.repo.Contar(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.EmpleadosResumen{TotalActivos: activos, TotalInactivos: inactivos}, nil
}

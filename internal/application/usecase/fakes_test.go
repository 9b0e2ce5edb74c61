package usecase_test

import (
	"context"
	"time"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/repository"
)

// Los fakes embeben la interfaz: un método no implementado aquí entra en pánico si se llama.

type fakeEmpleados struct {
	repository.EmpleadoRepository
	porID map[string]*entity.Empleado
}

func newFakeEmpleados(es ...*entity.Empleado) *fakeEmpleados {
	f := &fakeEmpleados{porID: map[string]*entity.Empleado{}}
	for _, e := range es {
		f.porID[e.ID] = e
	}
	return f
}

func (f *fakeEmpleados) GetByID(_ context.Context, id string) (*entity.Empleado, error) {
	return f.porID[id], nil
}

func (f *fakeEmpleados) GetByCodigo(_ context.Context, codigo string) (*entity.Empleado, error) {
	for _, e := range f.porID {
		if e.Codigo == codigo {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeEmpleados) List(_ context.Context, soloActivos bool) ([]*entity.Empleado, error) {
	var out []*entity.Empleado
	for _, e := range f.porID {
		if !soloActivos || e.Activo {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeTipos struct {
	repository.TipoTrabajoRepository
	porID map[string]*entity.TipoTrabajo
}

func (f *fakeTipos) GetByID(_ context.Context, id string) (*entity.TipoTrabajo, error) {
	return f.porID[id], nil
}

func (f *fakeTipos) Create(_ context.Context, t *entity.TipoTrabajo) error {
	if f.porID == nil {
		f.porID = map[string]*entity.TipoTrabajo{}
	}
	f.porID[t.ID] = t
	return nil
}

func (f *fakeTipos) Update(_ context.Context, t *entity.TipoTrabajo) error {
	f.porID[t.ID] = t
	return nil
}

type fakeMovimientos struct {
	repository.MovimientoRepository
	creados []*entity.Movimiento
}

func (f *fakeMovimientos) Create(_ context.Context, m *entity.Movimiento) error {
	f.creados = append(f.creados, m)
	return nil
}

type fakeTurnos struct {
	repository.TurnoRepository
	turnos []*entity.Turno
}

func (f *fakeTurnos) List(context.Context, bool) ([]*entity.Turno, error) { return f.turnos, nil }

type fakeProduccion struct {
	repository.ProduccionRepository
	creados []*entity.Produccion
	stats   struct{ hoy, lunes time.Time }
}

func (f *fakeProduccion) Create(_ context.Context, p *entity.Produccion) error {
	f.creados = append(f.creados, p)
	return nil
}

func (f *fakeProduccion) Stats(_ context.Context, hoy, inicioSemana time.Time) (*entity.ProduccionStats, error) {
	f.stats.hoy, f.stats.lunes = hoy, inicioSemana
	return &entity.ProduccionStats{}, nil
}

type fakeAsistencia struct {
	repository.AsistenciaRepository
	marcas []*entity.Asistencia
}

func (f *fakeAsistencia) Create(_ context.Context, a *entity.Asistencia) error {
	f.marcas = append(f.marcas, a)
	return nil
}

func (f *fakeAsistencia) Update(context.Context, *entity.Asistencia) error { return nil }

func (f *fakeAsistencia) GetByCodigoFecha(_ context.Context, codigo string, fecha time.Time) (*entity.Asistencia, error) {
	for _, a := range f.marcas {
		if a.Codigo == codigo && a.Fecha.Equal(fecha) {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAsistencia) ListByFecha(_ context.Context, fecha time.Time) ([]*entity.Asistencia, error) {
	var out []*entity.Asistencia
	for _, a := range f.marcas {
		if a.Fecha.Equal(fecha) {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeSocial struct {
	repository.SocialCatalogRepository
	prices []*entity.SocialServicePrice
}

func (f *fakeSocial) ListPrices(_ context.Context, serviceID string) ([]*entity.SocialServicePrice, error) {
	var out []*entity.SocialServicePrice
	for _, p := range f.prices {
		if p.ServiceID == serviceID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeOrders struct {
	repository.SocialOrderRepository
	creados []*entity.SocialOrder
}

func (f *fakeOrders) Create(_ context.Context, o *entity.SocialOrder) error {
	f.creados = append(f.creados, o)
	return nil
}

func (f *fakeOrders) UpdateStatus(context.Context, string, string) error { return nil }

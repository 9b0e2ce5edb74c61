package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/dto"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/usecase"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
)

var lima = time.FixedZone("America/Lima", -5*3600)

func produccionUC(tipo *entity.TipoTrabajo, emp *entity.Empleado) (*usecase.ProduccionUseCase, *fakeProduccion) {
	prod := &fakeProduccion{}
	uc := usecase.NewProduccionUseCase(
		prod,
		newFakeEmpleados(emp),
		&fakeTipos{porID: map[string]*entity.TipoTrabajo{tipo.ID: tipo}},
		lima,
	).WithClock(func() time.Time { return time.Date(2026, 10, 16, 23, 30, 0, 0, lima) })
	return uc, prod
}

func TestCreateProduccion_CongelaTarifa(t *testing.T) {
	tipo := &entity.TipoTrabajo{ID: "t1", Nombre: "Pegado", TarifaActual: decimal.RequireFromString("2.50"), Activo: true}
	emp := &entity.Empleado{ID: "e1", Codigo: "E01", Activo: true}
	uc, repo := produccionUC(tipo, emp)
	ctx := context.Background()

	p, err := uc.Create(ctx, dto.CreateProduccionRequest{EmpleadoID: "e1", TipoTrabajoID: "t1", Cantidad: decimal.NewFromInt(10)})
	require.NoError(t, err)
	assert.True(t, p.Subtotal.Equal(decimal.NewFromInt(25)))

	// Subir la tarifa no toca lo ya registrado.
	tipo.TarifaActual = decimal.NewFromInt(3)
	p2, err := uc.Create(ctx, dto.CreateProduccionRequest{EmpleadoID: "e1", TipoTrabajoID: "t1", Cantidad: decimal.NewFromInt(10)})
	require.NoError(t, err)

	require.Len(t, repo.creados, 2)
	assert.True(t, repo.creados[0].TarifaAplicada.Equal(decimal.RequireFromString("2.50")))
	assert.True(t, repo.creados[0].Subtotal.Equal(decimal.NewFromInt(25)))
	assert.True(t, p2.Subtotal.Equal(decimal.NewFromInt(30)))
}

func TestCreateProduccion_FechaPorDefectoEnZonaLocal(t *testing.T) {
	tipo := &entity.TipoTrabajo{ID: "t1", TarifaActual: decimal.NewFromInt(1), Activo: true}
	uc, _ := produccionUC(tipo, &entity.Empleado{ID: "e1", Activo: true})

	p, err := uc.Create(context.Background(), dto.CreateProduccionRequest{EmpleadoID: "e1", TipoTrabajoID: "t1", Cantidad: decimal.NewFromInt(1)})
	require.NoError(t, err)
	// 23:30 en Lima ya es 17/10 en UTC; cuenta el día local.
	assert.Equal(t, time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), p.Fecha)
}

func TestCreateProduccion_Rechazos(t *testing.T) {
	tipoInactivo := &entity.TipoTrabajo{ID: "t1", TarifaActual: decimal.NewFromInt(1), Activo: false}
	empInactivo := &entity.Empleado{ID: "e2", Activo: false}

	tests := []struct {
		name string
		tipo *entity.TipoTrabajo
		emp  *entity.Empleado
		in   dto.CreateProduccionRequest
		want error
	}{
		{
			name: "cantidad cero",
			tipo: tipoInactivo, emp: empInactivo,
			in:   dto.CreateProduccionRequest{EmpleadoID: "e2", TipoTrabajoID: "t1", Cantidad: decimal.Zero},
			want: domain.ErrInvalidInput,
		},
		{
			name: "fecha mal formada",
			tipo: tipoInactivo, emp: empInactivo,
			in:   dto.CreateProduccionRequest{EmpleadoID: "e2", TipoTrabajoID: "t1", Cantidad: decimal.NewFromInt(1), Fecha: "16/10/2026"},
			want: domain.ErrInvalidInput,
		},
		{
			name: "cantidad fraccionaria",
			tipo: tipoInactivo, emp: empInactivo,
			in:   dto.CreateProduccionRequest{EmpleadoID: "e2", TipoTrabajoID: "t1", Cantidad: decimal.RequireFromString("1.555")},
			want: domain.ErrInvalidInput,
		},
		{
			name: "fecha futura",
			tipo: tipoInactivo, emp: empInactivo,
			in:   dto.CreateProduccionRequest{EmpleadoID: "e2", TipoTrabajoID: "t1", Cantidad: decimal.NewFromInt(1), Fecha: "2026-10-17"},
			want: domain.ErrInvalidInput,
		},
		{
			name: "tarifa con más de dos decimales",
			tipo: &entity.TipoTrabajo{ID: "t1", TarifaActual: decimal.RequireFromString("2.555"), Activo: true},
			emp:  &entity.Empleado{ID: "e2", Activo: true},
			in:   dto.CreateProduccionRequest{EmpleadoID: "e2", TipoTrabajoID: "t1", Cantidad: decimal.NewFromInt(1)},
			want: domain.ErrInvalidInput,
		},
		{
			name: "empleado inactivo",
			tipo: tipoInactivo, emp: empInactivo,
			in:   dto.CreateProduccionRequest{EmpleadoID: "e2", TipoTrabajoID: "t1", Cantidad: decimal.NewFromInt(1)},
			want: domain.ErrEmpleadoInactivo,
		},
		{
			name: "tipo inactivo",
			tipo: tipoInactivo, emp: &entity.Empleado{ID: "e2", Activo: true},
			in:   dto.CreateProduccionRequest{EmpleadoID: "e2", TipoTrabajoID: "t1", Cantidad: decimal.NewFromInt(1)},
			want: domain.ErrTipoTrabajoInactivo,
		},
		{
			name: "empleado inexistente",
			tipo: tipoInactivo, emp: empInactivo,
			in:   dto.CreateProduccionRequest{EmpleadoID: "x", TipoTrabajoID: "t1", Cantidad: decimal.NewFromInt(1)},
			want: domain.ErrNotFound,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc, repo := produccionUC(tc.tipo, tc.emp)
			_, err := uc.Create(context.Background(), tc.in)
			assert.ErrorIs(t, err, tc.want)
			assert.Empty(t, repo.creados)
		})
	}
}

func TestCreateProduccion_SubtotalEnCentimos(t *testing.T) {
	tipo := &entity.TipoTrabajo{ID: "t1", TarifaActual: decimal.RequireFromString("2.55"), Activo: true}
	uc, repo := produccionUC(tipo, &entity.Empleado{ID: "e1", Activo: true})

	p, err := uc.Create(context.Background(), dto.CreateProduccionRequest{
		EmpleadoID: "e1", TipoTrabajoID: "t1", Cantidad: decimal.NewFromInt(3), Fecha: "2026-10-16",
	})
	require.NoError(t, err)
	require.Len(t, repo.creados, 1)
	// Lo que se guarda en NUMERIC(14,2) es exactamente cantidad × tarifa.
	assert.Equal(t, "7.65", p.Subtotal.String())
	assert.True(t, p.Subtotal.Equal(p.Subtotal.Round(2)))
	assert.True(t, p.Subtotal.Equal(p.Cantidad.Mul(p.TarifaAplicada)))
}

func TestStatsProduccion_SemanaDesdeElLunes(t *testing.T) {
	uc, repo := produccionUC(&entity.TipoTrabajo{ID: "t1"}, &entity.Empleado{ID: "e1"})
	_, err := uc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), repo.stats.hoy)
	assert.Equal(t, time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC), repo.stats.lunes)
}

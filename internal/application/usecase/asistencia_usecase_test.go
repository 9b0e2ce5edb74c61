package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/usecase"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
)

// ─────────────────────────────────────────────────────────────────────────────
// Reglas puras
// ─────────────────────────────────────────────────────────────────────────────

func TestEsTardanza(t *testing.T) {
	assert.False(t, usecase.EsTardanza("08:30:59"))
	assert.False(t, usecase.EsTardanza("07:55:00"))
	assert.True(t, usecase.EsTardanza("08:31:00"))
	assert.False(t, usecase.EsTardanza(""))
}

func TestResolverTurno(t *testing.T) {
	turnos := []*entity.Turno{
		{Nombre: "Madrugada", HoraInicio: "05:00", HoraFin: "07:00", Activo: true},
		{Nombre: "Noche", HoraInicio: "18:00", HoraFin: "23:59", Activo: false},
	}
	assert.Equal(t, "Madrugada", usecase.ResolverTurno(turnos, "06:15:00"))
	assert.Equal(t, "Mañana", usecase.ResolverTurno(turnos, "09:00:00"))
	assert.Equal(t, "Tarde", usecase.ResolverTurno(turnos, "19:00:00"), "turno inactivo no cuenta")
}

func TestHorasEntre(t *testing.T) {
	assert.True(t, usecase.HorasEntre("08:00:00", "17:30:00").Equal(decimal.RequireFromString("9.5")))
	assert.True(t, usecase.HorasEntre("08:00", "08:20").Equal(decimal.RequireFromString("0.33")))
	assert.True(t, usecase.HorasEntre("17:00:00", "08:00:00").IsZero())
	assert.True(t, usecase.HorasEntre("x", "08:00:00").IsZero())
}

// ─────────────────────────────────────────────────────────────────────────────
// Marcar
// ─────────────────────────────────────────────────────────────────────────────

func TestMarcar_EntradaYSalida(t *testing.T) {
	marcas := &fakeAsistencia{}
	reloj := time.Date(2026, 10, 16, 8, 45, 0, 0, lima)
	uc := usecase.NewAsistenciaUseCase(
		marcas,
		newFakeEmpleados(&entity.Empleado{ID: "e1", Codigo: "E01", Activo: true}),
		&fakeTurnos{},
		lima,
	).WithClock(func() time.Time { return reloj })
	ctx := context.Background()

	a, err := uc.Marcar(ctx, " e01 ")
	require.NoError(t, err)
	assert.Equal(t, "E01", a.Codigo)
	assert.Equal(t, "08:45:00", *a.HoraEntrada)
	assert.Equal(t, entity.AsistenciaIncompleto, a.Estado)
	assert.Equal(t, "Mañana", a.Turno)

	reloj = reloj.Add(8 * time.Hour)
	a, err = uc.Marcar(ctx, "E01")
	require.NoError(t, err)
	assert.Equal(t, entity.AsistenciaCompleto, a.Estado)
	require.NotNil(t, a.HorasDecimal)
	assert.True(t, a.HorasDecimal.Equal(decimal.NewFromInt(8)))

	_, err = uc.Marcar(ctx, "E01")
	assert.ErrorIs(t, err, domain.ErrAsistenciaCompleta)

	dia, err := uc.Dia(ctx, uc.Hoy())
	require.NoError(t, err)
	assert.Equal(t, 1, dia.Stats.Presentes)
	assert.Equal(t, 1, dia.Stats.Tardanzas)
	assert.Equal(t, 0, dia.Stats.SinSalida)
}

func TestMarcar_CodigoDesconocidoOInactivo(t *testing.T) {
	uc := usecase.NewAsistenciaUseCase(
		&fakeAsistencia{},
		newFakeEmpleados(&entity.Empleado{ID: "e9", Codigo: "E09", Activo: false}),
		&fakeTurnos{},
		lima,
	)
	_, err := uc.Marcar(context.Background(), "ZZ")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.Marcar(context.Background(), "E09")
	assert.ErrorIs(t, err, domain.ErrEmpleadoInactivo)
}

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

func movimientoUC() (*usecase.MovimientoUseCase, *fakeMovimientos) {
	repo := &fakeMovimientos{}
	uc := usecase.NewMovimientoUseCase(repo, newFakeEmpleados(&entity.Empleado{ID: "e1", Activo: true}), lima).
		WithClock(func() time.Time { return time.Date(2026, 10, 16, 10, 0, 0, 0, lima) })
	return uc, repo
}

func TestCreateMovimiento_Hoy(t *testing.T) {
	uc, repo := movimientoUC()

	m, err := uc.Create(context.Background(), dto.CreateMovimientoRequest{
		EmpleadoID: "e1", Tipo: "adelanto", Monto: decimal.RequireFromString("15.50"), Signo: "+", Fecha: "2026-10-16", Nota: "  pasaje ",
	})
	require.NoError(t, err)
	require.Len(t, repo.creados, 1)
	assert.Equal(t, time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), m.Fecha)
	require.NotNil(t, m.Nota)
	assert.Equal(t, "pasaje", *m.Nota)
}

func TestCreateMovimiento_Rechazos(t *testing.T) {
	tests := []struct {
		name string
		in   dto.CreateMovimientoRequest
	}{
		{"fecha futura", dto.CreateMovimientoRequest{EmpleadoID: "e1", Tipo: "descuento", Monto: decimal.NewFromInt(5), Signo: "-", Fecha: "2026-10-20"}},
		{"monto con tres decimales", dto.CreateMovimientoRequest{EmpleadoID: "e1", Tipo: "descuento", Monto: decimal.RequireFromString("5.005"), Signo: "-"}},
		{"monto cero", dto.CreateMovimientoRequest{EmpleadoID: "e1", Tipo: "descuento", Monto: decimal.Zero, Signo: "-"}},
		{"signo inválido", dto.CreateMovimientoRequest{EmpleadoID: "e1", Tipo: "descuento", Monto: decimal.NewFromInt(5), Signo: "*"}},
		{"tipo desconocido", dto.CreateMovimientoRequest{EmpleadoID: "e1", Tipo: "regalo", Monto: decimal.NewFromInt(5), Signo: "-"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc, repo := movimientoUC()
			_, err := uc.Create(context.Background(), tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Empty(t, repo.creados)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo: tarifas en céntimos
// ──────────────────────────────────────────────────────────────────────────────

func TestCatalogo_TarifaEnCentimos(t *testing.T) {
	tipos := &fakeTipos{}
	uc := usecase.NewCatalogoUseCase(tipos, &fakeTurnos{})
	ctx := context.Background()

	_, err := uc.CreateTipo(ctx, dto.TipoTrabajoRequest{Nombre: "Biselado", TarifaActual: decimal.RequireFromString("0.333")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	tipo, err := uc.CreateTipo(ctx, dto.TipoTrabajoRequest{Nombre: "Biselado", TarifaActual: decimal.RequireFromString("0.35")})
	require.NoError(t, err)

	_, err = uc.UpdateTipo(ctx, tipo.ID, dto.TipoTrabajoRequest{Nombre: "Biselado", TarifaActual: decimal.RequireFromString("1.255")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "0.35", tipos.porID[tipo.ID].TarifaActual.String())
}

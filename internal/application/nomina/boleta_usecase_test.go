package nomina_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/dto"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/nomina"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
)

// tallerLiquidado deja un ciclo con boleta sin PDF, como queda justo después de liquidar.
func tallerLiquidado(t *testing.T) (*memTaller, *entity.Ciclo) {
	t.Helper()
	m := tallerConSaldo(t)
	resp, err := nuevaLiquidacion(m, &fakeQueue{}).Liquidar(context.Background(), dto.LiquidarRequest{
		EmpleadoID: empID, TotalPagado: decimal.NewFromInt(20),
	})
	require.NoError(t, err)
	return m, resp.Ciclo
}

func nuevaBoletaUC(m *memTaller, r *fakeRenderer, s *memStorage) *nomina.BoletaUseCase {
	return nomina.NewBoletaUseCase(
		m.boletaRepo(), m.cicloRepo(), m.produccionRepo(), m.movimientoRepo(),
		r, s, zerolog.Nop(),
	)
}

// ─────────────────────────────────────────────────────────────────────────────
// CerrarYGenerar
// ─────────────────────────────────────────────────────────────────────────────

func TestCerrarYGenerar_SubeYMarca(t *testing.T) {
	m, ciclo := tallerLiquidado(t)
	r := &fakeRenderer{}
	s := newMemStorage()

	err := nuevaBoletaUC(m, r, s).CerrarYGenerar(context.Background(), ciclo.ID)
	require.NoError(t, err)

	b := m.boletas[0]
	path := nomina.StoragePath(b.ID)
	assert.Equal(t, "boletas/"+b.ID+".pdf", path)
	assert.Contains(t, string(s.files[path]), "%PDF")
	require.NotNil(t, b.PDFPath)
	assert.Equal(t, path, *b.PDFPath)
	assert.Equal(t, entity.CicloCerrado, ciclo.Estado)

	require.NotNil(t, r.ultimo)
	assert.Len(t, r.ultimo.Produccion, 1)
	assert.Len(t, r.ultimo.Movimientos, 1)
	assert.Equal(t, "E01", r.ultimo.Boleta.EmpleadoCodigo)
}

func TestCerrarYGenerar_Regenerar_SobrescribeElMismoArchivo(t *testing.T) {
	m, ciclo := tallerLiquidado(t)
	s := newMemStorage()
	uc := nuevaBoletaUC(m, &fakeRenderer{}, s)
	ctx := context.Background()

	require.NoError(t, uc.CerrarYGenerar(ctx, ciclo.ID))
	require.NoError(t, uc.CerrarYGenerar(ctx, ciclo.ID))
	assert.Len(t, s.files, 1)
}

func TestCerrarYGenerar_SinBoleta(t *testing.T) {
	uc := nuevaBoletaUC(newMemTaller(), &fakeRenderer{}, newMemStorage())
	err := uc.CerrarYGenerar(context.Background(), "ciclo-x")
	assert.ErrorIs(t, err, domain.ErrCicloSinBoleta)
}

func TestCerrarYGenerar_IDVacio(t *testing.T) {
	uc := nuevaBoletaUC(newMemTaller(), &fakeRenderer{}, newMemStorage())
	assert.ErrorIs(t, uc.CerrarYGenerar(context.Background(), ""), domain.ErrInvalidInput)
}

func TestCerrarYGenerar_FalloAlSubir_NoMarcaPDF(t *testing.T) {
	m, ciclo := tallerLiquidado(t)
	s := newMemStorage()
	s.err = errors.New("bucket caído")

	err := nuevaBoletaUC(m, &fakeRenderer{}, s).CerrarYGenerar(context.Background(), ciclo.ID)
	require.Error(t, err)
	assert.Nil(t, m.boletas[0].PDFPath)
}

func TestCerrarYGenerar_FalloDelRender(t *testing.T) {
	m, ciclo := tallerLiquidado(t)
	s := newMemStorage()

	err := nuevaBoletaUC(m, &fakeRenderer{err: errors.New("fuente")}, s).CerrarYGenerar(context.Background(), ciclo.ID)
	require.Error(t, err)
	assert.Empty(t, s.files)
}

// ─────────────────────────────────────────────────────────────────────────────
// Descarga y URL
// ─────────────────────────────────────────────────────────────────────────────

func TestRenderPorBoleta_NombreDeArchivo(t *testing.T) {
	m, _ := tallerLiquidado(t)
	pdf, nombre, err := nuevaBoletaUC(m, &fakeRenderer{}, newMemStorage()).
		RenderPorBoleta(context.Background(), m.boletas[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "boleta-E01-2026-10-16.pdf", nombre)
	assert.NotEmpty(t, pdf)
}

func TestRenderPorCiclo_Inexistente(t *testing.T) {
	_, _, err := nuevaBoletaUC(newMemTaller(), &fakeRenderer{}, newMemStorage()).
		RenderPorCiclo(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDescargar_SinPDF(t *testing.T) {
	m, _ := tallerLiquidado(t)
	_, _, err := nuevaBoletaUC(m, &fakeRenderer{}, newMemStorage()).
		Descargar(context.Background(), m.boletas[0].ID)
	assert.ErrorIs(t, err, domain.ErrBoletaSinPDF)
}

func TestDescargar_DespuesDeGenerar(t *testing.T) {
	m, ciclo := tallerLiquidado(t)
	uc := nuevaBoletaUC(m, &fakeRenderer{}, newMemStorage())
	ctx := context.Background()
	require.NoError(t, uc.CerrarYGenerar(ctx, ciclo.ID))

	rc, nombre, err := uc.Descargar(ctx, m.boletas[0].ID)
	require.NoError(t, err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Contains(t, string(body), "%PDF")
	assert.Equal(t, "boleta-E01-2026-10-16.pdf", nombre)
}

func TestURLFirmada_ExpiraEnUnMinuto(t *testing.T) {
	m, ciclo := tallerLiquidado(t)
	uc := nuevaBoletaUC(m, &fakeRenderer{}, newMemStorage())
	ctx := context.Background()

	_, err := uc.URLFirmada(ctx, m.boletas[0].ID)
	assert.ErrorIs(t, err, domain.ErrBoletaSinPDF)

	require.NoError(t, uc.CerrarYGenerar(ctx, ciclo.ID))
	url, err := uc.URLFirmada(ctx, m.boletas[0].ID)
	require.NoError(t, err)
	assert.Contains(t, url, "exp=1m0s")
}

func TestCiclosEmpleado_IDVacio(t *testing.T) {
	_, err := nuevaBoletaUC(newMemTaller(), &fakeRenderer{}, newMemStorage()).CiclosEmpleado(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

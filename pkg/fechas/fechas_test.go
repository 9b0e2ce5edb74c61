package fechas_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/pkg/fechas"
)

func fecha(s string) time.Time {
	t, err := fechas.Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestHoy_UsaZonaHoraria(t *testing.T) {
	lima, err := time.LoadLocation("America/Lima")
	require.NoError(t, err)

	// 02:00 UTC del 15/03 todavía es 14/03 en Lima (UTC-5)
	now := time.Date(2026, 3, 15, 2, 0, 0, 0, time.UTC)
	assert.Equal(t, fecha("2026-03-14"), fechas.Hoy(now, lima))
	assert.Equal(t, fecha("2026-03-15"), fechas.Hoy(now, nil))
}

func TestSumarMeses_AjustaFinDeMes(t *testing.T) {
	assert.Equal(t, fecha("2026-02-28"), fechas.SumarMeses(fecha("2026-01-31"), 1))
	assert.Equal(t, fecha("2028-02-29"), fechas.SumarMeses(fecha("2028-01-31"), 1))
	assert.Equal(t, fecha("2027-01-15"), fechas.SumarMeses(fecha("2026-12-15"), 1))
	assert.Equal(t, fecha("2027-02-28"), fechas.SumarAnios(fecha("2026-02-28"), 1))
	assert.Equal(t, fecha("2029-02-28"), fechas.SumarAnios(fecha("2028-02-29"), 1))
}

func TestSiguienteDia(t *testing.T) {
	assert.Equal(t, fecha("2026-03-01"), fechas.SiguienteDia(fecha("2026-02-28")))
}

func TestInicioSemana_Lunes(t *testing.T) {
	// 2026-10-16 es viernes
	assert.Equal(t, fecha("2026-10-12"), fechas.InicioSemana(fecha("2026-10-16")))
	// domingo pertenece a la semana que empezó el lunes anterior
	assert.Equal(t, fecha("2026-10-12"), fechas.InicioSemana(fecha("2026-10-18")))
	assert.Equal(t, fecha("2026-10-12"), fechas.InicioSemana(fecha("2026-10-12")))
}

func TestFormatos(t *testing.T) {
	f := fecha("2026-07-04")
	assert.Equal(t, "04/07/2026", fechas.Corta(f))
	assert.Equal(t, "2026-07-04", fechas.ISO(f))
	assert.Equal(t, fecha("2026-07-01"), fechas.InicioMes(f))

	_, err := fechas.Parse("04/07/2026")
	assert.Error(t, err)
}

package montos_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/pkg/montos"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestNumeroALetras(t *testing.T) {
	casos := []struct {
		monto string
		want  string
	}{
		{"21.50", "VEINTIUNO CON 50/100 SOLES"},
		{"7", "SIETE CON 00/100 SOLES"},
		{"10", "DIEZ CON 00/100 SOLES"},
		// 11 a 15 tienen nombre propio
		{"11", "ONCE CON 00/100 SOLES"},
		{"13", "TRECE CON 00/100 SOLES"},
		{"15", "QUINCE CON 00/100 SOLES"},
		// 16 a 19: DIECI-
		{"16", "DIECISEIS CON 00/100 SOLES"},
		{"19.05", "DIECINUEVE CON 05/100 SOLES"},
		{"20", "VEINTE CON 00/100 SOLES"},
		{"29", "VEINTINUEVE CON 00/100 SOLES"},
		{"45", "CUARENTA Y CINCO CON 00/100 SOLES"},
		{"100", "CIENTO CON 00/100 SOLES"},
		{"118.99", "CIENTO DIECIOCHO CON 99/100 SOLES"},
		{"500", "CINCOCIENTOS CON 00/100 SOLES"},
		{"1000", "MIL CON 00/100 SOLES"},
		{"2350.10", "DOS MIL TRESCIENTOS CINCUENTA CON 10/100 SOLES"},
	}
	for _, tc := range casos {
		t.Run(tc.monto, func(t *testing.T) {
			assert.Equal(t, tc.want, montos.NumeroALetras(d(tc.monto)))
		})
	}
}

func TestNumeroALetras_RedondeaCentavos(t *testing.T) {
	assert.Equal(t, "UNO CON 00/100 SOLES", montos.NumeroALetras(d("0.999").Add(d("0.001"))))
	assert.Equal(t, "DOS CON 50/100 SOLES", montos.NumeroALetras(d("2.499")))
}

func TestNumeroALetras_MillonSinPalabras(t *testing.T) {
	assert.Equal(t, " CON 00/100 SOLES", montos.NumeroALetras(d("1000000")))
}

func TestSoles(t *testing.T) {
	assert.Equal(t, "S/. 25.00", montos.Soles(d("25")))
	assert.Equal(t, "S/. 0.50", montos.Soles(d("0.5")))
}

func TestFormateador_Moneda(t *testing.T) {
	f := montos.NewFormateador("es-PE")
	assert.Equal(t, "S/ 1,234.50", f.Moneda(d("1234.5")))
	assert.Equal(t, "S/ 1,234,567.89", f.Moneda(d("1234567.89")))
	assert.Equal(t, "S/ 0.00", f.Moneda(d("0")))
	assert.Equal(t, "1,234.56", f.Numero(d("1234.555")))

	// locale inválido cae al de Perú
	assert.Equal(t, "S/ 1,234.50", montos.NewFormateador("??").Moneda(d("1234.5")))
}

package montos

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	unidades = [...]string{"", "UNO", "DOS", "TRES", "CUATRO", "CINCO", "SEIS", "SIETE", "OCHO", "NUEVE"}
	decenas  = [...]string{"", "DIEZ", "VEINTE", "TREINTA", "CUARENTA", "CINCUENTA", "SESENTA", "SETENTA", "OCHENTA", "NOVENTA"}

	especiales = map[int64]string{11: "ONCE", 12: "DOCE", 13: "TRECE", 14: "CATORCE", 15: "QUINCE"}
)

// NumeroALetras convierte un importe en soles a su forma escrita, tal como se imprime en la
// boleta de venta: "VEINTIUNO CON 50/100 SOLES".
//
// Las centenas se forman como unidad + "CIENTOS" (QUINIENTOS sale "CINCOCIENTOS") y 100 es
// "CIENTO"; se conserva así porque es lo que ya figura en los comprobantes emitidos.
// Importes desde un millón no tienen palabras: solo queda el sufijo de centavos.
func NumeroALetras(monto decimal.Decimal) string {
	monto = monto.Abs()
	entero := monto.Floor()
	centavos := monto.Sub(entero).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	return fmt.Sprintf("%s CON %02d/100 SOLES", convertir(entero.IntPart()), centavos)
}

func convertirMenor100(n int64) string {
	if n <= 9 {
		return unidades[n]
	}
	if s, ok := especiales[n]; ok {
		return s
	}
	d, u := n/10, n%10
	if n >= 16 && n <= 19 {
		return "DIECI" + unidades[u]
	}
	if n >= 21 && n <= 29 {
		return "VEINTI" + unidades[u]
	}
	if u != 0 {
		return decenas[d] + " Y " + unidades[u]
	}
	return decenas[d]
}

func convertir(n int64) string {
	switch {
	case n < 100:
		return convertirMenor100(n)
	case n < 1000:
		c, r := n/100, n%100
		s := unidades[c] + "CIENTOS"
		if c == 1 {
			s = "CIENTO"
		}
		if r != 0 {
			s += " " + convertirMenor100(r)
		}
		return s
	case n < 1000000:
		m, r := n/1000, n%1000
		s := convertir(m) + " MIL"
		if m == 1 {
			s = "MIL"
		}
		if r != 0 {
			s += " " + convertir(r)
		}
		return s
	}
	return ""
}

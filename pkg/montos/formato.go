package montos

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// LocaleDefecto formato de montos de Perú (separador de miles "," y decimal ".").
const LocaleDefecto = "es-PE"

// Formateador imprime montos en soles con separadores según el locale.
type Formateador struct {
	p       *message.Printer
	simbolo string
}

// NewFormateador crea un formateador para el locale dado (BCP 47). Si no se reconoce, usa es-PE.
func NewFormateador(locale string) *Formateador {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(LocaleDefecto)
	}
	return &Formateador{p: message.NewPrinter(tag), simbolo: "S/"}
}

// Moneda formatea con dos decimales y separador de miles: "S/ 1,234.50".
func (f *Formateador) Moneda(v decimal.Decimal) string {
	return f.simbolo + " " + f.Numero(v)
}

// Numero formatea con dos decimales y separador de miles, sin símbolo.
func (f *Formateador) Numero(v decimal.Decimal) string {
	return f.p.Sprint(number.Decimal(v.Round(2).InexactFloat64(), number.Scale(2)))
}

// Soles formato fijo del ticket térmico: "S/. 25.00".
func Soles(v decimal.Decimal) string {
	return "S/. " + v.StringFixed(2)
}

// EnCentimos true si v no tiene más de dos decimales.
func EnCentimos(v decimal.Decimal) bool {
	return v.Equal(v.Truncate(2))
}

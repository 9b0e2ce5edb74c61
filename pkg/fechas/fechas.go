// Package fechas maneja fechas de calendario (sin hora) como time.Time a medianoche UTC,
// el mismo formato en que pgx entrega las columnas DATE.
package fechas

import (
	"fmt"
	"time"
)

// Layout formato ISO de las fechas en la API y la base de datos.
const Layout = "2006-01-02"

// Origen fecha desde la que se considera todo el historial como no liquidado.
var Origen = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// Dia devuelve la fecha de calendario de t en su propia zona horaria.
func Dia(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Hoy fecha de calendario de now en la zona loc.
func Hoy(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return Dia(now.In(loc))
}

// Parse interpreta "2006-01-02".
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha inválida %q: %w", s, err)
	}
	return t, nil
}

// ISO formatea como "2006-01-02".
func ISO(t time.Time) string {
	return t.Format(Layout)
}

// Corta formatea como "02/01/2006".
func Corta(t time.Time) string {
	return t.Format("02/01/2006")
}

// SiguienteDia fecha + 1 día.
func SiguienteDia(t time.Time) time.Time {
	return Dia(t).AddDate(0, 0, 1)
}

// SumarMeses suma n meses; si el día no existe en el mes destino se usa el último día
// de ese mes (31/01 + 1 mes = 28/02 o 29/02).
func SumarMeses(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	primero := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	ultimo := primero.AddDate(0, 1, -1).Day()
	if d > ultimo {
		d = ultimo
	}
	return time.Date(primero.Year(), primero.Month(), d, 0, 0, 0, 0, time.UTC)
}

// SumarAnios suma n años con el mismo ajuste a fin de mes (29/02 + 1 año = 28/02).
func SumarAnios(t time.Time, n int) time.Time {
	return SumarMeses(t, 12*n)
}

// InicioSemana lunes de la semana de t.
func InicioSemana(t time.Time) time.Time {
	d := Dia(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// InicioMes primer día del mes de t.
func InicioMes(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

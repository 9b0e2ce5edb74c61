// Package nomina reglas de pago a destajo: saldo pendiente y ventana del siguiente ciclo.
package nomina

import (
	"sort"
	"time"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/pkg/fechas"
	"github.com/shopspring/decimal"
)

// Saldo lo que se le debe a un empleado desde su último ciclo cerrado.
type Saldo struct {
	TotalProduccion decimal.Decimal
	TotalAdelantos  decimal.Decimal
	TotalDescuentos decimal.Decimal
	NetoPendiente   decimal.Decimal
	UltimoPagoFecha *time.Time
	UltimoPagoMonto *decimal.Decimal
}

// FechaDesde fin del último ciclo cerrado, o fechas.Origen si no hay ninguno.
func FechaDesde(ultimo *entity.Ciclo) time.Time {
	if ultimo == nil {
		return fechas.Origen
	}
	return fechas.Dia(ultimo.FechaFin)
}

// CalcularSaldo suma producción y movimientos con fecha estrictamente posterior a FechaDesde(ultimo).
// Signo "+" va a adelantos y cualquier otro a descuentos; ambos restan del neto.
func CalcularSaldo(ultimo *entity.Ciclo, produccion []*entity.Produccion, movimientos []*entity.Movimiento) Saldo {
	desde := FechaDesde(ultimo)
	s := Saldo{
		TotalProduccion: decimal.Zero,
		TotalAdelantos:  decimal.Zero,
		TotalDescuentos: decimal.Zero,
	}
	for _, p := range produccion {
		if fechas.Dia(p.Fecha).After(desde) {
			s.TotalProduccion = s.TotalProduccion.Add(p.Subtotal)
		}
	}
	for _, m := range movimientos {
		if !fechas.Dia(m.Fecha).After(desde) {
			continue
		}
		if m.Signo == entity.SignoPositivo {
			s.TotalAdelantos = s.TotalAdelantos.Add(m.Monto)
		} else {
			s.TotalDescuentos = s.TotalDescuentos.Add(m.Monto)
		}
	}
	s.NetoPendiente = s.TotalProduccion.Sub(s.TotalAdelantos).Sub(s.TotalDescuentos)
	if ultimo != nil {
		fin := ultimo.FechaFin
		monto := ultimo.TotalPagado
		s.UltimoPagoFecha = &fin
		s.UltimoPagoMonto = &monto
	}
	return s
}

// VentanaCiclo periodo del ciclo a cerrar hoy: desde el día siguiente al último cierre,
// o la primera producción, o hoy; hasta hoy.
func VentanaCiclo(ultimo *entity.Ciclo, primeraProduccion *time.Time, hoy time.Time) (inicio, fin time.Time) {
	fin = fechas.Dia(hoy)
	switch {
	case ultimo != nil:
		inicio = fechas.SiguienteDia(ultimo.FechaFin)
	case primeraProduccion != nil && !fechas.Dia(*primeraProduccion).After(fin):
		inicio = fechas.Dia(*primeraProduccion)
	default:
		inicio = fin
	}
	return inicio, fin
}

// RecortarHasta descarta los registros con fecha posterior a hasta.
func RecortarHasta(hasta time.Time, produccion []*entity.Produccion, movimientos []*entity.Movimiento) ([]*entity.Produccion, []*entity.Movimiento) {
	hasta = fechas.Dia(hasta)
	prod := make([]*entity.Produccion, 0, len(produccion))
	for _, p := range produccion {
		if !fechas.Dia(p.Fecha).After(hasta) {
			prod = append(prod, p)
		}
	}
	movs := make([]*entity.Movimiento, 0, len(movimientos))
	for _, m := range movimientos {
		if !fechas.Dia(m.Fecha).After(hasta) {
			movs = append(movs, m)
		}
	}
	return prod, movs
}

// SaldoEmpleado saldo con los datos del empleado, para listados.
type SaldoEmpleado struct {
	Empleado *entity.Empleado
	Saldo
}

// OrdenarPorNeto mayor neto pendiente primero; empates conservan el orden de entrada.
func OrdenarPorNeto(list []SaldoEmpleado) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].NetoPendiente.GreaterThan(list[j].NetoPendiente)
	})
}

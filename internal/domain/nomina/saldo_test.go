package nomina_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/nomina"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/pkg/fechas"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func dia(s string) time.Time {
	t, err := fechas.Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

func prod(fecha, cantidad, tarifa string) *entity.Produccion {
	p := &entity.Produccion{Fecha: dia(fecha), Cantidad: dec(cantidad), TarifaAplicada: dec(tarifa)}
	p.CalcularSubtotal()
	return p
}

func mov(fecha, signo, monto string) *entity.Movimiento {
	return &entity.Movimiento{Fecha: dia(fecha), Signo: signo, Monto: dec(monto), Tipo: entity.MovimientoDescuento}
}

// ──────────────────────────────────────────────────────────────────────────────
// CalcularSaldo
// ──────────────────────────────────────────────────────────────────────────────

func TestCalcularSaldo_SinRegistros_NetoCero(t *testing.T) {
	s := nomina.CalcularSaldo(nil, nil, nil)

	assert.True(t, s.NetoPendiente.IsZero())
	assert.True(t, s.TotalProduccion.IsZero())
	assert.Nil(t, s.UltimoPagoFecha)
	assert.Nil(t, s.UltimoPagoMonto)
}

func TestCalcularSaldo_ProduccionMenosDescuento(t *testing.T) {
	s := nomina.CalcularSaldo(nil,
		[]*entity.Produccion{prod("2026-03-02", "10", "2.50")},
		[]*entity.Movimiento{mov("2026-03-03", entity.SignoNegativo, "5.00")},
	)

	assert.True(t, dec("25.00").Equal(s.TotalProduccion), s.TotalProduccion.String())
	assert.True(t, dec("5.00").Equal(s.TotalDescuentos))
	assert.True(t, s.TotalAdelantos.IsZero())
	assert.True(t, dec("20.00").Equal(s.NetoPendiente))
}

func TestCalcularSaldo_AdelantoTambienResta(t *testing.T) {
	s := nomina.CalcularSaldo(nil,
		[]*entity.Produccion{prod("2026-03-02", "4", "10")},
		[]*entity.Movimiento{
			mov("2026-03-02", entity.SignoPositivo, "15"),
			mov("2026-03-02", "x", "5"), // signo desconocido cuenta como descuento
		},
	)

	assert.True(t, dec("15").Equal(s.TotalAdelantos))
	assert.True(t, dec("5").Equal(s.TotalDescuentos))
	assert.True(t, dec("20").Equal(s.NetoPendiente))
}

func TestCalcularSaldo_SoloPosterioresAlUltimoCierre(t *testing.T) {
	ultimo := &entity.Ciclo{FechaFin: dia("2026-03-10"), TotalPagado: dec("80")}
	s := nomina.CalcularSaldo(ultimo,
		[]*entity.Produccion{
			prod("2026-03-10", "1", "100"), // mismo día del cierre: ya liquidado
			prod("2026-03-11", "2", "7.5"),
		},
		[]*entity.Movimiento{mov("2026-03-09", entity.SignoPositivo, "50")},
	)

	assert.True(t, dec("15").Equal(s.TotalProduccion))
	assert.True(t, s.TotalAdelantos.IsZero())
	require.NotNil(t, s.UltimoPagoFecha)
	assert.Equal(t, dia("2026-03-10"), *s.UltimoPagoFecha)
	assert.True(t, dec("80").Equal(*s.UltimoPagoMonto))
}

func TestCalcularSaldo_NetoPuedeSerNegativo(t *testing.T) {
	s := nomina.CalcularSaldo(nil, nil, []*entity.Movimiento{mov("2026-03-01", entity.SignoPositivo, "30")})
	assert.True(t, dec("-30").Equal(s.NetoPendiente))
}

func TestSubtotal_ExactoEnCentimos(t *testing.T) {
	p := prod("2026-03-01", "3", "0.33")
	assert.Equal(t, "0.99", p.Subtotal.String())
}

func TestRecortarHasta_DescartaDiasPosteriores(t *testing.T) {
	ps, ms := nomina.RecortarHasta(dia("2026-03-14"),
		[]*entity.Produccion{prod("2026-03-14", "1", "2.50"), prod("2026-03-20", "10", "2.50")},
		[]*entity.Movimiento{mov("2026-03-10", "-", "5"), mov("2026-03-15", "+", "8")},
	)
	require.Len(t, ps, 1)
	require.Len(t, ms, 1)

	s := nomina.CalcularSaldo(nil, ps, ms)
	assert.Equal(t, "2.5", s.TotalProduccion.String())
	assert.True(t, s.TotalAdelantos.IsZero())
	assert.Equal(t, "5", s.TotalDescuentos.String())
}

// ──────────────────────────────────────────────────────────────────────────────
// VentanaCiclo
// ──────────────────────────────────────────────────────────────────────────────

func TestVentanaCiclo_SiguienteAlUltimoCierre(t *testing.T) {
	ultimo := &entity.Ciclo{FechaFin: dia("2026-03-10")}
	inicio, fin := nomina.VentanaCiclo(ultimo, nil, dia("2026-03-17"))

	assert.Equal(t, dia("2026-03-11"), inicio)
	assert.Equal(t, dia("2026-03-17"), fin)
}

func TestVentanaCiclo_PrimerCicloDesdePrimeraProduccion(t *testing.T) {
	primera := dia("2026-02-20")
	inicio, fin := nomina.VentanaCiclo(nil, &primera, dia("2026-03-01"))

	assert.Equal(t, primera, inicio)
	assert.Equal(t, dia("2026-03-01"), fin)
}

func TestVentanaCiclo_PrimeraProduccionFuturaEmpiezaHoy(t *testing.T) {
	primera := dia("2026-03-05")
	inicio, fin := nomina.VentanaCiclo(nil, &primera, dia("2026-03-01"))
	assert.Equal(t, fin, inicio)
}

func TestVentanaCiclo_SinHistorialEsHoy(t *testing.T) {
	inicio, fin := nomina.VentanaCiclo(nil, nil, dia("2026-03-01"))
	assert.Equal(t, fin, inicio)
}

func TestVentanaCiclo_CiclosEncadenados(t *testing.T) {
	c1 := &entity.Ciclo{FechaFin: dia("2026-03-07")}
	inicio2, fin2 := nomina.VentanaCiclo(c1, nil, dia("2026-03-14"))
	c2 := &entity.Ciclo{FechaInicio: inicio2, FechaFin: fin2}
	inicio3, _ := nomina.VentanaCiclo(c2, nil, dia("2026-03-21"))

	assert.Equal(t, fechas.SiguienteDia(c1.FechaFin), c2.FechaInicio)
	assert.Equal(t, fechas.SiguienteDia(c2.FechaFin), inicio3)
}

func TestVentanaCiclo_SegundoCierreMismoDia_InicioDespuesDeFin(t *testing.T) {
	ultimo := &entity.Ciclo{FechaFin: dia("2026-03-14")}
	inicio, fin := nomina.VentanaCiclo(ultimo, nil, dia("2026-03-14"))
	assert.True(t, inicio.After(fin))
}

// ──────────────────────────────────────────────────────────────────────────────
// OrdenarPorNeto
// ──────────────────────────────────────────────────────────────────────────────

func TestOrdenarPorNeto_MayorPrimeroEstable(t *testing.T) {
	list := []nomina.SaldoEmpleado{
		{Empleado: &entity.Empleado{Codigo: "A"}, Saldo: nomina.Saldo{NetoPendiente: dec("10")}},
		{Empleado: &entity.Empleado{Codigo: "B"}, Saldo: nomina.Saldo{NetoPendiente: dec("30")}},
		{Empleado: &entity.Empleado{Codigo: "C"}, Saldo: nomina.Saldo{NetoPendiente: dec("10")}},
	}
	nomina.OrdenarPorNeto(list)

	codigos := []string{list[0].Empleado.Codigo, list[1].Empleado.Codigo, list[2].Empleado.Codigo}
	assert.Equal(t, []string{"B", "A", "C"}, codigos)
}

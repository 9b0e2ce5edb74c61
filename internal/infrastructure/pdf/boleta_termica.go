// Package pdf genera los documentos PDF del taller con Maroto v2.
//
// Boleta de pago en papel térmico de 58 mm:
//
//	┌──────────────────────────┐
//	│ TALLER / GLASARD-PERU     │
//	│ BOLETA DE PAGO            │
//	│ Boleta / Fecha            │
//	│ Empleado / Código / Periodo│
//	│ PRODUCCIÓN por categoría  │
//	│ MOVIMIENTOS               │
//	│ RESUMEN / TOTAL A PAGAR   │
//	│ Pagado / Gracias          │
//	└──────────────────────────┘
//
// Boleta de venta en A4: ver boleta_venta.go.
package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/linestyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/nomina"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/pkg/fechas"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/pkg/montos"
)

// Medidas del ticket en mm.
const (
	anchoTicket  = 58
	margenTicket = 3
	altoLinea    = 4.0
	maxNombre    = 18
)

var _ nomina.BoletaRenderer = (*BoletaTermica)(nil)

// BoletaTermica renderiza boletas de pago para impresora térmica.
type BoletaTermica struct {
	Empresa string
}

// NewBoletaTermica construye el renderer. empresa va bajo el encabezado TALLER.
func NewBoletaTermica(empresa string) *BoletaTermica {
	return &BoletaTermica{Empresa: nonEmpty(empresa, "GLASARD-PERU")}
}

// GrupoProduccion producción de una categoría.
type GrupoProduccion struct {
	Categoria string
	Lineas    []LineaProduccion
}

// LineaProduccion suma de un tipo de trabajo a una misma tarifa.
type LineaProduccion struct {
	Nombre   string
	Cantidad decimal.Decimal
	Tarifa   decimal.Decimal
	Subtotal decimal.Decimal
}

// AgruparProduccion agrupa por categoría y, dentro, por tipo de trabajo y tarifa,
// conservando el orden de llegada.
func AgruparProduccion(prod []*entity.ProduccionDetalle) []GrupoProduccion {
	var grupos []GrupoProduccion
	idxGrupo := map[string]int{}
	idxLinea := map[string]int{}

	for _, p := range prod {
		cat := nonEmpty(p.Categoria, "General")
		gi, ok := idxGrupo[cat]
		if !ok {
			gi = len(grupos)
			idxGrupo[cat] = gi
			grupos = append(grupos, GrupoProduccion{Categoria: cat})
		}
		clave := cat + "|" + p.TipoTrabajoID + "|" + p.TarifaAplicada.String()
		li, ok := idxLinea[clave]
		if !ok {
			li = len(grupos[gi].Lineas)
			idxLinea[clave] = li
			grupos[gi].Lineas = append(grupos[gi].Lineas, LineaProduccion{
				Nombre:   p.TipoTrabajoNombre,
				Cantidad: decimal.Zero,
				Tarifa:   p.TarifaAplicada,
				Subtotal: decimal.Zero,
			})
		}
		l := &grupos[gi].Lineas[li]
		l.Cantidad = l.Cantidad.Add(p.Cantidad)
		l.Subtotal = l.Subtotal.Add(p.Subtotal)
	}
	return grupos
}

// Recortar deja s en maxNombre caracteres: los nombres largos quedan en 16 + "..".
func Recortar(s string) string {
	r := []rune(s)
	if len(r) <= maxNombre {
		return s
	}
	return string(r[:maxNombre-2]) + ".."
}

// Capitalizar primera letra en mayúscula.
func Capitalizar(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

// RenderBoletaPago arma el ticket con la producción y los movimientos del periodo.
func (g *BoletaTermica) RenderBoletaPago(doc *nomina.BoletaDocumento) ([]byte, error) {
	if doc == nil || doc.Boleta == nil {
		return nil, fmt.Errorf("pdf: boleta vacía")
	}
	rows := g.filas(doc)

	// El rollo no tiene alto fijo: se estima por filas con holgura.
	alto := float64(2*margenTicket) + float64(len(rows))*(altoLinea+1)

	cfg := config.NewBuilder().
		WithDimensions(anchoTicket, alto).
		WithLeftMargin(margenTicket).WithRightMargin(margenTicket).
		WithTopMargin(margenTicket).WithBottomMargin(margenTicket).
		WithDefaultFont(&props.Font{Family: "courier", Size: 7}).
		WithTitle("Boleta de pago", true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(rows...)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar boleta de pago: %w", err)
	}
	return out.GetBytes(), nil
}

func (g *BoletaTermica) filas(doc *nomina.BoletaDocumento) []core.Row {
	b := doc.Boleta
	var rows []core.Row

	// ── Encabezado ───────────────────────────────────────────────────────────
	rows = append(rows,
		centrada("TALLER", fontstyle.Bold, 9),
		centrada(g.Empresa, fontstyle.Bold, 8),
		centrada("BOLETA DE PAGO", fontstyle.Bold, 8),
		separador(),
		parTexto("Boleta:", strings.ToUpper(prefijo(b.ID, 8))),
		parTexto("Fecha:", fechas.Corta(b.CreatedAt)),
		separador(),
		izquierda(b.EmpleadoNombre, fontstyle.Bold),
		parTexto("Código:", b.EmpleadoCodigo),
		parTexto("Periodo:", fechas.Corta(b.FechaInicio)+" - "+fechas.Corta(b.FechaFin)),
		separador(),
	)

	// ── Producción ───────────────────────────────────────────────────────────
	rows = append(rows, izquierda("PRODUCCIÓN", fontstyle.Bold))
	totalProd := decimal.Zero
	grupos := AgruparProduccion(doc.Produccion)
	if len(grupos) == 0 {
		rows = append(rows, izquierda("(sin registros)", fontstyle.Italic))
	}
	for _, gr := range grupos {
		rows = append(rows, izquierda(strings.ToUpper(gr.Categoria), fontstyle.BoldItalic))
		for _, l := range gr.Lineas {
			rows = append(rows,
				izquierda(Recortar(l.Nombre), fontstyle.Normal),
				parTexto("  "+l.Cantidad.String()+" x "+l.Tarifa.StringFixed(2), montos.Soles(l.Subtotal)),
			)
			totalProd = totalProd.Add(l.Subtotal)
		}
	}
	rows = append(rows, parNegrita("Subtotal:", montos.Soles(totalProd)), separador())

	// ── Movimientos ──────────────────────────────────────────────────────────
	rows = append(rows, izquierda("MOVIMIENTOS", fontstyle.Bold))
	adelantos, descuentos := decimal.Zero, decimal.Zero
	if len(doc.Movimientos) == 0 {
		rows = append(rows, parTexto("Sin movimientos", montos.Soles(decimal.Zero)))
	}
	for _, mv := range doc.Movimientos {
		signo := entity.SignoNegativo
		if mv.Signo == entity.SignoPositivo {
			signo = entity.SignoPositivo
			adelantos = adelantos.Add(mv.Monto)
		} else {
			descuentos = descuentos.Add(mv.Monto)
		}
		rows = append(rows, parTexto(Capitalizar(mv.Tipo), signo+montos.Soles(mv.Monto)))
	}
	rows = append(rows, separador())

	// ── Resumen ──────────────────────────────────────────────────────────────
	rows = append(rows,
		izquierda("RESUMEN", fontstyle.Bold),
		parTexto("Producción:", montos.Soles(totalProd)),
	)
	if adelantos.IsPositive() {
		rows = append(rows, parTexto("Adelantos:", "-"+montos.Soles(adelantos)))
	}
	if descuentos.IsPositive() {
		rows = append(rows, parTexto("Descuentos:", "-"+montos.Soles(descuentos)))
	}
	total := totalProd.Sub(adelantos).Sub(descuentos)
	rows = append(rows,
		separador(),
		centrada("TOTAL A PAGAR", fontstyle.Bold, 8),
		centrada(montos.Soles(total), fontstyle.Bold, 10),
		separador(),
	)

	if b.Pagado && b.PagadoAt != nil {
		rows = append(rows, centrada("Pagado: "+fechas.Corta(*b.PagadoAt), fontstyle.Normal, 7))
	}
	rows = append(rows, centrada("Gracias por su trabajo", fontstyle.Italic, 7))
	return rows
}

// ── helpers de filas ──────────────────────────────────────────────────────────

func centrada(s string, style fontstyle.Type, size float64) core.Row {
	return row.New(altoLinea + size/4).Add(col.New(12).Add(
		text.New(s, props.Text{Style: style, Size: size, Align: align.Center, Top: 0.5}),
	))
}

func izquierda(s string, style fontstyle.Type) core.Row {
	return row.New(altoLinea).Add(col.New(12).Add(
		text.New(s, props.Text{Style: style, Size: 7, Top: 0.5}),
	))
}

func parTexto(label, valor string) core.Row {
	return row.New(altoLinea).Add(
		col.New(7).Add(text.New(label, props.Text{Size: 7, Top: 0.5})),
		col.New(5).Add(text.New(valor, props.Text{Size: 7, Align: align.Right, Top: 0.5})),
	)
}

func parNegrita(label, valor string) core.Row {
	return row.New(altoLinea).Add(
		col.New(7).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 7, Top: 0.5})),
		col.New(5).Add(text.New(valor, props.Text{Style: fontstyle.Bold, Size: 7, Align: align.Right, Top: 0.5})),
	)
}

func separador() core.Row {
	return line.NewRow(2, props.Line{Style: linestyle.Dashed, Thickness: 0.2})
}

func prefijo(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

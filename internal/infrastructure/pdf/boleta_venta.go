package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/ventas"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/pkg/fechas"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/pkg/montos"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ ventas.VentaRenderer = (*BoletaVenta)(nil)

// BoletaVenta renderiza la boleta de venta electrónica en A4.
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  Razón social + RUC          │  BOLETA DE VENTA  B001-0001  │
//	│  Dirección / Tel / Email                                     │
//	│  CLIENTE: nombre, documento, dirección, fecha                │
//	│  Cant | Descripción | V/U | P/U | Importe                    │
//	│  OP. GRAVADA / IGV (18%) / TOTAL                             │
//	│  IMPORTE EN LETRAS                                           │
//	│  Código hash                                                 │
//	└─────────────────────────────────────────────────────────────┘
type BoletaVenta struct {
	fmt *montos.Formateador
}

// NewBoletaVenta construye el renderer.
func NewBoletaVenta(f *montos.Formateador) *BoletaVenta {
	return &BoletaVenta{fmt: f}
}

// RenderVentaBoleta genera el PDF y devuelve sus bytes.
func (g *BoletaVenta) RenderVentaBoleta(doc *ventas.VentaDocumento) ([]byte, error) {
	if doc == nil || doc.Boleta == nil {
		return nil, fmt.Errorf("pdf: boleta de venta vacía")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Boleta de venta electrónica", true).
		WithAuthor(doc.Empresa.Nombre, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.encabezado(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(emisorRow(doc.Empresa))
	m.AddRows(clienteRow(doc.Boleta))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(cabeceraTabla())
	m.AddRows(g.filasDetalle(doc.Boleta.Detalle)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totales(doc.Boleta))
	m.AddRows(line.NewRow(3))
	m.AddRows(pieRows(doc)...)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar boleta de venta: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *BoletaVenta) encabezado(doc *ventas.VentaDocumento) core.Row {
	b := doc.Boleta
	return row.New(20).Add(
		col.New(7).Add(
			text.New(doc.Empresa.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("RUC: "+doc.Empresa.RUC, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("BOLETA DE VENTA ELECTRÓNICA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("RUC "+doc.Empresa.RUC, props.Text{Size: 8, Align: align.Right, Top: 6}),
			text.New(b.Codigo(), props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 11}),
		),
	)
}

func emisorRow(e entity.Empresa) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Dirección: %s   |   Tel: %s   |   Email: %s",
			nonEmpty(e.Direccion, "-"),
			nonEmpty(e.Telefono, "-"),
			nonEmpty(e.Email, "-"),
		), props.Text{Size: 8, Top: 2, Color: colorGray}),
	))
}

func clienteRow(b *entity.VentaBoleta) core.Row {
	return row.New(20).Add(
		col.New(8).Add(
			text.New("CLIENTE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(nonEmpty(b.ClienteNombre, "CLIENTES VARIOS"), props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New("DNI/RUC: "+nonEmpty(b.ClienteDocumento, "-"), props.Text{Size: 8, Top: 11, Color: colorGray}),
			text.New("Dirección: "+nonEmpty(b.ClienteDireccion, "-"), props.Text{Size: 8, Top: 15, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Fecha de emisión", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1}),
			text.New(fechas.Corta(b.Fecha), props.Text{Size: 9, Align: align.Right, Top: 6}),
			text.New("Moneda: SOLES", props.Text{Size: 8, Align: align.Right, Top: 11, Color: colorGray}),
		),
	)
}

func cabeceraTabla() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Descripción", 5, align.Left),
		h("V/U", 2, align.Right),
		h("P/U", 2, align.Right),
		h("Importe", 2, align.Right),
	)
}

func (g *BoletaVenta) filasDetalle(detalle []entity.VentaDetalle) []core.Row {
	result := make([]core.Row, 0, len(detalle))
	for i := range detalle {
		d := &detalle[i]
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(d.Cantidad.String(), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(5).Add(text.New(d.Descripcion, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(g.fmt.Numero(d.ValorUnitario()), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(g.fmt.Numero(d.PrecioUnitario), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(g.fmt.Numero(d.Total), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func (g *BoletaVenta) totales(b *entity.VentaBoleta) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(
			label("OP. GRAVADA:", 1),
			label("IGV (18%):", 7),
			text.New("TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 13,
			}),
		),
		col.New(3).Add(
			value(g.fmt.Moneda(b.Subtotal), 1),
			value(g.fmt.Moneda(b.IGV), 7),
			text.New(g.fmt.Moneda(b.Total), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 13,
			}),
		),
	)
}

// pieRows importe en letras, código hash partido y agradecimiento.
func pieRows(doc *ventas.VentaDocumento) []core.Row {
	rows := []core.Row{
		row.New(10).Add(col.New(12).Add(
			text.New("IMPORTE EN LETRAS: "+doc.MontoLetras, props.Text{Style: fontstyle.Bold, Size: 8, Top: 2}),
		)),
	}
	if doc.Hash != "" {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New("Código hash:", props.Text{Style: fontstyle.Bold, Size: 7, Top: 1}),
		)))
		for _, chunk := range splitEvery(doc.Hash, 80) {
			rows = append(rows, row.New(4).Add(col.New(12).Add(
				text.New(chunk, props.Text{Size: 6.5, Color: colorGray, Top: 0.5, Left: 2}),
			)))
		}
	}
	rows = append(rows,
		row.New(6).Add(col.New(12).Add(
			text.New("Representación impresa de la boleta de venta electrónica.", props.Text{
				Size: 7, Color: colorGray, Top: 2, Align: align.Center,
			}),
		)),
		row.New(8).Add(col.New(12).Add(
			text.New("Gracias por su compra", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Center, Color: colorPrimary, Top: 2,
			}),
		)),
	)
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// splitEvery divide s en trozos de max n caracteres.
func splitEvery(s string, n int) []string {
	var parts []string
	for len(s) > n {
		parts = append(parts, s[:n])
		s = s[n:]
	}
	if s != "" {
		parts = append(parts, s)
	}
	return parts
}

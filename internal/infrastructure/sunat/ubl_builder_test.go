package sunat_test

import (
	"strings"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/infrastructure/sunat"
)

var emisor = entity.Empresa{Nombre: "GLASARD-PERU", RUC: "20601234567", Direccion: "Av. Grau 123, Lima"}

func boleta() *entity.VentaBoleta {
	b := &entity.VentaBoleta{
		ID:               "vb1",
		Serie:            "B001",
		Numero:           7,
		Fecha:            time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC),
		ClienteNombre:    "Marta Quispe",
		ClienteDocumento: "45678912",
		CreatedAt:        time.Date(2026, 10, 16, 15, 4, 5, 0, time.UTC),
		Detalle: []entity.VentaDetalle{
			{Descripcion: "Vidrio templado", Cantidad: decimal.NewFromInt(2), PrecioUnitario: decimal.RequireFromString("59.00")},
		},
	}
	b.CalcularTotales()
	return b
}

// ─────────────────────────────────────────────────────────────────────────────
// Build
// ─────────────────────────────────────────────────────────────────────────────

func TestBuild_EstructuraUBL(t *testing.T) {
	xml, digest, err := sunat.NewUBLBuilder().Build(boleta(), emisor)
	require.NoError(t, err)
	require.NotEmpty(t, digest)

	assert.True(t, strings.HasPrefix(string(xml), `<?xml version="1.0" encoding="UTF-8"?>`))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(xml))
	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "Invoice", root.Tag)

	assert.Equal(t, "B001-00000007", root.FindElement("cbc:ID").Text())
	assert.Equal(t, "2026-10-16", root.FindElement("cbc:IssueDate").Text())
	assert.Equal(t, sunat.TipoBoleta, root.FindElement("cbc:InvoiceTypeCode").Text())
	assert.Equal(t, "118.00", root.FindElement("cac:LegalMonetaryTotal/cbc:PayableAmount").Text())
	assert.Equal(t, "100.00", root.FindElement("cac:LegalMonetaryTotal/cbc:LineExtensionAmount").Text())
	assert.Equal(t, "18.00", root.FindElement("cac:TaxTotal/cbc:TaxAmount").Text())

	cliente := root.FindElement("cac:AccountingCustomerParty/cac:Party/cac:PartyIdentification/cbc:ID")
	require.NotNil(t, cliente)
	assert.Equal(t, sunat.DocDNI, cliente.SelectAttrValue("schemeID", ""))

	dv := root.FindElement("//ds:DigestValue")
	require.NotNil(t, dv)
	assert.Equal(t, digest, dv.Text())
}

func TestBuild_DigestEstable(t *testing.T) {
	_, d1, err := sunat.NewUBLBuilder().Build(boleta(), emisor)
	require.NoError(t, err)
	_, d2, err := sunat.NewUBLBuilder().Build(boleta(), emisor)
	require.NoError(t, err)
	assert.Equal(t, d1, d2)

	otra := boleta()
	otra.ClienteNombre = "Otro Cliente"
	_, d3, err := sunat.NewUBLBuilder().Build(otra, emisor)
	require.NoError(t, err)
	assert.NotEqual(t, d1, d3)
}

func TestBuild_SinRUC(t *testing.T) {
	_, _, err := sunat.NewUBLBuilder().Build(boleta(), entity.Empresa{Nombre: "X"})
	assert.Error(t, err)
}

func TestBuild_ClienteSinDocumento(t *testing.T) {
	b := boleta()
	b.ClienteNombre = ""
	b.ClienteDocumento = ""
	xml, _, err := sunat.NewUBLBuilder().Build(b, emisor)
	require.NoError(t, err)
	assert.Contains(t, string(xml), "CLIENTES VARIOS")
}

// ─────────────────────────────────────────────────────────────────────────────
// Catálogo 06
// ─────────────────────────────────────────────────────────────────────────────

func TestTipoDocumento(t *testing.T) {
	tests := []struct {
		doc  string
		want string
	}{
		{"45678912", sunat.DocDNI},
		{"20601234567", sunat.DocRUC},
		{"", sunat.DocSinDocumento},
		{"4567891A", sunat.DocSinDocumento},
		{"123", sunat.DocSinDocumento},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, sunat.TipoDocumento(tc.doc), tc.doc)
	}
}

func TestDigest_SHA256Base64(t *testing.T) {
	d, err := sunat.Digest([]byte(`<a><b>1</b></a>`))
	require.NoError(t, err)
	assert.Len(t, d, 44)
	assert.True(t, strings.HasSuffix(d, "="))
}

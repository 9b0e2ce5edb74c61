// Package sunat arma el XML UBL 2.1 de las boletas de venta (tipo de comprobante 03)
// y calcula su valor resumen (digest SHA-256 del documento canonicalizado).
//
// El documento no lleva firma con certificado: el nodo ds:Signature solo contiene el
// SignedInfo con el DigestValue, que es el "código hash" impreso en el PDF.
package sunat

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/ucarion/c14n"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/ventas"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
)

// Namespaces UBL 2.1.
const (
	NsInvoice = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	NsCac     = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	NsCbc     = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"
	NsExt     = "urn:oasis:names:specification:ubl:schema:xsd:CommonExtensionComponents-2"
	NsDs      = "http://www.w3.org/2000/09/xmldsig#"

	AlgC14N            = "http://www.w3.org/TR/2001/REC-xml-c14n-20010315"
	AlgSHA256          = "http://www.w3.org/2001/04/xmlenc#sha256"
	TransformEnveloped = "http://www.w3.org/2000/09/xmldsig#enveloped-signature"
)

// Catálogos SUNAT usados en la boleta.
const (
	TipoBoleta        = "03"
	Moneda            = "PEN"
	TributoIGV        = "1000"
	AfectacionGravada = "10"
	DocDNI            = "1"
	DocRUC            = "6"
	DocSinDocumento   = "0"
	ElementoID        = "boleta-id"
)

var _ ventas.ComprobanteBuilder = (*UBLBuilder)(nil)

// UBLBuilder construye la boleta electrónica en UBL 2.1.
type UBLBuilder struct{}

// NewUBLBuilder crea el servicio.
func NewUBLBuilder() *UBLBuilder { return &UBLBuilder{} }

// Build devuelve el XML con el DigestValue ya inyectado y el digest en base64.
func (s *UBLBuilder) Build(b *entity.VentaBoleta, emisor entity.Empresa) ([]byte, string, error) {
	if b == nil {
		return nil, "", fmt.Errorf("sunat: boleta vacía")
	}
	if emisor.RUC == "" {
		return nil, "", fmt.Errorf("sunat: RUC del emisor no configurado")
	}

	doc := s.documento(b, emisor)
	raw, err := doc.WriteToBytes()
	if err != nil {
		return nil, "", fmt.Errorf("sunat: serializar XML: %w", err)
	}

	digest, err := Digest(raw)
	if err != nil {
		return nil, "", err
	}

	// Firma envuelta: el digest se calcula antes de insertar ds:Signature.
	content := doc.FindElement("//ext:ExtensionContent")
	if content == nil {
		return nil, "", fmt.Errorf("sunat: no se encontró ext:ExtensionContent")
	}
	content.AddChild(signedInfo(digest))

	// La declaración se agrega después del digest: C14N no la incluye.
	doc.InsertChildAt(0, etree.NewProcInst("xml", `version="1.0" encoding="UTF-8"`))
	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, "", fmt.Errorf("sunat: serializar XML: %w", err)
	}
	return out, digest, nil
}

// Digest SHA-256 en base64 del documento canonicalizado (C14N 1.0).
func Digest(xmlBytes []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(xmlBytes))
	dec.Entity = map[string]string{}
	canon, err := c14n.Canonicalize(dec)
	if err != nil {
		return "", fmt.Errorf("sunat: canonicalizar: %w", err)
	}
	sum := sha256.Sum256(canon)
	return base64.StdEncoding.EncodeToString(sum[:]), nil
}

func (s *UBLBuilder) documento(b *entity.VentaBoleta, emisor entity.Empresa) *etree.Document {
	doc := etree.NewDocument()

	root := doc.CreateElement("Invoice")
	root.CreateAttr("xmlns", NsInvoice)
	root.CreateAttr("xmlns:cac", NsCac)
	root.CreateAttr("xmlns:cbc", NsCbc)
	root.CreateAttr("xmlns:ds", NsDs)
	root.CreateAttr("xmlns:ext", NsExt)
	root.CreateAttr("Id", ElementoID)

	// ext:UBLExtensions siempre como primer hijo: ahí va la firma.
	root.CreateElement("ext:UBLExtensions").
		CreateElement("ext:UBLExtension").
		CreateElement("ext:ExtensionContent")

	cbc(root, "UBLVersionID", "2.1")
	cbc(root, "CustomizationID", "2.0")
	cbc(root, "ID", b.Codigo())
	cbc(root, "IssueDate", b.Fecha.Format("2006-01-02"))
	cbc(root, "IssueTime", b.CreatedAt.Format("15:04:05"))
	cbc(root, "InvoiceTypeCode", TipoBoleta).CreateAttr("listID", "0101")
	cbc(root, "DocumentCurrencyCode", Moneda)
	cbc(root, "LineCountNumeric", strconv.Itoa(len(b.Detalle)))

	writeEmisor(root, emisor)
	writeCliente(root, b)
	writeTaxTotal(root, b.Subtotal, b.IGV)

	lmt := root.CreateElement("cac:LegalMonetaryTotal")
	amount(lmt, "LineExtensionAmount", b.Subtotal)
	amount(lmt, "TaxInclusiveAmount", b.Total)
	amount(lmt, "PayableAmount", b.Total)

	for i := range b.Detalle {
		writeLinea(root, i+1, &b.Detalle[i])
	}
	return doc
}

func writeEmisor(root *etree.Element, e entity.Empresa) {
	party := root.CreateElement("cac:AccountingSupplierParty").CreateElement("cac:Party")
	cbc(party.CreateElement("cac:PartyIdentification"), "ID", e.RUC).CreateAttr("schemeID", DocRUC)
	legal := party.CreateElement("cac:PartyLegalEntity")
	cbc(legal, "RegistrationName", e.Nombre)
	if e.Direccion != "" {
		addr := legal.CreateElement("cac:RegistrationAddress")
		cbc(addr, "AddressTypeCode", "0000")
		cbc(addr.CreateElement("cac:AddressLine"), "Line", e.Direccion)
	}
}

func writeCliente(root *etree.Element, b *entity.VentaBoleta) {
	party := root.CreateElement("cac:AccountingCustomerParty").CreateElement("cac:Party")
	doc := b.ClienteDocumento
	if doc == "" {
		doc = "-"
	}
	cbc(party.CreateElement("cac:PartyIdentification"), "ID", doc).CreateAttr("schemeID", TipoDocumento(b.ClienteDocumento))
	legal := party.CreateElement("cac:PartyLegalEntity")
	nombre := b.ClienteNombre
	if nombre == "" {
		nombre = "CLIENTES VARIOS"
	}
	cbc(legal, "RegistrationName", nombre)
	if b.ClienteDireccion != "" {
		cbc(legal.CreateElement("cac:RegistrationAddress").CreateElement("cac:AddressLine"), "Line", b.ClienteDireccion)
	}
}

func writeTaxTotal(parent *etree.Element, base, igv decimal.Decimal) {
	tt := parent.CreateElement("cac:TaxTotal")
	amount(tt, "TaxAmount", igv)
	sub := tt.CreateElement("cac:TaxSubtotal")
	amount(sub, "TaxableAmount", base)
	amount(sub, "TaxAmount", igv)
	cat := sub.CreateElement("cac:TaxCategory")
	cbc(cat, "Percent", entity.TasaIGV.Mul(decimal.NewFromInt(100)).StringFixed(2))
	cbc(cat, "TaxExemptionReasonCode", AfectacionGravada)
	scheme := cat.CreateElement("cac:TaxScheme")
	cbc(scheme, "ID", TributoIGV)
	cbc(scheme, "Name", "IGV")
	cbc(scheme, "TaxTypeCode", "VAT")
}

func writeLinea(root *etree.Element, n int, d *entity.VentaDetalle) {
	line := root.CreateElement("cac:InvoiceLine")
	cbc(line, "ID", strconv.Itoa(n))
	cbc(line, "InvoicedQuantity", d.Cantidad.String()).CreateAttr("unitCode", "NIU")

	valorVenta := d.Cantidad.Mul(d.ValorUnitario()).Round(2)
	amount(line, "LineExtensionAmount", valorVenta)

	pr := line.CreateElement("cac:PricingReference").CreateElement("cac:AlternativeConditionPrice")
	amount(pr, "PriceAmount", d.PrecioUnitario)
	cbc(pr, "PriceTypeCode", "01")

	writeTaxTotal(line, valorVenta, d.Total.Sub(valorVenta))

	cbc(line.CreateElement("cac:Item"), "Description", d.Descripcion)
	amount(line.CreateElement("cac:Price"), "PriceAmount", d.ValorUnitario())
}

func signedInfo(digest string) *etree.Element {
	sig := etree.NewElement("ds:Signature")
	sig.CreateAttr("Id", "SignatureSP")
	si := sig.CreateElement("ds:SignedInfo")
	si.CreateElement("ds:CanonicalizationMethod").CreateAttr("Algorithm", AlgC14N)
	ref := si.CreateElement("ds:Reference")
	ref.CreateAttr("URI", "#"+ElementoID)
	ref.CreateElement("ds:Transforms").CreateElement("ds:Transform").CreateAttr("Algorithm", TransformEnveloped)
	ref.CreateElement("ds:DigestMethod").CreateAttr("Algorithm", AlgSHA256)
	ref.CreateElement("ds:DigestValue").SetText(digest)
	return sig
}

// TipoDocumento catálogo 06: 8 dígitos DNI, 11 dígitos RUC, otro sin documento.
func TipoDocumento(doc string) string {
	for _, c := range doc {
		if c < '0' || c > '9' {
			return DocSinDocumento
		}
	}
	switch len(doc) {
	case 8:
		return DocDNI
	case 11:
		return DocRUC
	}
	return DocSinDocumento
}

func cbc(parent *etree.Element, local, value string) *etree.Element {
	el := parent.CreateElement("cbc:" + local)
	el.SetText(value)
	return el
}

func amount(parent *etree.Element, local string, v decimal.Decimal) {
	cbc(parent, local, v.Round(2).StringFixed(2)).CreateAttr("currencyID", Moneda)
}

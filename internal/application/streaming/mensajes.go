package streaming

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/pkg/fechas"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/pkg/montos"
)

// MensajeNuevaVenta aviso Markdown al chat del negocio.
func MensajeNuevaVenta(s *entity.SaleDetalle, f *montos.Formateador) string {
	next := "N/A"
	if s.NextChargeDate != nil {
		next = fechas.Corta(*s.NextChargeDate)
	}
	return fmt.Sprintf("*New Sale*\nPlatform: %s\nCustomer: %s\nPlan: %s\nPrice: %s\nNext charge: %s",
		s.PlatformName, s.CustomerName, s.Plan, f.Moneda(s.Price), next)
}

// MensajeRecordatorio aviso Markdown de cobro pendiente.
func MensajeRecordatorio(r *entity.ReminderDue, f *montos.Formateador) string {
	return fmt.Sprintf("*Payment Reminder*\nCustomer: %s\nPlatform: %s\nAmount: %s\nDue Date: %s",
		r.Sale.CustomerName, r.Sale.PlatformName, f.Moneda(r.Sale.Price), fechas.Corta(r.DueAt))
}

// Credenciales datos de acceso que se envían al cliente.
type Credenciales struct {
	Email    string
	Password string
	Profile  string
	PIN      string
}

// MensajeCredenciales texto de entrega de la cuenta para WhatsApp.
func MensajeCredenciales(s *entity.SaleDetalle, c Credenciales) string {
	pin := ""
	if c.PIN != "" {
		pin = "🔑 PIN: " + c.PIN
	}
	venc := ""
	if s.NextChargeDate != nil {
		venc = fechas.ISO(*s.NextChargeDate)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hola %s 👋🏻\n\n", s.CustomerName)
	fmt.Fprintf(&b, "🍿 Tu subscripción a %s (%s) 🍿\n\n", s.PlatformName, s.Plan)
	fmt.Fprintf(&b, "✉ Usuario: %s\n", c.Email)
	fmt.Fprintf(&b, "🔐 Contraseña: %s\n", c.Password)
	fmt.Fprintf(&b, "👥 Perfil: %s\n", c.Profile)
	fmt.Fprintf(&b, "%s\n\n", pin)
	fmt.Fprintf(&b, "⏳ Plan: %s\n", s.Plan)
	fmt.Fprintf(&b, "🗓 Compra: %s\n", fechas.ISO(s.SaleDate))
	fmt.Fprintf(&b, "🗓 Vencimiento: %s\n\n", venc)
	b.WriteString("⚠️ Condiciones de uso:\n")
	b.WriteString("El servicio es exclusivo para un solo dispositivo.\n")
	b.WriteString("No se permite uso simultáneo.\n")
	b.WriteString("Ante uso indebido la cuenta podrá ser suspendida sin previo aviso.\n")
	b.WriteString("En caso de inconveniente se atenderá entre 1 a 24 horas.")
	return strings.TrimSpace(b.String())
}

// EnlaceWhatsApp URL de api.whatsapp.com con el texto codificado.
func EnlaceWhatsApp(phone, text string) string {
	phone = strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	// QueryEscape codifica el espacio como "+"; WhatsApp espera %20.
	text = strings.ReplaceAll(url.QueryEscape(strings.TrimSpace(text)), "+", "%20")
	return "https://api.whatsapp.com/send?phone=" + phone + "&text=" + text
}

package streaming_test

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/repository"
)

// memReventa base en memoria para ventas, clientes, plataformas y recordatorios.
type memReventa struct {
	platforms map[string]*entity.Platform
	customers []*entity.Customer
	sales     map[string]*entity.Sale
	reminders []*entity.Reminder

	failMarkSent     map[string]bool
	failCreateRemind bool
}

func newMemReventa() *memReventa {
	return &memReventa{
		platforms:    map[string]*entity.Platform{},
		sales:        map[string]*entity.Sale{},
		failMarkSent: map[string]bool{},
	}
}

// RunSales si fn falla restaura el estado previo, como un rollback.
func (m *memReventa) RunSales(_ context.Context, fn func(
	repository.CustomerRepository,
	repository.SaleRepository,
	repository.ReminderRepository,
) error) error {
	reminders := make([]*entity.Reminder, len(m.reminders))
	for i, r := range m.reminders {
		c := *r
		reminders[i] = &c
	}
	sales := make(map[string]*entity.Sale, len(m.sales))
	for k, s := range m.sales {
		c := *s
		sales[k] = &c
	}
	customers := append([]*entity.Customer(nil), m.customers...)

	if err := fn(&memCustomers{m}, &memSales{m}, &memReminders{m}); err != nil {
		m.reminders, m.sales, m.customers = reminders, sales, customers
		return err
	}
	return nil
}

func (m *memReventa) detalle(s *entity.Sale) *entity.SaleDetalle {
	d := &entity.SaleDetalle{Sale: *s}
	if p := m.platforms[s.PlatformID]; p != nil {
		d.PlatformName = p.Name
	}
	for _, c := range m.customers {
		if c.ID == s.CustomerID {
			d.CustomerName, d.CustomerEmail, d.CustomerPhone = c.FullName, c.Email, c.Phone
		}
	}
	return d
}

// ── Plataformas ───────────────────────────────────────────────────────────────

type memPlatforms struct{ m *memReventa }

func (r *memPlatforms) Create(_ context.Context, p *entity.Platform) error {
	r.m.platforms[p.ID] = p
	return nil
}
func (r *memPlatforms) Update(_ context.Context, p *entity.Platform) error {
	r.m.platforms[p.ID] = p
	return nil
}
func (r *memPlatforms) GetByID(_ context.Context, id string) (*entity.Platform, error) {
	return r.m.platforms[id], nil
}
func (r *memPlatforms) List(context.Context, bool) ([]*entity.Platform, error) { return nil, nil }
func (r *memPlatforms) SetActive(_ context.Context, id string, active bool) error {
	r.m.platforms[id].IsActive = active
	return nil
}
func (r *memPlatforms) SetLogo(_ context.Context, id, logoURL string) error {
	r.m.platforms[id].LogoURL = &logoURL
	return nil
}

// ── Clientes ──────────────────────────────────────────────────────────────────

type memCustomers struct{ m *memReventa }

func (r *memCustomers) Create(_ context.Context, c *entity.Customer) error {
	r.m.customers = append(r.m.customers, c)
	return nil
}
func (r *memCustomers) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	for _, c := range r.m.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}
func (r *memCustomers) FindByEmailOrPhone(_ context.Context, email, phone string) (*entity.Customer, error) {
	for _, c := range r.m.customers {
		if email != "" && c.Email != nil && strings.EqualFold(*c.Email, email) {
			return c, nil
		}
		if phone != "" && c.Phone != nil && *c.Phone == phone {
			return c, nil
		}
	}
	return nil, nil
}
func (r *memCustomers) List(context.Context) ([]*entity.Customer, error) { return r.m.customers, nil }

// ── Ventas ────────────────────────────────────────────────────────────────────

type memSales struct{ m *memReventa }

func (r *memSales) Create(_ context.Context, s *entity.Sale) error {
	r.m.sales[s.ID] = s
	return nil
}
func (r *memSales) GetByID(_ context.Context, id string) (*entity.SaleDetalle, error) {
	s := r.m.sales[id]
	if s == nil {
		return nil, nil
	}
	return r.m.detalle(s), nil
}
func (r *memSales) List(_ context.Context, platformID string) ([]*entity.SaleDetalle, error) {
	var out []*entity.SaleDetalle
	for _, s := range r.m.sales {
		if platformID == "" || s.PlatformID == platformID {
			out = append(out, r.m.detalle(s))
		}
	}
	return out, nil
}
func (r *memSales) UpdateStatus(_ context.Context, id, status string) error {
	r.m.sales[id].Status = status
	return nil
}
func (r *memSales) UpdateNextChargeDate(_ context.Context, id string, next time.Time) error {
	r.m.sales[id].NextChargeDate = &next
	return nil
}

// ── Recordatorios ─────────────────────────────────────────────────────────────

type memReminders struct{ m *memReventa }

func (r *memReminders) Create(_ context.Context, rem *entity.Reminder) error {
	if r.m.failCreateRemind {
		return errors.New("crear recordatorio: conexión perdida")
	}
	r.m.reminders = append(r.m.reminders, rem)
	return nil
}
func (r *memReminders) ListDue(_ context.Context, hoy time.Time) ([]*entity.ReminderDue, error) {
	var out []*entity.ReminderDue
	for _, rem := range r.m.reminders {
		if rem.IsSent || rem.DueAt.After(hoy) {
			continue
		}
		s := r.m.sales[rem.SaleID]
		if s == nil {
			continue
		}
		out = append(out, &entity.ReminderDue{Reminder: *rem, Sale: *r.m.detalle(s)})
	}
	return out, nil
}
func (r *memReminders) MarkSent(_ context.Context, id string, at time.Time) error {
	if r.m.failMarkSent[id] {
		return errors.New("marcar enviado: conexión perdida")
	}
	for _, rem := range r.m.reminders {
		if rem.ID == id {
			rem.IsSent = true
			rem.SentAt = &at
		}
	}
	return nil
}

// pendientes recordatorios aún no enviados.
func (m *memReventa) pendientes() []*entity.Reminder {
	var out []*entity.Reminder
	for _, r := range m.reminders {
		if !r.IsSent {
			out = append(out, r)
		}
	}
	return out
}

// ── Notificador ───────────────────────────────────────────────────────────────

type fakeNotifier struct {
	enviados []string
	err      error
}

func (n *fakeNotifier) SendMessage(_ context.Context, _ string, text string) error {
	n.enviados = append(n.enviados, text)
	return n.err
}

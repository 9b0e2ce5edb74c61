package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var (
	_ repository.PlatformRepository = (*PlatformRepo)(nil)
	_ repository.SaleRepository     = (*SaleRepo)(nil)
	_ repository.ReminderRepository = (*ReminderRepo)(nil)
)

// ─── Plataformas ──────────────────────────────────────────────────────────

const platformColumns = `id, name, is_active, monthly_price, yearly_price, logo_url, created_at`

// PlatformRepo plataformas de streaming sobre PostgreSQL.
type PlatformRepo struct {
	q Querier
}

// NewPlatformRepository construye el adaptador.
func NewPlatformRepository(q Querier) *PlatformRepo {
	return &PlatformRepo{q: q}
}

func scanPlatform(row pgx.Row) (*entity.Platform, error) {
	var p entity.Platform
	if err := row.Scan(&p.ID, &p.Name, &p.IsActive, &p.MonthlyPrice, &p.YearlyPrice, &p.LogoURL, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PlatformRepo) Create(ctx context.Context, p *entity.Platform) error {
	query := `INSERT INTO platforms (` + platformColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := r.q.Exec(ctx, query, p.ID, p.Name, p.IsActive, p.MonthlyPrice, p.YearlyPrice, p.LogoURL, p.CreatedAt); err != nil {
		return fmt.Errorf("insert platform: %w", err)
	}
	return nil
}

func (r *PlatformRepo) Update(ctx context.Context, p *entity.Platform) error {
	query := `UPDATE platforms SET name = $2, is_active = $3, monthly_price = $4, yearly_price = $5 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, p.ID, p.Name, p.IsActive, p.MonthlyPrice, p.YearlyPrice)
	if err != nil {
		return fmt.Errorf("update platform: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PlatformRepo) GetByID(ctx context.Context, id string) (*entity.Platform, error) {
	p, err := scanPlatform(r.q.QueryRow(ctx, `SELECT `+platformColumns+` FROM platforms WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get platform: %w", err)
	}
	return p, nil
}

func (r *PlatformRepo) List(ctx context.Context, soloActivas bool) ([]*entity.Platform, error) {
	rows, err := r.q.Query(ctx, `SELECT `+platformColumns+` FROM platforms WHERE ($1 = FALSE OR is_active) ORDER BY name`, soloActivas)
	if err != nil {
		return nil, fmt.Errorf("list platforms: %w", err)
	}
	defer rows.Close()
	var list []*entity.Platform
	for rows.Next() {
		p, err := scanPlatform(rows)
		if err != nil {
			return nil, fmt.Errorf("scan platform: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *PlatformRepo) SetActive(ctx context.Context, id string, active bool) error {
	return r.exec(ctx, `UPDATE platforms SET is_active = $2 WHERE id = $1`, id, active)
}

func (r *PlatformRepo) SetLogo(ctx context.Context, id, logoURL string) error {
	return r.exec(ctx, `UPDATE platforms SET logo_url = $2 WHERE id = $1`, id, logoURL)
}

func (r *PlatformRepo) exec(ctx context.Context, query string, args ...any) error {
	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update platform: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ─── Ventas ───────────────────────────────────────────────────────────────

const saleDetalleSelect = `SELECT s.id, s.platform_id, s.customer_id, s.sale_date, s.payment_method, s.plan,
	s.start_date, s.end_date, s.next_charge_date, s.price, s.status, s.created_at,
	p.name, c.full_name, c.email, c.phone
	FROM sales s
	JOIN platforms p ON p.id = s.platform_id
	JOIN customers c ON c.id = s.customer_id`

// SaleRepo ventas sobre PostgreSQL.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

func scanSaleDetalle(row pgx.Row, extra ...any) (*entity.SaleDetalle, error) {
	var d entity.SaleDetalle
	s := &d.Sale
	dest := append([]any{&s.ID, &s.PlatformID, &s.CustomerID, &s.SaleDate, &s.PaymentMethod, &s.Plan,
		&s.StartDate, &s.EndDate, &s.NextChargeDate, &s.Price, &s.Status, &s.CreatedAt,
		&d.PlatformName, &d.CustomerName, &d.CustomerEmail, &d.CustomerPhone}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	query := `INSERT INTO sales (id, platform_id, customer_id, sale_date, payment_method, plan, start_date, end_date,
		next_charge_date, price, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query, s.ID, s.PlatformID, s.CustomerID, s.SaleDate, s.PaymentMethod, s.Plan, s.StartDate,
		s.EndDate, s.NextChargeDate, s.Price, s.Status, s.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.SaleDetalle, error) {
	d, err := scanSaleDetalle(r.q.QueryRow(ctx, saleDetalleSelect+` WHERE s.id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return d, nil
}

func (r *SaleRepo) List(ctx context.Context, platformID string) ([]*entity.SaleDetalle, error) {
	query := saleDetalleSelect + ` WHERE ($1::uuid IS NULL OR s.platform_id = $1::uuid) ORDER BY s.created_at DESC`
	rows, err := r.q.Query(ctx, query, nullIfEmpty(platformID))
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleDetalle
	for rows.Next() {
		d, err := scanSaleDetalle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func (r *SaleRepo) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.q.Exec(ctx, `UPDATE sales SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update sale status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SaleRepo) UpdateNextChargeDate(ctx context.Context, id string, next time.Time) error {
	tag, err := r.q.Exec(ctx, `UPDATE sales SET next_charge_date = $2 WHERE id = $1`, id, next)
	if err != nil {
		return fmt.Errorf("update next charge: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ─── Recordatorios ────────────────────────────────────────────────────────

// ReminderRepo recordatorios sobre PostgreSQL.
type ReminderRepo struct {
	q Querier
}

// NewReminderRepository construye el adaptador.
func NewReminderRepository(q Querier) *ReminderRepo {
	return &ReminderRepo{q: q}
}

func (r *ReminderRepo) Create(ctx context.Context, rem *entity.Reminder) error {
	query := `INSERT INTO reminders (id, sale_id, due_at, kind, is_sent, sent_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := r.q.Exec(ctx, query, rem.ID, rem.SaleID, rem.DueAt, rem.Kind, rem.IsSent, rem.SentAt, rem.CreatedAt); err != nil {
		return fmt.Errorf("insert reminder: %w", err)
	}
	return nil
}

// ListDue recordatorios no enviados con due_at <= hoy, más antiguos primero.
func (r *ReminderRepo) ListDue(ctx context.Context, hoy time.Time) ([]*entity.ReminderDue, error) {
	query := `SELECT s.id, s.platform_id, s.customer_id, s.sale_date, s.payment_method, s.plan,
		s.start_date, s.end_date, s.next_charge_date, s.price, s.status, s.created_at,
		p.name, c.full_name, c.email, c.phone,
		r.id, r.sale_id, r.due_at, r.kind, r.is_sent, r.sent_at, r.created_at
		FROM reminders r
		JOIN sales s ON s.id = r.sale_id
		JOIN platforms p ON p.id = s.platform_id
		JOIN customers c ON c.id = s.customer_id
		WHERE NOT r.is_sent AND r.due_at <= $1
		ORDER BY r.due_at, r.created_at`
	rows, err := r.q.Query(ctx, query, hoy)
	if err != nil {
		return nil, fmt.Errorf("list due reminders: %w", err)
	}
	defer rows.Close()
	var list []*entity.ReminderDue
	for rows.Next() {
		var rem entity.Reminder
		sale, err := scanSaleDetalle(rows, &rem.ID, &rem.SaleID, &rem.DueAt, &rem.Kind, &rem.IsSent, &rem.SentAt, &rem.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan reminder: %w", err)
		}
		list = append(list, &entity.ReminderDue{Reminder: rem, Sale: *sale})
	}
	return list, rows.Err()
}

func (r *ReminderRepo) MarkSent(ctx context.Context, id string, at time.Time) error {
	tag, err := r.q.Exec(ctx, `UPDATE reminders SET is_sent = TRUE, sent_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("mark reminder sent: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

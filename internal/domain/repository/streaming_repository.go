package repository

import (
	"context"
	"time"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
)

// PlatformRepository plataformas de streaming.
type PlatformRepository interface {
	Create(ctx context.Context, p *entity.Platform) error
	Update(ctx context.Context, p *entity.Platform) error
	GetByID(ctx context.Context, id string) (*entity.Platform, error)
	List(ctx context.Context, soloActivas bool) ([]*entity.Platform, error)
	SetActive(ctx context.Context, id string, active bool) error
	SetLogo(ctx context.Context, id, logoURL string) error
}

// SaleRepository ventas de suscripciones.
type SaleRepository interface {
	Create(ctx context.Context, s *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.SaleDetalle, error)
	// List más recientes primero; platformID vacío = todas.
	List(ctx context.Context, platformID string) ([]*entity.SaleDetalle, error)
	UpdateStatus(ctx context.Context, id, status string) error
	UpdateNextChargeDate(ctx context.Context, id string, next time.Time) error
}

// ReminderRepository recordatorios de cobro.
type ReminderRepository interface {
	Create(ctx context.Context, r *entity.Reminder) error
	// ListDue no enviados con due_at <= hoy, con su venta.
	ListDue(ctx context.Context, hoy time.Time) ([]*entity.ReminderDue, error)
	MarkSent(ctx context.Context, id string, at time.Time) error
}

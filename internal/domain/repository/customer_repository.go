package repository

import (
	"context"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
)

// CustomerRepository clientes de streaming.
type CustomerRepository interface {
	Create(ctx context.Context, c *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	// FindByEmailOrPhone primer cliente cuyo email o teléfono coincida; nil si no hay.
	FindByEmailOrPhone(ctx context.Context, email, phone string) (*entity.Customer, error)
	List(ctx context.Context) ([]*entity.Customer, error)
}

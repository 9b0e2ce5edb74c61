package repository

import (
	"context"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
)

// SocialCatalogRepository redes, categorías, servicios y tarifas.
type SocialCatalogRepository interface {
	CreateNetwork(ctx context.Context, n *entity.SocialNetwork) error
	ListNetworks(ctx context.Context, soloActivas bool) ([]*entity.SocialNetwork, error)
	SetNetworkActive(ctx context.Context, id string, active bool) error
	CreateCategory(ctx context.Context, c *entity.SocialCategory) error
	ListCategories(ctx context.Context, networkID string) ([]*entity.SocialCategory, error)
	CreateService(ctx context.Context, s *entity.SocialService) error
	ListServices(ctx context.Context, categoryID string) ([]*entity.SocialService, error)
	CreatePrice(ctx context.Context, p *entity.SocialServicePrice) error
	ListPrices(ctx context.Context, serviceID string) ([]*entity.SocialServicePrice, error)
}

// SocialOrderRepository pedidos.
type SocialOrderRepository interface {
	Create(ctx context.Context, o *entity.SocialOrder) error
	List(ctx context.Context) ([]*entity.SocialOrderDetalle, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

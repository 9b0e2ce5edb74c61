package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/dto"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SocialUseCase catálogo y pedidos de servicios para redes sociales.
type SocialUseCase struct {
	catalog repository.SocialCatalogRepository
	orders  repository.SocialOrderRepository
}

// NewSocialUseCase construye el caso de uso.
func NewSocialUseCase(catalog repository.SocialCatalogRepository, orders repository.SocialOrderRepository) *SocialUseCase {
	return &SocialUseCase{catalog: catalog, orders: orders}
}

// ─── Catálogo ──────────────────────────────────────────────────────────────

func (uc *SocialUseCase) CreateNetwork(ctx context.Context, in dto.SocialNetworkRequest) (*entity.SocialNetwork, error) {
	n := &entity.SocialNetwork{ID: uuid.New().String(), Name: strings.TrimSpace(in.Name), Active: true}
	if in.Logo != "" {
		logo := in.Logo
		n.Logo = &logo
	}
	if err := uc.catalog.CreateNetwork(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (uc *SocialUseCase) ListNetworks(ctx context.Context, soloActivas bool) ([]*entity.SocialNetwork, error) {
	return uc.catalog.ListNetworks(ctx, soloActivas)
}

func (uc *SocialUseCase) SetNetworkActive(ctx context.Context, id string, active bool) error {
	return uc.catalog.SetNetworkActive(ctx, id, active)
}

func (uc *SocialUseCase) CreateCategory(ctx context.Context, in dto.SocialCategoryRequest) (*entity.SocialCategory, error) {
	c := &entity.SocialCategory{ID: uuid.New().String(), NetworkID: in.NetworkID, Name: strings.TrimSpace(in.Name)}
	if err := uc.catalog.CreateCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *SocialUseCase) ListCategories(ctx context.Context, networkID string) ([]*entity.SocialCategory, error) {
	return uc.catalog.ListCategories(ctx, networkID)
}

func (uc *SocialUseCase) CreateService(ctx context.Context, in dto.SocialServiceRequest) (*entity.SocialService, error) {
	s := &entity.SocialService{ID: uuid.New().String(), CategoryID: in.CategoryID, Name: strings.TrimSpace(in.Name)}
	if err := uc.catalog.CreateService(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *SocialUseCase) ListServices(ctx context.Context, categoryID string) ([]*entity.SocialService, error) {
	return uc.catalog.ListServices(ctx, categoryID)
}

func (uc *SocialUseCase) CreatePrice(ctx context.Context, in dto.SocialPriceRequest) (*entity.SocialServicePrice, error) {
	if in.Quantity <= 0 || !in.Price.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	p := &entity.SocialServicePrice{ID: uuid.New().String(), ServiceID: in.ServiceID, Quantity: in.Quantity, Price: in.Price}
	if err := uc.catalog.CreatePrice(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *SocialUseCase) ListPrices(ctx context.Context, serviceID string) ([]*entity.SocialServicePrice, error) {
	return uc.catalog.ListPrices(ctx, serviceID)
}

// ─── Pedidos ───────────────────────────────────────────────────────────────

// CreateOrder registra un pedido en estado pending. Si hay tarifa para la cantidad exacta
// el precio sale de ahí; si no, el precio del body es obligatorio.
func (uc *SocialUseCase) CreateOrder(ctx context.Context, in dto.SocialOrderRequest) (*entity.SocialOrder, error) {
	if in.NetworkID == "" || in.CategoryID == "" || in.ServiceID == "" || strings.TrimSpace(in.ClientLink) == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	prices, err := uc.catalog.ListPrices(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	price, ok := PrecioPorCantidad(prices, in.Quantity)
	if !ok {
		if in.Price == nil || !in.Price.IsPositive() {
			return nil, domain.ErrPrecioRequerido
		}
		price = *in.Price
	}

	o := &entity.SocialOrder{
		ID:         uuid.New().String(),
		NetworkID:  in.NetworkID,
		CategoryID: in.CategoryID,
		ServiceID:  in.ServiceID,
		ClientLink: strings.TrimSpace(in.ClientLink),
		Quantity:   in.Quantity,
		Price:      price,
		Status:     entity.OrderPending,
		CreatedAt:  time.Now(),
	}
	if err := uc.orders.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (uc *SocialUseCase) ListOrders(ctx context.Context) ([]*entity.SocialOrderDetalle, error) {
	return uc.orders.List(ctx)
}

// UpdateOrderStatus pending, processing o completed.
func (uc *SocialUseCase) UpdateOrderStatus(ctx context.Context, id, status string) error {
	if !entity.OrderStatusValido(status) {
		return domain.ErrInvalidInput
	}
	return uc.orders.UpdateStatus(ctx, id, status)
}

// PrecioPorCantidad tarifa con cantidad exactamente igual a quantity.
func PrecioPorCantidad(prices []*entity.SocialServicePrice, quantity int) (decimal.Decimal, bool) {
	for _, p := range prices {
		if p.Quantity == quantity {
			return p.Price, true
		}
	}
	return decimal.Zero, false
}

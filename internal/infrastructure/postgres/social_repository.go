package postgres

import (
	"context"
	"fmt"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var (
	_ repository.SocialCatalogRepository = (*SocialCatalogRepo)(nil)
	_ repository.SocialOrderRepository   = (*SocialOrderRepo)(nil)
)

// SocialCatalogRepo redes, categorías, servicios y tarifas sobre PostgreSQL.
type SocialCatalogRepo struct {
	q Querier
}

// NewSocialCatalogRepository construye el adaptador.
func NewSocialCatalogRepository(q Querier) *SocialCatalogRepo {
	return &SocialCatalogRepo{q: q}
}

func (r *SocialCatalogRepo) CreateNetwork(ctx context.Context, n *entity.SocialNetwork) error {
	if _, err := r.q.Exec(ctx, `INSERT INTO social_networks (id, name, active, logo) VALUES ($1, $2, $3, $4)`,
		n.ID, n.Name, n.Active, n.Logo); err != nil {
		return fmt.Errorf("insert social network: %w", err)
	}
	return nil
}

func (r *SocialCatalogRepo) ListNetworks(ctx context.Context, soloActivas bool) ([]*entity.SocialNetwork, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, active, logo FROM social_networks WHERE ($1 = FALSE OR active) ORDER BY name`, soloActivas)
	if err != nil {
		return nil, fmt.Errorf("list social networks: %w", err)
	}
	return collect(rows, func(row pgx.Row) (*entity.SocialNetwork, error) {
		var n entity.SocialNetwork
		err := row.Scan(&n.ID, &n.Name, &n.Active, &n.Logo)
		return &n, err
	})
}

func (r *SocialCatalogRepo) SetNetworkActive(ctx context.Context, id string, active bool) error {
	tag, err := r.q.Exec(ctx, `UPDATE social_networks SET active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("update social network: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SocialCatalogRepo) CreateCategory(ctx context.Context, c *entity.SocialCategory) error {
	_, err := r.q.Exec(ctx, `INSERT INTO social_categories (id, network_id, name) VALUES ($1, $2, $3)`, c.ID, c.NetworkID, c.Name)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert social category: %w", err)
	}
	return nil
}

// ListCategories networkID vacío = todas.
func (r *SocialCatalogRepo) ListCategories(ctx context.Context, networkID string) ([]*entity.SocialCategory, error) {
	rows, err := r.q.Query(ctx, `SELECT id, network_id, name FROM social_categories
		WHERE ($1::uuid IS NULL OR network_id = $1::uuid) ORDER BY name`, nullIfEmpty(networkID))
	if err != nil {
		return nil, fmt.Errorf("list social categories: %w", err)
	}
	return collect(rows, func(row pgx.Row) (*entity.SocialCategory, error) {
		var c entity.SocialCategory
		err := row.Scan(&c.ID, &c.NetworkID, &c.Name)
		return &c, err
	})
}

func (r *SocialCatalogRepo) CreateService(ctx context.Context, s *entity.SocialService) error {
	_, err := r.q.Exec(ctx, `INSERT INTO social_services (id, category_id, name) VALUES ($1, $2, $3)`, s.ID, s.CategoryID, s.Name)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert social service: %w", err)
	}
	return nil
}

// ListServices categoryID vacío = todos.
func (r *SocialCatalogRepo) ListServices(ctx context.Context, categoryID string) ([]*entity.SocialService, error) {
	rows, err := r.q.Query(ctx, `SELECT id, category_id, name FROM social_services
		WHERE ($1::uuid IS NULL OR category_id = $1::uuid) ORDER BY name`, nullIfEmpty(categoryID))
	if err != nil {
		return nil, fmt.Errorf("list social services: %w", err)
	}
	return collect(rows, func(row pgx.Row) (*entity.SocialService, error) {
		var s entity.SocialService
		err := row.Scan(&s.ID, &s.CategoryID, &s.Name)
		return &s, err
	})
}

// CreatePrice una tarifa por (servicio, cantidad); repetida devuelve ErrDuplicate.
func (r *SocialCatalogRepo) CreatePrice(ctx context.Context, p *entity.SocialServicePrice) error {
	_, err := r.q.Exec(ctx, `INSERT INTO social_service_prices (id, service_id, quantity, price) VALUES ($1, $2, $3, $4)`,
		p.ID, p.ServiceID, p.Quantity, p.Price)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert social price: %w", err)
	}
	return nil
}

func (r *SocialCatalogRepo) ListPrices(ctx context.Context, serviceID string) ([]*entity.SocialServicePrice, error) {
	rows, err := r.q.Query(ctx, `SELECT id, service_id, quantity, price FROM social_service_prices
		WHERE service_id = $1 ORDER BY quantity`, serviceID)
	if err != nil {
		return nil, fmt.Errorf("list social prices: %w", err)
	}
	return collect(rows, func(row pgx.Row) (*entity.SocialServicePrice, error) {
		var p entity.SocialServicePrice
		err := row.Scan(&p.ID, &p.ServiceID, &p.Quantity, &p.Price)
		return &p, err
	})
}

// SocialOrderRepo pedidos sobre PostgreSQL.
type SocialOrderRepo struct {
	q Querier
}

// NewSocialOrderRepository construye el adaptador.
func NewSocialOrderRepository(q Querier) *SocialOrderRepo {
	return &SocialOrderRepo{q: q}
}

func (r *SocialOrderRepo) Create(ctx context.Context, o *entity.SocialOrder) error {
	query := `INSERT INTO social_orders (id, network_id, category_id, service_id, client_link, quantity, price, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query, o.ID, o.NetworkID, o.CategoryID, o.ServiceID, o.ClientLink, o.Quantity, o.Price, o.Status, o.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert social order: %w", err)
	}
	return nil
}

func (r *SocialOrderRepo) List(ctx context.Context) ([]*entity.SocialOrderDetalle, error) {
	query := `SELECT o.id, o.network_id, o.category_id, o.service_id, o.client_link, o.quantity, o.price, o.status, o.created_at,
		n.name, c.name, s.name
		FROM social_orders o
		JOIN social_networks n ON n.id = o.network_id
		JOIN social_categories c ON c.id = o.category_id
		JOIN social_services s ON s.id = o.service_id
		ORDER BY o.created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list social orders: %w", err)
	}
	return collect(rows, func(row pgx.Row) (*entity.SocialOrderDetalle, error) {
		var d entity.SocialOrderDetalle
		o := &d.SocialOrder
		err := row.Scan(&o.ID, &o.NetworkID, &o.CategoryID, &o.ServiceID, &o.ClientLink, &o.Quantity, &o.Price, &o.Status, &o.CreatedAt,
			&d.NetworkName, &d.CategoryName, &d.ServiceName)
		return &d, err
	})
}

func (r *SocialOrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.q.Exec(ctx, `UPDATE social_orders SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update social order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// collect recorre rows con scan y las cierra.
func collect[T any](rows pgx.Rows, scan func(pgx.Row) (*T, error)) ([]*T, error) {
	defer rows.Close()
	var list []*T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

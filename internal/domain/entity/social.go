package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de servicios de redes sociales.
const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderCompleted  = "completed"
)

// SocialNetwork red social (Instagram, TikTok...).
type SocialNetwork struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Active bool    `json:"active"`
	Logo   *string `json:"logo"`
}

// SocialCategory categoría de servicios dentro de una red.
type SocialCategory struct {
	ID        string `json:"id"`
	NetworkID string `json:"network_id"`
	Name      string `json:"name"`
}

// SocialService servicio vendible (seguidores, likes...).
type SocialService struct {
	ID         string `json:"id"`
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
}

// SocialServicePrice tarifa de un servicio para una cantidad exacta.
type SocialServicePrice struct {
	ID        string          `json:"id"`
	ServiceID string          `json:"service_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// SocialOrder pedido de un cliente.
type SocialOrder struct {
	ID         string          `json:"id"`
	NetworkID  string          `json:"network_id"`
	CategoryID string          `json:"category_id"`
	ServiceID  string          `json:"service_id"`
	ClientLink string          `json:"client_link"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
}

// SocialOrderDetalle orden con nombres de red, categoría y servicio.
type SocialOrderDetalle struct {
	SocialOrder
	NetworkName  string `json:"network_name"`
	CategoryName string `json:"category_name"`
	ServiceName  string `json:"service_name"`
}

// OrderStatusValido indica si s es un estado reconocido.
func OrderStatusValido(s string) bool {
	switch s {
	case OrderPending, OrderProcessing, OrderCompleted:
		return true
	}
	return false
}

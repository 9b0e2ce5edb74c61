package dto

import "github.com/shopspring/decimal"

// SocialNetworkRequest body para POST /api/social/networks.
type SocialNetworkRequest struct {
	Name string `json:"name" validate:"required,max=60"`
	Logo string `json:"logo" validate:"omitempty,url"`
}

// SocialCategoryRequest body para POST /api/social/categories.
type SocialCategoryRequest struct {
	NetworkID string `json:"network_id" validate:"required,uuid"`
	Name      string `json:"name" validate:"required,max=80"`
}

// SocialServiceRequest body para POST /api/social/services.
type SocialServiceRequest struct {
	CategoryID string `json:"category_id" validate:"required,uuid"`
	Name       string `json:"name" validate:"required,max=80"`
}

// SocialPriceRequest body para POST /api/social/prices.
type SocialPriceRequest struct {
	ServiceID string          `json:"service_id" validate:"required,uuid"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
	Price     decimal.Decimal `json:"price"`
}

// SocialOrderRequest body para POST /api/social/orders. Price es opcional si hay tarifa para la cantidad.
type SocialOrderRequest struct {
	NetworkID  string           `json:"network_id" validate:"required,uuid"`
	CategoryID string           `json:"category_id" validate:"required,uuid"`
	ServiceID  string           `json:"service_id" validate:"required,uuid"`
	ClientLink string           `json:"client_link" validate:"required,url"`
	Quantity   int              `json:"quantity" validate:"required,min=1"`
	Price      *decimal.Decimal `json:"price"`
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Platform plataforma de streaming revendida.
type Platform struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	IsActive     bool            `json:"is_active"`
	MonthlyPrice decimal.Decimal `json:"monthly_price"`
	YearlyPrice  decimal.Decimal `json:"yearly_price"`
	LogoURL      *string         `json:"logo_url"`
	CreatedAt    time.Time       `json:"created_at"`
}

package entity

import "time"

// Customer cliente de streaming. Se identifica por email o teléfono al registrar una venta.
type Customer struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Phone     *string   `json:"phone"`
	Email     *string   `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

package entity

import "time"

// ReminderPaymentDue único tipo de recordatorio.
const ReminderPaymentDue = "PAYMENT_DUE"

// Reminder aviso de cobro programado para una venta.
type Reminder struct {
	ID        string     `json:"id"`
	SaleID    string     `json:"sale_id"`
	DueAt     time.Time  `json:"due_at"`
	Kind      string     `json:"kind"`
	IsSent    bool       `json:"is_sent"`
	SentAt    *time.Time `json:"sent_at"`
	CreatedAt time.Time  `json:"created_at"`
}

// ReminderDue recordatorio vencido junto con su venta.
type ReminderDue struct {
	Reminder
	Sale SaleDetalle `json:"sale"`
}

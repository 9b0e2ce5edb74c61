// Package streaming casos de uso de la reventa de suscripciones: ventas, recordatorios de cobro
// y mensajes al cliente.
package streaming

import (
	"context"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/repository"
)

// SalesTxRunner ejecuta fn dentro de una transacción con repos ligados a ella.
type SalesTxRunner interface {
	RunSales(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
		saleRepo repository.SaleRepository,
		reminderRepo repository.ReminderRepository,
	) error) error
}

package ports

import "context"

// Notifier envío de un mensaje de texto a un chat. Los casos de uso ignoran sus errores
// después de registrarlos: una notificación fallida no revierte la operación principal.
type Notifier interface {
	SendMessage(ctx context.Context, chatID, text string) error
}

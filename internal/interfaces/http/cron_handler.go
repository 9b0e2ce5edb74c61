package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/dto"
)

type reminderProcessor interface {
	Procesar(ctx context.Context) (*dto.CronRemindersResponse, error)
}

// CronHandler disparo externo del proceso de recordatorios.
type CronHandler struct {
	reminders reminderProcessor
	log       zerolog.Logger
}

// NewCronHandler construye el handler.
func NewCronHandler(reminders reminderProcessor, log zerolog.Logger) *CronHandler {
	return &CronHandler{reminders: reminders, log: log}
}

// Reminders godoc
// @Summary      Procesar recordatorios de cobro vencidos
// @Description  Protegido con "Authorization: Bearer <CRON_SECRET>". Devuelve {"processed": n}
// @Description  o {"message": "No reminders due"} si no había pendientes.
// @Tags         cron
// @Produce      json
// @Success      200  {object}  dto.CronRemindersResponse
// @Failure      401  {object}  dto.SimpleError
// @Failure      500  {object}  dto.SimpleError
// @Router       /api/cron/reminders [get]
func (h *CronHandler) Reminders(c *fiber.Ctx) error {
	out, err := h.reminders.Procesar(c.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("cron de recordatorios")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.SimpleError{Error: err.Error()})
	}
	return c.JSON(out)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/dto"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/streaming"
)

// SaleHandler ventas de suscripciones.
type SaleHandler struct {
	uc *streaming.SaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *streaming.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar venta de suscripción
// @Description  Crea (o reutiliza) el cliente, calcula la fecha de fin según el plan,
// @Description  programa el recordatorio de cobro y avisa por Telegram.
// @Tags         streaming
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "venta"
// @Success      201  {object}  entity.SaleDetalle
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	sale, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sale)
}

// List GET /api/sales?platform_id=
func (h *SaleHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), c.Query("platform_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/sales/:id
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	sale, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sale)
}

// UpdateStatus PATCH /api/sales/:id/status {"status": "ACTIVE|EXPIRED|CANCELLED"}
func (h *SaleHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateStatusRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	if err := h.uc.UpdateStatus(c.Context(), c.Params("id"), in.Status); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// MensajeWhatsApp godoc
// @Summary      Mensaje de credenciales para WhatsApp
// @Description  Arma el texto con las credenciales de la cuenta y el enlace wa para el teléfono del cliente.
// @Tags         streaming
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "id de la venta"
// @Param        body  body  dto.MensajeWhatsAppRequest  true  "credenciales"
// @Success      200  {object}  dto.MensajeWhatsAppResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/mensaje [post]
func (h *SaleHandler) MensajeWhatsApp(c *fiber.Ctx) error {
	var in dto.MensajeWhatsAppRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.MensajeWhatsApp(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

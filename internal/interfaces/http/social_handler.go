package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/dto"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/usecase"
)

// SocialHandler catálogo de servicios para redes sociales y sus órdenes.
type SocialHandler struct {
	uc *usecase.SocialUseCase
}

// NewSocialHandler construye el handler.
func NewSocialHandler(uc *usecase.SocialUseCase) *SocialHandler {
	return &SocialHandler{uc: uc}
}

// ── Redes ─────────────────────────────────────────────────────────────────────

// ListNetworks GET /api/social/networks?activas=true
func (h *SocialHandler) ListNetworks(c *fiber.Ctx) error {
	list, err := h.uc.ListNetworks(c.Context(), c.QueryBool("activas", false))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// CreateNetwork POST /api/social/networks
func (h *SocialHandler) CreateNetwork(c *fiber.Ctx) error {
	var in dto.SocialNetworkRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	n, err := h.uc.CreateNetwork(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(n)
}

// SetNetworkEstado PATCH /api/social/networks/:id/estado
func (h *SocialHandler) SetNetworkEstado(c *fiber.Ctx) error {
	activo, ok, err := estadoBody(c)
	if !ok {
		return err
	}
	if err := h.uc.SetNetworkActive(c.Context(), c.Params("id"), activo); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Categorías, servicios y tarifas ───────────────────────────────────────────

// ListCategories GET /api/social/categories?network_id=
func (h *SocialHandler) ListCategories(c *fiber.Ctx) error {
	list, err := h.uc.ListCategories(c.Context(), c.Query("network_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// CreateCategory POST /api/social/categories
func (h *SocialHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.SocialCategoryRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	cat, err := h.uc.CreateCategory(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cat)
}

// ListServices GET /api/social/services?category_id=
func (h *SocialHandler) ListServices(c *fiber.Ctx) error {
	list, err := h.uc.ListServices(c.Context(), c.Query("category_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// CreateService POST /api/social/services
func (h *SocialHandler) CreateService(c *fiber.Ctx) error {
	var in dto.SocialServiceRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	s, err := h.uc.CreateService(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(s)
}

// ListPrices GET /api/social/prices?service_id=
func (h *SocialHandler) ListPrices(c *fiber.Ctx) error {
	list, err := h.uc.ListPrices(c.Context(), c.Query("service_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// CreatePrice POST /api/social/prices
func (h *SocialHandler) CreatePrice(c *fiber.Ctx) error {
	var in dto.SocialPriceRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	p, err := h.uc.CreatePrice(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// ── Órdenes ───────────────────────────────────────────────────────────────────

// ListOrders GET /api/social/orders
func (h *SocialHandler) ListOrders(c *fiber.Ctx) error {
	list, err := h.uc.ListOrders(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// CreateOrder godoc
// @Summary      Registrar orden de servicio social
// @Description  Sin price se toma la tarifa del servicio para la cantidad pedida.
// @Tags         social
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SocialOrderRequest  true  "orden"
// @Success      201  {object}  entity.SocialOrder
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/social/orders [post]
func (h *SocialHandler) CreateOrder(c *fiber.Ctx) error {
	var in dto.SocialOrderRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	o, err := h.uc.CreateOrder(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(o)
}

// UpdateOrderStatus PATCH /api/social/orders/:id/status
func (h *SocialHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	var in dto.UpdateStatusRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	if err := h.uc.UpdateOrderStatus(c.Context(), c.Params("id"), in.Status); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

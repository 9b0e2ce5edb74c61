package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/dto"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/ventas"
)

// HeaderDigest valor resumen del XML UBL.
const HeaderDigest = "X-Digest-Value"

// VentaBoletaHandler boletas de venta: CRUD, PDF A4 y XML UBL.
type VentaBoletaHandler struct {
	uc *ventas.BoletaVentaUseCase
}

// NewVentaBoletaHandler construye el handler.
func NewVentaBoletaHandler(uc *ventas.BoletaVentaUseCase) *VentaBoletaHandler {
	return &VentaBoletaHandler{uc: uc}
}

// Create godoc
// @Summary      Emitir boleta de venta
// @Description  Asigna el siguiente correlativo de la serie (B001 por defecto). Los precios incluyen IGV.
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VentaBoletaRequest  true  "cliente y detalle"
// @Success      201  {object}  entity.VentaBoleta
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ventas/boletas [post]
func (h *VentaBoletaHandler) Create(c *fiber.Ctx) error {
	var in dto.VentaBoletaRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	b, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(b)
}

// List GET /api/ventas/boletas?limit=20&offset=0
func (h *VentaBoletaHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	list, err := h.uc.List(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/ventas/boletas/:id
func (h *VentaBoletaHandler) GetByID(c *fiber.Ctx) error {
	b, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(b)
}

// Update PUT /api/ventas/boletas/:id (reemplaza el detalle y recalcula)
func (h *VentaBoletaHandler) Update(c *fiber.Ctx) error {
	var in dto.VentaBoletaRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	b, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(b)
}

// Delete DELETE /api/ventas/boletas/:id
func (h *VentaBoletaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PDF godoc
// @Summary      Representación impresa A4 de la boleta de venta
// @Tags         ventas
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "id"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/boletas/{id}/pdf [get]
func (h *VentaBoletaHandler) PDF(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.PDF(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, "application/pdf", filename, pdf)
}

// XML godoc
// @Summary      XML UBL 2.1 de la boleta de venta
// @Description  El digest SHA-256 del documento canonicalizado va en el header X-Digest-Value.
// @Tags         ventas
// @Security     Bearer
// @Produce      application/xml
// @Param        id  path  string  true  "id"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/boletas/{id}/xml [get]
func (h *VentaBoletaHandler) XML(c *fiber.Ctx) error {
	xml, digest, filename, err := h.uc.XML(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(HeaderDigest, digest)
	return sendFile(c, "application/xml", filename, xml)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/dto"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/usecase"
)

// PlatformHandler plataformas de streaming y sus logos.
type PlatformHandler struct {
	uc *usecase.PlatformUseCase
}

// NewPlatformHandler construye el handler.
func NewPlatformHandler(uc *usecase.PlatformUseCase) *PlatformHandler {
	return &PlatformHandler{uc: uc}
}

// List GET /api/platforms?activas=true
func (h *PlatformHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), c.QueryBool("activas", false))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/platforms/:id
func (h *PlatformHandler) GetByID(c *fiber.Ctx) error {
	p, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(p)
}

// Create godoc
// @Summary      Crear plataforma
// @Tags         streaming
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PlatformRequest  true  "nombre y precios"
// @Success      201  {object}  entity.Platform
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/platforms [post]
func (h *PlatformHandler) Create(c *fiber.Ctx) error {
	var in dto.PlatformRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	p, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// Update PUT /api/platforms/:id
func (h *PlatformHandler) Update(c *fiber.Ctx) error {
	var in dto.PlatformRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	p, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(p)
}

// SetEstado PATCH /api/platforms/:id/estado {"activo": bool}
func (h *PlatformHandler) SetEstado(c *fiber.Ctx) error {
	activo, ok, err := estadoBody(c)
	if !ok {
		return err
	}
	if err := h.uc.SetActive(c.Context(), c.Params("id"), activo); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SubirLogo godoc
// @Summary      Subir logo de la plataforma
// @Description  Acepta png, jpg, webp o svg en el campo multipart "logo".
// @Tags         streaming
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      string  true  "id"
// @Param        logo  formData  file    true  "imagen"
// @Success      200  {object}  entity.Platform
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/platforms/{id}/logo [post]
func (h *PlatformHandler) SubirLogo(c *fiber.Ctx) error {
	fh, err := c.FormFile("logo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "archivo 'logo' requerido"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "no se pudo leer el archivo"})
	}
	defer f.Close()

	p, err := h.uc.SubirLogo(c.Context(), c.Params("id"), fh.Filename, f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(p)
}

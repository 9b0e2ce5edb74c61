package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/dto"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/usecase"
)

// ConfiguracionHandler settings tipados y configuración de ciclos.
type ConfiguracionHandler struct {
	uc *usecase.ConfiguracionUseCase
}

// NewConfiguracionHandler construye el handler.
func NewConfiguracionHandler(uc *usecase.ConfiguracionUseCase) *ConfiguracionHandler {
	return &ConfiguracionHandler{uc: uc}
}

// List GET /api/configuracion
func (h *ConfiguracionHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Get GET /api/configuracion/:clave
func (h *ConfiguracionHandler) Get(c *fiber.Ctx) error {
	s, err := h.uc.Get(c.Context(), c.Params("clave"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(s)
}

// Update godoc
// @Summary      Actualizar un setting
// @Description  El valor se valida contra el tipo del setting (boolean, number, json, string).
// @Tags         configuracion
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        clave  path  string                     true  "clave"
// @Param        body   body  dto.UpdateSettingRequest  true  "valor"
// @Success      200  {object}  dto.SettingResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/configuracion/{clave} [put]
func (h *ConfiguracionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSettingRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	s, err := h.uc.Update(c.Context(), c.Params("clave"), in.Valor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(s)
}

// Ciclo GET /api/configuracion/ciclo
func (h *ConfiguracionHandler) Ciclo(c *fiber.Ctx) error {
	cfg, err := h.uc.CicloConfig(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	if cfg == nil {
		return c.JSON(fiber.Map{})
	}
	return c.JSON(cfg)
}

// GuardarCiclo PUT /api/configuracion/ciclo
func (h *ConfiguracionHandler) GuardarCiclo(c *fiber.Ctx) error {
	var in dto.CicloConfigRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	cfg, err := h.uc.GuardarCicloConfig(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cfg)
}

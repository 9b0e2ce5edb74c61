package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/dto"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/usecase"
)

// CatalogoHandler tipos de trabajo (tarifas) y turnos.
type CatalogoHandler struct {
	uc *usecase.CatalogoUseCase
}

// NewCatalogoHandler construye el handler.
func NewCatalogoHandler(uc *usecase.CatalogoUseCase) *CatalogoHandler {
	return &CatalogoHandler{uc: uc}
}

// ListTipos godoc
// @Summary      Listar tipos de trabajo
// @Tags         catalogo
// @Security     Bearer
// @Produce      json
// @Param        activos  query  bool  false  "solo activos"
// @Success      200  {array}  entity.TipoTrabajo
// @Router       /api/tipos-trabajo [get]
func (h *CatalogoHandler) ListTipos(c *fiber.Ctx) error {
	list, err := h.uc.ListTipos(c.Context(), c.QueryBool("activos", false))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// CreateTipo godoc
// @Summary      Crear tipo de trabajo
// @Tags         catalogo
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TipoTrabajoRequest  true  "nombre, descripcion (categoría), tarifa_actual"
// @Success      201  {object}  entity.TipoTrabajo
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/tipos-trabajo [post]
func (h *CatalogoHandler) CreateTipo(c *fiber.Ctx) error {
	var in dto.TipoTrabajoRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	t, err := h.uc.CreateTipo(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(t)
}

// UpdateTipo PUT /api/tipos-trabajo/:id. La nueva tarifa aplica solo a producción futura.
func (h *CatalogoHandler) UpdateTipo(c *fiber.Ctx) error {
	var in dto.TipoTrabajoRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	t, err := h.uc.UpdateTipo(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(t)
}

// SetTipoEstado PATCH /api/tipos-trabajo/:id/estado
func (h *CatalogoHandler) SetTipoEstado(c *fiber.Ctx) error {
	activo, ok, err := estadoBody(c)
	if !ok {
		return err
	}
	if err := h.uc.SetTipoActivo(c.Context(), c.Params("id"), activo); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListTurnos GET /api/turnos?activos=true
func (h *CatalogoHandler) ListTurnos(c *fiber.Ctx) error {
	list, err := h.uc.ListTurnos(c.Context(), c.QueryBool("activos", false))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// CreateTurno godoc
// @Summary      Crear turno
// @Tags         catalogo
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TurnoRequest  true  "nombre, hora_inicio, hora_fin (HH:MM), tolerancia_minutos"
// @Success      201  {object}  entity.Turno
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/turnos [post]
func (h *CatalogoHandler) CreateTurno(c *fiber.Ctx) error {
	var in dto.TurnoRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	t, err := h.uc.CreateTurno(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(t)
}

// UpdateTurno PUT /api/turnos/:id
func (h *CatalogoHandler) UpdateTurno(c *fiber.Ctx) error {
	var in dto.TurnoRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	t, err := h.uc.UpdateTurno(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(t)
}

// SetTurnoEstado PATCH /api/turnos/:id/estado
func (h *CatalogoHandler) SetTurnoEstado(c *fiber.Ctx) error {
	activo, ok, err := estadoBody(c)
	if !ok {
		return err
	}
	if err := h.uc.SetTurnoActivo(c.Context(), c.Params("id"), activo); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

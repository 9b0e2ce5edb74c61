package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/dto"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/usecase"
)

// EmpleadoHandler maneja el maestro de empleados.
type EmpleadoHandler struct {
	uc *usecase.EmpleadoUseCase
}

// NewEmpleadoHandler construye el handler.
func NewEmpleadoHandler(uc *usecase.EmpleadoUseCase) *EmpleadoHandler {
	return &EmpleadoHandler{uc: uc}
}

// List godoc
// @Summary      Listar empleados
// @Tags         empleados
// @Security     Bearer
// @Produce      json
// @Param        activos  query  bool  false  "solo activos"
// @Success      200  {array}   entity.Empleado
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/empleados [get]
func (h *EmpleadoHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), c.QueryBool("activos", false))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obtener empleado
// @Tags         empleados
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "id"
// @Success      200  {object}  entity.Empleado
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empleados/{id} [get]
func (h *EmpleadoHandler) GetByID(c *fiber.Ctx) error {
	e, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(e)
}

// Create godoc
// @Summary      Registrar empleado
// @Tags         empleados
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EmpleadoRequest  true  "codigo, nombre, rol"
// @Success      201  {object}  entity.Empleado
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/empleados [post]
func (h *EmpleadoHandler) Create(c *fiber.Ctx) error {
	var in dto.EmpleadoRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	e, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(e)
}

// Update PUT /api/empleados/:id
func (h *EmpleadoHandler) Update(c *fiber.Ctx) error {
	var in dto.EmpleadoRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	e, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(e)
}

// SetEstado PATCH /api/empleados/:id/estado {"activo": bool}
func (h *EmpleadoHandler) SetEstado(c *fiber.Ctx) error {
	activo, ok, err := estadoBody(c)
	if !ok {
		return err
	}
	if err := h.uc.SetActivo(c.Context(), c.Params("id"), activo); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Resumen godoc
// @Summary      Conteo de empleados activos e inactivos
// @Tags         empleados
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.EmpleadosResumen
// @Router       /api/empleados/resumen [get]
func (h *EmpleadoHandler) Resumen(c *fiber.Ctx) error {
	r, err := h.uc.Resumen(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(r)
}

package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/dto"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/usecase"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/pkg/fechas"
)

// fechaQuery lee ?key=YYYY-MM-DD; vacío devuelve def.
func fechaQuery(c *fiber.Ctx, key string, def time.Time) (time.Time, error) {
	s := c.Query(key)
	if s == "" {
		return def, nil
	}
	t, err := fechas.Parse(s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return t, nil
}

// ── Asistencia ────────────────────────────────────────────────────────────────

// AsistenciaHandler marcación y reporte diario de asistencia.
type AsistenciaHandler struct {
	uc *usecase.AsistenciaUseCase
}

// NewAsistenciaHandler construye el handler.
func NewAsistenciaHandler(uc *usecase.AsistenciaUseCase) *AsistenciaHandler {
	return &AsistenciaHandler{uc: uc}
}

// Dia godoc
// @Summary      Asistencia del día con estadísticas
// @Tags         asistencia
// @Security     Bearer
// @Produce      json
// @Param        fecha  query  string  false  "YYYY-MM-DD (hoy por defecto)"
// @Success      200  {object}  dto.AsistenciaDiaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/asistencia [get]
func (h *AsistenciaHandler) Dia(c *fiber.Ctx) error {
	fecha, err := fechaQuery(c, "fecha", h.uc.Hoy())
	if err != nil {
		return respondError(c, err)
	}
	resp, err := h.uc.Dia(c.Context(), fecha)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Marcar godoc
// @Summary      Marcar entrada o salida
// @Description  Primera marca del día = entrada; segunda = salida; una tercera responde 409.
// @Tags         asistencia
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MarcarAsistenciaRequest  true  "codigo del empleado"
// @Success      200  {object}  entity.Asistencia
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/asistencia/marcar [post]
func (h *AsistenciaHandler) Marcar(c *fiber.Ctx) error {
	var in dto.MarcarAsistenciaRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	a, err := h.uc.Marcar(c.Context(), in.Codigo)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(a)
}

// ── Producción ────────────────────────────────────────────────────────────────

// ProduccionHandler registro de trabajo a destajo.
type ProduccionHandler struct {
	uc *usecase.ProduccionUseCase
}

// NewProduccionHandler construye el handler.
func NewProduccionHandler(uc *usecase.ProduccionUseCase) *ProduccionHandler {
	return &ProduccionHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar producción
// @Description  La tarifa se copia del tipo de trabajo al momento de registrar; subtotal = cantidad × tarifa.
// @Tags         produccion
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProduccionRequest  true  "empleado_id, tipo_trabajo_id, cantidad, fecha"
// @Success      201  {object}  entity.Produccion
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/produccion [post]
func (h *ProduccionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProduccionRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	p, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// ListByFecha GET /api/produccion?fecha=YYYY-MM-DD
func (h *ProduccionHandler) ListByFecha(c *fiber.Ctx) error {
	fecha, err := fechaQuery(c, "fecha", h.uc.Hoy())
	if err != nil {
		return respondError(c, err)
	}
	list, err := h.uc.ListByFecha(c.Context(), fecha)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// ListByEmpleado GET /api/produccion/empleado/:id?limit=100
func (h *ProduccionHandler) ListByEmpleado(c *fiber.Ctx) error {
	list, err := h.uc.ListByEmpleado(c.Context(), c.Params("id"), c.QueryInt("limit", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Delete DELETE /api/produccion/:id
func (h *ProduccionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Stats godoc
// @Summary      Totales de producción de hoy y de la semana
// @Tags         produccion
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  entity.ProduccionStats
// @Router       /api/produccion/stats [get]
func (h *ProduccionHandler) Stats(c *fiber.Ctx) error {
	s, err := h.uc.Stats(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(s)
}

// ── Movimientos ───────────────────────────────────────────────────────────────

// MovimientoHandler adelantos, descuentos, bonos y ajustes.
type MovimientoHandler struct {
	uc *usecase.MovimientoUseCase
}

// NewMovimientoHandler construye el handler.
func NewMovimientoHandler(uc *usecase.MovimientoUseCase) *MovimientoHandler {
	return &MovimientoHandler{uc: uc}
}

// List GET /api/movimientos?empleado_id= (últimos 50)
func (h *MovimientoHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), c.Query("empleado_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Registrar movimiento
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovimientoRequest  true  "empleado_id, tipo, monto, signo (+|-), fecha, nota"
// @Success      201  {object}  entity.Movimiento
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/movimientos [post]
func (h *MovimientoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovimientoRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	m, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(m)
}

// Delete DELETE /api/movimientos/:id
func (h *MovimientoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

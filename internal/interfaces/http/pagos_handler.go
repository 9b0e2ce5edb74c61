package http

import (
	"context"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/dto"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/nomina"
)

// cicloCerrador contrato mínimo de POST /api/pagos/cerrar; lo implementa *nomina.BoletaUseCase.
type cicloCerrador interface {
	CerrarYGenerar(ctx context.Context, cicloID string) error
}

// PagosHandler saldo pendiente, liquidación y cierre de ciclos.
type PagosHandler struct {
	pendientes  *nomina.PendientesUseCase
	liquidacion *nomina.LiquidacionUseCase
	cerrador    cicloCerrador
	log         zerolog.Logger
}

// NewPagosHandler construye el handler.
func NewPagosHandler(
	pendientes *nomina.PendientesUseCase,
	liquidacion *nomina.LiquidacionUseCase,
	cerrador cicloCerrador,
	log zerolog.Logger,
) *PagosHandler {
	return &PagosHandler{pendientes: pendientes, liquidacion: liquidacion, cerrador: cerrador, log: log}
}

// Pendientes godoc
// @Summary      Saldo pendiente por empleado
// @Description  Producción, adelantos y descuentos posteriores al último ciclo cerrado; mayor neto primero.
// @Tags         pagos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SaldoPendienteResponse
// @Router       /api/pagos/pendientes [get]
func (h *PagosHandler) Pendientes(c *fiber.Ctx) error {
	list, err := h.pendientes.Listar(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// PendienteEmpleado GET /api/pagos/pendientes/:empleadoId
func (h *PagosHandler) PendienteEmpleado(c *fiber.Ctx) error {
	s, err := h.pendientes.ObtenerPorEmpleado(c.Context(), c.Params("empleadoId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(s)
}

// Liquidar godoc
// @Summary      Liquidar el ciclo de un empleado
// @Description  Crea el ciclo CERRADO y su boleta en una transacción y encola el PDF.
// @Description  Si total_pagado difiere del neto pendiente la respuesta incluye "advertencia".
// @Tags         pagos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LiquidarRequest  true  "empleado_id, total_pagado"
// @Success      201  {object}  dto.LiquidacionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/pagos/liquidar [post]
func (h *PagosHandler) Liquidar(c *fiber.Ctx) error {
	var in dto.LiquidarRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	resp, err := h.liquidacion.Liquidar(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Cerrar godoc
// @Summary      Generar el PDF de la boleta de un ciclo y cerrarlo
// @Tags         pagos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CerrarCicloRequest  true  "cicloId"
// @Success      200  {object}  dto.OkResponse
// @Failure      400  {object}  dto.SimpleError
// @Failure      500  {object}  dto.SimpleError
// @Router       /api/pagos/cerrar [post]
func (h *PagosHandler) Cerrar(c *fiber.Ctx) error {
	var in dto.CerrarCicloRequest
	// Sin body equivale a cicloId ausente.
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.SimpleError{Error: "Cuerpo de la petición inválido"})
		}
	}
	if strings.TrimSpace(in.CicloID) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.SimpleError{Error: "cicloId requerido"})
	}
	if err := h.cerrador.CerrarYGenerar(c.Context(), in.CicloID); err != nil {
		h.log.Error().Err(err).Str("ciclo_id", in.CicloID).Msg("cerrar ciclo")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.SimpleError{Error: "Error al cerrar ciclo y generar PDF"})
	}
	return c.JSON(dto.OkResponse{Ok: true})
}

// ── Boletas de pago ───────────────────────────────────────────────────────────

// BoletaHandler consulta y descarga de boletas de pago.
type BoletaHandler struct {
	uc *nomina.BoletaUseCase
}

// NewBoletaHandler construye el handler.
func NewBoletaHandler(uc *nomina.BoletaUseCase) *BoletaHandler {
	return &BoletaHandler{uc: uc}
}

// Ciclos GET /api/ciclos?empleado_id=
func (h *BoletaHandler) Ciclos(c *fiber.Ctx) error {
	list, err := h.uc.CiclosEmpleado(c.Context(), c.Query("empleado_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// List GET /api/boletas?empleado_id=
func (h *BoletaHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.Listar(c.Context(), c.Query("empleado_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/boletas/:id
func (h *BoletaHandler) GetByID(c *fiber.Ctx) error {
	b, err := h.uc.Obtener(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(b)
}

// PDF godoc
// @Summary      PDF de la boleta de pago (generado al vuelo)
// @Tags         boletas
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "id de la boleta"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/boletas/{id}/pdf [get]
func (h *BoletaHandler) PDF(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.RenderPorBoleta(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, "application/pdf", filename, pdf)
}

// PDFCiclo GET /api/ciclos/:id/boleta/pdf
func (h *BoletaHandler) PDFCiclo(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.RenderPorCiclo(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, "application/pdf", filename, pdf)
}

// Archivo GET /api/boletas/:id/archivo (PDF guardado en el almacenamiento)
func (h *BoletaHandler) Archivo(c *fiber.Ctx) error {
	rc, filename, err := h.uc.Descargar(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	defer rc.Close()
	body, err := io.ReadAll(rc)
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, "application/pdf", filename, body)
}

// URL GET /api/boletas/:id/url (URL firmada temporal)
func (h *BoletaHandler) URL(c *fiber.Ctx) error {
	u, err := h.uc.URLFirmada(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.URLResponse{URL: u, ExpiraEn: int(nomina.URLExpiracion.Seconds())})
}

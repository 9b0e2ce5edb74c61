package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/analytics"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/dto"
)

// DashboardHandler resumen y reportes del negocio de reventa.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve plataformas activas, clientes e ingresos del mes en curso.
// GET /api/dashboard
//
// Las fechas se calculan en el servidor con la zona horaria configurada.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// MonthlyReport godoc
// @Summary      Ingresos por mes
// @Description  Siempre 12 meses; los meses sin ventas van en cero. Sin year se usa el año en curso.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        year  query  int  false  "año"
// @Success      200  {object}  dto.MonthlyReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/monthly [get]
func (h *DashboardHandler) MonthlyReport(c *fiber.Ctx) error {
	year := 0
	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 2000 || y > 2100 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "year inválido"})
		}
		year = y
	}
	report, err := h.uc.MonthlyReport(c.Context(), year)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}

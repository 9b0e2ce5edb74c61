package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/dto"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain"
)

var validate = validator.New()

// errorMapping estado HTTP y código para cada error de dominio.
var errorMapping = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrPrecioRequerido, fiber.StatusBadRequest, "PRECIO_REQUERIDO"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrCicloSinBoleta, fiber.StatusNotFound, "CICLO_SIN_BOLETA"},
	{domain.ErrBoletaSinPDF, fiber.StatusNotFound, "BOLETA_SIN_PDF"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
	{domain.ErrCicloYaCerrado, fiber.StatusConflict, "CICLO_YA_CERRADO"},
	{domain.ErrAsistenciaCompleta, fiber.StatusConflict, "ASISTENCIA_COMPLETA"},
	{domain.ErrEmpleadoInactivo, fiber.StatusUnprocessableEntity, "EMPLEADO_INACTIVO"},
	{domain.ErrTipoTrabajoInactivo, fiber.StatusUnprocessableEntity, "TIPO_TRABAJO_INACTIVO"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
}

// respondError traduce err a dto.ErrorResponse. Lo no reconocido es 500.
func respondError(c *fiber.Ctx, err error) error {
	for _, m := range errorMapping {
		if errors.Is(err, m.err) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: m.err.Error()})
		}
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// parseBody decodifica el JSON y aplica las reglas validate de la estructura.
// Si falla, ya respondió 400 y devuelve false.
func parseBody(c *fiber.Ctx, out interface{}) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(out); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validationMessage(err)})
	}
	return true, nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		f := verrs[0]
		return "campo " + f.Field() + " inválido (" + f.Tag() + ")"
	}
	return err.Error()
}

// estadoBody lee {"activo": bool}.
func estadoBody(c *fiber.Ctx) (bool, bool, error) {
	var in dto.EstadoRequest
	ok, err := parseBody(c, &in)
	if !ok {
		return false, false, err
	}
	return *in.Activo, true, nil
}

// sendFile responde un adjunto descargable.
func sendFile(c *fiber.Ctx, contentType, filename string, body []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(body)
}

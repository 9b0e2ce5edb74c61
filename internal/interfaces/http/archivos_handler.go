package http

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/dto"
)

// ArchivosLocales almacenamiento en disco servido bajo /archivos.
type ArchivosLocales interface {
	Download(ctx context.Context, path string) (io.ReadCloser, error)
	Autorizar(path, token string) error
}

// ArchivosHandler sirve los objetos locales: logos libres, el resto con ?token= vigente.
type ArchivosHandler struct {
	archivos ArchivosLocales
}

// NewArchivosHandler construye el handler.
func NewArchivosHandler(a ArchivosLocales) *ArchivosHandler {
	return &ArchivosHandler{archivos: a}
}

// Servir GET /archivos/*
func (h *ArchivosHandler) Servir(c *fiber.Ctx) error {
	path := c.Params("*")
	if err := h.archivos.Autorizar(path, c.Query("token")); err != nil {
		return c.Status(fiber.StatusForbidden).JSON(dto.SimpleError{Error: "Enlace inválido o vencido"})
	}
	rc, err := h.archivos.Download(c.Context(), path)
	if err != nil {
		return respondError(c, err)
	}
	defer rc.Close()
	body, err := io.ReadAll(rc)
	if err != nil {
		return respondError(c, err)
	}
	if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext != "" {
		c.Type(ext)
	}
	return c.Send(body)
}

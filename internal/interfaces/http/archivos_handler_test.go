package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/infrastructure/storage"
	apphttp "github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// GET /archivos/*
// ──────────────────────────────────────────────────────────────────────────────

func archivosApp(t *testing.T) (*fiber.App, *storage.LocalStorage) {
	t.Helper()
	s, err := storage.NewLocalStorage(t.TempDir(), "http://localhost:8080/archivos", "secreto")
	require.NoError(t, err)
	ctx := context.Background()
	_, err = s.Upload(ctx, strings.NewReader("%PDF-1.4"), "boletas/b1.pdf", "application/pdf")
	require.NoError(t, err)
	_, err = s.Upload(ctx, strings.NewReader("png"), "logos/p1.png", "image/png")
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/archivos/*", apphttp.NewArchivosHandler(s).Servir)
	return app, s
}

func getArchivo(t *testing.T, app *fiber.App, target string) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, string(raw)
}

func TestArchivos_BoletaSinToken_Retorna403(t *testing.T) {
	app, _ := archivosApp(t)
	for _, target := range []string{"/archivos/boletas/b1.pdf", "/archivos/boletas/b1.pdf?token=basura"} {
		resp, body := getArchivo(t, app, target)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode, target)
		assert.NotContains(t, body, "%PDF")
	}
}

func TestArchivos_BoletaConURLFirmada(t *testing.T) {
	app, s := archivosApp(t)
	firmada, err := s.GetURL(context.Background(), "boletas/b1.pdf", time.Minute)
	require.NoError(t, err)
	u, err := url.Parse(firmada)
	require.NoError(t, err)

	resp, body := getArchivo(t, app, u.RequestURI())
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "%PDF-1.4", body)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}

func TestArchivos_LogoPublico(t *testing.T) {
	app, _ := archivosApp(t)
	resp, body := getArchivo(t, app, "/archivos/logos/p1.png")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "png", body)

	resp, _ = getArchivo(t, app, "/archivos/logos/nope.png")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

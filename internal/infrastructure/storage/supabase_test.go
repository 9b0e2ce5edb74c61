package storage_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/infrastructure/storage"
)

func supabaseFake(t *testing.T, h http.HandlerFunc) *storage.SupabaseStorage {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	s, err := storage.NewSupabaseStorage(srv.URL, "service-key", "logos")
	require.NoError(t, err)
	return s
}

func TestSupabase_Upload_Upsert(t *testing.T) {
	s := supabaseFake(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/storage/v1/object/logos/platforms/p1.png", r.URL.Path)
		assert.Equal(t, "true", r.Header.Get("x-upsert"))
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))
		assert.Equal(t, "image/png", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "png-bytes", string(body))
		_, _ = w.Write([]byte(`{"Key":"logos/platforms/p1.png"}`))
	})

	path, err := s.Upload(context.Background(), strings.NewReader("png-bytes"), "platforms/p1.png", "image/png")
	require.NoError(t, err)
	assert.Equal(t, "platforms/p1.png", path)
}

func TestSupabase_GetURL_PublicaYFirmada(t *testing.T) {
	s := supabaseFake(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/storage/v1/object/sign/logos/boletas/b1.pdf", r.URL.Path)
		var in map[string]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, 60, in["expiresIn"])
		_, _ = w.Write([]byte(`{"signedURL":"/object/sign/logos/boletas/b1.pdf?token=abc"}`))
	})
	ctx := context.Background()

	pub, err := s.GetURL(ctx, "boletas/b1.pdf", 0)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(pub, "/storage/v1/object/public/logos/boletas/b1.pdf"))

	signed, err := s.GetURL(ctx, "boletas/b1.pdf", time.Minute)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(signed, "/storage/v1/object/sign/logos/boletas/b1.pdf?token=abc"))
}

func TestSupabase_Download_NoEncontrado(t *testing.T) {
	s := supabaseFake(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"statusCode":"404","error":"not_found","message":"Object not found"}`))
	})
	_, err := s.Download(context.Background(), "boletas/x.pdf")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNewSupabaseStorage_RequiereCredenciales(t *testing.T) {
	_, err := storage.NewSupabaseStorage("https://x.supabase.co", "", "b")
	assert.Error(t, err)
}

func TestSupabase_Download_DevuelveContenido(t *testing.T) {
	s := supabaseFake(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/storage/v1/object/logos/boletas/b1.pdf", r.URL.Path)
		assert.Equal(t, "service-key", r.Header.Get("apikey"))
		_, _ = w.Write([]byte("%PDF-1.4"))
	})
	rc, err := s.Download(context.Background(), "boletas/b1.pdf")
	require.NoError(t, err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(body))
}

func TestSupabase_Delete_EnviaPrefijos(t *testing.T) {
	s := supabaseFake(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/storage/v1/object/logos", r.URL.Path)
		var in map[string][]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, []string{"boletas/b1.pdf"}, in["prefixes"])
		_, _ = w.Write([]byte(`[{"Key":"boletas/b1.pdf"}]`))
	})
	require.NoError(t, s.Delete(context.Background(), "boletas/b1.pdf"))
}

func TestSupabase_Exists_BuscaEnLaCarpeta(t *testing.T) {
	s := supabaseFake(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/storage/v1/object/list/logos", r.URL.Path)
		var in map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "boletas", in["prefix"])
		_, _ = w.Write([]byte(`[{"name":"b1.pdf"},{"name":"b2.pdf"}]`))
	})
	ctx := context.Background()

	ok, err := s.Exists(ctx, "boletas/b2.pdf")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Exists(ctx, "boletas/b9.pdf")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSupabase_ContextoCancelado_NoLlama(t *testing.T) {
	llamado := false
	s := supabaseFake(t, func(w http.ResponseWriter, r *http.Request) { llamado = true })
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Upload(ctx, strings.NewReader("x"), "a.png", "image/png")
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, llamado)
}

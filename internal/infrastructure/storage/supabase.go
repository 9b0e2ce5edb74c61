package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	storage_go "github.com/supabase-community/storage-go"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/ports"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain"
)

var _ ports.FileStorage = (*SupabaseStorage)(nil)

// paginaListado tamaño de página al buscar un objeto en su carpeta.
const paginaListado = 100

// SupabaseStorage adaptador de Supabase Storage (/storage/v1) autenticado con la service key.
type SupabaseStorage struct {
	storageURL string
	serviceKey string
	bucket     string
}

// NewSupabaseStorage crea el adaptador. baseURL es la URL del proyecto (https://xyz.supabase.co).
func NewSupabaseStorage(baseURL, serviceKey, bucket string) (*SupabaseStorage, error) {
	if baseURL == "" || serviceKey == "" || bucket == "" {
		return nil, fmt.Errorf("storage: supabase requiere URL, service key y bucket")
	}
	u := strings.TrimRight(baseURL, "/") + "/storage/v1"
	if _, err := url.Parse(u); err != nil {
		return nil, fmt.Errorf("storage: URL de supabase inválida: %w", err)
	}
	return &SupabaseStorage{storageURL: u, serviceKey: serviceKey, bucket: bucket}, nil
}

// client uno por operación: storage-go guarda content-type y x-upsert en las cabeceras del transporte.
func (s *SupabaseStorage) client() *storage_go.Client {
	return storage_go.NewClient(s.storageURL, s.serviceKey, map[string]string{"apikey": s.serviceKey})
}

func clave(p string) string { return strings.TrimLeft(p, "/") }

// Upload sube con x-upsert para sobrescribir el objeto existente.
func (s *SupabaseStorage) Upload(ctx context.Context, file io.Reader, p string, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	upsert := true
	_, err := s.client().UploadFile(s.bucket, clave(p), file, storage_go.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("storage: subir %s: %w", p, mapError(err))
	}
	return p, nil
}

// Download el caller debe cerrar el body.
func (s *SupabaseStorage) Download(ctx context.Context, p string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := s.client().DownloadFile(s.bucket, clave(p))
	if err != nil {
		return nil, fmt.Errorf("storage: descargar %s: %w", p, mapError(err))
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *SupabaseStorage) Delete(ctx context.Context, p string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := s.client().RemoveFile(s.bucket, []string{clave(p)}); err != nil {
		return fmt.Errorf("storage: borrar %s: %w", p, mapError(err))
	}
	return nil
}

// GetURL expiry 0 = URL pública del bucket; si no, URL firmada por expiry.
func (s *SupabaseStorage) GetURL(ctx context.Context, p string, expiry time.Duration) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	c := s.client()
	if expiry <= 0 {
		return c.GetPublicUrl(s.bucket, clave(p)).SignedURL, nil
	}
	resp, err := c.CreateSignedUrl(s.bucket, clave(p), int(expiry.Seconds()))
	if err != nil {
		return "", fmt.Errorf("storage: firmar %s: %w", p, mapError(err))
	}
	if resp.SignedURL == s.storageURL {
		return "", fmt.Errorf("storage: firma vacía para %s", p)
	}
	return resp.SignedURL, nil
}

// Exists busca el nombre del objeto en el listado de su carpeta.
func (s *SupabaseStorage) Exists(ctx context.Context, p string) (bool, error) {
	dir, nombre := path.Split(clave(p))
	dir = strings.TrimRight(dir, "/")
	c := s.client()
	for offset := 0; ; offset += paginaListado {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		objs, err := c.ListFiles(s.bucket, dir, storage_go.FileSearchOptions{Limit: paginaListado, Offset: offset})
		if err != nil {
			if errors.Is(mapError(err), domain.ErrNotFound) {
				return false, nil
			}
			return false, fmt.Errorf("storage: listar %s: %w", dir, err)
		}
		for _, o := range objs {
			if o.Name == nombre {
				return true, nil
			}
		}
		if len(objs) < paginaListado {
			return false, nil
		}
	}
}

// mapError Supabase responde 400 con statusCode "404" para objetos inexistentes.
func mapError(err error) error {
	var se *storage_go.StorageError
	if errors.As(err, &se) {
		if se.Status == 404 || strings.Contains(strings.ToLower(se.Message), "not found") {
			return domain.ErrNotFound
		}
		return fmt.Errorf("supabase: %s", se.Message)
	}
	return err
}

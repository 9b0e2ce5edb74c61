package ports

import (
	"context"
	"io"
	"time"
)

// FileStorage define el puerto de salida para el almacenamiento de objetos (PDFs de boletas, logos).
// Cualquier adaptador (Supabase Storage, disco local, mock) debe implementar esta interfaz.
type FileStorage interface {
	// Upload sube (o sobrescribe) el objeto en path y devuelve la clave guardada.
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)
	// Download abre el objeto; el caller debe cerrarlo.
	Download(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
	// GetURL URL firmada (o pública) válida por expiry.
	GetURL(ctx context.Context, path string, expiry time.Duration) (string, error)
	Exists(ctx context.Context, path string) (bool, error)
}

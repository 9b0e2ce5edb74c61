// Package storage adaptadores de ports.FileStorage: disco local y Supabase Storage.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/ports"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/pkg/jwt"
)

var _ ports.FileStorage = (*LocalStorage)(nil)

// PrefijoPublico objetos servidos sin token (logos de plataformas).
const PrefijoPublico = "logos/"

// ErrEnlaceInvalido token de enlace ausente, vencido o de otro archivo.
var ErrEnlaceInvalido = errors.New("storage: enlace inválido o vencido")

// LocalStorage guarda los objetos bajo basePath y los publica en baseURL
// (ej. http://localhost:8080/archivos). Fuera de PrefijoPublico las URLs llevan
// un token firmado con secret que vence con el expiry pedido.
type LocalStorage struct {
	basePath string
	baseURL  string
	secret   string
}

// NewLocalStorage crea el directorio base si no existe. Sin secret no emite URLs firmadas.
func NewLocalStorage(basePath, baseURL, secret string) (*LocalStorage, error) {
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("storage: ruta base: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear directorio: %w", err)
	}
	return &LocalStorage{basePath: abs, baseURL: strings.TrimRight(baseURL, "/"), secret: secret}, nil
}

// resolve limpia path y verifica que quede dentro de basePath.
func (s *LocalStorage) resolve(path string) (clean, full string, err error) {
	clean = filepath.ToSlash(filepath.Clean("/" + path))[1:]
	full = filepath.Join(s.basePath, filepath.FromSlash(clean))
	if clean == "" || !strings.HasPrefix(full, s.basePath+string(filepath.Separator)) {
		return "", "", fmt.Errorf("storage: ruta inválida %q", path)
	}
	return clean, full, nil
}

// Upload escribe (o sobrescribe) el objeto. Un fallo al escribir o cerrar borra el archivo.
func (s *LocalStorage) Upload(_ context.Context, file io.Reader, path string, _ string) (_ string, err error) {
	clean, full, err := s.resolve(path)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("storage: crear directorio: %w", err)
	}
	dst, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("storage: crear archivo: %w", err)
	}
	defer func() {
		if cerr := dst.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("storage: cerrar archivo: %w", cerr)
		}
		if err != nil {
			os.Remove(full)
		}
	}()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("storage: escribir archivo: %w", err)
	}
	return clean, nil
}

// Download abre el archivo; domain.ErrNotFound si no existe.
func (s *LocalStorage) Download(_ context.Context, path string) (io.ReadCloser, error) {
	_, full, err := s.resolve(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(full)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("storage: abrir archivo: %w", err)
	}
	return f, nil
}

func (s *LocalStorage) Delete(_ context.Context, path string) error {
	_, full, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("storage: borrar archivo: %w", err)
	}
	return nil
}

// GetURL expiry 0 = URL estática; si no, la URL lleva un token que vence en expiry.
func (s *LocalStorage) GetURL(_ context.Context, path string, expiry time.Duration) (string, error) {
	clean, _, err := s.resolve(path)
	if err != nil {
		return "", err
	}
	u := s.baseURL + "/" + clean
	if expiry <= 0 {
		return u, nil
	}
	token, err := jwt.FirmarArchivo(s.secret, clean, expiry)
	if err != nil {
		return "", fmt.Errorf("storage: firmar %s: %w", clean, err)
	}
	return u + "?token=" + token, nil
}

// Autorizar permite PrefijoPublico sin token; el resto exige un token vigente de ese path.
func (s *LocalStorage) Autorizar(path, token string) error {
	clean, _, err := s.resolve(path)
	if err != nil {
		return err
	}
	if strings.HasPrefix(clean, PrefijoPublico) {
		return nil
	}
	if token == "" || jwt.VerificarArchivo(s.secret, token, clean) != nil {
		return ErrEnlaceInvalido
	}
	return nil
}

func (s *LocalStorage) Exists(_ context.Context, path string) (bool, error) {
	_, full, err := s.resolve(path)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(full); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

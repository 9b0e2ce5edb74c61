package usecase

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/dto"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/ports"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/repository"
	"github.com/google/uuid"
)

var extensionesLogo = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
}

// PlatformUseCase catálogo de plataformas de streaming.
type PlatformUseCase struct {
	repo    repository.PlatformRepository
	storage ports.FileStorage
}

// NewPlatformUseCase construye el caso de uso. storage puede ser nil si no se suben logos.
func NewPlatformUseCase(repo repository.PlatformRepository, storage ports.FileStorage) *PlatformUseCase {
	return &PlatformUseCase{repo: repo, storage: storage}
}

// Create registra una plataforma.
func (uc *PlatformUseCase) Create(ctx context.Context, in dto.PlatformRequest) (*entity.Platform, error) {
	if in.MonthlyPrice.IsNegative() || in.YearlyPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	p := &entity.Platform{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(in.Name),
		IsActive:     true,
		MonthlyPrice: in.MonthlyPrice,
		YearlyPrice:  in.YearlyPrice,
		CreatedAt:    time.Now(),
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update modifica nombre, precios y estado.
func (uc *PlatformUseCase) Update(ctx context.Context, id string, in dto.PlatformRequest) (*entity.Platform, error) {
	if in.MonthlyPrice.IsNegative() || in.YearlyPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Name = strings.TrimSpace(in.Name)
	p.MonthlyPrice = in.MonthlyPrice
	p.YearlyPrice = in.YearlyPrice
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetByID plataforma por id; ErrNotFound si no existe.
func (uc *PlatformUseCase) GetByID(ctx context.Context, id string) (*entity.Platform, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// List plataformas ordenadas por nombre.
func (uc *PlatformUseCase) List(ctx context.Context, soloActivas bool) ([]*entity.Platform, error) {
	return uc.repo.List(ctx, soloActivas)
}

// SetActive activa o desactiva.
func (uc *PlatformUseCase) SetActive(ctx context.Context, id string, active bool) error {
	if _, err := uc.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.repo.SetActive(ctx, id, active)
}

// SubirLogo guarda el logo en logos/<id><ext> y registra su URL pública.
func (uc *PlatformUseCase) SubirLogo(ctx context.Context, id, filename string, file io.Reader) (*entity.Platform, error) {
	if uc.storage == nil {
		return nil, domain.ErrInvalidInput
	}
	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := extensionesLogo[ext]
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	path, err := uc.storage.Upload(ctx, file, "logos/"+p.ID+ext, contentType)
	if err != nil {
		return nil, err
	}
	// expiry 0: URL pública permanente.
	url, err := uc.storage.GetURL(ctx, path, 0)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.SetLogo(ctx, p.ID, url); err != nil {
		return nil, err
	}
	p.LogoURL = &url
	return p, nil
}

package usecase

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/dto"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/repository"
	"github.com/google/uuid"
)

// ConfiguracionUseCase parámetros del sistema y frecuencia de ciclos.
type ConfiguracionUseCase struct {
	repo repository.SettingRepository
}

// NewConfiguracionUseCase construye el caso de uso.
func NewConfiguracionUseCase(repo repository.SettingRepository) *ConfiguracionUseCase {
	return &ConfiguracionUseCase{repo: repo}
}

// List todos los settings con su valor interpretado.
func (uc *ConfiguracionUseCase) List(ctx context.Context) ([]dto.SettingResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SettingResponse, 0, len(list))
	for _, s := range list {
		v, err := ValorTipado(s)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.SettingResponse{Clave: s.Clave, Tipo: s.Tipo, Valor: v})
	}
	return out, nil
}

// Get un setting por clave.
func (uc *ConfiguracionUseCase) Get(ctx context.Context, clave string) (*dto.SettingResponse, error) {
	s, err := uc.repo.Get(ctx, clave)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	v, err := ValorTipado(s)
	if err != nil {
		return nil, err
	}
	return &dto.SettingResponse{Clave: s.Clave, Tipo: s.Tipo, Valor: v}, nil
}

// Update cambia el valor validando que corresponda al tipo declarado.
func (uc *ConfiguracionUseCase) Update(ctx context.Context, clave, valor string) (*dto.SettingResponse, error) {
	s, err := uc.repo.Get(ctx, clave)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	s.Valor = valor
	v, err := ValorTipado(s)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, clave, valor); err != nil {
		return nil, err
	}
	return &dto.SettingResponse{Clave: s.Clave, Tipo: s.Tipo, Valor: v}, nil
}

// CicloConfig frecuencia de pago vigente; nil si no se configuró.
func (uc *ConfiguracionUseCase) CicloConfig(ctx context.Context) (*entity.CicloConfig, error) {
	return uc.repo.GetCicloConfig(ctx)
}

// GuardarCicloConfig reemplaza la frecuencia de pago vigente.
func (uc *ConfiguracionUseCase) GuardarCicloConfig(ctx context.Context, in dto.CicloConfigRequest) (*entity.CicloConfig, error) {
	switch in.Tipo {
	case entity.CicloSemanal:
		if in.DiaInicio < 0 || in.DiaInicio > 6 {
			return nil, domain.ErrInvalidInput
		}
	case entity.CicloQuincenal, entity.CicloMensual:
		if in.DiaInicio < 1 || in.DiaInicio > 31 {
			return nil, domain.ErrInvalidInput
		}
	default:
		return nil, domain.ErrInvalidInput
	}
	c, err := uc.repo.GetCicloConfig(ctx)
	if err != nil {
		return nil, err
	}
	if c == nil {
		c = &entity.CicloConfig{ID: uuid.New().String()}
	}
	c.Tipo = in.Tipo
	c.DiaInicio = in.DiaInicio
	c.Activo = true
	if err := uc.repo.UpsertCicloConfig(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ValorTipado interpreta el valor según el tipo del setting.
func ValorTipado(s *entity.Setting) (interface{}, error) {
	switch s.Tipo {
	case entity.SettingBoolean:
		b, err := strconv.ParseBool(s.Valor)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		return b, nil
	case entity.SettingNumber:
		n, err := strconv.ParseFloat(s.Valor, 64)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		return n, nil
	case entity.SettingJSON:
		var v interface{}
		if err := json.Unmarshal([]byte(s.Valor), &v); err != nil {
			return nil, domain.ErrInvalidInput
		}
		return v, nil
	default:
		return s.Valor, nil
	}
}

package streaming

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/dto"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/ports"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/usecase"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/repository"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/suscripcion"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/pkg/fechas"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/pkg/montos"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SaleUseCase registro de ventas de suscripciones.
type SaleUseCase struct {
	tx        SalesTxRunner
	sales     repository.SaleRepository
	platforms repository.PlatformRepository
	notifier  ports.Notifier
	chatID    string
	fmt       *montos.Formateador
	log       zerolog.Logger
	loc       *time.Location
	now       func() time.Time
}

// NewSaleUseCase construye el caso de uso. notifier puede ser nil.
func NewSaleUseCase(
	tx SalesTxRunner,
	sales repository.SaleRepository,
	platforms repository.PlatformRepository,
	notifier ports.Notifier,
	chatID string,
	f *montos.Formateador,
	log zerolog.Logger,
	loc *time.Location,
) *SaleUseCase {
	return &SaleUseCase{
		tx:        tx,
		sales:     sales,
		platforms: platforms,
		notifier:  notifier,
		chatID:    chatID,
		fmt:       f,
		log:       log,
		loc:       loc,
		now:       time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *SaleUseCase) WithClock(now func() time.Time) *SaleUseCase {
	uc.now = now
	return uc
}

// Create busca o crea el cliente, calcula el próximo cobro, guarda la venta ACTIVE y su
// recordatorio PAYMENT_DUE en una transacción, y después avisa por Telegram.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*entity.SaleDetalle, error) {
	if !entity.PlanValido(in.Plan) || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.CustomerID == "" && in.Customer == nil {
		return nil, domain.ErrInvalidInput
	}
	start, err := fechas.Parse(in.StartDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	saleDate := fechas.Hoy(uc.now(), uc.loc)
	if in.SaleDate != "" {
		if saleDate, err = fechas.Parse(in.SaleDate); err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	var end *time.Time
	if in.EndDate != "" {
		e, err := fechas.Parse(in.EndDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		end = &e
	}
	if in.Plan == entity.PlanCustomRange && (end == nil || end.Before(start)) {
		return nil, domain.ErrInvalidInput
	}

	platform, err := uc.platforms.GetByID(ctx, in.PlatformID)
	if err != nil {
		return nil, err
	}
	if platform == nil {
		return nil, domain.ErrNotFound
	}

	var (
		sale     *entity.Sale
		customer *entity.Customer
	)
	err = uc.tx.RunSales(ctx, func(
		customerRepo repository.CustomerRepository,
		saleRepo repository.SaleRepository,
		reminderRepo repository.ReminderRepository,
	) error {
		var err error
		if customer, err = resolverCliente(ctx, customerRepo, in); err != nil {
			return err
		}

		sale = &entity.Sale{
			ID:             uuid.New().String(),
			PlatformID:     platform.ID,
			CustomerID:     customer.ID,
			SaleDate:       saleDate,
			Plan:           in.Plan,
			StartDate:      start,
			EndDate:        end,
			NextChargeDate: suscripcion.ProximoCobro(start, in.Plan, end),
			Price:          in.Price,
			Status:         entity.SaleActive,
			CreatedAt:      uc.now(),
		}
		if pm := strings.TrimSpace(in.PaymentMethod); pm != "" {
			sale.PaymentMethod = &pm
		}
		if err := saleRepo.Create(ctx, sale); err != nil {
			return fmt.Errorf("crear venta: %w", err)
		}

		if sale.NextChargeDate != nil {
			r := &entity.Reminder{
				ID:        uuid.New().String(),
				SaleID:    sale.ID,
				DueAt:     *sale.NextChargeDate,
				Kind:      entity.ReminderPaymentDue,
				CreatedAt: uc.now(),
			}
			if err := reminderRepo.Create(ctx, r); err != nil {
				return fmt.Errorf("crear recordatorio: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	det := &entity.SaleDetalle{
		Sale:          *sale,
		PlatformName:  platform.Name,
		CustomerName:  customer.FullName,
		CustomerEmail: customer.Email,
		CustomerPhone: customer.Phone,
	}
	uc.notificar(ctx, MensajeNuevaVenta(det, uc.fmt))
	return det, nil
}

// List ventas más recientes primero; platformID vacío = todas.
func (uc *SaleUseCase) List(ctx context.Context, platformID string) ([]*entity.SaleDetalle, error) {
	return uc.sales.List(ctx, platformID)
}

// GetByID venta con plataforma y cliente.
func (uc *SaleUseCase) GetByID(ctx context.Context, id string) (*entity.SaleDetalle, error) {
	s, err := uc.sales.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

// UpdateStatus ACTIVE, CANCELLED o EXPIRED. Una venta no activa deja de generar recordatorios.
func (uc *SaleUseCase) UpdateStatus(ctx context.Context, id, status string) error {
	switch status {
	case entity.SaleActive, entity.SaleCancelled, entity.SaleExpired:
	default:
		return domain.ErrInvalidInput
	}
	if _, err := uc.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.sales.UpdateStatus(ctx, id, status)
}

// MensajeWhatsApp arma el mensaje de credenciales de una venta y su enlace de envío.
func (uc *SaleUseCase) MensajeWhatsApp(ctx context.Context, id string, in dto.MensajeWhatsAppRequest) (*dto.MensajeWhatsAppResponse, error) {
	s, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	phone := in.Phone
	if phone == "" && s.CustomerPhone != nil {
		phone = *s.CustomerPhone
	}
	msg := MensajeCredenciales(s, Credenciales{
		Email:    in.Email,
		Password: in.Password,
		Profile:  in.Profile,
		PIN:      in.PIN,
	})
	return &dto.MensajeWhatsAppResponse{Mensaje: msg, URL: EnlaceWhatsApp(phone, msg)}, nil
}

func (uc *SaleUseCase) notificar(ctx context.Context, text string) {
	if uc.notifier == nil {
		return
	}
	if err := uc.notifier.SendMessage(ctx, uc.chatID, text); err != nil {
		uc.log.Error().Err(err).Msg("telegram: no se pudo enviar el aviso de venta")
	}
}

// resolverCliente usa customer_id si viene; si no, busca por email o teléfono y crea si no existe.
func resolverCliente(ctx context.Context, repo repository.CustomerRepository, in dto.CreateSaleRequest) (*entity.Customer, error) {
	if in.CustomerID != "" {
		c, err := repo.GetByID(ctx, in.CustomerID)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, domain.ErrNotFound
		}
		return c, nil
	}
	nuevo, err := usecase.NuevoCustomer(*in.Customer)
	if err != nil {
		return nil, err
	}
	var email, phone string
	if nuevo.Email != nil {
		email = *nuevo.Email
	}
	if nuevo.Phone != nil {
		phone = *nuevo.Phone
	}
	existente, err := repo.FindByEmailOrPhone(ctx, email, phone)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return existente, nil
	}
	if err := repo.Create(ctx, nuevo); err != nil {
		return nil, fmt.Errorf("crear cliente: %w", err)
	}
	return nuevo, nil
}

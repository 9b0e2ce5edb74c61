package streaming

import (
	"context"
	"time"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/dto"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/ports"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/repository"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/suscripcion"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/pkg/fechas"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/pkg/montos"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// MensajeSinPendientes respuesta del cron cuando no hay recordatorios vencidos.
const MensajeSinPendientes = "No reminders due"

// ReminderUseCase procesa los recordatorios de cobro vencidos.
type ReminderUseCase struct {
	tx        SalesTxRunner
	reminders repository.ReminderRepository
	notifier  ports.Notifier
	chatID    string
	fmt       *montos.Formateador
	log       zerolog.Logger
	loc       *time.Location
	now       func() time.Time
}

// NewReminderUseCase construye el caso de uso. reminders solo se usa para leer los vencidos;
// las escrituras van por tx. notifier puede ser nil.
func NewReminderUseCase(
	tx SalesTxRunner,
	reminders repository.ReminderRepository,
	notifier ports.Notifier,
	chatID string,
	f *montos.Formateador,
	log zerolog.Logger,
	loc *time.Location,
) *ReminderUseCase {
	return &ReminderUseCase{
		tx:        tx,
		reminders: reminders,
		notifier:  notifier,
		chatID:    chatID,
		fmt:       f,
		log:       log,
		loc:       loc,
		now:       time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *ReminderUseCase) WithClock(now func() time.Time) *ReminderUseCase {
	uc.now = now
	return uc
}

// Procesar envía cada recordatorio no enviado con due_at <= hoy y lo marca enviado. Para ventas
// ACTIVE con plan MONTHLY o YEARLY calcula el siguiente cobro desde due_at, lo guarda en la
// venta y programa el siguiente recordatorio. Marcar, actualizar la venta y crear el siguiente
// van en una transacción: si algo falla el recordatorio queda sin marcar y se reintenta en la
// siguiente corrida. El mensaje de Telegram se envía después del commit.
func (uc *ReminderUseCase) Procesar(ctx context.Context) (*dto.CronRemindersResponse, error) {
	hoy := fechas.Hoy(uc.now(), uc.loc)
	due, err := uc.reminders.ListDue(ctx, hoy)
	if err != nil {
		return nil, err
	}
	if len(due) == 0 {
		return &dto.CronRemindersResponse{Message: MensajeSinPendientes}, nil
	}

	processed := 0
	for _, r := range due {
		if err := uc.procesarUno(ctx, r); err != nil {
			uc.log.Error().Err(err).Str("reminder_id", r.ID).Str("sale_id", r.SaleID).Msg("recordatorio no procesado")
			continue
		}
		processed++
	}
	uc.log.Info().Int("due", len(due)).Int("processed", processed).Msg("recordatorios procesados")
	return &dto.CronRemindersResponse{Processed: &processed}, nil
}

// Run adaptador para el scheduler de intervalos.
func (uc *ReminderUseCase) Run(ctx context.Context) error {
	_, err := uc.Procesar(ctx)
	return err
}

func (uc *ReminderUseCase) procesarUno(ctx context.Context, r *entity.ReminderDue) error {
	err := uc.tx.RunSales(ctx, func(
		_ repository.CustomerRepository,
		saleRepo repository.SaleRepository,
		reminderRepo repository.ReminderRepository,
	) error {
		if err := reminderRepo.MarkSent(ctx, r.ID, uc.now()); err != nil {
			return err
		}
		if r.Sale.Status != entity.SaleActive || !r.Sale.Recurrente() {
			return nil
		}
		next := suscripcion.ProximoCobro(r.DueAt, r.Sale.Plan, r.Sale.EndDate)
		if next == nil {
			return nil
		}
		if err := saleRepo.UpdateNextChargeDate(ctx, r.SaleID, *next); err != nil {
			return err
		}
		return reminderRepo.Create(ctx, &entity.Reminder{
			ID:        uuid.New().String(),
			SaleID:    r.SaleID,
			DueAt:     *next,
			Kind:      entity.ReminderPaymentDue,
			CreatedAt: uc.now(),
		})
	})
	if err != nil {
		return err
	}

	if uc.notifier != nil {
		if err := uc.notifier.SendMessage(ctx, uc.chatID, MensajeRecordatorio(r, uc.fmt)); err != nil {
			uc.log.Error().Err(err).Str("reminder_id", r.ID).Msg("telegram: no se pudo enviar el recordatorio")
		}
	}
	return nil
}

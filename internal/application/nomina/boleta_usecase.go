package nomina

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/ports"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/repository"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/pkg/fechas"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// URLExpiracion vigencia de las URLs firmadas de boletas.
const URLExpiracion = 60 * time.Second

// BoletaUseCase genera, guarda y sirve los PDFs de boletas de pago.
//
// El PDF se arma con la producción y los movimientos vigentes del periodo del ciclo al momento
// de generarlo, no con una copia congelada al cerrar: si se borró un registro después del
// cierre, el PDF regenerado no coincide con los totales guardados y se registra una advertencia.
type BoletaUseCase struct {
	boletaRepo     repository.BoletaRepository
	cicloRepo      repository.CicloRepository
	produccionRepo repository.ProduccionRepository
	movimientoRepo repository.MovimientoRepository
	renderer       BoletaRenderer
	storage        ports.FileStorage
	log            zerolog.Logger
}

// NewBoletaUseCase construye el caso de uso inyectando todas sus dependencias.
func NewBoletaUseCase(
	boletaRepo repository.BoletaRepository,
	cicloRepo repository.CicloRepository,
	produccionRepo repository.ProduccionRepository,
	movimientoRepo repository.MovimientoRepository,
	renderer BoletaRenderer,
	storage ports.FileStorage,
	log zerolog.Logger,
) *BoletaUseCase {
	return &BoletaUseCase{
		boletaRepo:     boletaRepo,
		cicloRepo:      cicloRepo,
		produccionRepo: produccionRepo,
		movimientoRepo: movimientoRepo,
		renderer:       renderer,
		storage:        storage,
		log:            log,
	}
}

// StoragePath ruta del PDF en el almacenamiento: boletas/<boletaID>.pdf.
func StoragePath(boletaID string) string {
	return "boletas/" + boletaID + ".pdf"
}

// NombreArchivo nombre de descarga: boleta-<codigo>-<fecha_fin>.pdf.
func NombreArchivo(b *entity.BoletaDetalle) string {
	return fmt.Sprintf("boleta-%s-%s.pdf", b.EmpleadoCodigo, fechas.ISO(b.FechaFin))
}

// CerrarYGenerar renderiza el PDF de la boleta del ciclo, lo sube (sobrescribiendo el anterior),
// guarda la ruta en la boleta y deja el ciclo CERRADO. Es lo que ejecuta la cola de PDFs.
func (uc *BoletaUseCase) CerrarYGenerar(ctx context.Context, cicloID string) error {
	if cicloID == "" {
		return domain.ErrInvalidInput
	}

	// ── 1. Boleta con empleado y periodo ─────────────────────────────────────
	b, err := uc.boletaRepo.GetByCicloID(ctx, cicloID)
	if err != nil {
		return fmt.Errorf("boleta: obtener por ciclo: %w", err)
	}
	if b == nil {
		return domain.ErrCicloSinBoleta
	}

	// ── 2. Render ────────────────────────────────────────────────────────────
	pdf, err := uc.render(ctx, b)
	if err != nil {
		return err
	}

	// ── 3. Subir y registrar ruta ───────────────────────────────────────────
	path, err := uc.storage.Upload(ctx, bytes.NewReader(pdf), StoragePath(b.ID), "application/pdf")
	if err != nil {
		return fmt.Errorf("boleta: subir PDF: %w", err)
	}
	if err := uc.boletaRepo.MarcarPDF(ctx, b.ID, path); err != nil {
		return fmt.Errorf("boleta: guardar ruta: %w", err)
	}
	if err := uc.cicloRepo.UpdateEstado(ctx, cicloID, entity.CicloCerrado); err != nil {
		return fmt.Errorf("boleta: cerrar ciclo: %w", err)
	}

	uc.log.Info().Str("ciclo_id", cicloID).Str("boleta_id", b.ID).Str("path", path).Msg("boleta generada")
	return nil
}

// RenderPorBoleta genera el PDF al vuelo para descarga.
func (uc *BoletaUseCase) RenderPorBoleta(ctx context.Context, boletaID string) (pdf []byte, filename string, err error) {
	b, err := uc.boletaRepo.GetByID(ctx, boletaID)
	if err != nil {
		return nil, "", fmt.Errorf("boleta: obtener: %w", err)
	}
	if b == nil {
		return nil, "", domain.ErrNotFound
	}
	pdf, err = uc.render(ctx, b)
	if err != nil {
		return nil, "", err
	}
	return pdf, NombreArchivo(b), nil
}

// RenderPorCiclo genera el PDF de la boleta de un ciclo.
func (uc *BoletaUseCase) RenderPorCiclo(ctx context.Context, cicloID string) (pdf []byte, filename string, err error) {
	b, err := uc.boletaRepo.GetByCicloID(ctx, cicloID)
	if err != nil {
		return nil, "", fmt.Errorf("boleta: obtener por ciclo: %w", err)
	}
	if b == nil {
		return nil, "", domain.ErrNotFound
	}
	pdf, err = uc.render(ctx, b)
	if err != nil {
		return nil, "", err
	}
	return pdf, NombreArchivo(b), nil
}

// Descargar abre el PDF guardado. El caller debe cerrar el reader.
func (uc *BoletaUseCase) Descargar(ctx context.Context, boletaID string) (io.ReadCloser, string, error) {
	b, err := uc.boletaRepo.GetByID(ctx, boletaID)
	if err != nil {
		return nil, "", fmt.Errorf("boleta: obtener: %w", err)
	}
	if b == nil {
		return nil, "", domain.ErrNotFound
	}
	if b.PDFPath == nil || *b.PDFPath == "" {
		return nil, "", domain.ErrBoletaSinPDF
	}
	rc, err := uc.storage.Download(ctx, *b.PDFPath)
	if err != nil {
		return nil, "", fmt.Errorf("boleta: descargar: %w", err)
	}
	return rc, NombreArchivo(b), nil
}

// URLFirmada URL temporal del PDF guardado.
func (uc *BoletaUseCase) URLFirmada(ctx context.Context, boletaID string) (string, error) {
	b, err := uc.boletaRepo.GetByID(ctx, boletaID)
	if err != nil {
		return "", fmt.Errorf("boleta: obtener: %w", err)
	}
	if b == nil {
		return "", domain.ErrNotFound
	}
	if b.PDFPath == nil || *b.PDFPath == "" {
		return "", domain.ErrBoletaSinPDF
	}
	return uc.storage.GetURL(ctx, *b.PDFPath, URLExpiracion)
}

// Listar boletas (empleadoID vacío = todas), más recientes primero.
func (uc *BoletaUseCase) Listar(ctx context.Context, empleadoID string) ([]*entity.BoletaDetalle, error) {
	return uc.boletaRepo.List(ctx, empleadoID)
}

// Obtener boleta por id.
func (uc *BoletaUseCase) Obtener(ctx context.Context, id string) (*entity.BoletaDetalle, error) {
	b, err := uc.boletaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	return b, nil
}

// CiclosEmpleado ciclos de un empleado, más recientes primero.
func (uc *BoletaUseCase) CiclosEmpleado(ctx context.Context, empleadoID string) ([]*entity.Ciclo, error) {
	if empleadoID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.cicloRepo.ListByEmpleado(ctx, empleadoID)
}

func (uc *BoletaUseCase) render(ctx context.Context, b *entity.BoletaDetalle) ([]byte, error) {
	prod, err := uc.produccionRepo.ListRango(ctx, b.EmpleadoID, b.FechaInicio, b.FechaFin)
	if err != nil {
		return nil, fmt.Errorf("boleta: producción del periodo: %w", err)
	}
	movs, err := uc.movimientoRepo.ListRango(ctx, b.EmpleadoID, b.FechaInicio, b.FechaFin)
	if err != nil {
		return nil, fmt.Errorf("boleta: movimientos del periodo: %w", err)
	}
	uc.verificarTotales(b, prod, movs)

	pdf, err := uc.renderer.RenderBoletaPago(&BoletaDocumento{Boleta: b, Produccion: prod, Movimientos: movs})
	if err != nil {
		return nil, fmt.Errorf("boleta: render: %w", err)
	}
	return pdf, nil
}

// verificarTotales compara los registros vigentes con los totales guardados en la boleta.
func (uc *BoletaUseCase) verificarTotales(b *entity.BoletaDetalle, prod []*entity.ProduccionDetalle, movs []*entity.Movimiento) {
	totalProd := decimal.Zero
	for _, p := range prod {
		totalProd = totalProd.Add(p.Subtotal)
	}
	adelantos, descuentos := decimal.Zero, decimal.Zero
	for _, m := range movs {
		if m.Signo == entity.SignoPositivo {
			adelantos = adelantos.Add(m.Monto)
		} else {
			descuentos = descuentos.Add(m.Monto)
		}
	}
	if totalProd.Equal(b.TotalProduccion) && adelantos.Equal(b.TotalAdelantos) && descuentos.Equal(b.TotalDescuentos) {
		return
	}
	uc.log.Warn().
		Str("boleta_id", b.ID).
		Str("produccion_guardada", b.TotalProduccion.StringFixed(2)).
		Str("produccion_vigente", totalProd.StringFixed(2)).
		Str("adelantos_guardados", b.TotalAdelantos.StringFixed(2)).
		Str("adelantos_vigentes", adelantos.StringFixed(2)).
		Str("descuentos_guardados", b.TotalDescuentos.StringFixed(2)).
		Str("descuentos_vigentes", descuentos.StringFixed(2)).
		Msg("los registros del periodo ya no coinciden con los totales de la boleta")
}

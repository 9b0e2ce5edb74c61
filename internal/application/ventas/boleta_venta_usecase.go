package ventas

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/dto"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/repository"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/pkg/fechas"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/pkg/montos"
	"github.com/google/uuid"
)

// BoletaVentaUseCase boletas de venta: correlativo por serie, totales con IGV incluido,
// PDF A4 y XML UBL.
type BoletaVentaUseCase struct {
	tx       VentasTxRunner
	repo     repository.VentaBoletaRepository
	renderer VentaRenderer
	builder  ComprobanteBuilder
	empresa  entity.Empresa
	loc      *time.Location
	now      func() time.Time
}

// NewBoletaVentaUseCase construye el caso de uso.
func NewBoletaVentaUseCase(
	tx VentasTxRunner,
	repo repository.VentaBoletaRepository,
	renderer VentaRenderer,
	builder ComprobanteBuilder,
	empresa entity.Empresa,
	loc *time.Location,
) *BoletaVentaUseCase {
	return &BoletaVentaUseCase{
		tx:       tx,
		repo:     repo,
		renderer: renderer,
		builder:  builder,
		empresa:  empresa,
		loc:      loc,
		now:      time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *BoletaVentaUseCase) WithClock(now func() time.Time) *BoletaVentaUseCase {
	uc.now = now
	return uc
}

// Create toma el siguiente correlativo de la serie e inserta cabecera y detalle en una transacción.
func (uc *BoletaVentaUseCase) Create(ctx context.Context, in dto.VentaBoletaRequest) (*entity.VentaBoleta, error) {
	b, err := uc.armar(in)
	if err != nil {
		return nil, err
	}
	b.ID = uuid.New().String()
	b.CreatedAt = uc.now()
	for i := range b.Detalle {
		b.Detalle[i].ID = uuid.New().String()
		b.Detalle[i].BoletaID = b.ID
	}

	err = uc.tx.RunVentas(ctx, func(repo repository.VentaBoletaRepository) error {
		numero, err := repo.SiguienteNumero(ctx, b.Serie)
		if err != nil {
			return fmt.Errorf("correlativo %s: %w", b.Serie, err)
		}
		b.Numero = numero
		return repo.Create(ctx, b)
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Update reemplaza cliente, fecha y todas las líneas; serie y número no cambian.
func (uc *BoletaVentaUseCase) Update(ctx context.Context, id string, in dto.VentaBoletaRequest) (*entity.VentaBoleta, error) {
	actual, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	b, err := uc.armar(in)
	if err != nil {
		return nil, err
	}
	b.ID = actual.ID
	b.Serie = actual.Serie
	b.Numero = actual.Numero
	b.CreatedAt = actual.CreatedAt
	for i := range b.Detalle {
		b.Detalle[i].ID = uuid.New().String()
		b.Detalle[i].BoletaID = b.ID
	}
	err = uc.tx.RunVentas(ctx, func(repo repository.VentaBoletaRepository) error {
		return repo.Update(ctx, b)
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Get boleta con detalle.
func (uc *BoletaVentaUseCase) Get(ctx context.Context, id string) (*entity.VentaBoleta, error) {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	return b, nil
}

// List cabeceras paginadas, más recientes primero.
func (uc *BoletaVentaUseCase) List(ctx context.Context, page dto.PageRequest) ([]*entity.VentaBoleta, error) {
	page.DefaultPage()
	return uc.repo.List(ctx, page.Limit, page.Offset)
}

// Delete borra detalle y cabecera en una transacción.
func (uc *BoletaVentaUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.Get(ctx, id); err != nil {
		return err
	}
	return uc.tx.RunVentas(ctx, func(repo repository.VentaBoletaRepository) error {
		return repo.Delete(ctx, id)
	})
}

// PDF genera el PDF A4; el código hash es el digest del XML UBL.
func (uc *BoletaVentaUseCase) PDF(ctx context.Context, id string) (pdf []byte, filename string, err error) {
	b, err := uc.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	_, digest, err := uc.builder.Build(b, uc.empresa)
	if err != nil {
		return nil, "", fmt.Errorf("boleta venta: xml: %w", err)
	}
	pdf, err = uc.renderer.RenderVentaBoleta(&VentaDocumento{
		Boleta:      b,
		Empresa:     uc.empresa,
		MontoLetras: montos.NumeroALetras(b.Total),
		Hash:        digest,
	})
	if err != nil {
		return nil, "", fmt.Errorf("boleta venta: render: %w", err)
	}
	return pdf, b.Codigo() + ".pdf", nil
}

// XML documento UBL y su digest.
func (uc *BoletaVentaUseCase) XML(ctx context.Context, id string) (xml []byte, digest, filename string, err error) {
	b, err := uc.Get(ctx, id)
	if err != nil {
		return nil, "", "", err
	}
	xml, digest, err = uc.builder.Build(b, uc.empresa)
	if err != nil {
		return nil, "", "", fmt.Errorf("boleta venta: xml: %w", err)
	}
	return xml, digest, uc.empresa.RUC + "-03-" + b.Codigo() + ".xml", nil
}

// armar valida el request y calcula totales.
func (uc *BoletaVentaUseCase) armar(in dto.VentaBoletaRequest) (*entity.VentaBoleta, error) {
	if strings.TrimSpace(in.ClienteNombre) == "" || len(in.Detalle) == 0 {
		return nil, domain.ErrInvalidInput
	}
	serie := strings.ToUpper(strings.TrimSpace(in.Serie))
	if serie == "" {
		serie = entity.SerieBoletaDefecto
	}
	fecha := fechas.Hoy(uc.now(), uc.loc)
	if in.Fecha != "" {
		f, err := fechas.Parse(in.Fecha)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		fecha = f
	}
	b := &entity.VentaBoleta{
		Serie:            serie,
		Fecha:            fecha,
		ClienteNombre:    strings.TrimSpace(in.ClienteNombre),
		ClienteDocumento: strings.TrimSpace(in.ClienteDocumento),
		ClienteDireccion: strings.TrimSpace(in.ClienteDireccion),
		Detalle:          make([]entity.VentaDetalle, 0, len(in.Detalle)),
	}
	for _, d := range in.Detalle {
		if !d.Cantidad.IsPositive() || d.PrecioUnitario.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		b.Detalle = append(b.Detalle, entity.VentaDetalle{
			Descripcion:    strings.TrimSpace(d.Descripcion),
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
		})
	}
	b.CalcularTotales()
	return b, nil
}

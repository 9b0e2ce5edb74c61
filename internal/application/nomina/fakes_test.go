package nomina_test

import (
	"bytes"
	"context"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/nomina"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/repository"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/pkg/fechas"
)

// memTaller base de datos en memoria compartida por los repos falsos.
type memTaller struct {
	mu          sync.Mutex
	empleados   map[string]*entity.Empleado
	produccion  []*entity.ProduccionDetalle
	movimientos []*entity.Movimiento
	ciclos      []*entity.Ciclo
	boletas     []*entity.Boleta
}

func newMemTaller() *memTaller {
	return &memTaller{empleados: map[string]*entity.Empleado{}}
}

func (m *memTaller) empleadoRepo() *memEmpleados     { return &memEmpleados{m} }
func (m *memTaller) produccionRepo() *memProduccion  { return &memProduccion{m} }
func (m *memTaller) movimientoRepo() *memMovimientos { return &memMovimientos{m} }
func (m *memTaller) cicloRepo() *memCiclos           { return &memCiclos{m} }
func (m *memTaller) boletaRepo() *memBoletas         { return &memBoletas{m} }

// RunLiquidacion sin transacción real: los repos operan directo sobre la memoria.
func (m *memTaller) RunLiquidacion(ctx context.Context, fn func(
	repository.EmpleadoRepository,
	repository.ProduccionRepository,
	repository.MovimientoRepository,
	repository.CicloRepository,
	repository.BoletaRepository,
) error) error {
	return fn(m.empleadoRepo(), m.produccionRepo(), m.movimientoRepo(), m.cicloRepo(), m.boletaRepo())
}

var _ nomina.LiquidacionTxRunner = (*memTaller)(nil)

// ── Empleados ─────────────────────────────────────────────────────────────────

type memEmpleados struct{ m *memTaller }

func (r *memEmpleados) Create(_ context.Context, e *entity.Empleado) error {
	r.m.empleados[e.ID] = e
	return nil
}
func (r *memEmpleados) Update(_ context.Context, e *entity.Empleado) error {
	r.m.empleados[e.ID] = e
	return nil
}
func (r *memEmpleados) GetByID(_ context.Context, id string) (*entity.Empleado, error) {
	return r.m.empleados[id], nil
}
func (r *memEmpleados) GetByCodigo(_ context.Context, codigo string) (*entity.Empleado, error) {
	for _, e := range r.m.empleados {
		if e.Codigo == codigo {
			return e, nil
		}
	}
	return nil, nil
}
func (r *memEmpleados) List(_ context.Context, soloActivos bool) ([]*entity.Empleado, error) {
	var out []*entity.Empleado
	for _, e := range r.m.empleados {
		if !soloActivos || e.Activo {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}
func (r *memEmpleados) SetActivo(_ context.Context, id string, activo bool) error {
	r.m.empleados[id].Activo = activo
	return nil
}
func (r *memEmpleados) Contar(context.Context) (int, int, error) { return 0, 0, nil }
func (r *memEmpleados) LockByID(ctx context.Context, id string) (*entity.Empleado, error) {
	return r.GetByID(ctx, id)
}

// ── Producción ────────────────────────────────────────────────────────────────

type memProduccion struct{ m *memTaller }

func (r *memProduccion) Create(_ context.Context, p *entity.Produccion) error {
	r.m.produccion = append(r.m.produccion, &entity.ProduccionDetalle{Produccion: *p})
	return nil
}
func (r *memProduccion) GetByID(_ context.Context, id string) (*entity.Produccion, error) {
	for _, p := range r.m.produccion {
		if p.ID == id {
			return &p.Produccion, nil
		}
	}
	return nil, nil
}
func (r *memProduccion) Delete(_ context.Context, id string) error {
	for i, p := range r.m.produccion {
		if p.ID == id {
			r.m.produccion = append(r.m.produccion[:i], r.m.produccion[i+1:]...)
			return nil
		}
	}
	return nil
}
func (r *memProduccion) ListByFecha(context.Context, time.Time) ([]*entity.ProduccionDetalle, error) {
	return nil, nil
}
func (r *memProduccion) ListByEmpleado(context.Context, string, int) ([]*entity.ProduccionDetalle, error) {
	return nil, nil
}
func (r *memProduccion) ListDesde(_ context.Context, empleadoID string, desde time.Time) ([]*entity.Produccion, error) {
	var out []*entity.Produccion
	for _, p := range r.m.produccion {
		if p.EmpleadoID == empleadoID && p.Fecha.After(desde) {
			out = append(out, &p.Produccion)
		}
	}
	return out, nil
}
func (r *memProduccion) ListRango(_ context.Context, empleadoID string, inicio, fin time.Time) ([]*entity.ProduccionDetalle, error) {
	var out []*entity.ProduccionDetalle
	for _, p := range r.m.produccion {
		if p.EmpleadoID == empleadoID && !p.Fecha.Before(inicio) && !p.Fecha.After(fin) {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *memProduccion) PrimeraFecha(_ context.Context, empleadoID string) (*time.Time, error) {
	var first *time.Time
	for _, p := range r.m.produccion {
		if p.EmpleadoID == empleadoID && (first == nil || p.Fecha.Before(*first)) {
			f := p.Fecha
			first = &f
		}
	}
	return first, nil
}
func (r *memProduccion) Stats(context.Context, time.Time, time.Time) (*entity.ProduccionStats, error) {
	return &entity.ProduccionStats{}, nil
}

// ── Movimientos ───────────────────────────────────────────────────────────────

type memMovimientos struct{ m *memTaller }

func (r *memMovimientos) Create(_ context.Context, mv *entity.Movimiento) error {
	r.m.movimientos = append(r.m.movimientos, mv)
	return nil
}
func (r *memMovimientos) Delete(context.Context, string) error { return nil }
func (r *memMovimientos) List(context.Context, string, int) ([]*entity.MovimientoDetalle, error) {
	return nil, nil
}
func (r *memMovimientos) ListDesde(_ context.Context, empleadoID string, desde time.Time) ([]*entity.Movimiento, error) {
	var out []*entity.Movimiento
	for _, mv := range r.m.movimientos {
		if mv.EmpleadoID == empleadoID && mv.Fecha.After(desde) {
			out = append(out, mv)
		}
	}
	return out, nil
}
func (r *memMovimientos) ListRango(_ context.Context, empleadoID string, inicio, fin time.Time) ([]*entity.Movimiento, error) {
	var out []*entity.Movimiento
	for _, mv := range r.m.movimientos {
		if mv.EmpleadoID == empleadoID && !mv.Fecha.Before(inicio) && !mv.Fecha.After(fin) {
			out = append(out, mv)
		}
	}
	return out, nil
}

// ── Ciclos y boletas ──────────────────────────────────────────────────────────

type memCiclos struct{ m *memTaller }

func (r *memCiclos) Create(_ context.Context, c *entity.Ciclo) error {
	r.m.ciclos = append(r.m.ciclos, c)
	return nil
}
func (r *memCiclos) GetByID(_ context.Context, id string) (*entity.Ciclo, error) {
	for _, c := range r.m.ciclos {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}
func (r *memCiclos) UltimoCerrado(_ context.Context, empleadoID string) (*entity.Ciclo, error) {
	var ultimo *entity.Ciclo
	for _, c := range r.m.ciclos {
		if c.EmpleadoID == empleadoID && c.Estado == entity.CicloCerrado &&
			(ultimo == nil || c.FechaFin.After(ultimo.FechaFin)) {
			ultimo = c
		}
	}
	return ultimo, nil
}
func (r *memCiclos) ListByEmpleado(_ context.Context, empleadoID string) ([]*entity.Ciclo, error) {
	var out []*entity.Ciclo
	for _, c := range r.m.ciclos {
		if c.EmpleadoID == empleadoID {
			out = append(out, c)
		}
	}
	return out, nil
}
func (r *memCiclos) UpdateEstado(_ context.Context, id, estado string) error {
	for _, c := range r.m.ciclos {
		if c.ID == id {
			c.Estado = estado
		}
	}
	return nil
}

type memBoletas struct{ m *memTaller }

func (r *memBoletas) Upsert(_ context.Context, b *entity.Boleta) error {
	for i, existing := range r.m.boletas {
		if existing.CicloID == b.CicloID {
			r.m.boletas[i] = b
			return nil
		}
	}
	r.m.boletas = append(r.m.boletas, b)
	return nil
}
func (r *memBoletas) detalle(b *entity.Boleta) *entity.BoletaDetalle {
	d := &entity.BoletaDetalle{Boleta: *b}
	if e := r.m.empleados[b.EmpleadoID]; e != nil {
		d.EmpleadoNombre, d.EmpleadoCodigo = e.Nombre, e.Codigo
	}
	for _, c := range r.m.ciclos {
		if c.ID == b.CicloID {
			d.FechaInicio, d.FechaFin = c.FechaInicio, c.FechaFin
		}
	}
	return d
}
func (r *memBoletas) GetByID(_ context.Context, id string) (*entity.BoletaDetalle, error) {
	for _, b := range r.m.boletas {
		if b.ID == id {
			return r.detalle(b), nil
		}
	}
	return nil, nil
}
func (r *memBoletas) GetByCicloID(_ context.Context, cicloID string) (*entity.BoletaDetalle, error) {
	for _, b := range r.m.boletas {
		if b.CicloID == cicloID {
			return r.detalle(b), nil
		}
	}
	return nil, nil
}
func (r *memBoletas) List(_ context.Context, empleadoID string) ([]*entity.BoletaDetalle, error) {
	var out []*entity.BoletaDetalle
	for _, b := range r.m.boletas {
		if empleadoID == "" || b.EmpleadoID == empleadoID {
			out = append(out, r.detalle(b))
		}
	}
	return out, nil
}
func (r *memBoletas) MarcarPDF(_ context.Context, id, path string) error {
	for _, b := range r.m.boletas {
		if b.ID == id {
			p := path
			b.PDFPath = &p
			b.Pagado = true
		}
	}
	return nil
}

// ── Cola, renderer y almacenamiento ───────────────────────────────────────────

type fakeQueue struct {
	ciclos []string
	err    error
}

func (q *fakeQueue) Enqueue(_ context.Context, cicloID string) error {
	q.ciclos = append(q.ciclos, cicloID)
	return q.err
}

type fakeRenderer struct {
	ultimo *nomina.BoletaDocumento
	err    error
}

func (f *fakeRenderer) RenderBoletaPago(doc *nomina.BoletaDocumento) ([]byte, error) {
	f.ultimo = doc
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-fake " + doc.Boleta.ID), nil
}

type memStorage struct {
	files map[string][]byte
	err   error
}

func newMemStorage() *memStorage { return &memStorage{files: map[string][]byte{}} }

func (s *memStorage) Upload(_ context.Context, file io.Reader, path, _ string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	b, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	s.files[path] = b
	return path, nil
}
func (s *memStorage) Download(_ context.Context, path string) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(s.files[path])), nil
}
func (s *memStorage) Delete(_ context.Context, path string) error {
	delete(s.files, path)
	return nil
}
func (s *memStorage) GetURL(_ context.Context, path string, expiry time.Duration) (string, error) {
	return "https://files.test/" + path + "?exp=" + expiry.String(), nil
}
func (s *memStorage) Exists(_ context.Context, path string) (bool, error) {
	_, ok := s.files[path]
	return ok, nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func dia(s string) time.Time {
	t, err := fechas.Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

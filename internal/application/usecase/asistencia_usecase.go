package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/dto"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/repository"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/pkg/fechas"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HoraLimiteEntrada entradas posteriores a esta hora cuentan como tardanza.
const HoraLimiteEntrada = "08:30"

// AsistenciaUseCase marcas de entrada/salida y resumen diario.
type AsistenciaUseCase struct {
	asistenciaRepo repository.AsistenciaRepository
	empleadoRepo   repository.EmpleadoRepository
	turnoRepo      repository.TurnoRepository
	loc            *time.Location
	now            func() time.Time
}

// NewAsistenciaUseCase construye el caso de uso.
func NewAsistenciaUseCase(
	asistenciaRepo repository.AsistenciaRepository,
	empleadoRepo repository.EmpleadoRepository,
	turnoRepo repository.TurnoRepository,
	loc *time.Location,
) *AsistenciaUseCase {
	return &AsistenciaUseCase{
		asistenciaRepo: asistenciaRepo,
		empleadoRepo:   empleadoRepo,
		turnoRepo:      turnoRepo,
		loc:            loc,
		now:            time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *AsistenciaUseCase) WithClock(now func() time.Time) *AsistenciaUseCase {
	uc.now = now
	return uc
}

// Hoy fecha de calendario actual en la zona configurada.
func (uc *AsistenciaUseCase) Hoy() time.Time {
	return fechas.Hoy(uc.now(), uc.loc)
}

// Dia marcas de la fecha con su empleado y el resumen del día.
func (uc *AsistenciaUseCase) Dia(ctx context.Context, fecha time.Time) (*dto.AsistenciaDiaResponse, error) {
	registros, err := uc.asistenciaRepo.ListByFecha(ctx, fecha)
	if err != nil {
		return nil, err
	}
	empleados, err := uc.empleadoRepo.List(ctx, true)
	if err != nil {
		return nil, err
	}
	porCodigo := make(map[string]*entity.Empleado, len(empleados))
	for _, e := range empleados {
		porCodigo[e.Codigo] = e
	}

	resp := &dto.AsistenciaDiaResponse{
		Fecha:     fechas.ISO(fecha),
		Registros: make([]*entity.AsistenciaDetalle, 0, len(registros)),
	}
	for _, a := range registros {
		resp.Registros = append(resp.Registros, &entity.AsistenciaDetalle{Asistencia: *a, Empleado: porCodigo[a.Codigo]})
		if a.HoraEntrada == nil {
			continue
		}
		resp.Stats.Presentes++
		if a.HoraSalida == nil {
			resp.Stats.SinSalida++
		}
		if EsTardanza(*a.HoraEntrada) {
			resp.Stats.Tardanzas++
		}
	}
	if aus := len(empleados) - resp.Stats.Presentes; aus > 0 {
		resp.Stats.Ausentes = aus
	}
	return resp, nil
}

// Marcar primera marca del día = entrada; segunda = salida con horas trabajadas.
func (uc *AsistenciaUseCase) Marcar(ctx context.Context, codigo string) (*entity.Asistencia, error) {
	codigo = strings.ToUpper(strings.TrimSpace(codigo))
	emp, err := uc.empleadoRepo.GetByCodigo(ctx, codigo)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	if !emp.Activo {
		return nil, domain.ErrEmpleadoInactivo
	}

	now := uc.now().In(uc.loc)
	hoy := fechas.Dia(now)
	hora := now.Format("15:04:05")

	a, err := uc.asistenciaRepo.GetByCodigoFecha(ctx, emp.Codigo, hoy)
	if err != nil {
		return nil, err
	}
	if a == nil {
		turnos, err := uc.turnoRepo.List(ctx, true)
		if err != nil {
			return nil, err
		}
		a = &entity.Asistencia{
			ID:          uuid.New().String(),
			Fecha:       hoy,
			Codigo:      emp.Codigo,
			Turno:       ResolverTurno(turnos, hora),
			Estado:      entity.AsistenciaIncompleto,
			HoraEntrada: &hora,
		}
		if err := uc.asistenciaRepo.Create(ctx, a); err != nil {
			return nil, err
		}
		return a, nil
	}
	if a.HoraSalida != nil {
		return nil, domain.ErrAsistenciaCompleta
	}

	a.HoraSalida = &hora
	a.Estado = entity.AsistenciaCompleto
	if a.HoraEntrada != nil {
		h := HorasEntre(*a.HoraEntrada, hora)
		a.HorasDecimal = &h
	}
	if err := uc.asistenciaRepo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// EsTardanza entrada después de las 08:30 (08:30:59 aún es puntual).
func EsTardanza(horaEntrada string) bool {
	hm := horaMinuto(horaEntrada)
	return hm != "" && hm > HoraLimiteEntrada
}

// ResolverTurno turno activo cuya ventana contiene la hora; si ninguno, "Mañana" antes del
// mediodía y "Tarde" después.
func ResolverTurno(turnos []*entity.Turno, hora string) string {
	hm := horaMinuto(hora)
	for _, t := range turnos {
		if t.Activo && hm >= t.HoraInicio && hm <= t.HoraFin {
			return t.Nombre
		}
	}
	if hm < "12:00" {
		return "Mañana"
	}
	return "Tarde"
}

// HorasEntre horas decimales (2 decimales) entre dos horas "HH:MM[:SS]" del mismo día.
func HorasEntre(entrada, salida string) decimal.Decimal {
	e, err1 := parseHora(entrada)
	s, err2 := parseHora(salida)
	if err1 != nil || err2 != nil || s.Before(e) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(s.Sub(e).Hours()).Round(2)
}

func horaMinuto(h string) string {
	if len(h) < 5 {
		return ""
	}
	return h[:5]
}

func parseHora(h string) (time.Time, error) {
	if len(h) == 5 {
		return time.Parse("15:04", h)
	}
	return time.Parse("15:04:05", h)
}

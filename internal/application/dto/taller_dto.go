package dto

import (
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// EmpleadoRequest body para POST/PUT /api/empleados.
type EmpleadoRequest struct {
	Codigo string `json:"codigo" validate:"required,max=20"`
	Nombre string `json:"nombre" validate:"required,max=120"`
	Rol    string `json:"rol" validate:"omitempty,max=40"`
	Activo *bool  `json:"activo"`
}

// EmpleadosResumen conteo de empleados.
type EmpleadosResumen struct {
	TotalActivos   int `json:"total_activos"`
	TotalInactivos int `json:"total_inactivos"`
}

// TipoTrabajoRequest body para POST/PUT /api/tipos-trabajo.
type TipoTrabajoRequest struct {
	Nombre       string          `json:"nombre" validate:"required,max=120"`
	Descripcion  string          `json:"descripcion" validate:"max=120"`
	TarifaActual decimal.Decimal `json:"tarifa_actual"`
	Activo       *bool           `json:"activo"`
}

// TurnoRequest body para POST/PUT /api/turnos.
type TurnoRequest struct {
	Nombre            string `json:"nombre" validate:"required,max=60"`
	HoraInicio        string `json:"hora_inicio" validate:"required,datetime=15:04"`
	HoraFin           string `json:"hora_fin" validate:"required,datetime=15:04"`
	ToleranciaMinutos int    `json:"tolerancia_minutos" validate:"min=0,max=240"`
	Activo            *bool  `json:"activo"`
}

// MarcarAsistenciaRequest body para POST /api/asistencia/marcar.
type MarcarAsistenciaRequest struct {
	Codigo string `json:"codigo" validate:"required"`
}

// AsistenciaStats resumen del día.
type AsistenciaStats struct {
	Presentes  int `json:"presentes"`
	Ausentes   int `json:"ausentes"`
	Tardanzas  int `json:"tardanzas"`
	SinSalida  int `json:"sin_salida"`
}

// AsistenciaDiaResponse GET /api/asistencia.
type AsistenciaDiaResponse struct {
	Fecha     string                      `json:"fecha"`
	Registros []*entity.AsistenciaDetalle `json:"registros"`
	Stats     AsistenciaStats             `json:"stats"`
}

// CreateProduccionRequest body para POST /api/produccion. La tarifa se toma del catálogo.
type CreateProduccionRequest struct {
	EmpleadoID    string          `json:"empleado_id" validate:"required,uuid"`
	TipoTrabajoID string          `json:"tipo_trabajo_id" validate:"required,uuid"`
	Cantidad      decimal.Decimal `json:"cantidad"`
	Fecha         string          `json:"fecha" validate:"omitempty,datetime=2006-01-02"`
}

// CreateMovimientoRequest body para POST /api/movimientos.
type CreateMovimientoRequest struct {
	EmpleadoID string          `json:"empleado_id" validate:"required,uuid"`
	Tipo       string          `json:"tipo" validate:"required,oneof=adelanto descuento ajuste bono"`
	Monto      decimal.Decimal `json:"monto"`
	Signo      string          `json:"signo" validate:"required,oneof=+ -"`
	Fecha      string          `json:"fecha" validate:"omitempty,datetime=2006-01-02"`
	Nota       string          `json:"nota" validate:"max=255"`
}

// UpdateSettingRequest body para PUT /api/configuracion/settings/:clave.
type UpdateSettingRequest struct {
	Valor string `json:"valor"`
}

// SettingResponse setting con el valor ya interpretado según su tipo.
type SettingResponse struct {
	Clave string      `json:"clave"`
	Tipo  string      `json:"tipo"`
	Valor interface{} `json:"valor"`
}

// CicloConfigRequest body para PUT /api/configuracion/ciclo.
type CicloConfigRequest struct {
	Tipo      string `json:"tipo" validate:"required,oneof=semanal quincenal mensual"`
	DiaInicio int    `json:"dia_inicio" validate:"min=0,max=31"`
}

package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")

	ErrEmpleadoInactivo    = errors.New("el empleado está inactivo")
	ErrTipoTrabajoInactivo = errors.New("el tipo de trabajo está inactivo")
	ErrCicloYaCerrado      = errors.New("el empleado ya tiene un ciclo cerrado hoy")
	ErrCicloSinBoleta      = errors.New("el ciclo no tiene boleta")
	ErrBoletaSinPDF        = errors.New("la boleta aún no tiene PDF")
	ErrAsistenciaCompleta  = errors.New("la asistencia del día ya tiene entrada y salida")
	ErrPrecioRequerido     = errors.New("no hay tarifa para la cantidad; ingrese el precio")
)

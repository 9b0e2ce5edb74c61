package entity

import "time"

// Empleado trabajador del taller. Codigo es único y es el que se marca en asistencia.
type Empleado struct {
	ID        string    `json:"id"`
	Codigo    string    `json:"codigo"`
	Nombre    string    `json:"nombre"`
	Rol       string    `json:"rol"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
}

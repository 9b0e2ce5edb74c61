package entity

import "time"

// Tipos de valor de un setting.
const (
	SettingString  = "string"
	SettingBoolean = "boolean"
	SettingNumber  = "number"
	SettingJSON    = "json"
)

// Setting parámetro clave/valor; Valor se guarda como texto y se interpreta según Tipo.
type Setting struct {
	Clave       string    `json:"clave"`
	Valor       string    `json:"valor"`
	Tipo        string    `json:"tipo"`
	Descripcion *string   `json:"descripcion"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Frecuencias de ciclo configurables.
const (
	CicloSemanal   = "semanal"
	CicloQuincenal = "quincenal"
	CicloMensual   = "mensual"
)

// CicloConfig frecuencia de pago vigente.
type CicloConfig struct {
	ID        string `json:"id"`
	Tipo      string `json:"tipo"`
	DiaInicio int    `json:"dia_inicio"`
	Activo    bool   `json:"activo"`
}

package entity

// Turno ventana horaria (HH:MM) con tolerancia de entrada.
type Turno struct {
	ID                string `json:"id"`
	Nombre            string `json:"nombre"`
	HoraInicio        string `json:"hora_inicio"`
	HoraFin           string `json:"hora_fin"`
	ToleranciaMinutos int    `json:"tolerancia_minutos"`
	Activo            bool   `json:"activo"`
}

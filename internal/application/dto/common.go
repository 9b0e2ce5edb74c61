package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=0,max=100"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SimpleError cuerpo de error de las rutas de pagos y cron: {"error": "..."}.
type SimpleError struct {
	Error string `json:"error"`
}

// EstadoRequest body para activar/desactivar un registro.
type EstadoRequest struct {
	Activo *bool `json:"activo" validate:"required"`
}

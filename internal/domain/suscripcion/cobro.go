// Package suscripcion fechas de cobro de las ventas de streaming.
package suscripcion

import (
	"time"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/pkg/fechas"
)

// ProximoCobro MONTHLY +1 mes, YEARLY +1 año (ajustados a fin de mes), CUSTOM_RANGE la fecha fin;
// nil en cualquier otro caso.
func ProximoCobro(desde time.Time, plan string, fin *time.Time) *time.Time {
	var next time.Time
	switch plan {
	case entity.PlanMonthly:
		next = fechas.SumarMeses(fechas.Dia(desde), 1)
	case entity.PlanYearly:
		next = fechas.SumarAnios(fechas.Dia(desde), 1)
	case entity.PlanCustomRange:
		if fin == nil {
			return nil
		}
		next = fechas.Dia(*fin)
	default:
		return nil
	}
	return &next
}

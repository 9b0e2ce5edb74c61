package suscripcion_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/suscripcion"
)

func dia(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func TestProximoCobro(t *testing.T) {
	fin := dia(2026, 5, 20)
	casos := []struct {
		nombre string
		desde  time.Time
		plan   string
		fin    *time.Time
		want   *time.Time
	}{
		{"mensual", dia(2026, 3, 15), entity.PlanMonthly, nil, ptr(dia(2026, 4, 15))},
		{"mensual fin de mes", dia(2026, 1, 31), entity.PlanMonthly, nil, ptr(dia(2026, 2, 28))},
		{"anual", dia(2026, 3, 15), entity.PlanYearly, nil, ptr(dia(2027, 3, 15))},
		{"rango usa fecha fin", dia(2026, 3, 15), entity.PlanCustomRange, &fin, ptr(fin)},
		{"rango sin fin", dia(2026, 3, 15), entity.PlanCustomRange, nil, nil},
		{"plan desconocido", dia(2026, 3, 15), "WEEKLY", nil, nil},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			got := suscripcion.ProximoCobro(tc.desde, tc.plan, tc.fin)
			if tc.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tc.want, *got)
		})
	}
}

func ptr(t time.Time) *time.Time { return &t }

package cron_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/infrastructure/cron"
)

func TestAddJob_IntervaloInvalido(t *testing.T) {
	s := cron.NewScheduler(zerolog.Nop())
	s.AddJob("cero", 0, func(context.Context) error { return nil })
	s.AddJob("negativo", -time.Second, func(context.Context) error { return nil })
	assert.Equal(t, 0, s.Len())
}

func TestRunOnce_EjecutaTodosAunqueUnoFalle(t *testing.T) {
	var a, b atomic.Int32
	s := cron.NewScheduler(zerolog.Nop())
	s.AddJob("a", time.Hour, func(context.Context) error { a.Add(1); return errors.New("falla") })
	s.AddJob("b", time.Hour, func(context.Context) error { b.Add(1); return nil })

	s.RunOnce(context.Background())
	assert.Equal(t, int32(1), a.Load())
	assert.Equal(t, int32(1), b.Load())
}

func TestStart_CorreAlIniciarYStopEspera(t *testing.T) {
	var n atomic.Int32
	s := cron.NewScheduler(zerolog.Nop())
	s.AddJob("reminders", time.Hour, func(context.Context) error { n.Add(1); return nil })

	s.Start()
	assert.Eventually(t, func() bool { return n.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
	s.Stop()
	assert.Equal(t, int32(1), n.Load())
}

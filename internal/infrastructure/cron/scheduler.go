// Package cron planificador por intervalos para trabajos periódicos (recordatorios de cobro).
package cron

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Job trabajo programado.
type Job struct {
	Name     string
	Interval time.Duration
	Fn       func(ctx context.Context) error
}

// Scheduler ejecuta cada trabajo al iniciar y luego en cada intervalo.
type Scheduler struct {
	jobs   []Job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
	log    zerolog.Logger
}

// NewScheduler crea el planificador.
func NewScheduler(log zerolog.Logger) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{ctx: ctx, cancel: cancel, log: log}
}

// AddJob registra un trabajo. Un intervalo <= 0 se ignora.
func (s *Scheduler) AddJob(name string, interval time.Duration, fn func(ctx context.Context) error) {
	if interval <= 0 {
		s.log.Warn().Str("job", name).Msg("cron: intervalo inválido, trabajo no registrado")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, Job{Name: name, Interval: interval, Fn: fn})
	s.log.Info().Str("job", name).Dur("intervalo", interval).Msg("cron: trabajo registrado")
}

// Len cantidad de trabajos registrados.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

// Start lanza una goroutine por trabajo.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.runJob(job)
	}
	s.log.Info().Int("trabajos", len(s.jobs)).Msg("cron: planificador iniciado")
}

// Stop cancela los trabajos y espera a que terminen.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	s.log.Info().Msg("cron: planificador detenido")
}

func (s *Scheduler) runJob(job Job) {
	defer s.wg.Done()

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	s.execute(s.ctx, job)
	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.execute(s.ctx, job)
		}
	}
}

func (s *Scheduler) execute(ctx context.Context, job Job) {
	start := time.Now()
	if err := job.Fn(ctx); err != nil {
		s.log.Error().Err(err).Str("job", job.Name).Dur("duracion", time.Since(start)).Msg("cron: trabajo fallido")
		return
	}
	s.log.Debug().Str("job", job.Name).Dur("duracion", time.Since(start)).Msg("cron: trabajo completado")
}

// RunOnce ejecuta todos los trabajos una vez, en orden (tests y disparo manual).
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	jobs := append([]Job(nil), s.jobs...)
	s.mu.Unlock()

	for _, job := range jobs {
		s.execute(ctx, job)
	}
}

package queue

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/nomina"
)

var _ nomina.JobQueue = (*MemoryQueue)(nil)

// MemoryQueue canal con buffer y un worker. Los trabajos pendientes se pierden al reiniciar.
type MemoryQueue struct {
	jobs    chan Job
	handler Handler
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewMemoryQueue crea la cola con capacidad size.
func NewMemoryQueue(size int, handler Handler, log zerolog.Logger) *MemoryQueue {
	if size <= 0 {
		size = 100
	}
	return &MemoryQueue{jobs: make(chan Job, size), handler: handler, log: log}
}

// Enqueue no bloquea: si el buffer está lleno descarta el trabajo.
func (q *MemoryQueue) Enqueue(_ context.Context, cicloID string) error {
	select {
	case q.jobs <- nuevoJob(cicloID):
		return nil
	default:
		return ErrColaLlena
	}
}

// Start lanza el worker hasta que ctx se cancele.
func (q *MemoryQueue) Start(ctx context.Context) {
	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case job := <-q.jobs:
				run(ctx, q.handler, job, q.log)
			}
		}
	}()
	q.log.Info().Int("capacidad", cap(q.jobs)).Msg("cola de PDFs en memoria iniciada")
}

// Wait espera a que el worker termine (después de cancelar el ctx de Start).
func (q *MemoryQueue) Wait() { q.wg.Wait() }

func run(ctx context.Context, h Handler, job Job, log zerolog.Logger) {
	start := time.Now()
	jctx, cancel := context.WithTimeout(ctx, timeoutJob)
	defer cancel()

	if err := h(jctx, job.CicloID); err != nil {
		log.Error().Err(err).Str("job_id", job.ID).Str("ciclo_id", job.CicloID).
			Dur("duracion", time.Since(start)).Msg("trabajo de PDF fallido")
		return
	}
	log.Debug().Str("job_id", job.ID).Str("ciclo_id", job.CicloID).
		Dur("duracion", time.Since(start)).Msg("trabajo de PDF completado")
}

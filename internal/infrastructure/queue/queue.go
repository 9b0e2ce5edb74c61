// Package queue colas de trabajos de PDF de boletas. Ambas implementaciones entregan el id del
// ciclo a un único handler; un trabajo fallido se registra y no se reintenta.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrColaLlena la cola en memoria no acepta más trabajos.
var ErrColaLlena = errors.New("cola de trabajos llena")

// Handler procesa un trabajo (genera el PDF de la boleta del ciclo).
type Handler func(ctx context.Context, cicloID string) error

// Job trabajo encolado.
type Job struct {
	ID         string    `json:"id"`
	CicloID    string    `json:"ciclo_id"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}

func nuevoJob(cicloID string) Job {
	return Job{ID: uuid.New().String(), CicloID: cicloID, EnqueuedAt: time.Now().UTC()}
}

// timeoutJob tiempo máximo de un trabajo.
const timeoutJob = 2 * time.Minute

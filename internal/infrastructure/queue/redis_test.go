package queue_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/infrastructure/queue"
)

// ──────────────────────────────────────────────────────────────────────────────
// RedisQueue sobre miniredis
// ──────────────────────────────────────────────────────────────────────────────

func TestRedisQueue_EncolaJSON(t *testing.T) {
	mr := miniredis.RunT(t)
	q := queue.NewRedisQueue(mr.Addr(), "", 0, func(context.Context, string) error { return nil }, zerolog.Nop())
	defer q.Close()
	ctx := context.Background()

	require.NoError(t, q.Ping(ctx))
	require.NoError(t, q.Enqueue(ctx, "ciclo-1"))

	items, err := mr.List(queue.KeyBoletaPDF)
	require.NoError(t, err)
	require.Len(t, items, 1)

	var job queue.Job
	require.NoError(t, json.Unmarshal([]byte(items[0]), &job))
	assert.Equal(t, "ciclo-1", job.CicloID)
	assert.NotEmpty(t, job.ID)
	assert.False(t, job.EnqueuedAt.IsZero())
}

func TestRedisQueue_WorkerEnOrdenYSaltaIlegibles(t *testing.T) {
	mr := miniredis.RunT(t)
	var (
		mu     sync.Mutex
		vistos []string
		done   = make(chan struct{}, 2)
	)
	h := func(_ context.Context, cicloID string) error {
		mu.Lock()
		vistos = append(vistos, cicloID)
		mu.Unlock()
		done <- struct{}{}
		return nil
	}
	q := queue.NewRedisQueue(mr.Addr(), "", 0, h, zerolog.Nop())
	defer q.Close()
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, q.Enqueue(ctx, "c1"))
	_, err := mr.Lpush(queue.KeyBoletaPDF, "no-es-json")
	require.NoError(t, err)
	require.NoError(t, q.Enqueue(ctx, "c2"))
	q.Start(ctx)

	for i := 0; i < 2; i++ {
		select {
		case <-done:
		case <-time.After(3 * time.Second):
			t.Fatal("el worker no procesó los trabajos")
		}
	}
	cancel()
	q.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"c1", "c2"}, vistos)
	items, err := mr.List(queue.KeyBoletaPDF)
	if err == nil {
		assert.Empty(t, items)
	}
}

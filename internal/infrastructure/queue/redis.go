package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/nomina"
)

// KeyBoletaPDF lista de Redis con los trabajos pendientes.
const KeyBoletaPDF = "taller:jobs:boleta_pdf"

var _ nomina.JobQueue = (*RedisQueue)(nil)

// RedisQueue cola sobre una lista de Redis (LPUSH / BRPOP); sobrevive a reinicios del proceso.
type RedisQueue struct {
	client  *redis.Client
	key     string
	handler Handler
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewRedisQueue conecta a Redis. No verifica la conexión: usar Ping.
func NewRedisQueue(addr, password string, db int, handler Handler, log zerolog.Logger) *RedisQueue {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisQueue{client: client, key: KeyBoletaPDF, handler: handler, log: log}
}

func (q *RedisQueue) Ping(ctx context.Context) error {
	return q.client.Ping(ctx).Err()
}

func (q *RedisQueue) Close() error {
	return q.client.Close()
}

func (q *RedisQueue) Enqueue(ctx context.Context, cicloID string) error {
	payload, err := json.Marshal(nuevoJob(cicloID))
	if err != nil {
		return err
	}
	if err := q.client.LPush(ctx, q.key, payload).Err(); err != nil {
		return fmt.Errorf("redis: encolar: %w", err)
	}
	return nil
}

// Start lanza el worker; BRPOP con timeout corto para poder salir al cancelar ctx.
func (q *RedisQueue) Start(ctx context.Context) {
	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		for ctx.Err() == nil {
			res, err := q.client.BRPop(ctx, 5*time.Second, q.key).Result()
			if errors.Is(err, redis.Nil) {
				continue
			}
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				q.log.Error().Err(err).Msg("redis: leer cola de PDFs")
				time.Sleep(time.Second)
				continue
			}
			// res = [key, valor]
			var job Job
			if err := json.Unmarshal([]byte(res[1]), &job); err != nil {
				q.log.Error().Err(err).Str("payload", res[1]).Msg("trabajo de PDF ilegible")
				continue
			}
			run(ctx, q.handler, job, q.log)
		}
	}()
	q.log.Info().Str("key", q.key).Msg("cola de PDFs en Redis iniciada")
}

func (q *RedisQueue) Wait() { q.wg.Wait() }

// Command depqueue-demo builds a small dependency graph, validates it,
// and runs a handful of workers concurrently draining it via
// golang.org/x/sync/errgroup, logging progress with zerolog. It exists
// to exercise the ambient logging/worker-pool stack around depqueue's
// core, which — per spec.md's explicit non-goals — never imports a
// concrete logging library or binds to a particular work executor
// itself.
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/taskgraph/depqueue"
)

// zerologAdapter satisfies monitor.Logger by forwarding events to a
// zerolog.Logger, grounded in joeycumines-go-utilpkg/logiface-zerolog's
// adapter-over-a-concrete-backend pattern.
type zerologAdapter struct {
	log zerolog.Logger
}

func (a zerologAdapter) Event(name string, fields map[string]any) {
	ev := a.log.Debug().Str("event", name)
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(name)
}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	q := depqueue.New(depqueue.WithLogger(zerologAdapter{log: logger}))
	logger.Info().Str("queue_id", q.ID().String()).Msg("queue created")

	mustEnqueue(q, "fetch-config", nil, nil, nil)
	mustEnqueue(q, "fetch-secrets", nil, nil, nil)
	mustEnqueue(q, "connect-db", nil, nil, []string{"fetch-config", "fetch-secrets"})
	mustEnqueue(q, "run-migrations", nil, nil, []string{"connect-db"})
	mustEnqueue(q, "start-server", nil, nil, []string{"run-migrations"})

	if errs, err := q.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("validate failed")
	} else if len(errs) > 0 {
		logger.Fatal().Err(errs).Msg("dependency graph invalid")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	const workerCount = 3
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < workerCount; i++ {
		workerID := i
		g.Go(func() error {
			for {
				item, done, err := q.Dequeue(gctx, nil)
				if err != nil {
					if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
						return nil
					}
					return err
				}
				if done {
					return nil
				}
				logger.Info().Int("worker", workerID).Str("item", item.Name()).Msg("processing")
				time.Sleep(10 * time.Millisecond)
				if err := q.Complete(item); err != nil {
					return err
				}
			}
		})
	}

	if err := g.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("worker failed")
	}
	logger.Info().Msg("all work complete")
}

func mustEnqueue(q *depqueue.Queue, name string, value any, provides, requires []string) {
	if _, err := q.Enqueue(name, value, provides, requires); err != nil {
		panic(err)
	}
}

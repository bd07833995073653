// Package cli contains the wiring behind the notatimer commands: runner,
// store, metrics, signal handling, and the control server. The cobra layer
// stays thin and delegates here.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	notatimer "github.com/kevin-j-channon/not-a-timer"
	controlhttp "github.com/kevin-j-channon/not-a-timer/internal/adapters/http"
	"github.com/kevin-j-channon/not-a-timer/internal/adapters/memory"
	"github.com/kevin-j-channon/not-a-timer/internal/adapters/redis"
	"github.com/kevin-j-channon/not-a-timer/internal/config"
	"github.com/kevin-j-channon/not-a-timer/pkg/observability"
	"github.com/kevin-j-channon/not-a-timer/pkg/ports"
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	Count       uint64 // countdown start value
	Detach      bool   // run on a background goroutine
	ControlAddr string // overrides config when non-empty
	RunID       string // run record ID; generated when empty
}

// Session owns everything a single run needs.
type Session struct {
	Runner  *notatimer.Runner
	Store   ports.RunStore
	Metrics *observability.Metrics
	Logger  *slog.Logger

	registry   *prometheus.Registry
	storeClose func() error
}

// NewSession builds a session from configuration.
func NewSession(cfg config.Config, logger *slog.Logger) (*Session, error) {
	s := &Session{
		Logger:   logger,
		Runner:   notatimer.NewRunner(notatimer.WithLogger(logger)),
		registry: prometheus.NewRegistry(),
	}
	s.Metrics = observability.NewMetrics(s.registry)

	switch cfg.Store.Backend {
	case config.BackendRedis:
		opts, err := cfg.Store.RedisOptions()
		if err != nil {
			return nil, err
		}
		storeOpts := []redis.Option{}
		if opts.Prefix != "" {
			storeOpts = append(storeOpts, redis.WithPrefix(opts.Prefix))
		}
		store := redis.New(opts.Addr, opts.Password, opts.DB, storeOpts...)
		s.Store = store
		s.storeClose = store.Close
	default:
		s.Store = memory.NewStore()
	}

	return s, nil
}

// Close releases backend resources.
func (s *Session) Close() error {
	if s.storeClose != nil {
		return s.storeClose()
	}
	return nil
}

// Run executes the countdown workload described by opts.
//
// The step function decrements the counter and returns count > 0; middleware
// layers iteration counting for metrics and the run record on top of it.
func (s *Session) Run(opts RunOptions) error {
	sm := notatimer.NewSignalManager()
	defer sm.Stop()
	sm.Bind(s.Runner)

	var iterations atomic.Uint64
	count := int64(opts.Count)
	step := notatimer.ChainSteps(func() bool {
		count--
		return count > 0
	},
		notatimer.CountSteps(&iterations),
		s.Metrics.InstrumentStep(),
	)

	var srv *http.Server
	if opts.ControlAddr != "" {
		handler := controlhttp.NewHandler(s.Runner, s.Store, promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
		srv = &http.Server{Addr: opts.ControlAddr, Handler: handler}
		go func() {
			s.Logger.Info("control server listening", "addr", opts.ControlAddr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				s.Logger.Error("control server failed", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	startedAt := time.Now().UTC()
	s.Metrics.SetRunning(true)

	var runErr error
	if opts.Detach {
		if err := s.Runner.RunAsync(step); err != nil {
			s.Metrics.SetRunning(false)
			return err
		}
		s.Logger.Info("loop detached", "count", opts.Count)
		runErr = s.Runner.Wait()
	} else {
		if err := s.Runner.Run(step); err != nil {
			s.Metrics.SetRunning(false)
			return err
		}
	}
	s.Metrics.SetRunning(false)

	record := ports.RunRecord{
		ID:         opts.RunID,
		StartedAt:  startedAt,
		FinishedAt: time.Now().UTC(),
		Iterations: iterations.Load(),
		Outcome:    outcome(count, runErr),
	}
	if record.ID == "" {
		record.ID = fmt.Sprintf("run-%d", startedAt.UnixNano())
	}
	if runErr != nil {
		record.Error = runErr.Error()
	}
	s.Metrics.ObserveRun(record.Outcome)

	saveCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Store.Save(saveCtx, record); err != nil {
		s.Logger.Warn("failed to save run record", "error", err)
	}

	s.Logger.Info("run finished",
		"id", record.ID,
		"outcome", record.Outcome,
		"iterations", record.Iterations,
		"duration", record.Duration(),
		"remaining", count,
	)

	return runErr
}

func outcome(remaining int64, runErr error) string {
	switch {
	case runErr != nil:
		return ports.OutcomeFailed
	case remaining > 0:
		return ports.OutcomeStopped
	default:
		return ports.OutcomeCompleted
	}
}

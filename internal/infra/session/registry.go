// Package session keeps guest carts in memory, one cart store per session.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"platter/config"
	"platter/internal/domain/cart"
	"platter/internal/domain/repository"
	"platter/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type entry struct {
	store      *cart.Store
	lastAccess time.Time
}

// Registry implements repository.CartRepository in process memory.
type Registry struct {
	mu       sync.Mutex
	carts    map[uuid.UUID]*entry
	maxLines int
	idle     time.Duration
	now      func() time.Time
	logger   *slog.Logger
}

// Params defines the parameters required for the cart registry
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the registry and runs its idle sweeper for the app lifetime.
func New(params Params) repository.CartRepository {
	cfg := params.Config.Session
	registry := NewRegistry(cfg.MaxLines, cfg.IdleTimeout, params.Logger)

	sweepCtx, cancel := context.WithCancel(context.Background())
	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go registry.run(sweepCtx, cfg.SweepInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()

			return nil
		},
	})

	return registry
}

// NewRegistry creates an empty registry. A zero idle timeout disables sweeping.
func NewRegistry(maxLines int, idle time.Duration, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}

	return &Registry{
		carts:    make(map[uuid.UUID]*entry),
		maxLines: maxLines,
		idle:     idle,
		now:      time.Now,
		logger:   logger,
	}
}

// GetOrCreate returns the session's store, creating an empty one if needed.
func (r *Registry) GetOrCreate(_ context.Context, sessionID uuid.UUID) *cart.Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.carts[sessionID]
	if !ok {
		e = &entry{store: cart.NewStore(cart.WithMaxLines(r.maxLines))}
		r.carts[sessionID] = e
	}
	e.lastAccess = r.now()

	return e.store
}

// Find returns the session's store if it exists.
func (r *Registry) Find(_ context.Context, sessionID uuid.UUID) (*cart.Store, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.carts[sessionID]
	if !ok {
		return nil, false
	}
	e.lastAccess = r.now()

	return e.store, true
}

// Delete drops the session's store.
func (r *Registry) Delete(_ context.Context, sessionID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, sessionID)
}

// Len returns the number of live carts.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.carts)
}

// Sweep drops carts idle for longer than the idle timeout and returns how many were dropped.
func (r *Registry) Sweep() int {
	if r.idle <= 0 {
		return 0
	}

	cutoff := r.now().Add(-r.idle)

	r.mu.Lock()
	defer r.mu.Unlock()

	dropped := 0
	for id, e := range r.carts {
		if e.lastAccess.Before(cutoff) {
			delete(r.carts, id)
			dropped++
		}
	}

	return dropped
}

func (r *Registry) run(ctx context.Context, interval time.Duration) {
	if interval <= 0 || r.idle <= 0 {
		return
	}

	r.logger.Info("Cart sweeper started",
		slog.String("idle_timeout", util.FormatDuration(r.idle)),
		slog.String("interval", util.FormatDuration(interval)),
	)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if dropped := r.Sweep(); dropped > 0 {
				r.logger.Debug("Idle carts swept",
					slog.Int("dropped", dropped),
					slog.Int("remaining", r.Len()),
				)
			}
		}
	}
}

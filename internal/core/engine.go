package core

import (
	"context"
	"log"
	"sync"
	"time"
)

// Engine drives the refresh loop for the dashboard's single account: fetch
// the snapshot on a ticker, run it through the reconcile hook, and hand the
// result to the observer. A failed fetch becomes an ERROR snapshot so the
// loop never dies on a flaky network.
type Engine struct {
	provider DataProvider
	account  AccountConfig
	interval time.Duration
	timeout  time.Duration

	mu        sync.RWMutex
	state     DashboardState
	reconcile func(context.Context, DashboardState) DashboardState
	onUpdate  func(DashboardState)
}

func NewEngine(provider DataProvider, account AccountConfig, interval time.Duration) *Engine {
	return &Engine{
		provider: provider,
		account:  account,
		interval: interval,
		timeout:  10 * time.Second,
	}
}

// SetReconciler installs a hook run on every fetched snapshot before it is
// stored or published. The dashboard uses it to persist fetched days and to
// substitute stored history when the API comes back empty.
func (e *Engine) SetReconciler(fn func(context.Context, DashboardState) DashboardState) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reconcile = fn
}

func (e *Engine) OnUpdate(fn func(DashboardState)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onUpdate = fn
}

// State returns the most recent snapshot.
func (e *Engine) State() DashboardState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

func (e *Engine) Refresh(ctx context.Context) {
	fetchCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	state, err := e.provider.Fetch(fetchCtx, e.account)
	if err != nil {
		state = DashboardState{
			ProviderID: e.provider.ID(),
			AccountID:  e.account.ID,
			Timestamp:  time.Now(),
			Status:     StatusError,
			Message:    err.Error(),
		}
	}

	e.mu.RLock()
	reconcile := e.reconcile
	e.mu.RUnlock()
	if reconcile != nil {
		state = reconcile(ctx, state)
	}

	e.mu.Lock()
	e.state = state
	fn := e.onUpdate
	e.mu.Unlock()

	if fn != nil {
		fn(state)
	}
}

func (e *Engine) Run(ctx context.Context) {
	e.Refresh(ctx)

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("engine: context cancelled, stopping refresh loop")
			return
		case <-ticker.C:
			e.Refresh(ctx)
		}
	}
}

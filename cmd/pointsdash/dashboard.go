package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/Propel-2-Excel/point-system-frontend/internal/config"
	"github.com/Propel-2-Excel/point-system-frontend/internal/core"
	"github.com/Propel-2-Excel/point-system-frontend/internal/history"
	"github.com/Propel-2-Excel/point-system-frontend/internal/providers/propel"
	"github.com/Propel-2-Excel/point-system-frontend/internal/providers/snapshotfile"
	"github.com/Propel-2-Excel/point-system-frontend/internal/series"
	"github.com/Propel-2-Excel/point-system-frontend/internal/tui"
)

func runDashboard(cfg config.Config) {
	account := buildAccount(cfg)
	interval := time.Duration(cfg.UI.RefreshIntervalSeconds) * time.Second

	engine := core.NewEngine(buildProvider(cfg), account, interval)

	var store *history.Store
	if cfg.History {
		s, err := history.OpenStore(config.HistoryPath())
		if err != nil {
			log.Printf("history store unavailable: %v", err)
		} else {
			store = s
			defer store.Close()
		}
	}
	engine.SetReconciler(func(ctx context.Context, state core.DashboardState) core.DashboardState {
		return reconcileHistory(ctx, store, state)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	model := tui.NewModel()
	model.SetOnRefresh(func() {
		go engine.Refresh(ctx)
	})

	program := tea.NewProgram(model, tea.WithAltScreen())

	engine.OnUpdate(func(state core.DashboardState) {
		program.Send(tui.StateMsg(state))
	})

	go engine.Run(ctx)

	if cfg.SnapshotPath != "" {
		go watchSnapshotFile(ctx, cfg.SnapshotPath, func() {
			engine.Refresh(ctx)
		})
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
		program.Quit()
	}()

	if _, err := program.Run(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("TUI error: %v", err)
	}
}

// runEngineDashboard is the bare loop used by the demo command: no history
// store, no snapshot watching, just engine to program.
func runEngineDashboard(provider core.DataProvider, account core.AccountConfig) {
	engine := core.NewEngine(provider, account, 30*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	model := tui.NewModel()
	model.SetOnRefresh(func() {
		go engine.Refresh(ctx)
	})

	program := tea.NewProgram(model, tea.WithAltScreen())
	engine.OnUpdate(func(state core.DashboardState) {
		program.Send(tui.StateMsg(state))
	})
	go engine.Run(ctx)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
		program.Quit()
	}()

	if _, err := program.Run(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("TUI error: %v", err)
	}
}

// buildProvider picks the data source: the live API by default, the local
// snapshot file when one is configured.
func buildProvider(cfg config.Config) core.DataProvider {
	if cfg.SnapshotPath != "" {
		return snapshotfile.New()
	}
	return propel.New()
}

func buildAccount(cfg config.Config) core.AccountConfig {
	account := core.AccountConfig{
		ID:       cfg.API.AccountID,
		Provider: "propel",
		BaseURL:  cfg.API.BaseURL,
		TokenEnv: cfg.API.TokenEnv,
		Token:    config.ResolveToken(cfg.API.AccountID, os.Getenv(cfg.API.TokenEnv), cfg.API.BaseURL),
	}
	if cfg.SnapshotPath != "" {
		account.Provider = "snapshot-file"
		account.SnapshotPath = cfg.SnapshotPath
	}
	return account
}

// reconcileHistory records fetched days into the local store, and when a
// fetch came back with no chartable data at all it substitutes the stored
// trailing window so the chart survives a degraded API.
func reconcileHistory(ctx context.Context, store *history.Store, state core.DashboardState) core.DashboardState {
	if store == nil {
		return state
	}

	if state.HasSeriesData() {
		rows := historyRows(state)
		if err := store.RecordDays(ctx, state.AccountID, rows); err != nil {
			log.Printf("history: recording days: %v", err)
		}
		return state
	}

	if state.Status != core.StatusOK {
		return state
	}

	rows, err := store.TimelineSince(ctx, state.AccountID, 30)
	if err != nil {
		log.Printf("history: loading fallback timeline: %v", err)
		return state
	}
	state.Timeline = rows
	return state
}

// historyRows flattens whichever series source the state carries into
// per-day rows for the store.
func historyRows(state core.DashboardState) []core.TimelineRow {
	if len(state.Timeline) > 0 {
		return state.Timeline
	}
	points := series.FromState(state)
	rows := make([]core.TimelineRow, 0, len(points))
	for _, p := range points {
		rows = append(rows, core.TimelineRow{
			Date:             p.Date,
			PointsEarned:     p.Daily,
			PointsRedeemed:   p.Redeemed,
			RedemptionsCount: p.Redemptions,
		})
	}
	return rows
}

// watchSnapshotFile re-fetches when the snapshot file changes on disk. The
// parent directory is watched because editors replace files instead of
// writing in place.
func watchSnapshotFile(ctx context.Context, path string, onChange func()) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("snapshot watch: %v", err)
		return
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		log.Printf("snapshot watch: %v", err)
		return
	}

	target := filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				log.Printf("snapshot watch: %s changed, refreshing", ev.Name)
				onChange()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("snapshot watch: %v", err)
		}
	}
}

// Package app wires the services behind the TUI: the git client, the file
// watch pipeline, and the refresh workers. Services publish results to the
// event broker; the TUI model is the only consumer and the only place that
// mutates UI state.
package app

import (
	"fmt"
	"log/slog"

	"github.com/kestrelworks/watchhound/internal/config"
	"github.com/kestrelworks/watchhound/internal/git"
	"github.com/kestrelworks/watchhound/internal/tui/events"
	"github.com/kestrelworks/watchhound/internal/watch"
)

// App holds all the core services and business logic
type App struct {
	Root string

	// Core services
	Git      *git.Client
	Source   *watch.Source
	Debounce *watch.Debouncer
	Refresh  *RefreshService

	// Event system
	EventBroker *events.Broker

	Log *slog.Logger
}

// New creates an app with all services initialized and the watch pipeline
// running: change signals feed the debouncer, which publishes a refresh-due
// event once the quiet window elapses. A watch that cannot be established
// is a fatal error, surfaced here before any UI is drawn.
func New(root string, cfg *config.Config, eventBroker *events.Broker, log *slog.Logger) (*App, error) {
	source, err := watch.NewSource(root, cfg.IgnoreDirs, log)
	if err != nil {
		return nil, fmt.Errorf("establish watch: %w", err)
	}

	a := &App{
		Root:        root,
		Git:         git.NewClient(root, git.NewExecRunner(cfg.GitBin)),
		Source:      source,
		EventBroker: eventBroker,
		Log:         log,
	}
	a.Refresh = NewRefreshService(a.Git, eventBroker, log)
	a.Debounce = watch.NewDebouncer(cfg.Debounce(), func() {
		eventBroker.Publish(events.Event{Type: events.RefreshDueEvent})
	})

	go a.pump()
	return a, nil
}

// pump forwards raw change signals into the debouncer. It exits when the
// source closes its channel.
func (a *App) pump() {
	for range a.Source.Signals() {
		a.Debounce.Signal()
	}
}

// Shutdown cancels all background work. It does not wait for in-flight
// refreshes; a cancelled refresh publishes an error snapshot nobody reads.
func (a *App) Shutdown() {
	a.Debounce.Stop()
	a.Refresh.Cancel()
	if err := a.Source.Close(); err != nil {
		a.Log.Warn("close watch source", "error", err)
	}
}

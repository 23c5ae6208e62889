package app

import (
	"context"
	"log/slog"
	"sync"

	"github.com/kestrelworks/watchhound/internal/git"
	"github.com/kestrelworks/watchhound/internal/tui/events"
)

// RefreshService runs git commands off the UI loop and reports completions
// as events. Snapshots carry a sequence number assigned at completion, so
// when two refreshes race (a manual refresh against a debounce-triggered
// one) the later-completing result wins and a stale straggler is ignored.
type RefreshService struct {
	git    *git.Client
	broker *events.Broker
	log    *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu  sync.Mutex
	seq uint64
}

// NewRefreshService creates a refresh service bound to one git client.
func NewRefreshService(client *git.Client, broker *events.Broker, log *slog.Logger) *RefreshService {
	ctx, cancel := context.WithCancel(context.Background())
	return &RefreshService{
		git:    client,
		broker: broker,
		log:    log,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Refresh assembles a snapshot in the background and publishes it. Multiple
// concurrent calls are allowed; each publishes its own snapshot event.
func (s *RefreshService) Refresh() {
	s.broker.Publish(events.Event{Type: events.RefreshStartedEvent})
	go func() {
		snap := s.git.TakeSnapshot(s.ctx)
		if snap.Err != nil {
			s.log.Warn("diff stat failed", "error", snap.Err)
		}

		s.mu.Lock()
		s.seq++
		seq := s.seq
		s.mu.Unlock()

		s.broker.Publish(events.Event{
			Type:    events.SnapshotEvent,
			Payload: events.SnapshotPayload{Snapshot: snap, Seq: seq},
		})
	}()
}

// LoadDiff fetches the diff text for one file in the background. Only the
// currently selected file is ever requested; the model drops the result if
// the selection has moved on by the time it arrives.
func (s *RefreshService) LoadDiff(path string) {
	go func() {
		text, err := s.git.Diff(s.ctx, path)
		if err != nil {
			s.log.Warn("diff failed", "path", path, "error", err)
		}
		s.broker.Publish(events.Event{
			Type:    events.DiffEvent,
			Payload: events.DiffPayload{Path: path, Text: text, Err: err},
		})
	}()
}

// Cancel aborts outstanding git commands. Used on quit; nothing waits for
// the aborted work.
func (s *RefreshService) Cancel() {
	s.cancel()
}

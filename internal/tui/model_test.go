package tui

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/kestrelworks/watchhound/internal/app"
	"github.com/kestrelworks/watchhound/internal/git"
	"github.com/kestrelworks/watchhound/internal/tui/events"
	"github.com/kestrelworks/watchhound/internal/watch"
)

// quietRunner satisfies git.Runner with empty output for every command.
type quietRunner struct{}

func (quietRunner) Run(context.Context, string, ...string) (string, error) {
	return "", nil
}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	broker := events.NewBroker()
	log := slog.New(slog.DiscardHandler)
	client := git.NewClient(t.TempDir(), quietRunner{})
	a := &app.App{
		EventBroker: broker,
		Refresh:     app.NewRefreshService(client, broker, log),
		Debounce:    watch.NewDebouncer(time.Hour, func() {}),
		Log:         log,
	}
	return New(a)
}

func snapshotEvent(seq uint64, paths ...string) events.Event {
	files := make([]git.ChangedFile, len(paths))
	for i, p := range paths {
		files[i] = git.ChangedFile{Path: p, StatLine: p + " | 1 +"}
	}
	return events.Event{
		Type: events.SnapshotEvent,
		Payload: events.SnapshotPayload{
			Snapshot: git.Snapshot{Files: files, Taken: time.Now()},
			Seq:      seq,
		},
	}
}

func TestSnapshotSelectsFirstFile(t *testing.T) {
	m := newTestModel(t)

	m.handleEvent(snapshotEvent(1, "a.txt", "b.txt"))

	path, ok := m.nav.Selected()
	if !ok || path != "a.txt" {
		t.Fatalf("selected = %q, %v; want a.txt", path, ok)
	}
	if m.nav.Count() != 2 {
		t.Fatalf("count = %d, want 2", m.nav.Count())
	}
}

func TestStaleSnapshotDropped(t *testing.T) {
	m := newTestModel(t)

	m.handleEvent(snapshotEvent(2, "a.txt"))
	m.handleEvent(snapshotEvent(1, "b.txt", "c.txt"))

	path, _ := m.nav.Selected()
	if path != "a.txt" {
		t.Fatalf("selected = %q, want a.txt (older snapshot must not apply)", path)
	}
	if m.nav.Count() != 1 {
		t.Fatalf("count = %d, want 1", m.nav.Count())
	}
	if m.lastSeq != 2 {
		t.Fatalf("lastSeq = %d, want 2", m.lastSeq)
	}
}

func TestReorderFollowsSelectedPath(t *testing.T) {
	m := newTestModel(t)

	m.handleEvent(snapshotEvent(1, "a.txt", "b.txt", "c.txt"))
	if !m.nav.Next() {
		t.Fatal("Next did not move")
	}

	m.handleEvent(snapshotEvent(2, "b.txt", "a.txt"))

	path, _ := m.nav.Selected()
	if path != "b.txt" {
		t.Fatalf("selected = %q, want b.txt", path)
	}
	if m.nav.Index() != 0 {
		t.Fatalf("index = %d, want 0", m.nav.Index())
	}
}

func TestSnapshotErrorKeepsFileList(t *testing.T) {
	m := newTestModel(t)

	m.handleEvent(snapshotEvent(1, "a.txt", "b.txt"))
	m.handleEvent(events.Event{
		Type: events.SnapshotEvent,
		Payload: events.SnapshotPayload{
			Snapshot: git.Snapshot{Err: errors.New("index.lock held"), Taken: time.Now()},
			Seq:      2,
		},
	})

	path, _ := m.nav.Selected()
	if path != "a.txt" {
		t.Fatalf("selected = %q, want a.txt after failed refresh", path)
	}
	if m.lastSeq != 2 {
		t.Fatalf("lastSeq = %d, want 2", m.lastSeq)
	}
}

func TestEmptySnapshotClearsSelection(t *testing.T) {
	m := newTestModel(t)

	m.handleEvent(snapshotEvent(1, "a.txt"))
	m.handleEvent(snapshotEvent(2))

	if _, ok := m.nav.Selected(); ok {
		t.Fatal("expected no selection after empty snapshot")
	}
	if m.diffPane.Path() != "" {
		t.Fatalf("diff pane still shows %q", m.diffPane.Path())
	}
}

func TestStaleDiffDropped(t *testing.T) {
	m := newTestModel(t)

	m.handleEvent(snapshotEvent(1, "a.txt", "b.txt"))

	m.applyDiff(events.DiffPayload{Path: "b.txt", Text: "diff --git b"})
	if m.diffPane.Path() == "b.txt" {
		t.Fatal("diff for unselected path must be dropped")
	}

	m.applyDiff(events.DiffPayload{Path: "a.txt", Text: "diff --git a"})
	if m.diffPane.Path() != "a.txt" {
		t.Fatalf("diff pane path = %q, want a.txt", m.diffPane.Path())
	}
}

func TestFileListRecoversAfterFailedRefresh(t *testing.T) {
	m := newTestModel(t)

	m.handleEvent(events.Event{
		Type: events.SnapshotEvent,
		Payload: events.SnapshotPayload{
			Snapshot: git.Snapshot{Err: errors.New("index.lock held"), Taken: time.Now()},
			Seq:      1,
		},
	})
	if !strings.Contains(m.filesPane.View(), "git error") {
		t.Fatal("failed refresh should surface the error")
	}

	m.handleEvent(snapshotEvent(2, "a.txt", "b.txt"))

	view := m.filesPane.View()
	if strings.Contains(view, "git error") {
		t.Fatalf("error still shown after successful refresh: %q", view)
	}
	if !strings.Contains(view, "a.txt") {
		t.Fatalf("file list missing after recovery: %q", view)
	}
}

func TestStaleSnapshotStillSettlesSpinner(t *testing.T) {
	m := newTestModel(t)

	m.handleEvent(events.Event{Type: events.RefreshStartedEvent})
	m.handleEvent(events.Event{Type: events.RefreshStartedEvent})

	// The later-started refresh completes first; the straggler's content is
	// dropped but its completion still settles the in-flight counter.
	m.handleEvent(snapshotEvent(2, "a.txt"))
	m.handleEvent(snapshotEvent(1, "b.txt"))

	if m.refreshing != 0 {
		t.Fatalf("refreshing = %d, want 0", m.refreshing)
	}
}

func TestFailedRefreshDoesNotAdvanceClock(t *testing.T) {
	m := newTestModel(t)

	m.handleEvent(events.Event{
		Type: events.SnapshotEvent,
		Payload: events.SnapshotPayload{
			Snapshot: git.Snapshot{Err: errors.New("index.lock held"), Taken: time.Now()},
			Seq:      1,
		},
	})
	if !m.statusBar.LastUpdate().IsZero() {
		t.Fatal("failed refresh must not count as an update")
	}

	m.handleEvent(snapshotEvent(2, "a.txt"))
	if m.statusBar.LastUpdate().IsZero() {
		t.Fatal("successful refresh should stamp the update time")
	}
}

func TestRefreshStartedTracksInFlight(t *testing.T) {
	m := newTestModel(t)

	m.handleEvent(events.Event{Type: events.RefreshStartedEvent})
	m.handleEvent(events.Event{Type: events.RefreshStartedEvent})
	if m.refreshing != 2 {
		t.Fatalf("refreshing = %d, want 2", m.refreshing)
	}

	m.handleEvent(snapshotEvent(1, "a.txt"))
	if m.refreshing != 1 {
		t.Fatalf("refreshing = %d, want 1", m.refreshing)
	}
}

package events

import (
	"github.com/kestrelworks/watchhound/internal/git"
)

// EventType identifies the type of event
type EventType string

const (
	// Watch pipeline events
	RefreshDueEvent EventType = "watch.refresh_due"
	WatchErrorEvent EventType = "watch.error"

	// Refresh events
	RefreshStartedEvent EventType = "refresh.started"
	SnapshotEvent       EventType = "refresh.snapshot"
	DiffEvent           EventType = "refresh.diff"

	// UI events
	StatusMessageEvent EventType = "ui.status"
)

// Event represents an event in the system
type Event struct {
	Type    EventType
	Payload interface{}
}

// Event payload types

// SnapshotPayload carries a completed refresh. Seq increases in completion
// order; the receiver drops anything at or below the last sequence it
// applied, so a slow stale refresh can never overwrite a fresher one.
type SnapshotPayload struct {
	Snapshot git.Snapshot
	Seq      uint64
}

// DiffPayload carries the diff text for one file.
type DiffPayload struct {
	Path string
	Text string
	Err  error
}

type StatusMessagePayload struct {
	Message string
	Type    string // "info", "warning", "error", "success"
}

type WatchErrorPayload struct {
	Err error
}

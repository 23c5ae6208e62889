package watch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Source wraps fsnotify for a single directory tree. It discards per-event
// detail and emits unit signals: downstream always does a full refresh, so
// only "something changed" matters. Events under the repository metadata
// directory are filtered out to avoid refresh storms from git's own
// housekeeping.
type Source struct {
	fsw        *fsnotify.Watcher
	signals    chan struct{}
	ignoreDirs []string
	log        *slog.Logger
}

// NewSource establishes a recursive watch on root. Failure to establish the
// watch is returned to the caller and is fatal to the process.
func NewSource(root string, ignoreDirs []string, log *slog.Logger) (*Source, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	s := &Source{
		fsw:        fsw,
		signals:    make(chan struct{}, 1),
		ignoreDirs: ignoreDirs,
		log:        log,
	}
	if err := s.addRecursive(root); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", root, err)
	}
	go s.observe()
	return s, nil
}

// Signals returns the channel of change signals. The channel is buffered
// with capacity one; a signal already pending absorbs new ones, which is
// fine because signals carry no payload.
func (s *Source) Signals() <-chan struct{} {
	return s.signals
}

// Close stops the watch. The signal channel is closed once the event
// stream drains.
func (s *Source) Close() error {
	return s.fsw.Close()
}

func (s *Source) observe() {
	defer close(s.signals)
	for {
		select {
		case ev, ok := <-s.fsw.Events:
			if !ok {
				return
			}
			if ignored(ev.Name, s.ignoreDirs) {
				continue
			}
			if ev.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := s.addRecursive(ev.Name); err != nil {
						s.log.Warn("watch new directory", "path", ev.Name, "error", err)
					}
				}
			}
			select {
			case s.signals <- struct{}{}:
			default:
			}
		case err, ok := <-s.fsw.Errors:
			if !ok {
				return
			}
			s.log.Warn("watcher error", "error", err)
		}
	}
}

func (s *Source) addRecursive(root string) error {
	added := 0
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && ignored(path, s.ignoreDirs) {
			return filepath.SkipDir
		}
		if err := s.fsw.Add(path); err != nil {
			s.log.Warn("watch add", "path", path, "error", err)
			return nil
		}
		added++
		return nil
	})
	if err != nil {
		return err
	}
	if added == 0 {
		return fmt.Errorf("no watchable directories under %s", root)
	}
	return nil
}

// ignored reports whether a path lies inside the repository metadata
// directory or one of the configured noise directories.
func ignored(path string, ignoreDirs []string) bool {
	if path == "" {
		return false
	}
	sep := string(filepath.Separator)
	dirs := append([]string{".git"}, ignoreDirs...)
	for _, dir := range dirs {
		if strings.Contains(path, sep+dir+sep) || filepath.Base(path) == dir {
			return true
		}
	}
	return false
}

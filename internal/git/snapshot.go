package git

import (
	"strings"
	"time"
)

// ChangedFile is one entry in a snapshot: a path and its diffstat line.
// Identity is the path; entries are never mutated after parsing.
type ChangedFile struct {
	Path     string
	StatLine string
}

// Snapshot is the immutable result of one refresh cycle. It is replaced
// wholesale on each refresh, never mutated in place. A failed stat command
// yields a Snapshot with Err set and an empty file list; the watch loop
// keeps running and the next trigger retries naturally.
type Snapshot struct {
	Files []ChangedFile
	Stat  string
	Taken time.Time
	Err   error
}

// Empty reports whether the snapshot has no changed files.
func (s Snapshot) Empty() bool {
	return len(s.Files) == 0
}

// Paths returns the ordered list of changed paths.
func (s Snapshot) Paths() []string {
	paths := make([]string, len(s.Files))
	for i, f := range s.Files {
		paths[i] = f.Path
	}
	return paths
}

// ParseStat parses `git diff --stat` output into an ordered file list.
// Each entry comes from a "path | summary" line; anything else (the trailing
// "N files changed" rollup, blank lines) is skipped, not an error. Duplicate
// paths keep their first occurrence so the list stays a valid identity key.
func ParseStat(text string) []ChangedFile {
	var files []ChangedFile
	seen := make(map[string]struct{})

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		idx := strings.LastIndex(trimmed, " | ")
		if idx < 0 {
			continue
		}
		path := strings.TrimSpace(trimmed[:idx])
		if path == "" {
			continue
		}
		if _, dup := seen[path]; dup {
			continue
		}
		seen[path] = struct{}{}
		files = append(files, ChangedFile{Path: path, StatLine: trimmed})
	}

	return files
}

package git

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// scriptedRunner returns canned output keyed by the git subcommand args.
type scriptedRunner struct {
	out map[string]string
	err error
}

func (r *scriptedRunner) Run(_ context.Context, _ string, args ...string) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	return r.out[strings.Join(args, " ")], nil
}

func TestClient_TakeSnapshot(t *testing.T) {
	runner := &scriptedRunner{out: map[string]string{
		"diff --stat": " a.txt | 1 +\n b.txt | 2 ++\n 2 files changed, 3 insertions(+)\n",
	}}
	c := NewClient("/repo", runner)

	snap := c.TakeSnapshot(context.Background())
	if snap.Err != nil {
		t.Fatalf("unexpected error: %v", snap.Err)
	}
	if got := snap.Paths(); len(got) != 2 || got[0] != "a.txt" || got[1] != "b.txt" {
		t.Errorf("got paths %v", got)
	}
	if snap.Taken.IsZero() {
		t.Error("snapshot has no timestamp")
	}
}

func TestClient_TakeSnapshot_CommandFailure(t *testing.T) {
	wantErr := errors.New("git diff: not a git repository")
	c := NewClient("/repo", &scriptedRunner{err: wantErr})

	snap := c.TakeSnapshot(context.Background())
	if !errors.Is(snap.Err, wantErr) {
		t.Fatalf("got err %v, want %v", snap.Err, wantErr)
	}
	if !snap.Empty() {
		t.Error("failed snapshot should have no files")
	}
}

func TestClient_Diff(t *testing.T) {
	runner := &scriptedRunner{out: map[string]string{
		"diff -- a.txt": "diff --git a/a.txt b/a.txt\n+hello\n",
	}}
	c := NewClient("/repo", runner)

	text, err := c.Diff(context.Background(), "a.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "+hello") {
		t.Errorf("got diff %q", text)
	}
}

func TestIsRepository(t *testing.T) {
	dir := t.TempDir()
	if IsRepository(dir) {
		t.Error("bare temp dir reported as repository")
	}
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	if !IsRepository(dir) {
		t.Error("dir with .git not reported as repository")
	}
}

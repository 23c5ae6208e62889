package git

import (
	"context"
	"os"
	"path/filepath"
	"time"
)

// Client runs diff commands against a single working tree.
type Client struct {
	root   string
	runner Runner
}

// NewClient creates a client rooted at the given directory.
func NewClient(root string, runner Runner) *Client {
	return &Client{root: root, runner: runner}
}

// Root returns the watched working tree root.
func (c *Client) Root() string {
	return c.root
}

// IsRepository reports whether dir is the root of a git working tree.
func IsRepository(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil && info.IsDir()
}

// TakeSnapshot runs `git diff --stat` and assembles a Snapshot. Command
// failure is recoverable: it is captured in the snapshot, not returned.
func (c *Client) TakeSnapshot(ctx context.Context) Snapshot {
	out, err := c.runner.Run(ctx, c.root, "diff", "--stat")
	if err != nil {
		return Snapshot{Taken: time.Now(), Err: err}
	}
	return Snapshot{
		Files: ParseStat(out),
		Stat:  out,
		Taken: time.Now(),
	}
}

// Diff returns the diff text for a single file.
func (c *Client) Diff(ctx context.Context, path string) (string, error) {
	return c.runner.Run(ctx, c.root, "diff", "--", path)
}

// Package main is the entry point for the watchhound application.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/kestrelworks/watchhound/internal/app"
	"github.com/kestrelworks/watchhound/internal/config"
	"github.com/kestrelworks/watchhound/internal/git"
	"github.com/kestrelworks/watchhound/internal/logging"
	"github.com/kestrelworks/watchhound/internal/tui"
	"github.com/kestrelworks/watchhound/internal/tui/events"
)

var (
	flagDebounce time.Duration
	flagGitBin   string
	flagLogFile  string
)

var rootCmd = &cobra.Command{
	Use:          "watchhound <directory>",
	Short:        "Watch a git repository and show a live diff view",
	Long:         "Watchhound watches a directory tree for file changes and keeps a two pane git diff view up to date in the terminal.",
	Args:         cobra.ExactArgs(1),
	Version:      "0.1.0",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args[0])
	},
}

func init() {
	rootCmd.Flags().DurationVar(&flagDebounce, "debounce", 0, "quiet window before refreshing after a change (default 5s)")
	rootCmd.Flags().StringVar(&flagGitBin, "git", "", "git binary to invoke (default \"git\")")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "log file path (default in the user cache dir)")
}

func run(dir string) error {
	root, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", dir, err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("cannot watch %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	if !git.IsRepository(root) {
		return fmt.Errorf("%s is not a git repository (no .git directory found)", dir)
	}

	cfg := config.DefaultConfig()
	if path, pathErr := config.DefaultPath(); pathErr == nil {
		manager := config.NewManager(path)
		if loadErr := manager.Load(); loadErr == nil {
			cfg = manager.Get()
		}
	}
	if flagDebounce > 0 {
		cfg.DebounceSeconds = int(flagDebounce / time.Second)
	}
	if flagGitBin != "" {
		cfg.GitBin = flagGitBin
	}
	if flagLogFile != "" {
		cfg.LogFile = flagLogFile
	}

	logPath := cfg.LogFile
	if logPath == "" {
		if p, pathErr := logging.DefaultPath(); pathErr == nil {
			logPath = p
		}
	}
	log := logging.Setup(logPath)
	log.Info("starting", "root", root, "debounce", cfg.Debounce())

	broker := events.NewBroker()
	a, err := app.New(root, cfg, broker, log)
	if err != nil {
		return err
	}
	defer a.Shutdown()

	p := tea.NewProgram(tui.New(a), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package git

import (
	"testing"
)

func TestParseStat(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantPaths []string
	}{
		{
			name: "plain_stat",
			input: " internal/app/app.go | 12 ++++++++----\n" +
				" main.go             |  3 +--\n" +
				" 2 files changed, 11 insertions(+), 4 deletions(-)\n",
			wantPaths: []string{"internal/app/app.go", "main.go"},
		},
		{
			name:      "binary_file",
			input:     " assets/logo.png | Bin 0 -> 4122 bytes\n 1 file changed, 0 insertions(+), 0 deletions(-)\n",
			wantPaths: []string{"assets/logo.png"},
		},
		{
			name:      "rename",
			input:     " internal/{watcher => watch}/debounce.go | 4 ++--\n 1 file changed, 2 insertions(+), 2 deletions(-)\n",
			wantPaths: []string{"internal/{watcher => watch}/debounce.go"},
		},
		{
			name:      "duplicate_paths_first_wins",
			input:     " a.txt | 1 +\n a.txt | 2 ++\n",
			wantPaths: []string{"a.txt"},
		},
		{
			name:      "rollup_only",
			input:     " 3 files changed, 15 insertions(+)\n",
			wantPaths: nil,
		},
		{
			name:      "empty",
			input:     "",
			wantPaths: nil,
		},
		{
			name:      "garbage_lines_skipped",
			input:     "warning: something odd\n b.txt | 2 +-\n\n",
			wantPaths: []string{"b.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := ParseStat(tt.input)
			if len(files) != len(tt.wantPaths) {
				t.Fatalf("got %d files, want %d: %#v", len(files), len(tt.wantPaths), files)
			}
			for i, want := range tt.wantPaths {
				if files[i].Path != want {
					t.Errorf("file %d: got path %q, want %q", i, files[i].Path, want)
				}
			}
		})
	}
}

func TestParseStat_KeepsStatLine(t *testing.T) {
	files := ParseStat(" main.go | 3 +--\n")
	if len(files) != 1 {
		t.Fatalf("got %d files, want 1", len(files))
	}
	if files[0].StatLine != "main.go | 3 +--" {
		t.Errorf("got stat line %q", files[0].StatLine)
	}
}

func TestSnapshot_Paths(t *testing.T) {
	s := Snapshot{Files: []ChangedFile{{Path: "a"}, {Path: "b"}}}
	paths := s.Paths()
	if len(paths) != 2 || paths[0] != "a" || paths[1] != "b" {
		t.Errorf("got %v", paths)
	}
	if s.Empty() {
		t.Error("snapshot with files reported empty")
	}
	if !(Snapshot{}).Empty() {
		t.Error("zero snapshot not empty")
	}
}

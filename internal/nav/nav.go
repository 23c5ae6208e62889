// Package nav holds the file selection and scroll state for the diff view,
// and reconciles it against each new snapshot so selection survives
// refreshes by path identity rather than position.
package nav

// Reconcile maps a previous selection onto a new file list. It returns the
// new index of prevPath if the path is still present, 0 if it is gone but
// the list is non-empty, and -1 for an empty list. Matching by path is what
// keeps the right file selected when a refresh reorders the list; holding
// on to the old numeric index is exactly the stale-selection bug this
// replaces.
func Reconcile(prevPath string, paths []string) int {
	if len(paths) == 0 {
		return -1
	}
	if prevPath != "" {
		for i, p := range paths {
			if p == prevPath {
				return i
			}
		}
	}
	return 0
}

// State tracks the selected file index and the scroll offset into its diff.
// An index of -1 means no selection (empty list). The offset is a raw line
// count; the renderer clamps it against the current diff's length.
type State struct {
	paths  []string
	index  int
	offset int
}

// NewState creates an empty navigation state.
func NewState() *State {
	return &State{index: -1}
}

// Selected returns the selected path, if any.
func (s *State) Selected() (string, bool) {
	if s.index < 0 || s.index >= len(s.paths) {
		return "", false
	}
	return s.paths[s.index], true
}

// Index returns the selected index, or -1 when nothing is selected.
func (s *State) Index() int {
	return s.index
}

// Count returns the number of files in the current list.
func (s *State) Count() int {
	return len(s.paths)
}

// Offset returns the current scroll offset.
func (s *State) Offset() int {
	return s.offset
}

// ApplySnapshot reconciles the state against a new file list. It reports
// whether the selected path changed; when it did, the scroll offset resets.
// When the same path stays selected the offset is preserved even though the
// content may have changed length (clamping happens at render time).
func (s *State) ApplySnapshot(paths []string) bool {
	prev, had := s.Selected()

	s.paths = append([]string(nil), paths...)
	s.index = Reconcile(prev, s.paths)

	now, has := s.Selected()
	changed := had != has || prev != now
	if changed {
		s.offset = 0
	}
	return changed
}

// Next moves the selection one file forward, saturating at the end of the
// list. It reports whether the selection moved; moving resets the offset.
func (s *State) Next() bool {
	if s.index < 0 || s.index >= len(s.paths)-1 {
		return false
	}
	s.index++
	s.offset = 0
	return true
}

// Prev moves the selection one file back, saturating at the start.
func (s *State) Prev() bool {
	if s.index <= 0 {
		return false
	}
	s.index--
	s.offset = 0
	return true
}

// ScrollBy adjusts the scroll offset, never going below zero. The upper
// bound is enforced by the renderer against the current content.
func (s *State) ScrollBy(n int) {
	s.offset += n
	if s.offset < 0 {
		s.offset = 0
	}
}

// ScrollTop resets the scroll offset.
func (s *State) ScrollTop() {
	s.offset = 0
}

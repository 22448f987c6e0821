package selector

// State is the cursor position and checked rows of one prompt session.
// The zero value is not usable; create one with NewState.
type State struct {
	cursor   int
	selected []bool
}

// NewState returns a state for n rows with the cursor on the first row and
// nothing selected.
func NewState(n int) *State {
	return &State{selected: make([]bool, n)}
}

// Len returns the number of rows.
func (s *State) Len() int { return len(s.selected) }

// Cursor returns the highlighted row.
func (s *State) Cursor() int { return s.cursor }

// IsSelected reports whether row i is checked.
func (s *State) IsSelected(i int) bool {
	return i >= 0 && i < len(s.selected) && s.selected[i]
}

// SelectedCount returns the number of checked rows.
func (s *State) SelectedCount() int {
	count := 0
	for _, sel := range s.selected {
		if sel {
			count++
		}
	}
	return count
}

// Indices returns the checked rows in ascending order.
func (s *State) Indices() []int {
	out := make([]int, 0, len(s.selected))
	for i, sel := range s.selected {
		if sel {
			out = append(out, i)
		}
	}
	return out
}

// Up moves the cursor one row up, wrapping from the first row to the last.
func (s *State) Up() {
	n := len(s.selected)
	if n == 0 {
		return
	}
	s.cursor = (s.cursor - 1 + n) % n
}

// Down moves the cursor one row down, wrapping from the last row to the first.
func (s *State) Down() {
	n := len(s.selected)
	if n == 0 {
		return
	}
	s.cursor = (s.cursor + 1) % n
}

// Toggle flips the row under the cursor.
func (s *State) Toggle() {
	if len(s.selected) == 0 {
		return
	}
	s.selected[s.cursor] = !s.selected[s.cursor]
}

// ToggleAll clears every row when all are checked, otherwise checks them all.
func (s *State) ToggleAll() {
	value := s.SelectedCount() != len(s.selected)
	for i := range s.selected {
		s.selected[i] = value
	}
}

// outcome is what the event loop does after a key is applied.
type outcome int

const (
	outcomeIgnore outcome = iota
	outcomeRedraw
	outcomeResolve
	outcomeCancel
)

// transition is the effect of one key on the state.
type transition struct {
	apply func(*State)
	next  outcome
}

var transitions = map[Key]transition{
	KeyUp:        {apply: (*State).Up, next: outcomeRedraw},
	KeyDown:      {apply: (*State).Down, next: outcomeRedraw},
	KeyToggle:    {apply: (*State).Toggle, next: outcomeRedraw},
	KeyToggleAll: {apply: (*State).ToggleAll, next: outcomeRedraw},
	KeyConfirm:   {next: outcomeResolve},
	KeyInterrupt: {next: outcomeCancel},
}

// apply runs the transition for key and reports what the loop should do next.
// Keys without a transition leave the state untouched.
func (s *State) apply(key Key) outcome {
	t, ok := transitions[key]
	if !ok {
		return outcomeIgnore
	}
	if t.apply != nil {
		t.apply(s)
	}
	return t.next
}

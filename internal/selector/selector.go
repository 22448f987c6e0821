// Package selector provides the interactive checkbox prompt used to pick
// optional add-ons.
//
// The prompt reads raw keystrokes, keeps the cursor and checked rows in an
// explicit State, and redraws itself in place after every change:
//
//	↑ / k      move up (wraps)
//	↓ / j      move down (wraps)
//	space      toggle the current row
//	a          select all, or clear all when everything is selected
//	enter      confirm
//	ctrl+c     abort
package selector

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// ErrInterrupted is returned by Run when the user aborts with Ctrl+C.
var ErrInterrupted = errors.New("selection interrupted")

// ExitInterrupted is the conventional exit status after an interrupt.
const ExitInterrupted = 130

// DefaultTitle is the header shown when no title is configured.
const DefaultTitle = "Select add-ons (↑↓/jk move, space toggle, a all, enter confirm)"

// Category tells where an item comes from. It only changes how the row is
// tagged, never how it is selected.
type Category int

const (
	CategoryLocal Category = iota
	CategoryExternal
)

// String returns the category name.
func (c Category) String() string {
	if c == CategoryExternal {
		return "external"
	}
	return "local"
}

// Item is one selectable row.
type Item struct {
	Name        string
	Description string
	Category    Category
}

// Prompt is a single multi-select session over a fixed list of items.
type Prompt struct {
	items []Item
	title string
	in    io.Reader
	out   io.Writer
	term  Terminal
}

// Option configures a Prompt.
type Option func(*Prompt)

// WithTitle sets the header line.
func WithTitle(title string) Option {
	return func(p *Prompt) { p.title = title }
}

// WithIO sets where keystrokes are read from and where frames are drawn.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(p *Prompt) {
		p.in = in
		p.out = out
	}
}

// WithTerminal sets the terminal whose raw mode is held while the prompt runs.
// Without one the prompt reads its input as-is.
func WithTerminal(t Terminal) Option {
	return func(p *Prompt) { p.term = t }
}

// New creates a prompt over items. The slice is copied.
func New(items []Item, opts ...Option) *Prompt {
	p := &Prompt{
		items: append([]Item(nil), items...),
		title: DefaultTitle,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run shows the prompt and blocks until the user confirms or aborts.
//
// On confirm it returns the checked items in their original order. On Ctrl+C
// it returns ErrInterrupted. Read and write failures are returned wrapped.
// Raw mode, when a Terminal is set, is released on every return path.
// An empty item list returns immediately with no selection.
//
// Returns:
//   - []Item: The chosen items, in list order
//   - error: ErrInterrupted, or an I/O failure
func (p *Prompt) Run() ([]Item, error) {
	if len(p.items) == 0 {
		return nil, nil
	}
	if p.in == nil || p.out == nil {
		return nil, errors.New("selector: input and output are required")
	}

	descWidth := DefaultDescriptionWidth
	width := 0
	if p.term != nil {
		restore, err := p.term.MakeRaw()
		if err != nil {
			return nil, err
		}
		defer func() {
			if rerr := restore(); rerr != nil {
				log.Warn("Failed to restore terminal", "error", rerr)
			}
		}()
		width = p.term.Width()
		descWidth = descriptionWidth(width)
	}

	state := NewState(len(p.items))
	r := &renderer{out: p.out, title: p.title, width: width, descWidth: descWidth}
	keys := bufio.NewReader(p.in)

	if err := r.draw(p.items, state); err != nil {
		return nil, err
	}

	for {
		key, err := readKey(keys)
		if err != nil {
			return nil, fmt.Errorf("read key: %w", err)
		}

		switch state.apply(key) {
		case outcomeRedraw:
			if err := r.draw(p.items, state); err != nil {
				return nil, err
			}
		case outcomeResolve:
			return p.chosen(state), nil
		case outcomeCancel:
			return nil, ErrInterrupted
		}
	}
}

func (p *Prompt) chosen(s *State) []Item {
	indices := s.Indices()
	out := make([]Item, 0, len(indices))
	for _, i := range indices {
		out = append(out, p.items[i])
	}
	return out
}

// Select is shorthand for New(items, opts...).Run().
func Select(items []Item, opts ...Option) ([]Item, error) {
	return New(items, opts...).Run()
}

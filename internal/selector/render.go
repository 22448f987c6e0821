package selector

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/devlyn/cli/internal/ui"
)

const (
	pointerGlyph    = "❯"
	selectedGlyph   = "◉"
	unselectedGlyph = "◯"

	// descriptionIndent is the prefix width of a description line.
	descriptionIndent = 6

	// nameIndent is the width of "  ❯ ◉ " before an item name.
	nameIndent = 6

	externalTag = "(external)"

	// minNameWidth is the narrowest a name is cut before the external tag
	// is dropped instead.
	minNameWidth = 8

	// DefaultDescriptionWidth is the rune budget for a description line when
	// the terminal width is unknown.
	DefaultDescriptionWidth = 60

	// lineBreak is CRLF because raw mode disables output post-processing.
	lineBreak = "\r\n"
)

// renderer draws the prompt and remembers how many lines it last emitted so
// the next frame can overwrite it in place.
type renderer struct {
	out       io.Writer
	title     string
	width     int // terminal columns, 0 when unknown
	descWidth int
	lastLines int
}

// draw erases the previous frame, if any, and writes the current one.
func (r *renderer) draw(items []Item, s *State) error {
	var b strings.Builder

	if r.lastLines > 0 {
		// Back to column 0, up over the previous frame, clear to end of screen.
		fmt.Fprintf(&b, "\r\x1b[%dA\x1b[J", r.lastLines)
	}

	b.WriteString(ui.TitleStyle.Render(r.fit(r.title)))
	b.WriteString(lineBreak)
	b.WriteString(lineBreak)

	for i, item := range items {
		b.WriteString(r.itemLine(item, i == s.Cursor(), s.IsSelected(i)))
		b.WriteString(lineBreak)
		b.WriteString(strings.Repeat(" ", descriptionIndent))
		b.WriteString(ui.DimStyle.Render(clamp(item.Description, r.descWidth)))
		b.WriteString(lineBreak)
	}

	if _, err := io.WriteString(r.out, b.String()); err != nil {
		return fmt.Errorf("render prompt: %w", err)
	}
	r.lastLines = frameLines(len(items))
	return nil
}

func (r *renderer) itemLine(item Item, current, checked bool) string {
	tag := ""
	if item.Category == CategoryExternal {
		tag = externalTag
	}
	label, tag := r.fitName(item.Name, tag)

	pointer := " "
	name := ui.InfoStyle.Render(label)
	if current {
		pointer = ui.AccentStyle.Render(pointerGlyph)
		name = ui.HighlightStyle.Render(label)
	}

	box := ui.DimStyle.Render(unselectedGlyph)
	if checked {
		box = ui.SuccessStyle.Render(selectedGlyph)
	}

	line := fmt.Sprintf("  %s %s %s", pointer, box, name)
	if tag != "" {
		line += " " + ui.DimStyle.Render(tag)
	}
	return line
}

// lineWidth is the widest a frame line may be without wrapping, or 0 when
// the terminal width is unknown. The last column is left free.
func (r *renderer) lineWidth() int {
	if r.width <= 0 {
		return 0
	}
	return r.width - 1
}

// fit clamps a whole line to lineWidth.
func (r *renderer) fit(s string) string {
	if r.width <= 0 {
		return s
	}
	return clamp(s, r.lineWidth())
}

// fitName shortens an item name, and drops the tag when even a short name
// would not fit beside it, so the name line never wraps.
func (r *renderer) fitName(name, tag string) (string, string) {
	if r.width <= 0 {
		return name, tag
	}
	room := r.lineWidth() - nameIndent
	if tag != "" {
		withTag := room - len(tag) - 1
		if withTag >= minNameWidth || (withTag >= 0 && utf8.RuneCountInString(name) <= withTag) {
			return clamp(name, withTag), tag
		}
	}
	return clamp(name, room), ""
}

// frameLines is the height of a frame for n items: a header line, a blank
// line, then a name line and a description line per item.
func frameLines(n int) int {
	return 2*n + 2
}

// clamp shortens s to at most width runes, marking the cut with an ellipsis.
func clamp(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

// descriptionWidth picks the description budget for a terminal that is
// termWidth columns wide (0 when unknown).
func descriptionWidth(termWidth int) int {
	if termWidth <= 0 {
		return DefaultDescriptionWidth
	}
	w := termWidth - descriptionIndent - 1
	if w < DefaultDescriptionWidth {
		return w
	}
	return DefaultDescriptionWidth
}

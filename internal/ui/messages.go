// Package ui provides message printing utilities.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
)

var quietMode atomic.Bool

// SetQuietMode toggles suppression of non-essential output.
//
// Parameters:
//   - quiet: When true, PrintInfo, PrintDim, PrintFile and the banner print nothing
func SetQuietMode(quiet bool) {
	quietMode.Store(quiet)
}

// IsQuiet reports whether quiet mode is enabled.
func IsQuiet() bool {
	return quietMode.Load()
}

// Println prints an empty line.
func Println() {
	if IsQuiet() {
		return
	}
	fmt.Println()
}

// PrintSuccess prints a success message.
//
// Parameters:
//   - format: Printf format string
//   - args: Printf arguments
func PrintSuccess(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(SuccessStyle.Render("✓ " + msg))
}

// PrintError prints an error message to stderr.
//
// Parameters:
//   - format: Printf format string
//   - args: Printf arguments
func PrintError(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, ErrorStyle.Render("✗ "+msg))
}

// PrintWarning prints a warning message.
//
// Parameters:
//   - format: Printf format string
//   - args: Printf arguments
func PrintWarning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(WarningStyle.Render("⚠ " + msg))
}

// PrintInfo prints an informational message.
//
// Parameters:
//   - format: Printf format string
//   - args: Printf arguments
func PrintInfo(format string, args ...interface{}) {
	if IsQuiet() {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Println(InfoStyle.Render(msg))
}

// PrintDim prints a dimmed message.
//
// Parameters:
//   - format: Printf format string
//   - args: Printf arguments
func PrintDim(format string, args ...interface{}) {
	if IsQuiet() {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Println(DimStyle.Render(msg))
}

// PrintFile prints one installed file path as an indented, dimmed arrow line.
func PrintFile(path string) {
	PrintDim("  → %s", path)
}

// PrintSection prints a bold section heading preceded by a blank line.
func PrintSection(title string) {
	if IsQuiet() {
		return
	}
	fmt.Println()
	fmt.Println(TitleStyle.Render(title))
}

// PrintBox prints content in a styled box.
//
// Parameters:
//   - title: Box title
//   - content: Box content
func PrintBox(title, content string) {
	fmt.Println(FormatBox(title, content))
}

// FormatBox renders content in a rounded box under a bold title.
func FormatBox(title, content string) string {
	return BoxStyle.Render(BoxTitleStyle.Render(title) + "\n" + content)
}

// Table represents a table with dynamic column widths for formatted output.
type Table struct {
	// Headers contains the column header names.
	Headers []string

	// Rows contains all data rows.
	Rows [][]string

	// MaxWidths specifies maximum width per column index (truncates with ellipsis).
	MaxWidths map[int]int
}

// NewTable creates a new table with the specified headers.
//
// Parameters:
//   - headers: Column header names
//
// Returns:
//   - *Table: A new table instance
func NewTable(headers ...string) *Table {
	return &Table{
		Headers:   headers,
		Rows:      make([][]string, 0),
		MaxWidths: make(map[int]int),
	}
}

// AddRow adds a data row to the table.
func (t *Table) AddRow(values ...string) {
	t.Rows = append(t.Rows, values)
}

// SetMaxWidth sets the maximum width for a column.
// Values exceeding this width will be truncated with ellipsis.
func (t *Table) SetMaxWidth(col, width int) {
	t.MaxWidths[col] = width
}

// calculateColumnWidths computes the width of each column in runes, after
// truncation.
func (t *Table) calculateColumnWidths() []int {
	widths := make([]int, len(t.Headers))

	for i, header := range t.Headers {
		widths[i] = runeLen(header)
	}

	for _, row := range t.Rows {
		for i, val := range row {
			if i >= len(widths) {
				break
			}
			if max, ok := t.MaxWidths[i]; ok {
				val = truncateWithEllipsis(val, max)
			}
			if n := runeLen(val); n > widths[i] {
				widths[i] = n
			}
		}
	}

	return widths
}

func runeLen(s string) int {
	return len([]rune(s))
}

// truncateWithEllipsis truncates a string to the specified width with ellipsis.
func truncateWithEllipsis(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

// padRight pads a string to the specified width with spaces.
func padRight(s string, width int) string {
	n := runeLen(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// Fprint writes the table with calculated column widths to w.
// Headers are styled with TableHeaderStyle, cells with TableCellStyle.
func (t *Table) Fprint(w io.Writer) {
	if len(t.Headers) == 0 {
		return
	}

	widths := t.calculateColumnWidths()
	colGap := "  "

	var headerCells []string
	for i, header := range t.Headers {
		headerCells = append(headerCells, TableHeaderStyle.Render(padRight(header, widths[i])))
	}
	fmt.Fprintln(w, strings.Join(headerCells, colGap))

	totalWidth := len(colGap) * (len(widths) - 1)
	for _, wd := range widths {
		totalWidth += wd
	}
	fmt.Fprintln(w, DimStyle.Render(strings.Repeat("─", totalWidth)))

	for _, row := range t.Rows {
		var cells []string
		for i := range t.Headers {
			val := ""
			if i < len(row) {
				val = row[i]
			}
			if max, ok := t.MaxWidths[i]; ok {
				val = truncateWithEllipsis(val, max)
			}
			cells = append(cells, TableCellStyle.Render(padRight(val, widths[i])))
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, colGap), " "))
	}
}

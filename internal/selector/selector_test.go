package selector

import (
	"bytes"
	"errors"
	"io"
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"
)

const (
	keyUpSeq   = "\x1b[A"
	keyDownSeq = "\x1b[B"
)

type fakeTerminal struct {
	width    int
	raw      bool
	acquired int
	restored int
	rawErr   error
}

func (f *fakeTerminal) MakeRaw() (func() error, error) {
	if f.rawErr != nil {
		return nil, f.rawErr
	}
	f.raw = true
	f.acquired++
	return func() error {
		f.raw = false
		f.restored++
		return nil
	}, nil
}

func (f *fakeTerminal) Width() int { return f.width }

func items(names ...string) []Item {
	out := make([]Item, len(names))
	for i, n := range names {
		out[i] = Item{Name: n, Description: "about " + n}
	}
	return out
}

func names(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func runWith(t *testing.T, list []Item, input string) ([]Item, *fakeTerminal, string, error) {
	t.Helper()
	term := &fakeTerminal{}
	var out bytes.Buffer
	got, err := New(list, WithIO(strings.NewReader(input), &out), WithTerminal(term)).Run()
	return got, term, out.String(), err
}

func TestRunScenarios(t *testing.T) {
	tests := []struct {
		name  string
		items []Item
		input string
		want  []string
	}{
		{
			name:  "toggle first and last",
			items: items("a", "b", "c"),
			input: " " + keyDownSeq + keyDownSeq + " \r",
			want:  []string{"a", "c"},
		},
		{
			name:  "vi keys",
			items: items("a", "b", "c"),
			input: "jj k \r",
			want:  []string{"b", "c"},
		},
		{
			name:  "result keeps list order",
			items: items("X", "Y", "Z"),
			input: keyUpSeq + " " + keyDownSeq + " \n",
			want:  []string{"X", "Z"},
		},
		{
			name:  "select all",
			items: items("one", "two"),
			input: "a\r",
			want:  []string{"one", "two"},
		},
		{
			name:  "select all twice clears",
			items: items("one", "two"),
			input: "aa\r",
			want:  []string{},
		},
		{
			name:  "unknown keys ignored",
			items: items("one", "two"),
			input: "xq\x1b[C\x1b[D z\r",
			want:  []string{"one"},
		},
		{
			name:  "confirm with nothing selected",
			items: items("one"),
			input: "\r",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, term, _, err := runWith(t, tt.items, tt.input)
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if g := names(got); strings.Join(g, ",") != strings.Join(tt.want, ",") {
				t.Errorf("Run() = %v, want %v", g, tt.want)
			}
			if term.acquired != 1 || term.restored != 1 || term.raw {
				t.Errorf("raw mode acquired=%d restored=%d raw=%v, want 1/1/false", term.acquired, term.restored, term.raw)
			}
		})
	}
}

func TestRunEmptyItems(t *testing.T) {
	term := &fakeTerminal{}
	var out bytes.Buffer
	got, err := New(nil, WithIO(strings.NewReader("\r"), &out), WithTerminal(term)).Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Run() = %v, want empty", got)
	}
	if term.acquired != 0 {
		t.Errorf("raw mode acquired %d times for empty list", term.acquired)
	}
	if out.Len() != 0 {
		t.Errorf("empty list rendered output: %q", out.String())
	}
}

func TestRunInterruptRestoresTerminal(t *testing.T) {
	got, term, _, err := runWith(t, items("a", "b"), " \x03")
	if !errors.Is(err, ErrInterrupted) {
		t.Fatalf("Run() error = %v, want ErrInterrupted", err)
	}
	if got != nil {
		t.Errorf("Run() = %v, want nil on interrupt", got)
	}
	if term.raw || term.restored != 1 {
		t.Errorf("terminal not restored after interrupt: raw=%v restored=%d", term.raw, term.restored)
	}
}

func TestRunReadErrorPropagates(t *testing.T) {
	_, term, _, err := runWith(t, items("a"), " ")
	if !errors.Is(err, io.EOF) {
		t.Fatalf("Run() error = %v, want wrapped io.EOF", err)
	}
	if term.raw {
		t.Error("terminal left in raw mode after read error")
	}
}

func TestRunRawModeFailure(t *testing.T) {
	term := &fakeTerminal{rawErr: errors.New("not a terminal")}
	var out bytes.Buffer
	_, err := New(items("a"), WithIO(strings.NewReader("\r"), &out), WithTerminal(term)).Run()
	if err == nil {
		t.Fatal("expected error when raw mode cannot be enabled")
	}
	if out.Len() != 0 {
		t.Error("prompt rendered although raw mode failed")
	}
}

func TestRunRedrawErasesPreviousFrame(t *testing.T) {
	_, _, out, err := runWith(t, items("a", "b", "c"), "j\r")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	frames := strings.Split(out, "\r\x1b[")
	if len(frames) != 2 {
		t.Fatalf("expected one erase sequence, output: %q", out)
	}
	if strings.Contains(frames[0], "\x1b[J") {
		t.Error("first frame must not erase anything")
	}
	if !strings.HasPrefix(frames[1], "8A\x1b[J") {
		t.Errorf("second frame should move up 2*3+2 lines, got prefix %q", frames[1][:8])
	}
	if n := strings.Count(frames[0], lineBreak); n != frameLines(3) {
		t.Errorf("first frame has %d lines, want %d", n, frameLines(3))
	}
}

func TestRunIgnoredKeyDoesNotRedraw(t *testing.T) {
	_, _, out, err := runWith(t, items("a", "b"), "zzz\r")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if strings.Contains(out, "\x1b[J") {
		t.Error("ignored keys should not redraw the prompt")
	}
}

func TestRenderMarksCursorAndSelection(t *testing.T) {
	var out bytes.Buffer
	r := &renderer{out: &out, title: "Pick", descWidth: DefaultDescriptionWidth}
	s := NewState(2)
	s.Down()
	s.Toggle()

	list := []Item{
		{Name: "local-one", Description: "first"},
		{Name: "remote-two", Description: "second", Category: CategoryExternal},
	}
	if err := r.draw(list, s); err != nil {
		t.Fatalf("draw() error = %v", err)
	}

	lines := strings.Split(out.String(), lineBreak)
	if !strings.Contains(lines[0], "Pick") {
		t.Errorf("header line = %q", lines[0])
	}
	if lines[1] != "" {
		t.Errorf("second line should be blank, got %q", lines[1])
	}
	if strings.Contains(lines[2], pointerGlyph) || !strings.Contains(lines[2], unselectedGlyph) {
		t.Errorf("row 0 should be unselected without pointer: %q", lines[2])
	}
	if !strings.Contains(lines[4], pointerGlyph) || !strings.Contains(lines[4], selectedGlyph) {
		t.Errorf("row 1 should carry pointer and filled box: %q", lines[4])
	}
	if !strings.Contains(lines[4], "(external)") {
		t.Errorf("external row should be tagged: %q", lines[4])
	}
	if strings.Contains(lines[2], "(external)") {
		t.Errorf("local row should not be tagged: %q", lines[2])
	}
	if r.lastLines != 6 {
		t.Errorf("lastLines = %d, want 6", r.lastLines)
	}
}

var ansiSeq = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)

// visibleLines splits rendered output into lines with escape sequences and
// carriage returns removed.
func visibleLines(out string) []string {
	plain := strings.ReplaceAll(ansiSeq.ReplaceAllString(out, ""), "\r", "")
	return strings.Split(plain, "\n")
}

func TestRunNarrowTerminalLinesDoNotWrap(t *testing.T) {
	const width = 40
	list := []Item{
		{Name: "a-very-long-local-add-on-name-that-overflows", Description: strings.Repeat("long description ", 10)},
		{Name: "ext", Description: "short", Category: CategoryExternal},
		{Name: "another-long-external-pack-name", Description: "x", Category: CategoryExternal},
	}
	term := &fakeTerminal{width: width}
	var out bytes.Buffer
	if _, err := New(list, WithIO(strings.NewReader("j \r"), &out), WithTerminal(term)).Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	lines := visibleLines(out.String())
	for i, line := range lines {
		if n := utf8.RuneCountInString(line); n >= width {
			t.Errorf("line %d is %d cols on a %d-col terminal: %q", i, n, width, line)
		}
	}
	if plain := strings.Join(lines, "\n"); !strings.Contains(plain, "ext (external)") {
		t.Errorf("short external name lost its tag:\n%s", plain)
	}
}

func TestRenderWithoutWidthKeepsFullLines(t *testing.T) {
	r := &renderer{out: io.Discard, title: DefaultTitle, descWidth: DefaultDescriptionWidth}
	if got := r.fit(DefaultTitle); got != DefaultTitle {
		t.Errorf("fit() = %q, want title unchanged", got)
	}
	name, tag := r.fitName("some-external-pack", externalTag)
	if name != "some-external-pack" || tag != externalTag {
		t.Errorf("fitName() = %q, %q, want name and tag unchanged", name, tag)
	}
}

func TestRenderFitName(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		in       string
		tag      string
		wantName string
		wantTag  string
	}{
		{"fits with tag", 40, "ext", externalTag, "ext", externalTag},
		{"cut beside tag", 30, "a-long-external-name", externalTag, "a-long-ex...", externalTag},
		{"tag dropped when too narrow", 20, "a-long-external-name", externalTag, "a-long-ext...", ""},
		{"local cut", 20, "a-long-local-name-here", "", "a-long-loc...", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &renderer{width: tt.width}
			name, tag := r.fitName(tt.in, tt.tag)
			if name != tt.wantName || tag != tt.wantTag {
				t.Errorf("fitName(%q, %q) = %q, %q, want %q, %q", tt.in, tt.tag, name, tag, tt.wantName, tt.wantTag)
			}
		})
	}
}

package selector

import (
	"bufio"
	"reflect"
	"strings"
	"testing"
	"testing/iotest"
)

func TestStateDownWrapsAround(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for start := 0; start < n; start++ {
			s := NewState(n)
			for i := 0; i < start; i++ {
				s.Down()
			}
			for i := 0; i < n; i++ {
				s.Down()
			}
			if s.Cursor() != start {
				t.Fatalf("n=%d start=%d: cursor after %d downs = %d", n, start, n, s.Cursor())
			}
		}
	}
}

func TestStateUpFromFirstRowWrapsToLast(t *testing.T) {
	s := NewState(4)
	s.Up()
	if s.Cursor() != 3 {
		t.Errorf("Up() from 0 = %d, want 3", s.Cursor())
	}
	s.Down()
	if s.Cursor() != 0 {
		t.Errorf("Down() from 3 = %d, want 0", s.Cursor())
	}
}

func TestStateToggleTwiceRestores(t *testing.T) {
	s := NewState(3)
	s.Down()
	s.Toggle()
	before := s.Indices()

	s.Down()
	s.Toggle()
	s.Toggle()

	if got := s.Indices(); !reflect.DeepEqual(got, before) {
		t.Errorf("Indices() after double toggle = %v, want %v", got, before)
	}
}

func TestStateToggleAll(t *testing.T) {
	s := NewState(3)
	s.Toggle()

	s.ToggleAll()
	if got := s.Indices(); !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Fatalf("ToggleAll() with partial selection = %v, want all", got)
	}

	s.ToggleAll()
	if got := s.SelectedCount(); got != 0 {
		t.Fatalf("ToggleAll() with full selection left %d selected", got)
	}
}

func TestStateEmptyIsSafe(t *testing.T) {
	s := NewState(0)
	s.Up()
	s.Down()
	s.Toggle()
	s.ToggleAll()
	if s.Cursor() != 0 || s.SelectedCount() != 0 {
		t.Errorf("empty state mutated: cursor=%d selected=%d", s.Cursor(), s.SelectedCount())
	}
	if s.IsSelected(0) {
		t.Error("IsSelected(0) on empty state should be false")
	}
}

func TestStateApplyOutcomes(t *testing.T) {
	tests := []struct {
		key  Key
		want outcome
	}{
		{KeyUp, outcomeRedraw},
		{KeyDown, outcomeRedraw},
		{KeyToggle, outcomeRedraw},
		{KeyToggleAll, outcomeRedraw},
		{KeyConfirm, outcomeResolve},
		{KeyInterrupt, outcomeCancel},
		{KeyOther, outcomeIgnore},
	}
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			s := NewState(2)
			if got := s.apply(tt.key); got != tt.want {
				t.Errorf("apply(%v) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestReadKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Key
	}{
		{"arrows", "\x1b[A\x1b[B", []Key{KeyUp, KeyDown}},
		{"vi", "kj", []Key{KeyUp, KeyDown}},
		{"toggle and all", " a", []Key{KeyToggle, KeyToggleAll}},
		{"enter variants", "\r\n", []Key{KeyConfirm, KeyConfirm}},
		{"ctrl c", "\x03", []Key{KeyInterrupt}},
		{"right arrow consumed", "\x1b[Cj", []Key{KeyOther, KeyDown}},
		{"parameterised sequence consumed", "\x1b[1;5Aj", []Key{KeyOther, KeyDown}},
		{"lone escape", "\x1b", []Key{KeyOther}},
		{"escape then letter", "\x1bxj", []Key{KeyOther, KeyOther, KeyDown}},
		{"uppercase ignored", "AJK", []Key{KeyOther, KeyOther, KeyOther}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := bufio.NewReader(strings.NewReader(tt.input))
			var got []Key
			for range tt.want {
				k, err := readKey(r)
				if err != nil {
					t.Fatalf("readKey() error = %v", err)
				}
				got = append(got, k)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("keys = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReadKeySplitArrowIsIgnored(t *testing.T) {
	r := bufio.NewReader(iotest.OneByteReader(strings.NewReader("\x1b[Aj")))
	want := []Key{KeyOther, KeyOther, KeyOther, KeyDown}

	var got []Key
	for range want {
		k, err := readKey(r)
		if err != nil {
			t.Fatalf("readKey() error = %v", err)
		}
		got = append(got, k)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("keys = %v, want %v", got, want)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"a longer description", 10, "a longe..."},
		{"multi\nline   text", 40, "multi line text"},
		{"héllo wörld", 8, "héllo..."},
		{"abc", 2, "ab"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		if got := clamp(tt.in, tt.width); got != tt.want {
			t.Errorf("clamp(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestDescriptionWidth(t *testing.T) {
	if got := descriptionWidth(0); got != DefaultDescriptionWidth {
		t.Errorf("unknown width = %d, want %d", got, DefaultDescriptionWidth)
	}
	if got := descriptionWidth(200); got != DefaultDescriptionWidth {
		t.Errorf("wide terminal = %d, want %d", got, DefaultDescriptionWidth)
	}
	if got := descriptionWidth(40); got != 40-descriptionIndent-1 {
		t.Errorf("narrow terminal = %d, want %d", got, 40-descriptionIndent-1)
	}
}

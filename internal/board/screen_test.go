package board

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/grindlemire/tuist"
)

type harness struct {
	screen *Screen
	host   *tuist.Host
	term   *tuist.MockTerminal
	input  *tuist.MockInputReader
	store  *Store
}

func newHarness(t *testing.T, w, h int) *harness {
	t.Helper()
	term := tuist.NewMockTerminal(w, h)
	input := tuist.NewMockInputReader()
	host, err := tuist.NewHost(term, input, tuist.WithFrameInterval(time.Millisecond))
	if err != nil {
		t.Fatalf("NewHost: %v", err)
	}
	store := NewStore(filepath.Join(t.TempDir(), "board.yaml"))
	return &harness{
		screen: NewScreen(host, store, sample(), DefaultTheme()),
		host:   host,
		term:   term,
		input:  input,
		store:  store,
	}
}

var ctrlC = tuist.KeyEvent{Key: tuist.KeyRune, Rune: 'c', Mod: tuist.ModCtrl}

// run feeds events to the host and runs it until Ctrl+C, which is appended.
func (h *harness) run(t *testing.T, events ...tuist.Event) {
	t.Helper()
	h.input.Push(events...)
	h.input.Push(ctrlC)
	if err := h.host.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func key(k tuist.Key) tuist.Event {
	return tuist.KeyEvent{Key: k}
}

func typed(s string) []tuist.Event {
	var out []tuist.Event
	for _, r := range s {
		out = append(out, tuist.KeyEvent{Key: tuist.KeyRune, Rune: r})
	}
	return out
}

func seq(parts ...any) []tuist.Event {
	var out []tuist.Event
	for _, p := range parts {
		switch v := p.(type) {
		case tuist.Event:
			out = append(out, v)
		case []tuist.Event:
			out = append(out, v...)
		case string:
			out = append(out, typed(v)...)
		}
	}
	return out
}

func TestScreen_Renders(t *testing.T) {
	h := newHarness(t, 90, 20)
	h.run(t)

	out := h.term.String()
	for _, want := range []string{"Sample (board.yaml)", "TODO (2)", "IN PROGRESS (1)", "DONE (0)", "No cards", "second"} {
		if !strings.Contains(out, want) {
			t.Errorf("screen missing %q:\n%s", want, out)
		}
	}
}

func TestScreen_Navigation(t *testing.T) {
	type tc struct {
		events  []tuist.Event
		wantCol int
		wantRow int
	}
	tests := map[string]tc{
		"start":            {wantCol: 0, wantRow: 0},
		"down":             {events: seq(key(tuist.KeyDown)), wantCol: 0, wantRow: 1},
		"down past end":    {events: seq(key(tuist.KeyDown), key(tuist.KeyDown), key(tuist.KeyDown)), wantCol: 0, wantRow: 1},
		"up at top":        {events: seq(key(tuist.KeyUp)), wantCol: 0, wantRow: 0},
		"right clamps row": {events: seq(key(tuist.KeyDown), key(tuist.KeyRight)), wantCol: 1, wantRow: 0},
		"into empty":       {events: seq(key(tuist.KeyRight), key(tuist.KeyRight)), wantCol: 2, wantRow: 0},
		"right at edge":    {events: seq(key(tuist.KeyRight), key(tuist.KeyRight), key(tuist.KeyRight)), wantCol: 2, wantRow: 0},
		"left at edge":     {events: seq(key(tuist.KeyLeft)), wantCol: 0, wantRow: 0},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t, 60, 20)
			h.run(t, tt.events...)
			col, row := h.screen.Selection()
			if col != tt.wantCol || row != tt.wantRow {
				t.Errorf("Selection() = (%d, %d), want (%d, %d)", col, row, tt.wantCol, tt.wantRow)
			}
		})
	}
}

func TestScreen_Edits(t *testing.T) {
	type tc struct {
		events  []tuist.Event
		want    [][]string
		wantCol int
		wantRow int
	}
	tests := map[string]tc{
		"add": {
			events:  seq("a", "new", key(tuist.KeyEnter)),
			want:    [][]string{{"a", "b", "new"}, {"c"}, nil},
			wantCol: 0, wantRow: 2,
		},
		"add with description": {
			events:  seq(key(tuist.KeyRight), "a", "t", key(tuist.KeyTab), "d", key(tuist.KeyEnter)),
			want:    [][]string{{"a", "b"}, {"c", "t"}, nil},
			wantCol: 1, wantRow: 1,
		},
		"add cancelled": {
			events:  seq("a", "gone", key(tuist.KeyEscape)),
			want:    [][]string{{"a", "b"}, {"c"}, nil},
			wantCol: 0, wantRow: 0,
		},
		"typing q in the dialog does not quit": {
			events:  seq("a", "quiz", key(tuist.KeyEnter)),
			want:    [][]string{{"a", "b", "quiz"}, {"c"}, nil},
			wantCol: 0, wantRow: 2,
		},
		"edit": {
			events:  seq(key(tuist.KeyDown), "e", "!", key(tuist.KeyEnter)),
			want:    [][]string{{"a", "b!"}, {"c"}, nil},
			wantCol: 0, wantRow: 1,
		},
		"move right": {
			events:  seq("]"),
			want:    [][]string{{"b"}, {"c", "a"}, nil},
			wantCol: 1, wantRow: 1,
		},
		"move left at edge": {
			events:  seq("["),
			want:    [][]string{{"a", "b"}, {"c"}, nil},
			wantCol: 0, wantRow: 0,
		},
		"delete": {
			events:  seq(key(tuist.KeyDown), "x"),
			want:    [][]string{{"a"}, {"c"}, nil},
			wantCol: 0, wantRow: 0,
		},
		"delete in empty column": {
			events:  seq(key(tuist.KeyRight), key(tuist.KeyRight), "x"),
			want:    [][]string{{"a", "b"}, {"c"}, nil},
			wantCol: 2, wantRow: 0,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t, 80, 24)
			h.run(t, tt.events...)

			b := h.screen.Board()
			for i, want := range tt.want {
				if got := titles(b.Columns[i]); strings.Join(got, ",") != strings.Join(want, ",") {
					t.Errorf("column %d = %v, want %v", i, got, want)
				}
			}
			col, row := h.screen.Selection()
			if col != tt.wantCol || row != tt.wantRow {
				t.Errorf("Selection() = (%d, %d), want (%d, %d)", col, row, tt.wantCol, tt.wantRow)
			}
		})
	}
}

func TestScreen_DescriptionSaved(t *testing.T) {
	h := newHarness(t, 80, 24)
	h.run(t, seq("a", "title", key(tuist.KeyTab), "details", key(tuist.KeyEnter))...)

	saved, err := h.store.Load()
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	c, ok := saved.Card(0, 2)
	if !ok || c.Title != "title" || c.Description != "details" {
		t.Errorf("saved card = %+v, %v", c, ok)
	}
}

func TestScreen_MultilineDescription(t *testing.T) {
	h := newHarness(t, 80, 24)
	altEnter := tuist.KeyEvent{Key: tuist.KeyEnter, Mod: tuist.ModAlt}
	h.run(t, seq("a", "title", key(tuist.KeyTab), "one", altEnter, "two", key(tuist.KeyEnter))...)

	c, ok := h.screen.Board().Card(0, 2)
	if !ok || c.Description != "one\ntwo" {
		t.Errorf("card = %+v, %v, want a two-line description", c, ok)
	}
}

func TestScreen_EmptyTitleKeepsDialog(t *testing.T) {
	h := newHarness(t, 80, 24)
	h.run(t, seq("a", key(tuist.KeyEnter))...)

	if got := h.screen.Status(); got != ErrEmptyTitle.Error() {
		t.Errorf("Status() = %q, want %q", got, ErrEmptyTitle.Error())
	}
	if !strings.Contains(h.term.String(), "NEW CARD") {
		t.Errorf("dialog closed:\n%s", h.term.String())
	}
	if len(h.screen.Board().Columns[0].Cards) != 2 {
		t.Error("empty card was added")
	}
}

func TestScreen_SaveButton(t *testing.T) {
	h := newHarness(t, 80, 24)
	// title box, description box, Save
	h.run(t, seq("a", "via button", key(tuist.KeyTab), key(tuist.KeyTab), key(tuist.KeyEnter))...)

	if got := titles(h.screen.Board().Columns[0]); len(got) != 3 || got[2] != "via button" {
		t.Errorf("column 0 = %v, want the new card last", got)
	}
}

func TestScreen_Quit(t *testing.T) {
	h := newHarness(t, 40, 10)
	h.input.Push(tuist.KeyEvent{Key: tuist.KeyRune, Rune: 'q'})
	if err := h.host.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !h.host.Exiting() {
		t.Error("q did not request exit")
	}
}

func TestScreen_ClickSelectsCard(t *testing.T) {
	h := newHarness(t, 60, 20)
	target := h.screen.cards[0][1].Base().ScreenBounds()
	h.run(t, tuist.MouseEvent{
		Button: tuist.MouseLeft,
		Action: tuist.MousePress,
		X:      target.X + 1,
		Y:      target.Y + 1,
	})

	col, row := h.screen.Selection()
	if col != 0 || row != 1 {
		t.Errorf("Selection() = (%d, %d), want (0, 1)", col, row)
	}
}

func TestScreen_Reload(t *testing.T) {
	h := newHarness(t, 60, 20)
	h.run(t, seq(key(tuist.KeyDown))...)

	smaller := &Board{Title: "Fresh", Columns: []Column{{Name: "ONLY", Cards: []Card{{Title: "z"}}}}}
	smaller.Normalize()
	h.screen.Reload(smaller, nil)

	if h.screen.Board() != smaller {
		t.Fatal("board not replaced")
	}
	col, row := h.screen.Selection()
	if col != 0 || row != 0 {
		t.Errorf("Selection() = (%d, %d), want (0, 0) after clamping", col, row)
	}

	h.screen.Reload(nil, errors.New("parsing board: boom"))
	if h.screen.Board() != smaller {
		t.Error("failed reload replaced the board")
	}
	if got := h.screen.Status(); got != "parsing board: boom" {
		t.Errorf("Status() = %q", got)
	}
}

func TestScreen_ReloadClosesEditOfRemovedCard(t *testing.T) {
	h := newHarness(t, 80, 24)
	h.run(t, seq("e")...)
	if !strings.Contains(h.term.String(), "EDIT CARD") {
		t.Fatalf("edit dialog not shown:\n%s", h.term.String())
	}

	h.screen.Reload(Default(), nil)
	if h.screen.mode != modeBoard {
		t.Error("edit dialog still open for a card that no longer exists")
	}
	if h.host.Focus().Focused() != nil {
		t.Error("focus left on the dialog")
	}
}

func TestScreen_ResizeRebuilds(t *testing.T) {
	h := newHarness(t, 60, 20)
	h.term.Resize(90, 30)
	h.run(t)

	if got := h.screen.root.Base().ActualBounds(); got.Width != 90 || got.Height != 30 {
		t.Errorf("root bounds = %v, want 90x30", got)
	}
	if !strings.Contains(h.term.String(), "TODO (2)") {
		t.Errorf("board missing after resize:\n%s", h.term.String())
	}
}

func TestScreen_ExpireNote(t *testing.T) {
	type tc struct {
		status string
		age    time.Duration
		want   string
	}
	tests := map[string]tc{
		"fresh notice stays": {status: reloadedNote, age: time.Second, want: reloadedNote},
		"old notice cleared": {status: reloadedNote, age: noteTTL + time.Second, want: ""},
		"errors stay":        {status: "parsing board: boom", age: time.Hour, want: "parsing board: boom"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t, 60, 20)
			h.screen.status = tt.status
			h.screen.notedAt = time.Now().Add(-tt.age)
			h.screen.expireNote()
			if got := h.screen.Status(); got != tt.want {
				t.Errorf("Status() = %q, want %q", got, tt.want)
			}
		})
	}
}

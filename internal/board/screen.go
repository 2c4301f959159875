package board

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/grindlemire/tuist"
	"github.com/grindlemire/tuist/internal/debug"
)

// Theme holds the colors of the board screen.
type Theme struct {
	Header   tuist.Color
	Footer   tuist.Color
	Selected tuist.Color
	Muted    tuist.Color
	Dialog   tuist.Color
	// Columns colors the column frames in order, wrapping around.
	Columns []tuist.Color
}

// DefaultTheme returns the stock colors.
func DefaultTheme() Theme {
	return Theme{
		Header:   tuist.Yellow,
		Footer:   tuist.BrightBlack,
		Selected: tuist.White,
		Muted:    tuist.BrightBlack,
		Dialog:   tuist.Yellow,
		Columns:  []tuist.Color{tuist.Blue, tuist.Yellow, tuist.Green},
	}
}

func (t Theme) column(i int) tuist.Color {
	if len(t.Columns) == 0 {
		return tuist.ColorDefault
	}
	return t.Columns[i%len(t.Columns)]
}

type mode int

const (
	modeBoard mode = iota
	modeAdd
	modeEdit
)

const (
	boardHelp  = "Navigate: [Arrows]  Move: [ / ]  New: [A]  Edit: [E]  Delete: [X]  Exit: [Q]"
	dialogHelp = "Next field: [Tab]  Newline: [Alt+Enter]  Save: [Enter]  Cancel: [Esc]"
)

// Screen shows a board on a host and edits it. All methods must run on the
// host goroutine; Watch hands reloads over through Host.Dispatch.
type Screen struct {
	host  *tuist.Host
	store *Store
	theme Theme
	board *Board

	col, row int
	mode     mode
	editing  uuid.UUID
	status   string
	notedAt  time.Time

	titleBox *tuist.TextBox
	descBox  *tuist.TextArea

	root    *tuist.Overlay
	viewers []*tuist.ScrollViewer
	cards   [][]tuist.Node
}

// NewScreen builds the board screen and installs it as the host's root.
func NewScreen(host *tuist.Host, store *Store, b *Board, theme Theme) *Screen {
	s := &Screen{
		host:     host,
		store:    store,
		theme:    theme,
		board:    b,
		titleBox: tuist.NewTextBox(),
		descBox:  tuist.NewTextArea(),
	}
	s.titleBox.Placeholder = "title"
	s.titleBox.SetWidth(40)
	s.descBox.Placeholder = "description"
	s.descBox.SetWidth(40)
	s.descBox.MaxLines = 4

	host.OnResize(func(int, int) { s.rebuild() })
	s.rebuild()
	return s
}

// Board returns the board being shown.
func (s *Screen) Board() *Board {
	return s.board
}

// Selection returns the selected column and row.
func (s *Screen) Selection() (col, row int) {
	return s.col, s.row
}

// Status returns the message shown in the footer, if any.
func (s *Screen) Status() string {
	return s.status
}

// Reload replaces the board with one read from disk. On error the current
// board is kept and the error is shown in the footer.
func (s *Screen) Reload(b *Board, err error) {
	if err != nil {
		s.status = err.Error()
		s.rebuild()
		return
	}
	s.board = b
	s.status = reloadedNote
	s.notedAt = time.Now()
	if s.mode == modeEdit {
		if _, _, ok := b.Find(s.editing); !ok {
			s.closeDialog()
		}
	}
	s.moveSelection(0, 0)
	s.rebuild()
}

const (
	reloadedNote = "reloaded"
	noteTTL      = 3 * time.Second
)

type reload struct {
	board *Board
	err   error
}

// Watch reloads the screen whenever the board file changes, until ctx is
// done.
func (s *Screen) Watch(ctx context.Context) error {
	reloads := make(chan reload)
	s.host.StartWatchers(ctx,
		tuist.NewChannelWatcher(reloads, func(r reload) { s.Reload(r.board, r.err) }),
		tuist.OnTimer(time.Second, s.expireNote),
	)
	return s.store.Watch(ctx, func(b *Board, err error) {
		select {
		case reloads <- reload{board: b, err: err}:
		case <-ctx.Done():
		}
	})
}

// expireNote clears the reload notice once it has been shown for noteTTL.
// Errors stay until the next action.
func (s *Screen) expireNote() {
	if s.status != reloadedNote || time.Since(s.notedAt) < noteTTL {
		return
	}
	s.status = ""
	s.rebuild()
}

func (s *Screen) rebuild() {
	size := s.host.Size()
	offsets := make([]tuist.Point, len(s.viewers))
	for i, v := range s.viewers {
		offsets[i] = v.ScrollOffset()
	}

	main := tuist.NewStackPanel(tuist.Vertical)
	header := tuist.NewTextBlock(fmt.Sprintf("%s (%s)", s.board.Title, filepath.Base(s.store.Path())))
	header.Foreground = s.theme.Header
	header.Margin = tuist.Thickness{Left: 1, Right: 1, Bottom: 1}
	main.Children().Add(header)
	main.Children().Add(s.columns(size))
	footer := tuist.NewTextBlock(s.footerText())
	footer.Foreground = s.theme.Footer
	footer.Margin = tuist.Thickness{Left: 1, Top: 1, Right: 1}
	main.Children().Add(footer)

	s.root = tuist.NewOverlay(main)
	s.root.Name = "board"
	s.root.OnKeyDown(s.handleKey)
	if s.mode != modeBoard {
		s.root.Push(s.dialog())
	}
	s.host.SetRoot(s.root)

	// Lay out now so scroll positions can be restored against real extents.
	tuist.Layout(s.root, size)
	for i, v := range s.viewers {
		if i < len(offsets) {
			v.SetScrollOffset(offsets[i])
		}
	}
	if card := s.selectedNode(); card != nil && s.col < len(s.viewers) {
		s.viewers[s.col].ScrollIntoView(card.Base().ActualBounds())
	}
}

func (s *Screen) columns(size tuist.Size) tuist.Node {
	row := tuist.NewStackPanel(tuist.Horizontal)
	row.SetHeight(max(0, size.Height-4))

	n := len(s.board.Columns)
	s.viewers = s.viewers[:0]
	s.cards = make([][]tuist.Node, n)
	width := 0
	if n > 0 {
		width = size.Width / n
	}
	for i, col := range s.board.Columns {
		selected := i == s.col
		frame := tuist.NewBorder(tuist.BorderRounded)
		frame.Title = fmt.Sprintf("%s (%d)", col.Name, len(col.Cards))
		frame.BorderColor = s.theme.column(i)
		if selected {
			frame.BorderColor = s.theme.Selected
		}
		frame.SetWidth(width)

		list := tuist.NewStackPanel(tuist.Vertical)
		for j, card := range col.Cards {
			node := s.card(card, i, j, selected && j == s.row)
			s.cards[i] = append(s.cards[i], node)
			list.Children().Add(node)
		}
		if len(col.Cards) == 0 {
			empty := tuist.NewTextBlock("No cards")
			empty.Foreground = s.theme.Muted
			empty.Margin = tuist.Uniform(1)
			list.Children().Add(empty)
		}

		viewer := tuist.NewScrollViewer()
		viewer.ConstrainWidth = true
		viewer.SetContent(list)
		s.viewers = append(s.viewers, viewer)
		frame.SetChild(viewer)
		row.Children().Add(frame)
	}
	return row
}

func (s *Screen) card(c Card, col, row int, selected bool) tuist.Node {
	frame := tuist.NewBorder(tuist.BorderSingle)
	frame.BorderColor = s.theme.Muted
	if selected {
		frame.BorderStyle = tuist.BorderDouble
		frame.BorderColor = s.theme.Selected
	}
	frame.Padding = tuist.Symmetric(1, 0)
	frame.Margin = tuist.Thickness{Bottom: 1}
	frame.Name = c.ID.String()

	body := tuist.NewStackPanel(tuist.Vertical)
	title := tuist.NewTextBlock(c.Title)
	title.Foreground = tuist.White
	title.Wrap = true
	body.Children().Add(title)
	if c.Description != "" {
		desc := tuist.NewTextBlock(c.Description)
		desc.Foreground = s.theme.Muted
		desc.Wrap = true
		body.Children().Add(desc)
	}
	frame.SetChild(body)

	frame.OnMouseDown(func(_ tuist.Node, args *tuist.EventArgs) {
		if s.mode != modeBoard || args.Mouse.Button != tuist.MouseLeft {
			return
		}
		args.Handled = true
		s.col, s.row = col, row
		s.rebuild()
	})
	return frame
}

func (s *Screen) dialog() tuist.Node {
	frame := tuist.NewBorder(tuist.BorderDouble)
	frame.Title = "NEW CARD"
	if s.mode == modeEdit {
		frame.Title = "EDIT CARD"
	}
	frame.BorderColor = s.theme.Dialog
	frame.Padding = tuist.Symmetric(2, 1)

	body := tuist.NewStackPanel(tuist.Vertical)
	body.Children().Add(tuist.NewTextBlock("Title:"))
	body.Children().Add(s.titleBox)
	body.Children().Add(tuist.NewTextBlock("Description:"))
	body.Children().Add(s.descBox)

	buttons := tuist.NewStackPanel(tuist.Horizontal)
	buttons.Spacing = 2
	buttons.Margin = tuist.Thickness{Top: 1}
	save := tuist.NewButton("Save")
	save.OnClick(func(_ tuist.Node, args *tuist.EventArgs) {
		args.Handled = true
		s.submit()
	})
	cancel := tuist.NewButton("Cancel")
	cancel.OnClick(func(_ tuist.Node, args *tuist.EventArgs) {
		args.Handled = true
		s.closeDialog()
		s.rebuild()
	})
	buttons.Children().Add(save, cancel)
	body.Children().Add(buttons)

	if s.status != "" {
		msg := tuist.NewTextBlock(s.status)
		msg.Foreground = tuist.Red
		msg.Margin = tuist.Thickness{Top: 1}
		body.Children().Add(msg)
	}
	frame.SetChild(body)
	return frame
}

func (s *Screen) footerText() string {
	if s.mode != modeBoard {
		return dialogHelp
	}
	selected := "None"
	if c, ok := s.board.Card(s.col, s.row); ok {
		selected = c.Title
	}
	text := boardHelp + " | Selected: " + selected
	if s.status != "" {
		text += " | " + s.status
	}
	return text
}

func (s *Screen) selectedNode() tuist.Node {
	if s.col >= len(s.cards) || s.row >= len(s.cards[s.col]) {
		return nil
	}
	return s.cards[s.col][s.row]
}

// moveSelection moves the selection by the given deltas, clamped to the board.
func (s *Screen) moveSelection(dcol, drow int) {
	s.col = clampIndex(s.col+dcol, len(s.board.Columns))
	n := 0
	if s.col < len(s.board.Columns) {
		n = len(s.board.Columns[s.col].Cards)
	}
	s.row = clampIndex(s.row+drow, n)
}

func (s *Screen) handleKey(_ tuist.Node, args *tuist.EventArgs) {
	var handled bool
	if s.mode == modeBoard {
		handled = s.boardKey(args.Key)
	} else {
		handled = s.dialogKey(args.Key)
	}
	if handled {
		args.Handled = true
		s.rebuild()
	}
}

func (s *Screen) boardKey(k tuist.KeyEvent) bool {
	switch k.Key {
	case tuist.KeyLeft:
		s.moveSelection(-1, 0)
	case tuist.KeyRight:
		s.moveSelection(1, 0)
	case tuist.KeyUp:
		s.moveSelection(0, -1)
	case tuist.KeyDown:
		s.moveSelection(0, 1)
	case tuist.KeyEnter:
		s.openEdit()
	case tuist.KeyDelete:
		s.remove()
	case tuist.KeyRune:
		if k.Mod != tuist.ModNone {
			return false
		}
		switch k.Rune {
		case 'q':
			s.host.RequestExit()
		case 'a':
			s.openAdd()
		case 'e':
			s.openEdit()
		case 'x':
			s.remove()
		case '[':
			s.move(-1)
		case ']':
			s.move(1)
		default:
			return false
		}
	default:
		return false
	}
	return true
}

func (s *Screen) dialogKey(k tuist.KeyEvent) bool {
	switch k.Key {
	case tuist.KeyEscape:
		s.closeDialog()
	case tuist.KeyEnter:
		s.submit()
	default:
		return false
	}
	return true
}

func (s *Screen) openAdd() {
	s.mode = modeAdd
	s.status = ""
	s.titleBox.SetText("")
	s.descBox.SetText("")
	s.rebuild()
	s.host.Focus().SetFocused(s.titleBox)
}

func (s *Screen) openEdit() {
	c, ok := s.board.Card(s.col, s.row)
	if !ok {
		return
	}
	s.mode = modeEdit
	s.editing = c.ID
	s.status = ""
	s.titleBox.SetText(c.Title)
	s.titleBox.End()
	s.descBox.SetText(c.Description)
	s.rebuild()
	s.host.Focus().SetFocused(s.titleBox)
}

func (s *Screen) closeDialog() {
	s.mode = modeBoard
	s.editing = uuid.Nil
	s.host.Focus().SetFocused(nil)
}

// submit saves the dialog. The dialog stays open with the error shown if the
// card is invalid.
func (s *Screen) submit() {
	var err error
	switch s.mode {
	case modeAdd:
		if _, err = s.board.AddCard(s.col, s.titleBox.Text(), s.descBox.Text()); err == nil {
			s.moveSelection(0, len(s.board.Columns[s.col].Cards))
		}
	case modeEdit:
		err = s.board.UpdateCard(s.editing, s.titleBox.Text(), s.descBox.Text())
	default:
		return
	}
	if err != nil {
		s.status = err.Error()
		s.rebuild()
		return
	}
	s.closeDialog()
	s.save()
	s.rebuild()
}

func (s *Screen) move(dir int) {
	c, ok := s.board.Card(s.col, s.row)
	if !ok {
		return
	}
	row, ok := s.board.MoveCard(c.ID, s.col+dir)
	if !ok {
		return
	}
	s.col += dir
	s.row = row
	s.save()
}

func (s *Screen) remove() {
	c, ok := s.board.Card(s.col, s.row)
	if !ok || !s.board.RemoveCard(c.ID) {
		return
	}
	s.moveSelection(0, 0)
	s.save()
}

func (s *Screen) save() {
	if err := s.store.Save(s.board); err != nil {
		debug.Log("board.Screen: %v", err)
		s.status = err.Error()
		return
	}
	s.status = ""
}

package game

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"
)

// cellWidth is the number of terminal columns per board cell.
const cellWidth = 2

// Renderer draws a Session: a status line, the framed board centred in the
// terminal and an end-of-game message.
type Renderer struct {
	session *Session
	theme   Theme
	board   *tview.Box
	status  *tview.TextView
	message *tview.TextView
	root    *tview.Flex
}

func NewRenderer(session *Session, theme Theme) *Renderer {
	r := &Renderer{
		session: session,
		theme:   theme,
		board:   tview.NewBox(),
		status:  tview.NewTextView().SetTextAlign(tview.AlignCenter),
		message: tview.NewTextView().SetTextAlign(tview.AlignCenter),
	}

	r.board.SetBorder(true)
	r.board.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		// The border takes one cell on each side.
		x, y, width, height = x+1, y+1, width-2, height-2
		r.DrawBoard(screen, x, y, width, height)
		return x, y, width, height
	})

	boardW := session.Cols()*cellWidth + 2
	boardH := session.Rows() + 2
	centered := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(r.board, boardW, 0, true).
		AddItem(nil, 0, 1, false)
	r.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(r.status, 1, 0, false).
		AddItem(centered, boardH, 0, true).
		AddItem(r.message, 1, 0, false).
		AddItem(nil, 0, 1, false)

	r.Refresh()
	return r
}

func (r *Renderer) Root() tview.Primitive {
	return r.root
}

// Refresh recomputes the status line and message from the session.
func (r *Renderer) Refresh() {
	r.status.SetText(r.StatusLine())

	text, color := r.Message()
	r.message.SetTextColor(color)
	r.message.SetText(text)
}

func (r *Renderer) StatusLine() string {
	s := r.session
	return fmt.Sprintf("Minesweeper %dx%d | Flags: %d/%d | Cleared: %d%% | Time: %.2f s",
		s.Rows(), s.Cols(), s.FlaggedCount(), s.MineCount(), s.ClearedPercent(), s.Elapsed().Seconds())
}

// Message returns the end-of-game banner, or "" while playing.
func (r *Renderer) Message() (string, tcell.Color) {
	s := r.session
	switch {
	case !s.IsOver():
		return "", tview.Styles.PrimaryTextColor
	case s.IsWon():
		return fmt.Sprintf("🎉 YOU WON in %.2f seconds! Press 'q' to quit or 'r' to restart", s.Elapsed().Seconds()), r.theme.Won
	default:
		return "💥 BOOM! You lost. Press 'q' to quit or 'r' to restart", r.theme.Lost
	}
}

// DrawBoard paints the cells into the width x height area at (x, y).
func (r *Renderer) DrawBoard(screen tcell.Screen, x, y, width, height int) {
	s := r.session
	cursor := s.Cursor()
	for row := 0; row < s.Rows() && row < height; row++ {
		for col := 0; col < s.Cols() && (col+1)*cellWidth <= width; col++ {
			view, _ := s.CellView(row, col)
			selected := row == cursor.Row && col == cursor.Col
			glyph, style := r.CellGlyph(view, selected)
			drawGlyph(screen, x+col*cellWidth, y+row, glyph, style)
		}
	}
}

// CellGlyph picks the text and style of one cell.
func (r *Renderer) CellGlyph(view CellView, selected bool) (string, tcell.Style) {
	base := tcell.StyleDefault
	t := r.theme

	if !view.Revealed {
		switch {
		case view.Flagged && selected:
			return "⚑", base.Foreground(t.CursorFlag).Background(t.CursorBg).Bold(true)
		case view.Flagged:
			return "⚑", base.Foreground(t.Flag).Bold(true)
		case selected:
			return "", base.Foreground(t.CursorFg).Background(t.CursorBg)
		default:
			return "██", base.Foreground(t.Hidden)
		}
	}

	var glyph string
	style := base
	switch {
	case view.Mine:
		glyph, style = "💣", base.Foreground(t.Mine).Bold(true)
	case view.NearbyMines == 0:
		glyph = ""
	default:
		glyph, style = strconv.Itoa(view.NearbyMines), base.Foreground(t.Numbers[view.NearbyMines]).Bold(true)
	}
	if selected {
		style = style.Reverse(true)
	}
	return glyph, style
}

// drawGlyph writes glyph padded to cellWidth columns.
func drawGlyph(screen tcell.Screen, x, y int, glyph string, style tcell.Style) {
	for _, ch := range runewidth.FillRight(glyph, cellWidth) {
		screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}

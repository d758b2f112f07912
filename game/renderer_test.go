package game

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimaq12/minesweeper-term/models"
)

func TestRenderer_StatusLine(t *testing.T) {
	s, mock := newLayoutSession(t, 3, 3, models.Position{Row: 0, Col: 0}, models.Position{Row: 0, Col: 1})
	r := NewRenderer(s, DefaultTheme())

	assert.Equal(t, "Minesweeper 3x3 | Flags: 0/2 | Cleared: 0% | Time: 0.00 s", r.StatusLine())

	s.ActPrimary(2, 2)
	s.ToggleFlag(0, 0)
	mock.Add(1250 * time.Millisecond)

	assert.Equal(t, "Minesweeper 3x3 | Flags: 1/2 | Cleared: 85% | Time: 1.25 s", r.StatusLine())
}

func TestRenderer_Message(t *testing.T) {
	theme := DefaultTheme()

	t.Run("playing", func(t *testing.T) {
		s, _ := newLayoutSession(t, 3, 3, models.Position{Row: 0, Col: 0})
		text, _ := NewRenderer(s, theme).Message()
		assert.Empty(t, text)
	})

	t.Run("won", func(t *testing.T) {
		s, mock := newLayoutSession(t, 5, 5, models.Position{Row: 4, Col: 4})
		r := NewRenderer(s, theme)
		s.ActPrimary(0, 0)
		mock.Add(time.Minute)

		text, color := r.Message()
		assert.Contains(t, text, "YOU WON in 0.00 seconds")
		assert.Equal(t, theme.Won, color)
	})

	t.Run("lost", func(t *testing.T) {
		s, _ := newLayoutSession(t, 3, 3, models.Position{Row: 0, Col: 0})
		r := NewRenderer(s, theme)
		s.ActPrimary(0, 0)

		text, color := r.Message()
		assert.Contains(t, text, "BOOM")
		assert.Equal(t, theme.Lost, color)
	})
}

func TestRenderer_CellGlyph(t *testing.T) {
	theme := DefaultTheme()
	s, _ := newLayoutSession(t, 2, 2, models.Position{Row: 0, Col: 0})
	r := NewRenderer(s, theme)

	tests := []struct {
		name      string
		view      CellView
		selected  bool
		wantGlyph string
		wantFg    tcell.Color
	}{
		{name: "hidden", view: CellView{}, wantGlyph: "██", wantFg: theme.Hidden},
		{name: "hidden under cursor", view: CellView{}, selected: true, wantGlyph: "", wantFg: theme.CursorFg},
		{name: "flag", view: CellView{Flagged: true}, wantGlyph: "⚑", wantFg: theme.Flag},
		{name: "flag under cursor", view: CellView{Flagged: true}, selected: true, wantGlyph: "⚑", wantFg: theme.CursorFlag},
		{name: "mine", view: CellView{Revealed: true, Mine: true}, wantGlyph: "💣", wantFg: theme.Mine},
		{name: "three", view: CellView{Revealed: true, NearbyMines: 3}, wantGlyph: "3", wantFg: theme.Numbers[3]},
		{name: "zero", view: CellView{Revealed: true}, wantGlyph: "", wantFg: tcell.ColorDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			glyph, style := r.CellGlyph(tt.view, tt.selected)
			fg, _, _ := style.Decompose()
			assert.Equal(t, tt.wantGlyph, glyph)
			assert.Equal(t, tt.wantFg, fg)
		})
	}

	t.Run("revealed under cursor is reversed", func(t *testing.T) {
		_, style := r.CellGlyph(CellView{Revealed: true, NearbyMines: 1}, true)
		_, _, attrs := style.Decompose()
		assert.NotZero(t, attrs&tcell.AttrReverse)
	})
}

func TestRenderer_DrawBoard(t *testing.T) {
	s, _ := newLayoutSession(t, 3, 4, models.Position{Row: 2, Col: 3})
	r := NewRenderer(s, DefaultTheme())
	s.ToggleFlag(0, 1)

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(20, 10)

	r.DrawBoard(screen, 1, 1, 8, 3)

	at := func(x, y int) rune {
		ch, _, _, _ := screen.GetContent(x, y)
		return ch
	}
	assert.Equal(t, ' ', at(1, 1), "cursor cell is blank")
	assert.Equal(t, '⚑', at(3, 1))
	assert.Equal(t, ' ', at(4, 1))
	assert.Equal(t, '█', at(5, 1))
	assert.Equal(t, '█', at(8, 3))
}

package game

import (
	"testing"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"

	"github.com/dimaq12/minesweeper-term/models"
)

// newLayoutSession returns a session whose mines are fixed at mines.
func newLayoutSession(t *testing.T, rows, cols int, mines ...models.Position) (*Session, *clock.Mock) {
	t.Helper()
	mock := clock.NewMock()
	s, err := NewSession(rows, cols, 0, WithClock(mock), WithMineLayout(mines...))
	require.NoError(t, err)
	return s, mock
}

// newSeededSession returns a session with mines already placed around safe.
func newSeededSession(t *testing.T, rows, cols, mines int, seed int64, safe models.Position) *Session {
	t.Helper()
	s, err := NewSession(rows, cols, mines, WithClock(clock.NewMock()), WithSeed(seed))
	require.NoError(t, err)
	s.placeMines(safe)
	s.firstMovePending = false
	return s
}

func revealedSet(b *models.Board) map[models.Position]bool {
	set := make(map[models.Position]bool)
	for row := range b.Grid {
		for col, cell := range b.Grid[row] {
			if cell.IsRevealed {
				set[models.Position{Row: row, Col: col}] = true
			}
		}
	}
	return set
}

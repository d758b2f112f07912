package game

import (
	"github.com/gammazero/deque"

	"github.com/dimaq12/minesweeper-term/models"
)

// reveal opens (row, col). Out of bounds, revealed and flagged cells are
// left alone, as is everything once the game is over. Opening a mine ends
// the game immediately.
func (s *Session) reveal(row, col int) {
	if s.over {
		return
	}
	cell := s.board.At(row, col)
	if cell == nil || cell.IsRevealed || cell.IsFlagged {
		return
	}

	cell.IsRevealed = true
	if cell.IsMine {
		s.over = true
		s.won = false
		s.log.WithField("cell", models.Position{Row: row, Col: col}).Debug("mine triggered")
		return
	}
	s.revealedCount++

	if cell.NearbyMines == 0 {
		s.floodReveal(row, col)
	}
	s.autoChord(row, col, false)
}

// floodReveal opens the zero region connected to the already revealed zero
// cell at (row, col), together with the numbered cells bordering it.
func (s *Session) floodReveal(row, col int) {
	var work deque.Deque[models.Position]
	for _, n := range s.board.Neighbors(row, col) {
		work.PushBack(n)
	}

	for work.Len() > 0 {
		pos := work.PopBack()
		cell := s.board.At(pos.Row, pos.Col)
		if cell == nil || cell.IsRevealed || cell.IsFlagged {
			continue
		}

		cell.IsRevealed = true
		s.revealedCount++

		if cell.NearbyMines == 0 {
			for _, n := range s.board.Neighbors(pos.Row, pos.Col) {
				if s.board.Grid[n.Row][n.Col].Hidden() {
					work.PushBack(n)
				}
			}
		}
	}
}

// autoChord opens the hidden neighbours of a revealed number whose flags
// already account for all its mines. When userInitiated, it also flags the
// hidden neighbours if they must all be mines.
func (s *Session) autoChord(row, col int, userInitiated bool) {
	cell := s.board.At(row, col)
	if cell == nil || !cell.IsRevealed || cell.IsMine {
		return
	}

	neighbors := s.board.Neighbors(row, col)
	flagged, hidden := 0, 0
	for _, n := range neighbors {
		nb := &s.board.Grid[n.Row][n.Col]
		if nb.IsFlagged {
			flagged++
		} else if !nb.IsRevealed {
			hidden++
		}
	}

	if flagged == cell.NearbyMines {
		for _, n := range neighbors {
			if s.board.Grid[n.Row][n.Col].Hidden() {
				s.reveal(n.Row, n.Col)
			}
		}
	}

	if !userInitiated || s.over {
		return
	}
	if hidden > 0 && hidden+flagged == cell.NearbyMines {
		for _, n := range neighbors {
			if nb := &s.board.Grid[n.Row][n.Col]; nb.Hidden() {
				nb.IsFlagged = true
			}
		}
	}
}

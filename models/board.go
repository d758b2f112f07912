package models

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Board is the rectangular minefield. Mines are not placed by NewBoard;
// PlaceMines or PlaceMinesAt must be called exactly once before the first
// reveal.
type Board struct {
	Grid      [][]Cell
	Rows      int
	Cols      int
	MineCount int
}

// NewBoard allocates a cleared rows x cols grid. A mineCount of 0 is
// resolved to DefaultMineCount when mines are placed.
func NewBoard(rows, cols, mineCount int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	if mineCount < 0 || mineCount >= rows*cols {
		return nil, fmt.Errorf("%w: %d mines on a %dx%d board", ErrInvalidMineCount, mineCount, rows, cols)
	}

	grid := make([][]Cell, rows)
	for i := range grid {
		grid[i] = make([]Cell, cols)
	}

	return &Board{
		Grid:      grid,
		Rows:      rows,
		Cols:      cols,
		MineCount: mineCount,
	}, nil
}

// DefaultMineCount is the mine count used when none was configured.
func DefaultMineCount(rows, cols int) int {
	return rows * cols / 6
}

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.Rows && col >= 0 && col < b.Cols
}

// At returns the cell at (row, col), or nil when out of bounds.
func (b *Board) At(row, col int) *Cell {
	if !b.InBounds(row, col) {
		return nil
	}
	return &b.Grid[row][col]
}

// Neighbors returns the in-bounds positions around (row, col), row-major
// from the top-left, excluding the cell itself.
func (b *Board) Neighbors(row, col int) []Position {
	neighbors := make([]Position, 0, 8)
	for deltaRow := -1; deltaRow <= 1; deltaRow++ {
		for deltaCol := -1; deltaCol <= 1; deltaCol++ {
			if deltaRow == 0 && deltaCol == 0 {
				continue
			}
			if b.InBounds(row+deltaRow, col+deltaCol) {
				neighbors = append(neighbors, Position{Row: row + deltaRow, Col: col + deltaCol})
			}
		}
	}
	return neighbors
}

// inSafeZone reports whether (row, col) lies in the 3x3 block centred on safe.
func inSafeZone(safe Position, row, col int) bool {
	return abs(row-safe.Row) <= 1 && abs(col-safe.Col) <= 1
}

// PlaceMines places MineCount mines outside the 3x3 safe zone around safe
// and fills in NearbyMines for every cell. When fewer candidate cells exist
// than requested, every candidate becomes a mine and MineCount is lowered
// to match. It returns the number of mines placed.
func (b *Board) PlaceMines(safe Position, r *rand.Rand) int {
	if b.MineCount == 0 {
		b.MineCount = DefaultMineCount(b.Rows, b.Cols)
	}

	coords := make([]Position, 0, b.Rows*b.Cols)
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			if !inSafeZone(safe, row, col) {
				coords = append(coords, Position{Row: row, Col: col})
			}
		}
	}

	// Fisher-Yates over the candidates; the first MineCount become mines.
	for i := len(coords) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		coords[i], coords[j] = coords[j], coords[i]
	}

	if b.MineCount > len(coords) {
		b.MineCount = len(coords)
	}
	for _, pos := range coords[:b.MineCount] {
		b.Grid[pos.Row][pos.Col].IsMine = true
	}

	b.countNearbyMines()
	return b.MineCount
}

// PlaceMinesAt places mines exactly at the given positions, ignoring the
// safe zone. Duplicates count once.
func (b *Board) PlaceMinesAt(positions ...Position) error {
	seen := make(map[Position]bool, len(positions))
	for _, pos := range positions {
		if !b.InBounds(pos.Row, pos.Col) {
			return fmt.Errorf("%w: mine at (%d,%d) is outside %dx%d", ErrInvalidMineCount, pos.Row, pos.Col, b.Rows, b.Cols)
		}
		seen[pos] = true
	}
	if len(seen) >= b.Rows*b.Cols {
		return fmt.Errorf("%w: %d mines on a %dx%d board", ErrInvalidMineCount, len(seen), b.Rows, b.Cols)
	}

	for pos := range seen {
		b.Grid[pos.Row][pos.Col].IsMine = true
	}
	b.MineCount = len(seen)
	b.countNearbyMines()
	return nil
}

func (b *Board) countNearbyMines() {
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			cell := &b.Grid[row][col]
			if cell.IsMine {
				cell.NearbyMines = MineSentinel
				continue
			}
			cell.NearbyMines = 0
			for _, n := range b.Neighbors(row, col) {
				if b.Grid[n.Row][n.Col].IsMine {
					cell.NearbyMines++
				}
			}
		}
	}
}

// RevealMines marks every mine as revealed and clears flags on them.
func (b *Board) RevealMines() {
	for row := range b.Grid {
		for col := range b.Grid[row] {
			if cell := &b.Grid[row][col]; cell.IsMine {
				cell.IsFlagged = false
				cell.IsRevealed = true
			}
		}
	}
}

func (b *Board) FlaggedCount() int {
	n := 0
	for row := range b.Grid {
		for col := range b.Grid[row] {
			if b.Grid[row][col].IsFlagged {
				n++
			}
		}
	}
	return n
}

// RevealedSafeCount counts revealed cells that are not mines.
func (b *Board) RevealedSafeCount() int {
	n := 0
	for row := range b.Grid {
		for col := range b.Grid[row] {
			if cell := b.Grid[row][col]; cell.IsRevealed && !cell.IsMine {
				n++
			}
		}
	}
	return n
}

// Mines lists mine positions in row-major order.
func (b *Board) Mines() []Position {
	var mines []Position
	for row := range b.Grid {
		for col := range b.Grid[row] {
			if b.Grid[row][col].IsMine {
				mines = append(mines, Position{Row: row, Col: col})
			}
		}
	}
	return mines
}

// String renders the board for debugging: '-' hidden, 'F' flagged, '*'
// revealed mine, '.' revealed zero, digits otherwise.
func (b *Board) String() string {
	var sb strings.Builder
	for row := range b.Grid {
		for col, cell := range b.Grid[row] {
			if col > 0 {
				sb.WriteByte(' ')
			}
			switch {
			case cell.IsFlagged:
				sb.WriteByte('F')
			case !cell.IsRevealed:
				sb.WriteByte('-')
			case cell.IsMine:
				sb.WriteByte('*')
			case cell.NearbyMines == 0:
				sb.WriteByte('.')
			default:
				sb.WriteByte(byte('0' + cell.NearbyMines))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

package models

// MineSentinel is the NearbyMines value stored on a mine cell.
const MineSentinel = -1

type Cell struct {
	IsMine      bool
	IsRevealed  bool
	IsFlagged   bool
	NearbyMines int
}

// Hidden reports whether the cell can still be revealed or flagged.
func (c *Cell) Hidden() bool {
	return !c.IsRevealed && !c.IsFlagged
}

type Position struct {
	Row int
	Col int
}

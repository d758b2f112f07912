package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dimaq12/minesweeper-term/models"
)

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// CellView is what the UI may know about a cell. Mine is only set once the
// cell is revealed or the game is over; NearbyMines only once revealed.
type CellView struct {
	Revealed    bool
	Flagged     bool
	Mine        bool
	NearbyMines int
}

// Session is one live game: the board plus cursor, counters, outcome and
// timer. It is not safe for concurrent use.
type Session struct {
	id    string
	board *models.Board

	rows, cols int
	mineTarget int

	cursor           models.Position
	revealedCount    int
	over             bool
	won              bool
	firstMovePending bool
	clearedPercent   int

	timerStarted bool
	startedAt    time.Time
	endedAt      time.Time

	clock  clock.Clock
	seed   int64
	rng    *rand.Rand
	layout []models.Position

	log *logrus.Entry
}

type Option func(*Session)

// WithClock replaces the wall clock used by the timer.
func WithClock(c clock.Clock) Option {
	return func(s *Session) { s.clock = c }
}

// WithSeed makes mine placement reproducible. Zero keeps clock seeding.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.seed = seed }
}

// WithMineLayout fixes the mines of every game in the session, bypassing
// random placement and the safe zone.
func WithMineLayout(positions ...models.Position) Option {
	return func(s *Session) { s.layout = positions }
}

// NewSession validates the dimensions and starts a fresh game. A mineCount
// of 0 defaults to rows*cols/6 on the first reveal.
func NewSession(rows, cols, mineCount int, opts ...Option) (*Session, error) {
	s := &Session{
		rows:       rows,
		cols:       cols,
		mineTarget: mineCount,
		clock:      clock.New(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.layout != nil {
		probe, err := models.NewBoard(rows, cols, 0)
		if err != nil {
			return nil, err
		}
		if err := probe.PlaceMinesAt(s.layout...); err != nil {
			return nil, fmt.Errorf("mine layout: %w", err)
		}
	}

	if s.seed == 0 {
		s.seed = s.clock.Now().UnixNano()
	}
	s.rng = rand.New(rand.NewPCG(uint64(s.seed), uint64(s.seed>>1)))

	if err := s.newGame(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) newGame() error {
	board, err := models.NewBoard(s.rows, s.cols, s.mineTarget)
	if err != nil {
		return err
	}

	s.id = uuid.NewString()
	s.board = board
	s.cursor = models.Position{}
	s.revealedCount = 0
	s.over = false
	s.won = false
	s.firstMovePending = true
	s.clearedPercent = 0
	s.timerStarted = false
	s.startedAt = time.Time{}
	s.endedAt = time.Time{}
	s.log = log.WithField("session", s.id)

	s.log.WithFields(logrus.Fields{
		"rows":  s.rows,
		"cols":  s.cols,
		"mines": s.mineTarget,
	}).Info("new game")
	return nil
}

// Reset discards the board and starts a new game with the same dimensions
// and mine target.
func (s *Session) Reset() {
	s.log.Info("game reset")
	// Dimensions were validated by NewSession.
	if err := s.newGame(); err != nil {
		s.log.WithError(err).Error("reset failed")
	}
}

func (s *Session) placeMines(safe models.Position) {
	if s.layout != nil {
		if err := s.board.PlaceMinesAt(s.layout...); err != nil {
			s.log.WithError(err).Error("mine layout rejected")
		}
		s.log.WithField("mines", s.board.MineCount).Debug("mines placed from layout")
		return
	}

	requested := s.board.MineCount
	if requested == 0 {
		requested = models.DefaultMineCount(s.rows, s.cols)
	}
	placed := s.board.PlaceMines(safe, s.rng)
	if placed < requested {
		s.log.WithFields(logrus.Fields{
			"requested": requested,
			"placed":    placed,
		}).Warn("not enough room outside the safe zone, mine count lowered")
	}
	s.log.WithFields(logrus.Fields{
		"mines": placed,
		"safe":  fmt.Sprintf("%d,%d", safe.Row, safe.Col),
		"seed":  s.seed,
	}).Debug("mines placed")
}

func (s *Session) startTimer() {
	if s.timerStarted {
		return
	}
	s.timerStarted = true
	s.startedAt = s.clock.Now()
}

// ToggleFlag flips the flag on a hidden cell. Revealed cells, out of bounds
// positions and finished games are ignored.
func (s *Session) ToggleFlag(row, col int) {
	if s.over {
		return
	}
	cell := s.board.At(row, col)
	if cell == nil || cell.IsRevealed {
		return
	}
	cell.IsFlagged = !cell.IsFlagged
}

// ActPrimary reveals a hidden cell or chords a revealed one. The first call
// of a game places the mines around (row, col) and starts the timer.
func (s *Session) ActPrimary(row, col int) {
	if s.over || !s.board.InBounds(row, col) {
		return
	}

	if s.firstMovePending {
		s.placeMines(models.Position{Row: row, Col: col})
		s.firstMovePending = false
	}
	s.startTimer()

	if s.board.Grid[row][col].IsRevealed {
		s.autoChord(row, col, true)
	} else {
		s.reveal(row, col)
	}

	if !s.over {
		s.checkWin()
	}
	if s.over {
		s.finish()
	}
}

func (s *Session) checkWin() {
	if s.revealedCount >= s.rows*s.cols-s.board.MineCount {
		s.over = true
		s.won = true
	}
}

func (s *Session) finish() {
	s.endedAt = s.clock.Now()
	s.clearedPercent = s.currentClearedPercent()
	if s.won {
		s.clearedPercent = 100
		s.log.WithField("elapsed", s.Elapsed().Seconds()).Info("game won")
		return
	}
	s.board.RevealMines()
	s.log.WithField("revealed", s.revealedCount).Info("game lost")
}

// MoveCursor steps the cursor one cell, stopping at the edges.
func (s *Session) MoveCursor(d Direction) {
	if s.over {
		return
	}
	switch d {
	case Up:
		if s.cursor.Row > 0 {
			s.cursor.Row--
		}
	case Down:
		if s.cursor.Row < s.rows-1 {
			s.cursor.Row++
		}
	case Left:
		if s.cursor.Col > 0 {
			s.cursor.Col--
		}
	case Right:
		if s.cursor.Col < s.cols-1 {
			s.cursor.Col++
		}
	}
}

func (s *Session) ID() string { return s.id }
func (s *Session) Rows() int { return s.rows }
func (s *Session) Cols() int { return s.cols }
func (s *Session) Cursor() models.Position { return s.cursor }
func (s *Session) IsOver() bool { return s.over }
func (s *Session) IsWon() bool { return s.won }
func (s *Session) RevealedCount() int { return s.revealedCount }
func (s *Session) FlaggedCount() int { return s.board.FlaggedCount() }
func (s *Session) FirstMovePending() bool { return s.firstMovePending }
func (s *Session) Seed() int64 { return s.seed }
func (s *Session) Board() *models.Board { return s.board }

// MineCount is the number of mines on the board, or the number that will be
// placed when the first reveal has not happened yet.
func (s *Session) MineCount() int {
	if s.firstMovePending {
		if s.layout != nil {
			return len(uniquePositions(s.layout))
		}
		if s.board.MineCount == 0 {
			return models.DefaultMineCount(s.rows, s.cols)
		}
	}
	return s.board.MineCount
}

// Elapsed is the time since the first action, frozen once the game ends.
func (s *Session) Elapsed() time.Duration {
	switch {
	case !s.timerStarted:
		return 0
	case s.over:
		return s.endedAt.Sub(s.startedAt)
	default:
		return s.clock.Since(s.startedAt)
	}
}

// ClearedPercent is the share of safe cells revealed so far. It stops
// changing when the game ends and reads 100 after a win.
func (s *Session) ClearedPercent() int {
	if s.over {
		return s.clearedPercent
	}
	return s.currentClearedPercent()
}

func (s *Session) currentClearedPercent() int {
	safe := s.rows*s.cols - s.MineCount()
	if safe <= 0 {
		return 0
	}
	return s.revealedCount * 100 / safe
}

// CellView returns the visible state of (row, col); ok is false when out of
// bounds.
func (s *Session) CellView(row, col int) (view CellView, ok bool) {
	cell := s.board.At(row, col)
	if cell == nil {
		return CellView{}, false
	}
	view = CellView{
		Revealed: cell.IsRevealed,
		Flagged:  cell.IsFlagged,
	}
	if cell.IsRevealed || s.over {
		view.Mine = cell.IsMine
	}
	if cell.IsRevealed && !cell.IsMine {
		view.NearbyMines = cell.NearbyMines
	}
	return view, true
}

func uniquePositions(positions []models.Position) map[models.Position]bool {
	set := make(map[models.Position]bool, len(positions))
	for _, p := range positions {
		set[p] = true
	}
	return set
}

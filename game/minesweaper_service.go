package game

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// refreshInterval keeps the timer moving without input (~20 FPS).
const refreshInterval = 50 * time.Millisecond

// MinesweeperService runs a Session inside a tview application. All session
// access happens on the application's event goroutine.
type MinesweeperService struct {
	controller *GameController
	renderer   *Renderer
	app        *tview.Application
	clock      clock.Clock
}

func NewMinesweeperService(session *Session) *MinesweeperService {
	app := tview.NewApplication()
	return &MinesweeperService{
		controller: NewGameController(session, app.Stop),
		renderer:   NewRenderer(session, DefaultTheme()),
		app:        app,
		clock:      session.clock,
	}
}

// Run blocks until the player quits or ctx is cancelled.
func (s *MinesweeperService) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.app.SetRoot(s.renderer.Root(), true)
	s.app.SetBeforeDrawFunc(func(tcell.Screen) bool {
		s.renderer.Refresh()
		return false
	})
	s.handleInput()

	go s.refreshLoop(ctx)
	go func() {
		<-ctx.Done()
		s.app.Stop()
	}()

	session := s.controller.Session()
	log.WithField("session", session.ID()).WithField("seed", session.Seed()).Info("terminal started")
	return s.app.Run()
}

func (s *MinesweeperService) refreshLoop(ctx context.Context) {
	ticker := s.clock.Ticker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.app.QueueUpdateDraw(func() {})
		}
	}
}

func (s *MinesweeperService) handleInput() {
	s.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		cmd := commandForKey(event)
		if cmd == CommandNone {
			return event
		}
		s.controller.Apply(cmd)
		return nil
	})
}

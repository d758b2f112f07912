package game

// Command is one discrete player action.
type Command int

const (
	CommandNone Command = iota
	CommandMoveUp
	CommandMoveDown
	CommandMoveLeft
	CommandMoveRight
	CommandToggleFlag
	CommandAct
	CommandRestart
	CommandQuit
)

// GameController is the command surface the terminal layer drives. Every
// command runs to completion before the next one is accepted.
type GameController struct {
	session *Session
	onQuit  func()
	quit    bool
}

func NewGameController(session *Session, onQuit func()) *GameController {
	return &GameController{session: session, onQuit: onQuit}
}

func (c *GameController) Session() *Session {
	return c.session
}

func (c *GameController) MoveCursor(d Direction) {
	c.session.MoveCursor(d)
}

func (c *GameController) ToggleFlagAtCursor() {
	pos := c.session.Cursor()
	c.session.ToggleFlag(pos.Row, pos.Col)
}

func (c *GameController) ActPrimaryAtCursor() {
	pos := c.session.Cursor()
	c.session.ActPrimary(pos.Row, pos.Col)
}

func (c *GameController) Reset() {
	c.session.Reset()
}

// Quit marks the controller as finished and notifies the UI once.
func (c *GameController) Quit() {
	if c.quit {
		return
	}
	c.quit = true
	log.WithField("session", c.session.ID()).Info("quit")
	if c.onQuit != nil {
		c.onQuit()
	}
}

func (c *GameController) Quitting() bool {
	return c.quit
}

// Apply dispatches cmd and reports whether it was recognised.
func (c *GameController) Apply(cmd Command) bool {
	switch cmd {
	case CommandMoveUp:
		c.MoveCursor(Up)
	case CommandMoveDown:
		c.MoveCursor(Down)
	case CommandMoveLeft:
		c.MoveCursor(Left)
	case CommandMoveRight:
		c.MoveCursor(Right)
	case CommandToggleFlag:
		c.ToggleFlagAtCursor()
	case CommandAct:
		c.ActPrimaryAtCursor()
	case CommandRestart:
		c.Reset()
	case CommandQuit:
		c.Quit()
	default:
		return false
	}
	return true
}

package game

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// commandForKey maps a key press to a Command. Letters are case-insensitive.
func commandForKey(event *tcell.EventKey) Command {
	switch event.Key() {
	case tcell.KeyUp:
		return CommandMoveUp
	case tcell.KeyDown:
		return CommandMoveDown
	case tcell.KeyLeft:
		return CommandMoveLeft
	case tcell.KeyRight:
		return CommandMoveRight
	case tcell.KeyRune:
	default:
		return CommandNone
	}

	switch unicode.ToLower(event.Rune()) {
	case 'w':
		return CommandMoveUp
	case 's':
		return CommandMoveDown
	case 'a':
		return CommandMoveLeft
	case 'd':
		return CommandMoveRight
	case 'f', 'j':
		return CommandToggleFlag
	case ' ', 'k':
		return CommandAct
	case 'r':
		return CommandRestart
	case 'q':
		return CommandQuit
	}
	return CommandNone
}

package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/alexanderi96/snake/game/types"
)

// Direction maps arrow keys, and the WASD and hjkl clusters, to headings.
func Direction(ev *tcell.EventKey) (types.Direction, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return types.Up, true
	case tcell.KeyDown:
		return types.Down, true
	case tcell.KeyLeft:
		return types.Left, true
	case tcell.KeyRight:
		return types.Right, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'k':
			return types.Up, true
		case 's', 'j':
			return types.Down, true
		case 'a', 'h':
			return types.Left, true
		case 'd', 'l':
			return types.Right, true
		}
	}
	return types.None, false
}

// IsQuit reports whether ev asks to leave the game.
func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

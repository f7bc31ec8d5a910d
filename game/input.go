package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/garapon/screen"
)

// HandleEvent processes one terminal event, returning false when the user quits
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.handleKey(ev)
	case *tcell.EventMouse:
		g.handleMouse(ev)
	}
	return true
}

func (g *Game) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		g.handleAccept()
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return false
	case ' ':
		g.handleAccept()
	case 'y', 'Y':
		g.Confirm()
	case 'n', 'N':
		g.Decline()
	case 'r', 'R':
		g.Reset()
	}
	return true
}

// handleAccept is Enter/Space: advance whatever is in front of the user
func (g *Game) handleAccept() {
	switch {
	case g.screens.Overlay() == screen.Confirm:
		g.Confirm()
	case g.screens.Overlay() == screen.Cancel:
		g.Dismiss()
	case g.screens.Active() == screen.Main:
		g.OpenConfirm()
	case g.screens.Active() == screen.Result:
		g.Reset()
	}
}

// handleMouse turns tcell's button state snapshots into press, drag, release and hover
func (g *Game) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	down := ev.Buttons()&tcell.Button1 != 0

	switch {
	case down && !g.pressed:
		g.Press(x, y)
	case down:
		g.Drag(x, y)
	case g.pressed:
		g.Release()
	default:
		g.Hover(x, y)
	}
}

package play

import (
	"time"

	"dungeon-arcanum/internal/game"

	"github.com/gdamore/tcell/v2"
)

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
	ActionAttack
	ActionPickup
	ActionSave
	ActionLoad
	ActionReset
	ActionQuit
)

// keyToAction maps a tcell key event to a game action.
func keyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveN
	case tcell.KeyDown:
		return ActionMoveS
	case tcell.KeyRight:
		return ActionMoveE
	case tcell.KeyLeft:
		return ActionMoveW
	case tcell.KeyF5:
		return ActionSave
	case tcell.KeyF9:
		return ActionLoad
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	}
	switch ev.Rune() {
	case 'w', 'W':
		return ActionMoveN
	case 's', 'S':
		return ActionMoveS
	case 'd', 'D':
		return ActionMoveE
	case 'a', 'A':
		return ActionMoveW
	case ' ':
		return ActionAttack
	case 'e', 'E':
		return ActionPickup
	case 'g', 'G':
		return ActionSave
	case 'c', 'C':
		return ActionLoad
	case 'r', 'R':
		return ActionReset
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// Direction slots in Input.held.
const (
	heldN = iota
	heldS
	heldE
	heldW
)

// Input turns a stream of key presses into per-step intents. Terminals
// report presses and auto-repeats but never releases, so a direction stays
// held for one hold window after its latest press.
type Input struct {
	hold   time.Duration
	held   [4]time.Time
	attack bool
	pickup bool
}

// NewInput returns an Input with the given hold window.
func NewInput(hold time.Duration) *Input {
	return &Input{hold: hold}
}

// Press records a key action at time now. Non-input actions are ignored.
func (in *Input) Press(a Action, now time.Time) {
	switch a {
	case ActionMoveN:
		in.held[heldN], in.held[heldS] = now, time.Time{}
	case ActionMoveS:
		in.held[heldS], in.held[heldN] = now, time.Time{}
	case ActionMoveE:
		in.held[heldE], in.held[heldW] = now, time.Time{}
	case ActionMoveW:
		in.held[heldW], in.held[heldE] = now, time.Time{}
	case ActionAttack:
		in.attack = true
	case ActionPickup:
		in.pickup = true
	}
}

// Release drops every held direction and pending command.
func (in *Input) Release() {
	*in = Input{hold: in.hold}
}

func (in *Input) active(slot int, now time.Time) bool {
	t := in.held[slot]
	return !t.IsZero() && now.Sub(t) <= in.hold
}

// Intent builds the intent for a step at time now and consumes the
// one-shot attack and pickup commands.
func (in *Input) Intent(now time.Time) game.Intent {
	x, y := 0, 0
	if in.active(heldN, now) {
		y = -1
	}
	if in.active(heldS, now) {
		y = 1
	}
	if in.active(heldW, now) {
		x = -1
	}
	if in.active(heldE, now) {
		x = 1
	}
	intent := game.NewIntent(x, y, in.attack, in.pickup)
	in.attack, in.pickup = false, false
	return intent
}

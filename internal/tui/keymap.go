package tui

import (
	"github.com/nsf/termbox-go"

	"github.com/robalobadob/mastermind/internal/game"
)

type actionKind int

const (
	actNone actionKind = iota
	actQuit
	actLeft
	actRight
	actNext
	actPrev
	actSet
	actCheck
	actNewGame
	actRowsUp
	actRowsDown
	actToggleEmpty
	actToggleRepetition
	actHelp
)

var actionNames = map[actionKind]string{
	actNone:             "none",
	actQuit:             "quit",
	actLeft:             "left",
	actRight:            "right",
	actNext:             "next_colour",
	actPrev:             "prev_colour",
	actSet:              "set_colour",
	actCheck:            "check",
	actNewGame:          "new_game",
	actRowsUp:           "rows_up",
	actRowsDown:         "rows_down",
	actToggleEmpty:      "toggle_empty",
	actToggleRepetition: "toggle_repetition",
	actHelp:             "help",
}

func (k actionKind) String() string { return actionNames[k] }

// action is one user intent decoded from a terminal event.
type action struct {
	kind   actionKind
	symbol game.Symbol // actSet only
}

// actionFor maps a terminal event to an action. Non-key events map to actNone.
func actionFor(ev termbox.Event) action {
	if ev.Type != termbox.EventKey {
		return action{}
	}
	switch ev.Key {
	case termbox.KeyArrowLeft:
		return action{kind: actLeft}
	case termbox.KeyArrowRight:
		return action{kind: actRight}
	case termbox.KeyArrowUp, termbox.KeySpace:
		return action{kind: actNext}
	case termbox.KeyArrowDown:
		return action{kind: actPrev}
	case termbox.KeyEnter:
		return action{kind: actCheck}
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return action{kind: actQuit}
	}

	switch ch := ev.Ch; {
	case ch >= '0' && ch <= '6':
		return action{kind: actSet, symbol: game.Symbol(ch - '0')}
	case ch == 'q' || ch == 'Q':
		return action{kind: actQuit}
	case ch == 'n' || ch == 'N':
		return action{kind: actNewGame}
	case ch == '+' || ch == '=':
		return action{kind: actRowsUp}
	case ch == '-' || ch == '_':
		return action{kind: actRowsDown}
	case ch == 'e' || ch == 'E':
		return action{kind: actToggleEmpty}
	case ch == 'r' || ch == 'R':
		return action{kind: actToggleRepetition}
	case ch == 'h' || ch == 'H' || ch == '?':
		return action{kind: actHelp}
	}
	return action{}
}

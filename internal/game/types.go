// internal/game/types.go
//
// Core type definitions for the Mastermind game engine.
// Defines:
//   - Symbol / Alphabet: peg colours and the active palette.
//   - Code: a fixed-length sequence of four symbols (secret or guess).
//   - Score: exact and colour matches for one guess.
//   - Outcome: in-progress / won / lost.
//   - Settings, Attempt: game configuration and one completed row.
//   - Sentinel errors returned by the engine.

package game

import "errors"

// CodeLength is the number of pegs in a secret and in every guess.
const CodeLength = 4

// Symbol is a single peg colour. Empty is only part of the alphabet
// when the game allows empty holes.
type Symbol uint8

const (
	Empty Symbol = iota
	Magenta
	Green
	Blue
	Yellow
	White
	Black
)

// SymbolCount is the size of the full palette, Empty included.
const SymbolCount = 7

var symbolNames = [SymbolCount]string{"empty", "magenta", "green", "blue", "yellow", "white", "black"}

func (s Symbol) String() string {
	if int(s) < len(symbolNames) {
		return symbolNames[s]
	}
	return "invalid"
}

// Code is an ordered sequence of exactly CodeLength symbols.
type Code [CodeLength]Symbol

// Alphabet is the set of symbols a secret may be built from and a guess may use.
type Alphabet []Symbol

// NewAlphabet returns {1..6}, or {0..6} when empty holes count as a colour.
func NewAlphabet(emptyAllowed bool) Alphabet {
	first := Magenta
	if emptyAllowed {
		first = Empty
	}
	out := make(Alphabet, 0, SymbolCount)
	for s := first; s <= Black; s++ {
		out = append(out, s)
	}
	return out
}

// Contains reports whether s is part of the alphabet.
func (a Alphabet) Contains(s Symbol) bool {
	for _, x := range a {
		if x == s {
			return true
		}
	}
	return false
}

// Len returns the number of symbols in the alphabet.
func (a Alphabet) Len() int { return len(a) }

// Score is the evaluation of one guess against the secret.
//   - Exact: right colour in the right position (black key peg).
//   - Color: right colour in the wrong position (white key peg).
type Score struct {
	Exact int `json:"exact"`
	Color int `json:"color"`
}

// Solved reports whether every position matched.
func (s Score) Solved() bool { return s.Exact == CodeLength }

// Outcome is the game's tri-state result.
type Outcome int

const (
	InProgress Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "unknown"
}

// Terminal reports whether no further guesses are accepted.
func (o Outcome) Terminal() bool { return o == Won || o == Lost }

// Settings configures a single game.
type Settings struct {
	MaxAttempts       int  // Number of guess rows (the caller keeps this within 1..12).
	EmptyAllowed      bool // Empty hole is a valid colour (alphabet 0..6 instead of 1..6).
	RepetitionAllowed bool // Secret may contain the same colour more than once.
}

// Attempt is one completed row: the submitted guess and its score.
type Attempt struct {
	Guess Code  `json:"guess"`
	Score Score `json:"score"`
}

var (
	// ErrInvalidSymbol is returned when a code contains a symbol outside the active alphabet.
	ErrInvalidSymbol = errors.New("invalid symbol")
	// ErrGameAlreadyOver is returned for any mutation after the game was won or lost.
	ErrGameAlreadyOver = errors.New("game already over")
	// ErrInvalidConfiguration is returned for unusable settings.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrSecretNotGenerated is returned when scoring before a secret exists.
	ErrSecretNotGenerated = errors.New("secret not generated")
	// ErrNoGuess is returned when scoring a row nobody submitted a guess for.
	ErrNoGuess = errors.New("no guess submitted")
	// ErrGuessNotScored is returned when advancing past a row that was not scored.
	ErrGuessNotScored = errors.New("guess not scored")
)

// internal/game/engine.go
//
// Core game engine for a single Mastermind session.
// Responsibilities:
//   - Create games from Settings (alphabet derived from EmptyAllowed).
//   - Generate the secret: distinct sample or independent draws.
//   - Accept guesses for the current row (alphabet-checked, atomic).
//   - Score guesses with the multiset rule (exact + colour matches).
//   - Track state transitions: in progress → won/lost.
//
// Notes:
//   - Scoring and advancing are separate calls so a caller can show the
//     key pegs before it learns whether the game ended.
//   - A Game is owned by one caller and is not safe for concurrent use.
//   - Terminal games are read-only; start a new game with New.
package game

import (
	"fmt"
	"math/rand/v2"
)

// Game holds the state of one Mastermind session.
type Game struct {
	settings Settings
	alphabet Alphabet
	rng      *rand.Rand // nil → process-wide source

	secret    Code
	hasSecret bool

	guess    Code
	hasGuess bool // a guess was submitted for the current row
	scored   bool // last was computed from the current guess

	row     int // 0-based index of the current row
	last    Score
	outcome Outcome
	history []Attempt
}

// Option customises a Game at construction time.
type Option func(*Game)

// WithRand makes the game draw its secret from r instead of the process-wide source.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) { g.rng = r }
}

// New constructs a game in the InProgress state on row 0 with a (0,0) score.
// The secret is not generated yet; call GenerateSecret before the first guess.
//
// MaxAttempts must be positive. The upper bound (12 rows) is a UI concern and
// is enforced by the board and config layers.
func New(s Settings, opts ...Option) (*Game, error) {
	if s.MaxAttempts <= 0 {
		return nil, fmt.Errorf("%w: max attempts must be positive, got %d", ErrInvalidConfiguration, s.MaxAttempts)
	}
	g := &Game{
		settings: s,
		alphabet: NewAlphabet(s.EmptyAllowed),
		outcome:  InProgress,
	}
	for _, o := range opts {
		o(g)
	}
	return g, nil
}

// GenerateSecret draws a fresh secret from the active alphabet, replacing any
// previous one.
//   - Repetition off: 4 distinct symbols in random order.
//   - Repetition on: 4 independent uniform draws.
func (g *Game) GenerateSecret() error {
	if g.outcome.Terminal() {
		return ErrGameAlreadyOver
	}
	if g.settings.RepetitionAllowed {
		for i := range g.secret {
			g.secret[i] = g.alphabet[g.intN(len(g.alphabet))]
		}
	} else {
		if len(g.alphabet) < CodeLength {
			return fmt.Errorf("%w: alphabet of %d symbols is too small for a distinct code", ErrInvalidConfiguration, len(g.alphabet))
		}
		perm := g.perm(len(g.alphabet))
		for i := range g.secret {
			g.secret[i] = g.alphabet[perm[i]]
		}
	}
	g.hasSecret = true
	g.scored = false
	return nil
}

// UseSecret installs a caller-chosen secret instead of a random one.
// The code must fit the alphabet and, without repetition, be pairwise distinct.
func (g *Game) UseSecret(c Code) error {
	if g.outcome.Terminal() {
		return ErrGameAlreadyOver
	}
	if err := g.checkAlphabet(c); err != nil {
		return err
	}
	if !g.settings.RepetitionAllowed && hasDuplicates(c) {
		return fmt.Errorf("%w: secret %v repeats a colour", ErrInvalidConfiguration, c)
	}
	g.secret = c
	g.hasSecret = true
	g.scored = false
	return nil
}

// SubmitGuess stores c as the guess for the current row. It does not score
// or advance. A rejected guess leaves the game untouched.
func (g *Game) SubmitGuess(c Code) error {
	if g.outcome.Terminal() {
		return ErrGameAlreadyOver
	}
	if err := g.checkAlphabet(c); err != nil {
		return err
	}
	g.guess = c
	g.hasGuess = true
	g.scored = false
	return nil
}

// ScoreCurrentGuess evaluates the current guess against the secret and caches
// the result as the last score. Calling it again without a new guess returns
// the same score.
func (g *Game) ScoreCurrentGuess() (Score, error) {
	if !g.hasSecret {
		return Score{}, ErrSecretNotGenerated
	}
	if !g.hasGuess {
		return Score{}, ErrNoGuess
	}
	if g.scored {
		return g.last, nil
	}
	g.last = Evaluate(g.secret, g.guess)
	g.scored = true
	return g.last, nil
}

// AdvanceState applies the transition for the scored row.
//   - 4 exact matches → Won.
//   - Else, last row → Lost.
//   - Else → next row.
//
// The win check runs first, so solving on the final row is a win.
func (g *Game) AdvanceState() error {
	if g.outcome.Terminal() {
		return ErrGameAlreadyOver
	}
	if !g.scored {
		return ErrGuessNotScored
	}
	g.history = append(g.history, Attempt{Guess: g.guess, Score: g.last})

	switch {
	case g.last.Solved():
		g.outcome = Won
	case g.row+1 == g.settings.MaxAttempts:
		g.outcome = Lost
	default:
		g.row++
		g.hasGuess = false
		g.scored = false
	}
	return nil
}

// Outcome reports the current game state.
func (g *Game) Outcome() Outcome { return g.outcome }

// Row returns the 0-based index of the current row.
func (g *Game) Row() int { return g.row }

// MaxAttempts returns the number of rows in this game.
func (g *Game) MaxAttempts() int { return g.settings.MaxAttempts }

// LastScore returns the most recently computed score, (0,0) before any.
func (g *Game) LastScore() Score { return g.last }

// Settings returns the configuration the game was created with.
func (g *Game) Settings() Settings { return g.settings }

// Alphabet returns a copy of the active alphabet.
func (g *Game) Alphabet() Alphabet { return append(Alphabet(nil), g.alphabet...) }

// History returns a copy of the completed rows, oldest first.
func (g *Game) History() []Attempt { return append([]Attempt(nil), g.history...) }

// Secret reveals the secret once the game is over; ok is false before that.
func (g *Game) Secret() (c Code, ok bool) {
	if !g.outcome.Terminal() {
		return Code{}, false
	}
	return g.secret, true
}

// Evaluate scores guess against secret.
//
// Exact counts equal positions. The total of common colours is the size of
// the multiset intersection (per colour, the smaller of the two counts), so a
// colour repeated in the guess is credited at most as often as it occurs in
// the secret. Color is that total minus the exact matches.
func Evaluate(secret, guess Code) Score {
	var exact int
	var inSecret, inGuess [256]int
	for i := 0; i < CodeLength; i++ {
		if secret[i] == guess[i] {
			exact++
		}
		inSecret[secret[i]]++
		inGuess[guess[i]]++
	}

	common := 0
	for _, s := range secret {
		if inSecret[s] == 0 {
			continue // colour already counted
		}
		common += min(inSecret[s], inGuess[s])
		inSecret[s] = 0
	}
	return Score{Exact: exact, Color: max(0, common-exact)}
}

// checkAlphabet rejects codes with symbols outside the active alphabet.
func (g *Game) checkAlphabet(c Code) error {
	for i, s := range c {
		if !g.alphabet.Contains(s) {
			return fmt.Errorf("%w: position %d has %d, allowed %v", ErrInvalidSymbol, i, s, g.alphabet)
		}
	}
	return nil
}

// hasDuplicates reports whether any colour appears twice in c.
func hasDuplicates(c Code) bool {
	var seen [256]bool
	for _, s := range c {
		if seen[s] {
			return true
		}
		seen[s] = true
	}
	return false
}

func (g *Game) intN(n int) int {
	if g.rng != nil {
		return g.rng.IntN(n)
	}
	return rand.IntN(n)
}

func (g *Game) perm(n int) []int {
	if g.rng != nil {
		return g.rng.Perm(n)
	}
	return rand.Perm(n)
}

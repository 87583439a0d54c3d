// internal/board/board.go
//
// Decoding board: the state a presentation layer renders around a game.
// Responsibilities:
//   - Hold the peg rows the player edits and the key pegs of scored rows.
//   - Cycle peg colours on the current row only.
//   - Drive the engine's two-step contract: score, record key pegs, advance.
//   - Reveal the secret and lock the board once the game ends.
//   - Keep control-panel settings that apply to the next new game.
//
// A Board is not safe for concurrent use; the UI event loop owns it.
package board

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/robalobadob/mastermind/internal/game"
)

// MaxRows is the largest number of rows a new game may have.
const MaxRows = 12

// ErrRowCount is returned by NewGame when the pending row count is outside 1..MaxRows.
var ErrRowCount = errors.New("row count out of range")

// Notice is a user-facing status produced by the last board action.
type Notice string

const (
	NoticeNone          Notice = ""
	NoticeWon           Notice = "won"
	NoticeLost          Notice = "lost"
	NoticeInvalidSymbol Notice = "invalid_symbol"
	NoticeRowCount      Notice = "row_count"
	NoticeGameOver      Notice = "game_over"
)

// Row is one line of the decoding board.
type Row struct {
	Pegs   game.Code
	Score  game.Score
	Scored bool
}

// Board wraps one game plus the UI-side state around it.
type Board struct {
	log zerolog.Logger
	rng *rand.Rand

	game    *game.Game
	active  game.Settings
	pending game.Settings

	rows   []Row
	cursor int
	notice Notice
}

// Option customises a Board.
type Option func(*Board)

// WithRand makes every game started by the board draw from r.
func WithRand(r *rand.Rand) Option {
	return func(b *Board) { b.rng = r }
}

// New builds a board and starts its first game with s.
func New(s game.Settings, log zerolog.Logger, opts ...Option) (*Board, error) {
	b := &Board{log: log, pending: s}
	for _, o := range opts {
		o(b)
	}
	if err := b.NewGame(); err != nil {
		return nil, err
	}
	return b, nil
}

// NewGame discards the current game and starts one with the pending settings.
// An out-of-range row count leaves the current game in place.
func (b *Board) NewGame() error {
	if err := b.checkRows(); err != nil {
		return err
	}
	var opts []game.Option
	if b.rng != nil {
		opts = append(opts, game.WithRand(b.rng))
	}
	g, err := game.New(b.pending, opts...)
	if err != nil {
		return err
	}
	if err := g.GenerateSecret(); err != nil {
		return err
	}
	b.startWith(g)
	return nil
}

// NewGameWithSecret starts a game with the pending settings and a fixed secret.
func (b *Board) NewGameWithSecret(secret game.Code) error {
	if err := b.checkRows(); err != nil {
		return err
	}
	g, err := game.New(b.pending)
	if err != nil {
		return err
	}
	if err := g.UseSecret(secret); err != nil {
		return err
	}
	b.startWith(g)
	return nil
}

func (b *Board) checkRows() error {
	if n := b.pending.MaxAttempts; n < 1 || n > MaxRows {
		b.notice = NoticeRowCount
		b.log.Debug().Int("rows", n).Msg("new game refused")
		return fmt.Errorf("%w: %d (allowed 1..%d)", ErrRowCount, n, MaxRows)
	}
	return nil
}

func (b *Board) startWith(g *game.Game) {
	b.game = g
	b.active = b.pending
	b.rows = make([]Row, b.active.MaxAttempts)
	b.cursor = 0
	b.notice = NoticeNone
	b.log.Info().
		Int("rows", b.active.MaxAttempts).
		Bool("emptyAllowed", b.active.EmptyAllowed).
		Bool("repetitionAllowed", b.active.RepetitionAllowed).
		Msg("game started")
}

// Check submits the current row, scores it and advances the game.
// Core errors are returned and also recorded as the board notice.
func (b *Board) Check() (game.Score, error) {
	row := b.game.Row()
	pegs := b.rows[row].Pegs

	if err := b.game.SubmitGuess(pegs); err != nil {
		b.notice = noticeFor(err)
		b.log.Debug().Err(err).Int("row", row).Msg("guess rejected")
		return game.Score{}, err
	}
	sc, err := b.game.ScoreCurrentGuess()
	if err != nil {
		return game.Score{}, err
	}
	b.rows[row].Score = sc
	b.rows[row].Scored = true
	if err := b.game.AdvanceState(); err != nil {
		return sc, err
	}

	b.log.Debug().Int("row", row).Int("exact", sc.Exact).Int("color", sc.Color).Msg("guess checked")
	switch b.game.Outcome() {
	case game.Won:
		b.notice = NoticeWon
	case game.Lost:
		b.notice = NoticeLost
	default:
		b.notice = NoticeNone
		b.cursor = 0
	}
	if b.game.Outcome().Terminal() {
		b.log.Info().Str("outcome", b.game.Outcome().String()).Int("rows", row+1).Msg("game over")
	}
	return sc, nil
}

// noticeFor maps engine errors to notices.
func noticeFor(err error) Notice {
	switch {
	case errors.Is(err, game.ErrInvalidSymbol):
		return NoticeInvalidSymbol
	case errors.Is(err, game.ErrGameAlreadyOver):
		return NoticeGameOver
	}
	return NoticeNone
}

// Cycle sets the peg under the cursor to the next colour, wrapping from
// black back to empty. It does nothing once the game is over.
func (b *Board) Cycle() { b.shift(1) }

// CycleBack sets the peg under the cursor to the previous colour.
func (b *Board) CycleBack() { b.shift(game.SymbolCount - 1) }

func (b *Board) shift(by int) {
	if b.locked() {
		return
	}
	p := &b.rows[b.game.Row()].Pegs[b.cursor]
	*p = game.Symbol((int(*p) + by) % game.SymbolCount)
}

// Set puts s on the peg under the cursor.
func (b *Board) Set(s game.Symbol) {
	if b.locked() || int(s) >= game.SymbolCount {
		return
	}
	b.rows[b.game.Row()].Pegs[b.cursor] = s
}

// MoveCursor moves the cursor along the current row, wrapping at both ends.
func (b *Board) MoveCursor(delta int) {
	n := game.CodeLength
	b.cursor = ((b.cursor+delta)%n + n) % n
}

func (b *Board) locked() bool { return b.game.Outcome().Terminal() }

// AdjustRows changes the pending row count by delta. The value is checked
// when the next game starts.
func (b *Board) AdjustRows(delta int) { b.pending.MaxAttempts += delta }

// SetRows sets the pending row count.
func (b *Board) SetRows(n int) { b.pending.MaxAttempts = n }

// ToggleEmpty flips the pending "empty counts as colour" option.
func (b *Board) ToggleEmpty() { b.pending.EmptyAllowed = !b.pending.EmptyAllowed }

// ToggleRepetition flips the pending "colours may repeat" option.
func (b *Board) ToggleRepetition() { b.pending.RepetitionAllowed = !b.pending.RepetitionAllowed }

// Rows returns a copy of the board rows, top first.
func (b *Board) Rows() []Row { return append([]Row(nil), b.rows...) }

// CurrentRow is the index of the editable row.
func (b *Board) CurrentRow() int { return b.game.Row() }

// Cursor is the column of the selected peg.
func (b *Board) Cursor() int { return b.cursor }

// Outcome reports the state of the running game.
func (b *Board) Outcome() game.Outcome { return b.game.Outcome() }

// Hidden returns the secret once the game is over.
func (b *Board) Hidden() (game.Code, bool) { return b.game.Secret() }

// Notice is the status left by the last action.
func (b *Board) Notice() Notice { return b.notice }

// Active returns the settings of the running game.
func (b *Board) Active() game.Settings { return b.active }

// Pending returns the settings the next game will use.
func (b *Board) Pending() game.Settings { return b.pending }

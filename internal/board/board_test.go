package board

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/rs/zerolog"

	"github.com/robalobadob/mastermind/internal/game"
)

func newBoard(t *testing.T, s game.Settings, secret game.Code) *Board {
	t.Helper()
	b, err := New(s, zerolog.Nop(), WithRand(rand.New(rand.NewPCG(1, 1))))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := b.NewGameWithSecret(secret); err != nil {
		t.Fatalf("NewGameWithSecret(%v) failed: %v", secret, err)
	}
	return b
}

// enter puts code on the current row via the cursor.
func enter(b *Board, code game.Code) {
	for i, s := range code {
		b.MoveCursor(i - b.Cursor())
		b.Set(s)
	}
}

func TestNewStartsGame(t *testing.T) {
	b, err := New(game.Settings{MaxAttempts: 8}, zerolog.Nop())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := len(b.Rows()); got != 8 {
		t.Fatalf("len(Rows()) = %d, want 8", got)
	}
	for i, r := range b.Rows() {
		if r.Pegs != (game.Code{}) || r.Scored {
			t.Fatalf("row %d not blank: %+v", i, r)
		}
	}
	if b.Outcome() != game.InProgress || b.CurrentRow() != 0 || b.Cursor() != 0 {
		t.Fatalf("unexpected start: outcome=%v row=%d cursor=%d", b.Outcome(), b.CurrentRow(), b.Cursor())
	}
	if _, ok := b.Hidden(); ok {
		t.Fatal("secret visible at game start")
	}
}

func TestNewRejectsBadRowCount(t *testing.T) {
	for _, rows := range []int{0, 13} {
		if _, err := New(game.Settings{MaxAttempts: rows}, zerolog.Nop()); !errors.Is(err, ErrRowCount) {
			t.Fatalf("New(rows=%d): err = %v, want %v", rows, err, ErrRowCount)
		}
	}
}

func TestCycleWrapsThroughAllColours(t *testing.T) {
	b := newBoard(t, game.Settings{MaxAttempts: 4}, game.Code{1, 2, 3, 4})
	want := []game.Symbol{game.Magenta, game.Green, game.Blue, game.Yellow, game.White, game.Black, game.Empty}
	for i, w := range want {
		b.Cycle()
		if got := b.Rows()[0].Pegs[0]; got != w {
			t.Fatalf("after %d cycles peg = %v, want %v", i+1, got, w)
		}
	}
	b.CycleBack()
	if got := b.Rows()[0].Pegs[0]; got != game.Black {
		t.Fatalf("CycleBack from empty = %v, want %v", got, game.Black)
	}
}

func TestMoveCursorWraps(t *testing.T) {
	b := newBoard(t, game.Settings{MaxAttempts: 4}, game.Code{1, 2, 3, 4})
	tests := []struct {
		delta int
		want  int
	}{
		{delta: -1, want: 3},
		{delta: 1, want: 0},
		{delta: 2, want: 2},
		{delta: 5, want: 3},
	}
	for _, tt := range tests {
		b.MoveCursor(tt.delta)
		if b.Cursor() != tt.want {
			t.Fatalf("MoveCursor(%d): Cursor() = %d, want %d", tt.delta, b.Cursor(), tt.want)
		}
	}
}

func TestCheckRecordsKeyPegsAndAdvances(t *testing.T) {
	b := newBoard(t, game.Settings{MaxAttempts: 4}, game.Code{5, 4, 3, 2})
	enter(b, game.Code{1, 2, 3, 4})
	sc, err := b.Check()
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if sc != (game.Score{Exact: 1, Color: 2}) {
		t.Fatalf("score = %+v, want {1 2}", sc)
	}
	row := b.Rows()[0]
	if !row.Scored || row.Score != sc {
		t.Fatalf("row 0 = %+v, want scored %+v", row, sc)
	}
	if b.CurrentRow() != 1 || b.Cursor() != 0 || b.Notice() != NoticeNone {
		t.Fatalf("row=%d cursor=%d notice=%q, want 1 0 none", b.CurrentRow(), b.Cursor(), b.Notice())
	}
	// Earlier rows are frozen.
	b.Cycle()
	if b.Rows()[0].Pegs != (game.Code{1, 2, 3, 4}) {
		t.Fatalf("row 0 changed after advancing: %v", b.Rows()[0].Pegs)
	}
}

func TestCheckRejectsEmptyPegWhenNotAllowed(t *testing.T) {
	b := newBoard(t, game.Settings{MaxAttempts: 4}, game.Code{1, 2, 3, 4})
	enter(b, game.Code{1, 2, 3, game.Empty})
	if _, err := b.Check(); !errors.Is(err, game.ErrInvalidSymbol) {
		t.Fatalf("Check: err = %v, want %v", err, game.ErrInvalidSymbol)
	}
	if b.Notice() != NoticeInvalidSymbol {
		t.Fatalf("Notice() = %q, want %q", b.Notice(), NoticeInvalidSymbol)
	}
	if b.CurrentRow() != 0 || b.Rows()[0].Scored {
		t.Fatalf("rejected guess advanced the board")
	}
}

func TestCheckAcceptsEmptyPegWhenAllowed(t *testing.T) {
	b := newBoard(t, game.Settings{MaxAttempts: 4, EmptyAllowed: true}, game.Code{0, 1, 2, 3})
	if _, err := b.Check(); err != nil {
		t.Fatalf("Check on blank row: %v", err)
	}
	if got := b.Rows()[0].Score; got != (game.Score{Exact: 1}) {
		t.Fatalf("score = %+v, want {1 0}", got)
	}
}

func TestWinRevealsAndLocks(t *testing.T) {
	b := newBoard(t, game.Settings{MaxAttempts: 2}, game.Code{1, 2, 3, 4})
	enter(b, game.Code{1, 2, 3, 4})
	if _, err := b.Check(); err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if b.Outcome() != game.Won || b.Notice() != NoticeWon {
		t.Fatalf("outcome=%v notice=%q, want won", b.Outcome(), b.Notice())
	}
	secret, ok := b.Hidden()
	if !ok || secret != (game.Code{1, 2, 3, 4}) {
		t.Fatalf("Hidden() = %v, %v", secret, ok)
	}

	b.Cycle()
	b.Set(game.Black)
	if b.Rows()[0].Pegs != (game.Code{1, 2, 3, 4}) {
		t.Fatalf("locked board changed: %v", b.Rows()[0].Pegs)
	}
	if _, err := b.Check(); !errors.Is(err, game.ErrGameAlreadyOver) {
		t.Fatalf("Check after win: err = %v, want %v", err, game.ErrGameAlreadyOver)
	}
	if b.Notice() != NoticeGameOver {
		t.Fatalf("Notice() = %q, want %q", b.Notice(), NoticeGameOver)
	}
}

func TestLossOnLastRow(t *testing.T) {
	b := newBoard(t, game.Settings{MaxAttempts: 2}, game.Code{1, 2, 3, 4})
	for i := 0; i < 2; i++ {
		enter(b, game.Code{4, 3, 2, 1})
		if _, err := b.Check(); err != nil {
			t.Fatalf("Check %d failed: %v", i, err)
		}
	}
	if b.Outcome() != game.Lost || b.Notice() != NoticeLost {
		t.Fatalf("outcome=%v notice=%q, want lost", b.Outcome(), b.Notice())
	}
	if _, ok := b.Hidden(); !ok {
		t.Fatal("secret hidden after loss")
	}
}

func TestPendingSettingsApplyOnNewGame(t *testing.T) {
	b := newBoard(t, game.Settings{MaxAttempts: 8}, game.Code{1, 2, 3, 4})
	b.AdjustRows(2)
	b.ToggleEmpty()
	b.ToggleRepetition()

	want := game.Settings{MaxAttempts: 10, EmptyAllowed: true, RepetitionAllowed: true}
	if b.Pending() != want {
		t.Fatalf("Pending() = %+v, want %+v", b.Pending(), want)
	}
	if b.Active() != (game.Settings{MaxAttempts: 8}) {
		t.Fatalf("Active() changed before new game: %+v", b.Active())
	}
	if err := b.NewGame(); err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	if b.Active() != want || len(b.Rows()) != 10 {
		t.Fatalf("Active()=%+v rows=%d, want %+v and 10 rows", b.Active(), len(b.Rows()), want)
	}
}

func TestNewGameRefusesRowCountAndKeepsGame(t *testing.T) {
	b := newBoard(t, game.Settings{MaxAttempts: 3}, game.Code{1, 2, 3, 4})
	enter(b, game.Code{1, 2, 5, 6})
	if _, err := b.Check(); err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	b.SetRows(13)
	if err := b.NewGame(); !errors.Is(err, ErrRowCount) {
		t.Fatalf("NewGame: err = %v, want %v", err, ErrRowCount)
	}
	if b.Notice() != NoticeRowCount {
		t.Fatalf("Notice() = %q, want %q", b.Notice(), NoticeRowCount)
	}
	if b.CurrentRow() != 1 || len(b.Rows()) != 3 {
		t.Fatalf("running game replaced: row=%d rows=%d", b.CurrentRow(), len(b.Rows()))
	}

	b.SetRows(12)
	if err := b.NewGame(); err != nil {
		t.Fatalf("NewGame(12) failed: %v", err)
	}
	if b.CurrentRow() != 0 || len(b.Rows()) != 12 || b.Notice() != NoticeNone {
		t.Fatalf("new game not started: row=%d rows=%d notice=%q", b.CurrentRow(), len(b.Rows()), b.Notice())
	}
}

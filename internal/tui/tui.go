// Package tui draws the decoding board in a terminal and turns key presses
// into board actions.
//
// Layout, top to bottom: title, hidden code (masked until the game ends),
// one line per guess row with its key pegs, the control panel, the notice
// line and the key hint. The help screen replaces the board while shown.
package tui

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"
	"github.com/rs/zerolog"
	"golang.org/x/text/message"

	"github.com/robalobadob/mastermind/internal/board"
	"github.com/robalobadob/mastermind/internal/game"
	"github.com/robalobadob/mastermind/internal/i18n"
)

// screen is the part of termbox the renderer needs.
type screen interface {
	SetCell(x, y int, ch rune, fg, bg termbox.Attribute)
}

type termboxScreen struct{}

func (termboxScreen) SetCell(x, y int, ch rune, fg, bg termbox.Attribute) {
	termbox.SetCell(x, y, ch, fg, bg)
}

var pegColors = [game.SymbolCount]termbox.Attribute{
	game.Empty:   termbox.ColorDefault,
	game.Magenta: termbox.ColorMagenta,
	game.Green:   termbox.ColorGreen,
	game.Blue:    termbox.ColorBlue,
	game.Yellow:  termbox.ColorYellow,
	game.White:   termbox.ColorWhite,
	game.Black:   termbox.ColorBlack,
}

const (
	keyExact = '●'
	keyColor = '○'
	keyNone  = '·'
	left     = 2 // left margin
)

// UI is the terminal front end for one board.
type UI struct {
	board    *board.Board
	p        *message.Printer
	help     []string
	showHelp bool
	log      zerolog.Logger
}

// New wires a UI around b. help is shown by the help key.
func New(b *board.Board, p *message.Printer, help []string, log zerolog.Logger) *UI {
	return &UI{board: b, p: p, help: help, log: log}
}

// Run takes over the terminal until the user quits.
func (u *UI) Run() error {
	if err := termbox.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer termbox.Close()

	scr := termboxScreen{}
	for {
		if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
			return fmt.Errorf("clear terminal: %w", err)
		}
		u.render(scr)
		if err := termbox.Flush(); err != nil {
			return fmt.Errorf("flush terminal: %w", err)
		}
		ev := termbox.PollEvent()
		if ev.Type == termbox.EventError {
			return fmt.Errorf("poll terminal: %w", ev.Err)
		}
		if quit := u.apply(actionFor(ev)); quit {
			return nil
		}
	}
}

// apply performs a on the board and reports whether the UI should exit.
// While the help screen is up any key other than quit only closes it.
func (u *UI) apply(a action) bool {
	if a.kind == actNone {
		return false
	}
	u.log.Debug().Stringer("action", a.kind).Msg("key")
	if a.kind == actQuit {
		return true
	}
	if u.showHelp {
		u.showHelp = false
		return false
	}

	b := u.board
	switch a.kind {
	case actLeft:
		b.MoveCursor(-1)
	case actRight:
		b.MoveCursor(1)
	case actNext:
		b.Cycle()
	case actPrev:
		b.CycleBack()
	case actSet:
		b.Set(a.symbol)
	case actCheck:
		if _, err := b.Check(); err != nil {
			u.log.Debug().Err(err).Msg("check refused")
		}
	case actNewGame:
		if err := b.NewGame(); err != nil {
			u.log.Debug().Err(err).Msg("new game refused")
		}
	case actRowsUp:
		b.AdjustRows(1)
	case actRowsDown:
		b.AdjustRows(-1)
	case actToggleEmpty:
		b.ToggleEmpty()
	case actToggleRepetition:
		b.ToggleRepetition()
	case actHelp:
		u.showHelp = true
	}
	return false
}

func (u *UI) render(s screen) {
	if u.showHelp {
		u.renderHelp(s)
		return
	}
	b := u.board
	y := 0
	drawText(s, left, y, u.p.Sprintf(i18n.KeyTitle), termbox.ColorDefault|termbox.AttrBold, termbox.ColorDefault)

	y += 2
	x := drawText(s, left, y, "    ", termbox.ColorDefault, termbox.ColorDefault)
	if secret, ok := b.Hidden(); ok {
		for _, sym := range secret {
			x = drawPeg(s, x, y, sym, false)
		}
	} else {
		for i := 0; i < game.CodeLength; i++ {
			x = drawText(s, x, y, "(??)", termbox.ColorDefault, termbox.ColorDefault)
		}
	}

	y += 2
	current := b.CurrentRow()
	live := !b.Outcome().Terminal()
	for i, row := range b.Rows() {
		marker := "  "
		if i == current && live {
			marker = "> "
		}
		x := drawText(s, left, y, fmt.Sprintf("%s%2d", marker, i+1), termbox.ColorDefault, termbox.ColorDefault)
		for col, sym := range row.Pegs {
			x = drawPeg(s, x, y, sym, live && i == current && col == b.Cursor())
		}
		if row.Scored {
			drawText(s, x+1, y, keyPegs(row.Score), termbox.ColorDefault, termbox.ColorDefault)
		}
		y++
	}

	y++
	pending := b.Pending()
	drawText(s, left, y, u.p.Sprintf(i18n.KeyRows, pending.MaxAttempts)+"  "+u.p.Sprintf(i18n.KeyPendingHint),
		termbox.ColorDefault, termbox.ColorDefault)
	y++
	drawText(s, left, y, u.p.Sprintf(i18n.KeyEmptyAllowed, u.onOff(pending.EmptyAllowed)), termbox.ColorDefault, termbox.ColorDefault)
	y++
	drawText(s, left, y, u.p.Sprintf(i18n.KeyRepetition, u.onOff(pending.RepetitionAllowed)), termbox.ColorDefault, termbox.ColorDefault)

	y += 2
	if live {
		drawText(s, left, y, u.p.Sprintf(i18n.KeyAttempt, current+1, b.Active().MaxAttempts), termbox.ColorDefault, termbox.ColorDefault)
	}
	if msg := u.noticeText(b.Notice()); msg != "" {
		drawText(s, left, y+1, msg, termbox.ColorDefault|termbox.AttrBold, termbox.ColorDefault)
	}
	drawText(s, left, y+3, u.p.Sprintf(i18n.KeyKeys), termbox.ColorDefault, termbox.ColorDefault)
}

func (u *UI) renderHelp(s screen) {
	drawText(s, left, 0, u.p.Sprintf(i18n.KeyHelpTitle), termbox.ColorDefault|termbox.AttrBold, termbox.ColorDefault)
	y := 2
	for _, line := range u.help {
		drawText(s, left, y, line, termbox.ColorDefault, termbox.ColorDefault)
		y++
	}
	drawText(s, left, y+1, u.p.Sprintf(i18n.KeyHelpDismiss), termbox.ColorDefault, termbox.ColorDefault)
}

func (u *UI) noticeText(n board.Notice) string {
	switch n {
	case board.NoticeWon:
		return u.p.Sprintf(i18n.KeyNoticeWon)
	case board.NoticeLost:
		return u.p.Sprintf(i18n.KeyNoticeLost)
	case board.NoticeInvalidSymbol:
		return u.p.Sprintf(i18n.KeyNoticeInvalid)
	case board.NoticeRowCount:
		return u.p.Sprintf(i18n.KeyNoticeRowCount, board.MaxRows)
	case board.NoticeGameOver:
		return u.p.Sprintf(i18n.KeyNoticeGameOver)
	}
	return ""
}

func (u *UI) onOff(v bool) string {
	if v {
		return u.p.Sprintf(i18n.KeyOn)
	}
	return u.p.Sprintf(i18n.KeyOff)
}

// keyPegs renders a score as exact marks, then colour marks, padded to four.
func keyPegs(sc game.Score) string {
	out := make([]rune, 0, game.CodeLength)
	for i := 0; i < sc.Exact; i++ {
		out = append(out, keyExact)
	}
	for i := 0; i < sc.Color; i++ {
		out = append(out, keyColor)
	}
	for len(out) < game.CodeLength {
		out = append(out, keyNone)
	}
	return string(out)
}

// drawPeg draws one hole as four cells: bracket, two coloured cells, bracket.
// The selected hole gets square bold brackets.
func drawPeg(s screen, x, y int, sym game.Symbol, selected bool) int {
	open, closing, attr := '(', ')', termbox.ColorDefault
	if selected {
		open, closing, attr = '[', ']', termbox.ColorDefault|termbox.AttrBold
	}
	s.SetCell(x, y, open, attr, termbox.ColorDefault)
	if sym == game.Empty {
		s.SetCell(x+1, y, keyNone, termbox.ColorDefault, termbox.ColorDefault)
		s.SetCell(x+2, y, keyNone, termbox.ColorDefault, termbox.ColorDefault)
	} else {
		bg := pegColors[sym]
		s.SetCell(x+1, y, ' ', termbox.ColorDefault, bg)
		s.SetCell(x+2, y, ' ', termbox.ColorDefault, bg)
	}
	s.SetCell(x+3, y, closing, attr, termbox.ColorDefault)
	return x + 4
}

// drawText writes text from (x, y) and returns the column after it.
// Wide runes take two cells; zero-width runes are dropped.
func drawText(s screen, x, y int, text string, fg, bg termbox.Attribute) int {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		s.SetCell(x, y, r, fg, bg)
		x += w
	}
	return x
}

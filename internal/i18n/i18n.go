// Package i18n holds the UI message catalogue and builds printers for it.
//
// English is the base locale; Hungarian carries the classic board's labels.
// Keys are registered with golang.org/x/text/message, so callers format with
// Printer.Sprintf(key, args...).
package i18n

import (
	"sort"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys.
const (
	KeyTitle          = "title"
	KeyRows           = "panel.rows"
	KeyEmptyAllowed   = "panel.empty_allowed"
	KeyRepetition     = "panel.repetition_allowed"
	KeyPendingHint    = "panel.pending_hint"
	KeyOn             = "panel.on"
	KeyOff            = "panel.off"
	KeyKeys           = "hint.keys"
	KeyNoticeWon      = "notice.won"
	KeyNoticeLost     = "notice.lost"
	KeyNoticeInvalid  = "notice.invalid_symbol"
	KeyNoticeRowCount = "notice.row_count"
	KeyNoticeGameOver = "notice.game_over"
	KeyAttempt        = "status.attempt"
	KeyHelpTitle      = "help.title"
	KeyHelpDismiss    = "help.dismiss"
)

// Base is the fallback language.
var Base = language.English

var catalogue = map[language.Tag]map[string]string{
	language.English: {
		KeyTitle:          "MASTERMIND",
		KeyRows:           "Rows: %d",
		KeyEmptyAllowed:   "Empty hole counts: %s",
		KeyRepetition:     "Colours may repeat: %s",
		KeyPendingHint:    "(applies to the next game)",
		KeyOn:             "on",
		KeyOff:            "off",
		KeyKeys:           "←/→ move  ↑/↓ colour  enter check  n new  h help  q quit",
		KeyNoticeWon:      "CORRECT SOLUTION!",
		KeyNoticeLost:     "NOT THIS TIME!",
		KeyNoticeInvalid:  "Empty holes are not allowed in this game.",
		KeyNoticeRowCount: "The number of rows must be between 1 and %d!",
		KeyNoticeGameOver: "The game is over, start a new one.",
		KeyAttempt:        "Attempt %d of %d",
		KeyHelpTitle:      "HELP",
		KeyHelpDismiss:    "press any key",
	},
	language.Hungarian: {
		KeyTitle:          "MASTERMIND JÁTÉK",
		KeyRows:           "Tippsorok száma: %d",
		KeyEmptyAllowed:   "Üres pozíció is számít: %s",
		KeyRepetition:     "Színek ismétlődése megengedett: %s",
		KeyPendingHint:    "(a következő játéktól érvényes)",
		KeyOn:             "igen",
		KeyOff:            "nem",
		KeyKeys:           "←/→ mozgás  ↑/↓ szín  enter ellenőrzés  n új  h súgó  q kilépés",
		KeyNoticeWon:      "HELYES MEGOLDÁS!",
		KeyNoticeLost:     "EZ MOST NEM SIKERÜLT!",
		KeyNoticeInvalid:  "Ebben a játékban üres pozíció nem tippelhető.",
		KeyNoticeRowCount: "A tippsorok száma 1 és %d között lehet!",
		KeyNoticeGameOver: "A játék véget ért, kezdj újat.",
		KeyAttempt:        "%d. tipp / %d",
		KeyHelpTitle:      "SÚGÓ",
		KeyHelpDismiss:    "nyomj meg egy billentyűt",
	},
}

var (
	registerOnce sync.Once
	supported    []language.Tag // Base first, then by tag string
	matcher      language.Matcher
)

// register installs every catalogue entry with x/text/message.
func register() {
	for tag := range catalogue {
		if tag != Base {
			supported = append(supported, tag)
		}
	}
	sort.Slice(supported, func(i, j int) bool { return supported[i].String() < supported[j].String() })
	supported = append([]language.Tag{Base}, supported...)

	for tag, messages := range catalogue {
		keys := make([]string, 0, len(messages))
		for k := range messages {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			_ = message.SetString(tag, k, messages[k])
		}
	}
	matcher = language.NewMatcher(supported)
}

// Supported returns the catalogue languages, base first.
func Supported() []language.Tag {
	registerOnce.Do(register)
	return append([]language.Tag(nil), supported...)
}

// Match picks the closest supported language for a tag such as "hu" or
// "en-GB". Unknown or malformed input falls back to Base.
func Match(lang string) language.Tag {
	registerOnce.Do(register)
	_, idx := language.MatchStrings(matcher, lang)
	return supported[idx]
}

// NewPrinter returns a printer for the closest supported language.
func NewPrinter(lang string) *message.Printer {
	return message.NewPrinter(Match(lang))
}

package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/width"

	"github.com/lixenwraith/sarada/core"
)

// Translator turns tcell key events into intents for the current session state
type Translator struct {
	table *KeyTable
}

// NewTranslator creates a translator; a nil table uses the defaults
func NewTranslator(table *KeyTable) *Translator {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Translator{table: table}
}

var defaultTranslator = NewTranslator(nil)

// Translate maps ev using the default key table
func Translate(ev *tcell.EventKey, state core.SessionState) Intent {
	return defaultTranslator.Translate(ev, state)
}

// Translate maps one key event; unbound keys yield IntentNone
func (t *Translator) Translate(ev *tcell.EventKey, state core.SessionState) Intent {
	if ev == nil {
		return Intent{}
	}

	key := ev.Key()
	if e, ok := t.table.GlobalKeys[key]; ok {
		return e.intent()
	}

	switch state {
	case core.StatePlaying:
		if e, ok := t.table.PlayingKeys[key]; ok {
			return e.intent()
		}
		if key != tcell.KeyRune || ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return Intent{}
		}
		return Intent{Type: IntentChar, Char: FoldRune(ev.Rune())}

	case core.StateMenu:
		return t.lookup(ev, t.table.MenuKeys, t.table.MenuRunes)

	case core.StateGameOver, core.StateClear:
		return t.lookup(ev, t.table.ResultKeys, t.table.ResultRunes)
	}
	return Intent{}
}

func (t *Translator) lookup(ev *tcell.EventKey, keys map[tcell.Key]KeyEntry, runes map[rune]KeyEntry) Intent {
	if ev.Key() != tcell.KeyRune {
		if e, ok := keys[ev.Key()]; ok {
			return e.intent()
		}
		return Intent{}
	}
	if e, ok := runes[FoldRune(ev.Rune())]; ok {
		return e.intent()
	}
	return Intent{}
}

// FoldRune narrows full-width forms and lowercases, so IME input types like ASCII
// The katakana prolonged sound mark folds to '-', matching long vowels in keys
func FoldRune(r rune) rune {
	switch r {
	case 'ー', '〜', '～':
		return '-'
	}
	if narrow := width.LookupRune(r).Narrow(); narrow != 0 {
		r = narrow
	}
	return unicode.ToLower(r)
}

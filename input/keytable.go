package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sarada/core"
)

// KeyEntry describes a key's behavior without function pointers
type KeyEntry struct {
	IntentType    IntentType
	Difficulty    core.Difficulty
	HasDifficulty bool
}

// KeyTable maps keys to intents per session state
// Playing runes are not tabled: every printable key goes to the resolver
type KeyTable struct {
	// Special keys valid in every state
	GlobalKeys map[tcell.Key]KeyEntry

	// Special keys while playing
	PlayingKeys map[tcell.Key]KeyEntry

	// Menu bindings
	MenuRunes map[rune]KeyEntry
	MenuKeys  map[tcell.Key]KeyEntry

	// GameOver and Clear bindings
	ResultRunes map[rune]KeyEntry
	ResultKeys  map[tcell.Key]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	easy := KeyEntry{IntentConfirmDifficulty, core.DifficultyEasy, true}
	normal := KeyEntry{IntentConfirmDifficulty, core.DifficultyNormal, true}
	hard := KeyEntry{IntentConfirmDifficulty, core.DifficultyHard, true}

	return &KeyTable{
		GlobalKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC: {IntentType: IntentQuit},
			tcell.KeyCtrlQ: {IntentType: IntentQuit},
			tcell.KeyCtrlS: {IntentType: IntentToggleMute},
		},

		PlayingKeys: map[tcell.Key]KeyEntry{
			tcell.KeyEscape:     {IntentType: IntentCancel},
			tcell.KeyBackspace:  {IntentType: IntentBackspace},
			tcell.KeyBackspace2: {IntentType: IntentBackspace},
		},

		MenuRunes: map[rune]KeyEntry{
			'1': easy,
			'2': normal,
			'3': hard,
			'e': easy,
			'n': normal,
			'h': hard,
			'q': {IntentType: IntentQuit},
		},
		MenuKeys: map[tcell.Key]KeyEntry{
			tcell.KeyEnter:  {IntentType: IntentConfirmDifficulty},
			tcell.KeyUp:     {IntentType: IntentSelectPrev},
			tcell.KeyLeft:   {IntentType: IntentSelectPrev},
			tcell.KeyDown:   {IntentType: IntentSelectNext},
			tcell.KeyRight:  {IntentType: IntentSelectNext},
			tcell.KeyTab:    {IntentType: IntentSelectNext},
			tcell.KeyEscape: {IntentType: IntentQuit},
		},

		ResultRunes: map[rune]KeyEntry{
			'r': {IntentType: IntentRetry},
			' ': {IntentType: IntentRetry},
			'm': {IntentType: IntentMenu},
			'q': {IntentType: IntentQuit},
		},
		ResultKeys: map[tcell.Key]KeyEntry{
			tcell.KeyEnter:  {IntentType: IntentRetry},
			tcell.KeyEscape: {IntentType: IntentMenu},
		},
	}
}

func (e KeyEntry) intent() Intent {
	return Intent{Type: e.IntentType, Difficulty: e.Difficulty, HasDifficulty: e.HasDifficulty}
}

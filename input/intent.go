package input

import "github.com/lixenwraith/sarada/core"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Ctrl+C, Ctrl+Q, Esc in menu
	IntentToggleMute // Ctrl+S

	// Playing
	IntentChar      // Folded character for the resolver
	IntentCancel    // Esc drops the lock
	IntentBackspace // Trims the displayed buffer

	// Menu
	IntentSelectPrev        // Up/Left
	IntentSelectNext        // Down/Right/Tab
	IntentConfirmDifficulty // 1/2/3, e/n/h, Enter on selection

	// Result screens
	IntentRetry // r, Enter
	IntentMenu  // m, Esc
)

var intentNames = map[IntentType]string{
	IntentNone:              "none",
	IntentQuit:              "quit",
	IntentToggleMute:        "toggle_mute",
	IntentChar:              "char",
	IntentCancel:            "cancel",
	IntentBackspace:         "backspace",
	IntentSelectPrev:        "select_prev",
	IntentSelectNext:        "select_next",
	IntentConfirmDifficulty: "confirm_difficulty",
	IntentRetry:             "retry",
	IntentMenu:              "menu",
}

func (t IntentType) String() string {
	if name, ok := intentNames[t]; ok {
		return name
	}
	return "unknown"
}

// Intent is the translated result of one key event
type Intent struct {
	Type IntentType
	Char rune // IntentChar only

	// IntentConfirmDifficulty only; HasDifficulty is false for Enter,
	// which confirms the host's current selection
	Difficulty    core.Difficulty
	HasDifficulty bool
}

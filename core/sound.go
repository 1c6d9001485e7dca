package core

// Cue is a fire-and-forget feedback signal for the audio collaborator
type Cue int

const (
	CueTyped    Cue = iota // Correct keystroke on the locked enemy
	CueMiss                // Keystroke with no match
	CueDefeated            // Enemy key completed
	CueStolen              // Enemy reached the plate
	CueGameOver            // Last life lost
	CueClear               // Stage cleared
	CueCount
)

var cueNames = [CueCount]string{"typed", "miss", "defeated", "stolen", "gameover", "clear"}

func (c Cue) String() string {
	if c >= 0 && c < CueCount {
		return cueNames[c]
	}
	return "unknown"
}

// ParseCue maps a cue name back to its value
func ParseCue(name string) (Cue, bool) {
	for i, n := range cueNames {
		if n == name {
			return Cue(i), true
		}
	}
	return 0, false
}

package engine

import (
	"github.com/lixenwraith/sarada/constants"
	"github.com/lixenwraith/sarada/core"
)

// Session is the authoritative game state, mutated only by Loop
// Counters never go negative; Lives only decreases between resets
type Session struct {
	State      core.SessionState
	Difficulty core.Difficulty
	Settings   constants.DifficultySettings

	Score    int
	Combo    int
	MaxCombo int
	Defeated int

	Lives    int
	MaxLives int

	StageProgress int

	// ClearBonus is the life bonus granted on the last Clear
	ClearBonus int
}

func (s *Session) reset(d core.Difficulty, maxLives int) {
	*s = Session{
		State:      s.State,
		Difficulty: d,
		Settings:   constants.Difficulties[d],
		Lives:      maxLives,
		MaxLives:   maxLives,
	}
}

// awardDefeat scores a completed key; combo bonus uses the combo before this defeat
func (s *Session) awardDefeat(keyLen int) int {
	gained := keyLen*constants.ScorePerKeyChar + s.Combo*constants.ScorePerCombo
	s.Score += gained
	s.Combo++
	if s.Combo > s.MaxCombo {
		s.MaxCombo = s.Combo
	}
	s.Defeated++
	return gained
}

// loseLife returns true when the last life is gone
func (s *Session) loseLife() bool {
	if s.Lives > 0 {
		s.Lives--
	}
	s.Combo = 0
	return s.Lives == 0
}

func (s *Session) resetCombo() {
	s.Combo = 0
}

func (s *Session) stageComplete() bool {
	return s.StageProgress >= s.Settings.StageGoal
}

func (s *Session) grantClearBonus() int {
	s.ClearBonus = s.Lives * constants.ClearBonusLife
	s.Score += s.ClearBonus
	return s.ClearBonus
}

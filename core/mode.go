package core

import "strings"

// Difficulty selects the spawn table and enemy speed range
type Difficulty uint8

const (
	DifficultyEasy Difficulty = iota
	DifficultyNormal
	DifficultyHard
	DifficultyCount
)

var difficultyNames = [DifficultyCount]string{"easy", "normal", "hard"}

func (d Difficulty) String() string {
	if d < DifficultyCount {
		return difficultyNames[d]
	}
	return "unknown"
}

// ParseDifficulty accepts the lowercase name or its first letter
func ParseDifficulty(s string) (Difficulty, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range difficultyNames {
		if s == name || (len(s) == 1 && s[0] == name[0]) {
			return Difficulty(i), true
		}
	}
	return DifficultyNormal, false
}

// SessionState is the top-level game phase
// Menu -> Playing -> {GameOver, Clear} -> Menu
type SessionState uint8

const (
	StateMenu SessionState = iota
	StatePlaying
	StateGameOver
	StateClear
)

func (s SessionState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	case StateClear:
		return "clear"
	}
	return "unknown"
}

// EnemyState is the forward-only enemy lifecycle
type EnemyState uint8

const (
	EnemyApproaching EnemyState = iota
	EnemyCarrying
	EnemyDefeated
	EnemyEscaped
)

func (s EnemyState) String() string {
	switch s {
	case EnemyApproaching:
		return "approaching"
	case EnemyCarrying:
		return "carrying"
	case EnemyDefeated:
		return "defeated"
	case EnemyEscaped:
		return "escaped"
	}
	return "unknown"
}

// InputResult is the outcome of feeding one character to an enemy
type InputResult uint8

const (
	InputRejected InputResult = iota
	InputCorrect
	InputComplete
)

package events

import "github.com/lixenwraith/sarada/core"

// EnemyPayload identifies the enemy behind an arrival or defeat
type EnemyPayload struct {
	EnemyID uint64
	KeyLen  int
	Pos     core.Vec2
}

// MissPayload carries the rejected character
type MissPayload struct {
	Char rune
	// Locked is true when a locked enemy rejected the character
	Locked bool
}

// StateChangedPayload describes a session phase transition
type StateChangedPayload struct {
	From core.SessionState
	To   core.SessionState
}

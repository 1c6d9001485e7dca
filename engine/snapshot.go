package engine

import (
	"github.com/lixenwraith/sarada/constants"
	"github.com/lixenwraith/sarada/core"
)

// EnemyView is the render-facing copy of an enemy
type EnemyView struct {
	ID      uint64
	Display string
	Key     string
	Typed   int
	State   core.EnemyState
	Pos     core.Vec2
	Alpha   float64
	Scale   float64
	Locked  bool
}

// ParticleView is the render-facing copy of a particle
type ParticleView struct {
	Pos   core.Vec2
	Size  float64
	Color int
	Alpha float64
}

// HUD carries the session fields the renderer shows
type HUD struct {
	State         core.SessionState
	Difficulty    core.Difficulty
	Score         int
	Combo         int
	MaxCombo      int
	Defeated      int
	Lives         int
	MaxLives      int
	StageProgress int
	StageGoal     int
	ClearBonus    int
}

// Snapshot is one frame's worth of state for the rendering collaborator
type Snapshot struct {
	Frame     uint64
	Board     Board
	HUD       HUD
	Enemies   []EnemyView
	Particles []ParticleView
	Input     string

	// Remaining fraction (1..0) of the shake animations
	InputShake  float64
	ScreenShake float64
}

// Snapshot copies the current state; the result shares nothing with the loop
func (l *Loop) Snapshot() Snapshot {
	s := &l.session
	snap := Snapshot{
		Frame: l.frame,
		Board: *l.board,
		HUD: HUD{
			State:         s.State,
			Difficulty:    s.Difficulty,
			Score:         s.Score,
			Combo:         s.Combo,
			MaxCombo:      s.MaxCombo,
			Defeated:      s.Defeated,
			Lives:         s.Lives,
			MaxLives:      s.MaxLives,
			StageProgress: s.StageProgress,
			StageGoal:     s.Settings.StageGoal,
			ClearBonus:    s.ClearBonus,
		},
		Enemies:     make([]EnemyView, 0, len(l.enemies)),
		Particles:   make([]ParticleView, 0, l.particles.Len()),
		Input:       string(l.buffer),
		InputShake:  l.inputShake / constants.InputShakeMs,
		ScreenShake: l.screenShake / constants.ScreenShakeMs,
	}

	for _, e := range l.enemies {
		snap.Enemies = append(snap.Enemies, EnemyView{
			ID:      e.ID,
			Display: e.Word.Display,
			Key:     e.Key,
			Typed:   e.Typed,
			State:   e.State,
			Pos:     e.Pos,
			Alpha:   e.Alpha,
			Scale:   e.Scale,
			Locked:  e == l.locked,
		})
	}
	for _, p := range l.particles.Particles() {
		snap.Particles = append(snap.Particles, ParticleView{
			Pos:   p.Pos,
			Size:  p.Size,
			Color: p.Color,
			Alpha: p.Alpha,
		})
	}
	return snap
}

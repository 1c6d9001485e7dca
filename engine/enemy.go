package engine

import (
	"math"
	"math/rand"
	"unicode"

	"github.com/lixenwraith/sarada/constants"
	"github.com/lixenwraith/sarada/core"
	"github.com/lixenwraith/sarada/events"
	"github.com/lixenwraith/sarada/words"
)

// fadeEpsilon absorbs float drift in the per-tick alpha decay
const fadeEpsilon = 1e-9

// Enemy is a plate thief carrying one word
// Lifecycle: Approaching -> {Carrying -> Escaped, Defeated}; no state is re-entered
type Enemy struct {
	ID    uint64
	Word  words.WordData
	Key   string // lowercased phonetic key
	Typed int    // runes of Key typed so far, never decreases

	State  core.EnemyState
	Pos    core.Vec2
	Target core.Vec2 // plate position at spawn time
	Speed  float64   // units per tick, drawn once

	// Exit animation
	Alpha float64
	Scale float64

	keyRunes []rune
	heading  core.Vec2 // unit escape direction, fixed on arrival
	board    *Board
}

// newEnemy draws speed and spawn edge from rng
func newEnemy(id uint64, word words.WordData, board *Board, d core.Difficulty, rng *rand.Rand) *Enemy {
	key := toLowerKey(word.Key)
	sr := constants.EnemySpeeds[d]
	e := &Enemy{
		ID:       id,
		Word:     word,
		Key:      string(key),
		keyRunes: key,
		Speed:    sr.Min + rng.Float64()*sr.Spread,
		Alpha:    1,
		Scale:    1,
		board:    board,
	}
	e.spawn(rng)
	return e
}

// spawn places the enemy on a random edge margin and aims it at the plate
func (e *Enemy) spawn(rng *rand.Rand) {
	w, h := e.board.Width, e.board.Height
	m := constants.SpawnMargin

	switch rng.Intn(4) {
	case 0: // top
		e.Pos = core.Vec2{X: rng.Float64() * w, Y: -m}
	case 1: // right
		e.Pos = core.Vec2{X: w + m, Y: rng.Float64() * h}
	case 2: // bottom
		e.Pos = core.Vec2{X: rng.Float64() * w, Y: h + m}
	default: // left
		e.Pos = core.Vec2{X: -m, Y: rng.Float64() * h}
	}
	e.Target = e.board.Center()
}

// Update advances one tick and returns the event it produced, if any
func (e *Enemy) Update() events.EventType {
	switch e.State {
	case core.EnemyApproaching:
		if e.Pos.Sub(e.Target).Len() > constants.ArrivalDistance {
			e.Pos = e.Pos.StepToward(e.Target, e.Speed)
			return events.EventNone
		}
		e.State = core.EnemyCarrying
		e.heading = e.escapeHeading()
		return events.EventEnemyArrived

	case core.EnemyCarrying:
		e.Pos = e.Pos.Add(e.heading.Scale(e.Speed * constants.CarrySpeedFactor))
		if e.outOfBounds() {
			e.State = core.EnemyEscaped
		}

	case core.EnemyDefeated:
		e.Alpha = math.Max(0, e.Alpha-constants.DefeatFadePerTick)
		e.Scale += constants.DefeatGrowPerTick
	}
	return events.EventNone
}

// escapeHeading points past the nearer horizontal and vertical edges
func (e *Enemy) escapeHeading() core.Vec2 {
	w, h := e.board.Width, e.board.Height
	off := constants.EscapeOffset

	dest := core.Vec2{X: w + off, Y: h + off}
	if e.Pos.X < w/2 {
		dest.X = -off
	}
	if e.Pos.Y < h/2 {
		dest.Y = -off
	}

	d := dest.Sub(e.Pos)
	return d.Scale(1 / d.Len())
}

func (e *Enemy) outOfBounds() bool {
	b := constants.EscapeBounds
	return e.Pos.X < -b || e.Pos.X > e.board.Width+b ||
		e.Pos.Y < -b || e.Pos.Y > e.board.Height+b
}

// CheckInput feeds one character; only Approaching enemies accept input
// Complete defeats the enemy and returns EventEnemyDefeated exactly once
func (e *Enemy) CheckInput(c rune) (core.InputResult, events.EventType) {
	next, ok := e.NextRune()
	if !ok || unicode.ToLower(c) != next {
		return core.InputRejected, events.EventNone
	}

	e.Typed++
	if e.Typed == len(e.keyRunes) {
		e.State = core.EnemyDefeated
		return core.InputComplete, events.EventEnemyDefeated
	}
	return core.InputCorrect, events.EventNone
}

// NextRune is the next expected character while Approaching
func (e *Enemy) NextRune() (rune, bool) {
	if e.State != core.EnemyApproaching || e.Typed >= len(e.keyRunes) {
		return 0, false
	}
	return e.keyRunes[e.Typed], true
}

// Expects reports whether c would advance this enemy
func (e *Enemy) Expects(c rune) bool {
	next, ok := e.NextRune()
	return ok && next == c
}

// KeyLen is the key length in runes
func (e *Enemy) KeyLen() int {
	return len(e.keyRunes)
}

// Removable is true once escaped or fully faded after defeat
func (e *Enemy) Removable() bool {
	return e.State == core.EnemyEscaped ||
		(e.State == core.EnemyDefeated && e.Alpha <= fadeEpsilon)
}

func toLowerKey(key string) []rune {
	rs := []rune(key)
	for i, r := range rs {
		rs[i] = unicode.ToLower(r)
	}
	return rs
}

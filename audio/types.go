package audio

import (
	"errors"

	"github.com/lixenwraith/sarada/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Sentinel errors
var (
	ErrNotInitialized = errors.New("sound manager not initialized")
	ErrUnknownCue     = errors.New("unknown sound cue")
)

// defaultCueGains are the per-cue levels before the master volume
var defaultCueGains = map[core.Cue]float64{
	core.CueTyped:    0.3,
	core.CueMiss:     0.2,
	core.CueDefeated: 0.4,
	core.CueStolen:   0.5,
	core.CueGameOver: 0.4,
	core.CueClear:    0.4,
}

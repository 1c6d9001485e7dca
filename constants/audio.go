package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the default speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioDefaultVolume is the master gain applied on top of per-cue gains
	AudioDefaultVolume = 0.3
)

// Typed Blip
const (
	TypedSoundDuration = 50 * time.Millisecond
	TypedSoundFreqMin  = 800.0
	TypedSoundFreqSpan = 200.0
)

// Defeat Sweep (600 -> 1200 -> 800 Hz)
const (
	DefeatSoundDuration = 200 * time.Millisecond
)

// Stolen Sweep (400 -> 150 Hz)
const (
	StolenSoundDuration = 300 * time.Millisecond
)

// Miss Buzz
const (
	MissSoundDuration = 100 * time.Millisecond
	MissSoundFreq     = 200.0
)

// Arpeggios
const (
	GameOverNoteDuration = 150 * time.Millisecond
	GameOverNoteSpacing  = 150 * time.Millisecond

	// Clear notes ring past the next onset
	ClearNoteDuration = 200 * time.Millisecond
	ClearNoteSpacing  = 120 * time.Millisecond

	NoteAttack = 5 * time.Millisecond
)

package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/sarada/constants"
	"github.com/lixenwraith/sarada/core"
)

// SoundManager plays one-shot cues through a single speaker mixer
// Play is fire-and-forget and safe before Initialize, after Cleanup, and while muted
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool
	played      atomic.Int64
}

// NewSoundManager creates a sound manager; a nil config uses the defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	sm := &SoundManager{
		config: cfg,
		mixer:  &beep.Mixer{},
	}
	sm.muted.Store(!cfg.Enabled)
	return sm
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init at %d Hz: %w", sm.config.SampleRate, err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and releases the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.mixer.Clear()
	sm.initialized = false
}

// Play queues the cue's sound on the mixer
func (sm *SoundManager) Play(cue core.Cue) {
	_ = sm.play(cue)
}

func (sm *SoundManager) play(cue core.Cue) error {
	if sm.muted.Load() {
		return nil
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}

	streamer := GetSoundEffect(cue, sm.config)
	if streamer == nil {
		return fmt.Errorf("%w: %d", ErrUnknownCue, cue)
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	sm.played.Add(1)
	return nil
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
}

func (sm *SoundManager) Muted() bool {
	return sm.muted.Load()
}

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Played is the number of cues sent to the mixer
func (sm *SoundManager) Played() int64 {
	return sm.played.Load()
}

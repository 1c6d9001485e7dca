package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/sarada/constants"
	"github.com/lixenwraith/sarada/core"
)

// SweepPoint pins the oscillator frequency at an offset from the start
type SweepPoint struct {
	At   time.Duration
	Freq float64
}

// oscillator generates raw audio waves, optionally gliding between sweep points
type oscillator struct {
	sweep    []sweepSample
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

type sweepSample struct {
	pos  int
	freq float64
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

// NewSweep creates an oscillator whose frequency ramps linearly between points
// Points must be ordered by At; the frequency holds before the first and after the last
func NewSweep(points []SweepPoint, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	o := &oscillator{
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
	for _, p := range points {
		o.sweep = append(o.sweep, sweepSample{pos: rate.N(p.At), freq: p.Freq})
	}
	if len(o.sweep) > 0 {
		o.freq = o.sweep[0].freq
	}
	return o
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.frequencyAt(o.position) / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) frequencyAt(pos int) float64 {
	if len(o.sweep) == 0 {
		return o.freq
	}
	if pos <= o.sweep[0].pos {
		return o.sweep[0].freq
	}
	for i := 1; i < len(o.sweep); i++ {
		a, b := o.sweep[i-1], o.sweep[i]
		if pos <= b.pos {
			t := float64(pos-a.pos) / float64(b.pos-a.pos)
			return a.freq + (b.freq-a.freq)*t
		}
	}
	return o.sweep[len(o.sweep)-1].freq
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an ADSR envelope (simplified to just attack/release)
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

// newFade is an envelope that ramps down across the whole sound
func newFade(s beep.Streamer, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(s, duration, constants.NoteAttack, duration-constants.NoteAttack, rate)
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0

		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators

// CreateTypedSound generates a short high blip with a slightly random pitch
func CreateTypedSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	freq := constants.TypedSoundFreqMin + rand.Float64()*constants.TypedSoundFreqSpan

	var tone beep.Streamer
	if sine, err := generators.SineTone(rate, freq); err == nil {
		tone = beep.Take(rate.N(constants.TypedSoundDuration), sine)
	} else {
		// Sample rate too low for the pitch
		tone = NewOscillator(freq, constants.TypedSoundDuration, WaveSine, rate)
	}
	shaped := newFade(tone, constants.TypedSoundDuration, rate)

	return newVolume(shaped, cfg.gain(core.CueTyped))
}

// CreateMissSound generates a low square buzz
func CreateMissSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(constants.MissSoundFreq, constants.MissSoundDuration, WaveSquare, rate)
	shaped := newFade(osc, constants.MissSoundDuration, rate)

	return newVolume(shaped, cfg.gain(core.CueMiss))
}

// CreateDefeatSound generates a rising then settling square sweep
func CreateDefeatSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.DefeatSoundDuration

	osc := NewSweep([]SweepPoint{
		{At: 0, Freq: 600},
		{At: d / 2, Freq: 1200},
		{At: d, Freq: 800},
	}, d, WaveSquare, rate)
	shaped := newFade(osc, d, rate)

	return newVolume(shaped, cfg.gain(core.CueDefeated))
}

// CreateStolenSound generates a falling sawtooth for a theft
func CreateStolenSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.StolenSoundDuration

	osc := NewSweep([]SweepPoint{
		{At: 0, Freq: 400},
		{At: d, Freq: 150},
	}, d, WaveSaw, rate)
	shaped := newFade(osc, d, rate)

	return newVolume(shaped, cfg.gain(core.CueStolen))
}

// CreateGameOverSound generates a descending four-note phrase
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	notes := []float64{400, 350, 300, 200}

	phrase := arpeggio(notes, constants.GameOverNoteDuration, constants.GameOverNoteSpacing, rate)
	return newVolume(phrase, cfg.gain(core.CueGameOver))
}

// CreateClearSound generates a rising C major arpeggio
func CreateClearSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	notes := []float64{523.25, 659.25, 783.99, 1046.50}

	phrase := arpeggio(notes, constants.ClearNoteDuration, constants.ClearNoteSpacing, rate)
	return newVolume(phrase, cfg.gain(core.CueClear))
}

// arpeggio starts one sine note every spacing; notes may overlap
func arpeggio(freqs []float64, noteDur, spacing time.Duration, rate beep.SampleRate) beep.Streamer {
	voices := make([]beep.Streamer, 0, len(freqs))
	for i, f := range freqs {
		note := newFade(NewOscillator(f, noteDur, WaveSine, rate), noteDur, rate)
		if i == 0 {
			voices = append(voices, note)
			continue
		}
		voices = append(voices, beep.Seq(beep.Silence(rate.N(time.Duration(i)*spacing)), note))
	}
	return beep.Mix(voices...)
}

// GetSoundEffect returns the streamer for a cue, nil for unknown cues
func GetSoundEffect(cue core.Cue, cfg *AudioConfig) beep.Streamer {
	switch cue {
	case core.CueTyped:
		return CreateTypedSound(cfg)
	case core.CueMiss:
		return CreateMissSound(cfg)
	case core.CueDefeated:
		return CreateDefeatSound(cfg)
	case core.CueStolen:
		return CreateStolenSound(cfg)
	case core.CueGameOver:
		return CreateGameOverSound(cfg)
	case core.CueClear:
		return CreateClearSound(cfg)
	default:
		return nil
	}
}

package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/sarada/constants"
	"github.com/lixenwraith/sarada/core"
)

// Environment keys read by LoadAudioConfig
const (
	EnvAudioEnabled = "SARADA_AUDIO_ENABLED"
	EnvMasterVolume = "SARADA_MASTER_VOLUME"
	EnvSFXVolumes   = "SARADA_SFX_VOLUMES"
	EnvSampleRate   = "SARADA_SAMPLE_RATE"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	EffectVolumes map[core.Cue]float64
	SampleRate    int
}

// DefaultAudioConfig returns the built-in levels
func DefaultAudioConfig() *AudioConfig {
	vols := make(map[core.Cue]float64, len(defaultCueGains))
	for cue, v := range defaultCueGains {
		vols[cue] = v
	}
	return &AudioConfig{
		Enabled:       true,
		MasterVolume:  constants.AudioDefaultVolume,
		EffectVolumes: vols,
		SampleRate:    constants.AudioSampleRate,
	}
}

// LoadAudioConfig loads audio configuration from environment variables
// Malformed values are ignored and the default kept
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// 0-100 converted to 0.0-1.0
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampUnit(float64(val) / 100.0)
		}
	}

	// {"typed":0.5,"stolen":1.0}
	if effectVols := os.Getenv(EnvSFXVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for name, v := range volumes {
				if cue, ok := core.ParseCue(name); ok {
					cfg.EffectVolumes[cue] = clampUnit(v)
				}
			}
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

// gain is the final linear level for a cue
func (c *AudioConfig) gain(cue core.Cue) float64 {
	return c.EffectVolumes[cue] * c.MasterVolume
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

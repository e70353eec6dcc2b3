package audio

import (
	"encoding/json"
	"os"
	"strconv"
)

// Environment overrides, applied on top of the file configuration
const (
	EnvEnabled      = "BOXWORLD_AUDIO_ENABLED"
	EnvMasterVolume = "BOXWORLD_MASTER_VOLUME"
	EnvSFXVolumes   = "BOXWORLD_SFX_VOLUMES"
	EnvSampleRate   = "BOXWORLD_SAMPLE_RATE"
)

// AudioConfig holds audio settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the built-in audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		EffectVolumes: map[SoundType]float64{
			SoundRejected: 0.8,
			SoundCreate:   1.0,
			SoundTeleport: 0.6,
			SoundDelete:   0.5,
		},
	}
}

// LoadAudioConfig returns the defaults with environment overrides applied
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()
	cfg.ApplyEnv(os.Getenv)
	return cfg
}

// ApplyEnv overrides fields from the environment lookup; malformed values are ignored
func (cfg *AudioConfig) ApplyEnv(getenv func(string) string) {
	if enabled := getenv(EnvEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is given as 0-100
	if volume := getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampUnit(float64(val) / 100.0)
		}
	}

	// Effect volumes are a JSON object keyed by sound name
	if effectVols := getenv(EnvSFXVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for name, v := range volumes {
				if st, ok := SoundByName(name); ok {
					cfg.EffectVolumes[st] = clampUnit(v)
				}
			}
		}
	}

	if sampleRate := getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}
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

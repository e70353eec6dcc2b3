// Package config loads the boxworld YAML configuration file
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/boxworld/address"
	"github.com/lixenwraith/boxworld/audio"
	"github.com/lixenwraith/boxworld/engine"
	"github.com/lixenwraith/boxworld/input"
	"github.com/lixenwraith/boxworld/persistence"
)

// DefaultPath is used when no -config flag is given
const DefaultPath = "boxworld.yaml"

type Config struct {
	Save     Save            `yaml:"save"`
	Audio    Audio           `yaml:"audio"`
	Observer Observer        `yaml:"observer"`
	Log      Log             `yaml:"log"`
	World    World           `yaml:"world"`
	Keys     input.KeyConfig `yaml:"keys"`
}

type Save struct {
	Backend string `yaml:"backend"` // file | sqlite
	Path    string `yaml:"path"`
	World   string `yaml:"world"` // row key for the sqlite backend
}

type Audio struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"`
	SampleRate   int     `yaml:"sample_rate"`
}

type Observer struct {
	Addr string `yaml:"addr"` // empty disables the spectator feed
}

type Log struct {
	Debug bool   `yaml:"debug"`
	Dir   string `yaml:"dir"`
}

type World struct {
	Seed            string          `yaml:"seed"`
	StarterVortexes []StarterVortex `yaml:"starter_vortexes"`
}

type StarterVortex struct {
	Entry  string `yaml:"entry"`
	Exit   string `yaml:"exit"`
	OneWay bool   `yaml:"one_way"`
}

// Default returns the built-in configuration
func Default() Config {
	ad := audio.DefaultAudioConfig()
	return Config{
		Save: Save{
			Backend: persistence.BackendFile,
			Path:    "boxworld.json",
			World:   "default",
		},
		Audio: Audio{
			Enabled:      ad.Enabled,
			MasterVolume: ad.MasterVolume,
			SampleRate:   ad.SampleRate,
		},
		Log: Log{Dir: "logs"},
		World: World{
			StarterVortexes: []StarterVortex{
				{Entry: "e", Exit: "ea"},
				{Entry: "ey", Exit: "eye"},
			},
		},
	}
}

// Load reads path over the defaults; a missing file yields Default()
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks backend names, volume range and starter vortex addresses
func (c Config) Validate() error {
	var errs []error

	switch c.Save.Backend {
	case persistence.BackendFile, persistence.BackendSQLite:
	default:
		errs = append(errs, fmt.Errorf("save.backend: unknown backend %q", c.Save.Backend))
	}
	if strings.TrimSpace(c.Save.Path) == "" {
		errs = append(errs, errors.New("save.path: empty"))
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		errs = append(errs, fmt.Errorf("audio.master_volume: %v outside [0,1]", c.Audio.MasterVolume))
	}
	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio.sample_rate: %d must be positive", c.Audio.SampleRate))
	}
	for i, v := range c.World.StarterVortexes {
		if !address.IsWellFormed(v.Entry) || !address.IsWellFormed(v.Exit) {
			errs = append(errs, fmt.Errorf("world.starter_vortexes[%d]: malformed address", i))
		} else if v.Entry == v.Exit {
			errs = append(errs, fmt.Errorf("world.starter_vortexes[%d]: entry equals exit", i))
		}
	}
	if _, err := c.Keys.Overrides(); err != nil {
		errs = append(errs, fmt.Errorf("keys: %w", err))
	}

	return errors.Join(errs...)
}

// AudioConfig converts the audio section, then applies environment overrides
func (c Config) AudioConfig(getenv func(string) string) *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.MasterVolume
	ac.SampleRate = c.Audio.SampleRate
	if getenv != nil {
		ac.ApplyEnv(getenv)
	}
	return ac
}

// VortexSpecs returns the starter vortexes in engine form
func (c Config) VortexSpecs() []engine.VortexSpec {
	specs := make([]engine.VortexSpec, 0, len(c.World.StarterVortexes))
	for _, v := range c.World.StarterVortexes {
		specs = append(specs, engine.VortexSpec{Entry: v.Entry, Exit: v.Exit, OneWay: v.OneWay})
	}
	return specs
}

// KeyTable returns the default bindings merged with the keys section
func (c Config) KeyTable() (*input.KeyTable, error) {
	override, err := c.Keys.Overrides()
	if err != nil {
		return nil, err
	}
	return input.MergeKeyTable(input.DefaultKeyTable(), override), nil
}

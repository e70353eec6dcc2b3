package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SoundManager owns the speaker and mixes cues into it
// Implements service.Service
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool
	lastPlayed  [soundTypeCount]time.Time
	now         func() time.Time

	// Speaker hooks, replaced in tests
	openSpeaker  func(sr beep.SampleRate, mixer *beep.Mixer) error
	closeSpeaker func()
}

// NewSoundManager creates a sound manager with the default config
func NewSoundManager() *SoundManager {
	return &SoundManager{
		cfg:          DefaultAudioConfig(),
		mixer:        &beep.Mixer{},
		now:          time.Now,
		openSpeaker:  openSpeaker,
		closeSpeaker: speaker.Close,
	}
}

func openSpeaker(sr beep.SampleRate, mixer *beep.Mixer) error {
	if err := speaker.Init(sr, sr.N(BufferDuration)); err != nil {
		return err
	}
	speaker.Play(mixer)
	return nil
}

// Name implements service.Service
func (sm *SoundManager) Name() string { return "audio" }

// Init picks the first *AudioConfig from args; other args are ignored
func (sm *SoundManager) Init(args ...any) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	for _, arg := range args {
		if cfg, ok := arg.(*AudioConfig); ok && cfg != nil {
			sm.cfg = cfg
			break
		}
	}
	if sm.cfg.SampleRate <= 0 {
		return ErrSampleRate
	}
	return nil
}

// Start opens the speaker; a disabled config leaves the manager silent
func (sm *SoundManager) Start() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}
	if err := sm.openSpeaker(beep.SampleRate(sm.cfg.SampleRate), sm.mixer); err != nil {
		return err
	}
	sm.initialized = true
	return nil
}

// Stop implements service.Service
func (sm *SoundManager) Stop() error {
	sm.Cleanup()
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.mixer.Clear()
	sm.closeSpeaker()
	sm.initialized = false
}

// Play queues a cue; reports whether it was mixed in
// Muted, stopped, unknown and too-soon cues are dropped
func (sm *SoundManager) Play(c Cue) bool {
	st := c.Sound
	if sm.muted.Load() || st < 0 || st >= soundTypeCount {
		return false
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return false
	}

	now := sm.now()
	if now.Sub(sm.lastPlayed[st]) < MinSoundGap {
		return false
	}

	streamer := Synthesize(c, sm.cfg)
	if streamer == nil {
		return false
	}
	sm.lastPlayed[st] = now

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

// ToggleMute flips the mute flag and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	for {
		cur := sm.muted.Load()
		if sm.muted.CompareAndSwap(cur, !cur) {
			return !cur
		}
	}
}

// IsMuted reports the mute flag
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// IsRunning reports whether the speaker is open
func (sm *SoundManager) IsRunning() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

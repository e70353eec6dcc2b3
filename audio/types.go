// Package audio plays short synthesized cues for world transitions
package audio

import (
	"errors"
	"time"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundRejected SoundType = iota // Blocked move or refused action
	SoundCreate                    // Sign or vortex created
	SoundTeleport                  // Vortex jump
	SoundDelete                    // Entity removed
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"rejected", "create", "teleport", "delete"}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// SoundByName resolves a config key to a SoundType
func SoundByName(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}

// Audio timing
const (
	// BufferDuration determines speaker latency
	BufferDuration = 50 * time.Millisecond

	// MinSoundGap between consecutive cues of the same type
	MinSoundGap = 50 * time.Millisecond
)

// Rejected buzz, falling
const (
	rejectedFrom     = 140.0
	rejectedTo       = 90.0
	rejectedDuration = 80 * time.Millisecond
	rejectedAttack   = 5 * time.Millisecond
	rejectedRelease  = 20 * time.Millisecond
)

// Create bell, pitched by nesting depth
const (
	createDuration           = 600 * time.Millisecond
	createAttack             = 5 * time.Millisecond
	createFundamentalRelease = 550 * time.Millisecond
	createOvertoneRelease    = 200 * time.Millisecond
)

// Teleport sweep, rising a third of an octave and lengthening per hop
const (
	teleportFrom       = 220.0
	teleportBase       = 120 * time.Millisecond
	teleportPerHop     = 40 * time.Millisecond
	teleportHopsPerOct = 3.0
)

// Delete chime, a fifth down from the depth pitch
const (
	deleteNote1Duration = 80 * time.Millisecond
	deleteNote2Duration = 280 * time.Millisecond
	deleteAttack        = 5 * time.Millisecond
	deleteNote1Release  = 40 * time.Millisecond
	deleteNote2Release  = 200 * time.Millisecond
)

// Depth pitch: one whole tone per level below the root, capped two octaves up
const (
	rootPitch     = 440.0
	stepsPerOct   = 6.0
	maxPitchSteps = 12
)

// ErrSampleRate is returned by Init for a non-positive sample rate
var ErrSampleRate = errors.New("audio sample rate must be positive")

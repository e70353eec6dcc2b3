package audio

import (
	"github.com/lixenwraith/boxworld/address"
	"github.com/lixenwraith/boxworld/engine"
)

// Cue is one sound request shaped by the event that caused it
type Cue struct {
	Sound SoundType
	Hops  int // teleport chain length
	Depth int // nesting depth of the event address
}

// CueFor maps a world event to its cue; moves are silent
func CueFor(ev engine.Event) (Cue, bool) {
	c := Cue{Hops: ev.Hops, Depth: address.Depth(ev.Address)}
	switch ev.Type {
	case engine.EventMoveBlocked, engine.EventRejected:
		c.Sound = SoundRejected
	case engine.EventTeleported:
		c.Sound = SoundTeleport
	case engine.EventCreated, engine.EventPlaced, engine.EventSignSaved:
		c.Sound = SoundCreate
	case engine.EventDeleted, engine.EventPickedUp:
		c.Sound = SoundDelete
	default:
		return Cue{}, false
	}
	return c, true
}

// PlayEvents plays the cue for each event in order
func (sm *SoundManager) PlayEvents(evs []engine.Event) {
	for _, ev := range evs {
		if c, ok := CueFor(ev); ok {
			sm.Play(c)
		}
	}
}

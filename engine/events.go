package engine

import "github.com/lixenwraith/boxworld/entity"

// EventType classifies what a transition did
type EventType uint8

const (
	EventMoved EventType = iota
	EventMoveBlocked
	EventTeleported
	EventCreated
	EventDeleted
	EventSignSaved
	EventPickedUp
	EventPlaced
	EventRejected
)

func (e EventType) String() string {
	switch e {
	case EventMoved:
		return "moved"
	case EventMoveBlocked:
		return "move_blocked"
	case EventTeleported:
		return "teleported"
	case EventCreated:
		return "created"
	case EventDeleted:
		return "deleted"
	case EventSignSaved:
		return "sign_saved"
	case EventPickedUp:
		return "picked_up"
	case EventPlaced:
		return "placed"
	case EventRejected:
		return "rejected"
	}
	return "unknown"
}

// Event is a record of one outcome, drained by the orchestrator after each transition
type Event struct {
	Type    EventType
	Address string
	Kind    entity.Kind
	Hops    int
}

func (w *World) emit(ev Event) {
	w.events = append(w.events, ev)
}

// DrainEvents returns and clears the pending events
func (w *World) DrainEvents() []Event {
	evs := w.events
	w.events = nil
	return evs
}

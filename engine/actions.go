package engine

import (
	"github.com/lixenwraith/boxworld/address"
	"github.com/lixenwraith/boxworld/entity"
	"github.com/lixenwraith/boxworld/status"
)

// CreateSign places an empty sign at the player's cell
// Rejected when any other entity already occupies or reserves the cell
func (w *World) CreateSign() (*entity.Thing, bool) {
	addr := w.Player().Address
	if w.unavailable(addr) {
		w.reject(addr)
		return nil, false
	}
	s := entity.NewSign(addr, "", w.clock.Now())
	if err := w.reg.Insert(s); err != nil {
		w.reject(addr)
		return nil, false
	}
	w.metrics.Inc(status.MetricCreated)
	w.emit(Event{Type: EventCreated, Address: addr, Kind: entity.KindSign})
	w.Refresh()
	return s, true
}

// CreateVortex places an entry vortex at the player's cell targeting target,
// plus its exit at target unless oneWay
func (w *World) CreateVortex(target string, oneWay bool) bool {
	addr := w.Player().Address
	if w.Reserved(addr) || (!oneWay && w.Reserved(target)) {
		w.reject(addr)
		return false
	}
	if _, _, err := w.graph.CreatePair(addr, target, oneWay, w.clock.Now()); err != nil {
		w.reject(addr)
		return false
	}
	w.metrics.Inc(status.MetricCreated)
	w.emit(Event{Type: EventCreated, Address: addr, Kind: entity.KindVortex})
	w.Refresh()
	return true
}

// QuickVortex creates a two-way pair from the player's cell into the first cell
// of the box nested inside it
func (w *World) QuickVortex() bool {
	addr := w.Player().Address
	return w.CreateVortex(address.Join(addr, 0, 0), false)
}

// Delete removes the entity at addr, applying the entry-only rule to vortexes
// The player is never a candidate
func (w *World) Delete(addr string) bool {
	t, ok := w.reg.FindByAddress(addr)
	if !ok {
		w.reject(addr)
		return false
	}

	switch t.Kind {
	case entity.KindVortex:
		if !w.graph.Delete(addr) {
			w.reject(addr)
			return false
		}
	case entity.KindSign:
		if removed, _ := w.reg.Remove(t); !removed {
			w.reject(addr)
			return false
		}
	default:
		return false
	}

	w.metrics.Inc(status.MetricDeleted)
	w.emit(Event{Type: EventDeleted, Address: addr, Kind: t.Kind})
	w.Refresh()
	return true
}

// DeleteAtPlayer removes the entity sharing the player's cell
func (w *World) DeleteAtPlayer() bool {
	return w.Delete(w.Player().Address)
}

// PickUpOrPlace lifts the sign under the player, or puts the carried sign down
// Placing is rejected on an occupied cell; lifting needs a sign underfoot
func (w *World) PickUpOrPlace() bool {
	addr := w.Player().Address

	if w.carried != nil {
		if w.reg.Occupied(addr) {
			w.reject(addr)
			return false
		}
		s := w.carried
		s.SetAddress(addr)
		if err := w.reg.Insert(s); err != nil {
			w.reject(addr)
			return false
		}
		w.carried = nil
		w.carriedFrom = ""
		w.emit(Event{Type: EventPlaced, Address: addr, Kind: entity.KindSign})
		w.Refresh()
		return true
	}

	s, ok := w.SignAt(addr)
	if !ok || s.Sign.BeingEdited {
		w.reject(addr)
		return false
	}
	if removed, _ := w.reg.Remove(s); !removed {
		w.reject(addr)
		return false
	}
	w.carried = s
	w.carriedFrom = addr
	w.emit(Event{Type: EventPickedUp, Address: addr, Kind: entity.KindSign})
	w.Refresh()
	return true
}

// CommitSignText stores text on sign s, returning true when the text changed
func (w *World) CommitSignText(s *entity.Thing, text string) bool {
	if s == nil || !s.IsSign() {
		return false
	}
	text = entity.NormalizeSignText(text)
	if s.Sign.Text == text {
		return false
	}
	s.Sign.Text = text
	w.emit(Event{Type: EventSignSaved, Address: s.Address, Kind: entity.KindSign})
	w.Refresh()
	return true
}

// Reserved reports whether addr is the origin of the carried sign
// The cell stays claimed until the sign is put down so a save can always write it back
func (w *World) Reserved(addr string) bool {
	return w.carried != nil && addr == w.carriedFrom
}

func (w *World) unavailable(addr string) bool {
	return w.reg.Occupied(addr) || w.Reserved(addr)
}

func (w *World) reject(addr string) {
	w.metrics.Inc(status.MetricRejected)
	w.emit(Event{Type: EventRejected, Address: addr})
}

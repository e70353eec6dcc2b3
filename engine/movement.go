package engine

import (
	"github.com/lixenwraith/boxworld/address"
	"github.com/lixenwraith/boxworld/entity"
	"github.com/lixenwraith/boxworld/status"
)

// Move shifts the player by (dx, dy) inside the current box
// Clamped and barrier-blocked moves leave the world untouched and return false
func (w *World) Move(dx, dy int) bool {
	p := w.Player()
	nx := address.Clamp(p.X + dx)
	ny := address.Clamp(p.Y + dy)
	if nx == p.X && ny == p.Y {
		return false
	}

	box := p.Box()
	target := address.Join(box, nx, ny)
	if w.Blocked(box, target) {
		w.metrics.Inc(status.MetricMovesRejected)
		w.emit(Event{Type: EventMoveBlocked, Address: target})
		return false
	}

	p.SetAddress(target)
	w.metrics.Inc(status.MetricMoves)
	w.emit(Event{Type: EventMoved, Address: target})
	w.afterPositionChange()
	w.Refresh()
	return true
}

// MoveLeft moves one cell left
func (w *World) MoveLeft() bool { return w.Move(-1, 0) }

// MoveRight moves one cell right
func (w *World) MoveRight() bool { return w.Move(1, 0) }

// MoveUp moves one cell up
func (w *World) MoveUp() bool { return w.Move(0, -1) }

// MoveDown moves one cell down
func (w *World) MoveDown() bool { return w.Move(0, 1) }

// Teleport relocates the player to addr without chaining on arrival
// Malformed addresses are ignored
func (w *World) Teleport(addr string) bool {
	if !address.IsWellFormed(addr) {
		return false
	}
	w.Player().SetAddress(addr)
	w.justTeleported = true
	w.metrics.Inc(status.MetricTeleports)
	w.emit(Event{Type: EventTeleported, Address: addr})
	w.afterPositionChange()
	w.Refresh()
	return true
}

// Blocked reports whether target in box holds a barrier not overridden within box
func (w *World) Blocked(box, target string) bool {
	t, ok := w.reg.FindByAddress(target)
	if !ok || !t.HasText(entity.DirectiveBarrier) {
		return false
	}
	for _, s := range w.reg.Signs() {
		if s.HasText(entity.DirectiveIgnoreBarriers) && address.InBox(s.Address, box) {
			return false
		}
	}
	return true
}

// afterPositionChange runs chained teleport resolution from the player's cell
// A pending explicit teleport consumes the trigger instead
func (w *World) afterPositionChange() {
	if w.justTeleported {
		w.justTeleported = false
		return
	}
	p := w.Player()
	end, hops := w.graph.Chain(p.Address)
	if hops == 0 {
		return
	}
	p.SetAddress(end)
	w.metrics.Inc(status.MetricTeleports)
	w.metrics.Add(status.MetricHops, int64(hops))
	w.emit(Event{Type: EventTeleported, Address: end, Hops: hops})
}

package engine

import (
	"github.com/lixenwraith/boxworld/address"
	"github.com/lixenwraith/boxworld/entity"
)

// Refresh recomputes everything derived from current world contents:
// invisibility first, then the tooltips that depend on it
func (w *World) Refresh() {
	w.RecomputeInvisibility()
	w.refreshTooltips()
}

// RecomputeInvisibility derives visibility from "/invisible <address>" signs
// The player is never hidden
func (w *World) RecomputeInvisibility() {
	for _, t := range w.reg.All() {
		if !t.IsPlayer() {
			t.Invisible = false
		}
	}
	for _, s := range w.reg.Signs() {
		target, ok := entity.InvisibleTarget(s.Sign.Text)
		if !ok {
			continue
		}
		if t, ok := w.reg.FindByAddress(target); ok {
			t.Invisible = true
		}
	}
}

// RoomName returns the name given to box by the first "@" sign inside it
func (w *World) RoomName(box string) (string, bool) {
	for _, s := range w.reg.Signs() {
		if !address.InBox(s.Address, box) {
			continue
		}
		if name, ok := entity.RoomName(s.Sign.Text); ok {
			return name, true
		}
	}
	return "", false
}

func (w *World) refreshTooltips() {
	addr := w.Player().Address
	w.tooltips = Tooltips{}

	t, ok := w.reg.FindByAddress(addr)
	if !ok {
		return
	}
	if t.IsSign() {
		w.tooltips.Sign = t.Sign.Text
		w.tooltips.HasSign = true
	}
	if !t.Invisible {
		w.tooltips.OccupantCreated = t.CreatedAt
		w.tooltips.HasOccupant = true
	}
}

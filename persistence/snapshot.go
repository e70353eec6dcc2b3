package persistence

import (
	"github.com/lixenwraith/boxworld/address"
	"github.com/lixenwraith/boxworld/engine"
	"github.com/lixenwraith/boxworld/entity"
)

// Snapshot captures the persisted fields of w
// A carried sign is written back at the address it was lifted from, which the
// world keeps reserved while the sign is held
func Snapshot(w *engine.World) *Document {
	reg := w.Registry()
	doc := &Document{
		Version:          DocumentVersion,
		PlayerAddress:    w.Player().Address,
		ShowCoordinates:  w.ShowCoordinates,
		ShowAdvancedInfo: w.ShowAdvancedInfo,
		Seed:             w.Seed,
	}

	for _, s := range reg.Signs() {
		doc.Signs = append(doc.Signs, signRecord(s, s.Address))
	}
	if s, from, ok := w.Carried(); ok {
		doc.Signs = append(doc.Signs, signRecord(s, from))
	}

	for _, v := range reg.Vortexes() {
		doc.Vortexes = append(doc.Vortexes, VortexRecord{
			Address:       v.Address,
			TargetAddress: v.Vortex.TargetAddress,
			IsEntry:       v.Vortex.IsEntry,
			PairedAddress: v.Vortex.PairedAddress,
			CreatedAt:     v.CreatedAt,
		})
	}
	return doc
}

func signRecord(s *entity.Thing, addr string) SignRecord {
	x, y, _ := address.Position(addr)
	return SignRecord{
		X:         x,
		Y:         y,
		Address:   addr,
		Text:      s.Sign.Text,
		CreatedAt: s.CreatedAt,
	}
}

// Restore replaces w's contents with doc, resolving duplicate addresses
// doc must have passed DecodeDocument; returns the number of dropped duplicates
func Restore(w *engine.World, doc *Document) int {
	signs := make([]*entity.Thing, 0, len(doc.Signs))
	for _, r := range doc.Signs {
		signs = append(signs, entity.NewSign(r.Address, r.Text, r.CreatedAt))
	}
	vortexes := make([]*entity.Thing, 0, len(doc.Vortexes))
	for _, r := range doc.Vortexes {
		vortexes = append(vortexes, entity.NewVortex(r.Address, r.TargetAddress, r.IsEntry, r.PairedAddress, r.CreatedAt))
	}

	w.ShowCoordinates = doc.ShowCoordinates
	w.ShowAdvancedInfo = doc.ShowAdvancedInfo
	w.Seed = doc.Seed
	return w.Restore(doc.PlayerAddress, signs, vortexes)
}

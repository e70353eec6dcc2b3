// Package teleport pairs vortexes and resolves chained jumps between them
package teleport

import (
	"errors"
	"time"

	"github.com/lixenwraith/boxworld/address"
	"github.com/lixenwraith/boxworld/entity"
	"github.com/lixenwraith/boxworld/registry"
)

// MaxHops bounds chained resolution; cyclic layouts stop at the last reached address
const MaxHops = 10

var (
	ErrMalformedAddress = errors.New("teleport: malformed address")
	ErrSameEndpoint     = errors.New("teleport: entry and exit are the same address")
	ErrOccupied         = errors.New("teleport: address occupied")
)

// Graph is the vortex view over a registry
type Graph struct {
	reg *registry.Registry
}

// New creates a graph backed by reg
func New(reg *registry.Registry) *Graph {
	return &Graph{reg: reg}
}

// VortexAt returns the vortex at addr
func (g *Graph) VortexAt(addr string) (*entity.Thing, bool) {
	t, ok := g.reg.FindByAddress(addr)
	if !ok || !t.IsVortex() {
		return nil, false
	}
	return t, true
}

// CreatePair places an entry vortex at entry targeting exit and, unless oneWay,
// an exit vortex at exit targeting entry with reciprocal pairing
// The returned exit is nil for one-way vortexes
func (g *Graph) CreatePair(entry, exit string, oneWay bool, now time.Time) (*entity.Thing, *entity.Thing, error) {
	if !address.IsWellFormed(entry) || !address.IsWellFormed(exit) {
		return nil, nil, ErrMalformedAddress
	}
	if entry == exit {
		return nil, nil, ErrSameEndpoint
	}
	if g.reg.Occupied(entry) {
		return nil, nil, ErrOccupied
	}
	if !oneWay && g.reg.Occupied(exit) {
		return nil, nil, ErrOccupied
	}

	if oneWay {
		in := entity.NewVortex(entry, exit, true, "", now)
		if err := g.reg.Insert(in); err != nil {
			return nil, nil, err
		}
		return in, nil, nil
	}

	in := entity.NewVortex(entry, exit, true, exit, now)
	out := entity.NewVortex(exit, entry, false, entry, now)
	if err := g.reg.Insert(in); err != nil {
		return nil, nil, err
	}
	if err := g.reg.Insert(out); err != nil {
		_, _ = g.reg.Remove(in)
		return nil, nil, err
	}
	return in, out, nil
}

// ResolveFrom returns the target of the vortex at addr, if any
func (g *Graph) ResolveFrom(addr string) (string, bool) {
	v, ok := g.VortexAt(addr)
	if !ok || v.Vortex.TargetAddress == "" {
		return "", false
	}
	return v.Vortex.TargetAddress, true
}

// Chain follows consecutive jumps starting at start, at most MaxHops times
// Landing on the reciprocal side of the vortex just used ends the chain, so a
// two-way pair delivers the traveller instead of bouncing them back
// Unpaired vortexes pointing at each other (A->B, B->A) are not reciprocal and
// run the full MaxHops before stopping
// Returns the final address and the number of hops taken
func (g *Graph) Chain(start string) (string, int) {
	cur := start
	via := ""
	hops := 0
	for hops < MaxHops {
		if via != "" {
			if v, ok := g.VortexAt(cur); ok && v.Vortex.PairedAddress == via {
				break
			}
		}
		target, ok := g.ResolveFrom(cur)
		if !ok || !address.IsWellFormed(target) {
			break
		}
		via = cur
		cur = target
		hops++
	}
	return cur, hops
}

// Delete removes the entry vortex at addr together with its paired exit
// An exit is removable on its own only once its entry is gone
// Non-vortex addresses are left alone; reports whether anything was removed
func (g *Graph) Delete(addr string) bool {
	v, ok := g.VortexAt(addr)
	if !ok {
		return false
	}
	if !v.Vortex.IsEntry {
		if g.partner(v) != nil {
			return false
		}
		removed, _ := g.reg.Remove(v)
		return removed
	}
	if removed, _ := g.reg.Remove(v); !removed {
		return false
	}
	if paired := v.Vortex.PairedAddress; paired != "" {
		if exit, ok := g.VortexAt(paired); ok && !exit.Vortex.IsEntry && exit.Vortex.PairedAddress == addr {
			_, _ = g.reg.Remove(exit)
		}
	}
	return true
}

// Prune repairs pairs that lost one side, e.g. to duplicate resolution on load
// Exits whose entry is gone are removed; entries whose exit is gone become one-way
// Returns the number of exits removed
func (g *Graph) Prune() int {
	var orphans, widowed []*entity.Thing
	for _, v := range g.reg.Vortexes() {
		if v.Vortex.PairedAddress == "" && v.Vortex.IsEntry {
			continue
		}
		if g.partner(v) != nil {
			continue
		}
		if v.Vortex.IsEntry {
			widowed = append(widowed, v)
		} else {
			orphans = append(orphans, v)
		}
	}

	for _, v := range widowed {
		v.Vortex.PairedAddress = ""
	}
	removed := 0
	for _, v := range orphans {
		if ok, _ := g.reg.Remove(v); ok {
			removed++
		}
	}
	return removed
}

// partner returns the other side of a two-way pair, nil when it no longer points back
func (g *Graph) partner(v *entity.Thing) *entity.Thing {
	p, ok := g.VortexAt(v.Vortex.PairedAddress)
	if !ok || p.Vortex.IsEntry == v.Vortex.IsEntry || p.Vortex.PairedAddress != v.Address {
		return nil
	}
	return p
}

// Pairs returns every entry vortex with its exit, nil for one-way entries
func (g *Graph) Pairs() [][2]*entity.Thing {
	var out [][2]*entity.Thing
	for _, v := range g.reg.Vortexes() {
		if !v.Vortex.IsEntry {
			continue
		}
		var exit *entity.Thing
		if p := v.Vortex.PairedAddress; p != "" {
			exit, _ = g.VortexAt(p)
		}
		out = append(out, [2]*entity.Thing{v, exit})
	}
	return out
}

// Package registry owns every placed thing and keeps addresses unique
package registry

import (
	"errors"
	"sort"

	"github.com/lixenwraith/boxworld/address"
	"github.com/lixenwraith/boxworld/entity"
)

// ErrPlayerEntity is returned when the singleton player is inserted or removed
var ErrPlayerEntity = errors.New("registry: player is not a registry-managed entity")

// Registry holds the player plus ordered sign and vortex collections
// all and byAddress are derived views rebuilt after every mutation
// Not safe for concurrent use: one transition completes before the next begins
type Registry struct {
	player   *entity.Thing
	signs    []*entity.Thing
	vortexes []*entity.Thing

	all       []*entity.Thing
	byAddress map[string]*entity.Thing
}

// New creates a registry around the given player
func New(player *entity.Thing) *Registry {
	r := &Registry{player: player}
	r.reindex()
	return r
}

// Player returns the singleton player
func (r *Registry) Player() *entity.Thing {
	return r.player
}

// Signs returns the sign collection in insertion order
func (r *Registry) Signs() []*entity.Thing {
	return r.signs
}

// Vortexes returns the vortex collection in insertion order
func (r *Registry) Vortexes() []*entity.Thing {
	return r.vortexes
}

// All returns the flattened view, player first
func (r *Registry) All() []*entity.Thing {
	return r.all
}

// Count returns the number of non-player entities
func (r *Registry) Count() int {
	return len(r.signs) + len(r.vortexes)
}

// Insert adds a sign or vortex and resolves any address collision it causes
func (r *Registry) Insert(t *entity.Thing) error {
	switch t.Kind {
	case entity.KindSign:
		r.signs = append(r.signs, t)
	case entity.KindVortex:
		r.vortexes = append(r.vortexes, t)
	default:
		return ErrPlayerEntity
	}
	r.ResolveDuplicates()
	return nil
}

// Remove deletes t by identity; reports whether it was present
func (r *Registry) Remove(t *entity.Thing) (bool, error) {
	var removed bool
	switch t.Kind {
	case entity.KindSign:
		r.signs, removed = without(r.signs, t)
	case entity.KindVortex:
		r.vortexes, removed = without(r.vortexes, t)
	default:
		return false, ErrPlayerEntity
	}
	if removed {
		r.reindex()
	}
	return removed, nil
}

// Replace swaps both collections wholesale, then resolves duplicates
// Used by load; entries of the wrong kind are dropped
func (r *Registry) Replace(signs, vortexes []*entity.Thing) int {
	r.signs = r.signs[:0:0]
	r.vortexes = r.vortexes[:0:0]
	for _, s := range signs {
		if s.IsSign() {
			r.signs = append(r.signs, s)
		}
	}
	for _, v := range vortexes {
		if v.IsVortex() {
			r.vortexes = append(r.vortexes, v)
		}
	}
	return r.ResolveDuplicates()
}

// FindByAddress returns the non-player entity at addr
func (r *Registry) FindByAddress(addr string) (*entity.Thing, bool) {
	t, ok := r.byAddress[addr]
	return t, ok
}

// Occupied reports whether a non-player entity sits at addr
func (r *Registry) Occupied(addr string) bool {
	_, ok := r.byAddress[addr]
	return ok
}

// FindInBox returns every thing, player included, directly inside box
func (r *Registry) FindInBox(box string) []*entity.Thing {
	var out []*entity.Thing
	for _, t := range r.all {
		if address.InBox(t.Address, box) {
			out = append(out, t)
		}
	}
	return out
}

// ResolveDuplicates keeps only the latest created entity per address
// Ties on CreatedAt keep the entity later in flattened order (signs, then vortexes); idempotent
// Returns the number of entities removed
func (r *Registry) ResolveDuplicates() int {
	groups := make(map[string][]*entity.Thing)
	var order []string
	for _, t := range r.flatten() {
		if _, seen := groups[t.Address]; !seen {
			order = append(order, t.Address)
		}
		groups[t.Address] = append(groups[t.Address], t)
	}

	losers := make(map[*entity.Thing]struct{})
	for _, addr := range order {
		group := groups[addr]
		if len(group) < 2 {
			continue
		}
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].CreatedAt.Before(group[j].CreatedAt)
		})
		for _, t := range group[:len(group)-1] {
			losers[t] = struct{}{}
		}
	}

	if len(losers) > 0 {
		r.signs = filter(r.signs, losers)
		r.vortexes = filter(r.vortexes, losers)
	}
	r.reindex()
	return len(losers)
}

// flatten lists non-player entities, signs before vortexes, each in insertion order
func (r *Registry) flatten() []*entity.Thing {
	out := make([]*entity.Thing, 0, len(r.signs)+len(r.vortexes))
	out = append(out, r.signs...)
	out = append(out, r.vortexes...)
	return out
}

func (r *Registry) reindex() {
	r.all = make([]*entity.Thing, 0, 1+len(r.signs)+len(r.vortexes))
	if r.player != nil {
		r.all = append(r.all, r.player)
	}
	r.byAddress = make(map[string]*entity.Thing, len(r.signs)+len(r.vortexes))
	for _, t := range r.flatten() {
		r.all = append(r.all, t)
		r.byAddress[t.Address] = t
	}
}

func without(list []*entity.Thing, t *entity.Thing) ([]*entity.Thing, bool) {
	for i, e := range list {
		if e == t {
			return append(list[:i:i], list[i+1:]...), true
		}
	}
	return list, false
}

func filter(list []*entity.Thing, drop map[*entity.Thing]struct{}) []*entity.Thing {
	out := list[:0:0]
	for _, t := range list {
		if _, ok := drop[t]; !ok {
			out = append(out, t)
		}
	}
	return out
}

// Package engine runs the movement and interaction rules of the box world
//
// World is single-threaded: each call is one complete transition. Operations that
// change persisted state return true so the orchestrator knows to save.
package engine

import (
	"time"

	"github.com/lixenwraith/boxworld/address"
	"github.com/lixenwraith/boxworld/entity"
	"github.com/lixenwraith/boxworld/registry"
	"github.com/lixenwraith/boxworld/status"
	"github.com/lixenwraith/boxworld/teleport"
)

// Tooltips is the derived UI state for the player's cell
type Tooltips struct {
	Sign            string
	HasSign         bool
	OccupantCreated time.Time
	HasOccupant     bool
}

// World owns the registry, the teleport graph and the player-facing state
type World struct {
	reg     *registry.Registry
	graph   *teleport.Graph
	clock   Clock
	metrics *status.Registry

	// Display toggles and seed, persisted with the world
	ShowCoordinates  bool
	ShowAdvancedInfo bool
	Seed             string

	justTeleported bool

	carried     *entity.Thing
	carriedFrom string

	tooltips Tooltips
	events   []Event
}

// NewWorld creates a fresh world holding only the player at "a"
// metrics may be nil
func NewWorld(clock Clock, metrics *status.Registry) *World {
	if clock == nil {
		clock = NewTimeProvider()
	}
	reg := registry.New(entity.NewPlayer(clock.Now()))
	w := &World{
		reg:     reg,
		graph:   teleport.New(reg),
		clock:   clock,
		metrics: metrics,
	}
	w.Refresh()
	return w
}

// Registry exposes the entity registry
func (w *World) Registry() *registry.Registry {
	return w.reg
}

// Graph exposes the teleport graph
func (w *World) Graph() *teleport.Graph {
	return w.graph
}

// Player returns the player entity
func (w *World) Player() *entity.Thing {
	return w.reg.Player()
}

// Box returns the player's current box address
func (w *World) Box() string {
	return w.Player().Box()
}

// Now reads the world clock
func (w *World) Now() time.Time {
	return w.clock.Now()
}

// Metrics returns the metric registry, nil when metrics are off
func (w *World) Metrics() *status.Registry {
	return w.metrics
}

// Tooltips returns the tooltip state computed by the last Refresh
func (w *World) Tooltips() Tooltips {
	return w.tooltips
}

// JustTeleported reports whether the next chain trigger is suppressed
func (w *World) JustTeleported() bool {
	return w.justTeleported
}

// SignAt returns the sign at addr
func (w *World) SignAt(addr string) (*entity.Thing, bool) {
	t, ok := w.reg.FindByAddress(addr)
	if !ok || !t.IsSign() {
		return nil, false
	}
	return t, true
}

// Carried returns the sign currently held by the player and the address it was lifted from
func (w *World) Carried() (*entity.Thing, string, bool) {
	if w.carried == nil {
		return nil, "", false
	}
	return w.carried, w.carriedFrom, true
}

// ViewBox returns render records for every thing directly inside box
func (w *World) ViewBox(box string) []entity.View {
	things := w.reg.FindInBox(box)
	views := make([]entity.View, 0, len(things))
	for _, t := range things {
		views = append(views, t.View())
	}
	return views
}

// ToggleCoordinates flips the in-box address overlay
func (w *World) ToggleCoordinates() {
	w.ShowCoordinates = !w.ShowCoordinates
}

// ToggleAdvancedInfo flips the metrics panel
func (w *World) ToggleAdvancedInfo() {
	w.ShowAdvancedInfo = !w.ShowAdvancedInfo
}

// Restore replaces the world contents from persisted state
// The player is placed without chained resolution; duplicates are resolved
// Pairs broken by that resolution are repaired; the return counts every entity dropped
func (w *World) Restore(playerAddr string, signs, vortexes []*entity.Thing) int {
	w.carried = nil
	w.carriedFrom = ""
	w.justTeleported = false
	if address.IsWellFormed(playerAddr) {
		w.Player().SetAddress(playerAddr)
	}
	dropped := w.reg.Replace(signs, vortexes)
	dropped += w.graph.Prune()
	w.Refresh()
	return dropped
}

// VortexSpec describes a vortex pair to place
type VortexSpec struct {
	Entry  string
	Exit   string
	OneWay bool
}

// PlaceVortexes creates each pair that fits; returns how many were placed
func (w *World) PlaceVortexes(specs []VortexSpec) int {
	placed := 0
	for _, s := range specs {
		if _, _, err := w.graph.CreatePair(s.Entry, s.Exit, s.OneWay, w.clock.Now()); err == nil {
			placed++
		}
	}
	w.Refresh()
	return placed
}

package mode

import (
	"github.com/lixenwraith/boxworld/engine"
	"github.com/lixenwraith/boxworld/input"
)

// Outcome reports what the orchestrator must do after one intent
type Outcome struct {
	Quit       bool
	Changed    bool // persisted state changed; save
	Resize     bool
	ToggleMute bool
}

// Router interprets Intents and executes world logic
// Authoritative owner of interaction mode state
type Router struct {
	world   *engine.World
	modes   *Machine
	machine *input.Machine
}

// NewRouter creates a router over world; machine may be nil in tests
func NewRouter(world *engine.World, machine *input.Machine) *Router {
	return &Router{
		world:   world,
		modes:   NewMachine(world),
		machine: machine,
	}
}

// Modes exposes the interaction mode machine
func (r *Router) Modes() *Machine {
	return r.modes
}

// Handle processes one Intent as a complete transition, then refreshes derived state
func (r *Router) Handle(intent *input.Intent) Outcome {
	if intent == nil {
		return Outcome{}
	}

	var out Outcome
	switch intent.Type {
	// System, valid in every mode
	case input.IntentQuit:
		if r.modes.Kind() == EditingSign {
			r.modes.Cancel()
		}
		out.Quit = true
	case input.IntentResize:
		out.Resize = true
	case input.IntentToggleMute:
		out.ToggleMute = true

	default:
		if r.modes.Active() {
			out.Changed = r.handleText(intent)
		} else {
			out.Changed = r.handleNormal(intent)
		}
	}

	r.world.Refresh()
	r.syncInputMode()
	return out
}

// handleNormal runs movement and global commands
func (r *Router) handleNormal(intent *input.Intent) bool {
	w := r.world

	switch intent.Type {
	case input.IntentMove:
		dx, dy := intent.Dir.Delta()
		return w.Move(dx, dy)

	case input.IntentToggleCoordinates:
		w.ToggleCoordinates()
		return true
	case input.IntentToggleAdvancedInfo:
		w.ToggleAdvancedInfo()
		return true

	case input.IntentSignCreateOrEdit:
		return r.handleSign()
	case input.IntentDeleteAtPlayer:
		return w.DeleteAtPlayer()
	case input.IntentQuickVortex:
		return w.QuickVortex()
	case input.IntentPickUpPlace:
		return w.PickUpOrPlace()

	case input.IntentDeleteByAddress:
		r.modes.StartDelete()
	case input.IntentTeleportMode:
		r.modes.StartTeleport()
	case input.IntentCreationMode:
		r.modes.StartCreation()
	}
	return false
}

// handleSign edits the sign under the player, creating one on an empty cell
func (r *Router) handleSign() bool {
	addr := r.world.Player().Address
	if sign, ok := r.world.SignAt(addr); ok {
		r.modes.StartSignEdit(sign)
		return false
	}
	sign, ok := r.world.CreateSign()
	if !ok {
		return false
	}
	r.modes.StartSignEdit(sign)
	return true
}

// handleText feeds buffered modes; movement and global commands are ignored
func (r *Router) handleText(intent *input.Intent) bool {
	switch intent.Type {
	case input.IntentChar:
		return r.modes.AppendChar(intent.Char)
	case input.IntentErase:
		r.modes.Backspace()
	case input.IntentConfirm:
		return r.modes.Confirm()
	case input.IntentCancel:
		r.modes.Cancel()
	}
	return false
}

func (r *Router) syncInputMode() {
	if r.machine == nil {
		return
	}
	if r.modes.Active() {
		r.machine.SetMode(input.ModeText)
	} else {
		r.machine.SetMode(input.ModeNormal)
	}
}

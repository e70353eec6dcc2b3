package mode

import (
	"github.com/lixenwraith/boxworld/address"
	"github.com/lixenwraith/boxworld/engine"
	"github.com/lixenwraith/boxworld/entity"
)

// Kind is the active interaction mode; exactly one is active at a time
type Kind uint8

const (
	Normal Kind = iota
	EditingSign
	Teleporting
	DeletingByAddress
	Creating
)

func (k Kind) String() string {
	switch k {
	case Normal:
		return "normal"
	case EditingSign:
		return "edit"
	case Teleporting:
		return "teleport"
	case DeletingByAddress:
		return "delete"
	case Creating:
		return "create"
	}
	return "unknown"
}

// CreateStep is the guided creation wizard position
type CreateStep uint8

const (
	StepSelectType CreateStep = iota
	StepTargetAddress
	StepDirection
)

// Wizard choices
const (
	choiceVortex = '1'
	choiceSign   = '2'

	choiceOneWay = '1'
	choiceTwoWay = '2'
)

// Machine owns the modal state and its text buffer
// Operations return true when persisted world state changed
type Machine struct {
	world *engine.World

	kind Kind
	step CreateStep
	buf  []rune

	sign   *entity.Thing
	target string
}

// NewMachine creates a machine in Normal mode
func NewMachine(world *engine.World) *Machine {
	return &Machine{
		world: world,
		buf:   make([]rune, 0, entity.MaxSignText),
	}
}

// Kind returns the active mode
func (m *Machine) Kind() Kind {
	return m.kind
}

// Step returns the wizard step, meaningful only while Creating
func (m *Machine) Step() CreateStep {
	return m.step
}

// Active reports whether any buffered mode is in progress
func (m *Machine) Active() bool {
	return m.kind != Normal
}

// Buffer returns the current text buffer
func (m *Machine) Buffer() string {
	return string(m.buf)
}

// EditedSign returns the sign under edit, nil outside EditingSign
func (m *Machine) EditedSign() *entity.Thing {
	return m.sign
}

// StartSignEdit captures sign and copies its text into the buffer
func (m *Machine) StartSignEdit(sign *entity.Thing) bool {
	if m.kind != Normal || sign == nil || !sign.IsSign() {
		return false
	}
	m.kind = EditingSign
	m.sign = sign
	m.buf = append(m.buf[:0], []rune(sign.Sign.Text)...)
	sign.Sign.BeingEdited = true
	return true
}

// StopSignEdit writes the buffer back iff save, then returns to Normal
// Reports whether the sign text changed
func (m *Machine) StopSignEdit(save bool) bool {
	if m.kind != EditingSign {
		return false
	}
	sign := m.sign
	sign.Sign.BeingEdited = false

	changed := false
	if save {
		changed = m.world.CommitSignText(sign, string(m.buf))
	}
	m.reset()
	return changed
}

// StartTeleport enters address entry for an explicit teleport
func (m *Machine) StartTeleport() bool {
	return m.enter(Teleporting)
}

// StartDelete enters address entry for deletion
func (m *Machine) StartDelete() bool {
	return m.enter(DeletingByAddress)
}

// StartCreation enters the guided creation wizard
func (m *Machine) StartCreation() bool {
	return m.enter(Creating)
}

// AppendChar feeds one typed character to the active mode
// Characters outside the mode's alphabet are dropped silently
func (m *Machine) AppendChar(r rune) bool {
	switch m.kind {
	case EditingSign:
		if entity.IsSignRune(r) && len(m.buf) < entity.MaxSignText {
			m.buf = append(m.buf, r)
		}
	case Teleporting, DeletingByAddress:
		m.appendAddress(r)
	case Creating:
		return m.creationChar(r)
	}
	return false
}

// Backspace drops the last buffered character
func (m *Machine) Backspace() {
	switch m.kind {
	case EditingSign, Teleporting, DeletingByAddress:
	case Creating:
		if m.step != StepTargetAddress {
			return
		}
	default:
		return
	}
	if len(m.buf) > 0 {
		m.buf = m.buf[:len(m.buf)-1]
	}
}

// Confirm executes the active mode with the current buffer
func (m *Machine) Confirm() bool {
	switch m.kind {
	case EditingSign:
		return m.StopSignEdit(true)

	case Teleporting:
		addr := string(m.buf)
		m.reset()
		if !address.IsWellFormed(addr) {
			return false
		}
		return m.world.Teleport(addr)

	case DeletingByAddress:
		addr := string(m.buf)
		m.reset()
		if !address.IsWellFormed(addr) {
			return false
		}
		return m.world.Delete(addr)

	case Creating:
		if m.step != StepTargetAddress {
			return false
		}
		target := string(m.buf)
		if !address.IsWellFormed(target) {
			m.reset()
			return false
		}
		m.target = target
		m.buf = m.buf[:0]
		m.step = StepDirection
	}
	return false
}

// Cancel discards all buffered input and returns to Normal
func (m *Machine) Cancel() {
	if m.kind == EditingSign {
		m.StopSignEdit(false)
		return
	}
	m.reset()
}

// Prompt describes the active mode for the status line
func (m *Machine) Prompt() string {
	switch m.kind {
	case EditingSign:
		return "Sign: " + string(m.buf)
	case Teleporting:
		return "Teleport to: " + string(m.buf)
	case DeletingByAddress:
		return "Delete at: " + string(m.buf)
	case Creating:
		switch m.step {
		case StepSelectType:
			return "Create: 1 vortex, 2 sign"
		case StepTargetAddress:
			return "Vortex target: " + string(m.buf)
		case StepDirection:
			return "Vortex to " + m.target + ": 1 one-way, 2 two-way"
		}
	}
	return ""
}

func (m *Machine) enter(k Kind) bool {
	if m.kind != Normal {
		return false
	}
	m.reset()
	m.kind = k
	return true
}

func (m *Machine) appendAddress(r rune) {
	if address.IsSymbol(r) {
		m.buf = append(m.buf, r)
	}
}

func (m *Machine) creationChar(r rune) bool {
	switch m.step {
	case StepSelectType:
		switch r {
		case choiceVortex:
			m.step = StepTargetAddress
		case choiceSign:
			m.reset()
			sign, ok := m.world.CreateSign()
			if !ok {
				return false
			}
			m.StartSignEdit(sign)
			return true
		}

	case StepTargetAddress:
		m.appendAddress(r)

	case StepDirection:
		if r != choiceOneWay && r != choiceTwoWay {
			return false
		}
		target := m.target
		m.reset()
		return m.world.CreateVortex(target, r == choiceOneWay)
	}
	return false
}

func (m *Machine) reset() {
	m.kind = Normal
	m.step = StepSelectType
	m.buf = m.buf[:0]
	m.sign = nil
	m.target = ""
}

package input

import "github.com/gdamore/tcell/v2"

// InputMode mirrors the interaction mode for parser context
// Kept in sync by mode.Router via SetMode()
type InputMode uint8

const (
	ModeNormal InputMode = iota
	ModeText             // any buffered mode: sign edit, teleport, delete, creation
)

// Machine is the input state machine
// Parses tcell events into semantic Intents
type Machine struct {
	mode     InputMode
	keyTable *KeyTable
}

// NewMachine creates a new input machine with the default bindings
func NewMachine() *Machine {
	return &Machine{
		mode:     ModeNormal,
		keyTable: DefaultKeyTable(),
	}
}

// SetKeyTable swaps the active bindings
func (m *Machine) SetKeyTable(kt *KeyTable) {
	if kt != nil {
		m.keyTable = kt
	}
}

// KeyTable returns the active bindings
func (m *Machine) KeyTable() *KeyTable {
	return m.keyTable
}

// SetMode updates the parser's mode context
func (m *Machine) SetMode(mode InputMode) {
	m.mode = mode
}

// Mode returns the parser's mode context
func (m *Machine) Mode() InputMode {
	return m.mode
}

// Process parses a tcell event and returns an Intent
// Returns nil for unbound keys and events the world does not care about
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		if m.mode == ModeText {
			return m.processText(ev)
		}
		return m.processNormal(ev)
	}
	return nil
}

// === Normal Mode Processing ===

func (m *Machine) processNormal(ev *tcell.EventKey) *Intent {
	if ev.Key() != tcell.KeyRune {
		if entry, ok := m.keyTable.SpecialKeys[ev.Key()]; ok {
			return buildIntent(entry)
		}
		return nil
	}

	if entry, ok := m.keyTable.NormalRunes[ev.Rune()]; ok {
		return buildIntent(entry)
	}
	return nil
}

// === Text Mode Processing ===

func (m *Machine) processText(ev *tcell.EventKey) *Intent {
	if ev.Key() != tcell.KeyRune {
		if entry, ok := m.keyTable.TextKeys[ev.Key()]; ok {
			return buildIntent(entry)
		}
		return nil
	}

	// Alphabet filtering is the mode's job; every rune is forwarded
	return &Intent{
		Type: IntentChar,
		Char: ev.Rune(),
	}
}

func buildIntent(entry KeyEntry) *Intent {
	switch entry.Behavior {
	case BehaviorMove:
		return &Intent{Type: IntentMove, Dir: entry.Dir}
	case BehaviorAction, BehaviorSystem:
		return &Intent{Type: entry.IntentType}
	}
	return nil
}

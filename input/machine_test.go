package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestNormalModeMovementBindings(t *testing.T) {
	m := NewMachine()

	tests := []struct {
		ev  *tcell.EventKey
		dir Direction
	}{
		{runeKey('h'), DirLeft},
		{runeKey('a'), DirLeft},
		{runeKey('l'), DirRight},
		{runeKey('d'), DirRight},
		{runeKey('k'), DirUp},
		{runeKey('w'), DirUp},
		{runeKey('j'), DirDown},
		{runeKey('s'), DirDown},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), DirLeft},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), DirRight},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), DirUp},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), DirDown},
	}

	for _, tt := range tests {
		intent := m.Process(tt.ev)
		if intent == nil {
			t.Fatalf("Expected intent for %v, got nil", tt.ev.Name())
		}
		if intent.Type != IntentMove || intent.Dir != tt.dir {
			t.Errorf("%s: expected move %d, got type %d dir %d", tt.ev.Name(), tt.dir, intent.Type, intent.Dir)
		}
	}
}

func TestNormalModeActions(t *testing.T) {
	m := NewMachine()

	tests := []struct {
		r    rune
		want IntentType
	}{
		{'c', IntentToggleCoordinates},
		{'i', IntentToggleAdvancedInfo},
		{'e', IntentSignCreateOrEdit},
		{'x', IntentDeleteAtPlayer},
		{'X', IntentDeleteByAddress},
		{'t', IntentTeleportMode},
		{'n', IntentCreationMode},
		{'v', IntentQuickVortex},
		{'p', IntentPickUpPlace},
	}

	for _, tt := range tests {
		intent := m.Process(runeKey(tt.r))
		if intent == nil || intent.Type != tt.want {
			t.Errorf("Key %q: expected intent %d, got %+v", tt.r, tt.want, intent)
		}
	}
}

func TestNormalModeUnboundKeyIgnored(t *testing.T) {
	m := NewMachine()
	if intent := m.Process(runeKey('z')); intent != nil {
		t.Errorf("Expected nil for unbound key, got %+v", intent)
	}
}

func TestQuitInBothModes(t *testing.T) {
	m := NewMachine()
	for _, mode := range []InputMode{ModeNormal, ModeText} {
		m.SetMode(mode)
		for _, k := range []tcell.Key{tcell.KeyCtrlQ, tcell.KeyCtrlC} {
			intent := m.Process(tcell.NewEventKey(k, 0, tcell.ModCtrl))
			if intent == nil || intent.Type != IntentQuit {
				t.Errorf("Mode %d: expected quit, got %+v", mode, intent)
			}
		}
	}
}

func TestTextModeForwardsRunes(t *testing.T) {
	m := NewMachine()
	m.SetMode(ModeText)

	// Movement keys become characters while typing
	for _, r := range []rune{'h', 'x', '1', '!', ' '} {
		intent := m.Process(runeKey(r))
		if intent == nil || intent.Type != IntentChar || intent.Char != r {
			t.Errorf("Expected char %q, got %+v", r, intent)
		}
	}
}

func TestTextModeControlKeys(t *testing.T) {
	m := NewMachine()
	m.SetMode(ModeText)

	tests := []struct {
		key  tcell.Key
		want IntentType
	}{
		{tcell.KeyEnter, IntentConfirm},
		{tcell.KeyEscape, IntentCancel},
		{tcell.KeyBackspace, IntentErase},
		{tcell.KeyBackspace2, IntentErase},
	}

	for _, tt := range tests {
		intent := m.Process(tcell.NewEventKey(tt.key, 0, tcell.ModNone))
		if intent == nil || intent.Type != tt.want {
			t.Errorf("Key %d: expected intent %d, got %+v", tt.key, tt.want, intent)
		}
	}

	if intent := m.Process(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)); intent != nil {
		t.Errorf("Expected arrows to be ignored while typing, got %+v", intent)
	}
}

func TestResizeIntent(t *testing.T) {
	m := NewMachine()
	intent := m.Process(tcell.NewEventResize(80, 24))
	if intent == nil || intent.Type != IntentResize {
		t.Errorf("Expected resize intent, got %+v", intent)
	}
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{DirLeft, -1, 0},
		{DirRight, 1, 0},
		{DirUp, 0, -1},
		{DirDown, 0, 1},
		{DirNone, 0, 0},
	}
	for _, tt := range tests {
		dx, dy := tt.dir.Delta()
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("Direction %d: expected (%d,%d), got (%d,%d)", tt.dir, tt.dx, tt.dy, dx, dy)
		}
	}
}

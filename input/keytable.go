package input

import "github.com/gdamore/tcell/v2"

// KeyBehavior classifies how a key is processed
type KeyBehavior uint8

const (
	BehaviorNone KeyBehavior = iota
	BehaviorMove
	BehaviorAction
	BehaviorSystem
)

// KeyEntry describes a key's behavior without function pointers
type KeyEntry struct {
	Behavior   KeyBehavior
	Dir        Direction
	IntentType IntentType
}

// KeyTable maps keys to behaviors for both input modes
type KeyTable struct {
	// Special keys in Normal mode (Ctrl+*, arrows, Enter)
	SpecialKeys map[tcell.Key]KeyEntry

	// Normal mode rune bindings
	NormalRunes map[rune]KeyEntry

	// Special keys while a buffered mode is active; runes become IntentChar
	TextKeys map[tcell.Key]KeyEntry
}

func move(d Direction) KeyEntry {
	return KeyEntry{BehaviorMove, d, IntentMove}
}

func action(t IntentType) KeyEntry {
	return KeyEntry{BehaviorAction, DirNone, t}
}

func system(t IntentType) KeyEntry {
	return KeyEntry{BehaviorSystem, DirNone, t}
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlQ:  system(IntentQuit),
			tcell.KeyCtrlC:  system(IntentQuit),
			tcell.KeyCtrlS:  system(IntentToggleMute),
			tcell.KeyEscape: system(IntentCancel),
			tcell.KeyEnter:  action(IntentSignCreateOrEdit),
			tcell.KeyDelete: action(IntentDeleteAtPlayer),
			tcell.KeyUp:     move(DirUp),
			tcell.KeyDown:   move(DirDown),
			tcell.KeyLeft:   move(DirLeft),
			tcell.KeyRight:  move(DirRight),
		},

		NormalRunes: map[rune]KeyEntry{
			// Vi keys
			'h': move(DirLeft),
			'j': move(DirDown),
			'k': move(DirUp),
			'l': move(DirRight),

			// WASD
			'a': move(DirLeft),
			's': move(DirDown),
			'w': move(DirUp),
			'd': move(DirRight),

			// Display
			'c': action(IntentToggleCoordinates),
			'i': action(IntentToggleAdvancedInfo),

			// World edits
			'e': action(IntentSignCreateOrEdit),
			'x': action(IntentDeleteAtPlayer),
			'X': action(IntentDeleteByAddress),
			't': action(IntentTeleportMode),
			'n': action(IntentCreationMode),
			'v': action(IntentQuickVortex),
			'p': action(IntentPickUpPlace),
		},

		TextKeys: map[tcell.Key]KeyEntry{
			tcell.KeyEnter:      system(IntentConfirm),
			tcell.KeyEscape:     system(IntentCancel),
			tcell.KeyBackspace:  system(IntentErase),
			tcell.KeyBackspace2: system(IntentErase),
			tcell.KeyCtrlQ:      system(IntentQuit),
			tcell.KeyCtrlC:      system(IntentQuit),
		},
	}
}

// Clone returns a deep copy of the KeyTable with independent maps
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: cloneMap(kt.SpecialKeys),
		NormalRunes: cloneMap(kt.NormalRunes),
		TextKeys:    cloneMap(kt.TextKeys),
	}
}

func cloneMap[K comparable](m map[K]KeyEntry) map[K]KeyEntry {
	c := make(map[K]KeyEntry, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Ctrl+Q, Ctrl+C
	IntentResize     // Terminal resize event
	IntentToggleMute // Ctrl+S

	// Control intents, valid in every mode
	IntentCancel  // Escape
	IntentConfirm // Enter
	IntentErase   // Backspace

	// Normal mode
	IntentMove // h,j,k,l,w,a,s,d,arrows
	IntentToggleCoordinates
	IntentToggleAdvancedInfo
	IntentSignCreateOrEdit
	IntentDeleteAtPlayer
	IntentDeleteByAddress
	IntentTeleportMode
	IntentCreationMode
	IntentQuickVortex
	IntentPickUpPlace

	// Text entry modes
	IntentChar // Printable character
)

// Direction identifies a movement delta
type Direction uint8

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

// Delta returns the (dx, dy) step for d
func (d Direction) Delta() (int, int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	}
	return 0, 0
}

// Intent represents a parsed semantic action
// Pure data struct with no engine dependencies
type Intent struct {
	Type IntentType
	Dir  Direction
	Char rune // Typed char in text modes
}

package entity

// Glyphs and colours per variant
const (
	PlayerSymbol = 'o'
	SignSymbol   = '■'
	VortexSymbol = '@'
)

// PlayerStart is the address the player is created at
const PlayerStart = "a"

var (
	PlayerColor      = RGB{255, 100, 255}
	SignColor        = RGB{200, 200, 100}
	SignEditColor    = RGB{255, 255, 255}
	VortexEntryColor = RGB{30, 144, 255}
	VortexExitColor  = RGB{255, 165, 0}
)

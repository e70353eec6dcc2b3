package input

import "github.com/gdamore/tcell/v2"

// keyNames maps lowercase key names usable in keymap config to tcell keys
var keyNames = map[string]tcell.Key{
	"enter":     tcell.KeyEnter,
	"escape":    tcell.KeyEscape,
	"esc":       tcell.KeyEscape,
	"backspace": tcell.KeyBackspace2,
	"tab":       tcell.KeyTab,
	"backtab":   tcell.KeyBacktab,
	"delete":    tcell.KeyDelete,
	"insert":    tcell.KeyInsert,
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"pgup":      tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
	"f1":        tcell.KeyF1,
	"f2":        tcell.KeyF2,
	"f3":        tcell.KeyF3,
	"f4":        tcell.KeyF4,
	"f5":        tcell.KeyF5,
	"f6":        tcell.KeyF6,
	"f7":        tcell.KeyF7,
	"f8":        tcell.KeyF8,
	"f9":        tcell.KeyF9,
	"f10":       tcell.KeyF10,
	"f11":       tcell.KeyF11,
	"f12":       tcell.KeyF12,
	"ctrl+a":    tcell.KeyCtrlA,
	"ctrl+b":    tcell.KeyCtrlB,
	"ctrl+c":    tcell.KeyCtrlC,
	"ctrl+d":    tcell.KeyCtrlD,
	"ctrl+e":    tcell.KeyCtrlE,
	"ctrl+f":    tcell.KeyCtrlF,
	"ctrl+g":    tcell.KeyCtrlG,
	"ctrl+n":    tcell.KeyCtrlN,
	"ctrl+o":    tcell.KeyCtrlO,
	"ctrl+p":    tcell.KeyCtrlP,
	"ctrl+q":    tcell.KeyCtrlQ,
	"ctrl+r":    tcell.KeyCtrlR,
	"ctrl+s":    tcell.KeyCtrlS,
	"ctrl+t":    tcell.KeyCtrlT,
	"ctrl+u":    tcell.KeyCtrlU,
	"ctrl+v":    tcell.KeyCtrlV,
	"ctrl+w":    tcell.KeyCtrlW,
	"ctrl+x":    tcell.KeyCtrlX,
	"ctrl+y":    tcell.KeyCtrlY,
	"ctrl+z":    tcell.KeyCtrlZ,
}

// KeyByName resolves a config key name, case-insensitive at the caller
func KeyByName(name string) (tcell.Key, bool) {
	k, ok := keyNames[name]
	return k, ok
}

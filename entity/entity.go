// Package entity defines the things that occupy addresses: the player, signs and vortexes
package entity

import (
	"fmt"
	"time"

	"github.com/lixenwraith/boxworld/address"
)

// Kind discriminates the Thing variants
type Kind uint8

const (
	KindPlayer Kind = iota
	KindSign
	KindVortex
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindSign:
		return "sign"
	case KindVortex:
		return "vortex"
	}
	return "unknown"
}

// MarshalText encodes the kind by name
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// RGB is a 24-bit display colour
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Header is the capability set shared by every variant
// X and Y mirror the last address symbol; Address is authoritative
type Header struct {
	Address   string
	X, Y      int
	Symbol    rune
	Color     RGB
	CreatedAt time.Time
	Invisible bool
}

// SignData is the payload of a sign
type SignData struct {
	Text        string
	BeingEdited bool
}

// VortexData is the payload of a vortex
// IsEntry true is the blue, enterable side; PairedAddress empty means one-way
type VortexData struct {
	TargetAddress string
	IsEntry       bool
	PairedAddress string
}

// Thing is a tagged variant: Kind selects which payload pointer is set
type Thing struct {
	Header
	Kind   Kind
	Sign   *SignData
	Vortex *VortexData
}

// NewPlayer creates the player at the origin cell of the root box
func NewPlayer(now time.Time) *Thing {
	t := &Thing{
		Header: Header{Symbol: PlayerSymbol, Color: PlayerColor, CreatedAt: now},
		Kind:   KindPlayer,
	}
	t.SetAddress(PlayerStart)
	return t
}

// NewSign creates a sign at addr; text is normalised and truncated
func NewSign(addr, text string, now time.Time) *Thing {
	t := &Thing{
		Header: Header{Symbol: SignSymbol, Color: SignColor, CreatedAt: now},
		Kind:   KindSign,
		Sign:   &SignData{Text: NormalizeSignText(text)},
	}
	t.SetAddress(addr)
	return t
}

// NewVortex creates one side of a vortex pair at addr
func NewVortex(addr, target string, isEntry bool, paired string, now time.Time) *Thing {
	color := VortexExitColor
	if isEntry {
		color = VortexEntryColor
	}
	t := &Thing{
		Header: Header{Symbol: VortexSymbol, Color: color, CreatedAt: now},
		Kind:   KindVortex,
		Vortex: &VortexData{TargetAddress: target, IsEntry: isEntry, PairedAddress: paired},
	}
	t.SetAddress(addr)
	return t
}

// SetAddress moves the thing, keeping X and Y in sync with the last symbol
// Panics on a malformed address: callers validate user input before constructing entities
func (t *Thing) SetAddress(addr string) {
	x, y, ok := address.Position(addr)
	if !ok || !address.IsWellFormed(addr) {
		panic(fmt.Sprintf("entity: malformed address %q for %s", addr, t.Kind))
	}
	t.Address = addr
	t.X = x
	t.Y = y
}

// Box returns the address of the box containing the thing
func (t *Thing) Box() string {
	return address.BoxOf(t.Address)
}

// IsPlayer reports whether t is the player
func (t *Thing) IsPlayer() bool {
	return t.Kind == KindPlayer
}

// IsSign reports whether t is a sign
func (t *Thing) IsSign() bool {
	return t.Kind == KindSign && t.Sign != nil
}

// IsVortex reports whether t is a vortex
func (t *Thing) IsVortex() bool {
	return t.Kind == KindVortex && t.Vortex != nil
}

// Text returns the sign text, empty for other kinds
func (t *Thing) Text() string {
	if !t.IsSign() {
		return ""
	}
	return t.Sign.Text
}

// HasText reports whether t is a sign whose text equals s exactly
func (t *Thing) HasText(s string) bool {
	return t.IsSign() && t.Sign.Text == s
}

// Glyph resolves the current symbol and colour for drawing
func (t *Thing) Glyph() (rune, RGB) {
	switch t.Kind {
	case KindSign:
		if t.Sign != nil && t.Sign.BeingEdited {
			return t.Symbol, SignEditColor
		}
	case KindVortex:
		if t.Vortex != nil && t.Vortex.IsEntry {
			return t.Symbol, VortexEntryColor
		}
		return t.Symbol, VortexExitColor
	}
	return t.Symbol, t.Color
}

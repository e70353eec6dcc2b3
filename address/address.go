// Package address maps between nested 5×5 grid positions and address strings
//
// An address is a non-empty string over a 25-symbol alphabet. The last symbol is the
// position inside the immediate box (index = y*5+x), the prefix is the box address,
// itself an address into the parent box. The empty string is the root box.
package address

import "strings"

// GridSize is the side length of every box
const GridSize = 5

// Alphabet holds the 25 position symbols, index y*GridSize+x
const Alphabet = "abcdefghijklmnopqrstuvwxy"

// MaxCoord is the largest valid coordinate on either axis
const MaxCoord = GridSize - 1

// Root is the box address of the outermost box
const Root = ""

// Encode returns the symbol for position (x, y)
// Caller guarantees 0 <= x,y <= MaxCoord; use Clamp upstream
func Encode(x, y int) byte {
	return Alphabet[y*GridSize+x]
}

// Decode returns the position encoded by symbol c
// ok is false for symbols outside the alphabet
func Decode(c byte) (x, y int, ok bool) {
	idx := strings.IndexByte(Alphabet, c)
	if idx < 0 {
		return 0, 0, false
	}
	return idx % GridSize, idx / GridSize, true
}

// IsSymbol reports whether r is one of the 25 position symbols
func IsSymbol(r rune) bool {
	return r >= 'a' && r <= 'y'
}

// IsWellFormed reports whether addr is non-empty and uses only alphabet symbols
func IsWellFormed(addr string) bool {
	if addr == "" {
		return false
	}
	for i := 0; i < len(addr); i++ {
		if !IsSymbol(rune(addr[i])) {
			return false
		}
	}
	return true
}

// BoxOf returns all but the last symbol; Root for single-symbol addresses
func BoxOf(addr string) string {
	if len(addr) <= 1 {
		return Root
	}
	return addr[:len(addr)-1]
}

// Last returns the position symbol of addr
func Last(addr string) (byte, bool) {
	if addr == "" {
		return 0, false
	}
	return addr[len(addr)-1], true
}

// Position decodes the in-box position of addr
func Position(addr string) (x, y int, ok bool) {
	c, ok := Last(addr)
	if !ok {
		return 0, 0, false
	}
	return Decode(c)
}

// Join builds the address of position (x, y) inside box
func Join(box string, x, y int) string {
	return box + string(Encode(x, y))
}

// Depth returns the nesting level of addr; single-symbol addresses are depth 1
func Depth(addr string) int {
	return len(addr)
}

// InBox reports whether addr sits directly inside box
func InBox(addr, box string) bool {
	return len(addr) == len(box)+1 && strings.HasPrefix(addr, box)
}

// Clamp limits v to the valid coordinate range
func Clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxCoord {
		return MaxCoord
	}
	return v
}

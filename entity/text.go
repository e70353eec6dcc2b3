package entity

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// MaxSignText is the sign text limit in characters
const MaxSignText = 50

// Sign text directives
const (
	DirectiveBarrier        = "/barrier"
	DirectiveIgnoreBarriers = "/ignorebarriers"
	DirectiveInvisible      = "/invisible "
	RoomNamePrefix          = "@"
)

// NormalizeSignText composes text to NFC, drops control characters and truncates to MaxSignText
func NormalizeSignText(text string) string {
	text = norm.NFC.String(text)
	var b strings.Builder
	n := 0
	for _, r := range text {
		if n == MaxSignText {
			break
		}
		if !IsSignRune(r) {
			continue
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}

// IsSignRune reports whether r may appear in sign text
func IsSignRune(r rune) bool {
	return unicode.IsPrint(r)
}

// IsDirective reports whether text is a behavioural directive
func IsDirective(text string) bool {
	return strings.HasPrefix(text, "/")
}

// InvisibleTarget extracts the address from an "/invisible <address>" directive
func InvisibleTarget(text string) (string, bool) {
	if !strings.HasPrefix(text, DirectiveInvisible) {
		return "", false
	}
	target := strings.TrimSpace(strings.TrimPrefix(text, DirectiveInvisible))
	return target, target != ""
}

// RoomName extracts the box name from an "@name" sign
func RoomName(text string) (string, bool) {
	if !strings.HasPrefix(text, RoomNamePrefix) {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(text, RoomNamePrefix)), true
}

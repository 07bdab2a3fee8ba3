package ktext

import "github.com/rivo/uniseg"

// ReverseString reverses s by extended grapheme cluster rather than by
// byte or rune, so combining marks stay attached to their base
// character and surrogate-pair-derived runes remain paired.
func ReverseString(s string) string {
	return uniseg.ReverseString(s)
}

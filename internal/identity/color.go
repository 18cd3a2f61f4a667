// Package identity derives stable visual identity (palette colour and
// initials) from a display name.
package identity

import (
	"errors"
	"unicode/utf16"
)

// ErrEmptyPalette is returned when a colour is requested from an empty palette.
var ErrEmptyPalette = errors.New("identity: palette must contain at least one colour")

// Hash computes the rolling hash used for palette selection.
//
// The hash walks the UTF-16 code units of name and accumulates
// hash = c + ((hash << 5) - hash) in a wrapping int32, so the same name maps
// to the same value as in browser-side renderers that use 32-bit integers.
func Hash(name string) int32 {
	var hash int32
	for _, c := range utf16.Encode([]rune(name)) {
		hash = int32(c) + ((hash << 5) - hash)
	}
	return hash
}

// Index returns the palette slot for name in a palette of size n.
// n must be positive.
func Index(name string, n int) int {
	h := int64(Hash(name))
	if h < 0 {
		h = -h
	}
	return int(h % int64(n))
}

// Pick returns the palette colour assigned to name.
func Pick(name string, palette []string) (string, error) {
	if len(palette) == 0 {
		return "", ErrEmptyPalette
	}
	return palette[Index(name, len(palette))], nil
}

// ColorFor is like Pick but panics on an empty palette. Callers pass themed
// palettes, which are validated to be non-empty on load.
func ColorFor(name string, palette []string) string {
	c, err := Pick(name, palette)
	if err != nil {
		panic(err)
	}
	return c
}

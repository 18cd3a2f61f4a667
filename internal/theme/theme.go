// Package theme holds the named design tokens consumed by the avatar
// renderers. Renderers receive a Theme value explicitly and never mutate it.
package theme

import (
	"slices"
	"sync/atomic"
)

// Colors are the semantic colour tokens.
type Colors struct {
	Brand       string `toml:"brand" json:"brand" validate:"required,hexcolor"`
	Success     string `toml:"success" json:"success" validate:"required,hexcolor"`
	Warning     string `toml:"warning" json:"warning" validate:"required,hexcolor"`
	Error       string `toml:"error" json:"error" validate:"required,hexcolor"`
	Interactive string `toml:"interactive" json:"interactive" validate:"required,hexcolor"`
	TextPrimary string `toml:"text_primary" json:"text_primary" validate:"required,hexcolor"`
	Border      string `toml:"border" json:"border" validate:"required,hexcolor"`
	Neutral     string `toml:"neutral" json:"neutral" validate:"required,hexcolor"`
	Surface     string `toml:"surface" json:"surface" validate:"required,hexcolor"`
}

// Radius holds corner radii for the non-circular shapes, as CSS lengths.
type Radius struct {
	Rounded string `toml:"rounded" json:"rounded" validate:"required"`
	Square  string `toml:"square" json:"square" validate:"required"`
}

// Theme is a complete token set.
type Theme struct {
	Name    string   `toml:"name" json:"name" validate:"required"`
	Colors  Colors   `toml:"colors" json:"colors"`
	Palette []string `toml:"palette" json:"palette" validate:"min=1,dive,hexcolor"`
	Radius  Radius   `toml:"radius" json:"radius"`
}

// Default returns the built-in theme.
func Default() Theme {
	return Theme{
		Name: "default",
		Colors: Colors{
			Brand:       "#4F46E5",
			Success:     "#16A34A",
			Warning:     "#F59E0B",
			Error:       "#DC2626",
			Interactive: "#2563EB",
			TextPrimary: "#111827",
			Border:      "#9CA3AF",
			Neutral:     "#D1D5DB",
			Surface:     "#FFFFFF",
		},
		Palette: []string{
			"#EF4444", "#F97316", "#F59E0B", "#84CC16", "#10B981",
			"#06B6D4", "#3B82F6", "#6366F1", "#8B5CF6", "#EC4899",
		},
		Radius: Radius{
			Rounded: "0.375rem",
			Square:  "0",
		},
	}
}

// Clone returns a deep copy so callers cannot alias the palette.
func (t Theme) Clone() Theme {
	t.Palette = slices.Clone(t.Palette)
	return t
}

// Store holds the current theme and is safe for concurrent use.
type Store struct {
	current atomic.Pointer[Theme]
}

// NewStore creates a store seeded with t.
func NewStore(t Theme) *Store {
	s := &Store{}
	s.Set(t)
	return s
}

// Current returns a copy of the active theme.
func (s *Store) Current() Theme {
	return s.current.Load().Clone()
}

// Set replaces the active theme.
func (s *Store) Set(t Theme) {
	c := t.Clone()
	s.current.Store(&c)
}

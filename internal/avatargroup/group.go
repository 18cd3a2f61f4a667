// Package avatargroup arranges avatars into an overlapping stack with an
// overflow counter for items beyond a maximum.
package avatargroup

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nfrund/avatarkit/internal/avatar"
)

// ErrInvalidMax is returned when the visible maximum is not positive.
var ErrInvalidMax = errors.New("avatargroup: max must be greater than zero")

// ErrUnknownSpacing is returned by ParseSpacing for unrecognised names.
var ErrUnknownSpacing = errors.New("avatargroup: unknown spacing")

// Spacing selects how far each avatar tucks under its predecessor.
type Spacing int

const (
	SpacingTight Spacing = iota
	SpacingNormal
	SpacingLoose
)

func (s Spacing) String() string {
	switch s {
	case SpacingTight:
		return "tight"
	case SpacingLoose:
		return "loose"
	default:
		return "normal"
	}
}

// ParseSpacing parses a spacing name. The empty string yields SpacingNormal.
func ParseSpacing(v string) (Spacing, error) {
	switch strings.ToLower(v) {
	case "tight":
		return SpacingTight, nil
	case "", "normal":
		return SpacingNormal, nil
	case "loose":
		return SpacingLoose, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSpacing, v)
}

// Overlap is the magnitude, in pixels, of the negative leading margin for
// an avatar of the given size. It grows tight < normal < loose.
func (s Spacing) Overlap(size avatar.Size) int {
	px := size.Pixels()
	switch s {
	case SpacingTight:
		return px / 8
	case SpacingLoose:
		return px * 3 / 8
	default:
		return px / 4
	}
}

// Slot is one visible avatar in the stack.
type Slot struct {
	Index int
	Spec  avatar.Spec
	// Priority is the stacking order; higher values sit on top.
	Priority int
	// Offset is the leading margin in pixels; zero for the first slot.
	Offset int
}

// Overflow is the synthetic "+N" badge for hidden items.
type Overflow struct {
	Hidden   int
	Label    string
	Size     avatar.Size
	Priority int
	Offset   int
}

// Composition is the result of arranging a group.
type Composition struct {
	Size     avatar.Size
	Spacing  Spacing
	Visible  []Slot
	Hidden   int
	Overflow *Overflow
}

// Slots returns the number of rendered positions, overflow badge included.
func (c Composition) Slots() int {
	if c.Overflow != nil {
		return len(c.Visible) + 1
	}
	return len(c.Visible)
}

// Compose keeps the first max items, forces each to the group size and
// assigns strictly descending stacking priorities. Items beyond max are
// summarised by an overflow badge at priority zero.
func Compose(items []avatar.Spec, max int, size avatar.Size, spacing Spacing) (Composition, error) {
	if max <= 0 {
		return Composition{}, fmt.Errorf("%w: got %d", ErrInvalidMax, max)
	}

	n := min(len(items), max)
	overlap := -spacing.Overlap(size)

	c := Composition{
		Size:    size,
		Spacing: spacing,
		Visible: make([]Slot, n),
		Hidden:  len(items) - n,
	}

	for i, spec := range items[:n] {
		spec.Size = size
		slot := Slot{
			Index:    i,
			Spec:     spec,
			Priority: n - i,
		}
		if i > 0 {
			slot.Offset = overlap
		}
		c.Visible[i] = slot
	}

	if c.Hidden > 0 {
		c.Overflow = &Overflow{
			Hidden:   c.Hidden,
			Label:    fmt.Sprintf("+%d", c.Hidden),
			Size:     size,
			Priority: 0,
			Offset:   overlap,
		}
	}
	return c, nil
}

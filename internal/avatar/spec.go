// Package avatar resolves and renders a single identity badge: an image,
// initials, a fallback glyph or a default icon, with an optional status dot.
package avatar

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	ErrUnknownSize   = errors.New("avatar: unknown size")
	ErrUnknownShape  = errors.New("avatar: unknown shape")
	ErrUnknownStatus = errors.New("avatar: unknown status")
	ErrInvalidImage  = errors.New("avatar: invalid image url")
)

// Size controls geometry only.
type Size int

const (
	SizeXS Size = iota
	SizeSM
	SizeMD
	SizeLG
	SizeXL
	SizeXXL
)

var sizeNames = [...]string{"xs", "sm", "md", "lg", "xl", "xxl"}

func (s Size) String() string {
	if s < SizeXS || s > SizeXXL {
		return fmt.Sprintf("Size(%d)", int(s))
	}
	return sizeNames[s]
}

func (s Size) valid() bool { return s >= SizeXS && s <= SizeXXL }

// ParseSize parses a size name. The empty string yields SizeMD.
func ParseSize(v string) (Size, error) {
	if v == "" {
		return SizeMD, nil
	}
	for i, name := range sizeNames {
		if strings.EqualFold(v, name) {
			return Size(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSize, v)
}

// Shape is the outline of the badge.
type Shape int

const (
	ShapeCircular Shape = iota
	ShapeRounded
	ShapeSquare
)

var shapeNames = [...]string{"circular", "rounded", "square"}

func (s Shape) String() string {
	if s < ShapeCircular || s > ShapeSquare {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

func (s Shape) valid() bool { return s >= ShapeCircular && s <= ShapeSquare }

// ParseShape parses a shape name. The empty string yields ShapeCircular.
func ParseShape(v string) (Shape, error) {
	if v == "" {
		return ShapeCircular, nil
	}
	for i, name := range shapeNames {
		if strings.EqualFold(v, name) {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, v)
}

// Status is the presence shown in the overlay. StatusNone means no status.
type Status int

const (
	StatusNone Status = iota
	StatusOnline
	StatusOffline
	StatusAway
	StatusBusy
)

var statusNames = [...]string{"none", "online", "offline", "away", "busy"}

func (s Status) String() string {
	if s < StatusNone || s > StatusBusy {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

func (s Status) valid() bool { return s >= StatusNone && s <= StatusBusy }

// ParseStatus parses a status name. The empty string yields StatusNone.
func ParseStatus(v string) (Status, error) {
	if v == "" {
		return StatusNone, nil
	}
	for i, name := range statusNames {
		if strings.EqualFold(v, name) {
			return Status(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStatus, v)
}

// Spec describes one avatar.
type Spec struct {
	ImageURL      string
	AltText       string
	DisplayName   string
	FallbackGlyph string
	Size          Size
	Shape         Shape
	Status        Status
	ShowStatus    bool
	Interactive   bool
	ForceLoading  bool
}

// HasImage reports whether an image source is configured.
func (s Spec) HasImage() bool {
	return strings.TrimSpace(s.ImageURL) != ""
}

// HasName reports whether the display name can produce initials.
func (s Spec) HasName() bool {
	return strings.TrimSpace(s.DisplayName) != ""
}

// Validate rejects enum values outside their closed sets and image sources
// that are not http(s), root-relative or data URLs.
func (s Spec) Validate() error {
	if !s.Size.valid() {
		return fmt.Errorf("%w: %s", ErrUnknownSize, s.Size)
	}
	if !s.Shape.valid() {
		return fmt.Errorf("%w: %s", ErrUnknownShape, s.Shape)
	}
	if !s.Status.valid() {
		return fmt.Errorf("%w: %s", ErrUnknownStatus, s.Status)
	}
	if s.HasImage() {
		u, err := url.Parse(s.ImageURL)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidImage, err)
		}
		switch u.Scheme {
		case "http", "https", "data":
		case "":
			if !strings.HasPrefix(u.Path, "/") {
				return fmt.Errorf("%w: %q must be absolute or root-relative", ErrInvalidImage, s.ImageURL)
			}
		default:
			return fmt.Errorf("%w: scheme %q not allowed", ErrInvalidImage, u.Scheme)
		}
	}
	return nil
}

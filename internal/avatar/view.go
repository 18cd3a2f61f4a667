package avatar

import (
	"strings"

	"github.com/nfrund/avatarkit/internal/identity"
	"github.com/nfrund/avatarkit/internal/theme"
)

const (
	// InitialsForeground is the fixed high-contrast text colour for initials.
	InitialsForeground = "#FFFFFF"

	defaultAlt = "Avatar"
)

// Pixels is the edge length of a badge of size s.
func (s Size) Pixels() int {
	switch s {
	case SizeXS:
		return 24
	case SizeSM:
		return 32
	case SizeLG:
		return 48
	case SizeXL:
		return 64
	case SizeXXL:
		return 96
	default:
		return 40
	}
}

// statusGeometry returns the status dot diameter and its offset from the
// bottom-right corner.
func (s Size) statusGeometry() (diameter, offset int) {
	switch s {
	case SizeXS:
		return 6, 0
	case SizeSM:
		return 8, 0
	case SizeLG:
		return 12, 1
	case SizeXL:
		return 14, 2
	case SizeXXL:
		return 20, 4
	default:
		return 10, 0
	}
}

// StatusColor maps a status to its themed colour. StatusNone has no colour.
func StatusColor(th theme.Theme, s Status) (string, bool) {
	switch s {
	case StatusOnline:
		return th.Colors.Success, true
	case StatusOffline:
		return th.Colors.Border, true
	case StatusAway:
		return th.Colors.Warning, true
	case StatusBusy:
		return th.Colors.Error, true
	default:
		return "", false
	}
}

// Overlay is the resolved status indicator.
type Overlay struct {
	Status   Status
	Color    string
	Diameter int
	Offset   int
}

// View is everything needed to draw an avatar in a given state.
type View struct {
	State       RenderState
	Size        Size
	Shape       Shape
	Radius      string
	ImageURL    string
	Alt         string
	Label       string
	Text        string
	Background  string
	Foreground  string
	Interactive bool
	Overlay     *Overlay
}

// Resolve computes the view for spec in state. It is pure: the same inputs
// always produce the same view.
func Resolve(th theme.Theme, spec Spec, state RenderState) View {
	v := View{
		State:       state,
		Size:        spec.Size,
		Shape:       spec.Shape,
		Radius:      radius(th, spec.Shape),
		Label:       label(spec),
		Background:  th.Colors.Neutral,
		Foreground:  th.Colors.TextPrimary,
		Interactive: spec.Interactive,
	}

	switch state {
	case StateLoading, StateImageShown:
		v.Alt = v.Label
		// A forced skeleton never loads its image.
		if !spec.ForceLoading {
			v.ImageURL = spec.ImageURL
		}
	case StateInitials:
		v.Text = identity.InitialsFor(spec.DisplayName)
		v.Background = identity.ColorFor(spec.DisplayName, th.Palette)
		v.Foreground = InitialsForeground
	case StateFallback:
		v.Text = spec.FallbackGlyph
	}

	if spec.ShowStatus {
		if color, ok := StatusColor(th, spec.Status); ok {
			d, off := spec.Size.statusGeometry()
			v.Overlay = &Overlay{Status: spec.Status, Color: color, Diameter: d, Offset: off}
		}
	}
	return v
}

// View resolves the machine's current state against th.
func (m *Machine) View(th theme.Theme) View {
	return Resolve(th, m.spec, m.State())
}

func label(spec Spec) string {
	switch {
	case strings.TrimSpace(spec.AltText) != "":
		return spec.AltText
	case spec.HasName():
		return spec.DisplayName
	default:
		return defaultAlt
	}
}

func radius(th theme.Theme, s Shape) string {
	switch s {
	case ShapeRounded:
		return th.Radius.Rounded
	case ShapeSquare:
		return th.Radius.Square
	default:
		return "50%"
	}
}

package avatar

// RenderState is the content mode an avatar currently shows.
type RenderState int

const (
	StateLoading RenderState = iota
	StateImageShown
	StateInitials
	StateFallback
	StateDefaultIcon
)

func (s RenderState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateImageShown:
		return "image"
	case StateInitials:
		return "initials"
	case StateFallback:
		return "fallback"
	case StateDefaultIcon:
		return "default-icon"
	default:
		return "unknown"
	}
}

// Machine tracks the image lifecycle of one mounted avatar. A single load or
// error event is terminal for the mount: after an error the image is never
// shown again, and there is no retry.
//
// Machine is not safe for concurrent use; owners serialise access.
type Machine struct {
	spec   Spec
	loaded bool
	failed bool
}

// NewMachine starts a machine for spec.
func NewMachine(spec Spec) *Machine {
	return &Machine{spec: spec}
}

// Spec returns the descriptor the machine was created with.
func (m *Machine) Spec() Spec { return m.spec }

// OnLoad records a successful image load. It has no effect once the image
// has failed or when no image is configured.
func (m *Machine) OnLoad() {
	if m.failed || !m.spec.HasImage() {
		return
	}
	m.loaded = true
}

// OnError records an image failure, disabling the image for this mount.
func (m *Machine) OnError() {
	if !m.spec.HasImage() {
		return
	}
	m.failed = true
	m.loaded = false
}

// Failed reports whether an image error has been observed.
func (m *Machine) Failed() bool { return m.failed }

// State resolves the current content mode. The first matching rule wins:
// forced loading, pending image, loaded image, initials, fallback glyph,
// default icon.
func (m *Machine) State() RenderState {
	return stateFor(m.spec, m.loaded, m.failed)
}

func stateFor(spec Spec, loaded, failed bool) RenderState {
	if spec.ForceLoading {
		return StateLoading
	}
	if spec.HasImage() && !failed {
		if !loaded {
			return StateLoading
		}
		return StateImageShown
	}
	if spec.HasName() {
		return StateInitials
	}
	if spec.FallbackGlyph != "" {
		return StateFallback
	}
	return StateDefaultIcon
}

package anim

import (
	"fmt"
	"math"
)

type Mode int

const (
	ModeHero Mode = iota
	ModeVision
	ModeServices
	ModeFeatureless
	ModeContact
	ModeCTA

	modeCount
)

var modeNames = [modeCount]string{"hero", "vision", "services", "featureless", "contact", "cta"}

func (m Mode) String() string {
	if m < 0 || m >= modeCount {
		return fmt.Sprintf("mode(%d)", int(m))
	}
	return modeNames[m]
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func ParseMode(s string) (Mode, error) {
	for i, n := range modeNames {
		if n == s {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("anim: unknown mode %q", s)
}

type Device int

const (
	DeviceDesktop Device = iota
	DeviceMobile

	deviceCount
)

func (d Device) String() string {
	if d == DeviceMobile {
		return "mobile"
	}
	return "desktop"
}

// DeviceFor classifies a viewport width against the mobile breakpoint.
func DeviceFor(width, breakpoint float64) Device {
	if width < breakpoint {
		return DeviceMobile
	}
	return DeviceDesktop
}

const serviceVariants = 7

// ServiceIndex maps scroll progress through the services section onto one of
// the seven micro-animations. Degenerate rects never yield an index outside [0,6].
func ServiceIndex(viewportHeight float64, r Rect) int {
	progress := (viewportHeight - r.Top) / r.Height
	if math.IsNaN(progress) {
		progress = 0
	}
	progress = math.Max(0, math.Min(1, progress))

	idx := int(math.Floor(progress * serviceVariants))
	if idx > serviceVariants-1 {
		idx = serviceVariants - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// Resolver turns section measurements into a display mode. Reaching cta locks
// it for the rest of its lifetime.
type Resolver struct {
	Breakpoint float64

	mode   Mode
	index  int
	locked bool
}

func NewResolver(breakpoint float64) *Resolver {
	return &Resolver{Breakpoint: breakpoint, mode: ModeHero}
}

func (r *Resolver) Mode() Mode        { return r.mode }
func (r *Resolver) ServiceIndex() int { return r.index }
func (r *Resolver) Locked() bool      { return r.locked }

// Resolve evaluates the sections in priority order cta > contact > services >
// vision > hero. When nothing matches and the page is not near the top, the
// previous mode is kept.
func (r *Resolver) Resolve(s Snapshot) (Mode, int) {
	if r.locked {
		return r.mode, r.index
	}
	vh := s.Viewport.Height

	if rect, ok := s.Rect(SectionCTA); ok && rect.Top < vh && rect.Bottom > 0 {
		r.mode = ModeCTA
		r.locked = true
		return r.mode, r.index
	}

	if DeviceFor(s.Viewport.Width, r.Breakpoint) != DeviceMobile {
		if rect, ok := s.Rect(SectionContact); ok && rect.Top < vh*0.9 && rect.Bottom > vh*0.1 {
			r.mode = ModeContact
			return r.mode, r.index
		}
	}

	if rect, ok := s.Rect(SectionServices); ok {
		if rect.Top < vh*0.8 && rect.Bottom > vh*0.2 {
			r.mode = ModeServices
			r.index = ServiceIndex(vh, rect)
			return r.mode, r.index
		}
		if rect.Bottom <= vh*0.2 {
			r.mode = ModeFeatureless
			return r.mode, r.index
		}
	}

	if rect, ok := s.Rect(SectionVision); ok && rect.Top < vh*0.8 && rect.Bottom > vh*0.2 {
		r.mode = ModeVision
		return r.mode, r.index
	}

	if s.Viewport.ScrollY < vh*0.5 {
		r.mode = ModeHero
	}
	return r.mode, r.index
}

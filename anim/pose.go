package anim

type Pose struct {
	Position Vec3    `json:"position"`
	Scale    float64 `json:"scale"`
	Yaw      float64 `json:"yaw"`
}

// tracker shifts a placement vertically so the mascot follows the page.
// It returns false when the section it follows is not measured.
type tracker func(s Snapshot, worldHeight float64) (dy float64, ok bool)

func trackNone(Snapshot, float64) (float64, bool) { return 0, true }

// hero scrolls away with the page
func trackScroll(s Snapshot, wh float64) (float64, bool) {
	if s.Viewport.Height <= 0 {
		return 0, true
	}
	return s.Viewport.ScrollY / s.Viewport.Height * wh, true
}

// centre of the section relative to the centre of the viewport, y flipped
func trackCenter(id Section) tracker {
	return func(s Snapshot, wh float64) (float64, bool) {
		r, ok := s.Rect(id)
		if !ok || s.Viewport.Height <= 0 {
			return 0, true
		}
		return -r.Center(s.Viewport.Height) / s.Viewport.Height * wh, true
	}
}

// distance the services section travelled past its exit line
func trackExit(s Snapshot, wh float64) (float64, bool) {
	r, ok := s.Rect(SectionServices)
	if !ok || s.Viewport.Height <= 0 {
		return 0, false
	}
	vh := s.Viewport.Height
	return (vh*0.2 - r.Bottom) / vh * wh, true
}

var trackers = [modeCount]tracker{
	ModeHero:        trackScroll,
	ModeVision:      trackCenter(SectionVision),
	ModeServices:    trackNone,
	ModeFeatureless: trackExit,
	ModeContact:     trackCenter(SectionContact),
	ModeCTA:         trackCenter(SectionCTA),
}

// Target computes the pose the mascot is heading to. snapY asks the
// interpolator to assign the vertical axis instead of blending it.
func Target(c *Choreography, m Mode, d Device, s Snapshot) (p Pose, snapY bool) {
	if m < 0 || m >= modeCount {
		m = ModeHero
	}
	pl := c.Placement(m, d)
	p = Pose{Position: pl.Position, Scale: pl.Scale, Yaw: pl.Yaw}

	dy, ok := trackers[m](s, c.Camera.WorldHeight())
	if !ok {
		if fb := c.Spec(m).Fallback; fb != nil {
			p.Position = *fb
		}
		return p, m == ModeCTA
	}
	p.Position.Y += dy
	return p, m == ModeCTA
}

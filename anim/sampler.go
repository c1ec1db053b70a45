package anim

import "sync"

type Section int

const (
	SectionHero Section = iota
	SectionVision
	SectionServices
	SectionContact
	SectionCTA

	sectionCount
)

var sectionNames = [sectionCount]string{"hero", "vision", "services", "contact", "cta"}

func (s Section) String() string {
	if s < 0 || s >= sectionCount {
		return "section(?)"
	}
	return sectionNames[s]
}

// Rect is a bounding box in viewport pixels, y growing downwards.
type Rect struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Height float64 `json:"height"`
}

// Center is the vertical offset of the rect center from the viewport center.
func (r Rect) Center(viewportHeight float64) float64 {
	return r.Top + r.Height/2 - viewportHeight/2
}

type Viewport struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	ScrollY float64 `json:"scrollY"`
}

// Anchor measures one page region. ok is false while the region is not mounted.
type Anchor interface {
	Measure() (r Rect, ok bool)
}

type ViewportSource interface {
	Viewport() Viewport
}

// AnchorFunc adapts a plain function to Anchor.
type AnchorFunc func() (Rect, bool)

func (f AnchorFunc) Measure() (Rect, bool) { return f() }

// Snapshot holds one tick worth of measurements.
type Snapshot struct {
	Viewport Viewport
	rects    [sectionCount]Rect
	present  [sectionCount]bool
}

func (s Snapshot) Rect(id Section) (Rect, bool) {
	if id < 0 || id >= sectionCount {
		return Rect{}, false
	}
	return s.rects[id], s.present[id]
}

func (s *Snapshot) Set(id Section, r Rect) {
	if id < 0 || id >= sectionCount {
		return
	}
	s.rects[id] = r
	s.present[id] = true
}

// Sampler re-measures the registered anchors on demand and coalesces scroll
// notifications so that at most one resolution is requested per frame.
type Sampler struct {
	mu       sync.Mutex
	viewport ViewportSource
	anchors  [sectionCount]Anchor
	gen      [sectionCount]uint64
	pending  bool
	closed   bool
}

func NewSampler(vp ViewportSource) *Sampler {
	return &Sampler{viewport: vp}
}

// Attach registers a for id, replacing any earlier anchor. The returned func
// detaches it; calling it after a newer Attach for the same id is a no-op.
func (s *Sampler) Attach(id Section, a Anchor) (release func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || id < 0 || id >= sectionCount {
		return func() {}
	}
	s.gen[id]++
	g := s.gen[id]
	s.anchors[id] = a
	s.pending = true

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.gen[id] == g {
			s.anchors[id] = nil
		}
	}
}

// OnScroll marks the measurements stale. Any number of calls between two
// frames results in a single pending evaluation.
func (s *Sampler) OnScroll() {
	s.mu.Lock()
	if !s.closed {
		s.pending = true
	}
	s.mu.Unlock()
}

func (s *Sampler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Flush consumes the pending flag.
func (s *Sampler) Flush() (pending bool) {
	s.mu.Lock()
	pending, s.pending = s.pending, false
	s.mu.Unlock()
	return
}

// Sample measures every attached anchor. Unmounted anchors are left out.
func (s *Sampler) Sample() (snap Snapshot) {
	s.mu.Lock()
	anchors := s.anchors
	vp := s.viewport
	s.mu.Unlock()

	if vp != nil {
		snap.Viewport = vp.Viewport()
	}
	for id, a := range anchors {
		if a == nil {
			continue
		}
		if r, ok := a.Measure(); ok {
			snap.Set(Section(id), r)
		}
	}
	return
}

// Close detaches everything; later Attach and OnScroll calls are ignored.
func (s *Sampler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.pending = false
	for i := range s.anchors {
		s.anchors[i] = nil
	}
}

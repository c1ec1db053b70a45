package anim

// testPage lays sections out on a document and measures them like a browser
// would for the current scroll offset.
type testPage struct {
	width, height float64
	scrollY       float64
	sections      map[Section][2]float64 // document top, height
}

func newTestPage(width float64) *testPage {
	return &testPage{
		width:  width,
		height: 800,
		sections: map[Section][2]float64{
			SectionHero:     {0, 800},
			SectionVision:   {800, 800},
			SectionServices: {1600, 2800},
			SectionContact:  {4400, 800},
			SectionCTA:      {5200, 600},
		},
	}
}

func (p *testPage) Viewport() Viewport {
	return Viewport{Width: p.width, Height: p.height, ScrollY: p.scrollY}
}

func (p *testPage) rect(id Section) Rect {
	s := p.sections[id]
	top := s[0] - p.scrollY
	return Rect{Top: top, Bottom: top + s[1], Height: s[1]}
}

func (p *testPage) anchor(id Section) Anchor {
	return AnchorFunc(func() (Rect, bool) {
		if _, ok := p.sections[id]; !ok {
			return Rect{}, false
		}
		return p.rect(id), true
	})
}

func (p *testPage) snapshot() (s Snapshot) {
	s.Viewport = p.Viewport()
	for id := range p.sections {
		s.Set(id, p.rect(id))
	}
	return
}

func (p *testPage) bottom() float64 {
	s := p.sections[SectionCTA]
	return s[0] + s[1] - p.height
}

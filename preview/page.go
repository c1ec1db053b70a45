package main

import (
	"image/color"

	"github.com/dmisol/florix/anim"
	"golang.org/x/image/colornames"
)

type section struct {
	id     anim.Section
	top    float64 // document px
	height float64
	color  color.RGBA
}

// page is a stand-in for the home page: five stacked sections and a scroll offset.
type page struct {
	width, height float64
	scrollY       float64
	sections      []section
}

func newPage(width, height float64) *page {
	p := &page{width: width, height: height}
	layout := []struct {
		id anim.Section
		h  float64
		c  color.RGBA
	}{
		{anim.SectionHero, height, colornames.Midnightblue},
		{anim.SectionVision, height, colornames.Darkslateblue},
		{anim.SectionServices, height * 3.5, colornames.Darkgreen},
		{anim.SectionContact, height, colornames.Darkslategray},
		{anim.SectionCTA, height * 0.75, colornames.Darkred},
	}
	top := 0.0
	for _, l := range layout {
		p.sections = append(p.sections, section{id: l.id, top: top, height: l.h, color: l.c})
		top += l.h
	}
	return p
}

func (p *page) Viewport() anim.Viewport {
	return anim.Viewport{Width: p.width, Height: p.height, ScrollY: p.scrollY}
}

func (p *page) rect(s section) anim.Rect {
	top := s.top - p.scrollY
	return anim.Rect{Top: top, Bottom: top + s.height, Height: s.height}
}

func (p *page) anchor(s section) anim.Anchor {
	return anim.AnchorFunc(func() (anim.Rect, bool) {
		return p.rect(s), true
	})
}

func (p *page) maxScroll() float64 {
	last := p.sections[len(p.sections)-1]
	return last.top + last.height - p.height
}

// scroll moves by dy and reports whether the offset changed.
func (p *page) scroll(dy float64) bool {
	y := p.scrollY + dy
	if y < 0 {
		y = 0
	}
	if m := p.maxScroll(); y > m {
		y = m
	}
	if y == p.scrollY {
		return false
	}
	p.scrollY = y
	return true
}

package anim

import (
	"context"
	"testing"
	"time"
)

const frame = 1.0 / 60

func attachPage(e *Engine, p *testPage) {
	for id := range p.sections {
		e.Attach(id, p.anchor(id))
	}
}

func TestEngineFollowsScroll(t *testing.T) {
	p := newTestPage(1280)
	e := NewEngine(context.Background(), nil, p)
	defer e.Close()
	attachPage(e, p)

	tr := e.Frame(frame, 0)
	if tr.Mode != ModeHero || !tr.Greeting {
		t.Fatalf("expected greeting in hero, got %+v", tr)
	}
	if tr.Pose.Scale != 2.4 {
		t.Fatalf("first frame should start on the hero placement, got %+v", tr.Pose)
	}

	if tr = e.Frame(frame, 5); tr.Greeting {
		t.Fatalf("greeting should end after the entrance")
	}

	p.scrollY = 1700
	// without a scroll notification the mode is not re-resolved
	if tr = e.Frame(frame, 5); tr.Mode != ModeHero {
		t.Fatalf("mode changed without scroll: %s", tr.Mode)
	}
	e.OnScroll()
	if tr = e.Frame(frame, 5); tr.Mode != ModeServices || tr.ServiceIndex != 2 {
		t.Fatalf("expected services/2, got %s/%d", tr.Mode, tr.ServiceIndex)
	}

	elapsed := 5.0
	for i := 0; i < 300; i++ {
		elapsed += frame
		tr = e.Frame(frame, elapsed)
	}
	if Distance(tr.Pose, poseOf(DefaultChoreography().Placement(ModeServices, DeviceDesktop))) > 1e-3 {
		t.Fatalf("pose did not settle on services: %+v", tr.Pose)
	}
}

func TestEngineLocksOnCTA(t *testing.T) {
	p := newTestPage(1280)
	e := NewEngine(context.Background(), nil, p)
	defer e.Close()
	attachPage(e, p)

	p.scrollY = p.bottom()
	e.OnScroll()
	tr := e.Frame(frame, 10)
	if tr.Mode != ModeCTA || !tr.Locked {
		t.Fatalf("expected locked cta, got %+v", tr)
	}

	p.scrollY = 0
	e.OnScroll()
	if tr = e.Frame(frame, 10); tr.Mode != ModeCTA {
		t.Fatalf("lock broken: %s", tr.Mode)
	}

	// cta snaps vertically to the section
	want, _ := Target(DefaultChoreography(), ModeCTA, DeviceDesktop, p.snapshot())
	if tr.Pose.Position.Y != want.Position.Y {
		t.Fatalf("y %v, want %v", tr.Pose.Position.Y, want.Position.Y)
	}
}

func TestEngineTeardown(t *testing.T) {
	p := newTestPage(1280)
	ctx, cancel := context.WithCancel(context.Background())
	e := NewEngine(ctx, nil, p)
	attachPage(e, p)

	last := e.Frame(frame, 1)
	cancel()

	select {
	case <-e.Done():
	case <-time.After(time.Second):
		t.Fatalf("engine did not stop")
	}

	p.scrollY = p.bottom()
	e.OnScroll()
	if tr := e.Frame(frame, 2); tr != last {
		t.Fatalf("stopped engine must keep its last transform")
	}
	e.Close()
}

func TestEngineSetChoreography(t *testing.T) {
	p := newTestPage(375)
	e := NewEngine(context.Background(), nil, p)
	defer e.Close()
	attachPage(e, p)
	e.Frame(frame, 0)

	c := DefaultChoreography()
	c.Breakpoint = 320
	e.SetChoreography(c)

	p.scrollY = 4400
	e.OnScroll()
	if tr := e.Frame(frame, 5); tr.Mode != ModeContact {
		t.Fatalf("375px is desktop with a 320px breakpoint, got %s", tr.Mode)
	}
}

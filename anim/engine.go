package anim

import (
	"context"
	"log"
	"sync"
)

// Transform is what a renderer applies to the mascot for one frame.
type Transform struct {
	Pose         Pose   `json:"pose"`
	Motion       Motion `json:"motion"`
	Mode         Mode   `json:"mode"`
	ServiceIndex int    `json:"serviceIndex"`
	Locked       bool   `json:"locked"`
	Greeting     bool   `json:"greeting"`
}

// NewEngine wires sampler, resolver, pose calculator and interpolator for one
// hosting view. The engine detaches its anchors once ctx is done.
func NewEngine(ctx context.Context, c *Choreography, vp ViewportSource) (e *Engine) {
	if c == nil {
		c = DefaultChoreography()
	}
	e = &Engine{
		conf:     c,
		sampler:  NewSampler(vp),
		resolver: NewResolver(c.Breakpoint),
		interp:   Interpolator{Lambda: c.Lambda},
	}
	e.Context, e.CancelFunc = context.WithCancel(ctx)

	go func() {
		<-e.Context.Done()
		e.sampler.Close()
	}()
	return
}

type Engine struct {
	context.Context
	context.CancelFunc
	mu sync.Mutex

	conf     *Choreography
	sampler  *Sampler
	resolver *Resolver
	interp   Interpolator

	pose   Pose
	motion Motion
	primed bool
	last   Transform
}

// Attach registers the page region for id. The returned func detaches it.
func (e *Engine) Attach(id Section, a Anchor) (release func()) {
	return e.sampler.Attach(id, a)
}

// OnScroll is meant to be called from the scroll and resize listeners.
func (e *Engine) OnScroll() {
	e.sampler.OnScroll()
}

// SetChoreography swaps the tuning table, e.g. after a reload. The current
// pose is kept and blends toward the new targets.
func (e *Engine) SetChoreography(c *Choreography) {
	if c == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.conf = c
	e.resolver.Breakpoint = c.Breakpoint
	e.interp.Lambda = c.Lambda
}

// Frame advances the animation by dt seconds; elapsed is the time since the
// view was mounted.
func (e *Engine) Frame(dt, elapsed float64) Transform {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.Context.Err() != nil {
		return e.last
	}

	snap := e.sampler.Sample()
	if e.sampler.Flush() {
		e.resolver.Resolve(snap)
	}
	mode, idx := e.resolver.Mode(), e.resolver.ServiceIndex()
	device := e.conf.Device(snap.Viewport.Width)

	target, snapY := Target(e.conf, mode, device, snap)
	if !e.primed {
		e.pose = target
		e.primed = true
	} else {
		e.interp.Step(&e.pose, target, dt, snapY)
	}

	entrance := elapsed < e.conf.Entrance
	switch {
	case mode == ModeServices:
		e.motion.Approach(ServiceMotion(idx, elapsed), e.conf.Damping)
	case mode == ModeHero && !entrance:
		e.motion = IdleMotion(elapsed)
	case mode == ModeHero:
		// greeting holds still
	default:
		e.motion.Approach(Motion{Yaw: e.conf.Spec(mode).BodyYaw}, e.conf.Damping)
	}

	e.last = Transform{
		Pose:         e.pose,
		Motion:       e.motion,
		Mode:         mode,
		ServiceIndex: idx,
		Locked:       e.resolver.Locked(),
		Greeting:     mode == ModeHero && entrance,
	}
	return e.last
}

func (e *Engine) Close() {
	e.CancelFunc()
	e.sampler.Close()
}

func (e *Engine) Println(i ...interface{}) {
	log.Println("anim", i)
}

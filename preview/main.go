package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"

	"github.com/dmisol/florix/anim"
	"github.com/dmisol/florix/defs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

const (
	desktopWidth = 1280
	mobileWidth  = 390
	screenHeight = 720

	wheelStep = 60
	keyStep   = 12
)

func main() {
	conf := flag.String("conf", "", "choreography yaml, reloaded on change")
	mobile := flag.Bool("mobile", false, "narrow viewport below the mobile breakpoint")
	flag.Parse()

	width := desktopWidth
	if *mobile {
		width = mobileWidth
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := newPage(float64(width), screenHeight)
	reload := make(chan *anim.Choreography, 1)
	c := anim.DefaultChoreography()
	if *conf != "" {
		w, err := anim.NewWatcher(*conf, func(c *anim.Choreography) {
			select {
			case reload <- c:
			default:
			}
		})
		if err != nil {
			log.Fatal(err)
		}
		defer w.Close()
		c = w.Current()
	}

	g := &game{
		page:        p,
		engine:      anim.NewEngine(ctx, c, p),
		reload:      reload,
		worldHeight: c.Camera.WorldHeight(),
	}
	for _, s := range p.sections {
		g.engine.Attach(s.id, p.anchor(s))
	}

	ebiten.SetWindowSize(width, screenHeight)
	ebiten.SetWindowTitle("florix mascot preview")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
	g.engine.Close()
}

type game struct {
	page    *page
	engine  *anim.Engine
	reload  chan *anim.Choreography
	elapsed float64
	last    anim.Transform

	worldHeight float64
}

func (g *game) Update() error {
	select {
	case c := <-g.reload:
		g.engine.SetChoreography(c)
		g.worldHeight = c.Camera.WorldHeight()
		g.engine.Println("choreography applied")
	default:
	}

	dy := 0.0
	if _, wy := ebiten.Wheel(); wy != 0 {
		dy -= wy * wheelStep
	}
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown):
		dy += keyStep
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		dy -= keyStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		dy += g.page.height
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		dy -= g.page.height
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		dy = -g.page.scrollY
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		dy = g.page.maxScroll() - g.page.scrollY
	}
	if dy != 0 && g.page.scroll(dy) {
		g.engine.OnScroll()
	}

	dt := 1 / float64(ebiten.TPS())
	g.elapsed += dt
	g.last = g.engine.Frame(dt, g.elapsed)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	p := g.page
	for _, s := range p.sections {
		r := p.rect(s)
		if r.Bottom < 0 || r.Top > p.height {
			continue
		}
		vector.FillRect(screen, 0, float32(r.Top), float32(p.width), float32(s.height), s.color, false)
		ebitenutil.DebugPrintAt(screen, s.id.String(), 8, int(r.Top)+8)
	}

	g.drawMascot(screen)

	tr := g.last
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"\n\nscroll %.0f  mode %s  service %d  locked %v\npos %.2f %.2f %.2f  scale %.2f  yaw %.2f",
		p.scrollY, tr.Mode, tr.ServiceIndex, tr.Locked,
		tr.Pose.Position.X, tr.Pose.Position.Y, tr.Pose.Position.Z, tr.Pose.Scale, tr.Pose.Yaw))
}

// drawMascot projects the pose onto the window: a square sized by scale with a
// heading line for yaw.
func (g *game) drawMascot(screen *ebiten.Image) {
	tr := g.last
	p := g.page
	unit := p.height / g.worldHeight

	x := p.width/2 + (tr.Pose.Position.X+tr.Motion.Offset.X)*unit
	y := p.height/2 - (tr.Pose.Position.Y+tr.Motion.Offset.Y)*unit
	size := tr.Pose.Scale * unit * 0.5

	vector.FillRect(screen, float32(x-size/2), float32(y-size/2), float32(size), float32(size), colornames.Whitesmoke, true)

	yaw := tr.Pose.Yaw + tr.Motion.Yaw
	roll := tr.Motion.Roll
	hx := x + math.Sin(yaw)*size
	hy := y - math.Cos(roll)*size*0.25
	vector.StrokeLine(screen, float32(x), float32(y), float32(hx), float32(hy), 3, colornames.Deepskyblue, true)

	if tr.Greeting {
		ebitenutil.DebugPrintAt(screen, "Hii, Buddy", int(x+size/2)+6, int(y-size/2))
	}
	if p.width < defs.MobileBreakpoint {
		ebitenutil.DebugPrintAt(screen, "mobile", int(p.width)-56, int(p.height)-20)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.page.width), int(g.page.height)
}

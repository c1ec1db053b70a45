package anim

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"math"

	"gopkg.in/yaml.v3"
)

type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// UnmarshalYAML accepts a [x, y, z] sequence.
func (v *Vec3) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: vector must be a sequence", value.Line)
	}
	var xyz []float64
	if err := value.Decode(&xyz); err != nil {
		return err
	}
	if len(xyz) != 3 {
		return fmt.Errorf("line %d: vector needs 3 components, got %d", value.Line, len(xyz))
	}
	v.X, v.Y, v.Z = xyz[0], xyz[1], xyz[2]
	return nil
}

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Placement is where the mascot sits for one mode on one device class.
type Placement struct {
	Position Vec3    `yaml:"position" json:"position"`
	Scale    float64 `yaml:"scale" json:"scale"`
	Yaw      float64 `yaml:"yaw" json:"yaw"`
}

type ModeSpec struct {
	Desktop Placement `yaml:"desktop" json:"desktop"`
	Mobile  Placement `yaml:"mobile" json:"mobile"`

	// used when the tracked section is not mounted
	Fallback *Vec3 `yaml:"fallback,omitempty" json:"fallback,omitempty"`

	// resting yaw of the body relative to the placement
	BodyYaw float64 `yaml:"body_yaw,omitempty" json:"bodyYaw,omitempty"`
}

type Camera struct {
	Fov      float64 `yaml:"fov" json:"fov"` // degrees, vertical
	Distance float64 `yaml:"distance" json:"distance"`
}

// WorldHeight is the visible world height at the origin plane.
func (c Camera) WorldHeight() float64 {
	return 2 * c.Distance * math.Tan(c.Fov*math.Pi/360)
}

// Choreography is the tunable table behind the pose calculator.
type Choreography struct {
	Breakpoint float64             `yaml:"breakpoint" json:"breakpoint"`
	Lambda     float64             `yaml:"lambda" json:"lambda"`
	Damping    float64             `yaml:"damping" json:"damping"`
	Entrance   float64             `yaml:"entrance" json:"entrance"` // seconds
	Camera     Camera              `yaml:"camera" json:"camera"`
	Modes      map[string]ModeSpec `yaml:"modes" json:"modes"`

	table [modeCount]ModeSpec
}

var (
	ErrMissingMode  = errors.New("anim: choreography misses a mode")
	ErrBadPlacement = errors.New("anim: placement scale must be positive")
)

func DefaultChoreography() *Choreography {
	c := &Choreography{
		Breakpoint: 768,
		Lambda:     2.5,
		Damping:    0.1,
		Entrance:   4,
		Camera:     Camera{Fov: 40, Distance: 10},
		Modes: map[string]ModeSpec{
			"hero": {
				Desktop: Placement{Vec3{-6.1, -0.34, -0.4}, 2.4, 0.6},
				Mobile:  Placement{Vec3{-1.2, 1.9, 0}, 0.9, 0.6},
			},
			"vision": {
				Desktop: Placement{Vec3{0, -0.5, 2.0}, 2.4, 0},
				Mobile:  Placement{Vec3{0, -0.7, 1.0}, 1.0, 0},
			},
			"services": {
				Desktop: Placement{Vec3{-4.5, -1.6, 2.0}, 2.4, 0.5},
				Mobile:  Placement{Vec3{0, 0.9, 1.0}, 1.0, 0},
			},
			"featureless": {
				Desktop:  Placement{Vec3{-4.5, -1.6, 2.0}, 2.4, 0},
				Mobile:   Placement{Vec3{0, 0.9, 1.0}, 1.0, 0},
				Fallback: &Vec3{-4.5, 12, 2.0},
			},
			"contact": {
				Desktop: Placement{Vec3{4.5, -1.8, 1.8}, 2.4, -0.5},
				Mobile:  Placement{Vec3{0, -1.5, 1.0}, 1.0, 0},
			},
			"cta": {
				Desktop: Placement{Vec3{-3.5, -0.6, 2.9}, 2.4, 0.5},
				Mobile:  Placement{Vec3{0, 1.2, 2.0}, 1.0, 0},
				BodyYaw: 0.5,
			},
		},
	}
	if err := c.compile(); err != nil {
		panic(err)
	}
	return c
}

// ParseChoreography decodes a yaml document. Missing scalars fall back to the
// defaults, every mode must be present.
func ParseChoreography(data []byte) (*Choreography, error) {
	def := DefaultChoreography()
	c := &Choreography{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("anim: unmarshal choreography: %w", err)
	}
	if c.Breakpoint <= 0 {
		c.Breakpoint = def.Breakpoint
	}
	if c.Lambda <= 0 {
		c.Lambda = def.Lambda
	}
	if c.Damping <= 0 || c.Damping > 1 {
		c.Damping = def.Damping
	}
	if c.Entrance < 0 {
		c.Entrance = 0
	}
	if c.Camera.Fov <= 0 || c.Camera.Distance <= 0 {
		c.Camera = def.Camera
	}
	if err := c.compile(); err != nil {
		return nil, err
	}
	return c, nil
}

func LoadChoreography(name string) (*Choreography, error) {
	data, err := ioutil.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("anim: load %s: %w", name, err)
	}
	c, err := ParseChoreography(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return c, nil
}

// UnmarshalJSON decodes the table as served to browsers.
func (c *Choreography) UnmarshalJSON(b []byte) error {
	type plain Choreography
	if err := json.Unmarshal(b, (*plain)(c)); err != nil {
		return err
	}
	return c.compile()
}

func (c *Choreography) compile() error {
	for name := range c.Modes {
		if _, err := ParseMode(name); err != nil {
			return err
		}
	}
	for m := Mode(0); m < modeCount; m++ {
		spec, ok := c.Modes[m.String()]
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingMode, m)
		}
		if spec.Desktop.Scale <= 0 || spec.Mobile.Scale <= 0 {
			return fmt.Errorf("%w: %s", ErrBadPlacement, m)
		}
		c.table[m] = spec
	}
	return nil
}

// Placement looks up the (mode, device) entry.
func (c *Choreography) Placement(m Mode, d Device) Placement {
	if m < 0 || m >= modeCount {
		m = ModeHero
	}
	if d == DeviceMobile {
		return c.table[m].Mobile
	}
	return c.table[m].Desktop
}

func (c *Choreography) Spec(m Mode) ModeSpec {
	if m < 0 || m >= modeCount {
		m = ModeHero
	}
	return c.table[m]
}

func (c *Choreography) Device(width float64) Device {
	return DeviceFor(width, c.Breakpoint)
}

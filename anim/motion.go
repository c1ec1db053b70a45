package anim

import "math"

// Motion is the mascot's local movement on top of its pose.
type Motion struct {
	Offset Vec3    `json:"offset"`
	Yaw    float64 `json:"yaw"`
	Roll   float64 `json:"roll"`
}

type variant func(t float64) Motion

// one per services sub-index
var variants = [serviceVariants]variant{
	// spin
	func(t float64) Motion {
		return Motion{Offset: Vec3{Y: math.Sin(t*2) * 0.1}, Yaw: t * 2}
	},
	// bounce
	func(t float64) Motion {
		return Motion{Offset: Vec3{Y: math.Abs(math.Sin(t*5)) * 0.5}}
	},
	// sway
	func(t float64) Motion {
		return Motion{Roll: math.Sin(t*3) * 0.2}
	},
	// figure eight
	func(t float64) Motion {
		return Motion{Offset: Vec3{X: math.Cos(t*1.5) * 0.3, Y: math.Sin(t*3) * 0.1}}
	},
	// sweep
	func(t float64) Motion {
		return Motion{Yaw: math.Sin(t*1.5) * 0.8}
	},
	// lateral hop
	func(t float64) Motion {
		return Motion{Offset: Vec3{X: math.Sin(t*5) * 0.3, Y: math.Abs(math.Cos(t*5)) * 0.2}}
	},
	// fast spin
	func(t float64) Motion {
		return Motion{Yaw: math.Sin(t*5) * 3}
	},
}

// ServiceMotion is the micro-animation target for sub-index idx at time t.
// Out of range indices are clamped.
func ServiceMotion(idx int, t float64) Motion {
	if idx < 0 {
		idx = 0
	}
	if idx >= serviceVariants {
		idx = serviceVariants - 1
	}
	return variants[idx](t)
}

// IdleMotion is the gentle float used in hero mode once the greeting is over.
func IdleMotion(t float64) Motion {
	return Motion{Offset: Vec3{Y: math.Sin(t) * 0.1}, Yaw: math.Sin(t*0.5) * 0.05}
}

// Approach moves m toward target by a fixed fraction per frame.
func (m *Motion) Approach(target Motion, damping float64) {
	m.Offset.X = lerp(m.Offset.X, target.Offset.X, damping)
	m.Offset.Y = lerp(m.Offset.Y, target.Offset.Y, damping)
	m.Offset.Z = lerp(m.Offset.Z, target.Offset.Z, damping)
	m.Yaw = lerp(m.Yaw, target.Yaw, damping)
	m.Roll = lerp(m.Roll, target.Roll, damping)
}

package anim

import "math"

const DefaultLambda = 2.5

// Interpolator blends a pose toward its target with an exponential decay.
type Interpolator struct {
	Lambda float64
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Step moves cur toward target by min(1, lambda*dt) on every axis. With snapY
// the vertical position is assigned directly.
func (in Interpolator) Step(cur *Pose, target Pose, dt float64, snapY bool) {
	if dt <= 0 || math.IsNaN(dt) {
		if snapY {
			cur.Position.Y = target.Position.Y
		}
		return
	}
	lambda := in.Lambda
	if lambda <= 0 {
		lambda = DefaultLambda
	}
	t := math.Min(1, lambda*dt)

	cur.Position.X = lerp(cur.Position.X, target.Position.X, t)
	cur.Position.Z = lerp(cur.Position.Z, target.Position.Z, t)
	if snapY {
		cur.Position.Y = target.Position.Y
	} else {
		cur.Position.Y = lerp(cur.Position.Y, target.Position.Y, t)
	}
	cur.Scale = lerp(cur.Scale, target.Scale, t)
	cur.Yaw = lerp(cur.Yaw, target.Yaw, t)
}

// Distance is the largest absolute difference over all pose axes.
func Distance(a, b Pose) float64 {
	d := b.Position.Sub(a.Position)
	return math.Max(
		math.Max(math.Abs(d.X), math.Max(math.Abs(d.Y), math.Abs(d.Z))),
		math.Max(math.Abs(b.Scale-a.Scale), math.Abs(b.Yaw-a.Yaw)),
	)
}

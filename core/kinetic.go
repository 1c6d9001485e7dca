package core

import "math"

// Vec2 is a point or displacement in board units
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// StepToward moves v by step units along the straight line to target
// Returns v unchanged when already at target
func (v Vec2) StepToward(target Vec2, step float64) Vec2 {
	d := target.Sub(v)
	dist := d.Len()
	if dist == 0 {
		return v
	}
	return v.Add(d.Scale(step / dist))
}

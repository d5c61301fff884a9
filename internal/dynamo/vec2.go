package dynamo

import "math"

// Vec2 is an immutable (x, y) pair used for position, velocity and acceleration.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// FromMagnitudeAngle builds a vector from a magnitude and an angle in degrees
// measured counter-clockwise from the +x axis.
func FromMagnitudeAngle(magnitude, degrees float64) Vec2 {
	rad := degrees * (math.Pi / 180)
	return Vec2{
		X: magnitude * math.Cos(rad),
		Y: magnitude * math.Sin(rad),
	}
}

func (v Vec2) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Angle returns atan2(y, x) in degrees.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X) * 180 / math.Pi
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

func (v Vec2) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

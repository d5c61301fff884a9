package dynamo

import (
	"math"
	"testing"
)

func TestVec2_FromMagnitudeAngle(t *testing.T) {
	tests := []struct {
		name      string
		magnitude float64
		degrees   float64
		x, y      float64
	}{
		{"east", 10, 0, 10, 0},
		{"north", 10, 90, 0, 10},
		{"west", 2, 180, -2, 0},
		{"diagonal", math.Sqrt2, 45, 1, 1},
		{"zero", 0, 30, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := FromMagnitudeAngle(tt.magnitude, tt.degrees)
			if math.Abs(v.X-tt.x) > 1e-12 || math.Abs(v.Y-tt.y) > 1e-12 {
				t.Errorf("FromMagnitudeAngle(%v, %v) = %v, want (%v, %v)", tt.magnitude, tt.degrees, v, tt.x, tt.y)
			}
		})
	}
}

func TestVec2_FromMagnitudeAngleRadians(t *testing.T) {
	// the conversion factor is folded before the multiply
	for _, deg := range []float64{1, 17.5, 30, 45, 60, 89.9, 135} {
		rad := deg * (math.Pi / 180)
		v := FromMagnitudeAngle(1, deg)
		if v.X != math.Cos(rad) || v.Y != math.Sin(rad) {
			t.Errorf("FromMagnitudeAngle(1, %v) = %v, want (%v, %v)", deg, v, math.Cos(rad), math.Sin(rad))
		}
	}
}

func TestVec2_MagnitudeAngle(t *testing.T) {
	tests := []struct {
		v         Vec2
		magnitude float64
		angle     float64
	}{
		{NewVec2(3, 4), 5, math.Atan2(4, 3) * 180 / math.Pi},
		{NewVec2(1, 0), 1, 0},
		{NewVec2(0, -2), 2, -90},
		{NewVec2(-1, 0), 1, 180},
	}

	for _, tt := range tests {
		if got := tt.v.Magnitude(); math.Abs(got-tt.magnitude) > 1e-12 {
			t.Errorf("Magnitude(%v) = %v, want %v", tt.v, got, tt.magnitude)
		}
		if got := tt.v.Angle(); math.Abs(got-tt.angle) > 1e-12 {
			t.Errorf("Angle(%v) = %v, want %v", tt.v, got, tt.angle)
		}
	}
}

func TestVec2_RoundTripPolar(t *testing.T) {
	v := FromMagnitudeAngle(40, 37.5)
	if math.Abs(v.Magnitude()-40) > 1e-12 {
		t.Errorf("magnitude drifted: %v", v.Magnitude())
	}
	if math.Abs(v.Angle()-37.5) > 1e-12 {
		t.Errorf("angle drifted: %v", v.Angle())
	}
}

func TestVec2_Arithmetic(t *testing.T) {
	a := NewVec2(1, 2)
	b := NewVec2(4, 6)

	if sum := a.Add(b); sum != NewVec2(5, 8) {
		t.Errorf("Add failed: got %v", sum)
	}
	if scaled := a.Scale(3); scaled != NewVec2(3, 6) {
		t.Errorf("Scale failed: got %v", scaled)
	}
	if a != NewVec2(1, 2) {
		t.Error("Add/Scale mutated the receiver")
	}
}

func TestMotionState_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		state MotionState
		valid bool
	}{
		{"zero", MotionState{}, true},
		{"normal", MotionState{Position: NewVec2(1, 2), Velocity: NewVec2(3, 4), Time: 1}, true},
		{"NaN position", MotionState{Position: NewVec2(math.NaN(), 0)}, false},
		{"+Inf velocity", MotionState{Velocity: NewVec2(0, math.Inf(1))}, false},
		{"-Inf acceleration", MotionState{Acceleration: NewVec2(math.Inf(-1), 0)}, false},
		{"NaN time", MotionState{Time: math.NaN()}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestTrajectory_Maxes(t *testing.T) {
	tr := Trajectory{
		{Position: NewVec2(0, 0)},
		{Position: NewVec2(2, 5)},
		{Position: NewVec2(4, 3)},
		{Position: NewVec2(5, -1)},
	}

	if tr.MaxX() != 5 {
		t.Errorf("MaxX() = %v, want 5", tr.MaxX())
	}
	if tr.MaxY() != 5 {
		t.Errorf("MaxY() = %v, want 5", tr.MaxY())
	}

	below := Trajectory{{Position: NewVec2(-3, -2)}}
	if below.MaxX() != 0 || below.MaxY() != 0 {
		t.Errorf("maxes should fold from zero, got (%v, %v)", below.MaxX(), below.MaxY())
	}

	last, ok := tr.Last()
	if !ok || last.Position.X != 5 {
		t.Errorf("Last() = %v, %v", last, ok)
	}
	if _, ok := Trajectory(nil).Last(); ok {
		t.Error("Last() on empty trajectory should report false")
	}
}

func TestTrajectory_PositionsTimes(t *testing.T) {
	tr := Trajectory{
		{Time: 0, Position: NewVec2(0, 0)},
		{Time: 0.5, Position: NewVec2(1, 2)},
		{Time: 1, Position: NewVec2(2, 1)},
	}

	pts := tr.Positions()
	times := tr.Times()
	if len(pts) != 3 || len(times) != 3 {
		t.Fatalf("expected 3 entries, got %d positions and %d times", len(pts), len(times))
	}
	for i, s := range tr {
		if pts[i] != s.Position || times[i] != s.Time {
			t.Errorf("entry %d: got (%v, %v), want (%v, %v)", i, pts[i], times[i], s.Position, s.Time)
		}
	}

	if len(Trajectory(nil).Positions()) != 0 || len(Trajectory(nil).Times()) != 0 {
		t.Error("expected empty slices for an empty trajectory")
	}
}

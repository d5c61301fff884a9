package physics

import (
	"math"

	"github.com/san-kum/dragsim/internal/dynamo"
)

const (
	StandardGravity = 9.81
	DefaultMaxSteps = 10_000_000
)

// Parameters is the validated input of a projectile run. The drag proportion
// is derived inside NewParameters and cannot be set independently.
type Parameters struct {
	crossArea       float64
	fluidDensity    float64
	dragCoefficient float64
	mass            float64
	dt              float64
	initial         dynamo.MotionState
	endingTime      float64
	gravity         float64
	maxSteps        int

	dragProportion float64
}

type Option func(*Parameters)

// WithGravity overrides the downward gravitational acceleration.
func WithGravity(g float64) Option {
	return func(p *Parameters) { p.gravity = g }
}

// WithMaxSteps caps the number of integration steps. Zero disables the cap.
func WithMaxSteps(n int) Option {
	return func(p *Parameters) { p.maxSteps = n }
}

// NewParameters validates the physical inputs and derives the drag
// proportion. Errors wrap dynamo.ErrInvalidParameter.
func NewParameters(crossArea, fluidDensity, dragCoefficient, mass, dt float64, initial dynamo.MotionState, endingTime float64, opts ...Option) (Parameters, error) {
	p := Parameters{
		crossArea:       crossArea,
		fluidDensity:    fluidDensity,
		dragCoefficient: dragCoefficient,
		mass:            mass,
		dt:              dt,
		initial:         initial,
		endingTime:      endingTime,
		gravity:         StandardGravity,
		maxSteps:        DefaultMaxSteps,
	}
	for _, opt := range opts {
		opt(&p)
	}

	if err := p.validate(); err != nil {
		return Parameters{}, err
	}

	p.derive()
	return p, nil
}

// derive is the only place the drag proportion is computed.
func (p *Parameters) derive() {
	p.dragProportion = p.crossArea * p.fluidDensity * p.dragCoefficient / 2
}

func (p Parameters) validate() error {
	nonNegative := []struct {
		name  string
		value float64
	}{
		{"cross_area", p.crossArea},
		{"fluid_density", p.fluidDensity},
		{"drag_coefficient", p.dragCoefficient},
	}
	for _, f := range nonNegative {
		if err := finite(f.name, f.value); err != nil {
			return err
		}
		if f.value < 0 {
			return &dynamo.ParameterError{Field: f.name, Value: f.value, Reason: "must not be negative"}
		}
	}

	positive := []struct {
		name  string
		value float64
	}{
		{"mass", p.mass},
		{"delta_time", p.dt},
		{"ending_time", p.endingTime},
	}
	for _, f := range positive {
		if err := finite(f.name, f.value); err != nil {
			return err
		}
		if f.value <= 0 {
			return &dynamo.ParameterError{Field: f.name, Value: f.value, Reason: "must be positive"}
		}
	}

	if err := finite("gravity", p.gravity); err != nil {
		return err
	}
	if p.maxSteps < 0 {
		return &dynamo.ParameterError{Field: "max_steps", Value: float64(p.maxSteps), Reason: "must not be negative"}
	}

	s := p.initial
	components := []struct {
		name  string
		value float64
	}{
		{"initial.x", s.Position.X},
		{"initial.y", s.Position.Y},
		{"initial.vx", s.Velocity.X},
		{"initial.vy", s.Velocity.Y},
		{"initial.ax", s.Acceleration.X},
		{"initial.ay", s.Acceleration.Y},
		{"initial.time", s.Time},
	}
	for _, c := range components {
		if err := finite(c.name, c.value); err != nil {
			return err
		}
	}
	return nil
}

func finite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &dynamo.ParameterError{Field: name, Value: v, Reason: "must be finite"}
	}
	return nil
}

// DragFree returns the same launch with every drag input zeroed. The drag
// proportion is re-derived, so it is exactly zero and agrees with the inputs.
func (p Parameters) DragFree() Parameters {
	free := p
	free.crossArea = 0
	free.fluidDensity = 0
	free.dragCoefficient = 0
	free.derive()
	return free
}

// Acceleration implements dynamo.System. Drag scales with the square of the
// current speed and opposes the velocity component-wise.
func (p Parameters) Acceleration(s dynamo.MotionState) dynamo.Vec2 {
	k := p.dragProportion / p.mass
	speed := s.Velocity.Magnitude()
	return dynamo.Vec2{
		X: -k * speed * s.Velocity.X,
		Y: -p.gravity - k*speed*s.Velocity.Y,
	}
}

func (p Parameters) CrossArea() float64                    { return p.crossArea }
func (p Parameters) FluidDensity() float64                 { return p.fluidDensity }
func (p Parameters) DragCoefficient() float64              { return p.dragCoefficient }
func (p Parameters) Mass() float64                         { return p.mass }
func (p Parameters) DeltaTime() float64                    { return p.dt }
func (p Parameters) InitialConditions() dynamo.MotionState { return p.initial }
func (p Parameters) EndingTime() float64                   { return p.endingTime }
func (p Parameters) Gravity() float64                      { return p.gravity }
func (p Parameters) MaxSteps() int                         { return p.maxSteps }
func (p Parameters) DragProportion() float64               { return p.dragProportion }

// GetParams lists the raw and derived inputs by name.
func (p Parameters) GetParams() map[string]float64 {
	return map[string]float64{
		"cross_area":       p.crossArea,
		"fluid_density":    p.fluidDensity,
		"drag_coefficient": p.dragCoefficient,
		"mass":             p.mass,
		"delta_time":       p.dt,
		"ending_time":      p.endingTime,
		"gravity":          p.gravity,
		"drag_proportion":  p.dragProportion,
	}
}

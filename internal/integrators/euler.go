package integrators

import "github.com/san-kum/dragsim/internal/dynamo"

// SemiImplicitEuler advances a state by one fixed step. The acceleration is
// evaluated once at the current state; the stored velocity is the updated
// one, while the position uses the pre-update velocity plus the constant
// acceleration term.
type SemiImplicitEuler struct{}

func NewSemiImplicitEuler() *SemiImplicitEuler {
	return &SemiImplicitEuler{}
}

func (e *SemiImplicitEuler) Step(sys dynamo.System, s dynamo.MotionState, dt float64) dynamo.MotionState {
	a := sys.Acceleration(s)
	dt2 := dt * dt

	return dynamo.MotionState{
		Position: dynamo.Vec2{
			X: s.Position.X + s.Velocity.X*dt + 0.5*a.X*dt2,
			Y: s.Position.Y + s.Velocity.Y*dt + 0.5*a.Y*dt2,
		},
		Velocity: dynamo.Vec2{
			X: s.Velocity.X + a.X*dt,
			Y: s.Velocity.Y + a.Y*dt,
		},
		Acceleration: a,
		Time:         s.Time + dt,
	}
}

package integrators

import "github.com/san-kum/dragsim/internal/dynamo"

// RK4 is the classic fourth-order Runge-Kutta step over (position,
// velocity). Like SemiImplicitEuler it records the acceleration evaluated
// at the state it stepped from.
type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Step(sys dynamo.System, s dynamo.MotionState, dt float64) dynamo.MotionState {
	at := func(p, v dynamo.Vec2, t float64) dynamo.Vec2 {
		return sys.Acceleration(dynamo.MotionState{Position: p, Velocity: v, Time: t})
	}

	p0, v0 := s.Position, s.Velocity

	k1p, k1v := v0, at(p0, v0, s.Time)

	p2, v2 := p0.Add(k1p.Scale(dt*0.5)), v0.Add(k1v.Scale(dt*0.5))
	k2p, k2v := v2, at(p2, v2, s.Time+dt*0.5)

	p3, v3 := p0.Add(k2p.Scale(dt*0.5)), v0.Add(k2v.Scale(dt*0.5))
	k3p, k3v := v3, at(p3, v3, s.Time+dt*0.5)

	p4, v4 := p0.Add(k3p.Scale(dt)), v0.Add(k3v.Scale(dt))
	k4p, k4v := v4, at(p4, v4, s.Time+dt)

	dt6 := dt / 6.0
	return dynamo.MotionState{
		Position:     p0.Add(k1p.Add(k2p.Scale(2)).Add(k3p.Scale(2)).Add(k4p).Scale(dt6)),
		Velocity:     v0.Add(k1v.Add(k2v.Scale(2)).Add(k3v.Scale(2)).Add(k4v).Scale(dt6)),
		Acceleration: k1v,
		Time:         s.Time + dt,
	}
}

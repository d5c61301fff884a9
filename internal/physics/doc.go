// Package physics models a point projectile under gravity and quadratic drag.
//
// [Parameters] holds the validated physical inputs and the derived drag
// proportion k = A·ρ·Cd/2. It implements [dynamo.System]:
//
//	ax = -(k/m)·|v|·vx
//	ay = -g - (k/m)·|v|·vy
//
// [Simulate] runs the fixed-step semi-implicit Euler integrator until the
// ending time or the first state below ground, and [Compare] pairs a run
// with its drag-free counterpart for plotting.
//
//	x0 := dynamo.MotionState{Velocity: dynamo.FromMagnitudeAngle(40, 45)}
//	p, err := physics.NewParameters(0.01, 1.2, 0.47, 0.145, 0.001, x0, 10)
//	if err != nil {
//	    return err
//	}
//	traj, err := physics.Simulate(p)
package physics

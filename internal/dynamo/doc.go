// Package dynamo provides the core simulation primitives for projectile flight.
//
// The package defines the value types and the run loop shared by every
// front end:
//
//   - [Vec2]: immutable 2D vector (position, velocity, acceleration)
//   - [MotionState]: kinematic state at one instant
//   - [Trajectory]: time-ordered sequence of states
//   - [System]: anything that yields an acceleration for a state
//   - [Integrator]: fixed-step numerical stepper
//   - [Simulator]: orchestrates a bounded run until a stop condition
//
// # Example
//
//	params, _ := physics.NewParameters(0.01, 1.2, 0.47, 0.145, 0.001, x0, 10)
//	sim := dynamo.New(params, integrators.NewSemiImplicitEuler())
//	result, _ := sim.Run(ctx, x0, cfg)
//
// # Thread Safety
//
// Simulator instances are NOT thread-safe. Metrics attached to a simulator
// carry per-run state and must not be shared between concurrent runs.
package dynamo

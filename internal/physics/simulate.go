package physics

import (
	"context"
	"fmt"

	"github.com/san-kum/dragsim/internal/dynamo"
	"github.com/san-kum/dragsim/internal/integrators"
)

// Comparison pairs a run with its drag-free counterpart.
type Comparison struct {
	WithDrag    dynamo.Trajectory
	WithoutDrag dynamo.Trajectory
}

// BelowGround is the ground-impact stop condition.
func BelowGround(s dynamo.MotionState) bool {
	return s.Position.Y < 0
}

// Simulate returns the trajectory of p from its initial conditions until the
// ending time or the first state below ground.
func Simulate(p Parameters) (dynamo.Trajectory, error) {
	result, err := SimulateContext(context.Background(), p)
	if result == nil {
		return nil, err
	}
	return result.Trajectory, err
}

// SimulateContext is Simulate with cancellation and per-run metrics.
func SimulateContext(ctx context.Context, p Parameters, metrics ...dynamo.Metric) (*dynamo.Result, error) {
	return SimulateWith(ctx, p, integrators.NewSemiImplicitEuler(), metrics...)
}

// SimulateWith runs p with another stepping scheme.
func SimulateWith(ctx context.Context, p Parameters, integ dynamo.Integrator, metrics ...dynamo.Metric) (*dynamo.Result, error) {
	sim := dynamo.New(p, integ)
	for _, m := range metrics {
		sim.AddMetric(m)
	}

	cfg := dynamo.Config{
		Dt:            p.dt,
		End:           p.endingTime,
		MaxSteps:      p.maxSteps,
		ValidateState: true,
		Stop:          BelowGround,
	}

	result, err := sim.Run(ctx, p.initial, cfg)
	if err != nil {
		return result, fmt.Errorf("simulate: %w", err)
	}
	return result, nil
}

// Compare simulates p and p.DragFree().
func Compare(p Parameters) (Comparison, error) {
	return CompareContext(context.Background(), p)
}

func CompareContext(ctx context.Context, p Parameters) (Comparison, error) {
	return CompareWith(ctx, p, integrators.NewSemiImplicitEuler())
}

func CompareWith(ctx context.Context, p Parameters, integ dynamo.Integrator) (Comparison, error) {
	withDrag, err := SimulateWith(ctx, p, integ)
	if err != nil {
		return Comparison{}, fmt.Errorf("with drag: %w", err)
	}
	withoutDrag, err := SimulateWith(ctx, p.DragFree(), integ)
	if err != nil {
		return Comparison{}, fmt.Errorf("without drag: %w", err)
	}
	return Comparison{
		WithDrag:    withDrag.Trajectory,
		WithoutDrag: withoutDrag.Trajectory,
	}, nil
}

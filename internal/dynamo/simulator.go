package dynamo

import (
	"context"
	"math"
)

// preallocLimit caps the initial trajectory capacity for long runs.
const preallocLimit = 1 << 16

type Simulator struct {
	sys        System
	integrator Integrator
	metrics    []Metric
	observers  []Observer
}

func New(sys System, integrator Integrator) *Simulator {
	return &Simulator{
		sys:        sys,
		integrator: integrator,
		metrics:    make([]Metric, 0),
		observers:  make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run advances x0 in fixed steps of cfg.Dt until the state time reaches
// cfg.End or cfg.Stop reports true for a freshly recorded state. The initial
// state is never passed to cfg.Stop.
//
// On a non-finite state the trajectory up to the last valid state is
// returned together with a *SimulationError wrapping ErrNumericOverflow.
// A run that uses up cfg.MaxSteps before End or the stop condition returns
// what it recorded with a *SimulationError wrapping ErrStepLimit.
func (s *Simulator) Run(ctx context.Context, x0 MotionState, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}

	bound := stepBound(x0.Time, cfg)
	limited := cfg.MaxSteps > 0 && bound > cfg.MaxSteps
	if limited {
		bound = cfg.MaxSteps
	}

	capacity := bound + 1
	if capacity > preallocLimit {
		capacity = preallocLimit
	}
	result := &Result{
		Trajectory: make(Trajectory, 0, capacity),
		Metrics:    make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	x := x0
	result.Trajectory = append(result.Trajectory, x)
	s.notify(x)

	for i := 0; x.Time < cfg.End && i < bound; i++ {
		select {
		case <-ctx.Done():
			s.collect(result)
			return result, &SimulationError{Step: i, Time: x.Time, State: x, Wrapped: ErrCanceled}
		default:
		}

		next := s.integrator.Step(s.sys, x, cfg.Dt)

		if cfg.ValidateState && !next.IsValid() {
			s.collect(result)
			return result, &SimulationError{Step: i, Time: next.Time, State: next, Wrapped: ErrNumericOverflow}
		}

		x = next
		result.StepsTaken++
		result.Trajectory = append(result.Trajectory, x)
		s.notify(x)

		if cfg.Stop != nil && cfg.Stop(x) {
			result.Stopped = true
			break
		}
	}

	s.collect(result)
	if limited && !result.Stopped && x.Time < cfg.End {
		return result, &SimulationError{Step: result.StepsTaken, Time: x.Time, State: x, Wrapped: ErrStepLimit}
	}
	return result, nil
}

func (s *Simulator) notify(x MotionState) {
	for _, m := range s.metrics {
		m.Observe(x)
	}
	for _, obs := range s.observers {
		obs.OnStep(x)
	}
}

func (s *Simulator) collect(result *Result) {
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

func (s *Simulator) validateConfig(cfg Config) error {
	if !isFinite(cfg.Dt) || cfg.Dt <= 0 {
		return &ParameterError{Field: "dt", Value: cfg.Dt, Reason: "must be positive and finite"}
	}
	if !isFinite(cfg.End) {
		return &ParameterError{Field: "ending_time", Value: cfg.End, Reason: "must be finite"}
	}
	if cfg.MaxSteps < 0 {
		return &ParameterError{Field: "max_steps", Value: float64(cfg.MaxSteps), Reason: "must not be negative"}
	}
	return nil
}

// stepBound is ceil((End-t0)/Dt) plus one step of slack for the rounding of
// the accumulated time. The time guard in Run normally ends the loop first.
func stepBound(t0 float64, cfg Config) int {
	span := cfg.End - t0
	if span <= 0 {
		return 0
	}
	steps := math.Ceil(span/cfg.Dt) + 1
	if steps > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(steps)
}

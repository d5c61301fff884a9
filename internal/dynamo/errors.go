package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidParameter indicates a physical input that is non-finite or out of range.
	ErrInvalidParameter = errors.New("dynamo: invalid parameter")

	// ErrNumericOverflow indicates a state component became NaN or Inf during a run.
	ErrNumericOverflow = errors.New("dynamo: numeric overflow (NaN or Inf detected)")

	// ErrStepLimit indicates a run used up its step cap before reaching its end.
	ErrStepLimit = errors.New("dynamo: step limit reached")

	// ErrCanceled indicates the simulation was interrupted.
	ErrCanceled = errors.New("dynamo: simulation canceled by context")
)

// ParameterError names the input that failed validation.
type ParameterError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%g: %s", e.Field, e.Value, e.Reason)
}

func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}

// SimulationError wraps an error with simulation context.
type SimulationError struct {
	Step    int
	Time    float64
	State   MotionState
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}

package dynamo

// System yields the acceleration acting on the projectile in a given state.
type System interface {
	Acceleration(s MotionState) Vec2
}

type Integrator interface {
	Step(sys System, s MotionState, dt float64) MotionState
}

type Metric interface {
	Name() string
	Observe(s MotionState)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(s MotionState)
}

// StopFunc reports whether the run should end after s has been recorded.
type StopFunc func(s MotionState) bool

type Config struct {
	Dt  float64
	End float64
	// MaxSteps caps the steps a run may take. Zero disables the cap.
	MaxSteps      int
	ValidateState bool
	Stop          StopFunc
}

type Result struct {
	Trajectory Trajectory
	Metrics    map[string]float64
	StepsTaken int
	// Stopped is set when the stop condition ended the run before End.
	Stopped bool
}

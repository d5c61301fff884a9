package dynamo

// MotionState is the complete kinematic state of the projectile at one instant.
type MotionState struct {
	Position     Vec2    `json:"position"`
	Velocity     Vec2    `json:"velocity"`
	Acceleration Vec2    `json:"acceleration"`
	Time         float64 `json:"time"`
}

// IsValid reports whether every component of the state is finite.
func (s MotionState) IsValid() bool {
	return s.Position.IsFinite() && s.Velocity.IsFinite() && s.Acceleration.IsFinite() && isFinite(s.Time)
}

// Trajectory is a time-ordered sequence of states. Index 0 is the initial
// condition and every later entry is exactly one step after its predecessor.
type Trajectory []MotionState

func (tr Trajectory) Last() (MotionState, bool) {
	if len(tr) == 0 {
		return MotionState{}, false
	}
	return tr[len(tr)-1], true
}

// MaxX returns the largest x reached, never less than zero.
func (tr Trajectory) MaxX() float64 {
	m := 0.0
	for _, s := range tr {
		if s.Position.X > m {
			m = s.Position.X
		}
	}
	return m
}

// MaxY returns the largest y reached, never less than zero.
func (tr Trajectory) MaxY() float64 {
	m := 0.0
	for _, s := range tr {
		if s.Position.Y > m {
			m = s.Position.Y
		}
	}
	return m
}

func (tr Trajectory) Positions() []Vec2 {
	out := make([]Vec2, len(tr))
	for i, s := range tr {
		out[i] = s.Position
	}
	return out
}

func (tr Trajectory) Times() []float64 {
	out := make([]float64, len(tr))
	for i, s := range tr {
		out[i] = s.Time
	}
	return out
}

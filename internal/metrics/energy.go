package metrics

import (
	"math"

	"github.com/san-kum/dragsim/internal/dynamo"
)

// MechanicalEnergy is kinetic plus potential energy relative to y = 0.
func MechanicalEnergy(s dynamo.MotionState, mass, gravity float64) float64 {
	v := s.Velocity.Magnitude()
	return 0.5*mass*v*v + mass*gravity*s.Position.Y
}

// EnergyLoss reports the fraction of the initial mechanical energy that drag
// has removed by the latest state.
type EnergyLoss struct {
	name          string
	mass          float64
	gravity       float64
	initialEnergy float64
	currentEnergy float64
	samples       int
}

func NewEnergyLoss(mass, gravity float64) *EnergyLoss {
	return &EnergyLoss{
		name:    "energy_loss",
		mass:    mass,
		gravity: gravity,
	}
}

func (e *EnergyLoss) Name() string { return e.name }

func (e *EnergyLoss) Observe(s dynamo.MotionState) {
	energy := MechanicalEnergy(s, e.mass, e.gravity)
	if e.samples == 0 {
		e.initialEnergy = energy
	}
	e.currentEnergy = energy
	e.samples++
}

func (e *EnergyLoss) Value() float64 {
	if e.initialEnergy == 0 {
		return 0
	}
	return (e.initialEnergy - e.currentEnergy) / math.Abs(e.initialEnergy)
}

func (e *EnergyLoss) Reset() {
	e.initialEnergy = 0
	e.currentEnergy = 0
	e.samples = 0
}

package metrics

import "github.com/san-kum/dragsim/internal/dynamo"

// Summary collects the headline numbers of one trajectory.
type Summary struct {
	Apex        float64 `json:"apex" yaml:"apex"`
	Range       float64 `json:"range" yaml:"range"`
	FlightTime  float64 `json:"flight_time" yaml:"flight_time"`
	ImpactSpeed float64 `json:"impact_speed" yaml:"impact_speed"`
	EnergyLoss  float64 `json:"energy_loss" yaml:"energy_loss"`
	Steps       int     `json:"steps" yaml:"steps"`
	Impact      bool    `json:"impact" yaml:"impact"`
}

// Defaults returns a fresh set of the standard flight metrics.
func Defaults(mass, gravity float64) []dynamo.Metric {
	return []dynamo.Metric{
		NewApex(),
		NewRange(),
		NewFlightTime(),
		NewImpactSpeed(),
		NewEnergyLoss(mass, gravity),
	}
}

// Summarize replays a finished trajectory through the standard metrics.
func Summarize(tr dynamo.Trajectory, mass, gravity float64) Summary {
	ms := Defaults(mass, gravity)
	for _, s := range tr {
		for _, m := range ms {
			m.Observe(s)
		}
	}

	values := make(map[string]float64, len(ms))
	for _, m := range ms {
		values[m.Name()] = m.Value()
	}

	sum := FromValues(values)
	if len(tr) > 0 {
		sum.Steps = len(tr) - 1
		last := tr[len(tr)-1]
		sum.Impact = last.Position.Y < 0
	}
	return sum
}

// FromValues maps a simulator metrics map onto a Summary.
func FromValues(values map[string]float64) Summary {
	return Summary{
		Apex:        values["apex"],
		Range:       values["range"],
		FlightTime:  values["flight_time"],
		ImpactSpeed: values["impact_speed"],
		EnergyLoss:  values["energy_loss"],
	}
}

package metrics

import (
	"math"

	"github.com/san-kum/dragsim/internal/dynamo"
)

// Apex tracks the highest point reached.
type Apex struct {
	name    string
	height  float64
	samples int
}

func NewApex() *Apex {
	return &Apex{name: "apex"}
}

func (a *Apex) Name() string { return a.name }

func (a *Apex) Observe(s dynamo.MotionState) {
	if a.samples == 0 || s.Position.Y > a.height {
		a.height = s.Position.Y
	}
	a.samples++
}

func (a *Apex) Value() float64 { return a.height }

func (a *Apex) Reset() {
	a.height = 0
	a.samples = 0
}

// Range tracks the furthest horizontal distance from the launch point.
type Range struct {
	name    string
	startX  float64
	maxX    float64
	samples int
}

func NewRange() *Range {
	return &Range{name: "range"}
}

func (r *Range) Name() string { return r.name }

func (r *Range) Observe(s dynamo.MotionState) {
	if r.samples == 0 {
		r.startX = s.Position.X
		r.maxX = s.Position.X
	}
	r.maxX = math.Max(r.maxX, s.Position.X)
	r.samples++
}

func (r *Range) Value() float64 { return r.maxX - r.startX }

func (r *Range) Reset() {
	r.startX = 0
	r.maxX = 0
	r.samples = 0
}

type FlightTime struct {
	name    string
	start   float64
	last    float64
	samples int
}

func NewFlightTime() *FlightTime {
	return &FlightTime{name: "flight_time"}
}

func (f *FlightTime) Name() string { return f.name }

func (f *FlightTime) Observe(s dynamo.MotionState) {
	if f.samples == 0 {
		f.start = s.Time
	}
	f.last = s.Time
	f.samples++
}

func (f *FlightTime) Value() float64 { return f.last - f.start }

func (f *FlightTime) Reset() {
	f.start = 0
	f.last = 0
	f.samples = 0
}

// ImpactSpeed is the speed of the most recent state.
type ImpactSpeed struct {
	name  string
	speed float64
}

func NewImpactSpeed() *ImpactSpeed {
	return &ImpactSpeed{name: "impact_speed"}
}

func (i *ImpactSpeed) Name() string                 { return i.name }
func (i *ImpactSpeed) Observe(s dynamo.MotionState) { i.speed = s.Velocity.Magnitude() }
func (i *ImpactSpeed) Value() float64               { return i.speed }
func (i *ImpactSpeed) Reset()                       { i.speed = 0 }

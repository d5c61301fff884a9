package config

import (
	"fmt"
	"math"
	"os"

	"github.com/san-kum/dragsim/internal/dynamo"
	"github.com/san-kum/dragsim/internal/physics"
	"gopkg.in/yaml.v3"
)

const (
	DefaultCrossArea       = 0.01
	DefaultFluidDensity    = 1.2
	DefaultDragCoefficient = 0.47
	DefaultMass            = 0.145
	DefaultDt              = 0.001
	DefaultEndingTime      = 10.0
	DefaultSpeed           = 40.0
	DefaultAngle           = 45.0
	DefaultDtScale         = 3
	MaxDtScale             = 5
)

type Config struct {
	CrossArea       float64       `yaml:"cross_area"`
	FluidDensity    float64       `yaml:"fluid_density"`
	DragCoefficient float64       `yaml:"drag_coefficient"`
	Mass            float64       `yaml:"mass"`
	Dt              float64       `yaml:"dt"`
	EndingTime      float64       `yaml:"ending_time"`
	Gravity         float64       `yaml:"gravity"`
	MaxSteps        int           `yaml:"max_steps"`
	Initial         InitialConfig `yaml:"initial"`
}

// InitialConfig is the launch state: position plus speed and angle in degrees.
type InitialConfig struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Speed float64 `yaml:"speed"`
	Angle float64 `yaml:"angle"`
}

func DefaultConfig() *Config {
	return &Config{
		CrossArea:       DefaultCrossArea,
		FluidDensity:    DefaultFluidDensity,
		DragCoefficient: DefaultDragCoefficient,
		Mass:            DefaultMass,
		Dt:              DefaultDt,
		EndingTime:      DefaultEndingTime,
		Gravity:         physics.StandardGravity,
		MaxSteps:        physics.DefaultMaxSteps,
		Initial: InitialConfig{
			Speed: DefaultSpeed,
			Angle: DefaultAngle,
		},
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of base; keys missing from the file keep the
// base values. base is not modified.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) InitialState() dynamo.MotionState {
	return dynamo.MotionState{
		Position: dynamo.NewVec2(c.Initial.X, c.Initial.Y),
		Velocity: dynamo.FromMagnitudeAngle(c.Initial.Speed, c.Initial.Angle),
	}
}

// Parameters validates the config and builds the physical parameters.
func (c *Config) Parameters() (physics.Parameters, error) {
	return physics.NewParameters(
		c.CrossArea,
		c.FluidDensity,
		c.DragCoefficient,
		c.Mass,
		c.Dt,
		c.InitialState(),
		c.EndingTime,
		physics.WithGravity(c.Gravity),
		physics.WithMaxSteps(c.MaxSteps),
	)
}

// DeltaTimeFromScale maps a scale k in [0, MaxDtScale] to a time step of 10^-k seconds.
func DeltaTimeFromScale(k int) (float64, error) {
	if k < 0 || k > MaxDtScale {
		return 0, &dynamo.ParameterError{Field: "dt_scale", Value: float64(k), Reason: fmt.Sprintf("must be in [0, %d]", MaxDtScale)}
	}
	return math.Pow(10, -float64(k)), nil
}

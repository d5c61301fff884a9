package config

import (
	"sort"

	"github.com/san-kum/dragsim/internal/physics"
)

var Presets = map[string]*Config{
	"baseball": {
		CrossArea: 0.01, FluidDensity: 1.2, DragCoefficient: 0.47, Mass: 0.145,
		Dt: 0.001, EndingTime: 10, Gravity: physics.StandardGravity, MaxSteps: physics.DefaultMaxSteps,
		Initial: InitialConfig{Speed: 40, Angle: 45},
	},
	"golf": {
		CrossArea: 0.00143, FluidDensity: 1.2, DragCoefficient: 0.25, Mass: 0.0459,
		Dt: 0.001, EndingTime: 15, Gravity: physics.StandardGravity, MaxSteps: physics.DefaultMaxSteps,
		Initial: InitialConfig{Speed: 70, Angle: 12},
	},
	"cannonball": {
		CrossArea: 0.0177, FluidDensity: 1.2, DragCoefficient: 0.47, Mass: 15,
		Dt: 0.001, EndingTime: 40, Gravity: physics.StandardGravity, MaxSteps: physics.DefaultMaxSteps,
		Initial: InitialConfig{Speed: 150, Angle: 45},
	},
	"pingpong": {
		CrossArea: 0.00126, FluidDensity: 1.2, DragCoefficient: 0.5, Mass: 0.0027,
		Dt: 0.001, EndingTime: 5, Gravity: physics.StandardGravity, MaxSteps: physics.DefaultMaxSteps,
		Initial: InitialConfig{Y: 0.76, Speed: 20, Angle: 30},
	},
	"shotput": {
		CrossArea: 0.0095, FluidDensity: 1.2, DragCoefficient: 0.47, Mass: 7.26,
		Dt: 0.001, EndingTime: 5, Gravity: physics.StandardGravity, MaxSteps: physics.DefaultMaxSteps,
		Initial: InitialConfig{Y: 2, Speed: 14, Angle: 40},
	},
	"shuttlecock": {
		CrossArea: 0.0028, FluidDensity: 1.2, DragCoefficient: 0.6, Mass: 0.005,
		Dt: 0.001, EndingTime: 5, Gravity: physics.StandardGravity, MaxSteps: physics.DefaultMaxSteps,
		Initial: InitialConfig{Y: 1.5, Speed: 60, Angle: 20},
	},
	"underwater": {
		CrossArea: 0.0042, FluidDensity: 1000, DragCoefficient: 0.47, Mass: 0.145,
		Dt: 0.0001, EndingTime: 2, Gravity: physics.StandardGravity, MaxSteps: physics.DefaultMaxSteps,
		Initial: InitialConfig{Y: 5, Speed: 10, Angle: 0},
	},
}

// GetPreset returns a copy of the named preset, or nil if it does not exist.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

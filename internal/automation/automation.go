// Package automation runs scripted batches of shots and parameter sweeps.
package automation

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/san-kum/dragsim/internal/config"
	"github.com/san-kum/dragsim/internal/export"
	"github.com/san-kum/dragsim/internal/metrics"
	"github.com/san-kum/dragsim/internal/physics"
	"gopkg.in/yaml.v3"
)

// Scenario is a named list of shots loaded from YAML.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Shots       []Shot `yaml:"shots"`
}

// Shot starts from a preset (or the defaults) and overrides individual
// config keys. SaveAs, when set, exports the comparison.
type Shot struct {
	Name   string             `yaml:"name"`
	Preset string             `yaml:"preset"`
	Params map[string]float64 `yaml:"params"`
	SaveAs string             `yaml:"save_as"`
}

type ShotResult struct {
	Name        string
	Summary     metrics.Summary
	FreeSummary metrics.Summary
	Err         error
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &scenario, nil
}

// Config resolves the shot against its preset.
func (s Shot) Config() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if s.Preset != "" {
		cfg = config.GetPreset(s.Preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q", s.Preset)
		}
	}
	for k, v := range s.Params {
		if err := Apply(cfg, k, v); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// Apply sets the config field named by its YAML key.
func Apply(cfg *config.Config, key string, v float64) error {
	switch key {
	case "cross_area":
		cfg.CrossArea = v
	case "fluid_density":
		cfg.FluidDensity = v
	case "drag_coefficient":
		cfg.DragCoefficient = v
	case "mass":
		cfg.Mass = v
	case "dt":
		cfg.Dt = v
	case "ending_time":
		cfg.EndingTime = v
	case "gravity":
		cfg.Gravity = v
	case "max_steps":
		cfg.MaxSteps = int(v)
	case "x":
		cfg.Initial.X = v
	case "y":
		cfg.Initial.Y = v
	case "speed":
		cfg.Initial.Speed = v
	case "angle":
		cfg.Initial.Angle = v
	default:
		return fmt.Errorf("unknown parameter %q", key)
	}
	return nil
}

// RunScenario runs every shot in order. A failing shot is recorded in its
// result and the batch continues; only cancellation stops it early.
func RunScenario(ctx context.Context, scenario *Scenario, logger *log.Logger) ([]ShotResult, error) {
	results := make([]ShotResult, 0, len(scenario.Shots))

	for i, shot := range scenario.Shots {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		name := shot.Name
		if name == "" {
			name = fmt.Sprintf("shot-%d", i+1)
		}
		logger.Info("running shot", "n", i+1, "of", len(scenario.Shots), "name", name)

		res := ShotResult{Name: name}
		res.Summary, res.FreeSummary, res.Err = runShot(ctx, name, shot)
		if res.Err != nil {
			logger.Error("shot failed", "name", name, "err", res.Err)
		} else {
			logger.Debug("shot done", "name", name, "range", res.Summary.Range, "apex", res.Summary.Apex)
		}
		results = append(results, res)
	}

	return results, nil
}

func runShot(ctx context.Context, name string, shot Shot) (metrics.Summary, metrics.Summary, error) {
	cfg, err := shot.Config()
	if err != nil {
		return metrics.Summary{}, metrics.Summary{}, err
	}

	params, err := cfg.Parameters()
	if err != nil {
		return metrics.Summary{}, metrics.Summary{}, err
	}

	c, err := physics.CompareContext(ctx, params)
	if err != nil {
		return metrics.Summary{}, metrics.Summary{}, err
	}

	doc := export.NewDocument(name, params, c)
	if shot.SaveAs != "" {
		if err := export.SaveFile(shot.SaveAs, doc); err != nil {
			return doc.Summary, doc.FreeSummary, err
		}
	}
	return doc.Summary, doc.FreeSummary, nil
}

// Sweep varies one config key across Values, all other keys from Base.
type Sweep struct {
	Base   *config.Config
	Param  string
	Values []float64
}

type SweepResult struct {
	Value   float64
	Summary metrics.Summary
}

// RunSweep runs the drag simulation once per value.
func RunSweep(ctx context.Context, sweep *Sweep, logger *log.Logger) ([]SweepResult, error) {
	results := make([]SweepResult, 0, len(sweep.Values))

	for i, v := range sweep.Values {
		cfg := *sweep.Base
		if err := Apply(&cfg, sweep.Param, v); err != nil {
			return nil, err
		}

		params, err := cfg.Parameters()
		if err != nil {
			return results, fmt.Errorf("%s=%g: %w", sweep.Param, v, err)
		}

		result, err := physics.SimulateContext(ctx, params, metrics.Defaults(params.Mass(), params.Gravity())...)
		if err != nil {
			return results, fmt.Errorf("%s=%g: %w", sweep.Param, v, err)
		}

		sum := metrics.FromValues(result.Metrics)
		sum.Steps = result.StepsTaken
		sum.Impact = result.Stopped

		results = append(results, SweepResult{Value: v, Summary: sum})
		logger.Debug("sweep", "n", i+1, "of", len(sweep.Values), sweep.Param, v)
	}

	return results, nil
}

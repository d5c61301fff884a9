package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/san-kum/dragsim/internal/automation"
	"github.com/san-kum/dragsim/internal/chart"
	"github.com/san-kum/dragsim/internal/config"
	"github.com/san-kum/dragsim/internal/export"
	"github.com/san-kum/dragsim/internal/integrators"
	"github.com/san-kum/dragsim/internal/physics"
	"github.com/san-kum/dragsim/internal/viz"
	"github.com/spf13/cobra"
)

// simulate resolves the config and runs both simulations.
func simulate(cmd *cobra.Command) (physics.Parameters, physics.Comparison, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return physics.Parameters{}, physics.Comparison{}, err
	}

	params, err := cfg.Parameters()
	if err != nil {
		return physics.Parameters{}, physics.Comparison{}, err
	}
	logger.Debug("parameters", "drag_proportion", params.DragProportion(), "dt", params.DeltaTime(), "end", params.EndingTime())

	name := integrators.NameSemiImplicitEuler
	if f := cmd.Flags().Lookup("integrator"); f != nil {
		name = f.Value.String()
	}
	integ, err := integrators.ByName(name)
	if err != nil {
		return physics.Parameters{}, physics.Comparison{}, err
	}

	c, err := physics.CompareWith(cmd.Context(), params, integ)
	if err != nil {
		return physics.Parameters{}, physics.Comparison{}, err
	}
	logger.Info("simulated", "integrator", name, "drag_states", len(c.WithDrag), "free_states", len(c.WithoutDrag))
	return params, c, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	params, c, err := simulate(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.SummaryTable(c, params.Mass(), params.Gravity()))

	if !noPlot {
		canvas := viz.PlotComparison(c, 70, 18)
		fmt.Fprintln(out, viz.Panel.Render(canvas.Render(viz.CurrentTheme.SeriesStyles())))
		fmt.Fprintln(out, viz.HeightChart(c, 70, 10))
	}

	if runPNG != "" {
		if err := writePNG(out, runPNG, c); err != nil {
			return err
		}
	}

	if outPath != "" {
		if err := export.SaveFile(outPath, export.NewDocument(preset, params, c)); err != nil {
			return err
		}
		fmt.Fprintf(out, "exported to %s\n", outPath)
	}

	return nil
}

func writePNG(out io.Writer, path string, c physics.Comparison) error {
	img, err := chart.Render(c, chart.DefaultWidth, chart.DefaultHeight)
	if err != nil {
		return err
	}
	if err := chart.SavePNG(path, img); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(out, "chart written to %s\n", path)
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	path := "trajectory.png"
	if len(args) > 0 {
		path = args[0]
	}

	_, c, err := simulate(cmd)
	if err != nil {
		return err
	}
	return writePNG(cmd.OutOrStdout(), path, c)
}

func runExport(cmd *cobra.Command, args []string) error {
	path := args[0]
	if export.FormatFor(path) == export.FormatUnknown {
		return fmt.Errorf("unsupported export format: %s (use .csv, .json, .json.zst or .svg)", path)
	}

	params, c, err := simulate(cmd)
	if err != nil {
		return err
	}

	if err := export.SaveFile(path, export.NewDocument(preset, params, c)); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", path)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMASS\tAREA\tCD\tDENSITY\tSPEED\tANGLE")

	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%gkg\t%gm²\t%g\t%gkg/m³\t%gm/s\t%g°\n",
			name,
			p.Mass,
			p.CrossArea,
			p.DragCoefficient,
			p.FluidDensity,
			p.Initial.Speed,
			p.Initial.Angle,
		)
	}

	return w.Flush()
}

func runBatch(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}
	logger.Info("scenario", "name", scenario.Name, "shots", len(scenario.Shots))

	results, err := automation.RunScenario(cmd.Context(), scenario, logger)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SHOT\tRANGE\tFREE RANGE\tAPEX\tFLIGHT\tIMPACT SPEED\tERROR")

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(w, "%s\t-\t-\t-\t-\t-\t%v\n", r.Name, r.Err)
			continue
		}
		fmt.Fprintf(w, "%s\t%.2fm\t%.2fm\t%.2fm\t%.3fs\t%.2fm/s\t\n",
			r.Name,
			r.Summary.Range,
			r.FreeSummary.Range,
			r.Summary.Apex,
			r.Summary.FlightTime,
			r.Summary.ImpactSpeed,
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d shots failed", failed, len(results))
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	sweep := &automation.Sweep{Base: cfg, Param: sweepParam, Values: sweepVals}
	results, err := automation.RunSweep(cmd.Context(), sweep, logger)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tRANGE\tAPEX\tFLIGHT\tIMPACT SPEED\tENERGY LOST\n", sweepParam)
	for _, r := range results {
		fmt.Fprintf(w, "%g\t%.2fm\t%.2fm\t%.3fs\t%.2fm/s\t%.1f%%\n",
			r.Value,
			r.Summary.Range,
			r.Summary.Apex,
			r.Summary.FlightTime,
			r.Summary.ImpactSpeed,
			r.Summary.EnergyLoss*100,
		)
	}
	return w.Flush()
}

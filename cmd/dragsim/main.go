package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/dragsim/internal/config"
	"github.com/san-kum/dragsim/internal/integrators"
	"github.com/san-kum/dragsim/internal/logging"
	"github.com/san-kum/dragsim/internal/tui"
	"github.com/san-kum/dragsim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	logLevel   string
	theme      string
	dtScale    int
	formPNG    string
	runPNG     string
	promptPNG  string
	outPath    string
	noPlot     bool
	integName  string
	sweepParam string
	sweepVals  []float64

	// bound to the physics flags; only flags the user changed are applied
	flagCfg = config.DefaultConfig()

	logger = logging.Discard()
)

func main() {
	os.Exit(run())
}

// run executes the root command and returns the process exit code, so the
// signal handler is released before the process exits.
func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dragsim",
		Short: "projectile motion with and without air drag",
		Long: "dragsim integrates a 2D projectile under gravity and quadratic air drag\n" +
			"and compares it with the same shot in vacuum.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.New(cmd.ErrOrStderr(), logLevel)
			if err != nil {
				return err
			}
			logger = l
			viz.SetTheme(theme)
			return nil
		},
		RunE: runForm,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "start from a preset (see `dragsim presets`)")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&theme, "theme", "classic", "terminal colour theme")

	pf.Float64Var(&flagCfg.CrossArea, "area", flagCfg.CrossArea, "cross-sectional area (m²)")
	pf.Float64Var(&flagCfg.FluidDensity, "density", flagCfg.FluidDensity, "fluid density (kg/m³)")
	pf.Float64Var(&flagCfg.DragCoefficient, "cd", flagCfg.DragCoefficient, "drag coefficient")
	pf.Float64Var(&flagCfg.Mass, "mass", flagCfg.Mass, "projectile mass (kg)")
	pf.Float64Var(&flagCfg.Dt, "dt", flagCfg.Dt, "time step (s)")
	pf.IntVar(&dtScale, "dt-scale", config.DefaultDtScale, "time step as 10^-k seconds, k in 0..5 (overrides --dt)")
	pf.Float64Var(&flagCfg.EndingTime, "end", flagCfg.EndingTime, "ending time (s)")
	pf.Float64Var(&flagCfg.Gravity, "gravity", flagCfg.Gravity, "gravitational acceleration (m/s²)")
	pf.IntVar(&flagCfg.MaxSteps, "max-steps", flagCfg.MaxSteps, "step limit per run (0 for none)")
	pf.Float64Var(&flagCfg.Initial.X, "x", flagCfg.Initial.X, "initial x (m)")
	pf.Float64Var(&flagCfg.Initial.Y, "y", flagCfg.Initial.Y, "initial y (m)")
	pf.Float64Var(&flagCfg.Initial.Speed, "speed", flagCfg.Initial.Speed, "initial speed (m/s)")
	pf.Float64Var(&flagCfg.Initial.Angle, "angle", flagCfg.Initial.Angle, "launch angle (degrees)")

	rootCmd.Flags().StringVar(&formPNG, "png", "trajectory.png", "where ctrl+s saves the chart")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "simulate and print the comparison",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	runCmd.Flags().StringVar(&runPNG, "png", "", "also write the chart as PNG")
	runCmd.Flags().StringVar(&outPath, "out", "", "also export the runs (.csv, .json, .json.zst, .svg)")
	runCmd.Flags().BoolVar(&noPlot, "no-plot", false, "print the summary only")
	runCmd.Flags().StringVar(&integName, "integrator", integrators.NameSemiImplicitEuler, "stepping scheme (euler, rk4)")

	promptCmd := &cobra.Command{
		Use:   "prompt",
		Short: "read the parameters from stdin and write the chart",
		Args:  cobra.NoArgs,
		RunE:  runPrompt,
	}
	promptCmd.Flags().StringVar(&promptPNG, "png", "trajectory.png", "output PNG")

	renderCmd := &cobra.Command{
		Use:   "render [file.png]",
		Short: "write the chart as PNG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRender,
	}

	exportCmd := &cobra.Command{
		Use:   "export [file]",
		Short: "export both runs (.csv, .json, .json.zst, .svg)",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	batchCmd := &cobra.Command{
		Use:   "batch [scenario.yaml]",
		Short: "run a scripted list of shots",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "vary one parameter and tabulate range and apex",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&sweepParam, "param", "drag_coefficient", "config key to vary")
	sweepCmd.Flags().Float64SliceVar(&sweepVals, "values", []float64{0, 0.1, 0.2, 0.47, 1}, "values to try")

	rootCmd.AddCommand(runCmd, promptCmd, renderCmd, exportCmd, presetsCmd, batchCmd, sweepCmd)
	return rootCmd
}

// resolveConfig layers preset, config file and changed flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		logger.Debug("using preset", "name", preset)
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		logger.Debug("loaded config", "path", configFile)
	}

	flags := cmd.Flags()
	apply := func(name string, set func()) {
		if flags.Changed(name) {
			set()
		}
	}
	apply("area", func() { cfg.CrossArea = flagCfg.CrossArea })
	apply("density", func() { cfg.FluidDensity = flagCfg.FluidDensity })
	apply("cd", func() { cfg.DragCoefficient = flagCfg.DragCoefficient })
	apply("mass", func() { cfg.Mass = flagCfg.Mass })
	apply("dt", func() { cfg.Dt = flagCfg.Dt })
	apply("end", func() { cfg.EndingTime = flagCfg.EndingTime })
	apply("gravity", func() { cfg.Gravity = flagCfg.Gravity })
	apply("max-steps", func() { cfg.MaxSteps = flagCfg.MaxSteps })
	apply("x", func() { cfg.Initial.X = flagCfg.Initial.X })
	apply("y", func() { cfg.Initial.Y = flagCfg.Initial.Y })
	apply("speed", func() { cfg.Initial.Speed = flagCfg.Initial.Speed })
	apply("angle", func() { cfg.Initial.Angle = flagCfg.Initial.Angle })

	if flags.Changed("dt-scale") {
		dt, err := config.DeltaTimeFromScale(dtScale)
		if err != nil {
			return nil, err
		}
		cfg.Dt = dt
	}

	return cfg, nil
}

func runForm(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.New(cfg, formPNG), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("form: %w", err)
	}
	return nil
}

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/san-kum/dragsim/internal/config"
	"github.com/san-kum/dragsim/internal/physics"
	"github.com/san-kum/dragsim/internal/viz"
	"github.com/spf13/cobra"
)

type promptField struct {
	label string
	set   func(*config.Config, float64)
}

// promptFields are asked in this order.
var promptFields = []promptField{
	{"Cross-sectional area (m^2)", func(c *config.Config, v float64) { c.CrossArea = v }},
	{"Fluid density (kg/m^3)", func(c *config.Config, v float64) { c.FluidDensity = v }},
	{"Drag coefficient", func(c *config.Config, v float64) { c.DragCoefficient = v }},
	{"Mass (kg)", func(c *config.Config, v float64) { c.Mass = v }},
	{"Time step (s)", func(c *config.Config, v float64) { c.Dt = v }},
	{"Initial x (m)", func(c *config.Config, v float64) { c.Initial.X = v }},
	{"Initial y (m)", func(c *config.Config, v float64) { c.Initial.Y = v }},
	{"Initial speed (m/s)", func(c *config.Config, v float64) { c.Initial.Speed = v }},
	{"Launch angle (degrees)", func(c *config.Config, v float64) { c.Initial.Angle = v }},
	{"Ending time (s)", func(c *config.Config, v float64) { c.EndingTime = v }},
}

var errInputEnded = errors.New("input ended before all values were read")

// readPrompt asks for each value on w and reads one per line from r. A line
// that is not a number is reported and asked again.
func readPrompt(r io.Reader, w io.Writer, cfg *config.Config) error {
	scanner := bufio.NewScanner(r)

	for _, f := range promptFields {
		for {
			fmt.Fprintf(w, "%s: ", f.label)
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return err
				}
				return errInputEnded
			}

			v, err := strconv.ParseFloat(strings.TrimSpace(scanner.Text()), 64)
			if err != nil {
				fmt.Fprintf(w, "%q is not a number\n", scanner.Text())
				continue
			}
			f.set(cfg, v)
			break
		}
	}
	return nil
}

func runPrompt(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	if err := readPrompt(cmd.InOrStdin(), cmd.ErrOrStderr(), cfg); err != nil {
		return err
	}

	params, err := cfg.Parameters()
	if err != nil {
		return err
	}

	c, err := physics.CompareContext(cmd.Context(), params)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.SummaryTable(c, params.Mass(), params.Gravity()))
	return writePNG(out, promptPNG, c)
}

// Package tui is the interactive parameter form: every edit re-runs the
// drag and drag-free simulations and redraws the overlay.
package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/dragsim/internal/chart"
	"github.com/san-kum/dragsim/internal/config"
	"github.com/san-kum/dragsim/internal/dynamo"
	"github.com/san-kum/dragsim/internal/physics"
)

const (
	fieldCrossArea = iota
	fieldFluidDensity
	fieldDragCoefficient
	fieldMass
	fieldSpeed
	fieldAngle
	fieldX
	fieldY
	fieldEndingTime
	numFields
)

// the slider sits after the text fields
const sliderRow = numFields

type field struct {
	label string
	unit  string
	value string
}

type Model struct {
	fields  []field
	dtScale int
	cursor  int

	gravity  float64
	maxSteps int

	params     physics.Parameters
	comparison physics.Comparison
	valid      bool
	err        error

	savePath string
	status   string

	width  int
	height int
}

// New builds the form from cfg. PNG snapshots are written to savePath.
func New(cfg *config.Config, savePath string) Model {
	m := Model{
		fields: []field{
			fieldCrossArea:       {"cross area", "m²", formatValue(cfg.CrossArea)},
			fieldFluidDensity:    {"fluid density", "kg/m³", formatValue(cfg.FluidDensity)},
			fieldDragCoefficient: {"drag coefficient", "", formatValue(cfg.DragCoefficient)},
			fieldMass:            {"mass", "kg", formatValue(cfg.Mass)},
			fieldSpeed:           {"initial speed", "m/s", formatValue(cfg.Initial.Speed)},
			fieldAngle:           {"angle", "°", formatValue(cfg.Initial.Angle)},
			fieldX:               {"x", "m", formatValue(cfg.Initial.X)},
			fieldY:               {"y", "m", formatValue(cfg.Initial.Y)},
			fieldEndingTime:      {"ending time", "s", formatValue(cfg.EndingTime)},
		},
		dtScale:  scaleFor(cfg.Dt),
		gravity:  cfg.Gravity,
		maxSteps: cfg.MaxSteps,
		savePath: savePath,
		width:    80,
		height:   40,
	}
	m.recompute()
	return m
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// scaleFor returns k with 10^-k closest to dt.
func scaleFor(dt float64) int {
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return config.DefaultDtScale
	}
	k := int(math.Round(-math.Log10(dt)))
	return min(max(k, 0), config.MaxDtScale)
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "up", "shift+tab":
		m.cursor = (m.cursor + sliderRow) % (sliderRow + 1)
		return m, nil
	case "down", "tab", "enter":
		m.cursor = (m.cursor + 1) % (sliderRow + 1)
		return m, nil
	case "ctrl+s":
		m.save()
		return m, nil
	}

	if m.cursor == sliderRow {
		switch msg.String() {
		case "left", "h":
			if m.dtScale > 0 {
				m.dtScale--
				m.recompute()
			}
		case "right", "l":
			if m.dtScale < config.MaxDtScale {
				m.dtScale++
				m.recompute()
			}
		}
		return m, nil
	}

	f := &m.fields[m.cursor]
	switch msg.String() {
	case "backspace":
		if len(f.value) > 0 {
			f.value = f.value[:len(f.value)-1]
			m.recompute()
		}
	case "ctrl+u":
		f.value = ""
		m.recompute()
	default:
		if len(msg.String()) == 1 {
			c := msg.String()[0]
			if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == 'e' {
				f.value += string(c)
				m.recompute()
			}
		}
	}
	return m, nil
}

// recompute parses every field and reruns both simulations. On failure the
// previous trajectories are dropped and the first error is kept for display.
func (m *Model) recompute() {
	m.valid = false
	m.comparison = physics.Comparison{}

	params, err := m.parse()
	if err != nil {
		m.err = err
		return
	}

	c, err := physics.Compare(params)
	if err != nil {
		m.err = err
		return
	}

	m.params = params
	m.comparison = c
	m.valid = true
	m.err = nil
}

func (m Model) parse() (physics.Parameters, error) {
	var vals [numFields]float64
	for i, f := range m.fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f.value), 64)
		if err != nil {
			return physics.Parameters{}, fmt.Errorf("%s: %q is not a number", f.label, f.value)
		}
		vals[i] = v
	}

	dt, err := config.DeltaTimeFromScale(m.dtScale)
	if err != nil {
		return physics.Parameters{}, err
	}

	initial := dynamo.MotionState{
		Position: dynamo.NewVec2(vals[fieldX], vals[fieldY]),
		Velocity: dynamo.FromMagnitudeAngle(vals[fieldSpeed], vals[fieldAngle]),
	}

	return physics.NewParameters(
		vals[fieldCrossArea],
		vals[fieldFluidDensity],
		vals[fieldDragCoefficient],
		vals[fieldMass],
		dt,
		initial,
		vals[fieldEndingTime],
		physics.WithGravity(m.gravity),
		physics.WithMaxSteps(m.maxSteps),
	)
}

func (m *Model) save() {
	if !m.valid {
		m.status = "nothing to save"
		return
	}

	img, err := chart.Render(m.comparison, chart.DefaultWidth, chart.DefaultHeight)
	if err == nil {
		err = chart.SavePNG(m.savePath, img)
	}
	if err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	m.status = "saved " + m.savePath
}

// Valid reports whether the current fields produced a comparison.
func (m Model) Valid() bool                    { return m.valid }
func (m Model) Err() error                     { return m.err }
func (m Model) Comparison() physics.Comparison { return m.comparison }
func (m Model) Parameters() physics.Parameters { return m.params }

package tui

import (
	"fmt"
	"strings"

	"github.com/san-kum/dragsim/internal/config"
	"github.com/san-kum/dragsim/internal/viz"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString("\n  " + viz.Title.Render("d r a g s i m") + "  " +
		viz.Subtle.Render("projectile with and without air drag") + "\n\n")

	for i, f := range m.fields {
		b.WriteString(m.fieldLine(i, f.label, f.value+cursorMark(i == m.cursor), f.unit))
	}

	dt, _ := config.DeltaTimeFromScale(m.dtScale)
	slider := viz.Slider(m.dtScale, config.MaxDtScale, 12) + fmt.Sprintf("  %g", dt)
	b.WriteString(m.fieldLine(sliderRow, "time step", slider, "s"))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("  " + viz.ErrorText.Render(m.err.Error()) + "\n")
	} else if m.valid {
		cw, ch := m.canvasSize()
		canvas := viz.PlotComparison(m.comparison, cw, ch)
		b.WriteString(viz.Panel.Render(canvas.Render(viz.CurrentTheme.SeriesStyles())) + "\n")
		b.WriteString(legend() + "\n")
		b.WriteString(viz.SummaryTable(m.comparison, m.params.Mass(), m.params.Gravity()) + "\n")
	}

	if m.status != "" {
		b.WriteString("  " + viz.MetricValue.Render(m.status) + "\n")
	}
	b.WriteString(viz.KeyHint.Render("  ↑↓ select  type to edit  ←→ time step  ctrl+s save png  q quit") + "\n")

	return b.String()
}

func (m Model) fieldLine(row int, label, value, unit string) string {
	if row == m.cursor {
		return "  " + viz.Focused.Render("▸ ") + viz.MetricLabel.Render(fmt.Sprintf("%-18s", label)) +
			viz.Focused.Render(value) + " " + viz.Subtle.Render(unit) + "\n"
	}
	return "    " + viz.MetricLabel.Render(fmt.Sprintf("%-18s", label)) +
		viz.MetricValue.Render(value) + " " + viz.Subtle.Render(unit) + "\n"
}

func cursorMark(active bool) string {
	if active {
		return "▋"
	}
	return ""
}

func legend() string {
	styles := viz.CurrentTheme.SeriesStyles()
	return "  " + styles[viz.LayerDrag].Render("━━ with drag") + "   " +
		styles[viz.LayerFree].Render("━━ without drag")
}

func (m Model) canvasSize() (int, int) {
	cw := m.width - 6
	ch := m.height - 30
	if cw < 40 {
		cw = 40
	}
	if ch < 10 {
		ch = 10
	}
	return cw, ch
}

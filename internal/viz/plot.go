package viz

import (
	"fmt"
	"math"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/dragsim/internal/chart"
	"github.com/san-kum/dragsim/internal/dynamo"
	"github.com/san-kum/dragsim/internal/metrics"
	"github.com/san-kum/dragsim/internal/physics"
)

const (
	LayerDrag = iota
	LayerFree
)

// PlotComparison draws both runs on a braille canvas of w x h cells using
// the raster chart's bounds.
func PlotComparison(c physics.Comparison, w, h int) *Canvas {
	canvas := NewCanvas(w, h)
	maxX, maxY := chart.Bounds(c)

	// drag-free first so the drag run stays on top where they overlap
	drawTrajectory(canvas, c.WithoutDrag, maxX, maxY, LayerFree)
	drawTrajectory(canvas, c.WithDrag, maxX, maxY, LayerDrag)
	return canvas
}

func drawTrajectory(canvas *Canvas, tr dynamo.Trajectory, maxX, maxY float64, layer int) {
	sw, sh := canvas.SubWidth()-1, canvas.SubHeight()-1
	toDot := func(p dynamo.Vec2) (int, int) {
		x := int(math.Round(p.X / maxX * float64(sw)))
		y := sh - int(math.Round(p.Y/maxY*float64(sh)))
		return x, y
	}

	pts := tr.Positions()
	for i, p := range pts {
		x, y := toDot(p)
		if i == 0 {
			canvas.SetLayer(x, y, layer)
			continue
		}
		px, py := toDot(pts[i-1])
		canvas.DrawLine(px, py, x, y, layer)
	}
}

// HeightChart plots height against time for both runs, resampled onto a
// shared time axis of width columns.
func HeightChart(c physics.Comparison, width, height int) string {
	if width < 2 {
		width = 2
	}

	tMax := 0.0
	for _, tr := range []dynamo.Trajectory{c.WithDrag, c.WithoutDrag} {
		if last, ok := tr.Last(); ok && last.Time > tMax {
			tMax = last.Time
		}
	}

	drag := resample(c.WithDrag, tMax, width)
	free := resample(c.WithoutDrag, tMax, width)
	if len(drag) == 0 || len(free) == 0 {
		return ""
	}

	return asciigraph.PlotMany([][]float64{drag, free},
		asciigraph.Height(height),
		asciigraph.SeriesColors(asciigraph.Magenta, asciigraph.Blue),
		asciigraph.SeriesLegends("with drag", "without drag"),
		asciigraph.Caption(fmt.Sprintf("height (m) over %.2f s", tMax)),
	)
}

// resample linearly interpolates y at n evenly spaced times over [0, tMax]
// relative to the first state, stopping at the end of tr.
func resample(tr dynamo.Trajectory, tMax float64, n int) []float64 {
	if len(tr) == 0 {
		return nil
	}
	if len(tr) == 1 || tMax == 0 {
		return []float64{tr[0].Position.Y}
	}

	times := tr.Times()
	t0, tEnd := times[0], times[len(times)-1]
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		t := t0 + (tMax-t0)*float64(i)/float64(n-1)
		if t > tEnd {
			break
		}
		j := sort.SearchFloat64s(times, t)
		if j == 0 {
			out = append(out, tr[0].Position.Y)
			continue
		}
		a, b := tr[j-1], tr[j]
		frac := 0.0
		if b.Time > a.Time {
			frac = (t - a.Time) / (b.Time - a.Time)
		}
		out = append(out, a.Position.Y+frac*(b.Position.Y-a.Position.Y))
	}
	return out
}

// SummaryTable renders the flight metrics of both runs side by side.
func SummaryTable(c physics.Comparison, mass, gravity float64) string {
	drag := metrics.Summarize(c.WithDrag, mass, gravity)
	free := metrics.Summarize(c.WithoutDrag, mass, gravity)

	row := func(label, format string, a, b float64) []string {
		return []string{label, fmt.Sprintf(format, a), fmt.Sprintf(format, b)}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(CurrentTheme.Muted)).
		StyleFunc(func(r, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case r == table.HeaderRow:
				return style.Bold(true).Foreground(CurrentTheme.Accent)
			case col == 1:
				return style.Foreground(CurrentTheme.Drag)
			case col == 2:
				return style.Foreground(CurrentTheme.Free)
			}
			return style.Foreground(CurrentTheme.Text)
		}).
		Headers("", "with drag", "without drag").
		Row(row("apex (m)", "%.3f", drag.Apex, free.Apex)...).
		Row(row("range (m)", "%.3f", drag.Range, free.Range)...).
		Row(row("flight time (s)", "%.3f", drag.FlightTime, free.FlightTime)...).
		Row(row("impact speed (m/s)", "%.3f", drag.ImpactSpeed, free.ImpactSpeed)...).
		Row(row("energy lost", "%.1f%%", drag.EnergyLoss*100, free.EnergyLoss*100)...).
		Row("steps", fmt.Sprint(drag.Steps), fmt.Sprint(free.Steps))

	return t.Render()
}

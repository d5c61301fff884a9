package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/dragsim/internal/dynamo"
	"github.com/san-kum/dragsim/internal/physics"
)

func comparison(t *testing.T) physics.Comparison {
	t.Helper()

	initial := dynamo.MotionState{Velocity: dynamo.FromMagnitudeAngle(30, 50)}
	p, err := physics.NewParameters(0.0042, 1.2, 0.47, 0.145, 0.01, initial, 20)
	if err != nil {
		t.Fatalf("parameters: %v", err)
	}
	c, err := physics.Compare(p)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	return c
}

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)

	c.Set(0, 0)
	c.SetLayer(3, 3, 1)
	c.Set(-1, 0)
	c.Set(4, 0)
	c.Set(0, 4)

	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected dot 1 set, got %U", c.Grid[0][0])
	}
	if c.Grid[0][1] != 0x2880 {
		t.Errorf("expected dot 8 set, got %U", c.Grid[0][1])
	}
	if c.Layers[0][1] != 1 {
		t.Errorf("expected layer 1, got %d", c.Layers[0][1])
	}

	c.Clear()
	if c.String() != "\u2800\u2800\n" {
		t.Errorf("expected blank canvas, got %q", c.String())
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(4, 1)
	c.DrawLine(0, 0, 7, 0, 0)

	for col, r := range c.Grid[0] {
		if r != 0x2809 {
			t.Errorf("cell %d: expected top row dots, got %U", col, r)
		}
	}
}

func TestCanvasRenderPlainWithoutStyles(t *testing.T) {
	c := NewCanvas(3, 2)
	c.DrawLine(0, 0, 5, 7, 0)

	if got := c.Render(nil); got != c.String() {
		t.Errorf("render without styles should match String:\n%s\n%s", got, c.String())
	}
}

func TestPlotComparison(t *testing.T) {
	c := comparison(t)

	canvas := PlotComparison(c, 60, 20)

	var drag, free int
	for i := range canvas.Grid {
		for j, r := range canvas.Grid[i] {
			if r == blank {
				continue
			}
			switch canvas.Layers[i][j] {
			case LayerDrag:
				drag++
			case LayerFree:
				free++
			}
		}
	}
	if drag == 0 || free == 0 {
		t.Errorf("expected both series on the canvas, got drag=%d free=%d", drag, free)
	}

	lines := strings.Split(strings.TrimSuffix(canvas.String(), "\n"), "\n")
	if len(lines) != 20 {
		t.Errorf("expected 20 rows, got %d", len(lines))
	}
}

func TestResample(t *testing.T) {
	tr := dynamo.Trajectory{
		{Time: 0, Position: dynamo.NewVec2(0, 0)},
		{Time: 1, Position: dynamo.NewVec2(1, 2)},
		{Time: 2, Position: dynamo.NewVec2(2, 0)},
	}

	got := resample(tr, 2, 5)
	want := []float64{0, 1, 2, 1, 0}
	if len(got) != len(want) {
		t.Fatalf("expected %d samples, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d: expected %v, got %v", i, want[i], got[i])
		}
	}

	short := resample(tr, 4, 5)
	if len(short) != 3 {
		t.Errorf("expected samples to stop at the end of the run, got %d", len(short))
	}

	if resample(nil, 1, 5) != nil {
		t.Error("expected nil for empty trajectory")
	}
}

func TestHeightChart(t *testing.T) {
	c := comparison(t)

	out := HeightChart(c, 60, 8)
	if out == "" {
		t.Fatal("expected chart output")
	}
	if !strings.Contains(out, "height (m)") {
		t.Error("expected caption")
	}
}

func TestSummaryTable(t *testing.T) {
	c := comparison(t)

	out := SummaryTable(c, 0.145, physics.StandardGravity)
	for _, want := range []string{"with drag", "without drag", "apex (m)", "range (m)", "steps"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in table:\n%s", want, out)
		}
	}
}

func TestSlider(t *testing.T) {
	tests := []struct {
		value, limit, width int
		want                string
	}{
		{0, 5, 6, "●─────"},
		{5, 5, 6, "─────●"},
		{3, 5, 6, "───●──"},
		{9, 5, 6, "─────●"},
		{1, 0, 6, ""},
	}
	for _, tt := range tests {
		if got := Slider(tt.value, tt.limit, tt.width); got != tt.want {
			t.Errorf("Slider(%d, %d, %d) = %q, want %q", tt.value, tt.limit, tt.width, got, tt.want)
		}
	}
}

func TestGetTheme(t *testing.T) {
	if GetTheme("ocean").Name != "ocean" {
		t.Error("expected ocean theme")
	}
	if GetTheme("missing").Name != "classic" {
		t.Error("expected classic fallback")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names out of sync")
	}
}

package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/dragsim/internal/chart"
	"github.com/san-kum/dragsim/internal/dynamo"
	"github.com/san-kum/dragsim/internal/physics"
)

// ComparisonSVG draws both runs of c as SVG paths over the same axis bounds
// as the raster chart.
func ComparisonSVG(c physics.Comparison, width, height int) string {
	maxX, maxY := chart.Bounds(c)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, width, height, width, height))

	writePath(&sb, c.WithDrag, maxX, maxY, width, height, "#ff00ff", "With drag")
	writePath(&sb, c.WithoutDrag, maxX, maxY, width, height, "#0000ff", "Without drag")

	sb.WriteString(fmt.Sprintf(`<text x="%d" y="20" font-family="sans-serif" font-size="12" fill="#ff00ff">With drag</text>
<text x="%d" y="36" font-family="sans-serif" font-size="12" fill="#0000ff">Without drag</text>
`, width-110, width-110))

	sb.WriteString("</svg>")
	return sb.String()
}

func writePath(sb *strings.Builder, tr dynamo.Trajectory, maxX, maxY float64, width, height int, stroke, title string) {
	if len(tr) < 2 {
		return
	}

	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, stroke))
	for i, s := range tr {
		x := s.Position.X / maxX * float64(width)
		y := float64(height) - s.Position.Y/maxY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	sb.WriteString(fmt.Sprintf(`"><title>%s</title></path>
`, title))
}

// Package chart renders a drag / drag-free trajectory comparison into a
// raster image.
package chart

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/san-kum/dragsim/internal/dynamo"
	"github.com/san-kum/dragsim/internal/physics"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 600

	// BoundsMargin scales the drag-free maxima into axis bounds.
	BoundsMargin = 1.1

	margin     = 5
	labelLeft  = 48
	labelBelow = 20
	ticks      = 5
	fontSize   = 12
)

var (
	White     = color.RGBA{255, 255, 255, 255}
	Black     = color.RGBA{0, 0, 0, 255}
	Magenta   = color.RGBA{255, 0, 255, 255}
	Blue      = color.RGBA{0, 0, 255, 255}
	gridColor = color.RGBA{220, 220, 220, 255}
	legendBG  = color.NRGBA{255, 255, 255, 204}
)

var (
	faceOnce sync.Once
	face     font.Face
	faceErr  error
)

func loadFace() (font.Face, error) {
	faceOnce.Do(func() {
		ttf, err := truetype.Parse(goregular.TTF)
		if err != nil {
			faceErr = fmt.Errorf("failed to parse font: %w", err)
			return
		}
		face = truetype.NewFace(ttf, &truetype.Options{
			Size:    fontSize,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	})
	return face, faceErr
}

// Bounds returns the axis maxima: the drag-free run's largest x and y, each
// scaled by BoundsMargin. A zero extent falls back to 1.
func Bounds(c physics.Comparison) (maxX, maxY float64) {
	maxX = c.WithoutDrag.MaxX() * BoundsMargin
	maxY = c.WithoutDrag.MaxY() * BoundsMargin
	if maxX <= 0 {
		maxX = 1
	}
	if maxY <= 0 {
		maxY = 1
	}
	return maxX, maxY
}

type plot struct {
	img        *image.RGBA
	area       image.Rectangle
	maxX, maxY float64
}

// Render draws both trajectories of c on a width x height canvas.
func Render(c physics.Comparison, width, height int) (*image.RGBA, error) {
	minW := 2*margin + labelLeft + 10
	minH := 2*margin + labelBelow + 10
	if width < minW || height < minH {
		return nil, fmt.Errorf("chart size %dx%d too small (minimum %dx%d)", width, height, minW, minH)
	}

	face, err := loadFace()
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{White}, image.Point{}, draw.Src)

	maxX, maxY := Bounds(c)
	p := &plot{
		img:  img,
		area: image.Rect(margin+labelLeft, margin, width-margin, height-margin-labelBelow),
		maxX: maxX,
		maxY: maxY,
	}

	p.drawMesh(face)
	p.drawSeries(c.WithDrag, Magenta)
	p.drawSeries(c.WithoutDrag, Blue)
	p.drawLegend(face, []legendEntry{
		{"With drag", Magenta},
		{"Without drag", Blue},
	})

	return img, nil
}

// toPixel maps world coordinates into the plot area; y grows upward.
func (p *plot) toPixel(v dynamo.Vec2) (int, int) {
	w := float64(p.area.Dx() - 1)
	h := float64(p.area.Dy() - 1)
	px := p.area.Min.X + int(v.X/p.maxX*w+0.5)
	py := p.area.Max.Y - 1 - int(v.Y/p.maxY*h+0.5)
	return px, py
}

func (p *plot) drawMesh(face font.Face) {
	for i := 0; i <= ticks; i++ {
		x := p.area.Min.X + i*(p.area.Dx()-1)/ticks
		y := p.area.Max.Y - 1 - i*(p.area.Dy()-1)/ticks

		vline(p.img, x, p.area.Min.Y, p.area.Max.Y-1, gridColor)
		hline(p.img, p.area.Min.X, p.area.Max.X-1, y, gridColor)

		xLabel := tickLabel(p.maxX * float64(i) / ticks)
		yLabel := tickLabel(p.maxY * float64(i) / ticks)

		xw := font.MeasureString(face, xLabel).Round()
		drawText(p.img, face, xLabel, x-xw/2, p.area.Max.Y+fontSize+2, Black)

		yw := font.MeasureString(face, yLabel).Round()
		drawText(p.img, face, yLabel, p.area.Min.X-yw-4, y+fontSize/2-1, Black)
	}

	vline(p.img, p.area.Min.X, p.area.Min.Y, p.area.Max.Y-1, Black)
	hline(p.img, p.area.Min.X, p.area.Max.X-1, p.area.Max.Y-1, Black)
}

func (p *plot) drawSeries(tr dynamo.Trajectory, c color.RGBA) {
	if len(tr) == 0 {
		return
	}
	x0, y0 := p.toPixel(tr[0].Position)
	if len(tr) == 1 {
		p.set(x0, y0, c)
		return
	}
	for _, s := range tr[1:] {
		x1, y1 := p.toPixel(s.Position)
		p.line(x0, y0, x1, y1, c)
		x0, y0 = x1, y1
	}
}

// set clips to the plot area.
func (p *plot) set(x, y int, c color.RGBA) {
	if !image.Pt(x, y).In(p.area) {
		return
	}
	p.img.SetRGBA(x, y, c)
}

// line draws a line using Bresenham's algorithm
func (p *plot) line(x0, y0, x1, y1 int, c color.RGBA) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		p.set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

type legendEntry struct {
	label string
	color color.RGBA
}

func (p *plot) drawLegend(face font.Face, entries []legendEntry) {
	widest := 0
	for _, e := range entries {
		if w := font.MeasureString(face, e.label).Round(); w > widest {
			widest = w
		}
	}

	const (
		pad    = 6
		sample = 20
		row    = fontSize + 6
	)
	w := pad + sample + pad + widest + pad
	h := pad + row*len(entries) + pad/2
	box := image.Rect(p.area.Max.X-w-10, p.area.Min.Y+10, p.area.Max.X-10, p.area.Min.Y+10+h)

	draw.Draw(p.img, box, &image.Uniform{legendBG}, image.Point{}, draw.Over)
	hline(p.img, box.Min.X, box.Max.X-1, box.Min.Y, Black)
	hline(p.img, box.Min.X, box.Max.X-1, box.Max.Y-1, Black)
	vline(p.img, box.Min.X, box.Min.Y, box.Max.Y-1, Black)
	vline(p.img, box.Max.X-1, box.Min.Y, box.Max.Y-1, Black)

	for i, e := range entries {
		baseline := box.Min.Y + pad + row*i + fontSize - 2
		mid := baseline - fontSize/2 + 1
		hline(p.img, box.Min.X+pad, box.Min.X+pad+sample, mid, e.color)
		drawText(p.img, face, e.label, box.Min.X+pad+sample+pad, baseline, Black)
	}
}

func drawText(img *image.RGBA, face font.Face, s string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func hline(img *image.RGBA, x0, x1, y int, c color.RGBA) {
	for x := x0; x <= x1; x++ {
		img.SetRGBA(x, y, c)
	}
}

func vline(img *image.RGBA, x, y0, y1 int, c color.RGBA) {
	for y := y0; y <= y1; y++ {
		img.SetRGBA(x, y, c)
	}
}

func tickLabel(v float64) string {
	switch {
	case v == 0:
		return "0"
	case v >= 100:
		return fmt.Sprintf("%.0f", v)
	case v >= 1:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.3f", v)
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePNG(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// Package export writes trajectory comparisons as CSV, JSON (optionally
// zstd-compressed) or SVG.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/san-kum/dragsim/internal/dynamo"
	"github.com/san-kum/dragsim/internal/metrics"
	"github.com/san-kum/dragsim/internal/physics"
)

const (
	SeriesDrag   = "drag"
	SeriesNoDrag = "no_drag"
)

// Document is the JSON form of a comparison run.
type Document struct {
	Name        string             `json:"name,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	Params      map[string]float64 `json:"params"`
	Summary     metrics.Summary    `json:"summary"`
	FreeSummary metrics.Summary    `json:"free_summary"`
	WithDrag    dynamo.Trajectory  `json:"with_drag"`
	WithoutDrag dynamo.Trajectory  `json:"without_drag"`
}

func NewDocument(name string, p physics.Parameters, c physics.Comparison) *Document {
	return &Document{
		Name:        name,
		CreatedAt:   time.Now().UTC(),
		Params:      p.GetParams(),
		Summary:     metrics.Summarize(c.WithDrag, p.Mass(), p.Gravity()),
		FreeSummary: metrics.Summarize(c.WithoutDrag, p.Mass(), p.Gravity()),
		WithDrag:    c.WithDrag,
		WithoutDrag: c.WithoutDrag,
	}
}

func (d *Document) Comparison() physics.Comparison {
	return physics.Comparison{WithDrag: d.WithDrag, WithoutDrag: d.WithoutDrag}
}

var csvHeader = []string{"series", "time", "x", "y", "vx", "vy", "ax", "ay"}

// WriteCSV writes one row per state, drag run first.
func WriteCSV(w io.Writer, c physics.Comparison) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	if err := writeRows(cw, SeriesDrag, c.WithDrag); err != nil {
		return err
	}
	if err := writeRows(cw, SeriesNoDrag, c.WithoutDrag); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}

func writeRows(cw *csv.Writer, series string, tr dynamo.Trajectory) error {
	for _, s := range tr {
		row := []string{
			series,
			formatFloat(s.Time),
			formatFloat(s.Position.X),
			formatFloat(s.Position.Y),
			formatFloat(s.Velocity.X),
			formatFloat(s.Velocity.Y),
			formatFloat(s.Acceleration.X),
			formatFloat(s.Acceleration.Y),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ReadCSV parses the output of WriteCSV.
func ReadCSV(r io.Reader) (physics.Comparison, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	records, err := cr.ReadAll()
	if err != nil {
		return physics.Comparison{}, err
	}
	if len(records) == 0 {
		return physics.Comparison{}, fmt.Errorf("empty csv")
	}

	var c physics.Comparison
	for i, record := range records[1:] {
		vals := make([]float64, len(record)-1)
		for j, field := range record[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return physics.Comparison{}, fmt.Errorf("row %d column %s: %w", i+2, csvHeader[j+1], err)
			}
			vals[j] = v
		}
		s := dynamo.MotionState{
			Time:         vals[0],
			Position:     dynamo.NewVec2(vals[1], vals[2]),
			Velocity:     dynamo.NewVec2(vals[3], vals[4]),
			Acceleration: dynamo.NewVec2(vals[5], vals[6]),
		}
		switch record[0] {
		case SeriesDrag:
			c.WithDrag = append(c.WithDrag, s)
		case SeriesNoDrag:
			c.WithoutDrag = append(c.WithoutDrag, s)
		default:
			return physics.Comparison{}, fmt.Errorf("row %d: unknown series %q", i+2, record[0])
		}
	}
	return c, nil
}

func WriteJSON(w io.Writer, doc *Document) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

func ReadJSON(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// WriteCompressedJSON writes doc as zstd-compressed JSON.
func WriteCompressedJSON(w io.Writer, doc *Document) error {
	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %w", err)
	}
	if err := WriteJSON(zw, doc); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

func ReadCompressedJSON(r io.Reader) (*Document, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %w", err)
	}
	defer zr.Close()
	return ReadJSON(zr)
}

type Format int

const (
	FormatUnknown Format = iota
	FormatCSV
	FormatJSON
	FormatJSONZstd
	FormatSVG
)

// FormatFor picks the output format from a file name.
func FormatFor(path string) Format {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".csv"):
		return FormatCSV
	case strings.HasSuffix(lower, ".json.zst"), strings.HasSuffix(lower, ".zst"):
		return FormatJSONZstd
	case strings.HasSuffix(lower, ".json"):
		return FormatJSON
	case strings.HasSuffix(lower, ".svg"):
		return FormatSVG
	default:
		return FormatUnknown
	}
}

// SaveFile writes doc to path in the format named by its extension.
func SaveFile(path string, doc *Document) error {
	format := FormatFor(path)
	if format == FormatUnknown {
		return fmt.Errorf("unsupported export format: %s (use .csv, .json, .json.zst or .svg)", path)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}

	switch format {
	case FormatCSV:
		err = WriteCSV(file, doc.Comparison())
	case FormatJSON:
		err = WriteJSON(file, doc)
	case FormatJSONZstd:
		err = WriteCompressedJSON(file, doc)
	case FormatSVG:
		_, err = io.WriteString(file, ComparisonSVG(doc.Comparison(), 800, 600))
	}
	if err != nil {
		file.Close()
		os.Remove(path)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return file.Close()
}

// LoadFile reads a JSON or zstd-compressed JSON export.
func LoadFile(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	switch FormatFor(path) {
	case FormatJSON:
		return ReadJSON(file)
	case FormatJSONZstd:
		return ReadCompressedJSON(file)
	default:
		return nil, fmt.Errorf("cannot load %s: only .json and .json.zst exports can be read back", path)
	}
}

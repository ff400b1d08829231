package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	m "github.com/mouse-blink/tptester/internal/model"
)

// Default graph labels.
const (
	DefaultGraphTitle = "Execution time"
	DefaultGraphX     = "N"
	DefaultGraphY     = "Time (s)"
)

const (
	graphWidth   = 640
	graphHeight  = 480
	graphMargin  = 60
	maxNameTries = 10000
)

// Plotter renders timing samples to a file and returns the file name.
type Plotter interface {
	Plot(title, xLabel, yLabel string, samples []m.TimingSample) (string, error)
}

// SVGPlotter writes line plots as standalone SVG documents.
type SVGPlotter struct {
	dir string
}

// NewSVGPlotter creates a plotter writing into dir ("" means the working
// directory).
func NewSVGPlotter(dir string) *SVGPlotter {
	return &SVGPlotter{dir: dir}
}

type svgPoint struct {
	X, Y  float64
	Label string
}

type svgData struct {
	Width, Height     int
	Left, Right       float64
	Top, Bottom       float64
	Center            float64
	Title, XLab, YLab string
	Points            []svgPoint
	Polyline          string
	YMax              string
}

var svgTemplate = template.Must(template.New("graph").Parse(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="{{.Width}}" height="{{.Height}}" viewBox="0 0 {{.Width}} {{.Height}}">
  <rect width="100%" height="100%" fill="white"/>
  <text x="{{.Center}}" y="24" font-family="sans-serif" font-size="16" text-anchor="middle">{{.Title}}</text>
  <line x1="{{.Left}}" y1="{{.Bottom}}" x2="{{.Right}}" y2="{{.Bottom}}" stroke="black"/>
  <line x1="{{.Left}}" y1="{{.Top}}" x2="{{.Left}}" y2="{{.Bottom}}" stroke="black"/>
  <text x="{{.Left}}" y="{{.Top}}" font-family="sans-serif" font-size="10" text-anchor="end" dx="-4">{{.YMax}}</text>
  <text x="{{.Left}}" y="{{.Bottom}}" font-family="sans-serif" font-size="10" text-anchor="end" dx="-4">0</text>
  <text x="{{.Right}}" y="{{.Height}}" font-family="sans-serif" font-size="12" text-anchor="end" dy="-12">{{.XLab}}</text>
  <text x="14" y="{{.Top}}" font-family="sans-serif" font-size="12" transform="rotate(-90 14 {{.Top}})" text-anchor="end">{{.YLab}}</text>
  <polyline fill="none" stroke="#1f77b4" stroke-width="2" points="{{.Polyline}}"/>
{{- range .Points}}
  <circle cx="{{.X}}" cy="{{.Y}}" r="3" fill="#1f77b4"><title>{{.Label}}</title></circle>
{{- end}}
</svg>
`))

// Plot implements Plotter. Numeric indices are placed on the x axis by value,
// any other index by position.
func (p *SVGPlotter) Plot(title, xLabel, yLabel string, samples []m.TimingSample) (string, error) {
	data := layoutGraph(title, xLabel, yLabel, samples)

	f, name, err := createUnique(p.dir, "graph", ".svg")
	if err != nil {
		return "", err
	}

	defer func() { _ = f.Close() }()

	if err := svgTemplate.Execute(f, data); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", name)
	}

	return name, nil
}

func layoutGraph(title, xLabel, yLabel string, samples []m.TimingSample) svgData {
	data := svgData{
		Width:  graphWidth,
		Height: graphHeight,
		Left:   graphMargin,
		Right:  graphWidth - graphMargin/2,
		Top:    graphMargin,
		Bottom: graphHeight - graphMargin,
		Center: graphWidth / 2,
		Title:  template.HTMLEscapeString(title),
		XLab:   template.HTMLEscapeString(xLabel),
		YLab:   template.HTMLEscapeString(yLabel),
	}

	xs := sampleXs(samples)
	xMin, xMax := lo.Min(xs), lo.Max(xs)
	yMax := lo.Max(lo.Map(samples, func(s m.TimingSample, _ int) float64 { return s.UserTime }))

	if xMax == xMin {
		xMax = xMin + 1
	}

	if yMax <= 0 {
		yMax = 1
	}

	data.YMax = fmt.Sprintf("%.3f", yMax)

	coords := make([]string, 0, len(samples))

	for i, s := range samples {
		x := data.Left + (xs[i]-xMin)/(xMax-xMin)*(data.Right-data.Left)
		y := data.Bottom - s.UserTime/yMax*(data.Bottom-data.Top)
		data.Points = append(data.Points, svgPoint{
			X:     x,
			Y:     y,
			Label: template.HTMLEscapeString(fmt.Sprintf("#%s: %.3fs", s.Index, s.UserTime)),
		})
		coords = append(coords, fmt.Sprintf("%.2f,%.2f", x, y))
	}

	data.Polyline = strings.Join(coords, " ")

	return data
}

func sampleXs(samples []m.TimingSample) []float64 {
	xs := make([]float64, len(samples))
	numeric := true

	for i, s := range samples {
		n, ok := s.Index.Int()
		if !ok {
			numeric = false
			break
		}

		xs[i] = float64(n)
	}

	if !numeric {
		for i := range xs {
			xs[i] = float64(i + 1)
		}
	}

	return xs
}

// createUnique creates prefix+suffix in dir, or prefix-N+suffix for the first
// N that does not exist yet. It returns the open file and its path joined
// with dir.
func createUnique(dir, prefix, suffix string) (*os.File, string, error) {
	for i := 0; i < maxNameTries; i++ {
		name := prefix + suffix
		if i > 0 {
			name = fmt.Sprintf("%s-%d%s", prefix, i, suffix)
		}

		path := filepath.Join(dir, name)

		// #nosec G304 - path is built from a fixed prefix
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, path, nil
		}

		if !errors.Is(err, os.ErrExist) {
			return nil, "", errors.Wrapf(err, "failed to create %s", path)
		}
	}

	return nil, "", errors.Newf("no free file name for %s*%s in %q", prefix, suffix, dir)
}

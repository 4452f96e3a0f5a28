package chart

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/coinherald/coinherald/internal/config"
	"github.com/coinherald/coinherald/internal/domain"
	"github.com/google/uuid"
	"github.com/wcharczuk/go-chart/v2"
)

// Renderer turns a provider chart series into a PNG on disk. Each render
// gets a unique file name so that concurrent chart commands do not clobber
// each other's artifacts.
type Renderer struct {
	workDir string
}

func NewRenderer(cfg config.ChartConfig) *Renderer {
	dir := cfg.WorkDir
	if dir == "" {
		dir = "."
	}
	return &Renderer{workDir: dir}
}

// Render writes the series as a time plot and returns the artifact path.
func (r *Renderer) Render(series domain.ChartSeries) (string, error) {
	if len(series.Values) == 0 {
		return "", fmt.Errorf("empty series %q", series.Name)
	}

	xs := make([]time.Time, 0, len(series.Values))
	ys := make([]float64, 0, len(series.Values))
	for _, p := range series.Values {
		xs = append(xs, time.Unix(p.X, 0).UTC())
		ys = append(ys, p.Y)
	}

	graph := chart.Chart{
		Title: series.Name,
		XAxis: chart.XAxis{Name: series.Period},
		YAxis: chart.YAxis{Name: series.Unit},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    series.Name,
				XValues: xs,
				YValues: ys,
			},
		},
	}

	path := filepath.Join(r.workDir, "plot-"+uuid.NewString()+".png")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("rendering chart %q: %w", series.Name, err)
	}
	return path, nil
}

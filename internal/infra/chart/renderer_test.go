package chart

import (
	"os"
	"strings"
	"testing"

	"github.com/coinherald/coinherald/internal/config"
	"github.com/coinherald/coinherald/internal/domain"
)

func TestRender_WritesPNG(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(config.ChartConfig{WorkDir: dir})

	series := domain.ChartSeries{
		Name:   "Market Price (USD)",
		Unit:   "USD",
		Period: "day",
		Values: []domain.ChartPoint{
			{X: 1410220800, Y: 478.68},
			{X: 1410307200, Y: 480.23},
			{X: 1410393600, Y: 475.10},
		},
	}

	path, err := r.Render(series)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(path, dir) || !strings.HasSuffix(path, ".png") {
		t.Fatalf("unexpected artifact path %q", path)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("artifact missing: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("artifact is empty")
	}
}

func TestRender_UniquePaths(t *testing.T) {
	r := NewRenderer(config.ChartConfig{WorkDir: t.TempDir()})
	series := domain.ChartSeries{
		Name:   "Market Price (USD)",
		Unit:   "USD",
		Period: "day",
		Values: []domain.ChartPoint{{X: 1410220800, Y: 478.68}, {X: 1410307200, Y: 480.23}},
	}

	a, err := r.Render(series)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := r.Render(series)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a == b {
		t.Fatalf("expected unique artifact paths, got %q twice", a)
	}
}

func TestRender_EmptySeries(t *testing.T) {
	r := NewRenderer(config.ChartConfig{WorkDir: t.TempDir()})
	if _, err := r.Render(domain.ChartSeries{Name: "empty"}); err == nil {
		t.Fatal("expected error for empty series")
	}
}

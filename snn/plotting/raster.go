// Package plotting renders raster and population-rate plots for a
// completed simulation run.
package plotting

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/vestibular-sim/vestibular-sim/snn"
)

// Raster saves a spike raster of one layer: one dot per spike, spike time
// (ms) on the x axis and neuron index on the y axis.
func Raster(outputDir string, mon *snn.SpikeMonitor, dtMs float64) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s raster", mon.Layer)
	p.X.Label.Text = "time (ms)"
	p.Y.Label.Text = "neuron"

	pts := make(plotter.XYs, 0, mon.Total)
	for i, times := range mon.Times {
		for _, t := range times {
			pts = append(pts, plotter.XY{X: float64(t) * dtMs, Y: float64(i)})
		}
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("failed to build raster scatter: %w", err)
	}
	scatter.Radius = vg.Points(1)
	p.Add(scatter)

	file := filepath.Join(outputDir, fmt.Sprintf("raster_%s.png", mon.Layer))
	if err := p.Save(10*vg.Inch, 4*vg.Inch, file); err != nil {
		return fmt.Errorf("failed to save raster plot: %w", err)
	}
	return nil
}

// RateSeries bins a layer's spikes into binMs windows and returns the
// population rate (Hz per neuron) of each bin.
func RateSeries(mon *snn.SpikeMonitor, horizonTicks int64, dtMs, binMs float64) []float64 {
	binTicks := int64(binMs / dtMs)
	if binTicks < 1 {
		binTicks = 1
	}
	nBins := int((horizonTicks + binTicks - 1) / binTicks)
	counts := make([]float64, nBins)
	for _, times := range mon.Times {
		for _, t := range times {
			counts[int(t/binTicks)]++
		}
	}

	n := float64(len(mon.Times))
	binSeconds := binMs / 1000.0
	rates := make([]float64, nBins)
	for b, c := range counts {
		rates[b] = c / n / binSeconds
	}
	return rates
}

// PopulationRate saves a binned population-rate curve for one layer.
func PopulationRate(outputDir string, mon *snn.SpikeMonitor, horizonTicks int64, dtMs, binMs float64) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	rates := RateSeries(mon, horizonTicks, dtMs, binMs)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s population rate", mon.Layer)
	p.X.Label.Text = "time (ms)"
	p.Y.Label.Text = "rate (Hz)"

	pts := make(plotter.XYs, len(rates))
	for b, r := range rates {
		pts[b] = plotter.XY{X: float64(b) * binMs, Y: r}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("failed to build rate line: %w", err)
	}
	line.Width = vg.Points(1)
	p.Add(line)

	file := filepath.Join(outputDir, fmt.Sprintf("rate_%s.png", mon.Layer))
	if err := p.Save(10*vg.Inch, 4*vg.Inch, file); err != nil {
		return fmt.Errorf("failed to save rate plot: %w", err)
	}
	return nil
}

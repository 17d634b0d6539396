// Tracks run-wide and per-layer spiking statistics for final reporting.

package snn

import (
	"encoding/json"
	"fmt"
	"os"

	"gonum.org/v1/gonum/stat"
)

// LayerStats summarizes one layer's spiking over a run.
type LayerStats struct {
	Layer      string  `json:"layer"`
	Neurons    int     `json:"neurons"`
	Spikes     int     `json:"spikes"`
	MeanRateHz float64 `json:"mean_rate_hz"` // mean per-neuron firing rate
	RateStdHz  float64 `json:"rate_std_hz"`  // std dev of per-neuron rates
	ISICV      float64 `json:"isi_cv"`       // mean inter-spike-interval CV
}

// Metrics aggregates statistics about the simulation for final reporting.
// Useful for comparing scenarios and debugging network behavior.
type Metrics struct {
	Scenario   Mode         `json:"scenario"`
	Seed       int64        `json:"seed"`
	DurationMs int64        `json:"duration_ms"`
	DtUs       int64        `json:"dt_us"`
	Layers     []LayerStats `json:"layers"`

	// TransferGain is the cerebellar mean rate divided by the hair cell
	// mean rate; the pathway-level readout the scenarios are compared on.
	TransferGain float64 `json:"transfer_gain"`
}

// ComputeMetrics derives the run summary from the spike monitors.
func ComputeMetrics(cfg Config, scenario Scenario, monitors *MonitorSet) *Metrics {
	durationS := float64(cfg.Timing.DurationMs) / 1000.0
	dtMs := cfg.Timing.DtMs()

	m := &Metrics{
		Scenario:   scenario.Mode,
		Seed:       cfg.Seed,
		DurationMs: cfg.Timing.DurationMs,
		DtUs:       cfg.Timing.DtUs,
		Layers: []LayerStats{
			layerStats(monitors.Hair, durationS, dtMs),
			layerStats(monitors.Afferent, durationS, dtMs),
			layerStats(monitors.Cerebellar, durationS, dtMs),
		},
	}

	hairRate := m.Layers[0].MeanRateHz
	if hairRate > 0 {
		m.TransferGain = m.Layers[2].MeanRateHz / hairRate
	}
	return m
}

// layerStats computes per-layer rate and regularity statistics.
func layerStats(mon *SpikeMonitor, durationS, dtMs float64) LayerStats {
	n := len(mon.Times)
	rates := make([]float64, n)
	for i, times := range mon.Times {
		rates[i] = float64(len(times)) / durationS
	}

	ls := LayerStats{
		Layer:      mon.Layer,
		Neurons:    n,
		Spikes:     mon.Total,
		MeanRateHz: stat.Mean(rates, nil),
	}
	if n > 1 {
		ls.RateStdHz = stat.StdDev(rates, nil)
	}

	// ISI CV averaged over neurons with at least two intervals
	var cvs []float64
	for _, times := range mon.Times {
		if len(times) < 3 {
			continue
		}
		isis := make([]float64, len(times)-1)
		for k := 1; k < len(times); k++ {
			isis[k-1] = float64(times[k]-times[k-1]) * dtMs
		}
		mean := stat.Mean(isis, nil)
		if mean > 0 {
			cvs = append(cvs, stat.StdDev(isis, nil)/mean)
		}
	}
	if len(cvs) > 0 {
		ls.ISICV = stat.Mean(cvs, nil)
	}
	return ls
}

// ByLayer returns the stats entry for the named layer, or a zero value.
func (m *Metrics) ByLayer(layer string) LayerStats {
	for _, ls := range m.Layers {
		if ls.Layer == layer {
			return ls
		}
	}
	return LayerStats{}
}

// Print displays aggregated metrics at the end of the simulation.
func (m *Metrics) Print() {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Scenario             : %s\n", m.Scenario)
	fmt.Printf("Duration             : %d ms (dt=%dus, seed=%d)\n", m.DurationMs, m.DtUs, m.Seed)
	for _, ls := range m.Layers {
		fmt.Printf("%-10s spikes    : %6d  (%.2f ± %.2f Hz, ISI CV %.2f)\n",
			ls.Layer, ls.Spikes, ls.MeanRateHz, ls.RateStdHz, ls.ISICV)
	}
	fmt.Printf("Transfer gain        : %.3f\n", m.TransferGain)
}

// WriteJSON writes the metrics summary to path as indented JSON.
func (m *Metrics) WriteJSON(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal metrics: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}

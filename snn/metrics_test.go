package snn

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// syntheticMonitors builds a MonitorSet with hand-placed spikes:
// hair neuron 0 fires a perfectly regular 10 Hz train, afferent and
// cerebellar layers stay configurable per test.
func syntheticMonitors(t *testing.T, cfg Config) *MonitorSet {
	t.Helper()
	net, err := NewNetwork(cfg, NewPartitionedRNG(NewSimulationKey(1)))
	if err != nil {
		t.Fatal(err)
	}
	return NewMonitorSet(net, nil)
}

func TestComputeMetrics_RatesFromCounts(t *testing.T) {
	cfg := DefaultConfig()
	mon := syntheticMonitors(t, cfg)

	// every hair cell spikes 50 times in the 1 s run
	for tick := int64(0); tick < 50; tick++ {
		spikes := make([]int, cfg.Populations.NHair)
		for i := range spikes {
			spikes[i] = i
		}
		mon.Hair.Record(tick*200, spikes)
	}

	m := ComputeMetrics(cfg, DefaultScenario(ModeBaseline), mon)
	hair := m.ByLayer(LayerHair)
	if hair.Spikes != 500 {
		t.Errorf("hair spikes = %d, want 500", hair.Spikes)
	}
	if math.Abs(hair.MeanRateHz-50) > 1e-9 {
		t.Errorf("hair mean rate = %v, want 50", hair.MeanRateHz)
	}
	if hair.RateStdHz != 0 {
		t.Errorf("hair rate std = %v, want 0 for identical counts", hair.RateStdHz)
	}
}

func TestComputeMetrics_RegularTrainHasZeroISICV(t *testing.T) {
	cfg := DefaultConfig()
	mon := syntheticMonitors(t, cfg)

	// perfectly periodic train on one neuron
	for tick := int64(0); tick < 100; tick++ {
		mon.Cerebellar.Record(tick*100, []int{0})
	}

	m := ComputeMetrics(cfg, DefaultScenario(ModeBaseline), mon)
	if cv := m.ByLayer(LayerCerebellar).ISICV; cv != 0 {
		t.Errorf("ISI CV of a periodic train = %v, want 0", cv)
	}
}

func TestComputeMetrics_TransferGain(t *testing.T) {
	cfg := DefaultConfig()
	mon := syntheticMonitors(t, cfg)

	// hair: 10 cells x 50 spikes -> 50 Hz mean; cerebellar: 5 cells x 25 -> 25 Hz
	for tick := int64(0); tick < 50; tick++ {
		all := make([]int, cfg.Populations.NHair)
		for i := range all {
			all[i] = i
		}
		mon.Hair.Record(tick*200, all)
	}
	for tick := int64(0); tick < 25; tick++ {
		mon.Cerebellar.Record(tick*400, []int{0, 1, 2, 3, 4})
	}

	m := ComputeMetrics(cfg, DefaultScenario(ModeBaseline), mon)
	if math.Abs(m.TransferGain-0.5) > 1e-9 {
		t.Errorf("transfer gain = %v, want 0.5", m.TransferGain)
	}
}

func TestComputeMetrics_SilentInputGivesZeroGain(t *testing.T) {
	cfg := DefaultConfig()
	mon := syntheticMonitors(t, cfg)

	m := ComputeMetrics(cfg, DefaultScenario(ModeAfferentSilencing), mon)
	if m.TransferGain != 0 {
		t.Errorf("gain with silent input = %v, want 0", m.TransferGain)
	}
}

func TestMetrics_WriteJSONRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	mon := syntheticMonitors(t, cfg)
	mon.Hair.Record(10, []int{0, 1})

	m := ComputeMetrics(cfg, DefaultScenario(ModeHypofunction), mon)
	path := filepath.Join(t.TempDir(), "summary.json")
	if err := m.WriteJSON(path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got Metrics
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got.Scenario != ModeHypofunction {
		t.Errorf("round-tripped scenario = %s, want hypofunction", got.Scenario)
	}
	if got.ByLayer(LayerHair).Spikes != 2 {
		t.Errorf("round-tripped hair spikes = %d, want 2", got.ByLayer(LayerHair).Spikes)
	}
}

package snn

import "fmt"

// TimingConfig groups integration-step parameters.
type TimingConfig struct {
	DtUs       int64 // integration step in microseconds (must be > 0)
	DurationMs int64 // simulated duration in milliseconds (must be >= one step)
}

// DtMs returns the integration step in milliseconds.
func (c TimingConfig) DtMs() float64 {
	return float64(c.DtUs) / 1000.0
}

// DtSeconds returns the integration step in seconds.
func (c TimingConfig) DtSeconds() float64 {
	return float64(c.DtUs) / 1e6
}

// HorizonTicks returns the number of integration steps in the run.
func (c TimingConfig) HorizonTicks() int64 {
	return c.DurationMs * 1000 / c.DtUs
}

// PopulationConfig groups the three layer sizes.
type PopulationConfig struct {
	NHair       int // hair cell (input) layer size
	NAfferent   int // afferent layer size
	NCerebellar int // cerebellar layer size
}

// SynapseConfig groups projection weights, in mV per presynaptic spike.
type SynapseConfig struct {
	HairAfferentMV       float64 // hair -> afferent, one-to-one
	AfferentCerebellarMV float64 // afferent -> cerebellar, round-robin fan-in
}

// InputConfig groups hair cell drive parameters.
type InputConfig struct {
	RateHz float64 // Poisson rate per hair cell
}

// Config is the full parameterization of a single simulation run.
type Config struct {
	Seed        int64
	Timing      TimingConfig
	Populations PopulationConfig
	Synapses    SynapseConfig
	Input       InputConfig

	// RecordVoltages lists afferent neuron indices whose membrane
	// potential is sampled every tick. Empty disables voltage traces.
	RecordVoltages []int
}

// DefaultConfig returns the reference parameterization: 10 hair cells at
// 50 Hz, 10 afferents, 5 cerebellar neurons, dt = 0.1 ms, 1 s duration.
func DefaultConfig() Config {
	return Config{
		Seed:        42,
		Timing:      TimingConfig{DtUs: 100, DurationMs: 1000},
		Populations: PopulationConfig{NHair: 10, NAfferent: 10, NCerebellar: 5},
		Synapses:    SynapseConfig{HairAfferentMV: 1.0, AfferentCerebellarMV: 1.2},
		Input:       InputConfig{RateHz: 50.0},
	}
}

// Validate checks the configuration for values the engine cannot run with.
func (c Config) Validate() error {
	if c.Timing.DtUs <= 0 {
		return fmt.Errorf("dt must be positive, got %dus", c.Timing.DtUs)
	}
	if c.Timing.DurationMs*1000 < c.Timing.DtUs {
		return fmt.Errorf("duration %dms shorter than one integration step (%dus)",
			c.Timing.DurationMs, c.Timing.DtUs)
	}
	if c.Populations.NHair <= 0 || c.Populations.NAfferent <= 0 || c.Populations.NCerebellar <= 0 {
		return fmt.Errorf("all populations must be non-empty, got hair=%d afferent=%d cerebellar=%d",
			c.Populations.NHair, c.Populations.NAfferent, c.Populations.NCerebellar)
	}
	// hair -> afferent is a one-to-one projection
	if c.Populations.NHair != c.Populations.NAfferent {
		return fmt.Errorf("hair and afferent layers must match for one-to-one wiring, got %d and %d",
			c.Populations.NHair, c.Populations.NAfferent)
	}
	if c.Input.RateHz < 0 {
		return fmt.Errorf("input rate must be non-negative, got %.2fHz", c.Input.RateHz)
	}
	if c.Synapses.HairAfferentMV < 0 || c.Synapses.AfferentCerebellarMV < 0 {
		return fmt.Errorf("synaptic weights must be non-negative")
	}
	for _, idx := range c.RecordVoltages {
		if idx < 0 || idx >= c.Populations.NAfferent {
			return fmt.Errorf("voltage record index %d outside afferent layer [0,%d)",
				idx, c.Populations.NAfferent)
		}
	}
	return nil
}

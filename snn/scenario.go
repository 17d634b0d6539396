package snn

import "fmt"

// Mode selects the experiment condition simulated by a run.
type Mode string

const (
	// ModeBaseline runs the intact network.
	ModeBaseline Mode = "baseline"
	// ModeHypofunction reduces peripheral drive (hair cell rate drops).
	ModeHypofunction Mode = "hypofunction"
	// ModeAfferentSilencing cuts the hair -> afferent effective drive.
	ModeAfferentSilencing Mode = "afferent_silencing"
	// ModeSynapticBlockade cuts the afferent -> cerebellar effective drive.
	ModeSynapticBlockade Mode = "synaptic_blockade"
)

// Modes lists all experiment conditions in sweep order.
var Modes = []Mode{ModeBaseline, ModeHypofunction, ModeAfferentSilencing, ModeSynapticBlockade}

// ParseMode validates a mode string from the CLI or a scenario file.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeBaseline, ModeHypofunction, ModeAfferentSilencing, ModeSynapticBlockade:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown mode: %s", s)
}

// Scenario describes an experiment condition: which parameter of the
// pathway is perturbed, when the lesion begins, and whether central
// compensation pulls the parameter back toward baseline afterwards.
type Scenario struct {
	Mode Mode

	// LesionOnsetMs is the simulated time at which the perturbation is
	// applied. 0 lesions the network from the first tick.
	LesionOnsetMs float64

	// RecoveryTauMs is the time constant of exponential relaxation of the
	// lesioned parameter back toward its baseline value after onset,
	// modeling vestibular compensation. 0 disables recovery (the lesion
	// is permanent).
	RecoveryTauMs float64

	// HypofunctionRateHz is the reduced hair cell rate used by
	// ModeHypofunction.
	HypofunctionRateHz float64
}

// DefaultScenario returns the reference scenario for a mode: lesioned from
// the first tick, no recovery, hypofunction drive at 15 Hz.
func DefaultScenario(mode Mode) Scenario {
	return Scenario{Mode: mode, HypofunctionRateHz: 15.0}
}

// Built-in scenario presets for common experiment patterns.

// ScenarioAcuteHypofunction models sudden unilateral hypofunction partway
// through the run: baseline drive until onset, then a permanent rate drop.
func ScenarioAcuteHypofunction(onsetMs float64) Scenario {
	return Scenario{Mode: ModeHypofunction, LesionOnsetMs: onsetMs, HypofunctionRateHz: 15.0}
}

// ScenarioCompensatedHypofunction models hypofunction followed by central
// compensation: after onset the hair cell rate relaxes back toward the
// baseline rate with the given time constant.
func ScenarioCompensatedHypofunction(onsetMs, recoveryTauMs float64) Scenario {
	return Scenario{
		Mode:               ModeHypofunction,
		LesionOnsetMs:      onsetMs,
		RecoveryTauMs:      recoveryTauMs,
		HypofunctionRateHz: 15.0,
	}
}

// ScenarioCompensatedSilencing models afferent silencing with synaptic
// recovery, the drug-washout analogue of the blockade experiments.
func ScenarioCompensatedSilencing(onsetMs, recoveryTauMs float64) Scenario {
	return Scenario{
		Mode:               ModeAfferentSilencing,
		LesionOnsetMs:      onsetMs,
		RecoveryTauMs:      recoveryTauMs,
		HypofunctionRateHz: 15.0,
	}
}

// Validate checks the scenario for values the engine cannot run with.
func (s Scenario) Validate() error {
	if _, err := ParseMode(string(s.Mode)); err != nil {
		return err
	}
	if s.LesionOnsetMs < 0 {
		return fmt.Errorf("lesion onset must be non-negative, got %.2fms", s.LesionOnsetMs)
	}
	if s.RecoveryTauMs < 0 {
		return fmt.Errorf("recovery tau must be non-negative, got %.2fms", s.RecoveryTauMs)
	}
	if s.Mode == ModeHypofunction && s.HypofunctionRateHz < 0 {
		return fmt.Errorf("hypofunction rate must be non-negative, got %.2fHz", s.HypofunctionRateHz)
	}
	return nil
}

// lesionTarget binds a scenario's perturbation to the network parameter it
// modifies. The setter is reused by recovery relaxation.
type lesionTarget struct {
	baseline float64
	lesioned float64
	set      func(float64)
}

// lesionFor resolves the scenario against a network built with baseline
// parameters. Returns nil for baseline runs, which perturb nothing.
func (s Scenario) lesionFor(net *Network) *lesionTarget {
	switch s.Mode {
	case ModeHypofunction:
		return &lesionTarget{
			baseline: net.Hair.RateHz(),
			lesioned: s.HypofunctionRateHz,
			set:      net.Hair.SetRate,
		}
	case ModeAfferentSilencing:
		return &lesionTarget{
			baseline: net.HairToAfferent.WeightMV,
			lesioned: 0,
			set:      net.HairToAfferent.SetWeight,
		}
	case ModeSynapticBlockade:
		return &lesionTarget{
			baseline: net.AfferentToCerebellar.WeightMV,
			lesioned: 0,
			set:      net.AfferentToCerebellar.SetWeight,
		}
	}
	return nil
}

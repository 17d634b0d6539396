package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vestibular-sim/vestibular-sim/snn"
)

// setDefaultFlags resets the package-level flag variables to the values the
// CLI registers as defaults.
func setDefaultFlags() {
	seed = 42
	durationMs = 1000
	dtUs = 100
	nHair, nAfferent, nCerebellar = 10, 10, 5
	inputRateHz = 50.0
	wHairAffMV, wAffCerMV = 1.0, 1.2
	voltageTrace = nil
	mode = "baseline"
	lesionOnsetMs = 0
	recoveryTauMs = 0
	hypoRateHz = 15.0
	scenarioFile = ""
	scenarioPreset = ""
}

func TestBuildConfig_MatchesFlags(t *testing.T) {
	setDefaultFlags()
	seed = 7
	durationMs = 250
	nCerebellar = 3

	cfg := buildConfig()
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, int64(250), cfg.Timing.DurationMs)
	assert.Equal(t, 3, cfg.Populations.NCerebellar)
	assert.NoError(t, cfg.Validate())
}

func TestBuildScenario_FromFlags(t *testing.T) {
	setDefaultFlags()
	mode = "synaptic_blockade"
	lesionOnsetMs = 300
	recoveryTauMs = 100

	s, err := buildScenario()
	require.NoError(t, err)
	assert.Equal(t, snn.ModeSynapticBlockade, s.Mode)
	assert.Equal(t, 300.0, s.LesionOnsetMs)
	assert.Equal(t, 100.0, s.RecoveryTauMs)
}

func TestBuildScenario_RejectsUnknownMode(t *testing.T) {
	setDefaultFlags()
	mode = "dizzy"
	_, err := buildScenario()
	assert.Error(t, err)
}

func TestRunScenario_EndToEnd(t *testing.T) {
	setDefaultFlags()
	cfg := buildConfig()
	cfg.Timing.DurationMs = 100 // keep the test fast

	m, monitors, err := runScenario(cfg, snn.DefaultScenario(snn.ModeBaseline))
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, snn.ModeBaseline, m.Scenario)
	assert.Greater(t, monitors.Hair.Total, 0)
}

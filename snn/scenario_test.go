package snn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode_AcceptsKnownModes(t *testing.T) {
	for _, m := range Modes {
		got, err := ParseMode(string(m))
		assert.NoError(t, err)
		assert.Equal(t, m, got)
	}
}

func TestParseMode_RejectsUnknown(t *testing.T) {
	for _, s := range []string{"", "Baseline", "vertigo", "afferent-silencing"} {
		_, err := ParseMode(s)
		assert.Error(t, err, "mode %q", s)
	}
}

func TestDefaultScenario_Reference(t *testing.T) {
	s := DefaultScenario(ModeHypofunction)
	assert.Equal(t, ModeHypofunction, s.Mode)
	assert.Equal(t, 0.0, s.LesionOnsetMs)
	assert.Equal(t, 0.0, s.RecoveryTauMs)
	assert.Equal(t, 15.0, s.HypofunctionRateHz)
}

func TestScenarioPresets(t *testing.T) {
	acute := ScenarioAcuteHypofunction(200)
	assert.Equal(t, ModeHypofunction, acute.Mode)
	assert.Equal(t, 200.0, acute.LesionOnsetMs)
	assert.Equal(t, 0.0, acute.RecoveryTauMs)

	comp := ScenarioCompensatedHypofunction(200, 300)
	assert.Equal(t, 300.0, comp.RecoveryTauMs)

	sil := ScenarioCompensatedSilencing(100, 150)
	assert.Equal(t, ModeAfferentSilencing, sil.Mode)
	assert.Equal(t, 150.0, sil.RecoveryTauMs)
}

func TestScenarioValidate(t *testing.T) {
	tests := []struct {
		name     string
		scenario Scenario
		wantErr  bool
	}{
		{"baseline ok", DefaultScenario(ModeBaseline), false},
		{"unknown mode", Scenario{Mode: "spin"}, true},
		{"negative onset", Scenario{Mode: ModeBaseline, LesionOnsetMs: -1}, true},
		{"negative recovery", Scenario{Mode: ModeBaseline, RecoveryTauMs: -1}, true},
		{"negative hypofunction rate", Scenario{Mode: ModeHypofunction, HypofunctionRateHz: -5}, true},
		{"zero hypofunction rate ok", Scenario{Mode: ModeHypofunction}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scenario.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLesionFor_TargetsTheRightParameter(t *testing.T) {
	newNet := func() *Network {
		net, err := NewNetwork(DefaultConfig(), NewPartitionedRNG(NewSimulationKey(1)))
		if err != nil {
			t.Fatal(err)
		}
		return net
	}

	t.Run("baseline perturbs nothing", func(t *testing.T) {
		assert.Nil(t, DefaultScenario(ModeBaseline).lesionFor(newNet()))
	})

	t.Run("hypofunction targets hair rate", func(t *testing.T) {
		net := newNet()
		l := DefaultScenario(ModeHypofunction).lesionFor(net)
		assert.Equal(t, 50.0, l.baseline)
		assert.Equal(t, 15.0, l.lesioned)
		l.set(l.lesioned)
		assert.Equal(t, 15.0, net.Hair.RateHz())
	})

	t.Run("silencing targets hair->afferent weight", func(t *testing.T) {
		net := newNet()
		l := DefaultScenario(ModeAfferentSilencing).lesionFor(net)
		assert.Equal(t, 1.0, l.baseline)
		assert.Equal(t, 0.0, l.lesioned)
		l.set(l.lesioned)
		assert.Equal(t, 0.0, net.HairToAfferent.WeightMV)
	})

	t.Run("blockade targets afferent->cerebellar weight", func(t *testing.T) {
		net := newNet()
		l := DefaultScenario(ModeSynapticBlockade).lesionFor(net)
		assert.Equal(t, 1.2, l.baseline)
		l.set(l.lesioned)
		assert.Equal(t, 0.0, net.AfferentToCerebellar.WeightMV)
	})
}

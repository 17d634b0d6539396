package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/vestibular-sim/vestibular-sim/snn"
)

// Define struct for YAML
type ScenarioConfig struct {
	Scenarios map[string]ScenarioSpec `yaml:"scenarios"`
}

type ScenarioSpec struct {
	Mode               string  `yaml:"mode"`
	LesionOnsetMs      float64 `yaml:"lesion_onset_ms"`
	RecoveryTauMs      float64 `yaml:"recovery_tau_ms"`
	HypofunctionRateHz float64 `yaml:"hypofunction_rate_hz"`
}

// GetScenarioConfig loads a named scenario preset from a YAML file.
func GetScenarioConfig(scenarioFilePath string, scenarioName string) (snn.Scenario, error) {
	// Read YAML file
	data, err := os.ReadFile(scenarioFilePath)
	if err != nil {
		return snn.Scenario{}, fmt.Errorf("unable to read scenario file: %w", err)
	}

	// Parse YAML
	var cfg ScenarioConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return snn.Scenario{}, fmt.Errorf("unable to parse scenario file: %w", err)
	}

	spec, exists := cfg.Scenarios[scenarioName]
	if !exists {
		return snn.Scenario{}, fmt.Errorf("scenario %q not found in %s", scenarioName, scenarioFilePath)
	}
	logrus.Infof("Using preset scenario %v\n", scenarioName)

	m, err := snn.ParseMode(spec.Mode)
	if err != nil {
		return snn.Scenario{}, err
	}

	scenario := snn.Scenario{
		Mode:               m,
		LesionOnsetMs:      spec.LesionOnsetMs,
		RecoveryTauMs:      spec.RecoveryTauMs,
		HypofunctionRateHz: spec.HypofunctionRateHz,
	}
	if scenario.HypofunctionRateHz == 0 {
		scenario.HypofunctionRateHz = snn.DefaultScenario(m).HypofunctionRateHz
	}
	return scenario, nil
}

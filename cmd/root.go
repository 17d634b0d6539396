package cmd

import (
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vestibular-sim/vestibular-sim/snn"
	"github.com/vestibular-sim/vestibular-sim/snn/plotting"
	"github.com/vestibular-sim/vestibular-sim/snn/results"
)

var (
	// CLI flags for simulation timing and reproducibility
	seed       int64  // Seed for Poisson spike generation
	durationMs int64  // Simulated duration (in ms)
	dtUs       int64  // Integration step (in us)
	logLevel   string // Log verbosity level

	// Network configs
	nHair        int     // Hair cell layer size
	nAfferent    int     // Afferent layer size
	nCerebellar  int     // Cerebellar layer size
	inputRateHz  float64 // Baseline hair cell Poisson rate
	wHairAffMV   float64 // Hair -> afferent weight (mV)
	wAffCerMV    float64 // Afferent -> cerebellar weight (mV)
	voltageTrace []int   // Afferent neuron indices to record voltages for

	// Scenario configs
	mode           string  // Experiment condition
	lesionOnsetMs  float64 // Time at which the lesion is applied
	recoveryTauMs  float64 // Compensation time constant (0 = permanent lesion)
	hypoRateHz     float64 // Hair cell rate under hypofunction
	scenarioFile   string  // YAML scenario preset file
	scenarioPreset string  // Named preset within the scenario file

	// Output configs
	resultsDB   string // sqlite results database path
	plotDir     string // directory for raster/rate plots
	summaryJSON string // metrics summary JSON path
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "vestibular-sim",
	Short: "Spiking network simulator for the vestibular pathway",
}

// runCmd executes one scenario using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single experiment scenario",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := buildConfig()
		scenario, err := buildScenario()
		if err != nil {
			logrus.Fatalf("Invalid scenario: %v", err)
		}

		logrus.Infof("Starting %s run: %d ms at dt=%dus, seed=%d",
			scenario.Mode, cfg.Timing.DurationMs, cfg.Timing.DtUs, cfg.Seed)

		m, monitors, err := runScenario(cfg, scenario)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		m.Print()

		if summaryJSON != "" {
			if err := m.WriteJSON(summaryJSON); err != nil {
				logrus.Fatalf("unable to write summary: %v", err)
			}
		}
		if resultsDB != "" {
			if err := persistRun(cfg, m); err != nil {
				logrus.Fatalf("unable to record run: %v", err)
			}
		}
		if plotDir != "" {
			if err := writePlots(cfg, monitors); err != nil {
				logrus.Fatalf("unable to write plots: %v", err)
			}
		}

		logrus.Info("Simulation complete.")
	},
}

// buildConfig assembles the network config from CLI flags.
func buildConfig() snn.Config {
	cfg := snn.DefaultConfig()
	cfg.Seed = seed
	cfg.Timing = snn.TimingConfig{DtUs: dtUs, DurationMs: durationMs}
	cfg.Populations = snn.PopulationConfig{NHair: nHair, NAfferent: nAfferent, NCerebellar: nCerebellar}
	cfg.Synapses = snn.SynapseConfig{HairAfferentMV: wHairAffMV, AfferentCerebellarMV: wAffCerMV}
	cfg.Input = snn.InputConfig{RateHz: inputRateHz}
	cfg.RecordVoltages = voltageTrace
	return cfg
}

// buildScenario resolves the scenario from a preset file when given,
// otherwise from individual flags.
func buildScenario() (snn.Scenario, error) {
	if scenarioFile != "" {
		return GetScenarioConfig(scenarioFile, scenarioPreset)
	}
	m, err := snn.ParseMode(mode)
	if err != nil {
		return snn.Scenario{}, err
	}
	return snn.Scenario{
		Mode:               m,
		LesionOnsetMs:      lesionOnsetMs,
		RecoveryTauMs:      recoveryTauMs,
		HypofunctionRateHz: hypoRateHz,
	}, nil
}

// runScenario builds and runs a simulator, returning its metrics and monitors.
func runScenario(cfg snn.Config, scenario snn.Scenario) (*snn.Metrics, *snn.MonitorSet, error) {
	s, err := snn.NewSimulator(cfg, scenario)
	if err != nil {
		return nil, nil, err
	}
	s.Run()
	return s.Metrics, s.Monitors, nil
}

// persistRun writes the run summary to the sqlite results database.
func persistRun(cfg snn.Config, m *snn.Metrics) error {
	store, err := results.Open(resultsDB)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.RecordRun(uuid.New().String(), cfg.Input.RateHz, m)
}

// writePlots renders raster and rate plots for every layer.
func writePlots(cfg snn.Config, monitors *snn.MonitorSet) error {
	horizon := cfg.Timing.HorizonTicks()
	dtMs := cfg.Timing.DtMs()
	for _, mon := range []*snn.SpikeMonitor{monitors.Hair, monitors.Afferent, monitors.Cerebellar} {
		if err := plotting.Raster(plotDir, mon, dtMs); err != nil {
			return err
		}
		if err := plotting.PopulationRate(plotDir, mon, horizon, dtMs, 10.0); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random spike generation")
	runCmd.Flags().Int64Var(&durationMs, "duration-ms", 1000, "Simulated duration (in ms)")
	runCmd.Flags().Int64Var(&dtUs, "dt-us", 100, "Integration step (in us)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// network configs
	runCmd.Flags().IntVar(&nHair, "n-hair", 10, "Hair cell layer size")
	runCmd.Flags().IntVar(&nAfferent, "n-afferent", 10, "Afferent layer size")
	runCmd.Flags().IntVar(&nCerebellar, "n-cerebellar", 5, "Cerebellar layer size")
	runCmd.Flags().Float64Var(&inputRateHz, "input-rate", 50.0, "Baseline hair cell Poisson rate (Hz)")
	runCmd.Flags().Float64Var(&wHairAffMV, "w-hair-afferent", 1.0, "Hair->afferent synaptic weight (mV)")
	runCmd.Flags().Float64Var(&wAffCerMV, "w-afferent-cerebellar", 1.2, "Afferent->cerebellar synaptic weight (mV)")
	runCmd.Flags().IntSliceVar(&voltageTrace, "record-voltages", nil, "Afferent neuron indices to record voltage traces for")

	// scenario configs
	runCmd.Flags().StringVar(&mode, "mode", "baseline", "Scenario (baseline, hypofunction, afferent_silencing, synaptic_blockade)")
	runCmd.Flags().Float64Var(&lesionOnsetMs, "lesion-onset-ms", 0, "Time at which the lesion is applied (0 = from start)")
	runCmd.Flags().Float64Var(&recoveryTauMs, "recovery-tau-ms", 0, "Compensation time constant (0 = permanent lesion)")
	runCmd.Flags().Float64Var(&hypoRateHz, "hypofunction-rate", 15.0, "Hair cell rate under hypofunction (Hz)")
	runCmd.Flags().StringVar(&scenarioFile, "scenario-file", "", "YAML scenario preset file")
	runCmd.Flags().StringVar(&scenarioPreset, "scenario", "", "Named preset in the scenario file")

	// output configs
	runCmd.Flags().StringVar(&resultsDB, "results-db", "", "sqlite database to record the run in")
	runCmd.Flags().StringVar(&plotDir, "plot-dir", "", "Directory for raster and rate plots")
	runCmd.Flags().StringVar(&summaryJSON, "summary-json", "", "Path to write the metrics summary JSON")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}

package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vestibular-sim/vestibular-sim/snn"
	"github.com/vestibular-sim/vestibular-sim/snn/results"
)

// sweepCmd runs every experiment condition with a shared seed and prints a
// side-by-side comparison.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run all experiment scenarios and compare them",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := buildConfig()

		var store *results.Store
		if resultsDB != "" {
			store, err = results.Open(resultsDB)
			if err != nil {
				logrus.Fatalf("unable to open results database: %v", err)
			}
			defer store.Close()
		}

		fmt.Printf("%-20s %8s %10s %12s %8s\n", "scenario", "hair", "afferent", "cerebellar", "gain")
		for _, m := range snn.Modes {
			scenario := snn.DefaultScenario(m)
			scenario.LesionOnsetMs = lesionOnsetMs
			scenario.RecoveryTauMs = recoveryTauMs
			scenario.HypofunctionRateHz = hypoRateHz

			metrics, _, err := runScenario(cfg, scenario)
			if err != nil {
				logrus.Fatalf("Scenario %s failed: %v", m, err)
			}

			fmt.Printf("%-20s %8d %10d %12d %8.3f\n", m,
				metrics.ByLayer(snn.LayerHair).Spikes,
				metrics.ByLayer(snn.LayerAfferent).Spikes,
				metrics.ByLayer(snn.LayerCerebellar).Spikes,
				metrics.TransferGain)

			if store != nil {
				if err := store.RecordRun(uuid.New().String(), cfg.Input.RateHz, metrics); err != nil {
					logrus.Fatalf("unable to record %s run: %v", m, err)
				}
			}
		}
	},
}

func init() {
	sweepCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random spike generation")
	sweepCmd.Flags().Int64Var(&durationMs, "duration-ms", 1000, "Simulated duration (in ms)")
	sweepCmd.Flags().Int64Var(&dtUs, "dt-us", 100, "Integration step (in us)")
	sweepCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	sweepCmd.Flags().IntVar(&nHair, "n-hair", 10, "Hair cell layer size")
	sweepCmd.Flags().IntVar(&nAfferent, "n-afferent", 10, "Afferent layer size")
	sweepCmd.Flags().IntVar(&nCerebellar, "n-cerebellar", 5, "Cerebellar layer size")
	sweepCmd.Flags().Float64Var(&inputRateHz, "input-rate", 50.0, "Baseline hair cell Poisson rate (Hz)")
	sweepCmd.Flags().Float64Var(&wHairAffMV, "w-hair-afferent", 1.0, "Hair->afferent synaptic weight (mV)")
	sweepCmd.Flags().Float64Var(&wAffCerMV, "w-afferent-cerebellar", 1.2, "Afferent->cerebellar synaptic weight (mV)")

	sweepCmd.Flags().Float64Var(&lesionOnsetMs, "lesion-onset-ms", 0, "Time at which lesions are applied (0 = from start)")
	sweepCmd.Flags().Float64Var(&recoveryTauMs, "recovery-tau-ms", 0, "Compensation time constant (0 = permanent lesion)")
	sweepCmd.Flags().Float64Var(&hypoRateHz, "hypofunction-rate", 15.0, "Hair cell rate under hypofunction (Hz)")

	sweepCmd.Flags().StringVar(&resultsDB, "results-db", "", "sqlite database to record each run in")

	rootCmd.AddCommand(sweepCmd)
}

// Package results persists simulation run summaries to sqlite so scenario
// sweeps can be compared across invocations.
package results

import (
	"database/sql"
	"fmt"

	"github.com/vestibular-sim/vestibular-sim/snn"
	_ "modernc.org/sqlite"
)

// Store wraps the sqlite handle holding run summaries.
type Store struct {
	*sql.DB
}

// RunRecord is one row of the runs table.
type RunRecord struct {
	ID           string
	Scenario     string
	Seed         int64
	DurationMs   int64
	DtUs         int64
	InputRateHz  float64
	TransferGain float64
}

// Open opens (or creates) the results database at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			run_id            TEXT PRIMARY KEY,
			scenario          TEXT,
			seed              BIGINT,
			duration_ms       BIGINT,
			dt_us             BIGINT,
			input_rate_hz     DOUBLE,
			transfer_gain     DOUBLE,
			timestamp         TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE IF NOT EXISTS layer_stats (
			run_id            TEXT,
			layer             TEXT,
			neurons           BIGINT,
			spikes            BIGINT,
			mean_rate_hz      DOUBLE,
			rate_std_hz       DOUBLE,
			isi_cv            DOUBLE,
			FOREIGN KEY(run_id) REFERENCES runs(run_id)
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db}, nil
}

// RecordRun stores a run summary and its per-layer stats in one transaction.
func (s *Store) RecordRun(runID string, inputRateHz float64, m *snn.Metrics) error {
	tx, err := s.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO runs (run_id, scenario, seed, duration_ms, dt_us, input_rate_hz, transfer_gain)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		runID, string(m.Scenario), m.Seed, m.DurationMs, m.DtUs, inputRateHz, m.TransferGain,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run %s: %w", runID, err)
	}

	for _, ls := range m.Layers {
		_, err = tx.Exec(`
			INSERT INTO layer_stats (run_id, layer, neurons, spikes, mean_rate_hz, rate_std_hz, isi_cv)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			runID, ls.Layer, ls.Neurons, ls.Spikes, ls.MeanRateHz, ls.RateStdHz, ls.ISICV,
		)
		if err != nil {
			return fmt.Errorf("failed to insert layer stats for %s/%s: %w", runID, ls.Layer, err)
		}
	}

	return tx.Commit()
}

// ListRuns returns the most recent run summaries, newest first.
func (s *Store) ListRuns(limit int) ([]RunRecord, error) {
	rows, err := s.Query(`
		SELECT run_id, scenario, seed, duration_ms, dt_us, input_rate_hz, transfer_gain
		FROM runs ORDER BY timestamp DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		if err := rows.Scan(&r.ID, &r.Scenario, &r.Seed, &r.DurationMs, &r.DtUs,
			&r.InputRateHz, &r.TransferGain); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// LayerStats returns the stored per-layer stats for a run.
func (s *Store) LayerStats(runID string) ([]snn.LayerStats, error) {
	rows, err := s.Query(`
		SELECT layer, neurons, spikes, mean_rate_hz, rate_std_hz, isi_cv
		FROM layer_stats WHERE run_id = ?`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []snn.LayerStats
	for rows.Next() {
		var ls snn.LayerStats
		if err := rows.Scan(&ls.Layer, &ls.Neurons, &ls.Spikes,
			&ls.MeanRateHz, &ls.RateStdHz, &ls.ISICV); err != nil {
			return nil, err
		}
		stats = append(stats, ls)
	}
	return stats, rows.Err()
}

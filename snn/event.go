package snn

import "github.com/sirupsen/logrus"

// Event defines the interface for all simulation events.
// Each event has a Timestamp (in ticks) and an Execute method that
// advances simulation state when invoked.
type Event interface {
	Timestamp() int64
	Execute(*Simulator)
}

// TickEvent advances the network by one integration step. Each tick
// schedules its successor until the horizon is reached, so the run is a
// chain of ticks interleaved with scenario events.
type TickEvent struct {
	time int64 // tick index (1 tick = 1 integration step)
}

// Timestamp returns the scheduled time of the TickEvent.
func (e *TickEvent) Timestamp() int64 {
	return e.time
}

// Execute integrates one step and schedules the next tick.
func (e *TickEvent) Execute(sim *Simulator) {
	sim.step(e.time)
	if next := e.time + 1; next < sim.Horizon {
		sim.Schedule(&TickEvent{time: next})
	}
}

// LesionOnsetEvent applies the scenario's perturbation to the network.
// For runs with a zero onset this fires before the first tick.
type LesionOnsetEvent struct {
	time int64
}

// Timestamp returns the scheduled time of the LesionOnsetEvent.
func (e *LesionOnsetEvent) Timestamp() int64 {
	return e.time
}

// Execute switches the lesioned parameter to its perturbed value.
func (e *LesionOnsetEvent) Execute(sim *Simulator) {
	logrus.Infof("<< LesionOnset: %s at %d ticks", sim.Scenario.Mode, e.time)
	sim.applyLesion(e.time)
}

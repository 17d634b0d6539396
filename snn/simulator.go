package snn

import (
	"container/heap"
	"math"

	"github.com/sirupsen/logrus"
)

// EventQueue implements heap.Interface and orders events by timestamp.
// Lesion onsets sort ahead of ticks at the same timestamp so a zero-onset
// scenario is lesioned before its first integration step.
type EventQueue []Event

func (eq EventQueue) Len() int { return len(eq) }
func (eq EventQueue) Less(i, j int) bool {
	if eq[i].Timestamp() != eq[j].Timestamp() {
		return eq[i].Timestamp() < eq[j].Timestamp()
	}
	return eventPriority(eq[i]) < eventPriority(eq[j])
}
func (eq EventQueue) Swap(i, j int) { eq[i], eq[j] = eq[j], eq[i] }

func (eq *EventQueue) Push(x any) {
	*eq = append(*eq, x.(Event))
}

func (eq *EventQueue) Pop() any {
	old := *eq
	n := len(old)
	item := old[n-1]
	*eq = old[0 : n-1]
	return item
}

func eventPriority(e Event) int {
	if _, ok := e.(*LesionOnsetEvent); ok {
		return 0
	}
	return 1
}

// Simulator is the core object that holds simulation time, the network,
// and the event loop.
type Simulator struct {
	Clock   int64
	Horizon int64 // number of integration steps in the run
	// EventQueue has all the simulator events, ticks and scenario onsets
	EventQueue EventQueue

	Config   Config
	Scenario Scenario
	Network  *Network
	Monitors *MonitorSet
	// Metrics is populated when Run returns
	Metrics *Metrics

	dtMs            float64
	lesion          *lesionTarget
	lesionOnsetTick int64
	lesionActive    bool
}

// NewSimulator builds the network for the given config and scenario and
// seeds the event queue with the first tick and, if the scenario perturbs
// anything, the lesion onset.
func NewSimulator(cfg Config, scenario Scenario) (*Simulator, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	rng := NewPartitionedRNG(NewSimulationKey(cfg.Seed))
	net, err := NewNetwork(cfg, rng)
	if err != nil {
		return nil, err
	}

	sim := &Simulator{
		Clock:      0,
		Horizon:    cfg.Timing.HorizonTicks(),
		EventQueue: make(EventQueue, 0),
		Config:     cfg,
		Scenario:   scenario,
		Network:    net,
		Monitors:   NewMonitorSet(net, cfg.RecordVoltages),
		dtMs:       cfg.Timing.DtMs(),
		lesion:     scenario.lesionFor(net),
	}
	sim.lesionOnsetTick = int64(scenario.LesionOnsetMs / sim.dtMs)

	sim.Schedule(&TickEvent{time: 0})
	if sim.lesion != nil && sim.lesionOnsetTick < sim.Horizon {
		sim.Schedule(&LesionOnsetEvent{time: sim.lesionOnsetTick})
	}
	return sim, nil
}

// Schedule pushes an event into the simulator's EventQueue.
func (sim *Simulator) Schedule(ev Event) {
	heap.Push(&sim.EventQueue, ev)
}

// Run drains the event queue, advancing the clock until the horizon is
// reached or no events remain, then computes the run's metrics.
func (sim *Simulator) Run() {
	for len(sim.EventQueue) > 0 {
		// get the next event to be simulated
		ev := heap.Pop(&sim.EventQueue).(Event)
		// advance the clock
		sim.Clock = ev.Timestamp()
		logrus.Infof("[tick %07d] Executing %T", sim.Clock, ev)
		// process the event
		ev.Execute(sim)
		if sim.Clock >= sim.Horizon {
			break
		}
	}
	sim.Metrics = ComputeMetrics(sim.Config, sim.Scenario, sim.Monitors)
	logrus.Infof("[tick %07d] Simulation ended", sim.Clock)
}

// step advances the network by one integration step, applying recovery
// relaxation first when compensation is enabled.
func (sim *Simulator) step(tick int64) {
	if sim.lesionActive && sim.Scenario.RecoveryTauMs > 0 {
		elapsedMs := float64(tick-sim.lesionOnsetTick) * sim.dtMs
		frac := math.Exp(-elapsedMs / sim.Scenario.RecoveryTauMs)
		sim.lesion.set(sim.lesion.baseline + (sim.lesion.lesioned-sim.lesion.baseline)*frac)
	}
	spikes := sim.Network.Step()
	sim.Monitors.Record(tick, spikes)
}

// applyLesion switches the perturbed parameter to its lesioned value.
func (sim *Simulator) applyLesion(tick int64) {
	if sim.lesion == nil {
		return
	}
	sim.lesion.set(sim.lesion.lesioned)
	sim.lesionOnsetTick = tick
	sim.lesionActive = true
}

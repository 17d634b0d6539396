// Package snn provides the core time-stepped simulation engine for the
// vestibular spiking network.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - neuron.go: LIF population state and forward-Euler integration
//   - event.go: Event types that drive the simulation (Tick, LesionOnset)
//   - simulator.go: The event loop, tick stepping, and recovery dynamics
//
// # Architecture
//
// The snn package holds the network model and engine; supporting concerns
// live in sub-packages:
//   - snn/results/: sqlite persistence of run summaries
//   - snn/plotting/: raster and population-rate plot rendering
//
// The network is three layers. Hair cells are independent Poisson sources
// (input.go). Afferent neurons are LIF units with spike-frequency
// adaptation, cerebellar neurons are plain LIF integrators (neuron.go).
// Projections deliver delta-synapse increments between layers (synapse.go).
// Experiment scenarios perturb one parameter of this chain (scenario.go).
package snn

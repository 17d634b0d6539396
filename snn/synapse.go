package snn

import "fmt"

// Projection is a set of delta synapses from a presynaptic layer onto a
// Population. Each presynaptic neuron targets exactly one postsynaptic
// neuron; a presynaptic spike increments the target's membrane by the
// projection weight on the following tick (zero conduction delay).
type Projection struct {
	Name     string
	WeightMV float64

	post    *Population
	targets []int // targets[i] = postsynaptic index for presynaptic neuron i
}

// OneToOne wires presynaptic neuron i to postsynaptic neuron i. The layer
// sizes must match.
func OneToOne(name string, nPre int, post *Population, weightMV float64) (*Projection, error) {
	if nPre != post.N() {
		return nil, fmt.Errorf("one-to-one projection %s: %d presynaptic vs %d postsynaptic neurons",
			name, nPre, post.N())
	}
	targets := make([]int, nPre)
	for i := range targets {
		targets[i] = i
	}
	return &Projection{Name: name, WeightMV: weightMV, post: post, targets: targets}, nil
}

// RoundRobin wires presynaptic neuron i to postsynaptic neuron i mod N,
// fanning a larger layer onto a smaller one.
func RoundRobin(name string, nPre int, post *Population, weightMV float64) *Projection {
	targets := make([]int, nPre)
	for i := range targets {
		targets[i] = i % post.N()
	}
	return &Projection{Name: name, WeightMV: weightMV, post: post, targets: targets}
}

// Deliver injects the projection weight into the target of every spiking
// presynaptic neuron.
func (p *Projection) Deliver(spikes []int) {
	if p.WeightMV == 0 {
		return
	}
	for _, s := range spikes {
		p.post.Inject(p.targets[s], p.WeightMV)
	}
}

// SetWeight changes the projection weight. Used by scenario perturbations
// and recovery dynamics.
func (p *Projection) SetWeight(weightMV float64) {
	p.WeightMV = weightMV
}

// Target returns the postsynaptic index wired to presynaptic neuron i.
func (p *Projection) Target(i int) int {
	return p.targets[i]
}

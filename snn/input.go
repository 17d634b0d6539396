package snn

import "math/rand"

// PoissonLayer models the hair cell layer: independent Poisson spike
// sources, one per hair cell. Each tick, every cell spikes with
// probability rate*dt (clamped to [0,1]).
type PoissonLayer struct {
	Name string

	n         int
	rateHz    float64
	dtSeconds float64
	spikeProb float64
	rng       *rand.Rand
}

// NewPoissonLayer creates n Poisson sources firing at rateHz, sampled once
// per integration step of dtSeconds.
func NewPoissonLayer(name string, n int, rateHz, dtSeconds float64, rng *rand.Rand) *PoissonLayer {
	l := &PoissonLayer{Name: name, n: n, dtSeconds: dtSeconds, rng: rng}
	l.SetRate(rateHz)
	return l
}

// N returns the number of hair cells.
func (l *PoissonLayer) N() int {
	return l.n
}

// RateHz returns the current firing rate.
func (l *PoissonLayer) RateHz() float64 {
	return l.rateHz
}

// SetRate changes the firing rate, effective from the next tick. Used by
// hypofunction onset and recovery dynamics.
func (l *PoissonLayer) SetRate(rateHz float64) {
	l.rateHz = rateHz
	p := rateHz * l.dtSeconds
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	l.spikeProb = p
}

// Step draws one tick of spikes and returns the indices of cells that fired.
func (l *PoissonLayer) Step() []int {
	var spikes []int
	for i := 0; i < l.n; i++ {
		if l.rng.Float64() < l.spikeProb {
			spikes = append(spikes, i)
		}
	}
	return spikes
}

package snn

// LIFParams holds the shared constants of a leaky integrate-and-fire
// population. Voltages are in mV, time constants in ms.
type LIFParams struct {
	TauMs       float64 // membrane time constant
	VRestMV     float64 // resting potential
	VResetMV    float64 // post-spike reset potential
	VThreshMV   float64 // spike threshold
	AdaptTauMs  float64 // adaptation decay time constant; 0 disables adaptation
	AdaptJumpMV float64 // adaptation increment per spike
}

// AfferentParams returns the vestibular afferent parameterization:
// LIF with spike-frequency adaptation.
func AfferentParams() LIFParams {
	return LIFParams{
		TauMs:       10,
		VRestMV:     -65,
		VResetMV:    -65,
		VThreshMV:   -50,
		AdaptTauMs:  100,
		AdaptJumpMV: 2,
	}
}

// CerebellarParams returns the cerebellar parameterization: a plain LIF
// integrator without adaptation.
func CerebellarParams() LIFParams {
	return LIFParams{
		TauMs:     10,
		VRestMV:   -65,
		VResetMV:  -65,
		VThreshMV: -50,
	}
}

// Population is a fixed-size pool of LIF neurons integrated with forward
// Euler. Synaptic input arrives via Inject between steps and is applied to
// the membrane at the start of the next Step, so a presynaptic spike at
// tick t can first trigger a postsynaptic spike at tick t+1.
type Population struct {
	Name   string
	Params LIFParams

	V []float64 // membrane potential per neuron, mV
	A []float64 // adaptation variable per neuron, mV

	pending []float64 // accumulated synaptic increments for the next step, mV
}

// NewPopulation creates a population of n neurons at resting potential.
func NewPopulation(name string, n int, params LIFParams) *Population {
	p := &Population{
		Name:    name,
		Params:  params,
		V:       make([]float64, n),
		A:       make([]float64, n),
		pending: make([]float64, n),
	}
	for i := range p.V {
		p.V[i] = params.VRestMV
	}
	return p
}

// N returns the population size.
func (p *Population) N() int {
	return len(p.V)
}

// Inject accumulates a synaptic increment for neuron i, applied on the
// next Step.
func (p *Population) Inject(i int, weightMV float64) {
	p.pending[i] += weightMV
}

// Step advances every neuron by one Euler step of dtMs milliseconds and
// returns the indices of neurons that spiked. Spiking neurons are reset
// before the function returns, so V never exceeds VThreshMV afterwards.
func (p *Population) Step(dtMs float64) []int {
	var spikes []int
	for i := range p.V {
		p.V[i] += p.pending[i]
		p.pending[i] = 0

		// dv/dt = (v_rest - v - a)/tau, da/dt = -a/tau_a
		dv := (p.Params.VRestMV - p.V[i] - p.A[i]) / p.Params.TauMs * dtMs
		p.V[i] += dv
		if p.Params.AdaptTauMs > 0 {
			p.A[i] -= p.A[i] / p.Params.AdaptTauMs * dtMs
		}

		if p.V[i] > p.Params.VThreshMV {
			p.V[i] = p.Params.VResetMV
			if p.Params.AdaptTauMs > 0 {
				p.A[i] += p.Params.AdaptJumpMV
			}
			spikes = append(spikes, i)
		}
	}
	return spikes
}

package snn

import "fmt"

// Layer names used by monitors, metrics, and the results store.
const (
	LayerHair       = "hair"
	LayerAfferent   = "afferent"
	LayerCerebellar = "cerebellar"
)

// LayerSpikes holds the spiking neuron indices of each layer for one tick.
type LayerSpikes struct {
	Hair       []int
	Afferent   []int
	Cerebellar []int
}

// Network is the three-layer vestibular pathway: hair cells drive afferents
// one-to-one, afferents fan round-robin onto cerebellar neurons.
type Network struct {
	Hair       *PoissonLayer
	Afferent   *Population
	Cerebellar *Population

	HairToAfferent       *Projection
	AfferentToCerebellar *Projection

	dtMs float64
}

// NewNetwork assembles the network from a validated configuration.
func NewNetwork(cfg Config, rng *PartitionedRNG) (*Network, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid network config: %w", err)
	}

	hair := NewPoissonLayer(LayerHair, cfg.Populations.NHair, cfg.Input.RateHz,
		cfg.Timing.DtSeconds(), rng.ForSubsystem(SubsystemInput))
	afferent := NewPopulation(LayerAfferent, cfg.Populations.NAfferent, AfferentParams())
	cerebellar := NewPopulation(LayerCerebellar, cfg.Populations.NCerebellar, CerebellarParams())

	hairToAff, err := OneToOne("hair->afferent", hair.N(), afferent, cfg.Synapses.HairAfferentMV)
	if err != nil {
		return nil, err
	}
	affToCer := RoundRobin("afferent->cerebellar", afferent.N(), cerebellar,
		cfg.Synapses.AfferentCerebellarMV)

	return &Network{
		Hair:                 hair,
		Afferent:             afferent,
		Cerebellar:           cerebellar,
		HairToAfferent:       hairToAff,
		AfferentToCerebellar: affToCer,
		dtMs:                 cfg.Timing.DtMs(),
	}, nil
}

// Step advances the whole network by one integration step and returns the
// spikes emitted by each layer. Spikes propagate downstream with one tick
// of latency via the populations' pending-input buffers.
func (n *Network) Step() LayerSpikes {
	hairSpikes := n.Hair.Step()
	n.HairToAfferent.Deliver(hairSpikes)

	affSpikes := n.Afferent.Step(n.dtMs)
	n.AfferentToCerebellar.Deliver(affSpikes)

	cerSpikes := n.Cerebellar.Step(n.dtMs)

	return LayerSpikes{Hair: hairSpikes, Afferent: affSpikes, Cerebellar: cerSpikes}
}

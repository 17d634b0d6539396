package snn

// SpikeMonitor records the spike times of every neuron in one layer.
type SpikeMonitor struct {
	Layer string
	// Times[i] holds the ticks at which neuron i spiked, in order.
	Times [][]int64
	Total int
}

// NewSpikeMonitor creates a monitor for a layer of n neurons.
func NewSpikeMonitor(layer string, n int) *SpikeMonitor {
	return &SpikeMonitor{Layer: layer, Times: make([][]int64, n)}
}

// Record appends the given spiking neuron indices at the given tick.
func (m *SpikeMonitor) Record(tick int64, spikes []int) {
	for _, i := range spikes {
		m.Times[i] = append(m.Times[i], tick)
		m.Total++
	}
}

// Count returns the number of spikes recorded for neuron i.
func (m *SpikeMonitor) Count(i int) int {
	return len(m.Times[i])
}

// VoltageMonitor samples the membrane potential of selected neurons in a
// population every tick.
type VoltageMonitor struct {
	Layer   string
	Neurons []int
	// Traces[k] is the mV time series of Neurons[k], one sample per tick.
	Traces [][]float64

	pop *Population
}

// NewVoltageMonitor creates a monitor sampling the given neuron indices.
// A nil or empty index list yields an inactive monitor.
func NewVoltageMonitor(pop *Population, neurons []int) *VoltageMonitor {
	return &VoltageMonitor{
		Layer:   pop.Name,
		Neurons: neurons,
		Traces:  make([][]float64, len(neurons)),
		pop:     pop,
	}
}

// Sample records the current membrane potential of each monitored neuron.
func (m *VoltageMonitor) Sample() {
	for k, idx := range m.Neurons {
		m.Traces[k] = append(m.Traces[k], m.pop.V[idx])
	}
}

// MonitorSet bundles the per-layer spike monitors and the optional voltage
// monitor for a run.
type MonitorSet struct {
	Hair       *SpikeMonitor
	Afferent   *SpikeMonitor
	Cerebellar *SpikeMonitor
	Voltages   *VoltageMonitor // nil when voltage recording is disabled
}

// NewMonitorSet creates spike monitors sized to the network's layers and,
// when recordVoltages is non-empty, a voltage monitor on the afferent layer.
func NewMonitorSet(net *Network, recordVoltages []int) *MonitorSet {
	ms := &MonitorSet{
		Hair:       NewSpikeMonitor(LayerHair, net.Hair.N()),
		Afferent:   NewSpikeMonitor(LayerAfferent, net.Afferent.N()),
		Cerebellar: NewSpikeMonitor(LayerCerebellar, net.Cerebellar.N()),
	}
	if len(recordVoltages) > 0 {
		ms.Voltages = NewVoltageMonitor(net.Afferent, recordVoltages)
	}
	return ms
}

// Record stores one tick's spikes across all layers and samples voltages.
func (ms *MonitorSet) Record(tick int64, spikes LayerSpikes) {
	ms.Hair.Record(tick, spikes.Hair)
	ms.Afferent.Record(tick, spikes.Afferent)
	ms.Cerebellar.Record(tick, spikes.Cerebellar)
	if ms.Voltages != nil {
		ms.Voltages.Sample()
	}
}

// ByLayer returns the spike monitor for the named layer, or nil.
func (ms *MonitorSet) ByLayer(layer string) *SpikeMonitor {
	switch layer {
	case LayerHair:
		return ms.Hair
	case LayerAfferent:
		return ms.Afferent
	case LayerCerebellar:
		return ms.Cerebellar
	}
	return nil
}

package obs

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Label is a key/value pair attached to measurements.
type Label struct {
	Key   string
	Value string
}

// Meter is a very small interface for emitting counters/histograms.
// Implementations may no-op or bridge to a metrics system.
type Meter interface {
	Counter(name string, value float64, labels ...Label)
	Histogram(name string, value float64, labels ...Label)
}

// NopMeter is a Meter that discards all measurements.
type NopMeter struct{}

func (NopMeter) Counter(name string, value float64, labels ...Label)   {}
func (NopMeter) Histogram(name string, value float64, labels ...Label) {}

// PromMeter bridges Meter to a prometheus Registerer. Vectors are
// created lazily per metric name; a given name must always be used with
// the same label keys.
type PromMeter struct {
	// Reg defaults to prometheus.DefaultRegisterer.
	Reg prometheus.Registerer

	mu         sync.Mutex
	counters   map[string]*prometheus.CounterVec
	histograms map[string]*prometheus.HistogramVec
}

func (m *PromMeter) Counter(name string, value float64, labels ...Label) {
	keys, vals := splitLabels(labels)
	m.mu.Lock()
	cv, ok := m.counters[name]
	if !ok {
		cv = prometheus.NewCounterVec(prometheus.CounterOpts{Name: name}, keys)
		if m.counters == nil {
			m.counters = make(map[string]*prometheus.CounterVec)
		}
		m.counters[name] = cv
		m.registerer().MustRegister(cv)
	}
	m.mu.Unlock()
	cv.WithLabelValues(vals...).Add(value)
}

func (m *PromMeter) Histogram(name string, value float64, labels ...Label) {
	keys, vals := splitLabels(labels)
	m.mu.Lock()
	hv, ok := m.histograms[name]
	if !ok {
		hv = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    name,
			Buckets: prometheus.DefBuckets,
		}, keys)
		if m.histograms == nil {
			m.histograms = make(map[string]*prometheus.HistogramVec)
		}
		m.histograms[name] = hv
		m.registerer().MustRegister(hv)
	}
	m.mu.Unlock()
	hv.WithLabelValues(vals...).Observe(value)
}

func (m *PromMeter) registerer() prometheus.Registerer {
	if m.Reg != nil {
		return m.Reg
	}
	return prometheus.DefaultRegisterer
}

func splitLabels(labels []Label) (keys, values []string) {
	for _, l := range labels {
		keys = append(keys, l.Key)
		values = append(values, l.Value)
	}
	return keys, values
}

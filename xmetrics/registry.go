package xmetrics

import (
	"fmt"

	"github.com/go-kit/kit/metrics"
	gokitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the core abstraction for this package.  It is a prometheus registry together
// with go-kit factory methods for the preregistered metrics.
//
// The factory methods return go-kit wrappers around the preregistered prometheus collectors.
// Requesting a metric that was never registered, or one registered under a different type,
// is a programmer error and panics.
type Registry interface {
	prometheus.Gatherer
	prometheus.Registerer

	// NewCounter returns a go-kit Counter for the given preregistered metric name
	NewCounter(name string) metrics.Counter

	// NewGauge returns a go-kit Gauge for the given preregistered metric name
	NewGauge(name string) metrics.Gauge

	// NewHistogram returns a go-kit Histogram for the given preregistered metric name
	NewHistogram(name string) metrics.Histogram
}

// registry is the internal Registry implementation
type registry struct {
	*prometheus.Registry

	cache map[string]prometheus.Collector
}

func (r *registry) collector(name string) prometheus.Collector {
	c, ok := r.cache[name]
	if !ok {
		panic(fmt.Errorf("No such metric: %s", name))
	}

	return c
}

func (r *registry) NewCounter(name string) metrics.Counter {
	counterVec, ok := r.collector(name).(*prometheus.CounterVec)
	if !ok {
		panic(fmt.Errorf("The metric %s is not a counter", name))
	}

	return gokitprometheus.NewCounter(counterVec)
}

func (r *registry) NewGauge(name string) metrics.Gauge {
	gaugeVec, ok := r.collector(name).(*prometheus.GaugeVec)
	if !ok {
		panic(fmt.Errorf("The metric %s is not a gauge", name))
	}

	return gokitprometheus.NewGauge(gaugeVec)
}

func (r *registry) NewHistogram(name string) metrics.Histogram {
	histogramVec, ok := r.collector(name).(*prometheus.HistogramVec)
	if !ok {
		panic(fmt.Errorf("The metric %s is not a histogram", name))
	}

	return gokitprometheus.NewHistogram(histogramVec)
}

// NewRegistry creates a Registry from preregistered modules and an optional Options.
// Module functions are merged with the ad hoc metrics configured in Options.  A metric
// name declared more than once across all sources is an error.
func NewRegistry(o *Options, modules ...Module) (Registry, error) {
	r := &registry{
		Registry: prometheus.NewRegistry(),
		cache:    make(map[string]prometheus.Collector),
	}

	merged := append([]Metric{}, o.metrics()...)
	for _, m := range modules {
		merged = append(merged, m()...)
	}

	for _, m := range merged {
		if _, ok := r.cache[m.Name]; ok {
			return nil, fmt.Errorf("Duplicate metric name: %s", m.Name)
		}

		if len(m.Namespace) == 0 {
			m.Namespace = o.namespace()
		}

		if len(m.Subsystem) == 0 {
			m.Subsystem = o.subsystem()
		}

		c, err := NewCollector(m)
		if err != nil {
			return nil, err
		}

		if err := r.Registry.Register(c); err != nil {
			return nil, err
		}

		r.cache[m.Name] = c
	}

	return r, nil
}

// MustNewRegistry is like NewRegistry, except that it panics on any error.
// It is intended for initialization code that cannot reasonably continue
// when metrics are misconfigured.
func MustNewRegistry(o *Options, modules ...Module) Registry {
	r, err := NewRegistry(o, modules...)
	if err != nil {
		panic(err)
	}

	return r
}

package xmetrics

// Adder represents a metric to which deltas can be added.  Go-kit's metrics.Counter, metrics.Gauge, and
// several prometheus interfaces implement this interface.
type Adder interface {
	Add(float64)
}

// Setter represents a metric whose value can be set directly.  Go-kit's metrics.Gauge,
// as returned by Registry.NewGauge, implements this interface.
type Setter interface {
	Set(float64)
}

// Observer is a type of metric which receives observations.  Histograms and summaries implement this interface.
type Observer interface {
	Observe(float64)
}

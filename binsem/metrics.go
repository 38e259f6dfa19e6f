package binsem

import (
	"github.com/xmidt-org/syncaux/xmetrics"
)

const (
	SignalCount            = "binary_semaphore_signal_count"
	WaitCount              = "binary_semaphore_wait_count"
	CriticalSectionSeconds = "binary_semaphore_critical_section_seconds"
)

// Metrics is the module function for this package's metrics
func Metrics() []xmetrics.Metric {
	return []xmetrics.Metric{
		{
			Name: SignalCount,
			Type: xmetrics.CounterType,
		},
		{
			Name: WaitCount,
			Type: xmetrics.CounterType,
		},
		{
			Name:    CriticalSectionSeconds,
			Type:    xmetrics.HistogramType,
			Buckets: []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		},
	}
}

// Package metrics defines the instrumentation hook used across the
// library. The default is a no-op; callers wire a real backend through
// paylink.WithMetrics.
package metrics

import "time"

type Recorder interface {
	// IncCounter bumps the named event counter. Labels may carry a
	// "network" key; missing labels are recorded as empty.
	IncCounter(name string, labels map[string]string)

	// ObserveLatency records how long the named operation took.
	ObserveLatency(name string, duration time.Duration, labels map[string]string)
}

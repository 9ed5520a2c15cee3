package wordcount

import (
	metrics "github.com/rcrowley/go-metrics"
)

// Stats is a snapshot of the counters kept by a Counter.
type Stats struct {
	Added      int64 // Occurrences passed to Add
	Duplicates int64 // Adds that hit an existing word
	Removed    int64 // Words deleted by Remove
	Distinct   int64 // Words currently held
}

type stats struct {
	registry   metrics.Registry
	added      metrics.Counter
	duplicates metrics.Counter
	removed    metrics.Counter
	distinct   metrics.Counter
}

func newStats() *stats {
	r := metrics.NewRegistry()
	return &stats{
		registry:   r,
		added:      metrics.GetOrRegisterCounter("words.added", r),
		duplicates: metrics.GetOrRegisterCounter("words.duplicates", r),
		removed:    metrics.GetOrRegisterCounter("words.removed", r),
		distinct:   metrics.GetOrRegisterCounter("words.distinct", r),
	}
}

// Stats returns the current counter values.
func (c *Counter) Stats() Stats {
	return Stats{
		Added:      c.stats.added.Count(),
		Duplicates: c.stats.duplicates.Count(),
		Removed:    c.stats.removed.Count(),
		Distinct:   c.stats.distinct.Count(),
	}
}

// Registry exposes the metrics registry, e.g. for metrics.WriteOnce.
func (c *Counter) Registry() metrics.Registry {
	return c.stats.registry
}

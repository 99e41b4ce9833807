package memo

import "sync/atomic"

// Stats is a point-in-time snapshot of a wrapper's cache activity. Useful
// for debugging cache effectiveness without an external metrics system.
type Stats struct {
	// Hits counts calls answered from the slot without running the producer.
	Hits uint64

	// Misses counts producer executions started, successful or not.
	Misses uint64

	// Shared counts callers that attached to an in-flight computation
	// instead of starting their own. Always zero with sharing disabled.
	Shared uint64
}

type statCounters struct {
	hits   atomic.Uint64
	misses atomic.Uint64
	shared atomic.Uint64
}

func (c *statCounters) snapshot() Stats {
	return Stats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Shared: c.shared.Load(),
	}
}

package memo

import "sync"

// AsyncProducer computes a value and reports it through complete. The
// producer may invoke complete from any goroutine, immediately or at an
// arbitrary later point, but must invoke it exactly once per call.
type AsyncProducer[A, V any] func(arg A, complete func(V, error))

// AsyncFunc memoizes an [AsyncProducer] keyed by a [KeyFunc].
//
// AsyncFunc is safe for concurrent use. While a producer is in flight,
// further calls for the same key attach their callbacks to the flight
// instead of starting a second producer, unless constructed with
// WithInflightSharing(false).
type AsyncFunc[A, V any] struct {
	reg      *Registry
	slot     uint64
	key      KeyFunc[A]
	producer AsyncProducer[A, V]
	share    bool
	stats    statCounters

	mu      sync.Mutex
	pending map[string][]func(V, error)
}

// NewAsync returns a memoized wrapper around an asynchronous producer. Like
// [New], the wrapper claims a fresh slot and never shares entries with other
// wrappers.
func NewAsync[A, V any](key KeyFunc[A], producer AsyncProducer[A, V], opts ...Option) *AsyncFunc[A, V] {
	cfg := newConfig(opts)
	return &AsyncFunc[A, V]{
		reg:      cfg.registry,
		slot:     cfg.registry.createSlot(),
		key:      key,
		producer: producer,
		share:    cfg.share,
		pending:  make(map[string][]func(V, error)),
	}
}

// Call delivers the value for arg to done. On a hit, done runs synchronously
// before Call returns. On a miss, the producer is started and done runs when
// the producer completes, on whatever goroutine the producer completes on.
//
// Producer errors are delivered to done (and to every attached waiter) and
// nothing is stored, so the next call with the same key retries.
func (f *AsyncFunc[A, V]) Call(arg A, done func(V, error)) {
	var zero V

	key, err := f.key(arg)
	if err != nil {
		done(zero, err)
		return
	}

	if !f.share {
		if v, ok := f.reg.lookup(f.slot, key); ok {
			f.stats.hits.Add(1)
			done(v.(V), nil)
			return
		}
		f.stats.misses.Add(1)
		f.producer(arg, func(v V, err error) {
			if err == nil {
				f.reg.store(f.slot, key, v)
			}
			done(v, err)
		})
		return
	}

	f.mu.Lock()
	if waiters, ok := f.pending[key]; ok {
		f.pending[key] = append(waiters, done)
		f.mu.Unlock()
		f.stats.shared.Add(1)
		return
	}
	// Check the slot under the pending lock: the flight drain deletes the
	// pending list only after storing, so a miss here with no pending entry
	// means no producer is in flight.
	if v, ok := f.reg.lookup(f.slot, key); ok {
		f.mu.Unlock()
		f.stats.hits.Add(1)
		done(v.(V), nil)
		return
	}
	f.pending[key] = []func(V, error){done}
	f.mu.Unlock()

	f.stats.misses.Add(1)
	f.producer(arg, func(v V, err error) {
		if err == nil {
			f.reg.store(f.slot, key, v)
		}
		f.mu.Lock()
		waiters := f.pending[key]
		delete(f.pending, key)
		f.mu.Unlock()
		// Waiters run outside the lock, in arrival order, so a callback may
		// safely re-enter the wrapper.
		for _, w := range waiters {
			w(v, err)
		}
	})
}

// Stats returns a snapshot of the wrapper's cache activity.
func (f *AsyncFunc[A, V]) Stats() Stats {
	return f.stats.snapshot()
}

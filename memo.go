package memo

import (
	"strconv"

	"golang.org/x/sync/singleflight"
)

// KeyFunc derives the lookup key for a call from its argument.
type KeyFunc[A any] func(A) (string, error)

// ByRoot keys a wrapper by a project root path.
func ByRoot(root string) (string, error) {
	return root, nil
}

// ByBuffer keys a wrapper by an opaque integer buffer handle.
func ByBuffer(buf int) (string, error) {
	return strconv.Itoa(buf), nil
}

// Producer computes the value for an argument. It runs at most once per key
// per wrapper; errors are returned to the caller and never cached, so a
// failed computation is retried on the next call with the same key.
type Producer[A, V any] func(A) (V, error)

// Func memoizes a [Producer] keyed by a [KeyFunc].
//
// Func is safe for concurrent use. Concurrent calls that miss on the same
// key share a single producer execution via singleflight unless constructed
// with WithInflightSharing(false).
type Func[A, V any] struct {
	reg      *Registry
	slot     uint64
	key      KeyFunc[A]
	producer Producer[A, V]
	share    bool
	group    singleflight.Group
	stats    statCounters
}

// New returns a memoized wrapper around producer. The wrapper claims a fresh
// slot in the registry, so wrappers from separate New calls never share
// cached entries even for identical keys.
func New[A, V any](key KeyFunc[A], producer Producer[A, V], opts ...Option) *Func[A, V] {
	cfg := newConfig(opts)
	return &Func[A, V]{
		reg:      cfg.registry,
		slot:     cfg.registry.createSlot(),
		key:      key,
		producer: producer,
		share:    cfg.share,
	}
}

// Call returns the value for arg, invoking the producer only if no value has
// been stored for arg's key since the last reset. A cached zero value is
// returned as-is without re-invoking the producer.
func (f *Func[A, V]) Call(arg A) (V, error) {
	var zero V

	key, err := f.key(arg)
	if err != nil {
		return zero, err
	}

	// Fast path, avoids singleflight overhead on hits.
	if v, ok := f.reg.lookup(f.slot, key); ok {
		f.stats.hits.Add(1)
		return v.(V), nil
	}

	if !f.share {
		f.stats.misses.Add(1)
		v, err := f.producer(arg)
		if err != nil {
			return zero, err
		}
		f.reg.store(f.slot, key, v)
		return v, nil
	}

	ran := false
	result, err, _ := f.group.Do(key, func() (any, error) {
		ran = true
		// Double-check the slot: another goroutine may have stored this key
		// between the lookup above and acquiring the singleflight lock.
		if v, ok := f.reg.lookup(f.slot, key); ok {
			f.stats.hits.Add(1)
			return v, nil
		}
		f.stats.misses.Add(1)
		v, err := f.producer(arg)
		if err != nil {
			return nil, err
		}
		f.reg.store(f.slot, key, v)
		return v, nil
	})
	if !ran {
		f.stats.shared.Add(1)
	}
	if err != nil {
		return zero, err
	}
	return result.(V), nil
}

// Stats returns a snapshot of the wrapper's cache activity.
func (f *Func[A, V]) Stats() Stats {
	return f.stats.snapshot()
}

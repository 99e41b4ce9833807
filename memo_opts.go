package memo

// Option configures a wrapper at construction time.
type Option func(*config)

type config struct {
	registry *Registry
	share    bool
}

func newConfig(opts []Option) config {
	cfg := config{registry: Default, share: true}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// WithRegistry binds the wrapper to reg instead of the package [Default].
func WithRegistry(reg *Registry) Option {
	return func(c *config) {
		c.registry = reg
	}
}

// WithInflightSharing controls whether concurrent misses on the same key
// share one producer execution. Sharing is enabled by default.
//
// Disable it when the producer has per-caller side effects that must happen
// on every miss; with sharing off, calls that race on an uncached key each
// run the producer, and the last completion wins the stored entry.
func WithInflightSharing(enabled bool) Option {
	return func(c *config) {
		c.share = enabled
	}
}

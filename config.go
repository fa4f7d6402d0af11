package rewind

type Option[Item any] = func(*config[Item])

type config[Item any] struct {
	window  Window[Item]
	metrics *metrics
}

func newConfig[Item any](options ...Option[Item]) *config[Item] {
	cfg := &config[Item]{}
	for _, option := range options {
		if option != nil {
			option(cfg)
		}
	}
	return cfg
}

// WithWindow replaces the default ring-buffer window of the stream.
func WithWindow[Item any](window Window[Item]) Option[Item] {
	if window == nil {
		panic("window can't be nil")
	}
	return func(c *config[Item]) {
		c.window = window
	}
}

// WithMetrics enables the Prometheus metrics described by pc. A nil pc
// disables instrumentation.
func WithMetrics[Item any](pc *PrometheusConfig) Option[Item] {
	return func(c *config[Item]) {
		if pc != nil {
			c.metrics = pc.metrics()
		}
	}
}

package rewind

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusConfig is a config of the Prometheus metrics provided by the
// stream.
//
// An instance can be created only by the [Prometheus] function. The zero
// value is invalid.
type PrometheusConfig struct {
	// Namespace of the metrics.
	Namespace string
	// Subsystem of the metrics.
	Subsystem string
	// Options for the read items counter, partitioned by origin
	// ("source" or "window").
	ItemsRead prometheus.CounterOpts
	// Options for the evicted items counter.
	ItemsEvicted prometheus.CounterOpts
	// Options for the source pulls counter.
	SourcePulls prometheus.CounterOpts
	// Options for the retained items gauge.
	WindowItems prometheus.GaugeOpts
	// Options for the live marks gauge.
	MarksLive prometheus.GaugeOpts

	registerer prometheus.Registerer
}

// Prometheus returns a [PrometheusConfig] with the provided registerer. If
// registerer is nil, metrics will not be registered. Many default parameters
// can be configured by passing configuration functions.
func Prometheus(
	registerer prometheus.Registerer,
	configFuncs ...func(c *PrometheusConfig),
) *PrometheusConfig {
	const (
		namespace = "rewind"
		subsystem = ""
	)

	c := PrometheusConfig{
		registerer: registerer,
		Namespace:  namespace,
		Subsystem:  subsystem,
		ItemsRead: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "items_read",
			Help:      "Number of items surfaced to the caller",
		},
		ItemsEvicted: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "items_evicted",
			Help:      "Number of items dropped from the window",
		},
		SourcePulls: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "source_pulls",
			Help:      "Number of pulls from the wrapped source, including the final empty one",
		},
		WindowItems: prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "window_items",
			Help:      "Number of items currently retained by the window",
		},
		MarksLive: prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "marks_live",
			Help:      "Number of live marks",
		},
	}

	for _, cf := range configFuncs {
		if cf != nil {
			cf(&c)
		}
	}

	return &c
}

func (c *PrometheusConfig) metrics() *metrics {
	m := metrics{
		itemsRead:    prometheus.NewCounterVec(c.ItemsRead, []string{"origin"}),
		itemsEvicted: prometheus.NewCounter(c.ItemsEvicted),
		sourcePulls:  prometheus.NewCounter(c.SourcePulls),
		windowItems:  prometheus.NewGauge(c.WindowItems),
		marksLive:    prometheus.NewGauge(c.MarksLive),
	}

	if c.registerer != nil {
		c.registerer.MustRegister(
			m.itemsRead,
			m.itemsEvicted,
			m.sourcePulls,
			m.windowItems,
			m.marksLive,
		)
	}

	return &m
}

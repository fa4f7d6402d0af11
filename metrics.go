package rewind

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	originSource = "source"
	originWindow = "window"
)

type metrics struct {
	itemsRead    *prometheus.CounterVec
	itemsEvicted prometheus.Counter
	sourcePulls  prometheus.Counter
	windowItems  prometheus.Gauge
	marksLive    prometheus.Gauge
}

// All methods tolerate a nil receiver so the stream can call them
// unconditionally.

func (m *metrics) read(origin string) {
	if m == nil {
		return
	}
	m.itemsRead.WithLabelValues(origin).Inc()
}

func (m *metrics) evicted(n int) {
	if m == nil {
		return
	}
	m.itemsEvicted.Add(float64(n))
}

func (m *metrics) pull() {
	if m == nil {
		return
	}
	m.sourcePulls.Inc()
}

func (m *metrics) window(n int) {
	if m == nil {
		return
	}
	m.windowItems.Set(float64(n))
}

func (m *metrics) marks(n int) {
	if m == nil {
		return
	}
	m.marksLive.Set(float64(n))
}

package rewind_test

import (
	"slices"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/teenjuna/rewind"
	"github.com/teenjuna/rewind/internal/testing/require"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	s := rewind.New(
		runes("abc"),
		rewind.WithMetrics[rune](rewind.Prometheus(reg)),
	)

	m := s.Mark()
	require.Equal(t, metric(t, reg, "rewind_marks_live", ""), 1.0)

	require.Equal(t, collect(s), "abc")
	_, ok := s.Next()
	require.False(t, ok)

	// Three successful pulls plus the final empty one; nothing replayed yet.
	require.Equal(t, metric(t, reg, "rewind_source_pulls", ""), 4.0)
	require.Equal(t, metric(t, reg, "rewind_items_read", "source"), 3.0)
	require.Equal(t, metric(t, reg, "rewind_window_items", ""), 3.0)

	s.Rewind(m)
	require.Equal(t, collect(s), "abc")
	require.Equal(t, metric(t, reg, "rewind_items_read", "window"), 3.0)

	// The source must not have been consulted again.
	require.Equal(t, metric(t, reg, "rewind_source_pulls", ""), 4.0)

	m.Release()
	require.Equal(t, metric(t, reg, "rewind_marks_live", ""), 0.0)

	// Eviction happens on the next read, not on release.
	require.Equal(t, metric(t, reg, "rewind_items_evicted", ""), 0.0)
	s.Next()
	require.Equal(t, metric(t, reg, "rewind_items_evicted", ""), 3.0)
	require.Equal(t, metric(t, reg, "rewind_window_items", ""), 0.0)
}

func TestMetricsFastPath(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	s := rewind.New(
		slices.Values([]int{1, 2, 3, 4, 5}),
		rewind.WithMetrics[int](rewind.Prometheus(reg)),
	)

	// With no mark ever taken nothing is retained, so nothing can be
	// evicted either, no matter how far the floor advances.
	for range 5 {
		_, ok := s.Next()
		require.True(t, ok)
		require.Equal(t, s.Buffered(), 0)
	}
	_, ok := s.Next()
	require.False(t, ok)

	require.Equal(t, metric(t, reg, "rewind_items_evicted", ""), 0.0)
	require.Equal(t, metric(t, reg, "rewind_window_items", ""), 0.0)
	require.Equal(t, metric(t, reg, "rewind_items_read", "source"), 5.0)
}

func TestMetricsDisabled(t *testing.T) {
	// A nil config must not instrument anything, and a nil registerer must
	// not register anything.
	s := rewind.New(runes("ab"), rewind.WithMetrics[rune](nil))
	require.Equal(t, collect(s), "ab")

	s = rewind.New(runes("ab"), rewind.WithMetrics[rune](rewind.Prometheus(nil)))
	require.Equal(t, collect(s), "ab")
}

// metric returns the value of the named counter or gauge, filtered by the
// origin label when it is not empty.
func metric(t *testing.T, reg *prometheus.Registry, name, origin string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.Nil(t, err)

	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, m := range family.GetMetric() {
			if origin != "" {
				found := false
				for _, label := range m.GetLabel() {
					if label.GetName() == "origin" && label.GetValue() == origin {
						found = true
					}
				}
				if !found {
					continue
				}
			}
			if c := m.GetCounter(); c != nil {
				return c.GetValue()
			}
			if g := m.GetGauge(); g != nil {
				return g.GetValue()
			}
		}
	}

	return 0
}

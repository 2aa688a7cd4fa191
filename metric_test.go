package opentsdb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMetricKeyIgnoresTagOrder(t *testing.T) {
	m1 := NewMetric("sys.cpu.user", 1600000000, 42).WithTag("host", "web01").WithTag("dc", "lga")
	m2 := NewMetric("sys.cpu.user", 1600000000, 42).WithTag("dc", "lga").WithTag("host", "web01")

	require.Equal(t, m1.key(), m2.key())
}

func TestMetricKeyDistinguishesValues(t *testing.T) {
	m1 := NewMetric("sys.cpu.user", 1600000000, 42)

	require.NotEqual(t, m1.key(), NewMetric("sys.cpu.user", 1600000000, 43).key())
	require.NotEqual(t, m1.key(), NewMetric("sys.cpu.user", 1600000001, 42).key())
	require.NotEqual(t, m1.key(), NewMetric("sys.cpu.sys", 1600000000, 42).key())
	require.NotEqual(t, m1.key(), m1.WithTag("host", "web01").key())
}

func TestMetricWithTagLeavesReceiverUnmodified(t *testing.T) {
	m1 := NewMetric("sys.cpu.user", 1600000000, 42).WithTag("host", "web01")
	m2 := m1.WithTag("dc", "lga")

	require.Equal(t, map[string]string{"host": "web01"}, m1.Tags)
	require.Equal(t, map[string]string{"host": "web01", "dc": "lga"}, m2.Tags)
}

func TestMetricSetDeduplicates(t *testing.T) {
	m1 := NewMetric("sys.cpu.user", 1600000000, 42).WithTag("host", "web01")
	m2 := NewMetric("sys.cpu.sys", 1600000000, 7).WithTag("host", "web01")

	set := NewMetricSet(m1, m2, m1)

	require.Equal(t, 2, set.Len())
	require.True(t, set.Contains(m1))
	require.True(t, set.Contains(m2))

	set.Add(m2)

	require.Equal(t, 2, set.Len())
	require.ElementsMatch(t, []Metric{m1, m2}, set.Metrics())
}

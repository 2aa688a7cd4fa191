package opentsdb

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func newBatchTestMetrics(n int) []Metric {
	metrics := make([]Metric, 0, n)

	for i := 0; i < n; i++ {
		metrics = append(metrics, NewMetric(fmt.Sprintf("sys.test.%d", i), int64(1600000000+i), float64(i)))
	}

	return metrics
}

func TestSplitIntoBatchesUnbounded(t *testing.T) {
	for _, count := range []int{0, 1, 5, 100} {
		batches := splitIntoBatches(newBatchTestMetrics(count), 0)

		require.Len(t, batches, 1)
		require.Len(t, batches[0], count)
	}
}

func TestSplitIntoBatchesBound(t *testing.T) {
	for limit := 1; limit <= 5; limit++ {
		for count := 0; count <= 20; count++ {
			batches := splitIntoBatches(newBatchTestMetrics(count), limit)

			want := (count + limit - 1) / limit
			if want == 0 {
				want = 1
			}

			require.Len(t, batches, want)

			for _, batch := range batches {
				require.LessOrEqual(t, len(batch), limit)
			}
		}
	}
}

func TestSplitIntoBatchesSetUnion(t *testing.T) {
	metrics := newBatchTestMetrics(17)

	for _, limit := range []int{0, 1, 3, 5, 16, 17, 18} {
		seen := make(map[string]int)

		for _, batch := range splitIntoBatches(metrics, limit) {
			for _, m := range batch {
				seen[m.key()]++
			}
		}

		require.Len(t, seen, len(metrics))

		for _, n := range seen {
			require.Equal(t, 1, n)
		}
	}
}

func TestSplitIntoBatchesSevenByThree(t *testing.T) {
	batches := splitIntoBatches(newBatchTestMetrics(7), 3)

	sizes := make([]int, 0, len(batches))

	for _, batch := range batches {
		sizes = append(sizes, len(batch))
	}

	sort.Ints(sizes)

	require.Equal(t, []int{1, 3, 3}, sizes)
}

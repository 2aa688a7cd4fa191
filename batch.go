package opentsdb

import "github.com/bradenaw/juniper/xslices"

// splitIntoBatches divides metrics into groups of at most limit elements. A
// limit of zero disables splitting and yields a single batch holding the
// whole input, however large.
//
// The grouping carries no ordering guarantee: callers get back every input
// metric exactly once across all batches, but which batch a metric lands in
// is unspecified.
func splitIntoBatches(metrics []Metric, limit int) [][]Metric {
	if limit <= 0 || len(metrics) <= limit {
		return [][]Metric{metrics}
	}

	return xslices.Chunk(metrics, limit)
}

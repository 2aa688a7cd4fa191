package opentsdb

// MetricSet is an unordered, de-duplicating collection of metrics. Adding a
// metric that is equal by value to one already present is a no-op.
//
// The set carries no iteration order; callers must not rely on the order in
// which Metrics returns its elements, nor on how they are grouped into
// batches when the set is submitted.
type MetricSet struct {
	metrics map[string]Metric
}

// NewMetricSet returns a set containing the given metrics.
func NewMetricSet(metrics ...Metric) *MetricSet {
	set := &MetricSet{metrics: make(map[string]Metric, len(metrics))}

	set.Add(metrics...)

	return set
}

// Add inserts the given metrics into the set, skipping any that are already
// present.
func (s *MetricSet) Add(metrics ...Metric) {
	for _, m := range metrics {
		s.metrics[m.key()] = m
	}
}

// Len returns the number of distinct metrics in the set.
func (s *MetricSet) Len() int {
	return len(s.metrics)
}

// Contains reports whether a metric equal by value to m is in the set.
func (s *MetricSet) Contains(m Metric) bool {
	_, ok := s.metrics[m.key()]

	return ok
}

// Metrics returns the elements of the set in unspecified order.
func (s *MetricSet) Metrics() []Metric {
	metrics := make([]Metric, 0, len(s.metrics))

	for _, m := range s.metrics {
		metrics = append(metrics, m)
	}

	return metrics
}

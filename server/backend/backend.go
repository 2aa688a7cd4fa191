// Package backend is the in-memory store behind the test server.
package backend

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sps-metrics/go-opentsdb"
)

// Backend stores the metrics accepted by the test server and lets tests
// inject failures for specific put attempts.
type Backend struct {
	lock sync.RWMutex

	metrics []opentsdb.Metric

	putCount int
	failPuts map[int]bool
}

func New() *Backend {
	return &Backend{
		failPuts: make(map[int]bool),
	}
}

// FailPut marks the given put attempts (1-based, counted across the lifetime
// of the backend) to be rejected.
func (b *Backend) FailPut(attempts ...int) {
	b.lock.Lock()
	defer b.lock.Unlock()

	for _, n := range attempts {
		b.failPuts[n] = true
	}
}

// AddMetrics records one put attempt. It returns an error when the attempt
// was marked to fail or when any metric is malformed; nothing is stored in
// that case.
func (b *Backend) AddMetrics(metrics []opentsdb.Metric) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.putCount++

	if b.failPuts[b.putCount] {
		return errors.New("injected put failure")
	}

	for _, m := range metrics {
		if m.Name == "" {
			return fmt.Errorf("metric name is required")
		}
	}

	b.metrics = append(b.metrics, metrics...)

	return nil
}

// GetMetrics returns every metric stored so far.
func (b *Backend) GetMetrics() []opentsdb.Metric {
	b.lock.RLock()
	defer b.lock.RUnlock()

	metrics := make([]opentsdb.Metric, len(b.metrics))

	copy(metrics, b.metrics)

	return metrics
}

// PutCount returns the number of put attempts handled so far, failed ones
// included.
func (b *Backend) PutCount() int {
	b.lock.RLock()
	defer b.lock.RUnlock()

	return b.putCount
}

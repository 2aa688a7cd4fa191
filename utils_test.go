package opentsdb_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/sps-metrics/go-opentsdb"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestMetrics(n int) []opentsdb.Metric {
	metrics := make([]opentsdb.Metric, 0, n)

	for i := 0; i < n; i++ {
		metric := opentsdb.NewMetric(fmt.Sprintf("sys.test.%v", uuid.New()), int64(1600000000+i), float64(i)).
			WithTag("host", "web01")

		metrics = append(metrics, metric)
	}

	return metrics
}

package opentsdb

import (
	"context"

	"github.com/go-resty/resty/v2"
)

// SendObserver receives the outcome of one batch submission attempt.
type SendObserver func(BatchResult)

// BatchResult describes one attempted batch submission.
type BatchResult struct {
	// Size is the number of metrics in the batch.
	Size int

	// Err is nil when the batch was accepted by the server.
	Err error
}

// Send submits the given metrics to the server. Equal metrics are
// de-duplicated before submission.
//
// Send is fire-and-forget: it blocks until every batch has been attempted but
// reports nothing back. Failures are logged and delivered to registered
// observers; a failed batch never prevents the remaining batches from being
// attempted.
func (c *Client) Send(ctx context.Context, metrics ...Metric) {
	c.SendSet(ctx, NewMetricSet(metrics...))
}

// SendSet submits every metric in the set to the server, splitting the set
// into batches of at most the configured batch size limit. An empty set
// issues no requests.
//
// Like Send, it is fire-and-forget; see Send for the failure contract.
func (c *Client) SendSet(ctx context.Context, set *MetricSet) {
	if set.Len() == 0 {
		return
	}

	for _, batch := range splitIntoBatches(set.Metrics(), c.batchSizeLimit.Load()) {
		if len(batch) == 0 {
			continue
		}

		res := BatchResult{Size: len(batch), Err: c.putMetrics(ctx, batch)}

		if res.Err != nil {
			c.log.WithError(res.Err).WithField("batchSize", res.Size).Error("Failed to submit metric batch")
		}

		c.notifyObservers(res)
	}
}

func (c *Client) putMetrics(ctx context.Context, batch []Metric) error {
	for _, m := range batch {
		if err := m.validate(); err != nil {
			return err
		}
	}

	return c.do(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(batch).Post(putPath)
	})
}

func (c *Client) do(ctx context.Context, fn func(*resty.Request) (*resty.Response, error)) error {
	if _, err := fn(c.rc.R().SetContext(ctx)); err != nil {
		return err
	}

	return nil
}

/*
Package opentsdb provides a client that submits time-series metrics to an
OpenTSDB server over its HTTP API.

Metrics are de-duplicated into a set, optionally split into size-bounded
batches, and each batch is posted as a single JSON request. A failing batch is
logged and does not prevent the remaining batches from being attempted.

	client, err := opentsdb.New("http://opentsdb:4242",
		opentsdb.WithBatchSizeLimit(10),
	)

	m := opentsdb.NewMetric("sys.cpu.user", time.Now().Unix(), 42).
		WithTag("host", "web01")
	client.Send(context.Background(), m)
*/
package opentsdb

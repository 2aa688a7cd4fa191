package opentsdb_test

import (
	"context"
	"fmt"
	"time"

	"github.com/sps-metrics/go-opentsdb"
)

func Example() {
	client, err := opentsdb.New("http://opentsdb:4242",
		opentsdb.WithBasicAuth("login", "password"),
		opentsdb.WithBatchSizeLimit(10),
	)
	if err != nil {
		panic(err)
	}
	defer client.Close()

	client.AddSendObserver(func(res opentsdb.BatchResult) {
		if res.Err != nil {
			fmt.Printf("batch of %d metrics failed: %v\n", res.Size, res.Err)
		}
	})

	metric := opentsdb.NewMetric("sys.cpu.user", time.Now().Unix(), 42).
		WithTag("host", "web01")

	client.Send(context.Background(), metric)
}

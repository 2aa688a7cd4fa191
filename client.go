package opentsdb

import (
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

const (
	// putPath is the fixed metrics-ingestion endpoint. It never varies per call.
	putPath = "/api/put"

	// versionPath is the server build-info endpoint.
	versionPath = "/api/version"
)

// Client is an OpenTSDB HTTP API client.
//
// A client is created once and holds its transport for its whole lifetime;
// timeouts and credentials are fixed at construction. Send and SendSet hold
// no mutable state across invocations, so a single client may be shared by
// concurrent goroutines.
type Client struct {
	rc *resty.Client

	log logrus.FieldLogger

	// batchSizeLimit is the maximum number of metrics submitted per request.
	// Zero means no splitting.
	batchSizeLimit atomicInt

	observers []SendObserver
	hookLock  sync.RWMutex
}

// New returns a client for the OpenTSDB server at hostURL.
func New(hostURL string, opts ...Option) (*Client, error) {
	builder := newClientBuilder(hostURL)

	for _, opt := range opts {
		opt.config(builder)
	}

	return builder.build()
}

// SetBatchSizeLimit changes the maximum number of metrics submitted per
// request. It applies to subsequent calls only; values <= 0 disable splitting.
func (c *Client) SetBatchSizeLimit(limit int) {
	c.batchSizeLimit.Store(limit)
}

// AddSendObserver registers a callback that receives the outcome of every
// batch submission attempt. Observers are the only channel through which
// per-batch failures are reported to callers.
func (c *Client) AddSendObserver(fn SendObserver) {
	c.hookLock.Lock()
	defer c.hookLock.Unlock()

	c.observers = append(c.observers, fn)
}

// AddPreRequestHook registers a resty middleware invoked before every
// outgoing request.
func (c *Client) AddPreRequestHook(hook resty.RequestMiddleware) {
	c.rc.OnBeforeRequest(hook)
}

// Close releases idle connections held by the underlying transport.
func (c *Client) Close() {
	c.rc.GetClient().CloseIdleConnections()
}

func (c *Client) notifyObservers(res BatchResult) {
	c.hookLock.RLock()
	defer c.hookLock.RUnlock()

	for _, fn := range c.observers {
		fn(res)
	}
}

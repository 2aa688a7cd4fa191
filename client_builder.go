package opentsdb

import (
	"encoding/base64"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultConnectTimeout is the default timeout for establishing a
	// connection to the server.
	DefaultConnectTimeout = 5000 * time.Millisecond

	// DefaultReadTimeout is the default timeout for waiting on the server's
	// response to a request.
	DefaultReadTimeout = 5000 * time.Millisecond

	// DefaultBatchSizeLimit disables batch splitting: all metrics passed to a
	// single send are submitted in one request.
	DefaultBatchSizeLimit = 0
)

type clientBuilder struct {
	hostURL        string
	connectTimeout time.Duration
	readTimeout    time.Duration
	login          string
	password       string
	batchSizeLimit int
	transport      http.RoundTripper
	logger         logrus.FieldLogger
	debug          bool
}

func newClientBuilder(hostURL string) *clientBuilder {
	return &clientBuilder{
		hostURL:        hostURL,
		connectTimeout: DefaultConnectTimeout,
		readTimeout:    DefaultReadTimeout,
		batchSizeLimit: DefaultBatchSizeLimit,
		logger:         logrus.StandardLogger().WithField("pkg", "go-opentsdb"),
	}
}

func (builder *clientBuilder) build() (*Client, error) {
	if _, err := url.ParseRequestURI(builder.hostURL); err != nil {
		return nil, fmt.Errorf("invalid host URL %q: %w", builder.hostURL, err)
	}

	if builder.batchSizeLimit < 0 {
		return nil, fmt.Errorf("batch size limit must not be negative, got %d", builder.batchSizeLimit)
	}

	c := &Client{
		rc:  resty.New(),
		log: builder.logger,
	}

	c.batchSizeLimit.Store(builder.batchSizeLimit)

	// Set the API host.
	c.rc.SetBaseURL(builder.hostURL)

	// Set the transport.
	if builder.transport != nil {
		c.rc.SetTransport(builder.transport)
	} else {
		c.rc.SetTransport(&http.Transport{
			DialContext:           (&net.Dialer{Timeout: builder.connectTimeout}).DialContext,
			ResponseHeaderTimeout: builder.readTimeout,
		})
	}

	// Set the debug flag.
	c.rc.SetDebug(builder.debug)

	// Decorate every outgoing request with basic auth credentials, when both
	// are present.
	if builder.login != "" && builder.password != "" {
		header := basicAuthHeader(builder.login, builder.password)

		c.rc.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			req.SetHeader("Authorization", header)
			return nil
		})
	}

	// Set middleware.
	c.rc.OnAfterResponse(catchAPIError)

	// Set the data type of API errors.
	c.rc.SetError(&Error{})

	return c, nil
}

func basicAuthHeader(login, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(login+":"+password))
}

// Option represents a type that can be used to configure the client.
type Option interface {
	config(*clientBuilder)
}

// WithConnectTimeout sets the timeout for establishing a connection to the
// server.
func WithConnectTimeout(timeout time.Duration) Option {
	return &withConnectTimeout{
		timeout: timeout,
	}
}

type withConnectTimeout struct {
	timeout time.Duration
}

func (opt withConnectTimeout) config(builder *clientBuilder) {
	builder.connectTimeout = opt.timeout
}

// WithReadTimeout sets the timeout for waiting on the server's response to a
// request.
func WithReadTimeout(timeout time.Duration) Option {
	return &withReadTimeout{
		timeout: timeout,
	}
}

type withReadTimeout struct {
	timeout time.Duration
}

func (opt withReadTimeout) config(builder *clientBuilder) {
	builder.readTimeout = opt.timeout
}

// WithBasicAuth sets the credentials attached to every outgoing request. The
// Authorization header is only added when both login and password are
// non-empty.
func WithBasicAuth(login, password string) Option {
	return &withBasicAuth{
		login:    login,
		password: password,
	}
}

type withBasicAuth struct {
	login    string
	password string
}

func (opt withBasicAuth) config(builder *clientBuilder) {
	builder.login = opt.login
	builder.password = opt.password
}

// WithBatchSizeLimit sets the maximum number of metrics submitted per
// request. Zero, the default, disables splitting.
func WithBatchSizeLimit(limit int) Option {
	return &withBatchSizeLimit{
		limit: limit,
	}
}

type withBatchSizeLimit struct {
	limit int
}

func (opt withBatchSizeLimit) config(builder *clientBuilder) {
	builder.batchSizeLimit = opt.limit
}

// WithTransport sets the transport used by the client. It replaces the
// default transport entirely, including its connect and read timeouts.
func WithTransport(transport http.RoundTripper) Option {
	return &withTransport{
		transport: transport,
	}
}

type withTransport struct {
	transport http.RoundTripper
}

func (opt withTransport) config(builder *clientBuilder) {
	builder.transport = opt.transport
}

// WithLogger sets the logger through which per-batch submission failures are
// reported.
func WithLogger(logger logrus.FieldLogger) Option {
	return &withLogger{
		logger: logger,
	}
}

type withLogger struct {
	logger logrus.FieldLogger
}

func (opt withLogger) config(builder *clientBuilder) {
	builder.logger = opt.logger
}

// WithDebug controls whether the underlying HTTP client logs requests and
// responses.
func WithDebug(debug bool) Option {
	return &withDebug{
		debug: debug,
	}
}

type withDebug struct {
	debug bool
}

func (opt withDebug) config(builder *clientBuilder) {
	builder.debug = opt.debug
}

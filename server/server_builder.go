package server

import (
	"io"
	"net/http/httptest"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sps-metrics/go-opentsdb"
	"github.com/sps-metrics/go-opentsdb/server/backend"
)

type serverBuilder struct {
	withTLS  bool
	logger   io.Writer
	login    string
	password string
	version  opentsdb.Version
}

func newServerBuilder() *serverBuilder {
	var logger io.Writer

	if os.Getenv("GO_OPENTSDB_SERVER_LOGGER_ENABLED") != "" {
		logger = gin.DefaultWriter
	} else {
		logger = io.Discard
	}

	return &serverBuilder{
		logger: logger,
		version: opentsdb.Version{
			Version: "2.4.1",
			Host:    "opentsdb.local",
			User:    "tsdb",
		},
	}
}

func (builder *serverBuilder) build() *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		r: gin.New(),
		b: backend.New(),

		login:    builder.login,
		password: builder.password,
		version:  builder.version,
	}

	if builder.withTLS {
		s.s = httptest.NewTLSServer(s.r)
	} else {
		s.s = httptest.NewServer(s.r)
	}

	s.r.Use(
		gin.LoggerWithConfig(gin.LoggerConfig{Output: builder.logger}),
		gin.Recovery(),
		s.logCalls(),
	)

	initRouter(s)

	return s
}

// Option represents a type that can be used to configure the server.
type Option interface {
	config(*serverBuilder)
}

// WithTLS controls whether the server should serve over TLS.
func WithTLS(tls bool) Option {
	return &withTLS{
		withTLS: tls,
	}
}

type withTLS struct {
	withTLS bool
}

func (opt withTLS) config(builder *serverBuilder) {
	builder.withTLS = opt.withTLS
}

// WithLogger controls where Gin logs to.
func WithLogger(logger io.Writer) Option {
	return &withLogger{
		logger: logger,
	}
}

type withLogger struct {
	logger io.Writer
}

func (opt withLogger) config(builder *serverBuilder) {
	builder.logger = opt.logger
}

// WithBasicAuth makes the server require the given credentials on every
// request.
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

func (opt withBasicAuth) config(builder *serverBuilder) {
	builder.login = opt.login
	builder.password = opt.password
}

// WithVersion sets the build information returned by the version endpoint.
func WithVersion(version opentsdb.Version) Option {
	return &withVersion{
		version: version,
	}
}

type withVersion struct {
	version opentsdb.Version
}

func (opt withVersion) config(builder *serverBuilder) {
	builder.version = opt.version
}

// Package server implements an in-memory OpenTSDB server for testing clients
// against.
package server

import (
	"net/http/httptest"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/sps-metrics/go-opentsdb"
	"github.com/sps-metrics/go-opentsdb/server/backend"
)

type Server struct {
	// r is the gin router.
	r *gin.Engine

	// s is the underlying server.
	s *httptest.Server

	// b is the server backend, which stores received metrics.
	b *backend.Backend

	// callWatchers records callWatchers received by the server.
	callWatchers     []callWatcher
	callWatchersLock sync.RWMutex

	// login and password, when both set, are required on every request.
	login    string
	password string

	// version is returned by the version endpoint.
	version opentsdb.Version
}

func New(opts ...Option) *Server {
	builder := newServerBuilder()

	for _, opt := range opts {
		opt.config(builder)
	}

	return builder.build()
}

func (s *Server) GetHostURL() string {
	return s.s.URL
}

// AddCallWatcher registers a callback receiving every request/response pair
// handled by the server, optionally restricted to the given paths.
func (s *Server) AddCallWatcher(fn func(Call), paths ...string) {
	s.callWatchersLock.Lock()
	defer s.callWatchersLock.Unlock()

	s.callWatchers = append(s.callWatchers, newCallWatcher(fn, paths...))
}

// FailPut marks the given put attempts (1-based) to be rejected with an API
// error.
func (s *Server) FailPut(attempts ...int) {
	s.b.FailPut(attempts...)
}

// GetMetrics returns every metric stored by the server so far.
func (s *Server) GetMetrics() []opentsdb.Metric {
	return s.b.GetMetrics()
}

// PutCount returns the number of put attempts handled so far, failed ones
// included.
func (s *Server) PutCount() int {
	return s.b.PutCount()
}

func (s *Server) Close() {
	s.s.Close()
}

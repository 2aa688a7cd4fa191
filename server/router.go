package server

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sps-metrics/go-opentsdb"
)

func initRouter(s *Server) {
	if api := s.r.Group("/api", s.requireAuth()); api != nil {
		api.POST("/put", s.handlePutMetrics())
		api.GET("/version", s.handleGetVersion())
	}
}

func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.login == "" && s.password == "" {
			return
		}

		login, password, ok := c.Request.BasicAuth()
		if !ok || login != s.login || password != s.password {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apiError(http.StatusUnauthorized, "authentication required"))
		}
	}
}

func (s *Server) handlePutMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		var metrics []opentsdb.Metric

		if err := c.ShouldBindJSON(&metrics); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, apiError(http.StatusBadRequest, "invalid request body"))
			return
		}

		if err := s.b.AddMetrics(metrics); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, apiError(http.StatusBadRequest, err.Error()))
			return
		}

		c.Status(http.StatusNoContent)
	}
}

func (s *Server) handleGetVersion() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.version)
	}
}

func apiError(code int, message string) opentsdb.Error {
	return opentsdb.Error{
		Detail: opentsdb.ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

func (s *Server) logCalls() gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := io.ReadAll(c.Request.Body)
		if err != nil {
			panic(err)
		} else {
			c.Request.Body = io.NopCloser(bytes.NewReader(req))
		}

		res, err := newBodyWriter(c.Writer)
		if err != nil {
			panic(err)
		} else {
			c.Writer = res
		}

		c.Next()

		s.callWatchersLock.RLock()
		defer s.callWatchersLock.RUnlock()

		for _, call := range s.callWatchers {
			if call.isWatching(c.Request.URL.Path) {
				call.publish(Call{
					ID: uuid.NewString(),

					URL:    c.Request.URL,
					Method: c.Request.Method,
					Status: c.Writer.Status(),

					RequestHeader: c.Request.Header,
					RequestBody:   req,

					ResponseHeader: c.Writer.Header(),
					ResponseBody:   res.bytes(),
				})
			}
		}
	}
}

type bodyWriter struct {
	gin.ResponseWriter

	buf *bytes.Buffer
}

func newBodyWriter(w gin.ResponseWriter) (*bodyWriter, error) {
	if w == nil {
		return nil, errors.New("response writer is nil")
	}

	return &bodyWriter{
		ResponseWriter: w,

		buf: &bytes.Buffer{},
	}, nil
}

func (w bodyWriter) Write(b []byte) (int, error) {
	if n, err := w.buf.Write(b); err != nil {
		return n, err
	}

	return w.ResponseWriter.Write(b)
}

func (w bodyWriter) bytes() []byte {
	return w.buf.Bytes()
}

package opentsdb_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sps-metrics/go-opentsdb"
	"github.com/sps-metrics/go-opentsdb/server"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	want := opentsdb.Version{
		Version:      "2.4.0",
		FullRevision: uuid.NewString(),
		Timestamp:    "1600000000",
		Host:         "tsdb01",
		User:         "ops",
	}

	s := server.New(server.WithVersion(want))
	defer s.Close()

	c, err := opentsdb.New(s.GetHostURL())
	require.NoError(t, err)
	defer c.Close()

	got, err := c.Version(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestVersionRequiresAuth(t *testing.T) {
	s := server.New(server.WithBasicAuth("login", "password"))
	defer s.Close()

	c, err := opentsdb.New(s.GetHostURL())
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Version(context.Background())
	require.Error(t, err)
}

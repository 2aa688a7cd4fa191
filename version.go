package opentsdb

import "context"

// Version describes the server build, as reported by the version endpoint.
type Version struct {
	Version      string `json:"version"`
	FullRevision string `json:"full_revision"`
	Timestamp    string `json:"timestamp"`
	Host         string `json:"host"`
	User         string `json:"user"`
}

// Version returns the build information of the server.
func (c *Client) Version(ctx context.Context) (Version, error) {
	var version Version

	if _, err := c.rc.R().SetContext(ctx).SetResult(&version).Get(versionPath); err != nil {
		return Version{}, err
	}

	return version, nil
}

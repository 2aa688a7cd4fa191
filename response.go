package opentsdb

import (
	"fmt"

	"github.com/go-resty/resty/v2"
)

// Error is the error envelope returned by the OpenTSDB HTTP API.
type Error struct {
	Detail ErrorDetail `json:"error"`
}

// ErrorDetail carries the code and message of an API error.
type ErrorDetail struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (err Error) Error() string {
	return err.Detail.Message
}

func catchAPIError(_ *resty.Client, res *resty.Response) error {
	if !res.IsError() {
		return nil
	}

	var err error

	if apiErr, ok := res.Error().(*Error); ok && apiErr.Detail.Message != "" {
		err = apiErr
	} else {
		err = fmt.Errorf("%v", res.Status())
	}

	return fmt.Errorf("%v: %w", res.StatusCode(), err)
}

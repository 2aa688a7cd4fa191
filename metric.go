package opentsdb

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

// Metric is a single OpenTSDB data point. It has value semantics: the client
// never mutates a metric after it has been handed over, and two metrics with
// the same name, timestamp, value and tags are considered the same data point.
type Metric struct {
	// Name is the metric name. It must be non-empty.
	Name string `json:"metric"`

	// Timestamp is the epoch timestamp of the data point. The unit (seconds
	// or milliseconds) is interpreted by the server.
	Timestamp int64 `json:"timestamp"`

	// Value is the numeric value of the data point.
	Value float64 `json:"value"`

	// Tags are the key/value pairs associated with the data point.
	Tags map[string]string `json:"tags,omitempty"`
}

// NewMetric returns a metric with the given name, timestamp and value.
func NewMetric(name string, timestamp int64, value float64) Metric {
	return Metric{
		Name:      name,
		Timestamp: timestamp,
		Value:     value,
	}
}

// WithTag returns a copy of the metric with the given tag set. The receiver
// is left unmodified.
func (m Metric) WithTag(key, value string) Metric {
	tags := make(map[string]string, len(m.Tags)+1)

	for k, v := range m.Tags {
		tags[k] = v
	}

	tags[key] = value

	m.Tags = tags

	return m
}

func (m Metric) validate() error {
	if m.Name == "" {
		return errors.New("metric name is required")
	}

	return nil
}

// key returns the canonical identity of the metric. Metrics that are equal by
// value map to the same key, regardless of how their tags were assembled.
func (m Metric) key() string {
	keys := make([]string, 0, len(m.Tags))

	for k := range m.Tags {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	var b strings.Builder

	b.WriteString(m.Name)
	b.WriteByte(0x1f)
	b.WriteString(strconv.FormatInt(m.Timestamp, 10))
	b.WriteByte(0x1f)
	b.WriteString(strconv.FormatFloat(m.Value, 'g', -1, 64))

	for _, k := range keys {
		b.WriteByte(0x1f)
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(m.Tags[k])
	}

	return b.String()
}

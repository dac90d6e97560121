package domain

import (
	"fmt"
	"time"
)

// TimestampLayout is the OCPI DateTime form used in envelopes: UTC, whole
// seconds, literal Z.
const TimestampLayout = "2006-01-02T15:04:05Z"

// StatusCode is the OCPI status_code carried in every envelope.
type StatusCode int

const (
	StatusSuccess        StatusCode = 1000
	StatusClientError    StatusCode = 2000
	StatusUnknownVersion StatusCode = 2003
	StatusServerError    StatusCode = 3000
)

var statusMessages = map[StatusCode]string{
	StatusSuccess:        "Success",
	StatusClientError:    "Generic client error",
	StatusUnknownVersion: "Unknown version",
	StatusServerError:    "Generic server error",
}

// Message returns the fixed status_message paired with the code.
func (c StatusCode) Message() string {
	return statusMessages[c]
}

// Timestamp marshals as TimestampLayout in UTC.
type Timestamp time.Time

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(t).UTC().Format(TimestampLayout) + `"`), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("timestamp must be a JSON string, got %s", b)
	}
	parsed, err := time.Parse(TimestampLayout, string(b[1:len(b)-1]))
	if err != nil {
		return fmt.Errorf("parse timestamp: %w", err)
	}
	*t = Timestamp(parsed)
	return nil
}

// Response is the OCPI envelope. Data is a pointer so error envelopes can
// leave it out entirely.
type Response[T any] struct {
	Data          *T         `json:"data,omitempty"`
	StatusCode    StatusCode `json:"status_code"`
	StatusMessage string     `json:"status_message"`
	Timestamp     Timestamp  `json:"timestamp"`
}

// Success wraps data in a 1000 envelope.
func Success[T any](data T, now time.Time) Response[T] {
	return Response[T]{
		Data:          &data,
		StatusCode:    StatusSuccess,
		StatusMessage: StatusSuccess.Message(),
		Timestamp:     Timestamp(now),
	}
}

// Failure builds a data-less envelope for code.
func Failure(code StatusCode, now time.Time) Response[struct{}] {
	return Response[struct{}]{
		StatusCode:    code,
		StatusMessage: code.Message(),
		Timestamp:     Timestamp(now),
	}
}

// Health is the body of GET /health. Timestamp uses the default time.Time
// encoding (RFC 3339 with fractional seconds).
type Health struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

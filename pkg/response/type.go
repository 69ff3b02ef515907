package response

import (
	"encoding/json"
	"time"
)

// Resp is the envelope shared by every non-chat endpoint.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// Date renders as DateFormat in UTC. The zero value renders as null.
type Date time.Time

func (d Date) MarshalJSON() ([]byte, error) {
	return marshalTime(time.Time(d), DateFormat)
}

// DateTime renders as RFC 3339 in UTC. The zero value renders as null.
type DateTime time.Time

func (d DateTime) MarshalJSON() ([]byte, error) {
	return marshalTime(time.Time(d), DateTimeFormat)
}

func marshalTime(t time.Time, layout string) ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(layout))
}

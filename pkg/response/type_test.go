package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-assistant/pkg/response"
)

func TestDate_MarshalJSON(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"date in UTC", response.Date(time.Date(2019, 3, 14, 1, 0, 0, 0, loc)), `"2019-03-13"`},
		{"datetime in UTC", response.DateTime(time.Date(2024, 5, 1, 15, 30, 0, 0, loc)), `"2024-05-01T08:30:00Z"`},
		{"zero date", response.Date(time.Time{}), `null`},
		{"zero datetime", response.DateTime(time.Time{}), `null`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(b))
		})
	}
}

package dates_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/finboard/internal/dates"
)

func TestDate_JSON(t *testing.T) {
	type payload struct {
		DueDate dates.Date `json:"dueDate"`
	}

	tests := []struct {
		name  string
		input string
		want  dates.Date
	}{
		{name: "DateOnly", input: `{"dueDate":"2024-03-10"}`, want: dates.New(2024, time.March, 10)},
		{name: "Timestamp", input: `{"dueDate":"2024-03-10T15:04:05Z"}`, want: dates.New(2024, time.March, 10)},
		{name: "Blank", input: `{"dueDate":""}`, want: dates.Date{}},
		{name: "Null", input: `{"dueDate":null}`, want: dates.Date{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			require.NoError(t, json.Unmarshal([]byte(tt.input), &p))
			assert.True(t, tt.want.Equal(p.DueDate), "got %s", p.DueDate)
		})
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(map[string]dates.Date{
		"set":   dates.New(2023, time.October, 27),
		"unset": {},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"set":"2023-10-27","unset":null}`, string(b))
}

func TestParse_Invalid(t *testing.T) {
	_, err := dates.Parse("27/10/2023")
	assert.Error(t, err)
}

package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid date", input: "2024-01-01"},
		{name: "valid leap day", input: "2024-02-29"},
		{name: "wrong separator", input: "2024/01/01", wantErr: true},
		{name: "datetime instead of date", input: "2024-01-01T10:00:00Z", wantErr: true},
		{name: "day first", input: "01-01-2024", wantErr: true},
		{name: "not a date", input: "tomorrow", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, d.String())
		})
	}
}

func TestDateJSON(t *testing.T) {
	t.Parallel()

	d := NewDate(2024, time.March, 15)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-15"`, string(data))

	var decoded Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-15"`), &decoded))
	assert.Equal(t, d, decoded)

	var bad Date
	assert.ErrorIs(t, json.Unmarshal([]byte(`"15/03/2024"`), &bad), ErrInvalidDate)
}

func TestDateScan(t *testing.T) {
	t.Parallel()

	var d Date
	require.NoError(t, d.Scan(time.Date(2024, time.March, 15, 23, 30, 0, 0, time.FixedZone("X", 3600))))
	assert.Equal(t, "2024-03-15", d.String(), "time-of-day and zone are discarded")

	var fromString Date
	require.NoError(t, fromString.Scan("2024-03-15"))
	assert.Equal(t, "2024-03-15", fromString.String())

	var bad Date
	assert.Error(t, bad.Scan(12345))
}

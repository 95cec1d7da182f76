package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	d := NewDate(2025, time.May, 1)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-05-01"`, string(b))

	var parsed Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-05-02"`), &parsed))
	assert.Equal(t, "2025-05-02", parsed.String())

	assert.Error(t, json.Unmarshal([]byte(`"02/05/2025"`), &parsed))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2025, 5, 3, 14, 30, 0, 0, time.UTC)))
	// The time component is dropped.
	assert.Equal(t, "2025-05-03", d.String())

	require.NoError(t, d.Scan("2025-05-04"))
	assert.Equal(t, "2025-05-04", d.String())

	assert.Error(t, d.Scan(42))
}

func TestDateAddDays(t *testing.T) {
	d := NewDate(2025, time.April, 29)
	assert.Equal(t, "2025-05-01", d.AddDays(2).String())
}

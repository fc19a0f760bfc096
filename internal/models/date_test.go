package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateRoundTripsDayOnly(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2015-03-09"`), &d))
	assert.Equal(t, "2015-03-09", d.String())

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2015-03-09"`, string(out))
}

func TestDateAcceptsTimestampInput(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2015-03-09T17:45:00-05:00"`), &d))
	assert.Equal(t, "2015-03-09", d.String())
}

func TestDateRejectsMalformedInput(t *testing.T) {
	var d Date
	err := json.Unmarshal([]byte(`"09/03/2015"`), &d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected YYYY-MM-DD")
}

func TestDateScansPostgresValues(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2020, 9, 1, 13, 30, 0, 0, time.UTC)))
	assert.Equal(t, "2020-09-01", d.String())

	require.NoError(t, d.Scan([]byte("2020-09-02")))
	assert.Equal(t, "2020-09-02", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())
}

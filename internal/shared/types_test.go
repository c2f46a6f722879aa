package shared

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("1974-05-01")
	require.NoError(t, err)
	assert.Equal(t, "1974-05-01", d.String())

	_, err = ParseDate("01/05/1974")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestDateJSONRoundTrip(t *testing.T) {
	d, err := ParseDate("2020-02-29")
	require.NoError(t, err)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2020-02-29"`, string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, d.String(), parsed.String())
}

func TestDateUnmarshalNull(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte("null"), &d))
	assert.True(t, d.IsZero())
}

func TestDateUnmarshalRejectsNonString(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte("20200229"), &d))
}

func TestNewDateDropsTimeOfDay(t *testing.T) {
	d := NewDate(time.Date(1974, 5, 1, 15, 30, 45, 0, time.UTC))
	assert.Equal(t, "1974-05-01", d.String())
}

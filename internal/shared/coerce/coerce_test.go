package coerce_test

import (
	"encoding/json"
	"testing"
	"time"

	"go-attendance/internal/shared/coerce"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber_Float64(t *testing.T) {
	cases := []struct {
		name string
		body string
		want float64
		ok   bool
	}{
		{"json number", `{"v": 12.5}`, 12.5, true},
		{"numeric string", `{"v": "-3.25"}`, -3.25, true},
		{"padded string", `{"v": " 7 "}`, 7, true},
		{"empty string", `{"v": ""}`, 0, false},
		{"word", `{"v": "north"}`, 0, false},
		{"bool", `{"v": true}`, 0, false},
		{"null", `{"v": null}`, 0, false},
		{"missing", `{}`, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var body struct {
				V coerce.Number `json:"v"`
			}
			require.NoError(t, json.Unmarshal([]byte(tc.body), &body))

			got, ok := body.V.Float64()
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNumber_ID(t *testing.T) {
	id, ok := coerce.NewNumber("42").ID()
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)

	_, ok = coerce.NewNumber(1.5).ID()
	assert.False(t, ok)
	_, ok = coerce.NewNumber(0.0).ID()
	assert.False(t, ok)
	_, ok = coerce.ParseID("abc")
	assert.False(t, ok)
}

func TestParseTime(t *testing.T) {
	got, err := coerce.ParseTime("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), got)

	got, err = coerce.ParseTime("2024-03-01T08:30:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 6, 30, 0, 0, time.UTC), got)

	_, err = coerce.ParseTime("yesterday")
	assert.ErrorIs(t, err, coerce.ErrInvalidDate)

	none, err := coerce.ParseOptionalTime(nil)
	assert.NoError(t, err)
	assert.Nil(t, none)
}

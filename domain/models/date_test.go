package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayDateJSON(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		day, err := ParseDayDate("2024-06-10")
		assert.NoError(t, err)

		data, err := json.Marshal(day)
		assert.NoError(t, err)
		assert.Equal(t, `"2024-06-10"`, string(data))

		var parsed DayDate
		assert.NoError(t, json.Unmarshal(data, &parsed))
		assert.True(t, day.Equal(parsed))
	})

	t.Run("Absent date marshals to empty string", func(t *testing.T) {
		data, err := json.Marshal(DayDate{})
		assert.NoError(t, err)
		assert.Equal(t, `""`, string(data))
	})

	t.Run("Empty string and null unmarshal to absent", func(t *testing.T) {
		for _, raw := range []string{`""`, `null`} {
			var day DayDate
			assert.NoError(t, json.Unmarshal([]byte(raw), &day))
			assert.False(t, day.Valid)
		}
	})

	t.Run("Garbage is rejected", func(t *testing.T) {
		var day DayDate
		assert.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &day))
	})
}

func TestDayDateScan(t *testing.T) {
	t.Run("Time value keeps only the date", func(t *testing.T) {
		var day DayDate
		assert.NoError(t, day.Scan(time.Date(2024, 6, 10, 15, 4, 5, 0, time.Local)))
		assert.Equal(t, "2024-06-10", day.String())
	})

	t.Run("NULL scans to absent", func(t *testing.T) {
		var day DayDate
		assert.NoError(t, day.Scan(nil))
		assert.False(t, day.Valid)
	})
}

func TestDayDateComparisons(t *testing.T) {
	a, _ := ParseDayDate("2024-06-05")
	b, _ := ParseDayDate("2024-06-10")

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Equal(b))
	assert.True(t, a.AddDays(5).Equal(b))

	none := DayDate{}
	assert.False(t, none.Before(b))
	assert.False(t, b.Before(none))
	assert.True(t, none.Equal(DayDate{}))
}

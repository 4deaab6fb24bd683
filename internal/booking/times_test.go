package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeOptions(t *testing.T) {
	assert := require.New(t)

	options := TimeOptions()
	assert.Len(options, 41)
	assert.Equal("08:00", options[0])
	assert.Equal("08:15", options[1])
	assert.Equal("18:00", options[len(options)-1])
}

func TestEndTimeOptions(t *testing.T) {
	assert := require.New(t)

	options := EndTimeOptions("17:30")
	assert.Equal([]string{"17:45", "18:00"}, options)

	// nothing selectable after the last slot
	assert.Empty(EndTimeOptions("18:00"))

	assert.Len(EndTimeOptions(""), 41)
}

func TestStartTimeOptions(t *testing.T) {
	date := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)

	t.Run("future date offers the full grid", func(t *testing.T) {
		assert := require.New(t)

		now := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
		options, got := StartTimeOptions(date, now)
		assert.Len(options, 41)
		assert.Equal(date, got)
	})

	t.Run("today filters past times", func(t *testing.T) {
		assert := require.New(t)

		now := time.Date(2026, 9, 3, 17, 20, 0, 0, time.UTC)
		options, got := StartTimeOptions(date, now)
		assert.Equal([]string{"17:30", "17:45", "18:00"}, options)
		assert.Equal(date, got)
	})

	t.Run("past closing time rolls to tomorrow", func(t *testing.T) {
		assert := require.New(t)

		now := time.Date(2026, 9, 3, 19, 0, 0, 0, time.UTC)
		options, got := StartTimeOptions(date, now)
		assert.Len(options, 41)
		assert.Equal(date.AddDate(0, 0, 1), got)
	})
}

func TestSlotTimes(t *testing.T) {
	assert := assert.New(t)

	from, to, ok := SlotTimes(SlotMorning)
	assert.True(ok)
	assert.Equal("08:00", from)
	assert.Equal("12:00", to)

	from, to, ok = SlotTimes(SlotAfternoon)
	assert.True(ok)
	assert.Equal("12:00", from)
	assert.Equal("18:00", to)

	from, to, ok = SlotTimes(SlotFullDay)
	assert.True(ok)
	assert.Equal("08:00", from)
	assert.Equal("18:00", to)

	_, _, ok = SlotTimes(Slot("lunch"))
	assert.False(ok)
}

func TestWithSeconds(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("09:00:00", WithSeconds("09:00"))
	assert.Equal("09:00:00", WithSeconds("09:00:00"))
}

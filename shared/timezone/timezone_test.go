package timezone_test

import (
	"frontdesk/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	assert.Equal(t, time.UTC, timezone.Load(""))
	assert.Equal(t, time.UTC, timezone.Load("Mars/Olympus_Mons"))
	assert.Equal(t, "Asia/Jakarta", timezone.Load("Asia/Jakarta").String())
}

func TestDayAndClockUseAppTimezone(t *testing.T) {
	previous := timezone.Location()
	t.Cleanup(func() { timezone.Use(previous) })

	timezone.Use(time.FixedZone("WIB", 7*60*60))

	// 20:30 UTC is already the next morning in UTC+7.
	instant := time.Date(2024, 5, 1, 20, 30, 0, 0, time.UTC)

	assert.Equal(t, "2024-05-02", timezone.Day(instant))
	assert.Equal(t, "03:30 AM", timezone.Clock(instant))
	assert.Equal(t, "WIB", timezone.ToAppTime(instant).Location().String())

	parsed, err := timezone.Parse("2006-01-02", "2024-05-02")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 17, 0, 0, 0, time.UTC), parsed.UTC())
}

func TestUseNilResetsToUTC(t *testing.T) {
	previous := timezone.Location()
	t.Cleanup(func() { timezone.Use(previous) })

	timezone.Use(nil)

	assert.Equal(t, time.UTC, timezone.Location())
	assert.Equal(t, time.UTC, timezone.Now().Location())
}

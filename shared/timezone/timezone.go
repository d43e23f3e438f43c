package timezone

import (
	"frontdesk/config"
	"frontdesk/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultZone = "UTC"

var (
	appLocation *time.Location
)

func init() {
	appLocation = Load(config.Get().App.Timezone)
}

// Load resolves an IANA zone name. Empty or unknown names fall back to UTC.
func Load(name string) *time.Location {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")

		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to " + defaultZone)

		return time.UTC
	}

	log.Info().Str("timezone", loc.String()).Msg("Application timezone initialized")

	return loc
}

// Use replaces the application timezone. A nil location resets it to UTC.
func Use(loc *time.Location) {
	if loc == nil {
		loc = time.UTC
	}

	appLocation = loc
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(Location())
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	return t.In(Location())
}

func Location() *time.Location {
	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, Location())
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// Day is the local calendar date of t, as stored in date-only columns.
func Day(t time.Time) string {
	return Format(t, constant.DayFormat)
}

// Clock is the local wall-clock time of t as shown to desk staff.
func Clock(t time.Time) string {
	return Format(t, constant.ClockFormat)
}

package timezone

import "time"

const DefaultTimezone = "UTC"

const DateLayout = "2006-01-02"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	return time.UTC
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseDate parses a YYYY-MM-DD calendar date at midnight in tz.
func ParseDate(tz, value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, Location(tz))
}

package validators

import "time"

// IsTimeOfDay accepts 24h HH:MM values.
func IsTimeOfDay(value string) bool {
	if len(value) != 5 {
		return false
	}
	_, err := time.Parse("15:04", value)
	return err == nil
}

package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// Wire formats for session timestamps and calendar dates. Timestamps are
// naive local times, no zone information on the wire.
const (
	DateTimeLayout = "2006-01-02 15:04:05"
	DateLayout     = "2006-01-02"
)

// ParseDuration parses a duration string, returns default duration on error.
// Moved from internal/config package.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		// Use the global logger here, assuming logger might not be configured when this is called.
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// ParseLocalDateTime parses a "YYYY-MM-DD HH:MM:SS" timestamp in the
// server's local zone.
func ParseLocalDateTime(value string) (time.Time, error) {
	return time.ParseInLocation(DateTimeLayout, value, time.Local)
}

// FormatLocalDateTime renders a timestamp in the wire format
func FormatLocalDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// ParseDate parses a "YYYY-MM-DD" calendar date in the server's local zone
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, time.Local)
}

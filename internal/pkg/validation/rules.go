package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Clock time pattern - 24h HH:MM
	ClockTimePattern = `^([01]\d|2[0-3]):[0-5]\d$`

	// Calendar date pattern - YYYY-MM-DD
	DatePattern = `^\d{4}-\d{2}-\d{2}$`

	// Password min length
	PasswordMinLength = 8

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email     *regexp.Regexp
	ClockTime *regexp.Regexp
	Date      *regexp.Regexp
}{
	Email:     regexp.MustCompile(EmailPattern),
	ClockTime: regexp.MustCompile(ClockTimePattern),
	Date:      regexp.MustCompile(DatePattern),
}

// IsValidEmail checks the email format
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// IsValidClockTime checks a 24h HH:MM clock string
func IsValidClockTime(value string) bool {
	return CompiledPatterns.ClockTime.MatchString(value)
}

// IsValidDate checks a YYYY-MM-DD calendar date string
func IsValidDate(value string) bool {
	return CompiledPatterns.Date.MatchString(value)
}

package validation

import "testing"

func TestIsValidClockTime(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"00:00", true},
		{"09:00", true},
		{"17:30", true},
		{"23:59", true},
		{"24:00", false},
		{"9:00", false},
		{"09:60", false},
		{"09-00", false},
		{"", false},
		{"09:00:00", false},
	}

	for _, tt := range tests {
		if got := IsValidClockTime(tt.value); got != tt.want {
			t.Errorf("IsValidClockTime(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"2025-03-10", true},
		{"2025-3-10", false},
		{"10-03-2025", false},
		{"2025/03/10", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidDate(tt.value); got != tt.want {
			t.Errorf("IsValidDate(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"mentor@example.com", true},
		{"first.last+tag@sub.example.org", true},
		{"no-at-sign", false},
		{"missing@tld", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidEmail(tt.value); got != tt.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

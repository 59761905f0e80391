package domain

import (
	"errors"
	"testing"
	"time"
)

// March 10 2025 is a Monday.
var monday = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func TestContainsSlot(t *testing.T) {
	weekdayWindow := &Availability{
		Days:      []string{"Monday", "Wednesday"},
		StartTime: "09:00",
		EndTime:   "12:00",
	}

	tests := []struct {
		name         string
		availability *Availability
		date         time.Time
		start        ClockTime
		end          ClockTime
		want         bool
	}{
		{
			name:         "slot inside window on matching day",
			availability: weekdayWindow,
			date:         monday,
			start:        "09:00",
			end:          "10:00",
			want:         true,
		},
		{
			name:         "slot fills entire window",
			availability: weekdayWindow,
			date:         monday,
			start:        "09:00",
			end:          "12:00",
			want:         true,
		},
		{
			name:         "end exceeds window even though day matches",
			availability: weekdayWindow,
			date:         monday,
			start:        "13:00",
			end:          "14:00",
			want:         false,
		},
		{
			name:         "start before window",
			availability: weekdayWindow,
			date:         monday,
			start:        "08:00",
			end:          "09:00",
			want:         false,
		},
		{
			name:         "weekday not in days",
			availability: weekdayWindow,
			date:         monday.AddDate(0, 0, 1), // Tuesday
			start:        "09:00",
			end:          "10:00",
			want:         false,
		},
		{
			name:         "empty days means unavailable",
			availability: &Availability{Days: nil, StartTime: "09:00", EndTime: "17:00"},
			date:         monday,
			start:        "09:00",
			end:          "10:00",
			want:         false,
		},
		{
			name:         "nil availability means unavailable",
			availability: nil,
			date:         monday,
			start:        "09:00",
			end:          "10:00",
			want:         false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.availability.ContainsSlot(tt.date, tt.start, tt.end)
			if got != tt.want {
				t.Fatalf("ContainsSlot(%v, %s, %s) = %v, want %v", tt.date, tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestAvailabilityValidate(t *testing.T) {
	tests := []struct {
		name         string
		availability Availability
		err          error
	}{
		{
			name:         "valid window",
			availability: Availability{Days: []string{"Monday"}, StartTime: "09:00", EndTime: "12:00"},
		},
		{
			name:         "empty days still valid",
			availability: Availability{StartTime: "09:00", EndTime: "12:00"},
		},
		{
			name:         "unknown weekday name",
			availability: Availability{Days: []string{"Funday"}, StartTime: "09:00", EndTime: "12:00"},
			err:          ErrInvalidWeekday,
		},
		{
			name:         "abbreviated weekday rejected",
			availability: Availability{Days: []string{"Mon"}, StartTime: "09:00", EndTime: "12:00"},
			err:          ErrInvalidWeekday,
		},
		{
			name:         "duplicate weekday",
			availability: Availability{Days: []string{"Monday", "Monday"}, StartTime: "09:00", EndTime: "12:00"},
			err:          ErrDuplicateWeekday,
		},
		{
			name:         "malformed start time",
			availability: Availability{Days: []string{"Monday"}, StartTime: "9am", EndTime: "12:00"},
			err:          ErrInvalidClockTime,
		},
		{
			name:         "inverted window",
			availability: Availability{Days: []string{"Monday"}, StartTime: "12:00", EndTime: "09:00"},
			err:          ErrInvertedTimeWindow,
		},
		{
			name:         "zero-length window",
			availability: Availability{Days: []string{"Monday"}, StartTime: "09:00", EndTime: "09:00"},
			err:          ErrInvertedTimeWindow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.availability.Validate()
			if tt.err == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.err) {
				t.Fatalf("Validate() = %v, want %v", err, tt.err)
			}
		})
	}
}

func TestDecodeAvailabilityCanonicalShape(t *testing.T) {
	raw := []byte(`{"days":["Monday","Friday"],"startTime":"09:00","endTime":"17:00"}`)

	availability, err := DecodeAvailability(raw)
	if err != nil {
		t.Fatalf("decode availability: %v", err)
	}
	if availability == nil {
		t.Fatal("expected non-nil availability")
	}
	if len(availability.Days) != 2 || availability.Days[0] != "Monday" {
		t.Fatalf("unexpected days: %v", availability.Days)
	}
	if availability.StartTime != "09:00" || availability.EndTime != "17:00" {
		t.Fatalf("unexpected window: %s-%s", availability.StartTime, availability.EndTime)
	}
}

func TestDecodeAvailabilityRejectsNonObjectShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "double-encoded string", raw: `"{\"days\":[\"Monday\"],\"startTime\":\"09:00\",\"endTime\":\"17:00\"}"`},
		{name: "array", raw: `["Monday"]`},
		{name: "number", raw: `42`},
		{name: "truncated object", raw: `{"days":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeAvailability([]byte(tt.raw)); !errors.Is(err, ErrMalformedShape) {
				t.Fatalf("expected shape error, got %v", err)
			}
		})
	}
}

func TestDecodeAvailabilityNull(t *testing.T) {
	for _, raw := range [][]byte{nil, []byte(`null`)} {
		availability, err := DecodeAvailability(raw)
		if err != nil {
			t.Fatalf("decode %q: %v", raw, err)
		}
		if availability != nil {
			t.Fatalf("expected nil availability for %q", raw)
		}
	}
}

func TestEncodeAvailabilityRoundTrip(t *testing.T) {
	original := &Availability{Days: []string{"Tuesday"}, StartTime: "10:00", EndTime: "16:00"}

	raw, err := EncodeAvailability(original)
	if err != nil {
		t.Fatalf("encode availability: %v", err)
	}
	decoded, err := DecodeAvailability(raw)
	if err != nil {
		t.Fatalf("decode availability: %v", err)
	}
	if decoded.StartTime != original.StartTime || decoded.EndTime != original.EndTime {
		t.Fatalf("window changed in round trip: %+v", decoded)
	}
}

func TestEncodeAvailabilityRejectsInvalidWindow(t *testing.T) {
	invalid := &Availability{Days: []string{"Monday"}, StartTime: "18:00", EndTime: "09:00"}
	if _, err := EncodeAvailability(invalid); !errors.Is(err, ErrInvertedTimeWindow) {
		t.Fatalf("expected inverted window error, got %v", err)
	}
}

func TestClockTimeOrdering(t *testing.T) {
	if !ClockTime("09:00").Before("10:30") {
		t.Fatal("expected 09:00 before 10:30")
	}
	if !ClockTime("13:00").After("09:59") {
		t.Fatal("expected 13:00 after 09:59")
	}
	if ClockTime("25:00").Valid() || ClockTime("9:00").Valid() {
		t.Fatal("expected malformed clock times to be invalid")
	}
	if !ClockTime("23:59").Valid() {
		t.Fatal("expected 23:59 to be valid")
	}
}

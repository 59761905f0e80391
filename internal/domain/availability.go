package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Availability errors
var (
	ErrInvalidWeekday     = errors.New("invalid weekday name")
	ErrDuplicateWeekday   = errors.New("duplicate weekday name")
	ErrInvalidClockTime   = errors.New("invalid clock time, expected 24h HH:MM")
	ErrInvertedTimeWindow = errors.New("start time must be before end time")
	ErrMalformedShape     = errors.New("availability must be a JSON object")
)

// weekdayNames is the locale-independent English vocabulary the days set is
// matched against. time.Weekday.String() produces exactly these names.
var weekdayNames = map[string]struct{}{
	"Sunday":    {},
	"Monday":    {},
	"Tuesday":   {},
	"Wednesday": {},
	"Thursday":  {},
	"Friday":    {},
	"Saturday":  {},
}

// Availability is a user's weekly recurring booking window: a set of weekday
// names plus one daily clock-time range. An empty Days set means the user is
// unavailable. This struct is the single canonical representation; it is
// stored as a JSONB object and any other serialized shape is rejected at the
// boundary by DecodeAvailability.
type Availability struct {
	Days      []string  `json:"days"`
	StartTime ClockTime `json:"startTime"`
	EndTime   ClockTime `json:"endTime"`
}

// Validate checks the weekday vocabulary, duplicate days, the clock-time
// format and the window ordering.
func (a *Availability) Validate() error {
	seen := make(map[string]struct{}, len(a.Days))
	for _, day := range a.Days {
		if _, ok := weekdayNames[day]; !ok {
			return fmt.Errorf("%w: %q", ErrInvalidWeekday, day)
		}
		if _, dup := seen[day]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateWeekday, day)
		}
		seen[day] = struct{}{}
	}

	if !a.StartTime.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidClockTime, a.StartTime)
	}
	if !a.EndTime.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidClockTime, a.EndTime)
	}
	if !a.StartTime.Before(a.EndTime) {
		return ErrInvertedTimeWindow
	}

	return nil
}

// ContainsSlot reports whether the window covers the candidate slot: the
// date's weekday name must be in Days, the slot must start no earlier than
// StartTime and end no later than EndTime. A nil availability or an empty
// Days set is simply "unavailable" and yields false, never an error.
func (a *Availability) ContainsSlot(date time.Time, start, end ClockTime) bool {
	if a == nil || len(a.Days) == 0 {
		return false
	}

	weekday := date.Weekday().String()
	dayMatches := false
	for _, day := range a.Days {
		if day == weekday {
			dayMatches = true
			break
		}
	}
	if !dayMatches {
		return false
	}

	return !start.Before(a.StartTime) && !end.After(a.EndTime)
}

// DecodeAvailability deserializes the canonical JSON object form. A JSON
// null decodes to nil (no availability set). Anything that is not an object
// with the expected fields, including the double-encoded string shape older
// clients produced, is rejected.
func DecodeAvailability(raw []byte) (*Availability, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var probe interface{}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedShape, err)
	}
	switch probe.(type) {
	case nil:
		return nil, nil
	case map[string]interface{}:
	default:
		return nil, ErrMalformedShape
	}

	var availability Availability
	if err := json.Unmarshal(raw, &availability); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedShape, err)
	}
	if err := availability.Validate(); err != nil {
		return nil, err
	}

	return &availability, nil
}

// EncodeAvailability serializes to the canonical JSON object form, validating
// first so a malformed window can never reach storage. A nil availability
// encodes to JSON null.
func EncodeAvailability(a *Availability) ([]byte, error) {
	if a == nil {
		return []byte("null"), nil
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(a)
}

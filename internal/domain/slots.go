package domain

import "time"

// Slot is a fixed-duration bookable time range within a day.
type Slot struct {
	Start ClockTime `json:"start"`
	End   ClockTime `json:"end"`
}

// BookableSlots is the enumerated set of one-hour slots sessions are booked
// from. The 12:00-13:00 hour is deliberately absent.
var BookableSlots = []Slot{
	{Start: "09:00", End: "10:00"},
	{Start: "10:00", End: "11:00"},
	{Start: "11:00", End: "12:00"},
	{Start: "13:00", End: "14:00"},
	{Start: "14:00", End: "15:00"},
	{Start: "15:00", End: "16:00"},
	{Start: "16:00", End: "17:00"},
}

// SlotViable reports whether a candidate slot works for a booking: the mentee
// must be available, and at least one of the candidate mentors must be
// available. Mentor selection is exploratory (the mentee's calendar is the
// fixed side), so any viable mentor is enough to surface the slot; the final
// session is always created against the single mentor of the accepted
// request.
func SlotViable(mentee *Availability, mentors []*Availability, date time.Time, start, end ClockTime) bool {
	if !mentee.ContainsSlot(date, start, end) {
		return false
	}

	for _, mentor := range mentors {
		if mentor.ContainsSlot(date, start, end) {
			return true
		}
	}

	return false
}

package domain

import "time"

// BookedSlot is the slice of an existing session the conflict check needs:
// when it starts and whether it is still scheduled.
type BookedSlot struct {
	Start  time.Time
	Status SessionStatus
}

// DateBooked reports whether any still-scheduled session starts on the same
// calendar date as the candidate. The check is deliberately date-granular: a
// user cannot hold two sessions on one day even when the clock ranges would
// not overlap. Per-slot viability is a separate constraint (SlotViable) and
// both must hold for a booking.
func DateBooked(existing []BookedSlot, date time.Time) bool {
	candidateYear, candidateMonth, candidateDay := date.Date()
	for _, slot := range existing {
		if slot.Status != SessionScheduled {
			continue
		}
		year, month, day := slot.Start.Date()
		if year == candidateYear && month == candidateMonth && day == candidateDay {
			return true
		}
	}
	return false
}

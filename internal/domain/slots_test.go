package domain

import (
	"testing"
)

func TestSlotViable(t *testing.T) {
	menteeWindow := &Availability{Days: []string{"Monday"}, StartTime: "09:00", EndTime: "17:00"}
	morningMentor := &Availability{Days: []string{"Monday"}, StartTime: "09:00", EndTime: "12:00"}
	afternoonMentor := &Availability{Days: []string{"Monday"}, StartTime: "13:00", EndTime: "17:00"}
	weekendMentor := &Availability{Days: []string{"Saturday"}, StartTime: "09:00", EndTime: "17:00"}

	tests := []struct {
		name    string
		mentee  *Availability
		mentors []*Availability
		start   ClockTime
		end     ClockTime
		want    bool
	}{
		{
			name:    "mentee and one mentor available",
			mentee:  menteeWindow,
			mentors: []*Availability{morningMentor},
			start:   "09:00",
			end:     "10:00",
			want:    true,
		},
		{
			name:    "any viable mentor suffices",
			mentee:  menteeWindow,
			mentors: []*Availability{weekendMentor, afternoonMentor},
			start:   "14:00",
			end:     "15:00",
			want:    true,
		},
		{
			name:    "no mentor covers the slot",
			mentee:  menteeWindow,
			mentors: []*Availability{morningMentor, weekendMentor},
			start:   "14:00",
			end:     "15:00",
			want:    false,
		},
		{
			name:    "mentee unavailable blocks regardless of mentors",
			mentee:  &Availability{Days: []string{"Friday"}, StartTime: "09:00", EndTime: "17:00"},
			mentors: []*Availability{morningMentor, afternoonMentor},
			start:   "09:00",
			end:     "10:00",
			want:    false,
		},
		{
			name:    "nil mentee availability",
			mentee:  nil,
			mentors: []*Availability{morningMentor},
			start:   "09:00",
			end:     "10:00",
			want:    false,
		},
		{
			name:    "empty mentor set",
			mentee:  menteeWindow,
			mentors: nil,
			start:   "09:00",
			end:     "10:00",
			want:    false,
		},
		{
			name:    "nil mentor entries are skipped",
			mentee:  menteeWindow,
			mentors: []*Availability{nil, afternoonMentor},
			start:   "13:00",
			end:     "14:00",
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SlotViable(tt.mentee, tt.mentors, monday, tt.start, tt.end)
			if got != tt.want {
				t.Fatalf("SlotViable(%s-%s) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestBookableSlotsEnumeration(t *testing.T) {
	if len(BookableSlots) != 7 {
		t.Fatalf("expected 7 bookable slots, got %d", len(BookableSlots))
	}
	if BookableSlots[0].Start != "09:00" || BookableSlots[len(BookableSlots)-1].End != "17:00" {
		t.Fatalf("unexpected slot range: %v", BookableSlots)
	}
	for _, slot := range BookableSlots {
		if !slot.Start.Valid() || !slot.End.Valid() {
			t.Fatalf("malformed slot %v", slot)
		}
		if !slot.Start.Before(slot.End) {
			t.Fatalf("inverted slot %v", slot)
		}
		// The lunch hour is not bookable.
		if slot.Start == "12:00" {
			t.Fatalf("12:00-13:00 should not be bookable")
		}
	}
}

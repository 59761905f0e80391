package domain

import (
	"testing"
	"time"
)

func TestDateBooked(t *testing.T) {
	mondayMorning := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		existing []BookedSlot
		date     time.Time
		want     bool
	}{
		{
			name:     "scheduled session on same date blocks",
			existing: []BookedSlot{{Start: mondayMorning, Status: SessionScheduled}},
			date:     time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			want:     true,
		},
		{
			name:     "different clock time on same date still blocks",
			existing: []BookedSlot{{Start: mondayMorning, Status: SessionScheduled}},
			date:     time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC),
			want:     true,
		},
		{
			name:     "other date is free",
			existing: []BookedSlot{{Start: mondayMorning, Status: SessionScheduled}},
			date:     time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC),
			want:     false,
		},
		{
			name:     "cancelled session does not block",
			existing: []BookedSlot{{Start: mondayMorning, Status: SessionCancelled}},
			date:     mondayMorning,
			want:     false,
		},
		{
			name:     "completed session does not block",
			existing: []BookedSlot{{Start: mondayMorning, Status: SessionCompleted}},
			date:     mondayMorning,
			want:     false,
		},
		{
			name: "one scheduled session among finished ones blocks",
			existing: []BookedSlot{
				{Start: mondayMorning.AddDate(0, 0, -7), Status: SessionCompleted},
				{Start: mondayMorning, Status: SessionScheduled},
			},
			date: mondayMorning,
			want: true,
		},
		{
			name:     "no sessions",
			existing: nil,
			date:     mondayMorning,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DateBooked(tt.existing, tt.date)
			if got != tt.want {
				t.Fatalf("DateBooked(%v) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

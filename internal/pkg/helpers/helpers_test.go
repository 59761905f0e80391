package helpers

import (
	"testing"
	"time"
)

func TestParseLocalDateTime(t *testing.T) {
	parsed, err := ParseLocalDateTime("2025-03-10 09:00:00")
	if err != nil {
		t.Fatalf("ParseLocalDateTime() error = %v", err)
	}
	want := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	if !parsed.Equal(want) {
		t.Errorf("ParseLocalDateTime() = %v, want %v", parsed, want)
	}

	if got := FormatLocalDateTime(parsed); got != "2025-03-10 09:00:00" {
		t.Errorf("FormatLocalDateTime() = %q, want %q", got, "2025-03-10 09:00:00")
	}

	for _, invalid := range []string{"2025-03-10T09:00:00", "10.03.2025 09:00", ""} {
		if _, err := ParseLocalDateTime(invalid); err == nil {
			t.Errorf("ParseLocalDateTime(%q) expected error", invalid)
		}
	}
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2025-03-10")
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	if parsed.Weekday() != time.Monday {
		t.Errorf("2025-03-10 parsed as %v, want Monday", parsed.Weekday())
	}

	if _, err := ParseDate("03/10/2025"); err == nil {
		t.Error("ParseDate with wrong layout expected error")
	}
}

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantOffset uint64
		wantLimit  int
	}{
		{"first page", 1, 10, 0, 10},
		{"third page", 3, 20, 40, 20},
		{"zero page clamps to first", 0, 10, 0, 10},
		{"oversized page size clamps to default", 1, 500, 0, DefaultPageSize},
		{"negative size clamps to default", 2, -1, 10, DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			if offset != tt.wantOffset || limit != tt.wantLimit {
				t.Errorf("CalculateOffsetLimit(%d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.size, offset, limit, tt.wantOffset, tt.wantLimit)
			}
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(42, 2, 10)
	if info.TotalPages != 5 {
		t.Errorf("TotalPages = %d, want 5", info.TotalPages)
	}
	if info.CurrentPage != 2 {
		t.Errorf("CurrentPage = %d, want 2", info.CurrentPage)
	}
	if info.TotalItems != 42 {
		t.Errorf("TotalItems = %d, want 42", info.TotalItems)
	}

	empty := NewPaginationInfo(0, 1, 10)
	if empty.TotalPages != 1 {
		t.Errorf("TotalPages for empty result = %d, want 1", empty.TotalPages)
	}

	past := NewPaginationInfo(10, 9, 10)
	if past.CurrentPage != 1 {
		t.Errorf("CurrentPage past the end = %d, want 1", past.CurrentPage)
	}
}

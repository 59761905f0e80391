package domain

import "testing"

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   float64
	}{
		{name: "single rating", values: []int{5}, want: 5.0},
		{name: "mixed ratings", values: []int{5, 4}, want: 4.5},
		{name: "rounds to one fractional digit", values: []int{5, 4, 4}, want: 4.3},
		{name: "rounds up", values: []int{1, 2, 2}, want: 1.7},
		{name: "all minimum", values: []int{1, 1, 1}, want: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AverageRating(tt.values)
			if got == nil {
				t.Fatal("expected non-nil average")
			}
			if *got != tt.want {
				t.Fatalf("AverageRating(%v) = %v, want %v", tt.values, *got, tt.want)
			}
		})
	}
}

func TestAverageRatingEmpty(t *testing.T) {
	if got := AverageRating(nil); got != nil {
		t.Fatalf("expected nil average for no ratings, got %v", *got)
	}
}

func TestAverageRatingIdempotent(t *testing.T) {
	values := []int{3, 4, 5, 2}
	first := AverageRating(values)
	second := AverageRating(values)
	if *first != *second {
		t.Fatalf("recomputation changed the average: %v vs %v", *first, *second)
	}
}

func TestAverageRatingStaysInBounds(t *testing.T) {
	values := []int{3}
	for _, next := range []int{1, 5, 5, 5, 1} {
		before := *AverageRating(values)
		values = append(values, next)
		after := *AverageRating(values)

		if after < RatingMin || after > RatingMax {
			t.Fatalf("average %v escaped [%d,%d]", after, RatingMin, RatingMax)
		}
		// A new rating can only pull the average toward its own value.
		if next > int(before+0.5) && after < before-0.05 {
			t.Fatalf("average moved away from new rating: %v -> %v after %d", before, after, next)
		}
	}
}

func TestValidRatingValue(t *testing.T) {
	for value, want := range map[int]bool{0: false, 1: true, 3: true, 5: true, 6: false, -1: false} {
		if got := ValidRatingValue(value); got != want {
			t.Fatalf("ValidRatingValue(%d) = %v, want %v", value, got, want)
		}
	}
}

package domain

import "math"

// Rating value bounds
const (
	RatingMin = 1
	RatingMax = 5
)

// ValidRatingValue reports whether the value is inside the 1..5 scale.
func ValidRatingValue(value int) bool {
	return value >= RatingMin && value <= RatingMax
}

// AverageRating returns the mean of the given rating values rounded to one
// fractional digit, or nil when there are none. It is recomputed on every
// read rather than cached, so it is always consistent with the rating set.
func AverageRating(values []int) *float64 {
	if len(values) == 0 {
		return nil
	}

	sum := 0
	for _, value := range values {
		sum += value
	}

	average := math.Round(float64(sum)/float64(len(values))*10) / 10
	return &average
}

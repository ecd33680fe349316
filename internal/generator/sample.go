package generator

import "math"

// SampleCount converts a real-valued average into an integer count whose
// expectation equals average. It always consumes exactly one stream value.
// Negative, NaN and infinite averages count as zero.
func SampleCount(s *Stream, average float64) int {
	x := s.Float64()
	if math.IsNaN(average) || math.IsInf(average, 0) || average <= 0 {
		return 0
	}
	whole := math.Floor(average)
	fraction := average - whole
	if x < fraction {
		return int(whole) + 1
	}
	return int(whole)
}

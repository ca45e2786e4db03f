package stats

import "math"

const epsilon = 1e-6

func fuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

package entities

import "math"

// DefaultMultiplierIncrement is the difficulty added per extra cooperating player
const DefaultMultiplierIncrement = 0.75

// Multiplier returns 1 + max(0, n-1)*k. A solo player, or nobody, yields 1.0.
func Multiplier(n int, k float64) float64 {
	extra := n - 1
	if extra < 0 {
		extra = 0
	}
	return 1.0 + float64(extra)*k
}

// AdjustedRequirement scales base by the multiplier for members and rounds up
func AdjustedRequirement(base, members int, k float64) int {
	return int(math.Ceil(float64(base) * Multiplier(members, k)))
}

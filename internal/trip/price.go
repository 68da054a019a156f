package trip

import "math"

const experienceBonus = 500

// EstimatePrice is the deterministic price shown in the wizard and frozen
// into the cart entry at add time. It is never recomputed after creation.
func EstimatePrice(budget Budget, duration Duration, experienceCount int) int {
	base := budgetBasePrice[budget]
	mult := durationMultiplier[duration]
	return int(math.Round(base*mult + float64(experienceBonus*experienceCount)))
}

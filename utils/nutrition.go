package utils

import (
	"fmt"
	"math"
)

// CaloriesPerKilogram is the fixed physiological conversion used for the
// weight-gain estimate: roughly 7700 kcal per kg of body mass.
const CaloriesPerKilogram = 7700.0

// PortionCalories computes the energy of a portion from a per-100g energy
// density, rounded to the nearest integer with ties away from zero. The
// result is stored on the consumption row at creation time and never
// recomputed from the catalog afterwards.
func PortionCalories(caloriesPer100g, portionSizeGrams int) int {
	return int(math.Round(float64(caloriesPer100g) * float64(portionSizeGrams) / 100.0))
}

// PortionNutrient computes a single nutrient contribution for a portion
// using the same per-entry rounding as PortionCalories. A nil per-100g
// value means the nutrient is unknown and contributes zero.
func PortionNutrient(per100g *int, portionSizeGrams int) int {
	if per100g == nil {
		return 0
	}
	return int(math.Round(float64(*per100g) * float64(portionSizeGrams) / 100.0))
}

// WeightGainGrams converts total calories into estimated body-mass gain in
// grams via the 7700 kcal ≈ 1 kg rule.
func WeightGainGrams(totalCalories float64) int {
	return int(math.Round(totalCalories / CaloriesPerKilogram * 1000.0))
}

// WeightGainKg formats the gram estimate as kilograms with two decimals.
func WeightGainKg(weightGainGrams int) string {
	return fmt.Sprintf("%.2f", float64(weightGainGrams)/1000.0)
}

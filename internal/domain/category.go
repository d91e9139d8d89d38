package domain

import "math"

// Category is a BMI health category label.
type Category string

const (
	Underweight  Category = "Underweight"
	NormalWeight Category = "Normal weight"
	Overweight   Category = "Overweight"
	Obese        Category = "Obese"
)

// Lower bounds of the upper three bands. A value equal to a threshold
// belongs to the band above it.
const (
	NormalThreshold     = 18.5
	OverweightThreshold = 25.0
	ObeseThreshold      = 30.0
)

var categories = []Category{Underweight, NormalWeight, Overweight, Obese}

// Categories returns all categories in ascending BMI order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Classify maps a BMI value to its category.
func Classify(bmi float64) Category {
	switch {
	case bmi < NormalThreshold:
		return Underweight
	case bmi < OverweightThreshold:
		return NormalWeight
	case bmi < ObeseThreshold:
		return Overweight
	default:
		return Obese
	}
}

// Bounds returns the half-open [min, max) BMI range of c. Underweight starts
// at 0 and Obese is unbounded above.
func (c Category) Bounds() (float64, float64) {
	switch c {
	case Underweight:
		return 0, NormalThreshold
	case NormalWeight:
		return NormalThreshold, OverweightThreshold
	case Overweight:
		return OverweightThreshold, ObeseThreshold
	case Obese:
		return ObeseThreshold, math.Inf(1)
	}
	return math.NaN(), math.NaN()
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, k := range categories {
		if k == c {
			return true
		}
	}
	return false
}

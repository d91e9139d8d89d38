package domain

import "fmt"

const (
	kgToLb = 2.2046226218
	mToIn  = 39.3700787402
)

// Weight and height units accepted by the shells.
const (
	UnitKg = "kg"
	UnitLb = "lb"
	UnitM  = "m"
	UnitCm = "cm"
	UnitIn = "in"
)

// ConvertWeight converts a weight value between "kg" and "lb".
// Returns v unchanged if from == to or if the units are unrecognised.
func ConvertWeight(v float64, from, to string) float64 {
	if from == to {
		return v
	}
	if from == UnitKg && to == UnitLb {
		return v * kgToLb
	}
	if from == UnitLb && to == UnitKg {
		return v / kgToLb
	}
	return v
}

// ConvertHeight converts a height value between "m", "cm" and "in".
// Returns v unchanged if from == to or if either unit is unrecognised.
func ConvertHeight(v float64, from, to string) float64 {
	if from == to {
		return v
	}
	var m float64
	switch from {
	case UnitM:
		m = v
	case UnitCm:
		m = v / 100
	case UnitIn:
		m = v / mToIn
	default:
		return v
	}
	switch to {
	case UnitM:
		return m
	case UnitCm:
		return m * 100
	case UnitIn:
		return m * mToIn
	}
	return v
}

// ToMetric converts a weight and height in the given units to kilograms and
// meters, rejecting unknown units with ErrInvalidInput.
func ToMetric(weight float64, weightUnit string, height float64, heightUnit string) (float64, float64, error) {
	if weightUnit != UnitKg && weightUnit != UnitLb {
		return 0, 0, fmt.Errorf("%w: weight unit must be %q or %q", ErrInvalidInput, UnitKg, UnitLb)
	}
	if heightUnit != UnitM && heightUnit != UnitCm && heightUnit != UnitIn {
		return 0, 0, fmt.Errorf("%w: height unit must be %q, %q or %q", ErrInvalidInput, UnitM, UnitCm, UnitIn)
	}
	return ConvertWeight(weight, weightUnit, UnitKg), ConvertHeight(height, heightUnit, UnitM), nil
}

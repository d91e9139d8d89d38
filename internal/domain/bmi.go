package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Result is the outcome of a BMI computation. BMI keeps full precision.
type Result struct {
	WeightKg float64  `json:"weightKg"`
	HeightM  float64  `json:"heightM"`
	BMI      float64  `json:"bmi"`
	Category Category `json:"category"`
}

// Rounded returns the BMI rounded to two decimal places for display.
func (r Result) Rounded() float64 {
	return RoundBMI(r.BMI)
}

func (r Result) String() string {
	return fmt.Sprintf("%.2f (%s)", r.BMI, r.Category)
}

// RoundBMI rounds v to two decimal places.
func RoundBMI(v float64) float64 {
	return math.Round(v*100) / 100
}

// Compute returns the BMI and category for a weight in kilograms and a
// height in meters.
func Compute(weightKg, heightM float64) (Result, error) {
	if err := validatePositive("weight", weightKg); err != nil {
		return Result{}, err
	}
	if err := validatePositive("height", heightM); err != nil {
		return Result{}, err
	}
	bmi := weightKg / (heightM * heightM)
	return Result{
		WeightKg: weightKg,
		HeightM:  heightM,
		BMI:      bmi,
		Category: Classify(bmi),
	}, nil
}

func validatePositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be a number", ErrInvalidInput, name)
	}
	if v <= 0 {
		return fmt.Errorf("%w: %s must be > 0", ErrInvalidInput, name)
	}
	return nil
}

// ParseMeasurement parses free-text weight and height values.
func ParseMeasurement(weight, height string) (float64, float64, error) {
	w, err := parseNumber("weight", weight)
	if err != nil {
		return 0, 0, err
	}
	h, err := parseNumber("height", height)
	if err != nil {
		return 0, 0, err
	}
	return w, h, nil
}

func parseNumber(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrInvalidInput, name, s)
	}
	return v, nil
}

// Limits bounds what shells accept as a plausible measurement.
type Limits struct {
	MaxWeightKg float64
	MaxHeightM  float64
}

// DefaultLimits rejects weights above 300 kg and heights above 2.5 m.
var DefaultLimits = Limits{MaxWeightKg: 300, MaxHeightM: 2.5}

// CheckPlausible returns ErrImplausible when a value exceeds l. Zero limits
// are not enforced.
func CheckPlausible(weightKg, heightM float64, l Limits) error {
	if l.MaxWeightKg > 0 && weightKg > l.MaxWeightKg {
		return fmt.Errorf("%w: weight %.1f kg is above %.1f kg, please check your input", ErrImplausible, weightKg, l.MaxWeightKg)
	}
	if l.MaxHeightM > 0 && heightM > l.MaxHeightM {
		return fmt.Errorf("%w: height %.2f m is above %.2f m, please check your input", ErrImplausible, heightM, l.MaxHeightM)
	}
	return nil
}

package domain_test

import (
	"errors"
	"math"
	"testing"

	"bmitracker/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		bmi  float64
		want domain.Category
	}{
		{0, domain.Underweight},
		{18.4999, domain.Underweight},
		{18.5, domain.NormalWeight},
		{22, domain.NormalWeight},
		{24.9999, domain.NormalWeight},
		{25.0, domain.Overweight},
		{29.9999, domain.Overweight},
		{30.0, domain.Obese},
		{55, domain.Obese},
	}
	for _, tc := range tests {
		if got := domain.Classify(tc.bmi); got != tc.want {
			t.Errorf("Classify(%v) = %q; want %q", tc.bmi, got, tc.want)
		}
	}
}

func TestCategoryBounds(t *testing.T) {
	prevMax := 0.0
	for _, c := range domain.Categories() {
		lo, hi := c.Bounds()
		if lo != prevMax {
			t.Errorf("%s starts at %v; want %v", c, lo, prevMax)
		}
		if domain.Classify(lo) != c {
			t.Errorf("lower bound %v of %s classifies as %s", lo, c, domain.Classify(lo))
		}
		prevMax = hi
	}
	if !math.IsInf(prevMax, 1) {
		t.Errorf("last category should be unbounded, got %v", prevMax)
	}
	if domain.Category("Skinny").Valid() {
		t.Error("unknown category reported valid")
	}
	if !domain.Obese.Valid() {
		t.Error("Obese reported invalid")
	}
}

func TestCompute(t *testing.T) {
	res, err := domain.Compute(75.0, 1.75)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Rounded() != 24.49 {
		t.Errorf("Rounded() = %v; want 24.49", res.Rounded())
	}
	if !almostEqual(res.BMI, 75.0/(1.75*1.75), 1e-12) {
		t.Errorf("BMI = %v; want full precision", res.BMI)
	}
	if res.Category != domain.NormalWeight {
		t.Errorf("Category = %q; want %q", res.Category, domain.NormalWeight)
	}
	if res.String() != "24.49 (Normal weight)" {
		t.Errorf("String() = %q", res.String())
	}
}

func TestCompute_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		height float64
	}{
		{"zero weight", 0, 1.75},
		{"negative weight", -5, 1.75},
		{"zero height", 70, 0},
		{"negative height", 70, -1},
		{"nan weight", math.NaN(), 1.75},
		{"inf height", 70, math.Inf(1)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := domain.Compute(tc.weight, tc.height)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestCompute_ConsistentWithThresholds(t *testing.T) {
	for w := 30.0; w <= 200; w += 7.3 {
		for h := 1.2; h <= 2.2; h += 0.07 {
			res, err := domain.Compute(w, h)
			if err != nil {
				t.Fatalf("Compute(%v, %v): %v", w, h, err)
			}
			if res.BMI < 0 {
				t.Fatalf("negative BMI for %v, %v", w, h)
			}
			lo, hi := res.Category.Bounds()
			if res.BMI < lo || res.BMI >= hi {
				t.Fatalf("BMI %v outside %s bounds [%v, %v)", res.BMI, res.Category, lo, hi)
			}
		}
	}
}

func TestCompute_Idempotent(t *testing.T) {
	a, _ := domain.Compute(82.4, 1.81)
	b, _ := domain.Compute(82.4, 1.81)
	if a != b {
		t.Fatalf("results differ: %+v vs %+v", a, b)
	}
}

func TestParseMeasurement(t *testing.T) {
	w, h, err := domain.ParseMeasurement(" 75.5 ", "1.8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != 75.5 || h != 1.8 {
		t.Fatalf("got %v, %v", w, h)
	}

	for _, in := range [][2]string{{"abc", "1.8"}, {"70", ""}, {"NaN", "1.8"}, {"70", "inf"}} {
		if _, _, err := domain.ParseMeasurement(in[0], in[1]); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("ParseMeasurement(%q, %q): expected ErrInvalidInput, got %v", in[0], in[1], err)
		}
	}
}

func TestCheckPlausible(t *testing.T) {
	if err := domain.CheckPlausible(80, 1.8, domain.DefaultLimits); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := domain.CheckPlausible(301, 1.8, domain.DefaultLimits); !errors.Is(err, domain.ErrImplausible) {
		t.Errorf("expected ErrImplausible for weight, got %v", err)
	}
	if err := domain.CheckPlausible(80, 2.6, domain.DefaultLimits); !errors.Is(err, domain.ErrImplausible) {
		t.Errorf("expected ErrImplausible for height, got %v", err)
	}
	if err := domain.CheckPlausible(900, 9, domain.Limits{}); err != nil {
		t.Errorf("zero limits should not be enforced, got %v", err)
	}
}

package adapthttp

import (
	"net/http"

	"bmitracker/internal/domain"
)

type measurementRequest struct {
	User       string  `json:"user"`
	Weight     float64 `json:"weight"`
	Height     float64 `json:"height"`
	WeightUnit string  `json:"weightUnit"`
	HeightUnit string  `json:"heightUnit"`
}

// metric converts the request to kilograms and meters and applies the
// plausibility limits.
func (s *Server) metric(req measurementRequest) (float64, float64, error) {
	if req.WeightUnit == "" {
		req.WeightUnit = domain.UnitKg
	}
	if req.HeightUnit == "" {
		req.HeightUnit = domain.UnitM
	}
	w, h, err := domain.ToMetric(req.Weight, req.WeightUnit, req.Height, req.HeightUnit)
	if err != nil {
		return 0, 0, err
	}
	if err := domain.CheckPlausible(w, h, s.limits); err != nil {
		return 0, 0, err
	}
	return w, h, nil
}

func resultBody(res domain.Result) map[string]any {
	return map[string]any{
		"weightKg": res.WeightKg,
		"heightM":  res.HeightM,
		"bmi":      res.Rounded(),
		"bmiExact": res.BMI,
		"category": res.Category,
	}
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var req measurementRequest
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	weightKg, heightM, err := s.metric(req)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	res, err := s.measurements.Calculate(weightKg, heightM)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, resultBody(res))
}

func (s *Server) handleRecord(w http.ResponseWriter, r *http.Request) {
	var req measurementRequest
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	weightKg, heightM, err := s.metric(req)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	rec, err := s.measurements.Record(r.Context(), req.User, weightKg, heightM)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"record":   rec,
		"bmi":      domain.RoundBMI(rec.BMI),
		"category": rec.Category,
	})
}

type categoryRow struct {
	Category domain.Category `json:"category"`
	Min      float64         `json:"min"`
	// Max is omitted for the unbounded top category.
	Max *float64 `json:"max,omitempty"`
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	cats := domain.Categories()
	rows := make([]categoryRow, 0, len(cats))
	for i, c := range cats {
		lo, hi := c.Bounds()
		row := categoryRow{Category: c, Min: lo}
		if i < len(cats)-1 {
			row.Max = &hi
		}
		rows = append(rows, row)
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": rows})
}

package adapthttp

import (
	"bytes"
	"mime"
	"net/http"

	"bmitracker/internal/adapter/xlsx"
)

func (s *Server) handleUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.measurements.Users(r.Context())
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": users})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	user := userParam(r)
	items, err := s.measurements.History(r.Context(), user)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": user, "items": items})
}

func (s *Server) handleTrend(w http.ResponseWriter, r *http.Request) {
	trend, err := s.charts.Trend(r.Context(), userParam(r))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, trend)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	user := userParam(r)
	trend, err := s.charts.Trend(r.Context(), user)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	var buf bytes.Buffer
	if err := xlsx.WriteTrend(&buf, trend); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": user + "-bmi.xlsx"}))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

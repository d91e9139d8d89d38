package adapthttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"bmitracker/internal/app"
	"bmitracker/internal/domain"

	"github.com/go-chi/chi/v5"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]any{"error": err.Error()})
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrImplausible):
		return http.StatusBadRequest
	case errors.Is(err, app.ErrNoRecords):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func parseJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid json: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

// userParam returns the decoded {user} segment. chi routes on RawPath when
// it is set, so only then is the segment still escaped.
func userParam(r *http.Request) string {
	user := chi.URLParam(r, "user")
	if r.URL.RawPath != "" {
		if u, err := url.PathUnescape(user); err == nil {
			user = u
		}
	}
	return strings.TrimSpace(user)
}

func withNoCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

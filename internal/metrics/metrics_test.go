package metrics

import (
	"errors"
	"fmt"
	"testing"

	"bmitracker/internal/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestReason(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"invalid", fmt.Errorf("%w: weight", domain.ErrInvalidInput), ReasonInvalidInput},
		{"implausible", domain.ErrImplausible, ReasonImplausible},
		{"storage", fmt.Errorf("%w: save: %w", domain.ErrStorage, errors.New("disk full")), ReasonStorage},
		{"unknown", errors.New("boom"), ReasonUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Reason(tc.err); got != tc.want {
				t.Fatalf("expected reason %q, got %q", tc.want, got)
			}
		})
	}
}

func TestRecorder(t *testing.T) {
	registry := prometheus.NewRegistry()
	r, err := New(registry)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	res, _ := domain.Compute(75, 1.75)
	r.ObserveComputation(res)
	r.ObserveComputation(res)
	r.ObserveSave()
	r.ObserveFailure("save", fmt.Errorf("%w: x", domain.ErrStorage))
	r.ObserveFailure("save", nil)

	if got := testutil.ToFloat64(r.computations.WithLabelValues(string(domain.NormalWeight))); got != 2 {
		t.Fatalf("expected 2 computations, got %v", got)
	}
	if got := testutil.ToFloat64(r.saves); got != 1 {
		t.Fatalf("expected 1 save, got %v", got)
	}
	if got := testutil.ToFloat64(r.failures.WithLabelValues("save", ReasonStorage)); got != 1 {
		t.Fatalf("expected 1 storage failure, got %v", got)
	}
}

func TestRecorder_DuplicateRegistration(t *testing.T) {
	registry := prometheus.NewRegistry()
	if _, err := New(registry); err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := New(registry); err == nil {
		t.Fatal("expected duplicate registration error")
	}
}

func TestNilRecorder(t *testing.T) {
	var r *Recorder
	r.ObserveComputation(domain.Result{})
	r.ObserveSave()
	r.ObserveFailure("save", errors.New("x"))
}

// Package metrics exposes Prometheus counters for BMI computations and the
// record store.
package metrics

import (
	"errors"

	"bmitracker/internal/domain"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	ReasonInvalidInput = "invalid_input"
	ReasonImplausible  = "implausible"
	ReasonStorage      = "storage"
	ReasonUnknown      = "unknown"
)

// Recorder counts computations, saves and failures. A nil *Recorder is a
// valid no-op.
type Recorder struct {
	computations *prometheus.CounterVec
	saves        prometheus.Counter
	failures     *prometheus.CounterVec
	bmi          prometheus.Histogram
}

// New registers the recorder's collectors with reg. A nil reg uses the
// default registerer.
func New(reg prometheus.Registerer) (*Recorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	r := &Recorder{
		computations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bmitracker_computations_total",
			Help: "BMI computations by resulting category.",
		}, []string{"category"}),
		saves: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bmitracker_records_saved_total",
			Help: "Measurement records appended to the store.",
		}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bmitracker_failures_total",
			Help: "Failed operations by low-cardinality reason.",
		}, []string{"op", "reason"}),
		bmi: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bmitracker_bmi",
			Help:    "Distribution of computed BMI values.",
			Buckets: []float64{16, domain.NormalThreshold, 22, domain.OverweightThreshold, domain.ObeseThreshold, 35, 40},
		}),
	}
	for _, c := range []prometheus.Collector{r.computations, r.saves, r.failures, r.bmi} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// ObserveComputation counts a successful computation.
func (r *Recorder) ObserveComputation(res domain.Result) {
	if r == nil {
		return
	}
	r.computations.WithLabelValues(string(res.Category)).Inc()
	r.bmi.Observe(res.BMI)
}

// ObserveSave counts a stored record.
func (r *Recorder) ObserveSave() {
	if r == nil {
		return
	}
	r.saves.Inc()
}

// ObserveFailure counts a failed op, classifying err.
func (r *Recorder) ObserveFailure(op string, err error) {
	if r == nil || err == nil {
		return
	}
	r.failures.WithLabelValues(op, Reason(err)).Inc()
}

// Reason maps err to a metric label.
func Reason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return ReasonInvalidInput
	case errors.Is(err, domain.ErrImplausible):
		return ReasonImplausible
	case errors.Is(err, domain.ErrStorage):
		return ReasonStorage
	default:
		return ReasonUnknown
	}
}

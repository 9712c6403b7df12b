package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PreOrderMetrics records pre-order submission outcomes.
type PreOrderMetrics struct {
	submissions *prometheus.CounterVec
	emailSends  *prometheus.CounterVec
	duration    prometheus.Histogram
}

// Submission outcome labels.
const (
	OutcomeAccepted    = "accepted"
	OutcomeInvalid     = "invalid"
	OutcomeCartEmpty   = "cart_empty"
	OutcomeEmailFailed = "email_failed"
)

// NewPreOrderMetrics registers the pre-order metrics on the provided registerer.
func NewPreOrderMetrics(reg prometheus.Registerer) *PreOrderMetrics {
	if reg == nil {
		return &PreOrderMetrics{}
	}
	submissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "preorder_submissions_total",
		Help: "Pre-order submissions by outcome.",
	}, []string{"outcome"})
	emailSends := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "preorder_email_sends_total",
		Help: "Order notification email attempts by result.",
	}, []string{"result"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "preorder_submission_duration_seconds",
		Help:    "Duration of pre-order submission handling in seconds.",
		Buckets: prometheus.DefBuckets,
	})
	reg.MustRegister(submissions, emailSends, duration)
	return &PreOrderMetrics{
		submissions: submissions,
		emailSends:  emailSends,
		duration:    duration,
	}
}

// IncSubmission increments the submission counter for the given outcome.
func (m *PreOrderMetrics) IncSubmission(outcome string) {
	if m == nil || m.submissions == nil {
		return
	}
	m.submissions.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// IncEmailSend increments the email-send counter for the given result.
func (m *PreOrderMetrics) IncEmailSend(result string) {
	if m == nil || m.emailSends == nil {
		return
	}
	m.emailSends.WithLabelValues(normalizeLabel(result)).Inc()
}

// ObserveDuration records how long a submission took end to end.
func (m *PreOrderMetrics) ObserveDuration(duration time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.Observe(duration.Seconds())
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}

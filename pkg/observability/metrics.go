package observability

import (
	"context"
	"errors"
	"sync"

	"github.com/aretw0/intake/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors fed by the lifecycle hooks.
// Use one Metrics per engine: a reset forgets every pending duration.
type Metrics struct {
	registry *prometheus.Registry

	steps       *prometheus.CounterVec
	answers     *prometheus.CounterVec
	rejections  *prometheus.CounterVec
	completions *prometheus.CounterVec
	resets      prometheus.Counter
	duration    prometheus.Histogram

	mu      sync.Mutex
	started map[string]float64
}

// NewMetrics creates the collectors and registers them on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "intake_steps_revealed_total",
				Help: "Total number of steps revealed, by step kind",
			},
			[]string{"kind"},
		),
		answers: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "intake_answers_total",
				Help: "Total number of accepted answers, by field",
			},
			[]string{"field"},
		),
		rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "intake_rejections_total",
				Help: "Total number of rejected operations",
			},
			[]string{"op", "reason"},
		),
		completions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "intake_conversations_completed_total",
				Help: "Total number of completed conversations, by save result",
			},
			[]string{"result"},
		),
		resets: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "intake_conversations_reset_total",
			Help: "Total number of conversation resets",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "intake_conversation_duration_seconds",
			Help:    "Time from the first revealed step to completion",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
		}),
		started: make(map[string]float64),
	}
	m.registry.MustRegister(m.steps, m.answers, m.rejections, m.completions, m.resets, m.duration)
	return m
}

// Registry exposes the registry, e.g. for promhttp or tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteToTextfile writes every metric in the text exposition format.
func (m *Metrics) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

// Hooks returns lifecycle hooks recording into the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStepEnter: func(_ context.Context, e *domain.StepEvent) {
			m.steps.WithLabelValues(string(e.Kind)).Inc()
			m.markStart(e.ConversationID, e.Timestamp.UnixNano())
		},
		OnAnswer: func(_ context.Context, e *domain.AnswerEvent) {
			m.answers.WithLabelValues(e.Field).Inc()
		},
		OnReject: func(_ context.Context, e *domain.RejectEvent) {
			m.rejections.WithLabelValues(e.Op, reason(e.Err)).Inc()
		},
		OnComplete: func(_ context.Context, e *domain.CompleteEvent) {
			result := "saved"
			if e.SaveErr != nil {
				result = "save_failed"
			}
			m.completions.WithLabelValues(result).Inc()

			if start, ok := m.takeStart(e.ConversationID); ok {
				m.duration.Observe(float64(e.Timestamp.UnixNano())/1e9 - start)
			}
		},
		OnReset: func(_ context.Context, e *domain.EventBase) {
			m.resets.Inc()
			m.mu.Lock()
			clear(m.started)
			m.mu.Unlock()
		},
	}
}

func (m *Metrics) markStart(id string, nanos int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.started[id]; !ok {
		m.started[id] = float64(nanos) / 1e9
	}
}

func (m *Metrics) takeStart(id string) (float64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	start, ok := m.started[id]
	delete(m.started, id)
	return start, ok
}

func reason(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptySubmission):
		return "empty_submission"
	case errors.Is(err, domain.ErrInvalidTransition):
		return "invalid_transition"
	default:
		return "other"
	}
}

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type PrometheusRecorder struct {
	registry        *prometheus.Registry
	emailsSent      *prometheus.CounterVec
	passwordUpdates *prometheus.CounterVec
}

func NewPrometheusRecorder() *PrometheusRecorder {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := &PrometheusRecorder{
		registry: registry,
		emailsSent: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "emails_sent_total",
				Help: "Total number of email send attempts by kind and outcome.",
			},
			[]string{"kind", "outcome"},
		),
		passwordUpdates: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "password_updates_total",
				Help: "Total number of password update attempts by path and outcome.",
			},
			[]string{"path", "outcome"},
		),
	}
	registry.MustRegister(r.emailsSent, r.passwordUpdates)
	return r
}

func (r *PrometheusRecorder) EmailSent(kind string, outcome string) {
	r.emailsSent.WithLabelValues(kind, outcome).Inc()
}

func (r *PrometheusRecorder) PasswordUpdated(path string, outcome string) {
	r.passwordUpdates.WithLabelValues(path, outcome).Inc()
}

func (r *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

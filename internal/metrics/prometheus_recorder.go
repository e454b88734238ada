package metrics

import (
	"fmt"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "sitecfg"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	loadDuration       prom.Histogram
	loadOutcomes       *prom.CounterVec
	validationFailures *prom.CounterVec
	catalogDocuments   prom.Gauge
}

// NewPrometheusRecorder constructs and registers the metrics on reg.
// A nil reg gets a private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		loadDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "load_duration_seconds",
			Help:      "Duration of site configuration load and validation",
			Buckets:   []float64{.001, .005, .01, .05, .1, .5, 1},
		}),
		loadOutcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "load_outcomes_total",
			Help:      "Site configuration loads by outcome",
		}, []string{"outcome"}),
		validationFailures: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "Validation failures by configuration field",
		}, []string{"field"}),
		catalogDocuments: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_documents",
			Help:      "Documents found in the content catalog",
		}),
	}
	reg.MustRegister(pr.loadDuration, pr.loadOutcomes, pr.validationFailures, pr.catalogDocuments)
	return pr
}

func (p *PrometheusRecorder) ObserveLoadDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.loadDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncLoadOutcome(outcome Outcome) {
	if p == nil {
		return
	}
	p.loadOutcomes.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) IncValidationFailure(field string) {
	if p == nil {
		return
	}
	p.validationFailures.WithLabelValues(field).Inc()
}

func (p *PrometheusRecorder) SetCatalogDocuments(n int) {
	if p == nil {
		return
	}
	p.catalogDocuments.Set(float64(n))
}

// WriteTextfile writes everything g gathers to path in the text exposition
// format. The file is replaced atomically.
func WriteTextfile(path string, g prom.Gatherer) error {
	if err := prom.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile %s: %w", path, err)
	}
	return nil
}

package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func findFamily(t *testing.T, reg *prom.Registry, name string) *dto.MetricFamily {
	t.Helper()
	mfs, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	t.Fatalf("metric %s not gathered", name)
	return nil
}

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.ObserveLoadDuration(3 * time.Millisecond)
	pr.IncLoadOutcome(OutcomeSuccess)
	pr.IncLoadOutcome(OutcomeInvalid)
	pr.IncValidationFailure("baseUrl")
	pr.IncValidationFailure("baseUrl")
	pr.SetCatalogDocuments(32)

	failures := findFamily(t, reg, "sitecfg_validation_failures_total")
	require.Len(t, failures.GetMetric(), 1)
	require.Equal(t, 2.0, failures.GetMetric()[0].GetCounter().GetValue())

	docs := findFamily(t, reg, "sitecfg_catalog_documents")
	require.Equal(t, 32.0, docs.GetMetric()[0].GetGauge().GetValue())

	outcomes := findFamily(t, reg, "sitecfg_load_outcomes_total")
	require.Len(t, outcomes.GetMetric(), 2)
}

func TestNilPrometheusRecorderIsSafe(t *testing.T) {
	var pr *PrometheusRecorder
	pr.ObserveLoadDuration(time.Second)
	pr.IncLoadOutcome(OutcomeError)
	pr.IncValidationFailure("url")
	pr.SetCatalogDocuments(1)
}

func TestNoopRecorderSatisfiesInterface(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.IncLoadOutcome(OutcomeSuccess)
}

func TestWriteTextfile(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.IncLoadOutcome(OutcomeSuccess)

	path := filepath.Join(t.TempDir(), "sitecfg.prom")
	require.NoError(t, WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `sitecfg_load_outcomes_total{outcome="success"} 1`)
}

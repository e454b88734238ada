// Package metrics records configuration load outcomes.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so callers never nil-check:
//
//	reg := prometheus.NewRegistry()
//	rec := metrics.NewPrometheusRecorder(reg)
//	cfg, err := siteconfig.Load(path, siteconfig.WithRecorder(rec))
//	_ = metrics.WriteTextfile("sitecfg.prom", reg)
//
// sitecfg is a short-lived command, so metrics are exported in the node
// exporter textfile format instead of being served over HTTP.
package metrics

// Package metrics records local CI step timings and outcomes.
//
// Components receive a Recorder and default to NoopRecorder, so metrics stay optional
// without nil checks at call sites. PrometheusRecorder registers its collectors on a
// private registry; WriteTextfile exports that registry in the text format read by the
// node exporter's textfile collector.
package metrics

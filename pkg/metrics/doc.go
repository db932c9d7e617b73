// Package metrics exports validation runs as Prometheus metrics.
//
// A Collector implements validator.Observer. Attach it to any number of
// validators with validator.WithObserver:
//
//	reg := prometheus.NewRegistry()
//	collector, err := metrics.NewCollector(reg)
//	if err != nil {
//	    return err
//	}
//	v := validator.New[Signup](validator.WithObserver(collector))
//
// Metrics (namespace "verdict" unless overridden with WithNamespace):
//   - verdict_validations_total{validator,mode,result}: finished runs, result
//     is "valid", "invalid" or "error"
//   - verdict_messages_total{validator,severity}: reported messages
//   - verdict_validation_duration_seconds{validator,mode}: run duration
package metrics

package metrics

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/verdict/pkg/validator"
)

const (
	DefaultNamespace = "verdict"

	ResultValid   = "valid"
	ResultInvalid = "invalid"
	ResultError   = "error"
)

// Validation runs are expected to be fast; lookups against remote stores
// push the tail into the tens of milliseconds.
var defaultBuckets = prometheus.ExponentialBuckets(0.00001, 4, 10) // 10µs to ~2.6s

// Option configures a Collector.
type Option func(*collectorOptions)

type collectorOptions struct {
	namespace string
	buckets   []float64
}

// WithNamespace overrides the metric namespace.
func WithNamespace(ns string) Option {
	return func(o *collectorOptions) {
		if ns != "" {
			o.namespace = ns
		}
	}
}

// WithBuckets overrides the duration histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(o *collectorOptions) {
		if len(buckets) > 0 {
			o.buckets = buckets
		}
	}
}

// Collector records validation reports.
type Collector struct {
	validations *prometheus.CounterVec
	messages    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

var _ validator.Observer = (*Collector)(nil)

// NewCollector creates a Collector and registers its metrics with reg.
// A nil reg leaves the metrics unregistered. Metrics already registered with
// reg by another Collector are reused.
func NewCollector(reg prometheus.Registerer, opts ...Option) (*Collector, error) {
	o := collectorOptions{namespace: DefaultNamespace, buckets: defaultBuckets}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Collector{
		validations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: o.namespace,
				Name:      "validations_total",
				Help:      "Total number of finished validation runs",
			},
			[]string{"validator", "mode", "result"},
		),
		messages: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: o.namespace,
				Name:      "messages_total",
				Help:      "Total number of reported validation messages",
			},
			[]string{"validator", "severity"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: o.namespace,
				Name:      "validation_duration_seconds",
				Help:      "Duration of validation runs in seconds",
				Buckets:   o.buckets,
			},
			[]string{"validator", "mode"},
		),
	}

	if reg == nil {
		return c, nil
	}

	var err error
	c.validations, err = register(reg, c.validations)
	if err != nil {
		return nil, err
	}
	c.messages, err = register(reg, c.messages)
	if err != nil {
		return nil, err
	}
	c.duration, err = register(reg, c.duration)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewCollector is like NewCollector but panics on error.
func MustNewCollector(reg prometheus.Registerer, opts ...Option) *Collector {
	c, err := NewCollector(reg, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		var zero C
		return zero, errors.Join(ErrRegisterMetrics, err)
	}
	return c, nil
}

// ObserveValidation implements validator.Observer.
func (c *Collector) ObserveValidation(_ context.Context, r validator.Report) {
	mode := r.Mode.String()

	result := ResultValid
	switch {
	case r.Err != nil:
		result = ResultError
	case !r.Outcome.IsValid():
		result = ResultInvalid
	}

	c.validations.WithLabelValues(r.Validator, mode, result).Inc()
	c.duration.WithLabelValues(r.Validator, mode).Observe(r.Duration.Seconds())

	if n := len(r.Outcome.Errors()); n > 0 {
		c.messages.WithLabelValues(r.Validator, validator.SeverityError.String()).Add(float64(n))
	}
	if n := len(r.Outcome.Warnings()); n > 0 {
		c.messages.WithLabelValues(r.Validator, validator.SeverityWarning.String()).Add(float64(n))
	}
}

// Describe implements prometheus.Collector, so an unregistered Collector can
// still be registered as a whole later.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.validations.Describe(ch)
	c.messages.Describe(ch)
	c.duration.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.validations.Collect(ch)
	c.messages.Collect(ch)
	c.duration.Collect(ch)
}

package metrics_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/verdict/pkg/metrics"
	"github.com/dmitrymomot/verdict/pkg/validator"
)

type profile struct {
	Name     string
	Nickname string
}

func profileValidator(obs validator.Observer) *validator.ModelValidator[profile] {
	v := validator.New[profile](validator.WithName("profile"), validator.WithObserver(obs))
	v.RuleFor(validator.MustStructField[profile]("Name")).Required()
	v.RuleFor(validator.MustStructField[profile]("Nickname")).MaxLength(3).AsWarning()
	return v
}

func TestCollector(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	collector, err := metrics.NewCollector(reg)
	require.NoError(t, err)

	v := profileValidator(collector)
	assert.True(t, v.Validate(profile{Name: "Ann"}).IsValid())
	assert.False(t, v.Validate(profile{Nickname: "abcdef"}).IsValid())

	remote := validator.New[profile](validator.WithName("remote"), validator.WithObserver(collector))
	remote.RuleFor(validator.MustStructField[profile]("Name")).
		MustAsync(func(context.Context, profile, any) (bool, error) {
			return false, errors.New("store unavailable")
		})
	_, err = remote.ValidateAsync(context.Background(), profile{Name: "Ann"}).Await()
	require.Error(t, err)

	expected := `
# HELP verdict_messages_total Total number of reported validation messages
# TYPE verdict_messages_total counter
verdict_messages_total{severity="error",validator="profile"} 1
verdict_messages_total{severity="warning",validator="profile"} 1
# HELP verdict_validations_total Total number of finished validation runs
# TYPE verdict_validations_total counter
verdict_validations_total{mode="async",result="error",validator="remote"} 1
verdict_validations_total{mode="sync",result="invalid",validator="profile"} 1
verdict_validations_total{mode="sync",result="valid",validator="profile"} 1
`
	err = testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"verdict_messages_total", "verdict_validations_total")
	require.NoError(t, err)

	// one histogram series per validator and mode
	assert.Equal(t, 2, testutil.CollectAndCount(collector, "verdict_validation_duration_seconds"))
}

func TestNewCollector(t *testing.T) {
	t.Parallel()

	t.Run("custom namespace", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		collector, err := metrics.NewCollector(reg, metrics.WithNamespace("forms"), metrics.WithBuckets([]float64{0.001, 0.01}))
		require.NoError(t, err)

		profileValidator(collector).Validate(profile{Name: "Ann"})

		families, err := reg.Gather()
		require.NoError(t, err)
		names := make([]string, 0, len(families))
		for _, f := range families {
			names = append(names, f.GetName())
		}
		assert.ElementsMatch(t, []string{
			"forms_validations_total",
			"forms_validation_duration_seconds",
		}, names)
	})

	t.Run("reuses metrics already registered", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		first := metrics.MustNewCollector(reg)
		second := metrics.MustNewCollector(reg)

		profileValidator(first).Validate(profile{Name: "Ann"})
		profileValidator(second).Validate(profile{Name: "Ann"})

		expected := `
# HELP verdict_validations_total Total number of finished validation runs
# TYPE verdict_validations_total counter
verdict_validations_total{mode="sync",result="valid",validator="profile"} 2
`
		require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "verdict_validations_total"))
	})

	t.Run("conflicting registration fails", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		reg.MustRegister(prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "verdict",
			Name:      "validations_total",
			Help:      "something else",
		}))

		_, err := metrics.NewCollector(reg)
		assert.ErrorIs(t, err, metrics.ErrRegisterMetrics)
	})

	t.Run("nil registerer keeps metrics local", func(t *testing.T) {
		collector, err := metrics.NewCollector(nil)
		require.NoError(t, err)

		profileValidator(collector).Validate(profile{})

		reg := prometheus.NewRegistry()
		require.NoError(t, reg.Register(collector))
		assert.Equal(t, 1, testutil.CollectAndCount(collector, "verdict_validations_total"))
	})
}

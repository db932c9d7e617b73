package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/verdict/pkg/validator"
)

func TestPositiveInt(t *testing.T) {
	t.Parallel()
	rule := validator.PositiveInt[Person]()

	t.Run("passes for positive integers of any width", func(t *testing.T) {
		for _, v := range []any{1, int8(1), int64(99), uint(3), uint16(7)} {
			assert.Equal(t, 0, check(rule, v).Len(), "%T", v)
		}
	})

	t.Run("fails for zero and negatives", func(t *testing.T) {
		assert.Equal(t, 1, check(rule, 0).Len())
		assert.Equal(t, 1, check(rule, -5).Len())
		assert.Equal(t, 1, check(rule, uint(0)).Len())
	})

	t.Run("fails for non-integer types", func(t *testing.T) {
		assert.Equal(t, 1, check(rule, 1.5).Len())
		assert.Equal(t, 1, check(rule, float32(2)).Len())
		assert.Equal(t, 1, check(rule, "5").Len())
	})

	t.Run("ignores absent values", func(t *testing.T) {
		assert.Equal(t, 0, check(rule, nil).Len())
	})
}

func TestPositive(t *testing.T) {
	t.Parallel()
	rule := validator.Positive[Person]()

	t.Run("passes for any positive number", func(t *testing.T) {
		for _, v := range []any{1, 0.01, float32(3), uint8(1), time.Second} {
			assert.Equal(t, 0, check(rule, v).Len(), "%T", v)
		}
	})

	t.Run("fails for non-positive numbers", func(t *testing.T) {
		assert.Equal(t, 1, check(rule, 0).Len())
		assert.Equal(t, 1, check(rule, -0.5).Len())
	})

	t.Run("non-numeric values never pass", func(t *testing.T) {
		out := check(rule, "10")
		assert.Equal(t, 1, out.Len())
		assert.Equal(t, "must be a positive number", out.Messages()[0].Text)
		assert.Equal(t, 1, check(rule, true).Len())
	})
}

package validator_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/verdict/pkg/validator"
)

type OrderLine struct {
	SKU      string
	Quantity int
}

type Order struct {
	ID        string
	Email     string
	Phone     string
	Placed    string
	Express   bool
	Shipping  *Address
	Lines     []OrderLine
	Total     float64
	Discount  float64
	CreatedAt time.Time
}

func orderValidator(taken map[string]bool) *validator.ModelValidator[Order] {
	lines := validator.New[OrderLine]()
	lines.RuleFor(validator.MustStructField[OrderLine]("SKU")).Required().Matches(`^[A-Z]{3}-\d{3}$`)
	lines.RuleFor(validator.MustStructField[OrderLine]("Quantity")).PositiveInt().Max(100).WithMessage("too many items")

	v := validator.New[Order](validator.WithName("order"))
	v.RuleFor(validator.MustStructField[Order]("ID")).
		Required().
		UUID().
		MustAsync(func(_ context.Context, _ Order, id any) (bool, error) {
			return !taken[id.(string)], nil
		}).WithMessage("order already exists")
	v.RuleFor(validator.MustStructField[Order]("Email")).
		Email().Unless(func(o Order) bool { return o.Email == "" })
	v.RuleFor(validator.MustStructField[Order]("Placed")).Date("")
	v.RuleFor(validator.MustStructField[Order]("Shipping")).
		Add(validator.Nested[Order](addressValidator())).
		Required().When(func(o Order) bool { return o.Express }).WithMessage("express orders need an address")
	v.RuleFor(validator.MustStructField[Order]("Lines")).
		Add(validator.Each[Order](lines))
	v.RuleFor(validator.MustStructField[Order]("Total")).Positive()
	v.RuleFor(validator.MustStructField[Order]("Discount")).Between(0, 50).AsWarning()

	v.AtLeastOneOf().Field("Email").Field("Phone")
	v.Rule(func(o Order) bool { return o.Discount <= o.Total }).
		WithField("Discount").
		WithMessage("discount exceeds total")
	return v
}

func validOrder() Order {
	return Order{
		ID:     "123e4567-e89b-12d3-a456-426614174000",
		Email:  "buyer@example.com",
		Placed: "2024-05-01",
		Lines:  []OrderLine{{SKU: "ABC-001", Quantity: 2}},
		Total:  20,
	}
}

func TestOrderValidation(t *testing.T) {
	t.Parallel()

	t.Run("accepts a valid order", func(t *testing.T) {
		v := orderValidator(nil)
		out := v.Validate(validOrder())
		assert.True(t, out.IsValid())
		assert.NoError(t, out.Err())

		out, err := v.ValidateAsync(context.Background(), validOrder()).Await()
		require.NoError(t, err)
		assert.Equal(t, 0, out.Len())
	})

	t.Run("collects every failure in order", func(t *testing.T) {
		o := Order{
			ID:       "nope",
			Email:    "broken",
			Placed:   "yesterday",
			Express:  true,
			Lines:    []OrderLine{{SKU: "ABC-001", Quantity: 1}, {SKU: "abc", Quantity: 500}},
			Total:    10,
			Discount: 60,
		}

		out := orderValidator(nil).Validate(o)
		assert.Equal(t, []string{
			"ID",
			"Email",
			"Placed",
			"Shipping",
			"Lines[1].SKU",
			"Lines[1].Quantity",
			"Discount",
		}, out.Fields())
		assert.Equal(t, []string{"express orders need an address"}, out.Get("Shipping"))
		assert.Equal(t, []string{"too many items"}, out.Get("Lines[1].Quantity"))
		assert.Equal(t, []string{"must be between 0 and 50", "discount exceeds total"}, out.Get("Discount"))

		warnings := out.Warnings()
		require.Len(t, warnings, 1)
		assert.Equal(t, "Discount", warnings[0].Field)

		err := out.Err()
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.Contains(t, err.Error(), "Placed: must be a valid date")
	})

	t.Run("reports nested address problems", func(t *testing.T) {
		o := validOrder()
		o.Express = true
		o.Shipping = &Address{Street: "Main"}

		out := orderValidator(nil).Validate(o)
		assert.Equal(t, []string{"Shipping.City"}, out.Fields())
	})

	t.Run("requires a contact channel", func(t *testing.T) {
		o := validOrder()
		o.Email = ""
		assert.False(t, orderValidator(nil).Validate(o).IsValid())

		o.Phone = "+4930123456"
		assert.True(t, orderValidator(nil).Validate(o).IsValid())
	})

	t.Run("checks uniqueness only on the async path", func(t *testing.T) {
		o := validOrder()
		v := orderValidator(map[string]bool{o.ID: true})

		assert.True(t, v.Validate(o).IsValid())

		out, err := v.ValidateAsync(context.Background(), o).Await()
		require.NoError(t, err)
		assert.Equal(t, []string{"order already exists"}, out.Get("ID"))
	})
}

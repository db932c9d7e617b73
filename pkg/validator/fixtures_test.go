package validator_test

import (
	"github.com/dmitrymomot/verdict/pkg/async"
	"github.com/dmitrymomot/verdict/pkg/validator"
)

type Address struct {
	Street string
	City   string
}

type Item struct {
	Code string
	Qty  int
}

type Person struct {
	Name     *string
	Email    string
	Phone    string
	Mobile   string
	IsActive bool
	Age      int
	Address  *Address
	Items    []Item
	internal string
}

func strPtr(s string) *string {
	return &s
}

func addressValidator() *validator.ModelValidator[Address] {
	v := validator.New[Address]()
	v.RuleFor(validator.MustStructField[Address]("City")).Required()
	return v
}

func itemValidator() *validator.ModelValidator[Item] {
	v := validator.New[Item]()
	v.RuleFor(validator.MustStructField[Item]("Code")).Required()
	return v
}

// check runs a single rule outside of any chain.
func check(r validator.Rule[Person], value any) validator.Outcome {
	return r.Validate(Person{}, "Field", value)
}

type asyncOutcome = async.Future[validator.Outcome]

func resolved(out validator.Outcome) *asyncOutcome {
	return async.Resolved(out)
}

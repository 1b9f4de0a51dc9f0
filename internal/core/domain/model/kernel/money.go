package kernel

import (
	"encoding/json"
	"fmt"

	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places money values are rounded to.
const MoneyScale = 2

// ErrMoneyIsNotConstructed is returned when a zero value Money is used.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney or MoneyFromString")

// Money is a non-negative amount rounded to two decimal places.
// It carries rate amounts, quote prices, booking totals and invoice amounts.
type Money struct { //nolint:recvcheck // pointer receiver only for UnmarshalJSON
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney validates and rounds amount.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount.Round(MoneyScale), guard: guard.NewConstructorGuard()}, nil
}

// MoneyFromString parses a decimal string such as "1250.50".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// ZeroMoney returns a constructed zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// Validate reports whether the value was built through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// ValidatePositive requires a constructed, strictly positive amount.
func (m Money) ValidatePositive(paramName string) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if !m.amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%s is not greater than 0", m.String()))
	}
	return nil
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), guard: guard.NewConstructorGuard()}
}

// String renders the amount with exactly two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}

// MarshalJSON renders money as a quoted decimal string to keep precision.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts either a quoted decimal string or a JSON number.
func (m *Money) UnmarshalJSON(data []byte) error {
	var amount decimal.Decimal
	if err := amount.UnmarshalJSON(data); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	parsed, err := NewMoney(amount)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

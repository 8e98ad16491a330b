package ledger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// minorUnitExp is the number of fractional digits of one minor currency unit.
const minorUnitExp = 2

var ErrInvalidAmount = errors.New("amount must be a number with at most two decimal places")

// Amount is a monetary value in minor currency units (cents).
type Amount int64

// ParseAmount parses an operator-entered decimal string such as "325.00".
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	return AmountFromDecimal(d)
}

// AmountFromDecimal converts a major-unit decimal into minor units, rejecting
// values with sub-cent precision and values that do not fit in an Amount.
func AmountFromDecimal(d decimal.Decimal) (Amount, error) {
	shifted := d.Shift(minorUnitExp)
	if !shifted.Equal(shifted.Truncate(0)) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidAmount, d.String())
	}
	if !shifted.BigInt().IsInt64() {
		return 0, fmt.Errorf("%w: %s is out of range", ErrInvalidAmount, d.String())
	}

	return Amount(shifted.IntPart()), nil
}

func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -minorUnitExp)
}

func (a Amount) String() string {
	return a.Decimal().StringFixed(minorUnitExp)
}

func (a Amount) Cents() int64 { return int64(a) }

func (a Amount) Add(b Amount) Amount { return a + b }

func (a Amount) Sub(b Amount) Amount { return a - b }

func (a Amount) Neg() Amount { return -a }

func (a Amount) IsZero() bool { return a == 0 }

func (a Amount) IsPositive() bool { return a > 0 }

func (a Amount) IsNegative() bool { return a < 0 }

// Sum adds amounts in order.
func Sum(amounts ...Amount) Amount {
	var total Amount
	for _, a := range amounts {
		total += a
	}
	return total
}

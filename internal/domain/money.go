package domain

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// DefaultCurrency is what the backend prices everything in.
var DefaultCurrency = currency.MustParseISO("RUB")

// Money is an exact decimal amount in a single currency.
// Binary floats never enter the pricing path.
type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func NewMoney(amount decimal.Decimal, unit currency.Unit) Money {
	return Money{Amount: amount, Currency: unit}
}

func ZeroMoney(unit currency.Unit) Money {
	return Money{Amount: decimal.Zero, Currency: unit}
}

// Add keeps the receiver's currency; the app is single-currency per install.
func (m Money) Add(other Money) Money {
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}
}

func (m Money) Sub(other Money) Money {
	return Money{Amount: m.Amount.Sub(other.Amount), Currency: m.Currency}
}

func (m Money) MulInt(n int) Money {
	return Money{Amount: m.Amount.Mul(decimal.NewFromInt(int64(n))), Currency: m.Currency}
}

func (m Money) Cmp(other Money) int {
	return m.Amount.Cmp(other.Amount)
}

func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

func (m Money) IsPositive() bool {
	return m.Amount.IsPositive()
}

// FloorRound truncates toward negative infinity at the units boundary,
// so the user is never granted more than entitled.
func (m Money) FloorRound() Money {
	return Money{Amount: m.Amount.Floor(), Currency: m.Currency}
}

func (m Money) String() string {
	return m.Amount.String() + " " + m.Currency.String()
}

// ParseAmount parses a decimal string coming from the settings collaborator.
// Malformed input yields zero: these values gate monetary calculations and
// must never take down the pricing path.
func ParseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/slicelab/pizzacart/internal/domain"
)

func money(t *testing.T, s string) domain.Money {
	t.Helper()
	return domain.NewMoney(decimal.RequireFromString(s), domain.DefaultCurrency)
}

func TestMoneyArithmetic(t *testing.T) {
	a := money(t, "450.00")
	b := money(t, "30.50")

	assert.True(t, a.Add(b).Amount.Equal(decimal.RequireFromString("480.50")))
	assert.True(t, a.Sub(b).Amount.Equal(decimal.RequireFromString("419.50")))
	assert.True(t, b.MulInt(3).Amount.Equal(decimal.RequireFromString("91.50")))
	assert.Equal(t, 1, a.Cmp(b))
	assert.Equal(t, -1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(money(t, "450")))
}

func TestMoneyFloorRound(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "fraction truncated", in: "12.70", want: "12"},
		{name: "whole unchanged", in: "100", want: "100"},
		{name: "negative rounds away from zero", in: "-0.5", want: "-1"},
		{name: "zero", in: "0", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := money(t, tt.in).FloorRound()
			assert.True(t, got.Amount.Equal(decimal.RequireFromString(tt.want)),
				"got %s", got.Amount)
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain decimal", in: "12.50", want: "12.5"},
		{name: "whitespace trimmed", in: "  3 ", want: "3"},
		{name: "malformed defaults to zero", in: "twelve", want: "0"},
		{name: "empty defaults to zero", in: "", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ParseAmount(tt.in)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

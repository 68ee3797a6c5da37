// Package config types the handful of backend-driven settings the ordering
// flow consults. Values arrive as a key-value map from the settings sync;
// absent or malformed entries fall back to the defaults below instead of
// propagating into the pricing path.
package config

import (
	"github.com/shopspring/decimal"

	"github.com/slicelab/pizzacart/internal/domain"
)

const (
	KeyMaxBonusRedeemPercent = "maxBonusRedeemPercent"
	KeyFreeDeliveryThreshold = "freeDeliveryThreshold"
	KeyTermsOfUseURL         = "termsOfUseUrl"

	// Redemption stays off until the backend says otherwise.
	DefaultMaxBonusRedeemPercent = 0
	DefaultTermsOfUseURL         = ""
)

type Config struct {
	// MaxBonusRedeemPercent is the 0..100 cap on the share of the
	// bonus-eligible subtotal payable with points.
	MaxBonusRedeemPercent decimal.Decimal

	// FreeDeliveryThreshold is the cart total from which delivery is free.
	// A zero threshold means the promotion is disabled.
	FreeDeliveryThreshold domain.Money

	TermsOfUseURL string
}

func Default() Config {
	return Config{
		MaxBonusRedeemPercent: decimal.NewFromInt(DefaultMaxBonusRedeemPercent),
		FreeDeliveryThreshold: domain.ZeroMoney(domain.DefaultCurrency),
		TermsOfUseURL:         DefaultTermsOfUseURL,
	}
}

// FromSettings builds a Config from the collaborator's key-value map.
// Malformed numbers parse to zero, out-of-range percentages are clamped.
func FromSettings(values map[string]string) Config {
	cfg := Default()

	if raw, ok := values[KeyMaxBonusRedeemPercent]; ok {
		cfg.MaxBonusRedeemPercent = clampPercent(domain.ParseAmount(raw))
	}
	if raw, ok := values[KeyFreeDeliveryThreshold]; ok {
		amount := domain.ParseAmount(raw)
		if amount.IsNegative() {
			amount = decimal.Zero
		}
		cfg.FreeDeliveryThreshold = domain.NewMoney(amount, domain.DefaultCurrency)
	}
	if raw, ok := values[KeyTermsOfUseURL]; ok && raw != "" {
		cfg.TermsOfUseURL = raw
	}

	return cfg
}

func clampPercent(p decimal.Decimal) decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	if p.IsNegative() {
		return decimal.Zero
	}
	if p.Cmp(hundred) > 0 {
		return hundred
	}
	return p
}

package stripeutil

import (
	"errors"

	"directory-app/config"
	"directory-app/internal/domain/subscriptions"
)

// ErrUnknownPlan means no price id is configured for a (tier, period) pair.
// Checkout treats this as a hard "invalid plan" error, never a fallback.
var ErrUnknownPlan = errors.New("unsupported plan")

// PriceForPlan resolves the static (tier, billing period) -> Stripe price id
// table. Only paid tiers have prices; free is not a checkout target.
func PriceForPlan(tier, period string) (string, error) {
	var priceID string
	switch tier {
	case subscriptions.TierBasic:
		switch period {
		case subscriptions.PeriodMonthly:
			priceID = config.STRIPE_PRICE_BASIC_MONTHLY
		case subscriptions.PeriodAnnual:
			priceID = config.STRIPE_PRICE_BASIC_ANNUAL
		}
	case subscriptions.TierPro:
		switch period {
		case subscriptions.PeriodMonthly:
			priceID = config.STRIPE_PRICE_PRO_MONTHLY
		case subscriptions.PeriodAnnual:
			priceID = config.STRIPE_PRICE_PRO_ANNUAL
		}
	}
	if priceID == "" {
		return "", ErrUnknownPlan
	}
	return priceID, nil
}

// TierForPrice maps a Stripe price id back to a tier. Unknown price ids map
// to free; the webhook synchronizer logs those as anomalies.
func TierForPrice(priceID string) (string, bool) {
	if priceID == "" {
		return subscriptions.TierFree, false
	}
	switch priceID {
	case config.STRIPE_PRICE_BASIC_MONTHLY, config.STRIPE_PRICE_BASIC_ANNUAL:
		return subscriptions.TierBasic, true
	case config.STRIPE_PRICE_PRO_MONTHLY, config.STRIPE_PRICE_PRO_ANNUAL:
		return subscriptions.TierPro, true
	default:
		return subscriptions.TierFree, false
	}
}

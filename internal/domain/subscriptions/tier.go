package subscriptions

import "strings"

// Tier constants (single source of truth)
const (
	TierFree  = "free"
	TierBasic = "basic"
	TierPro   = "pro"
)

// Billing period constants
const (
	PeriodMonthly = "monthly"
	PeriodAnnual  = "annual"
)

// ParseTier normalizes a tier read from the store or from client input.
// Anything outside the closed set collapses to free — entitlement gating
// must never see an invalid variant.
func ParseTier(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case TierBasic:
		return TierBasic
	case TierPro:
		return TierPro
	default:
		return TierFree
	}
}

// TierRank orders tiers for comparisons: free < basic < pro.
func TierRank(tier string) int {
	switch ParseTier(tier) {
	case TierPro:
		return 2
	case TierBasic:
		return 1
	default:
		return 0
	}
}

// IsPaidTier reports whether a tier can be checked out into.
func IsPaidTier(tier string) bool {
	t := strings.ToLower(strings.TrimSpace(tier))
	return t == TierBasic || t == TierPro
}

// IsBillingPeriod validates client-supplied billing period input.
func IsBillingPeriod(s string) bool {
	return s == PeriodMonthly || s == PeriodAnnual
}

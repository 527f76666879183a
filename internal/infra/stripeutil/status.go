package stripeutil

import "strings"

// NormalizeSubscriptionStatus folds Stripe's subscription statuses into the
// buckets the synchronizer cares about.
func NormalizeSubscriptionStatus(s string) string {
	switch strings.TrimSpace(s) {
	case "":
		return "none"
	case "active":
		return "active"
	case "trialing":
		return "trialing"
	case "past_due", "unpaid":
		return "past_due"
	case "canceled", "incomplete_expired":
		return "canceled"
	default:
		return strings.TrimSpace(s)
	}
}

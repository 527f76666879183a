package stripewebhooks

import (
	"errors"
	"fmt"
	"time"

	"directory-app/internal/domain/subscriptions"
	"directory-app/internal/infra/stripeutil"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// subscriptionState is everything a provider event tells us about one
// customer's subscription. Applying it to the store is a pure function of
// (customer id, these fields); the persisted row itself is the idempotency
// boundary — no event-id dedup table.
type subscriptionState struct {
	CustomerID     string
	SubscriptionID string
	PriceID        string
	Status         string
	PeriodStart    time.Time
	PeriodEnd      time.Time
	CancelAtEnd    bool
}

// nextState computes the row that should be stored after an event, given the
// row currently stored for the same customer. The second return is false
// when the event must be skipped.
//
// Ordering: provider delivery order is not trusted. An update whose period
// end is older than the stored one is stale and skipped, so replays and
// out-of-order deliveries converge on the newest period's data.
func nextState(current subscriptions.Subscription, in subscriptionState) (subscriptions.Subscription, bool) {
	if in.CustomerID == "" {
		return current, false
	}

	// Terminal status behaves like a deletion event.
	if stripeutil.NormalizeSubscriptionStatus(in.Status) == "canceled" {
		return freeState(current, in.CustomerID), true
	}

	if current.CurrentPeriodEnd != nil && !in.PeriodEnd.IsZero() &&
		in.PeriodEnd.Before(*current.CurrentPeriodEnd) {
		return current, false
	}

	tier, known := stripeutil.TierForPrice(in.PriceID)
	if !known {
		// Logged by the caller; unknown prices never grant a paid tier.
		tier = subscriptions.TierFree
	}

	next := current
	next.Tier = tier
	next.StripeCustomerID = strPtr(in.CustomerID)
	next.StripeSubscriptionID = strPtr(in.SubscriptionID)
	next.CurrentPeriodStart = timePtr(in.PeriodStart)
	next.CurrentPeriodEnd = timePtr(in.PeriodEnd)
	next.CancelAtPeriodEnd = in.CancelAtEnd
	return next, true
}

// freeState is the canonical post-cancellation row: the only path back to
// free after a paid period. The customer id link is kept so later events for
// the same customer still find the row.
func freeState(current subscriptions.Subscription, customerID string) subscriptions.Subscription {
	next := current
	next.Tier = subscriptions.TierFree
	next.StripeCustomerID = strPtr(customerID)
	next.StripeSubscriptionID = nil
	next.CurrentPeriodStart = nil
	next.CurrentPeriodEnd = nil
	next.CancelAtPeriodEnd = false
	return next
}

// upsertByCustomer persists a computed state keyed by stripe_customer_id.
// The single-row upsert is the sole concurrency primitive here; concurrent
// deliveries for the same customer are safe because each write is atomic
// and nextState skips stale payloads.
func upsertByCustomer(db *gorm.DB, operatorID uint, in subscriptionState) error {
	var current subscriptions.Subscription
	err := db.Where("stripe_customer_id = ?", in.CustomerID).First(&current).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to load subscription for customer %s: %w", in.CustomerID, err)
	}

	next, apply := nextState(current, in)
	if !apply {
		return nil
	}
	if next.OperatorID == 0 {
		next.OperatorID = operatorID
	}
	if next.OperatorID == 0 {
		return fmt.Errorf("no operator mapping for customer %s", in.CustomerID)
	}

	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "operator_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"tier",
			"stripe_customer_id",
			"stripe_subscription_id",
			"current_period_start",
			"current_period_end",
			"cancel_at_period_end",
			"updated_at",
		}),
	}).Create(&next).Error
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

package stripewebhooks

import (
	"errors"
	"fmt"
	"log"

	"directory-app/database"
	"directory-app/internal/domain/subscriptions"

	"github.com/stripe/stripe-go/v75"
	"gorm.io/gorm"
)

// handleSubscriptionDeleted reverts the row to the free tier. This is the
// only path that returns a previously paid record to free; the row itself is
// never deleted.
func handleSubscriptionDeleted(sub *stripe.Subscription) error {
	if sub.ID == "" {
		return nil
	}
	if sub.Customer == nil || sub.Customer.ID == "" {
		return fmt.Errorf("subscription %s missing customer", sub.ID)
	}
	customerID := sub.Customer.ID

	var current subscriptions.Subscription
	err := database.DB.Where("stripe_customer_id = ?", customerID).First(&current).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Customer we never tracked; acknowledge so Stripe stops retrying.
			log.Printf("subscription deleted for unknown customer %s, skipping", customerID)
			return nil
		}
		return fmt.Errorf("failed to load subscription for customer %s: %w", customerID, err)
	}

	next := freeState(current, customerID)
	if err := database.DB.Model(&subscriptions.Subscription{}).
		Where("id = ?", current.ID).
		Updates(map[string]interface{}{
			"tier":                   next.Tier,
			"stripe_subscription_id": nil,
			"current_period_start":   nil,
			"current_period_end":     nil,
			"cancel_at_period_end":   false,
		}).Error; err != nil {
		return fmt.Errorf("failed to revert subscription to free: %w", err)
	}
	return nil
}

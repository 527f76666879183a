package stripewebhooks

import (
	"fmt"
	"log"
	"time"

	"directory-app/database"
	"directory-app/internal/infra/stripeutil"

	"github.com/stripe/stripe-go/v75"
)

// handleSubscriptionUpdated covers upgrades, downgrades and renewals. Same
// derivation and upsert as checkout completion, keyed by the customer id in
// the event payload.
func handleSubscriptionUpdated(sub *stripe.Subscription) error {
	if sub.ID == "" || sub.Items == nil || len(sub.Items.Data) == 0 || sub.Items.Data[0].Price == nil {
		return fmt.Errorf("subscription missing id/items/price")
	}
	if sub.Customer == nil || sub.Customer.ID == "" {
		return fmt.Errorf("subscription %s missing customer", sub.ID)
	}

	priceID := sub.Items.Data[0].Price.ID
	if _, known := stripeutil.TierForPrice(priceID); !known {
		log.Printf("⚠️ unknown stripe price %s on subscription %s, treating as free", priceID, sub.ID)
	}

	state := subscriptionState{
		CustomerID:     sub.Customer.ID,
		SubscriptionID: sub.ID,
		PriceID:        priceID,
		Status:         string(sub.Status),
		PeriodStart:    time.Unix(sub.CurrentPeriodStart, 0),
		PeriodEnd:      time.Unix(sub.CurrentPeriodEnd, 0),
		CancelAtEnd:    sub.CancelAtPeriodEnd,
	}

	operatorID := operatorIDFromSubscriptionOrRef(sub, "")

	if err := upsertByCustomer(database.DB, operatorID, state); err != nil {
		return fmt.Errorf("failed to sync subscription update: %w", err)
	}
	return nil
}

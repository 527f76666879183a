package stripewebhooks

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"directory-app/database"
	"directory-app/internal/infra/stripeutil"

	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
	"github.com/stripe/stripe-go/v75/subscription"
)

func handleCheckoutSessionCompleted(session *stripe.CheckoutSession) error {
	// Fetch full session with expansions
	fullSession, err := checkoutsession.Get(session.ID, &stripe.CheckoutSessionParams{
		Params: stripe.Params{
			Expand: []*string{
				stripe.String("subscription"),
				stripe.String("customer"),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to fetch expanded checkout session: %w", err)
	}

	// Non-subscription checkout (one-off payment): nothing to sync, and
	// existing subscription state must not be touched.
	if fullSession.Subscription == nil || fullSession.Subscription.ID == "" {
		log.Printf("checkout session %s completed without a subscription, skipping", session.ID)
		return nil
	}
	subscriptionID := fullSession.Subscription.ID

	// Always derive state from the live subscription, not the session copy.
	subData, err := subscription.Get(subscriptionID, nil)
	if err != nil || subData == nil || subData.Items == nil || len(subData.Items.Data) == 0 || subData.Items.Data[0].Price == nil {
		return fmt.Errorf("failed to fetch subscription items: %w", err)
	}

	if fullSession.Customer == nil || fullSession.Customer.ID == "" {
		return fmt.Errorf("checkout session %s has no customer", session.ID)
	}

	operatorID := operatorIDFromSubscriptionOrRef(subData, fullSession.ClientReferenceID)

	priceID := subData.Items.Data[0].Price.ID
	if _, known := stripeutil.TierForPrice(priceID); !known {
		log.Printf("⚠️ unknown stripe price %s on subscription %s, treating as free", priceID, subscriptionID)
	}

	state := subscriptionState{
		CustomerID:     fullSession.Customer.ID,
		SubscriptionID: subscriptionID,
		PriceID:        priceID,
		Status:         string(subData.Status),
		PeriodStart:    time.Unix(subData.CurrentPeriodStart, 0),
		PeriodEnd:      time.Unix(subData.CurrentPeriodEnd, 0),
		CancelAtEnd:    subData.CancelAtPeriodEnd,
	}

	if err := upsertByCustomer(database.DB, operatorID, state); err != nil {
		return fmt.Errorf("failed to sync subscription after checkout: %w", err)
	}
	return nil
}

// operatorIDFromSubscriptionOrRef maps a provider event back to an operator:
// metadata.operator_id preferred, ClientReferenceID as fallback. Zero means
// the event carries no mapping and the row lookup by customer id must win.
func operatorIDFromSubscriptionOrRef(sub *stripe.Subscription, clientRef string) uint {
	idStr := ""
	if sub.Metadata != nil {
		idStr = sub.Metadata["operator_id"]
	}
	if idStr == "" {
		idStr = clientRef
	}
	if idStr == "" {
		return 0
	}
	id64, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		return 0
	}
	return uint(id64)
}

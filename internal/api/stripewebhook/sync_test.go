package stripewebhooks

import (
	"testing"
	"time"

	"directory-app/config"
	"directory-app/internal/domain/subscriptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setCatalog(t *testing.T) {
	t.Helper()
	config.STRIPE_PRICE_BASIC_MONTHLY = "price_basic_m"
	config.STRIPE_PRICE_BASIC_ANNUAL = "price_basic_y"
	config.STRIPE_PRICE_PRO_MONTHLY = "price_pro_m"
	config.STRIPE_PRICE_PRO_ANNUAL = "price_pro_y"
	t.Cleanup(func() {
		config.STRIPE_PRICE_BASIC_MONTHLY = ""
		config.STRIPE_PRICE_BASIC_ANNUAL = ""
		config.STRIPE_PRICE_PRO_MONTHLY = ""
		config.STRIPE_PRICE_PRO_ANNUAL = ""
	})
}

func paidState(periodEnd time.Time) subscriptionState {
	return subscriptionState{
		CustomerID:     "cus_1",
		SubscriptionID: "sub_1",
		PriceID:        "price_pro_m",
		Status:         "active",
		PeriodStart:    periodEnd.AddDate(0, -1, 0),
		PeriodEnd:      periodEnd,
	}
}

func TestNextStateAppliesPaidSubscription(t *testing.T) {
	setCatalog(t)

	end := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
	next, apply := nextState(subscriptions.Subscription{OperatorID: 7}, paidState(end))

	require.True(t, apply)
	assert.Equal(t, subscriptions.TierPro, next.Tier)
	require.NotNil(t, next.StripeCustomerID)
	assert.Equal(t, "cus_1", *next.StripeCustomerID)
	require.NotNil(t, next.StripeSubscriptionID)
	assert.Equal(t, "sub_1", *next.StripeSubscriptionID)
	require.NotNil(t, next.CurrentPeriodEnd)
	assert.True(t, next.CurrentPeriodEnd.Equal(end))
	assert.False(t, next.CancelAtPeriodEnd)
}

// Replaying the same event must converge on the same row.
func TestNextStateIsIdempotent(t *testing.T) {
	setCatalog(t)

	end := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
	in := paidState(end)

	once, apply := nextState(subscriptions.Subscription{OperatorID: 7}, in)
	require.True(t, apply)

	twice, apply := nextState(once, in)
	require.True(t, apply)
	assert.Equal(t, once, twice)
}

// Delivery order is not trusted: an event describing an older billing period
// than the stored one must be skipped, so E1/E2 converge on E2's data in
// either arrival order.
func TestNextStateSkipsStalePeriods(t *testing.T) {
	setCatalog(t)

	jan := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

	e1 := paidState(jan)
	e2 := paidState(feb)

	// in-order: e1 then e2
	s, apply := nextState(subscriptions.Subscription{OperatorID: 7}, e1)
	require.True(t, apply)
	inOrder, apply := nextState(s, e2)
	require.True(t, apply)

	// out-of-order: e2 then e1 (e1 must be skipped)
	s, apply = nextState(subscriptions.Subscription{OperatorID: 7}, e2)
	require.True(t, apply)
	outOfOrder, stale := nextState(s, e1)
	assert.False(t, stale)

	assert.Equal(t, inOrder.Tier, outOfOrder.Tier)
	assert.True(t, inOrder.CurrentPeriodEnd.Equal(*outOfOrder.CurrentPeriodEnd))
	assert.True(t, outOfOrder.CurrentPeriodEnd.Equal(feb))
}

func TestNextStateUnknownPriceFallsBackToFree(t *testing.T) {
	setCatalog(t)

	in := paidState(time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC))
	in.PriceID = "price_premium_legacy"

	next, apply := nextState(subscriptions.Subscription{OperatorID: 7}, in)
	require.True(t, apply)
	assert.Equal(t, subscriptions.TierFree, next.Tier)
}

func TestNextStateCanceledStatusRevertsToFree(t *testing.T) {
	setCatalog(t)

	end := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
	current, apply := nextState(subscriptions.Subscription{OperatorID: 7}, paidState(end))
	require.True(t, apply)

	in := paidState(end.AddDate(0, 1, 0))
	in.Status = "canceled"

	next, apply := nextState(current, in)
	require.True(t, apply)
	assert.Equal(t, subscriptions.TierFree, next.Tier)
	assert.Nil(t, next.StripeSubscriptionID)
	assert.Nil(t, next.CurrentPeriodStart)
	assert.Nil(t, next.CurrentPeriodEnd)
	assert.False(t, next.CancelAtPeriodEnd)
}

func TestNextStateRejectsMissingCustomer(t *testing.T) {
	setCatalog(t)

	in := paidState(time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC))
	in.CustomerID = ""

	_, apply := nextState(subscriptions.Subscription{OperatorID: 7}, in)
	assert.False(t, apply)
}

// Cancellation is the only path back to free after a paid period; the row
// keeps its customer link so later events still find it.
func TestFreeStateRevertsPaidRow(t *testing.T) {
	subID := "sub_1"
	end := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
	cancel := true

	current := subscriptions.Subscription{
		OperatorID:           7,
		Tier:                 subscriptions.TierPro,
		StripeSubscriptionID: &subID,
		CurrentPeriodEnd:     &end,
		CancelAtPeriodEnd:    cancel,
	}

	next := freeState(current, "cus_1")
	assert.Equal(t, subscriptions.TierFree, next.Tier)
	assert.Nil(t, next.StripeSubscriptionID)
	assert.Nil(t, next.CurrentPeriodStart)
	assert.Nil(t, next.CurrentPeriodEnd)
	assert.False(t, next.CancelAtPeriodEnd)
	require.NotNil(t, next.StripeCustomerID)
	assert.Equal(t, "cus_1", *next.StripeCustomerID)
	assert.Equal(t, uint(7), next.OperatorID)
}

package billing

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"directory-app/config"
	"directory-app/database"
	"directory-app/internal/domain/operators"
	"directory-app/internal/domain/subscriptions"
	"directory-app/internal/infra/stripeutil"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
	customer "github.com/stripe/stripe-go/v75/customer"
	"gorm.io/gorm"
)

func CreateCheckoutSession(c *gin.Context) {
	var body struct {
		Tier          string `json:"tier"`
		BillingPeriod string `json:"billing_period"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Tier == "" || body.BillingPeriod == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid tier/billing_period"})
		return
	}

	operatorID := c.GetUint("operator_id")
	if operatorID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Operator not identified"})
		return
	}

	// Plan validation comes before any provider call or store write: a bad
	// plan must not leave a billing customer behind.
	if !subscriptions.IsPaidTier(body.Tier) || !subscriptions.IsBillingPeriod(body.BillingPeriod) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tier or billing period"})
		return
	}
	priceID, err := stripeutil.PriceForPlan(subscriptions.ParseTier(body.Tier), body.BillingPeriod)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tier or billing period"})
		return
	}

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe key not configured"})
		return
	}

	var op operators.Operator
	if err := database.DB.Where("id = ?", operatorID).First(&op).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Operator not found"})
		return
	}

	if !op.IsVerified {
		c.JSON(http.StatusForbidden, gin.H{"error": "Please verify your email first"})
		return
	}

	customerID, err := ensureStripeCustomer(database.DB, &op)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	params := &stripe.CheckoutSessionParams{
		SuccessURL: stripe.String(config.APP_URL + "/billing?success=1"),
		CancelURL:  stripe.String(config.APP_URL + "/billing?canceled=1"),
		Mode:       stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		Customer:   stripe.String(customerID),

		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(priceID), Quantity: stripe.Int64(1)},
		},

		// operator_id metadata is how the webhook maps provider events back
		// to an operator without a session-id lookup table.
		ClientReferenceID: stripe.String(fmt.Sprint(op.ID)),

		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: map[string]string{
				"operator_id": fmt.Sprint(op.ID),
				"tier":        subscriptions.ParseTier(body.Tier),
			},
		},
	}

	s, err := checkoutsession.New(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout creation failed", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": s.URL})
}

// ensureStripeCustomer returns the operator's billing-customer id, creating
// one on first use. The new id is persisted on the Subscription row before
// checkout proceeds so a retried checkout reuses it instead of minting
// duplicates.
func ensureStripeCustomer(db *gorm.DB, op *operators.Operator) (string, error) {
	var sub subscriptions.Subscription
	err := db.Where("operator_id = ?", op.ID).First(&sub).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("failed to load subscription")
	}

	if sub.StripeCustomerID != nil && *sub.StripeCustomerID != "" {
		return *sub.StripeCustomerID, nil
	}

	cus, err := customer.New(&stripe.CustomerParams{
		Email: stripe.String(op.Email),
		Metadata: map[string]string{
			"operator_id": fmt.Sprint(op.ID),
			"app_env":     os.Getenv("APP_ENV"),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create billing customer")
	}

	if sub.ID == 0 {
		sub = subscriptions.Subscription{
			OperatorID:       op.ID,
			Tier:             subscriptions.TierFree,
			StripeCustomerID: stripe.String(cus.ID),
		}
		if err := db.Create(&sub).Error; err != nil {
			return "", fmt.Errorf("failed to store billing customer")
		}
		return cus.ID, nil
	}

	if err := db.Model(&subscriptions.Subscription{}).
		Where("id = ?", sub.ID).
		Update("stripe_customer_id", cus.ID).Error; err != nil {
		return "", fmt.Errorf("failed to store billing customer")
	}
	return cus.ID, nil
}

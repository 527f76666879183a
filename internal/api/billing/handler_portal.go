package billing

import (
	"errors"
	"net/http"
	"os"

	"directory-app/config"
	"directory-app/database"
	"directory-app/internal/domain/subscriptions"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	portalsession "github.com/stripe/stripe-go/v75/billingportal/session"
	"gorm.io/gorm"
)

func CreateBillingPortal(c *gin.Context) {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe key not configured"})
		return
	}

	operatorID := c.GetUint("operator_id")
	if operatorID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Operator not identified"})
		return
	}

	var sub subscriptions.Subscription
	err := database.DB.Where("operator_id = ?", operatorID).First(&sub).Error
	noCustomer := errors.Is(err, gorm.ErrRecordNotFound) ||
		(err == nil && (sub.StripeCustomerID == nil || *sub.StripeCustomerID == ""))
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load subscription"})
		return
	}
	if noCustomer {
		// Nothing to manage yet: send the caller back to the billing page.
		c.JSON(http.StatusOK, gin.H{"url": config.APP_URL + "/billing?error=no_billing_account"})
		return
	}

	portal, err := portalsession.New(&stripe.BillingPortalSessionParams{
		Customer:  stripe.String(*sub.StripeCustomerID),
		ReturnURL: stripe.String(config.APP_URL + "/billing"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create billing portal session", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": portal.URL})
}

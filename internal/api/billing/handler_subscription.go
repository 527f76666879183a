package billing

import (
	"errors"
	"net/http"

	"directory-app/database"
	"directory-app/internal/domain/entitlements"
	"directory-app/internal/domain/subscriptions"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SubscriptionDTO struct {
	Tier               string `json:"tier"`
	CancelAtPeriodEnd  bool   `json:"cancel_at_period_end"`
	CurrentPeriodStart *int64 `json:"current_period_start,omitempty"`
	CurrentPeriodEnd   *int64 `json:"current_period_end,omitempty"`
	HasBillingAccount  bool   `json:"has_billing_account"`
}

// GetSubscription returns the operator's current tier, period bounds and the
// entitlement row the UI should gate on. Tier may lag a just-completed
// checkout until the webhook lands; clients poll rather than assume a
// synchronous update.
func GetSubscription(c *gin.Context) {
	operatorID := c.GetUint("operator_id")
	if operatorID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Operator not identified"})
		return
	}

	var sub subscriptions.Subscription
	err := database.DB.Where("operator_id = ?", operatorID).First(&sub).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load subscription"})
		return
	}

	dto := SubscriptionDTO{
		Tier:              subscriptions.ParseTier(sub.Tier),
		CancelAtPeriodEnd: sub.CancelAtPeriodEnd,
		HasBillingAccount: sub.StripeCustomerID != nil && *sub.StripeCustomerID != "",
	}
	if sub.CurrentPeriodStart != nil {
		ts := sub.CurrentPeriodStart.Unix()
		dto.CurrentPeriodStart = &ts
	}
	if sub.CurrentPeriodEnd != nil {
		ts := sub.CurrentPeriodEnd.Unix()
		dto.CurrentPeriodEnd = &ts
	}

	c.JSON(http.StatusOK, gin.H{
		"subscription": dto,
		"entitlement":  entitlements.ForTier(sub.Tier),
	})
}

package admin

import (
	"net/http"
	"time"

	"directory-app/database"
	"directory-app/internal/domain/inquiries"
	"directory-app/internal/domain/operators"
	"directory-app/internal/domain/subscriptions"

	"github.com/gin-gonic/gin"
)

type AdminOperator struct {
	ID                uint       `json:"id"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	Role              string     `json:"role"`
	IsVerified        bool       `json:"is_verified"`
	Tier              string     `json:"tier"`
	StripeCustomerID  *string    `json:"stripe_customer_id,omitempty"`
	StripeSubID       *string    `json:"stripe_subscription_id,omitempty"`
	CurrentPeriodEnd  *time.Time `json:"current_period_end,omitempty"`
	CancelAtPeriodEnd bool       `json:"cancel_at_period_end"`
}

func AdminDashboard(c *gin.Context) {
	var totalOperators int64
	database.DB.Model(&operators.Operator{}).Count(&totalOperators)

	perTier := map[string]int64{}
	rows := []struct {
		Tier  string
		Count int64
	}{}
	if err := database.DB.Model(&subscriptions.Subscription{}).
		Select("tier, count(*) as count").
		Group("tier").
		Scan(&rows).Error; err == nil {
		for _, r := range rows {
			perTier[subscriptions.ParseTier(r.Tier)] += r.Count
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"total_operators":    totalOperators,
		"operators_per_tier": perTier,
	})
}

func ListAllOperators(c *gin.Context) {
	var ops []operators.Operator
	if err := database.DB.Find(&ops).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load operators"})
		return
	}

	var subs []subscriptions.Subscription
	if err := database.DB.Find(&subs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load subscriptions"})
		return
	}
	subByOperator := map[uint]subscriptions.Subscription{}
	for _, s := range subs {
		subByOperator[s.OperatorID] = s
	}

	var result []AdminOperator
	for _, op := range ops {
		sub := subByOperator[op.ID]
		result = append(result, AdminOperator{
			ID:                op.ID,
			Name:              op.Name,
			Email:             op.Email,
			Role:              op.Role,
			IsVerified:        op.IsVerified,
			Tier:              subscriptions.ParseTier(sub.Tier),
			StripeCustomerID:  sub.StripeCustomerID,
			StripeSubID:       sub.StripeSubscriptionID,
			CurrentPeriodEnd:  sub.CurrentPeriodEnd,
			CancelAtPeriodEnd: sub.CancelAtPeriodEnd,
		})
	}

	c.JSON(http.StatusOK, result)
}

func GetOperatorDetails(c *gin.Context) {
	var op operators.Operator
	if err := database.DB.Where("id = ?", c.Param("id")).First(&op).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Operator not found"})
		return
	}

	var sub subscriptions.Subscription
	_ = database.DB.Where("operator_id = ?", op.ID).First(&sub).Error

	c.JSON(http.StatusOK, gin.H{
		"operator":     op,
		"subscription": sub,
	})
}

func ListAllInquiries(c *gin.Context) {
	var result []inquiries.Inquiry
	if err := database.DB.Order("created_at DESC").Limit(200).Find(&result).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load inquiries"})
		return
	}

	c.JSON(http.StatusOK, result)
}

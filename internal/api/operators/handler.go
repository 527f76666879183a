package operators

import (
	"errors"
	"fmt"
	"net/http"

	"directory-app/database"
	"directory-app/internal/domain/entitlements"
	"directory-app/internal/domain/operators"
	"directory-app/internal/domain/subscriptions"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetCurrentOperator(c *gin.Context) {
	operatorID := c.GetUint("operator_id")
	if operatorID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var op operators.Operator
	if err := database.DB.Where("id = ?", operatorID).First(&op).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Operator not found"})
		return
	}

	var sub subscriptions.Subscription
	err := database.DB.Where("operator_id = ?", operatorID).First(&sub).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load subscription"})
		return
	}

	ent := entitlements.ForTier(sub.Tier)

	subDTO := SubscriptionDTO{
		Tier:              subscriptions.ParseTier(sub.Tier),
		CancelAtPeriodEnd: sub.CancelAtPeriodEnd,
	}
	if sub.CurrentPeriodEnd != nil {
		ts := sub.CurrentPeriodEnd.Unix()
		subDTO.CurrentPeriodEnd = &ts
	}

	resp := MeResponse{
		Operator:     buildOperatorDTO(op, ent),
		Subscription: subDTO,
		Entitlement:  ent,
	}

	c.JSON(http.StatusOK, resp)
}

// buildOperatorDTO applies entitlement gating to the outgoing profile:
// contact and branding fields the tier does not grant are never exposed,
// whatever is stored.
func buildOperatorDTO(op operators.Operator, ent entitlements.Entitlement) OperatorDTO {
	dto := OperatorDTO{
		ID:          op.ID,
		Name:        op.Name,
		Email:       op.Email,
		Role:        op.Role,
		IsVerified:  op.IsVerified,
		Description: clampDescription(op.Description, ent.DescriptionLength),
	}
	if ent.HasPhone {
		dto.Phone = op.Phone
	}
	if ent.HasWebsite {
		dto.Website = op.Website
	}
	if ent.HasLogo {
		dto.LogoURL = op.LogoURL
	}
	if ent.HasSocialLinks {
		dto.Facebook = op.Facebook
		dto.Instagram = op.Instagram
	}
	return dto
}

func clampDescription(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	return s[:limit]
}

func UpdateProfile(c *gin.Context) {
	operatorID := c.GetUint("operator_id")
	if operatorID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Phone       *string `json:"phone"`
		Website     *string `json:"website"`
		LogoURL     *string `json:"logo_url"`
		Facebook    *string `json:"facebook"`
		Instagram   *string `json:"instagram"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
		return
	}

	ent, err := entitlements.Resolve(database.DB, operatorID)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Entitlement unavailable"})
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		if *input.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name cannot be empty"})
			return
		}
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		if len(*input.Description) > ent.DescriptionLength {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("Description exceeds the %d character limit for your plan", ent.DescriptionLength),
			})
			return
		}
		updates["description"] = *input.Description
	}
	if input.Phone != nil {
		if !ent.HasPhone {
			c.JSON(http.StatusForbidden, gin.H{"error": "Your plan does not include a phone number"})
			return
		}
		updates["phone"] = *input.Phone
	}
	if input.Website != nil {
		if !ent.HasWebsite {
			c.JSON(http.StatusForbidden, gin.H{"error": "Your plan does not include a website link"})
			return
		}
		updates["website"] = *input.Website
	}
	if input.LogoURL != nil {
		if !ent.HasLogo {
			c.JSON(http.StatusForbidden, gin.H{"error": "Your plan does not include a logo"})
			return
		}
		updates["logo_url"] = *input.LogoURL
	}
	if input.Facebook != nil || input.Instagram != nil {
		if !ent.HasSocialLinks {
			c.JSON(http.StatusForbidden, gin.H{"error": "Your plan does not include social links"})
			return
		}
		if input.Facebook != nil {
			updates["facebook"] = *input.Facebook
		}
		if input.Instagram != nil {
			updates["instagram"] = *input.Instagram
		}
	}

	if len(updates) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Nothing to update"})
		return
	}

	if err := database.DB.Model(&operators.Operator{}).
		Where("id = ?", operatorID).
		Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}

// GetAnalytics is pro-only (HasAnalytics); the route is wrapped in
// RequireFeature so this handler only runs for entitled operators.
func GetAnalytics(c *gin.Context) {
	operatorID := c.GetUint("operator_id")
	if operatorID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var listingCount int64
	if err := database.DB.Table("listings").Where("operator_id = ?", operatorID).Count(&listingCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load analytics"})
		return
	}

	var inquiryCount int64
	if err := database.DB.Table("inquiries").Where("operator_id = ?", operatorID).Count(&inquiryCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load analytics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"listings":  listingCount,
		"inquiries": inquiryCount,
	})
}

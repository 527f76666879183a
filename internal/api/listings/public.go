package listings

import (
	"net/http"

	"directory-app/database"
	"directory-app/internal/domain/entitlements"
	"directory-app/internal/domain/listings"
	"directory-app/internal/domain/operators"
	"directory-app/internal/domain/subscriptions"

	"github.com/gin-gonic/gin"
)

type PublicOperatorDTO struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Website     *string `json:"website,omitempty"`
	LogoURL     *string `json:"logo_url,omitempty"`
	Facebook    *string `json:"facebook,omitempty"`
	Instagram   *string `json:"instagram,omitempty"`
	IsFeatured  bool    `json:"is_featured"`
	IsVerified  bool    `json:"is_verified"`
	HasInquiry  bool    `json:"has_inquiry_form"`
}

// ListPublicListings is the public directory view: published listings only,
// featured operators first.
func ListPublicListings(c *gin.Context) {
	q := database.DB.
		Preload("Images").
		Where("published = ?", true)

	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}
	if location := c.Query("location"); location != "" {
		q = q.Where("location ILIKE ?", "%"+location+"%")
	}

	var result []listings.Listing
	if err := q.Order("created_at DESC").Limit(100).Find(&result).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load listings"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetPublicListing returns one published listing together with its
// operator's public profile, filtered through the operator's entitlement.
// Entitlement is resolved fresh on every request: a tier change via webhook
// shows up on the next page load.
func GetPublicListing(c *gin.Context) {
	var listing listings.Listing
	if err := database.DB.
		Preload("Images").
		Where("id = ? AND published = ?", c.Param("id"), true).
		First(&listing).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	var op operators.Operator
	if err := database.DB.Where("id = ?", listing.OperatorID).First(&op).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Operator not found"})
		return
	}

	ent, err := entitlements.Resolve(database.DB, op.ID)
	if err != nil {
		// Degrade to free-tier presentation rather than failing the page.
		ent = entitlements.ForTier(subscriptions.TierFree)
	}

	dto := PublicOperatorDTO{
		ID:          op.ID,
		Name:        op.Name,
		Description: clampDescription(op.Description, ent.DescriptionLength),
		IsFeatured:  ent.IsFeatured,
		IsVerified:  ent.IsVerified,
		HasInquiry:  ent.HasInquiryForm,
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

	c.JSON(http.StatusOK, gin.H{
		"listing":  listing,
		"operator": dto,
	})
}

func clampDescription(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	return s[:limit]
}

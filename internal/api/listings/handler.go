package listings

import (
	"fmt"
	"net/http"

	"directory-app/database"
	"directory-app/internal/domain/entitlements"
	"directory-app/internal/domain/listings"

	"github.com/gin-gonic/gin"
)

func loadOwnedListing(c *gin.Context, id string) (*listings.Listing, bool) {
	operatorID := c.GetUint("operator_id")
	if operatorID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}

	var listing listings.Listing
	if err := database.DB.Where("id = ? AND operator_id = ?", id, operatorID).First(&listing).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return nil, false
	}
	return &listing, true
}

func GetMyListings(c *gin.Context) {
	operatorID := c.GetUint("operator_id")
	if operatorID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var result []listings.Listing
	if err := database.DB.
		Preload("Images").
		Where("operator_id = ?", operatorID).
		Order("created_at DESC").
		Find(&result).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load listings"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func CreateListing(c *gin.Context) {
	operatorID := c.GetUint("operator_id")
	if operatorID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		Location    string `json:"location"`
		Category    string `json:"category"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid title"})
		return
	}

	ent, err := entitlements.Resolve(database.DB, operatorID)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Entitlement unavailable"})
		return
	}
	if len(input.Description) > ent.DescriptionLength {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Description exceeds the %d character limit for your plan", ent.DescriptionLength),
		})
		return
	}

	listing := listings.Listing{
		OperatorID:  operatorID,
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		Category:    input.Category,
	}
	if err := database.DB.Create(&listing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create listing"})
		return
	}

	c.JSON(http.StatusCreated, listing)
}

func UpdateListing(c *gin.Context) {
	listing, ok := loadOwnedListing(c, c.Param("id"))
	if !ok {
		return
	}

	var input struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Location    *string `json:"location"`
		Category    *string `json:"category"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
		return
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		if *input.Title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title cannot be empty"})
			return
		}
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		ent, err := entitlements.Resolve(database.DB, listing.OperatorID)
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Entitlement unavailable"})
			return
		}
		if len(*input.Description) > ent.DescriptionLength {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("Description exceeds the %d character limit for your plan", ent.DescriptionLength),
			})
			return
		}
		updates["description"] = *input.Description
	}
	if input.Location != nil {
		updates["location"] = *input.Location
	}
	if input.Category != nil {
		updates["category"] = *input.Category
	}

	if len(updates) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Nothing to update"})
		return
	}

	if err := database.DB.Model(&listings.Listing{}).
		Where("id = ?", listing.ID).
		Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update listing"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Listing updated"})
}

func DeleteListing(c *gin.Context) {
	listing, ok := loadOwnedListing(c, c.Param("id"))
	if !ok {
		return
	}

	if err := database.DB.Delete(&listings.Listing{}, "id = ?", listing.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete listing"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Listing deleted"})
}

func PublishListing(c *gin.Context) {
	setPublished(c, true)
}

func UnpublishListing(c *gin.Context) {
	setPublished(c, false)
}

func setPublished(c *gin.Context, published bool) {
	listing, ok := loadOwnedListing(c, c.Param("id"))
	if !ok {
		return
	}

	if err := database.DB.Model(&listings.Listing{}).
		Where("id = ?", listing.ID).
		Update("published", published).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update listing"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Listing updated", "published": published})
}

// AddListingImage enforces the tier's image limit, counted fresh per request
// across all of the operator's listings.
func AddListingImage(c *gin.Context) {
	listing, ok := loadOwnedListing(c, c.Param("id"))
	if !ok {
		return
	}

	var input struct {
		URL     string `json:"url" binding:"required"`
		AltText string `json:"alt_text"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid url"})
		return
	}

	ent, err := entitlements.Resolve(database.DB, listing.OperatorID)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Entitlement unavailable"})
		return
	}

	var count int64
	if err := database.DB.Model(&listings.ListingImage{}).
		Joins("JOIN listings ON listings.id = listing_images.listing_id").
		Where("listings.operator_id = ?", listing.OperatorID).
		Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count images"})
		return
	}
	if count >= int64(ent.ImageLimit) {
		c.JSON(http.StatusForbidden, gin.H{
			"error": fmt.Sprintf("Your plan allows at most %d images", ent.ImageLimit),
		})
		return
	}

	img := listings.ListingImage{
		ListingID: listing.ID,
		SortIndex: int(count),
		URL:       input.URL,
		AltText:   input.AltText,
	}
	if err := database.DB.Create(&img).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add image"})
		return
	}

	c.JSON(http.StatusCreated, img)
}

func DeleteListingImage(c *gin.Context) {
	listing, ok := loadOwnedListing(c, c.Param("id"))
	if !ok {
		return
	}

	imageID := c.Param("imageId")
	res := database.DB.Where("id = ? AND listing_id = ?", imageID, listing.ID).Delete(&listings.ListingImage{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Image deleted"})
}

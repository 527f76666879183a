package listings

import (
	"fmt"
	"net/http"
	"regexp"

	"directory-app/database"
	"directory-app/internal/api/auth"
	"directory-app/internal/domain/entitlements"
	"directory-app/internal/domain/inquiries"
	"directory-app/internal/domain/listings"
	"directory-app/internal/domain/operators"

	"github.com/gin-gonic/gin"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// SubmitInquiry handles a visitor inquiry on a published listing. The form
// is an entitlement of the listing's owner: free and basic operators have no
// inquiry form, so submissions against their listings are rejected with 403.
// Gating fails closed — an unresolvable entitlement rejects the request.
func SubmitInquiry(c *gin.Context) {
	var input struct {
		SenderName  string `json:"sender_name" binding:"required"`
		SenderEmail string `json:"sender_email" binding:"required"`
		Message     string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing name, email or message"})
		return
	}
	if !emailPattern.MatchString(input.SenderEmail) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}

	var listing listings.Listing
	if err := database.DB.Where("id = ? AND published = ?", c.Param("id"), true).First(&listing).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	ent, err := entitlements.Resolve(database.DB, listing.OperatorID)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Inquiry form unavailable"})
		return
	}
	if !ent.HasInquiryForm {
		c.JSON(http.StatusForbidden, gin.H{"error": "This operator does not accept inquiries"})
		return
	}

	inquiry := inquiries.Inquiry{
		OperatorID:  listing.OperatorID,
		ListingID:   listing.ID,
		SenderName:  input.SenderName,
		SenderEmail: input.SenderEmail,
		Message:     input.Message,
	}
	if err := database.DB.Create(&inquiry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record inquiry"})
		return
	}

	var op operators.Operator
	if err := database.DB.Where("id = ?", listing.OperatorID).First(&op).Error; err == nil {
		if err := auth.SendInquiryEmail(op.Email, listing.Title, input.SenderName, input.SenderEmail, input.Message); err != nil {
			fmt.Println("❌ Failed to send inquiry email:", err)
		}
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Inquiry sent"})
}

// GetInquiries is the operator's inbox; the route is wrapped in
// RequireFeature(HasInquiryForm).
func GetInquiries(c *gin.Context) {
	operatorID := c.GetUint("operator_id")
	if operatorID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var result []inquiries.Inquiry
	if err := database.DB.
		Where("operator_id = ?", operatorID).
		Order("created_at DESC").
		Find(&result).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load inquiries"})
		return
	}

	c.JSON(http.StatusOK, result)
}

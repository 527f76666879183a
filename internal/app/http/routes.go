package routes

import (
	adminapi "directory-app/internal/api/admin"
	authapi "directory-app/internal/api/auth"
	"directory-app/internal/api/billing"
	listingsapi "directory-app/internal/api/listings"
	operatorsapi "directory-app/internal/api/operators"
	stripewebhooks "directory-app/internal/api/stripewebhook"
	"directory-app/internal/app/http/middleware"
	"directory-app/internal/domain/entitlements"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Webhook is signed raw-body; it must bypass the JSON sanitizer.
	r.POST("/webhook", stripewebhooks.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/verify", authapi.VerifyEmail)
	public.POST("/request-password-reset", authapi.RequestPasswordReset)
	public.POST("/reset-password", authapi.ResetPassword)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Public directory
	public.GET("/directory", listingsapi.ListPublicListings)
	public.GET("/directory/listings/:id", listingsapi.GetPublicListing)
	public.POST("/directory/listings/:id/inquiries", listingsapi.SubmitInquiry)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", operatorsapi.GetCurrentOperator)
	auth.PUT("/me", operatorsapi.UpdateProfile)

	auth.GET("/subscription", billing.GetSubscription)
	auth.POST("/billing/checkout", billing.CreateCheckoutSession)
	auth.POST("/billing/portal", billing.CreateBillingPortal)

	auth.GET("/listings", listingsapi.GetMyListings)
	auth.POST("/listings", listingsapi.CreateListing)
	auth.PUT("/listings/:id", listingsapi.UpdateListing)
	auth.DELETE("/listings/:id", listingsapi.DeleteListing)
	auth.POST("/listings/:id/publish", listingsapi.PublishListing)
	auth.POST("/listings/:id/unpublish", listingsapi.UnpublishListing)
	auth.POST("/listings/:id/images", listingsapi.AddListingImage)
	auth.DELETE("/listings/:id/images/:imageId", listingsapi.DeleteListingImage)

	// Feature-gated (entitlement resolved fresh per request)
	auth.GET("/inquiries",
		middleware.RequireFeature(func(e entitlements.Entitlement) bool { return e.HasInquiryForm }),
		listingsapi.GetInquiries)
	auth.GET("/analytics",
		middleware.RequireFeature(func(e entitlements.Entitlement) bool { return e.HasAnalytics }),
		operatorsapi.GetAnalytics)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/operators", adminapi.ListAllOperators)
	admin.GET("/operators/:id", adminapi.GetOperatorDetails)
	admin.GET("/inquiries", adminapi.ListAllInquiries)
}

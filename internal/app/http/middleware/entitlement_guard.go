package middleware

import (
	"net/http"

	"directory-app/database"
	"directory-app/internal/domain/entitlements"

	"github.com/gin-gonic/gin"
)

// RequireFeature gates a route on one entitlement flag, resolved fresh per
// request (tier can change under us via webhook at any time). Resolution
// failure rejects the request; it never grants.
func RequireFeature(check func(entitlements.Entitlement) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		operatorID := c.GetUint("operator_id")
		if operatorID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Operator not identified"})
			return
		}

		ent, err := entitlements.Resolve(database.DB, operatorID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Entitlement unavailable"})
			return
		}

		if !check(ent) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Your plan does not include this feature"})
			return
		}

		c.Next()
	}
}

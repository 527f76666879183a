package entitlements

import (
	"errors"
	"fmt"

	"directory-app/internal/domain/subscriptions"

	"gorm.io/gorm"
)

// ErrUnavailable is returned when the subscription store cannot be read.
// Callers choose between degrading to free-tier behavior and rejecting the
// request; they must never treat it as a grant.
var ErrUnavailable = errors.New("entitlement unavailable")

// Resolve loads the operator's current tier and returns its entitlement row.
// A missing subscription row means free tier. Purely a read.
func Resolve(db *gorm.DB, operatorID uint) (Entitlement, error) {
	var sub subscriptions.Subscription
	err := db.Where("operator_id = ?", operatorID).First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ForTier(subscriptions.TierFree), nil
		}
		return ForTier(subscriptions.TierFree), fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return ForTier(sub.Tier), nil
}

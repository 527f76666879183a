package subscriptions

import "time"

// Subscription is the single billing row per operator. It is created with
// tier=free at signup and only ever updated in place: cancellation reverts
// the paid fields instead of deleting the row.
//
// operator_id is the upsert key for application writes; stripe_customer_id
// is the lookup key used by the webhook synchronizer and must stay unique
// for that path to be correct.
type Subscription struct {
	ID         uint `gorm:"primaryKey"`
	OperatorID uint `gorm:"column:operator_id;not null;uniqueIndex:idx_subscriptions_operator_id"`

	Tier string `gorm:"column:tier;type:varchar(20);not null;default:'free'"`

	StripeCustomerID     *string `gorm:"column:stripe_customer_id;uniqueIndex:idx_subscriptions_stripe_customer_id"`
	StripeSubscriptionID *string `gorm:"column:stripe_subscription_id;uniqueIndex:idx_subscriptions_stripe_subscription_id"`

	CurrentPeriodStart *time.Time `gorm:"column:current_period_start"`
	CurrentPeriodEnd   *time.Time `gorm:"column:current_period_end"`
	CancelAtPeriodEnd  bool       `gorm:"column:cancel_at_period_end;not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

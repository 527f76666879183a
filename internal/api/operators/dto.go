package operators

import "directory-app/internal/domain/entitlements"

type OperatorDTO struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Role        string  `json:"role"`
	IsVerified  bool    `json:"is_verified"`
	Description string  `json:"description,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Website     *string `json:"website,omitempty"`
	LogoURL     *string `json:"logo_url,omitempty"`
	Facebook    *string `json:"facebook,omitempty"`
	Instagram   *string `json:"instagram,omitempty"`
}

type SubscriptionDTO struct {
	Tier              string `json:"tier"`
	CancelAtPeriodEnd bool   `json:"cancel_at_period_end"`
	CurrentPeriodEnd  *int64 `json:"current_period_end,omitempty"`
}

type MeResponse struct {
	Operator     OperatorDTO              `json:"operator"`
	Subscription SubscriptionDTO          `json:"subscription"`
	Entitlement  entitlements.Entitlement `json:"entitlement"`
}

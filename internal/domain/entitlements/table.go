package entitlements

import "directory-app/internal/domain/subscriptions"

// Entitlement is the concrete set of feature flags and limits a tier grants.
type Entitlement struct {
	Tier              string `json:"tier"`
	ImageLimit        int    `json:"image_limit"`
	DescriptionLength int    `json:"description_length"`
	HasPhone          bool   `json:"has_phone"`
	HasWebsite        bool   `json:"has_website"`
	HasLogo           bool   `json:"has_logo"`
	HasSocialLinks    bool   `json:"has_social_links"`
	HasAnalytics      bool   `json:"has_analytics"`
	HasInquiryForm    bool   `json:"has_inquiry_form"`
	IsFeatured        bool   `json:"is_featured"`
	IsVerified        bool   `json:"is_verified"`
}

// table is the static tier -> entitlement mapping. Flags must stay monotonic
// across free -> basic -> pro: a higher tier never loses a capability.
var table = map[string]Entitlement{
	subscriptions.TierFree: {
		Tier:              subscriptions.TierFree,
		ImageLimit:        1,
		DescriptionLength: 200,
	},
	subscriptions.TierBasic: {
		Tier:              subscriptions.TierBasic,
		ImageLimit:        5,
		DescriptionLength: 1000,
		HasPhone:          true,
		HasWebsite:        true,
		HasLogo:           true,
	},
	subscriptions.TierPro: {
		Tier:              subscriptions.TierPro,
		ImageLimit:        20,
		DescriptionLength: 5000,
		HasPhone:          true,
		HasWebsite:        true,
		HasLogo:           true,
		HasSocialLinks:    true,
		HasAnalytics:      true,
		HasInquiryForm:    true,
		IsFeatured:        true,
		IsVerified:        true,
	},
}

// ForTier returns the entitlement row for a tier. Unknown or corrupt tier
// values fail closed to the free row.
func ForTier(tier string) Entitlement {
	if e, ok := table[subscriptions.ParseTier(tier)]; ok {
		return e
	}
	return table[subscriptions.TierFree]
}

// Tiers lists the known tiers in ascending order.
func Tiers() []string {
	return []string{subscriptions.TierFree, subscriptions.TierBasic, subscriptions.TierPro}
}

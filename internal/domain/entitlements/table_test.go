package entitlements

import (
	"testing"

	"directory-app/internal/domain/subscriptions"

	"github.com/stretchr/testify/assert"
)

// Every flag and limit must be non-decreasing from free to basic to pro: a
// higher tier never has strictly fewer capabilities than a lower one.
func TestEntitlementsAreMonotonic(t *testing.T) {
	tiers := Tiers()
	for i := 1; i < len(tiers); i++ {
		lower := ForTier(tiers[i-1])
		higher := ForTier(tiers[i])

		assert.GreaterOrEqual(t, higher.ImageLimit, lower.ImageLimit, "%s vs %s: image limit", tiers[i], tiers[i-1])
		assert.GreaterOrEqual(t, higher.DescriptionLength, lower.DescriptionLength, "%s vs %s: description length", tiers[i], tiers[i-1])

		bools := map[string][2]bool{
			"has_phone":        {lower.HasPhone, higher.HasPhone},
			"has_website":      {lower.HasWebsite, higher.HasWebsite},
			"has_logo":         {lower.HasLogo, higher.HasLogo},
			"has_social_links": {lower.HasSocialLinks, higher.HasSocialLinks},
			"has_analytics":    {lower.HasAnalytics, higher.HasAnalytics},
			"has_inquiry_form": {lower.HasInquiryForm, higher.HasInquiryForm},
			"is_featured":      {lower.IsFeatured, higher.IsFeatured},
			"is_verified":      {lower.IsVerified, higher.IsVerified},
		}
		for name, pair := range bools {
			if pair[0] {
				assert.True(t, pair[1], "%s lost %s compared to %s", tiers[i], name, tiers[i-1])
			}
		}
	}
}

func TestForTierFailsClosed(t *testing.T) {
	free := ForTier(subscriptions.TierFree)

	assert.Equal(t, free, ForTier(""))
	assert.Equal(t, free, ForTier("premium"))
	assert.Equal(t, free, ForTier("PRO GOLD"))
}

func TestForTierKnownTiers(t *testing.T) {
	assert.Equal(t, subscriptions.TierBasic, ForTier("basic").Tier)
	assert.Equal(t, subscriptions.TierPro, ForTier("pro").Tier)

	pro := ForTier(subscriptions.TierPro)
	assert.True(t, pro.HasInquiryForm)
	assert.True(t, pro.HasAnalytics)
	assert.True(t, pro.IsFeatured)
	assert.True(t, pro.IsVerified)

	basic := ForTier(subscriptions.TierBasic)
	assert.False(t, basic.HasInquiryForm)
	assert.False(t, basic.HasAnalytics)
	assert.True(t, basic.HasPhone)
}

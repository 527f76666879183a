package operators

import (
	"strings"
	"testing"

	"directory-app/internal/domain/entitlements"
	operatorsdomain "directory-app/internal/domain/operators"
	"directory-app/internal/domain/subscriptions"

	"github.com/stretchr/testify/assert"
)

func sampleOperator() operatorsdomain.Operator {
	phone := "+49 123 456"
	website := "https://reef.example"
	logo := "https://cdn.example/logo.png"
	fb := "reeftours"
	return operatorsdomain.Operator{
		ID:          7,
		Name:        "Reef Tours",
		Email:       "owner@reef.example",
		Description: strings.Repeat("x", 600),
		Phone:       &phone,
		Website:     &website,
		LogoURL:     &logo,
		Facebook:    &fb,
	}
}

// The outgoing profile must never expose fields the tier does not grant,
// regardless of what is stored.
func TestBuildOperatorDTOFreeTierHidesGatedFields(t *testing.T) {
	dto := buildOperatorDTO(sampleOperator(), entitlements.ForTier(subscriptions.TierFree))

	assert.Nil(t, dto.Phone)
	assert.Nil(t, dto.Website)
	assert.Nil(t, dto.LogoURL)
	assert.Nil(t, dto.Facebook)
	assert.Nil(t, dto.Instagram)

	// description clamped to the free limit
	assert.Len(t, dto.Description, entitlements.ForTier(subscriptions.TierFree).DescriptionLength)
}

func TestBuildOperatorDTOProTierExposesEverything(t *testing.T) {
	op := sampleOperator()
	dto := buildOperatorDTO(op, entitlements.ForTier(subscriptions.TierPro))

	assert.Equal(t, op.Phone, dto.Phone)
	assert.Equal(t, op.Website, dto.Website)
	assert.Equal(t, op.LogoURL, dto.LogoURL)
	assert.Equal(t, op.Facebook, dto.Facebook)
	assert.Equal(t, op.Description, dto.Description)
}

func TestClampDescription(t *testing.T) {
	assert.Equal(t, "short", clampDescription("short", 200))
	assert.Equal(t, "ab", clampDescription("abcdef", 2))
	assert.Equal(t, "abcdef", clampDescription("abcdef", 0))
}

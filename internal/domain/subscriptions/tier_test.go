package subscriptions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTier(t *testing.T) {
	assert.Equal(t, TierFree, ParseTier("free"))
	assert.Equal(t, TierBasic, ParseTier("basic"))
	assert.Equal(t, TierPro, ParseTier("pro"))

	// normalization
	assert.Equal(t, TierPro, ParseTier("  PRO "))
	assert.Equal(t, TierBasic, ParseTier("Basic"))

	// everything outside the closed set fails closed to free
	assert.Equal(t, TierFree, ParseTier(""))
	assert.Equal(t, TierFree, ParseTier("premium"))
	assert.Equal(t, TierFree, ParseTier("enterprise"))
	assert.Equal(t, TierFree, ParseTier("garbage"))
}

func TestTierRank(t *testing.T) {
	assert.Less(t, TierRank(TierFree), TierRank(TierBasic))
	assert.Less(t, TierRank(TierBasic), TierRank(TierPro))

	// unknown tiers rank as free
	assert.Equal(t, TierRank(TierFree), TierRank("premium"))
}

func TestIsPaidTier(t *testing.T) {
	assert.False(t, IsPaidTier(TierFree))
	assert.True(t, IsPaidTier(TierBasic))
	assert.True(t, IsPaidTier(TierPro))
	assert.False(t, IsPaidTier("premium"))
}

func TestIsBillingPeriod(t *testing.T) {
	assert.True(t, IsBillingPeriod(PeriodMonthly))
	assert.True(t, IsBillingPeriod(PeriodAnnual))
	assert.False(t, IsBillingPeriod("weekly"))
	assert.False(t, IsBillingPeriod(""))
}

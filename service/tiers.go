package service

import (
	"math"

	"gitlab.com/digitory/partner_portal_api/model"
)

// ComputeTierProgress reports a reseller's standing on the partner ladder.
// Progress is the rounded average of two capped percentages: referral count
// against the next tier's referral threshold and accumulated earnings against
// its revenue threshold. A reseller on the top tier reports 100 with no next
// tier. The calculation only reports; promoting stays a manual admin action.
func (service *Service) ComputeTierProgress(reseller *model.Reseller) (*model.TierProgress, error) {
	progress := model.TierProgress{CurrentTier: reseller.Tier}
	nextTier, ok := reseller.Tier.Next()
	if !ok {
		progress.Progress = 100
		return &progress, nil
	}
	configs, err := service.GetTierConfigs()
	if err != nil {
		return nil, err
	}
	var next *model.TierConfig
	for i := range configs {
		if configs[i].Tier == nextTier {
			next = &configs[i]
			break
		}
	}
	if next == nil {
		// ladder rung missing from the store, nothing to measure against
		progress.Progress = 100
		return &progress, nil
	}
	progress.NextTier = &next.Tier

	var referralCount int64
	db := service.repo.ConnReader.Table("referrals").
		Where("reseller_id = ?", reseller.ID).
		Count(&referralCount)
	if db.Error != nil {
		return nil, db.Error
	}
	earnings := model.MoneyToFloat(model.MoneyColumnValue(reseller.TotalEarnings))

	progress.Progress = int(math.Round((cappedPercent(float64(referralCount), float64(next.MinReferrals)) +
		cappedPercent(earnings, model.MoneyToFloat(model.MoneyColumnValue(next.MinRevenue)))) / 2))
	return &progress, nil
}

// cappedPercent reports value against threshold as a percentage capped at
// 100. A zero threshold counts as already met.
func cappedPercent(value, threshold float64) float64 {
	if threshold <= 0 {
		return 100
	}
	return math.Min(100, value/threshold*100)
}

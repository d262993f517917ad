package service

import (
	"gitlab.com/digitory/partner_portal_api/model"
)

// MonthlyRevenue is one month bucket of referral volume and closed revenue
type MonthlyRevenue struct {
	Month     string  `json:"month"`
	Referrals int64   `json:"referrals"`
	Revenue   float64 `json:"revenue"`
}

// ResellerPerformance is one row of the per-partner report
type ResellerPerformance struct {
	ResellerID     uint64  `gorm:"column:reseller_id" json:"reseller_id"`
	Name           string  `json:"name"`
	CompanyName    string  `gorm:"column:company_name" json:"company_name"`
	Tier           string  `json:"tier"`
	Referrals      int64   `gorm:"column:referrals" json:"referrals"`
	CommissionsSum float64 `gorm:"column:commissions_sum" json:"commissions_sum"`
	PaidSum        float64 `gorm:"column:paid_sum" json:"paid_sum"`
	TotalEarnings  float64 `gorm:"column:total_earnings" json:"total_earnings"`
}

// PipelineStage is one pipeline bucket with its open estimated value
type PipelineStage struct {
	Status       model.ReferralStatus `json:"status"`
	Count        int64                `json:"count"`
	EstimatedSum float64              `gorm:"column:estimated_sum" json:"estimated_sum"`
}

// Reports bundles the admin reporting page
type Reports struct {
	Monthly   []MonthlyRevenue      `json:"monthly"`
	Resellers []ResellerPerformance `json:"resellers"`
	Pipeline  []PipelineStage       `json:"pipeline"`
}

// GetReports builds the admin reporting aggregates: six months of referral
// volume and closed revenue, per-partner rollups and the pipeline breakdown
func (service *Service) GetReports() (*Reports, error) {
	reports := Reports{
		Resellers: make([]ResellerPerformance, 0),
		Pipeline:  make([]PipelineStage, 0),
	}

	monthly, err := service.monthlyRevenue(dashboardMonths)
	if err != nil {
		return nil, err
	}
	reports.Monthly = monthly

	db := service.repo.ConnReader.Table("resellers").
		Select("resellers.id as reseller_id, users.name as name, resellers.company_name as company_name, resellers.tier as tier, " +
			"(select count(*) from referrals where referrals.reseller_id = resellers.id) as referrals, " +
			"coalesce((select sum(commission_amount) from commissions where commissions.reseller_id = resellers.id), 0) as commissions_sum, " +
			"coalesce((select sum(commission_amount) from commissions where commissions.reseller_id = resellers.id and commissions.status = 'paid'), 0) as paid_sum, " +
			"resellers.total_earnings as total_earnings").
		Joins("inner join users on users.id = resellers.user_id").
		Order("resellers.total_earnings DESC").
		Find(&reports.Resellers)
	if db.Error != nil {
		return nil, db.Error
	}

	db = service.repo.ConnReader.Table("referrals").
		Select("referrals.status as status, count(*) as count, coalesce(sum(referrals.estimated_value), 0) as estimated_sum").
		Group("referrals.status").
		Find(&reports.Pipeline)
	if db.Error != nil {
		return nil, db.Error
	}
	return &reports, nil
}

// monthlyRevenue merges referral submissions and closed revenue into dense
// month buckets, oldest first
func (service *Service) monthlyRevenue(months int) ([]MonthlyRevenue, error) {
	counts, err := service.monthlyReferralCounts(0, months)
	if err != nil {
		return nil, err
	}
	revenue := make([]struct {
		Month   string  `gorm:"column:month"`
		Revenue float64 `gorm:"column:revenue"`
	}, 0)
	db := service.repo.ConnReader.Table("commissions").
		Select("to_char(created_at, 'YYYY-MM') as month, coalesce(sum(deal_value), 0) as revenue").
		Where("created_at >= ?", monthStart(timeNow(), -(months-1))).
		Group("month").
		Find(&revenue)
	if db.Error != nil {
		return nil, db.Error
	}
	byMonth := make(map[string]float64, len(revenue))
	for _, r := range revenue {
		byMonth[r.Month] = r.Revenue
	}
	merged := make([]MonthlyRevenue, 0, len(counts))
	for _, c := range counts {
		merged = append(merged, MonthlyRevenue{
			Month:     c.Month,
			Referrals: c.Count,
			Revenue:   byMonth[c.Month],
		})
	}
	return merged, nil
}

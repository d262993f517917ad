package service

import (
	"math"
	"time"

	"gitlab.com/digitory/partner_portal_api/model"
)

// StatusCount is one bucket of referrals grouped by pipeline stage
type StatusCount struct {
	Status model.ReferralStatus `json:"status"`
	Count  int64                `json:"count"`
}

// MonthlyCount is one month bucket of referral submissions
type MonthlyCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

// TopReseller is one row of the admin dashboard earnings leaderboard
type TopReseller struct {
	ResellerID    uint64  `gorm:"column:reseller_id" json:"reseller_id"`
	Name          string  `json:"name"`
	CompanyName   string  `gorm:"column:company_name" json:"company_name"`
	TotalEarnings float64 `gorm:"column:total_earnings" json:"total_earnings"`
	ReferralCount int64   `gorm:"column:referral_count" json:"referral_count"`
}

// AdminDashboard aggregates the portal wide numbers shown on the admin home
type AdminDashboard struct {
	TotalResellers  int64                        `json:"total_resellers"`
	ActiveResellers int64                        `json:"active_resellers"`
	TotalReferrals  int64                        `json:"total_referrals"`
	WonReferrals    int64                        `json:"won_referrals"`
	ConversionRate  float64                      `json:"conversion_rate"`
	PendingSum      float64                      `json:"pending_sum"`
	EarnedSum       float64                      `json:"earned_sum"`
	PaidSum         float64                      `json:"paid_sum"`
	RecentReferrals []model.ReferralWithReseller `json:"recent_referrals"`
	TopResellers    []TopReseller                `json:"top_resellers"`
	ByStatus        []StatusCount                `json:"by_status"`
}

// ResellerDashboard aggregates one partner's numbers for their home page
type ResellerDashboard struct {
	TotalReferrals  int64               `json:"total_referrals"`
	WonReferrals    int64               `json:"won_referrals"`
	ConversionRate  float64             `json:"conversion_rate"`
	PendingEarnings float64             `json:"pending_earnings"`
	TotalEarnings   float64             `json:"total_earnings"`
	RecentReferrals []model.Referral    `json:"recent_referrals"`
	TierProgress    *model.TierProgress `json:"tier_progress"`
	Monthly         []MonthlyCount      `json:"monthly"`
}

const dashboardMonths = 6

// timeNow is swapped in tests to pin the month buckets
var timeNow = time.Now

// GetAdminDashboard builds the portal wide dashboard
func (service *Service) GetAdminDashboard() (*AdminDashboard, error) {
	dashboard := AdminDashboard{
		RecentReferrals: make([]model.ReferralWithReseller, 0),
		TopResellers:    make([]TopReseller, 0),
		ByStatus:        make([]StatusCount, 0),
	}
	reader := service.repo.ConnReader

	if db := reader.Table("resellers").Count(&dashboard.TotalResellers); db.Error != nil {
		return nil, db.Error
	}
	if db := reader.Table("resellers").Where("status = ?", model.ResellerStatusActive).Count(&dashboard.ActiveResellers); db.Error != nil {
		return nil, db.Error
	}
	if db := reader.Table("referrals").Count(&dashboard.TotalReferrals); db.Error != nil {
		return nil, db.Error
	}
	if db := reader.Table("referrals").Where("status = ?", model.ReferralStatusWon).Count(&dashboard.WonReferrals); db.Error != nil {
		return nil, db.Error
	}
	dashboard.ConversionRate = conversionRate(dashboard.WonReferrals, dashboard.TotalReferrals)

	sums := make([]model.CommissionStatusTotal, 0)
	db := reader.Table("commissions").
		Select("commissions.status as status, count(*) as count, coalesce(sum(commissions.commission_amount), 0) as sum").
		Group("commissions.status").
		Find(&sums)
	if db.Error != nil {
		return nil, db.Error
	}
	for _, total := range sums {
		amount := model.MoneyToFloat(model.MoneyColumnValue(total.Sum))
		switch total.Status {
		case model.CommissionStatusPending:
			dashboard.PendingSum += amount
		case model.CommissionStatusApproved:
			dashboard.EarnedSum += amount
		case model.CommissionStatusPaid:
			dashboard.EarnedSum += amount
			dashboard.PaidSum += amount
		}
	}

	db = reader.Table("referrals").
		Select("referrals.*, users.name as reseller_name, resellers.company_name as reseller_company").
		Joins("inner join resellers on resellers.id = referrals.reseller_id").
		Joins("inner join users on users.id = resellers.user_id").
		Order("referrals.created_at DESC").
		Limit(5).
		Find(&dashboard.RecentReferrals)
	if db.Error != nil {
		return nil, db.Error
	}

	db = reader.Table("resellers").
		Select("resellers.id as reseller_id, users.name as name, resellers.company_name as company_name, resellers.total_earnings as total_earnings, count(referrals.id) as referral_count").
		Joins("inner join users on users.id = resellers.user_id").
		Joins("left join referrals on referrals.reseller_id = resellers.id").
		Group("resellers.id, users.name").
		Order("resellers.total_earnings DESC").
		Limit(5).
		Find(&dashboard.TopResellers)
	if db.Error != nil {
		return nil, db.Error
	}

	db = reader.Table("referrals").
		Select("referrals.status as status, count(*) as count").
		Group("referrals.status").
		Find(&dashboard.ByStatus)
	if db.Error != nil {
		return nil, db.Error
	}
	return &dashboard, nil
}

// GetResellerDashboard builds one partner's dashboard
func (service *Service) GetResellerDashboard(reseller *model.Reseller) (*ResellerDashboard, error) {
	dashboard := ResellerDashboard{
		RecentReferrals: make([]model.Referral, 0),
		TotalEarnings:   model.MoneyToFloat(model.MoneyColumnValue(reseller.TotalEarnings)),
	}
	reader := service.repo.ConnReader

	if db := reader.Table("referrals").Where("reseller_id = ?", reseller.ID).Count(&dashboard.TotalReferrals); db.Error != nil {
		return nil, db.Error
	}
	if db := reader.Table("referrals").Where("reseller_id = ? AND status = ?", reseller.ID, model.ReferralStatusWon).Count(&dashboard.WonReferrals); db.Error != nil {
		return nil, db.Error
	}
	dashboard.ConversionRate = conversionRate(dashboard.WonReferrals, dashboard.TotalReferrals)

	pending := model.CommissionStatusTotal{}
	db := reader.Table("commissions").
		Select("count(*) as count, coalesce(sum(commissions.commission_amount), 0) as sum").
		Where("reseller_id = ? AND status = ?", reseller.ID, model.CommissionStatusPending).
		Find(&pending)
	if db.Error != nil {
		return nil, db.Error
	}
	dashboard.PendingEarnings = model.MoneyToFloat(model.MoneyColumnValue(pending.Sum))

	db = reader.Table("referrals").
		Where("reseller_id = ?", reseller.ID).
		Order("created_at DESC").
		Limit(5).
		Find(&dashboard.RecentReferrals)
	if db.Error != nil {
		return nil, db.Error
	}

	progress, err := service.ComputeTierProgress(reseller)
	if err != nil {
		return nil, err
	}
	dashboard.TierProgress = progress

	monthly, err := service.monthlyReferralCounts(reseller.ID, dashboardMonths)
	if err != nil {
		return nil, err
	}
	dashboard.Monthly = monthly
	return &dashboard, nil
}

// monthlyReferralCounts returns referral submissions per month for the last
// n months, oldest first, with empty months zero filled
func (service *Service) monthlyReferralCounts(resellerID uint64, months int) ([]MonthlyCount, error) {
	counts := make([]MonthlyCount, 0)
	q := service.repo.ConnReader.Table("referrals").
		Select("to_char(created_at, 'YYYY-MM') as month, count(*) as count").
		Where("created_at >= ?", monthStart(timeNow(), -(months-1)))
	if resellerID > 0 {
		q = q.Where("reseller_id = ?", resellerID)
	}
	db := q.Group("month").Find(&counts)
	if db.Error != nil {
		return nil, db.Error
	}
	return zeroFillMonths(counts, months), nil
}

// zeroFillMonths expands sparse month buckets into a dense series ending at
// the current month
func zeroFillMonths(counts []MonthlyCount, months int) []MonthlyCount {
	byMonth := make(map[string]int64, len(counts))
	for _, c := range counts {
		byMonth[c.Month] = c.Count
	}
	now := timeNow()
	filled := make([]MonthlyCount, 0, months)
	for i := months - 1; i >= 0; i-- {
		month := monthStart(now, -i).Format("2006-01")
		filled = append(filled, MonthlyCount{Month: month, Count: byMonth[month]})
	}
	return filled
}

// monthStart returns midnight on the first day of the month offset months
// away from t
func monthStart(t time.Time, offset int) time.Time {
	return time.Date(t.Year(), time.Month(int(t.Month())+offset), 1, 0, 0, 0, 0, t.Location())
}

// conversionRate reports won against total as a whole percentage, 0 when
// there is nothing to measure
func conversionRate(won, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(won)/float64(total)*100)
}

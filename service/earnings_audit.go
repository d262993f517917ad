package service

import (
	"math"
)

// EarningsDivergence is one reseller whose stored earnings accumulator
// disagrees with the sum of their paid commissions
type EarningsDivergence struct {
	ResellerID  uint64  `gorm:"column:reseller_id" json:"reseller_id"`
	CompanyName string  `gorm:"column:company_name" json:"company_name"`
	Stored      float64 `gorm:"column:stored" json:"stored"`
	Computed    float64 `gorm:"column:computed" json:"computed"`
}

// FindEarningsDivergences compares every reseller's total_earnings
// accumulator against the sum of their paid commissions. The accumulator is
// the source of truth for tier progress; a divergence points at a write that
// bypassed the payout flow and is reported, never auto corrected.
func (service *Service) FindEarningsDivergences() ([]EarningsDivergence, error) {
	rows := make([]EarningsDivergence, 0)
	db := service.repo.ConnReader.Table("resellers").
		Select("resellers.id as reseller_id, resellers.company_name as company_name, resellers.total_earnings as stored, " +
			"coalesce((select sum(commission_amount) from commissions where commissions.reseller_id = resellers.id and commissions.status = 'paid'), 0) as computed").
		Find(&rows)
	if db.Error != nil {
		return nil, db.Error
	}
	divergent := rows[:0]
	for _, row := range rows {
		if math.Abs(row.Stored-row.Computed) >= 0.01 {
			divergent = append(divergent, row)
		}
	}
	return divergent, nil
}

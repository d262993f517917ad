package service

import (
	"fmt"
	"time"

	"github.com/ericlagergren/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gitlab.com/digitory/partner_portal_api/currency"
	"gitlab.com/digitory/partner_portal_api/model"
	"gitlab.com/digitory/partner_portal_api/monitor"
)

// GetCommission returns one commission by id
func (service *Service) GetCommission(id uint64) (*model.Commission, error) {
	commission := model.Commission{}
	db := service.repo.ConnReader.Table("commissions").Where("id = ?", id).First(&commission)
	if db.Error != nil {
		if db.Error == gorm.ErrRecordNotFound {
			return nil, ErrCommissionNotFound
		}
		return nil, db.Error
	}
	return &commission, nil
}

// ListCommissions returns commissions joined with referral and partner
// context plus per-status amount totals. A zero resellerID lists across all
// partners (admin view).
func (service *Service) ListCommissions(resellerID uint64, status model.CommissionStatus, limit, page int) (*model.CommissionList, error) {
	list := model.CommissionList{
		Commissions: make([]model.CommissionWithReferral, 0),
		Totals:      make([]model.CommissionStatusTotal, 0),
	}
	q := service.repo.ConnReader.Table("commissions").
		Select("commissions.*, referrals.company_name as referral_company, referrals.contact_name as contact_name, users.name as reseller_name, users.email as reseller_email").
		Joins("inner join referrals on referrals.id = commissions.referral_id").
		Joins("inner join resellers on resellers.id = commissions.reseller_id").
		Joins("inner join users on users.id = resellers.user_id")
	totals := service.repo.ConnReader.Table("commissions").
		Select("commissions.status as status, count(*) as count, coalesce(sum(commissions.commission_amount), 0) as sum").
		Group("commissions.status")
	if resellerID > 0 {
		q = q.Where("commissions.reseller_id = ?", resellerID)
		totals = totals.Where("commissions.reseller_id = ?", resellerID)
	}
	if status != "" {
		if !status.IsValid() {
			return nil, ErrInvalidStatus
		}
		q = q.Where("commissions.status = ?", status)
	}
	if limit > 0 {
		q = q.Limit(limit).Offset((page - 1) * limit)
	}
	db := q.Order("commissions.created_at DESC").Find(&list.Commissions)
	if db.Error != nil {
		return nil, db.Error
	}
	db = totals.Find(&list.Totals)
	if db.Error != nil {
		return nil, db.Error
	}
	return &list, nil
}

// deriveOnWin creates the commission for a referral that just closed won.
// The rate is copied from the reseller at this moment and frozen on the row;
// the insert is keyed on referral_id so a repeated win derives nothing.
func (service *Service) deriveOnWin(tx *gorm.DB, referral *model.Referral, reseller *model.Reseller, dealValue *decimal.Big) error {
	commission := model.NewCommission(referral.ID, reseller.ID, dealValue, reseller.CommissionRate)
	db := tx.Table("commissions").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "referral_id"}},
			DoNothing: true,
		}).
		Create(commission)
	if db.Error != nil {
		return db.Error
	}
	if db.RowsAffected == 0 {
		// a commission already exists for this referral
		return nil
	}
	monitor.CommissionsCreated.Inc()
	amount := currency.FormatPrecise(model.MoneyColumnValue(commission.CommissionAmount), service.DisplayCountry())
	message := fmt.Sprintf("Congratulations! Your referral for %s closed. You earned %s in commission.", referral.CompanyName, amount)
	return service.createNotification(tx, reseller.UserID, model.NotificationTitleReferralWon, message, model.NotificationLinkResellerCommissions)
}

// SetCommissionStatus moves a commission to a target payout status and
// notifies the owning reseller. Marking a commission paid stamps paid_at and
// credits the reseller's accumulated earnings exactly once; revisiting the
// paid status never credits again.
func (service *Service) SetCommissionStatus(adminUserID, commissionID uint64, target model.CommissionStatus) (*model.Commission, error) {
	if !target.IsValid() {
		return nil, ErrInvalidStatus
	}
	commission, err := service.GetCommission(commissionID)
	if err != nil {
		return nil, err
	}
	from := commission.Status
	reseller, err := service.GetReseller(commission.ResellerID)
	if err != nil {
		return nil, err
	}
	referral, err := service.GetReferral(commission.ReferralID)
	if err != nil {
		return nil, err
	}

	err = service.repo.Conn.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{"status": target}
		credit := target == model.CommissionStatusPaid && from != model.CommissionStatusPaid
		if credit {
			now := time.Now()
			commission.PaidAt = &now
			updates["paid_at"] = commission.PaidAt
		}
		if db := tx.Table("commissions").Where("id = ?", commission.ID).Updates(updates); db.Error != nil {
			return db.Error
		}
		if err := service.logActivity(tx, adminUserID, model.ActivityCommissionUpdated, "commission", commission.ID, map[string]string{
			"from": from.String(),
			"to":   target.String(),
		}); err != nil {
			return err
		}
		if credit {
			db := tx.Table("resellers").
				Where("id = ?", reseller.ID).
				Update("total_earnings", gorm.Expr("total_earnings + ?", commission.CommissionAmount))
			if db.Error != nil {
				return db.Error
			}
		}
		amount := currency.FormatPrecise(model.MoneyColumnValue(commission.CommissionAmount), service.DisplayCountry())
		message := fmt.Sprintf("Your commission of %s for %s has been %s.", amount, referral.CompanyName, target.String())
		title := model.NotificationTitleCommissionUpdated
		if target == model.CommissionStatusPaid {
			title = model.NotificationTitleCommissionPaid
		}
		return service.createNotification(tx, reseller.UserID, title, message, model.NotificationLinkResellerCommissions)
	})
	if err != nil {
		return nil, err
	}
	commission.Status = target
	if target == model.CommissionStatusPaid && from != model.CommissionStatusPaid {
		monitor.CommissionsPaid.Inc()
		service.sendCommissionPaidEmail(reseller, commission)
	}
	return commission, nil
}

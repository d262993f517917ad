package service

import (
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"gitlab.com/digitory/partner_portal_api/model"
	"gitlab.com/digitory/partner_portal_api/monitor"
)

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// GetReferral returns one referral by id
func (service *Service) GetReferral(id uint64) (*model.Referral, error) {
	referral := model.Referral{}
	db := service.repo.ConnReader.Table("referrals").Where("id = ?", id).First(&referral)
	if db.Error != nil {
		if db.Error == gorm.ErrRecordNotFound {
			return nil, ErrReferralNotFound
		}
		return nil, db.Error
	}
	return &referral, nil
}

// ListReferrals returns referrals joined with partner context, newest first.
// A zero resellerID lists across all partners (admin view); status and search
// narrow the result when set.
func (service *Service) ListReferrals(resellerID uint64, status model.ReferralStatus, search string, limit, page int) (*model.ReferralList, error) {
	list := model.ReferralList{
		Referrals: make([]model.ReferralWithReseller, 0),
		Meta:      model.PagingMeta{Page: page, Limit: limit, Filter: map[string]interface{}{}},
	}
	q := service.repo.ConnReader.Table("referrals").
		Select("referrals.*, users.name as reseller_name, resellers.company_name as reseller_company").
		Joins("inner join resellers on resellers.id = referrals.reseller_id").
		Joins("inner join users on users.id = resellers.user_id")
	if resellerID > 0 {
		q = q.Where("referrals.reseller_id = ?", resellerID)
	}
	if status != "" {
		if !status.IsValid() {
			return nil, ErrInvalidStatus
		}
		q = q.Where("referrals.status = ?", status)
		list.Meta.Filter["status"] = status
	}
	if search != "" {
		term := "%" + strings.ToLower(search) + "%"
		q = q.Where("lower(referrals.company_name) LIKE ? OR lower(referrals.contact_name) LIKE ? OR lower(referrals.contact_email) LIKE ?", term, term, term)
		list.Meta.Filter["query"] = search
	}
	db := q.Count(&list.Meta.Count)
	if db.Error != nil {
		return nil, db.Error
	}
	if limit > 0 {
		q = q.Limit(limit).Offset((page - 1) * limit)
	}
	db = q.Order("referrals.created_at DESC").Find(&list.Referrals)
	if db.Error != nil {
		return nil, db.Error
	}
	return &list, nil
}

// CreateReferral submits a new referral for a reseller. The referral starts
// in the first pipeline stage and every admin gets notified.
func (service *Service) CreateReferral(reseller *model.Reseller, companyName, contactName, contactEmail, contactPhone string, product model.ProductInterest, estimatedValue *float64, notes string) (*model.Referral, error) {
	companyName = strings.TrimSpace(companyName)
	contactName = strings.TrimSpace(contactName)
	contactEmail = strings.TrimSpace(strings.ToLower(contactEmail))
	if companyName == "" || contactName == "" {
		return nil, ErrInvalidInput
	}
	if !emailRegexp.MatchString(contactEmail) {
		return nil, ErrInvalidInput
	}
	if product == "" {
		product = model.ProductInterestStarter
	}
	if !product.IsValid() {
		return nil, ErrInvalidInput
	}
	referral := model.Referral{
		ResellerID:      reseller.ID,
		CompanyName:     companyName,
		ContactName:     contactName,
		ContactEmail:    contactEmail,
		ContactPhone:    strings.TrimSpace(contactPhone),
		ProductInterest: product,
		EstimatedValue:  model.NullMoneyColumn(),
		DealValue:       model.NullMoneyColumn(),
		Status:          model.ReferralStatusNew,
		Notes:           notes,
	}
	if estimatedValue != nil && *estimatedValue > 0 {
		referral.EstimatedValue = model.WrapMoney(model.MoneyFromFloat(*estimatedValue))
	}
	err := service.repo.Conn.Transaction(func(tx *gorm.DB) error {
		if db := tx.Table("referrals").Create(&referral); db.Error != nil {
			return db.Error
		}
		message := fmt.Sprintf("%s submitted a new referral for %s", reseller.CompanyName, referral.CompanyName)
		if err := service.notifyAdmins(tx, model.NotificationTitleReferralReceived, message, model.NotificationLinkAdminReferrals); err != nil {
			return err
		}
		return service.logActivity(tx, reseller.UserID, model.ActivityReferralCreated, "referral", referral.ID, map[string]string{
			"company": referral.CompanyName,
		})
	})
	if err != nil {
		return nil, err
	}
	return &referral, nil
}

// TransitionReferral moves a referral to a target pipeline stage. The status
// write, the optional deal value write, the commission derivation on a win,
// the notification and the audit entry all commit or roll back together.
//
// A win with no resolvable positive deal value updates the status only; the
// commission is derived later when the deal value arrives through another
// transition to the same stage.
func (service *Service) TransitionReferral(adminUserID, referralID uint64, target model.ReferralStatus, dealValue *float64) (*model.Referral, error) {
	if !target.IsValid() {
		return nil, ErrInvalidStatus
	}
	referral, err := service.GetReferral(referralID)
	if err != nil {
		return nil, err
	}
	from := referral.Status
	if !from.CanTransition(target) {
		return nil, ErrInvalidStatus
	}
	reseller, err := service.GetReseller(referral.ResellerID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"status": target}
	if dealValue != nil && *dealValue > 0 {
		referral.DealValue = model.WrapMoney(model.MoneyFromFloat(*dealValue))
		updates["deal_value"] = referral.DealValue
	}
	referral.Status = target

	err = service.repo.Conn.Transaction(func(tx *gorm.DB) error {
		if db := tx.Table("referrals").Where("id = ?", referral.ID).Updates(updates); db.Error != nil {
			return db.Error
		}
		if err := service.logActivity(tx, adminUserID, model.ActivityReferralStatusUpdated, "referral", referral.ID, map[string]string{
			"from": from.String(),
			"to":   target.String(),
		}); err != nil {
			return err
		}
		if target == model.ReferralStatusWon {
			// the deriver owns the won notification; without a positive
			// deal value the status write stands alone
			resolved := model.MoneyColumnValue(referral.DealValue)
			if resolved.Sign() > 0 {
				return service.deriveOnWin(tx, referral, reseller, resolved)
			}
			return nil
		}
		message := fmt.Sprintf("Your referral for %s is now %s", referral.CompanyName, target.String())
		return service.createNotification(tx, reseller.UserID, model.NotificationTitleReferralUpdated, message, model.NotificationLinkResellerReferrals)
	})
	if err != nil {
		return nil, err
	}
	monitor.ReferralTransitions.WithLabelValues(target.String()).Inc()
	return referral, nil
}

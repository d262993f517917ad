package service

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
	"gorm.io/gorm"

	"gitlab.com/digitory/partner_portal_api/model"
)

// GetReseller returns one reseller by id
func (service *Service) GetReseller(id uint64) (*model.Reseller, error) {
	reseller := model.Reseller{}
	db := service.repo.ConnReader.Table("resellers").Where("id = ?", id).First(&reseller)
	if db.Error != nil {
		if db.Error == gorm.ErrRecordNotFound {
			return nil, ErrResellerNotFound
		}
		return nil, db.Error
	}
	return &reseller, nil
}

// GetResellerByUserID returns the reseller profile attached to a user account
func (service *Service) GetResellerByUserID(userID uint64) (*model.Reseller, error) {
	reseller := model.Reseller{}
	db := service.repo.ConnReader.Table("resellers").Where("user_id = ?", userID).First(&reseller)
	if db.Error != nil {
		if db.Error == gorm.ErrRecordNotFound {
			return nil, ErrResellerNotFound
		}
		return nil, db.Error
	}
	return &reseller, nil
}

// ListResellers returns resellers joined with their accounts, newest first
func (service *Service) ListResellers(status model.ResellerStatus, search string, limit, page int) (*model.ResellerList, error) {
	list := model.ResellerList{
		Resellers: make([]model.ResellerWithUser, 0),
		Meta:      model.PagingMeta{Page: page, Limit: limit, Filter: map[string]interface{}{}},
	}
	q := service.repo.ConnReader.Table("resellers").
		Select("resellers.*, users.name as name, users.email as email").
		Joins("inner join users on users.id = resellers.user_id")
	if status != "" {
		if !status.IsValid() {
			return nil, ErrInvalidStatus
		}
		q = q.Where("resellers.status = ?", status)
		list.Meta.Filter["status"] = status
	}
	if search != "" {
		term := "%" + strings.ToLower(search) + "%"
		q = q.Where("lower(resellers.company_name) LIKE ? OR lower(users.name) LIKE ? OR lower(users.email) LIKE ?", term, term, term)
		list.Meta.Filter["query"] = search
	}
	db := q.Count(&list.Meta.Count)
	if db.Error != nil {
		return nil, db.Error
	}
	if limit > 0 {
		q = q.Limit(limit).Offset((page - 1) * limit)
	}
	db = q.Order("resellers.created_at DESC").Find(&list.Resellers)
	if db.Error != nil {
		return nil, db.Error
	}
	return &list, nil
}

// CreateReseller onboards a partner on behalf of an admin, with an optional
// commission rate overriding the portal default
func (service *Service) CreateReseller(name, email, password, companyName, phone string, rate *float64) (*model.User, *model.Reseller, error) {
	resolved := service.DefaultCommissionRate()
	if rate != nil {
		resolved = *rate
	}
	return service.createResellerAccount(name, email, password, companyName, phone, resolved)
}

// ResellerUpdate carries the admin editable reseller fields. Nil fields are
// left untouched.
type ResellerUpdate struct {
	CompanyName    *string               `json:"company_name"`
	Phone          *string               `json:"phone"`
	Address        *string               `json:"address"`
	CommissionRate *float64              `json:"commission_rate"`
	Tier           *model.ResellerTier   `json:"tier"`
	Status         *model.ResellerStatus `json:"status"`
}

// UpdateReseller applies an admin edit to a reseller profile. Rate changes
// only affect commissions derived after the change; existing rows keep the
// rate frozen at their creation.
func (service *Service) UpdateReseller(adminUserID, id uint64, update ResellerUpdate) (*model.Reseller, error) {
	reseller, err := service.GetReseller(id)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if update.CompanyName != nil && *update.CompanyName != "" {
		reseller.CompanyName = *update.CompanyName
		updates["company_name"] = reseller.CompanyName
	}
	if update.Phone != nil {
		reseller.Phone = service.normalizePhone(*update.Phone)
		updates["phone"] = reseller.Phone
	}
	if update.Address != nil {
		reseller.Address = *update.Address
		updates["address"] = reseller.Address
	}
	if update.CommissionRate != nil {
		if *update.CommissionRate < 0 || *update.CommissionRate > 100 {
			return nil, ErrInvalidInput
		}
		reseller.CommissionRate = *update.CommissionRate
		updates["commission_rate"] = reseller.CommissionRate
	}
	if update.Tier != nil {
		if !update.Tier.IsValid() {
			return nil, ErrInvalidStatus
		}
		reseller.Tier = *update.Tier
		updates["tier"] = reseller.Tier
	}
	if update.Status != nil {
		if !update.Status.IsValid() {
			return nil, ErrInvalidStatus
		}
		reseller.Status = *update.Status
		updates["status"] = reseller.Status
	}
	if len(updates) == 0 {
		return reseller, nil
	}
	err = service.repo.Conn.Transaction(func(tx *gorm.DB) error {
		if db := tx.Table("resellers").Where("id = ?", reseller.ID).Updates(updates); db.Error != nil {
			return db.Error
		}
		fields := make([]string, 0, len(updates))
		for field := range updates {
			fields = append(fields, field)
		}
		return service.logActivity(tx, adminUserID, model.ActivityResellerUpdated, "reseller", reseller.ID, map[string]interface{}{
			"fields": fields,
		})
	})
	if err != nil {
		return nil, err
	}
	return reseller, nil
}

// normalizePhone stores phone numbers in E.164 form when they parse for
// the configured display country, otherwise keeps the raw input.
func (service *Service) normalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}
	parsed, err := phonenumbers.Parse(phone, service.DisplayCountry())
	if err != nil || !phonenumbers.IsValidNumber(parsed) {
		return phone
	}
	return phonenumbers.Format(parsed, phonenumbers.E164)
}

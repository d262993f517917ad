package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	uuid "github.com/nu7hatch/gouuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"gitlab.com/digitory/partner_portal_api/model"
)

// ImportResult summarizes one CSV import batch
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors"`
}

var requiredImportColumns = []string{"companyname", "contactname", "contactemail"}

// ImportReferrals bulk creates referrals for a reseller from a CSV stream.
// Header names are matched case insensitively with spaces and underscores
// ignored; companyname, contactname and contactemail are required. Rows that
// fail validation are skipped with a per-row error, valid rows of the batch
// commit together tagged with a shared import reference.
func (service *Service) ImportReferrals(reseller *model.Reseller, input io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(input)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "reading csv header")
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[normalizeImportColumn(name)] = i
	}
	for _, required := range requiredImportColumns {
		if _, ok := columns[required]; !ok {
			return nil, errors.Errorf("missing required column %q", required)
		}
	}

	batch, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	result := ImportResult{Errors: make([]string, 0)}
	referrals := make([]model.Referral, 0)
	for row := 2; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", row, err))
			continue
		}
		referral, err := service.parseImportRow(reseller.ID, columns, record)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", row, err))
			continue
		}
		referral.ImportRef = batch.String()
		referrals = append(referrals, *referral)
	}

	if len(referrals) > 0 {
		err = service.repo.Conn.Transaction(func(tx *gorm.DB) error {
			if db := tx.Table("referrals").Create(&referrals); db.Error != nil {
				return db.Error
			}
			message := fmt.Sprintf("%s imported %d referrals", reseller.CompanyName, len(referrals))
			if err := service.notifyAdmins(tx, model.NotificationTitleReferralReceived, message, model.NotificationLinkAdminReferrals); err != nil {
				return err
			}
			return service.logActivity(tx, reseller.UserID, model.ActivityReferralImported, "referral", 0, map[string]interface{}{
				"import_ref": batch.String(),
				"count":      len(referrals),
			})
		})
		if err != nil {
			return nil, err
		}
	}
	result.Imported = len(referrals)
	return &result, nil
}

func (service *Service) parseImportRow(resellerID uint64, columns map[string]int, record []string) (*model.Referral, error) {
	field := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	companyName := field("companyname")
	contactName := field("contactname")
	contactEmail := strings.ToLower(field("contactemail"))
	if companyName == "" {
		return nil, errors.New("company name is required")
	}
	if contactName == "" {
		return nil, errors.New("contact name is required")
	}
	if !emailRegexp.MatchString(contactEmail) {
		return nil, errors.Errorf("invalid contact email %q", contactEmail)
	}

	product := model.ProductInterest(strings.ToLower(field("productinterest")))
	if product == "" || !product.IsValid() {
		product = model.ProductInterestStarter
	}
	referral := model.Referral{
		ResellerID:      resellerID,
		CompanyName:     companyName,
		ContactName:     contactName,
		ContactEmail:    contactEmail,
		ContactPhone:    field("contactphone"),
		ProductInterest: product,
		EstimatedValue:  model.NullMoneyColumn(),
		DealValue:       model.NullMoneyColumn(),
		Status:          model.ReferralStatusNew,
		Notes:           field("notes"),
	}
	if raw := field("estimatedvalue"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || value < 0 {
			return nil, errors.Errorf("invalid estimated value %q", raw)
		}
		if value > 0 {
			referral.EstimatedValue = model.WrapMoney(model.MoneyFromFloat(value))
		}
	}
	return &referral, nil
}

func normalizeImportColumn(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "")
	name = strings.ReplaceAll(name, "_", "")
	return strings.TrimPrefix(name, "\ufeff")
}

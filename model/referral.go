package model

import (
	"time"

	"github.com/ericlagergren/decimal/sql/postgres"
)

// ReferralStatus defines the pipeline stage of a referral
type ReferralStatus string

const (
	ReferralStatusNew         ReferralStatus = "new"
	ReferralStatusContacted   ReferralStatus = "contacted"
	ReferralStatusQualified   ReferralStatus = "qualified"
	ReferralStatusProposal    ReferralStatus = "proposal"
	ReferralStatusNegotiation ReferralStatus = "negotiation"
	ReferralStatusWon         ReferralStatus = "won"
	ReferralStatusLost        ReferralStatus = "lost"
)

// ReferralStatuses lists every pipeline stage in display order
var ReferralStatuses = []ReferralStatus{
	ReferralStatusNew,
	ReferralStatusContacted,
	ReferralStatusQualified,
	ReferralStatusProposal,
	ReferralStatusNegotiation,
	ReferralStatusWon,
	ReferralStatusLost,
}

func (s ReferralStatus) String() string {
	return string(s)
}

func (s ReferralStatus) IsValid() bool {
	for _, status := range ReferralStatuses {
		if status == s {
			return true
		}
	}
	return false
}

// referralTransitions is the allowed-edges table of the pipeline state
// machine. Admins pick arbitrary target stages, so every edge is open;
// tightening the pipeline is a data change here, not a code change.
var referralTransitions = func() map[ReferralStatus][]ReferralStatus {
	edges := make(map[ReferralStatus][]ReferralStatus, len(ReferralStatuses))
	for _, from := range ReferralStatuses {
		edges[from] = append([]ReferralStatus(nil), ReferralStatuses...)
	}
	return edges
}()

// CanTransition reports whether the pipeline allows moving a referral
// between the two given stages.
func (s ReferralStatus) CanTransition(target ReferralStatus) bool {
	for _, allowed := range referralTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// AllowedTransitions returns the open edges from the given stage.
func (s ReferralStatus) AllowedTransitions() []ReferralStatus {
	return append([]ReferralStatus(nil), referralTransitions[s]...)
}

// ProductInterest defines the product line a referral is interested in
type ProductInterest string

const (
	ProductInterestStarter      ProductInterest = "starter"
	ProductInterestProfessional ProductInterest = "professional"
	ProductInterestEnterprise   ProductInterest = "enterprise"
	ProductInterestCustom       ProductInterest = "custom"
)

func (p ProductInterest) String() string {
	return string(p)
}

func (p ProductInterest) IsValid() bool {
	switch p {
	case ProductInterestStarter, ProductInterestProfessional,
		ProductInterestEnterprise, ProductInterestCustom:
		return true
	default:
		return false
	}
}

// Referral structure. DealValue is set only when the deal closes won and is
// the amount the commission is derived from; EstimatedValue is the pre-close
// guess captured at submission time.
type Referral struct {
	ID              uint64            `sql:"type: bigint" gorm:"primary_key" json:"id"`
	ResellerID      uint64            `gorm:"column:reseller_id" json:"reseller_id"`
	CompanyName     string            `gorm:"column:company_name" json:"company_name"`
	ContactName     string            `gorm:"column:contact_name" json:"contact_name"`
	ContactEmail    string            `gorm:"column:contact_email" json:"contact_email"`
	ContactPhone    string            `gorm:"column:contact_phone" json:"contact_phone"`
	ProductInterest ProductInterest   `sql:"not null;type:product_interest_t" gorm:"column:product_interest" json:"product_interest"`
	EstimatedValue  *postgres.Decimal `gorm:"column:estimated_value" sql:"type:decimal(18,2)" json:"estimated_value"`
	DealValue       *postgres.Decimal `gorm:"column:deal_value" sql:"type:decimal(18,2)" json:"deal_value"`
	Status          ReferralStatus    `sql:"not null;type:referral_status_t" json:"status"`
	Notes           string            `json:"notes"`
	ImportRef       string            `gorm:"column:import_ref" json:"import_ref,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// ReferralWithReseller joins a referral with its submitting partner
type ReferralWithReseller struct {
	Referral
	ResellerName    string `gorm:"column:reseller_name" json:"reseller_name"`
	ResellerCompany string `gorm:"column:reseller_company" json:"reseller_company"`
}

// ReferralList structure
type ReferralList struct {
	Referrals []ReferralWithReseller `json:"referrals"`
	Meta      PagingMeta             `json:"meta"`
}

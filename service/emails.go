package service

import (
	"github.com/rs/zerolog/log"

	"gitlab.com/digitory/partner_portal_api/currency"
	"gitlab.com/digitory/partner_portal_api/model"
)

// Email template names expected in the sendgrid configuration
const (
	emailTemplateWelcome        = "welcome"
	emailTemplateCommissionPaid = "commission_paid"
)

// sendWelcomeEmail greets a freshly registered partner. Delivery is best
// effort, failures are logged and never block registration.
func (service *Service) sendWelcomeEmail(user *model.User) {
	go func() {
		err := service.sendgrid.SendEmail(user.Email, "en", emailTemplateWelcome, map[string]string{
			"name":    user.Name,
			"company": service.cfg.Portal.CompanyName,
		})
		if err != nil {
			log.Error().Err(err).
				Str("section", "service").
				Str("action", "welcome_email").
				Str("email", user.Email).
				Msg("Unable to send email")
		}
	}()
}

// sendCommissionPaidEmail tells a partner their payout went out. Called
// after the paying transaction commits; delivery is best effort.
func (service *Service) sendCommissionPaidEmail(reseller *model.Reseller, commission *model.Commission) {
	user, err := service.GetUserByID(reseller.UserID)
	if err != nil {
		log.Error().Err(err).
			Str("section", "service").
			Str("action", "commission_paid_email").
			Uint64("reseller_id", reseller.ID).
			Msg("Unable to resolve reseller account")
		return
	}
	amount := currency.FormatPrecise(model.MoneyColumnValue(commission.CommissionAmount), service.DisplayCountry())
	go func() {
		err := service.sendgrid.SendEmail(user.Email, "en", emailTemplateCommissionPaid, map[string]string{
			"name":   user.Name,
			"amount": amount,
		})
		if err != nil {
			log.Error().Err(err).
				Str("section", "service").
				Str("action", "commission_paid_email").
				Str("email", user.Email).
				Msg("Unable to send email")
		}
	}()
}

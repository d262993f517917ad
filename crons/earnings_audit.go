package crons

import (
	"github.com/rs/zerolog/log"

	"gitlab.com/digitory/partner_portal_api/service"
)

// CronEarningsAudit flags resellers whose earnings accumulator no longer
// matches the sum of their paid commissions
func CronEarningsAudit(srv *service.Service) {
	divergent, err := srv.FindEarningsDivergences()
	if err != nil {
		log.Error().Err(err).Str("section", "crons").Str("cron", "earnings_audit").Msg("Unable to audit reseller earnings")
		return
	}
	for _, row := range divergent {
		log.Warn().
			Str("section", "crons").
			Str("cron", "earnings_audit").
			Uint64("reseller_id", row.ResellerID).
			Str("company", row.CompanyName).
			Float64("stored", row.Stored).
			Float64("computed", row.Computed).
			Msg("Reseller earnings diverge from paid commissions")
	}
	log.Info().
		Str("section", "crons").
		Str("cron", "earnings_audit").
		Int("divergent", len(divergent)).
		Msg("Earnings audit completed")
}

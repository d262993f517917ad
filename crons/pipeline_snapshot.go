package crons

import (
	"github.com/rs/zerolog/log"

	"gitlab.com/digitory/partner_portal_api/service"
)

// CronPipelineSnapshot logs the referral pipeline breakdown so pipeline
// movement can be followed from the logs between reporting runs
func CronPipelineSnapshot(srv *service.Service) {
	reports, err := srv.GetReports()
	if err != nil {
		log.Error().Err(err).Str("section", "crons").Str("cron", "pipeline_snapshot").Msg("Unable to snapshot the pipeline")
		return
	}
	event := log.Info().
		Str("section", "crons").
		Str("cron", "pipeline_snapshot")
	for _, stage := range reports.Pipeline {
		event = event.Int64(stage.Status.String(), stage.Count)
	}
	event.Msg("Referral pipeline snapshot")
}

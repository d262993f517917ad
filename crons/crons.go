package crons

import (
	"github.com/robfig/cron"

	"gitlab.com/digitory/partner_portal_api/config"
	"gitlab.com/digitory/partner_portal_api/service"
)

var cronService *cron.Cron

// Start initiates the crons based on the given configuration. Each entry
// maps a cron id to its schedule expression.
func Start(crons config.Crons, srv *service.Service) {
	cronService = cron.New()
	for id, schedule := range crons {
		callback := GetCronByID(id, srv)
		_ = cronService.AddFunc(schedule, callback)
	}
	cronService.Start()
}

// GetCronByID get a function to execute based on the id
func GetCronByID(id string, srv *service.Service) func() {
	switch id {
	case "earnings_audit":
		return func() {
			CronEarningsAudit(srv)
		}
	case "pipeline_snapshot":
		return func() {
			CronPipelineSnapshot(srv)
		}
	}
	return (func() {})
}

// Stop godoc
func Stop() {
	if cronService != nil {
		cronService.Stop()
	}
}

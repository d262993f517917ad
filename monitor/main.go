package monitor

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"gitlab.com/digitory/partner_portal_api/config"
)

var (
	// ReferralTransitions counts pipeline transitions by target status
	ReferralTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "portal",
		Name:      "referral_transitions_total",
		Help:      "Number of referral status transitions by target status",
	}, []string{"status"})

	// CommissionsCreated counts commissions derived from won referrals
	CommissionsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "portal",
		Name:      "commissions_created_total",
		Help:      "Number of commissions derived from won referrals",
	})

	// CommissionsPaid counts commissions marked paid
	CommissionsPaid = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "portal",
		Name:      "commissions_paid_total",
		Help:      "Number of commissions transitioned to paid",
	})
)

// Start the monitoring endpoint when enabled in the configuration
func Start(cfg config.MonitorConfig) {
	if !cfg.Enabled {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Info().Str("section", "monitor").Str("addr", addr).Msg("Starting monitoring endpoint")
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Error().Err(err).Str("section", "monitor").Msg("Monitoring endpoint stopped")
	}
}

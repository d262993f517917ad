package server

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"gitlab.com/digitory/partner_portal_api/actions"
	"gitlab.com/digitory/partner_portal_api/logger"
	"gitlab.com/digitory/partner_portal_api/model"
)

func (srv *server) ListenToRequests() {
	log.Info().Str("worker", "http_listen_to_requests").Str("action", "start").Msg("HTTP Listen to requests - started")
	defer log.Info().Str("worker", "http_listen_to_requests").Str("action", "stop").Msg("HTTP Listen to requests - stopped")

	a := srv.actions

	r := gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowCredentials = true
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "X-Requested-With", "Content-Length", "Content-Type", "Accept", "Authorization"}
	corsConfig.AllowMethods = []string{"GET", "PUT", "POST", "DELETE", "PATCH", "OPTIONS"}

	r.Use(cors.New(corsConfig)) // Allow requests from anywhere
	r.Use(gin.Recovery())       // Recovery middleware recovers from any panics and writes a 500 if there was one.
	r.Use(logger.SetLogger())

	r.GET("/ping", actions.Ping)
	r.GET("/settings/currency", a.GetCurrencySettings)

	// handle authentication requests
	auth := r.Group("/auth")
	{
		auth.POST("/login", a.Login)
		auth.POST("/register", a.Register)
	}

	// account requests shared between roles
	{
		r.GET("/profile", a.Restrict(), a.GetProfile)
		r.POST("/profile", a.Restrict(), a.UpdateProfile)
		r.GET("/notifications", a.Restrict(), a.GetNotifications)
		r.PUT("/notifications/:notification_id/read", a.Restrict(), a.MarkNotificationRead)
	}

	admin := r.Group("/admin", a.RestrictRole(model.UserRoleAdmin))
	{
		admin.GET("/resellers", a.GetResellers)
		admin.POST("/resellers", a.CreateReseller)
		admin.GET("/resellers/:reseller_id", a.GetReseller)
		admin.PATCH("/resellers/:reseller_id", a.UpdateReseller)

		admin.GET("/referrals", a.GetReferrals)
		admin.PATCH("/referrals/:referral_id", a.UpdateReferralStatus)

		admin.GET("/commissions", a.GetCommissions)
		admin.PATCH("/commissions/:commission_id", a.UpdateCommissionStatus)

		admin.GET("/dashboard", a.GetAdminDashboard)
		admin.GET("/reports", a.GetReports)
		admin.GET("/reports/export", a.ExportReports)

		admin.GET("/settings", a.GetSettings)
		admin.PATCH("/settings", a.UpdateSettings)
	}

	reseller := r.Group("/reseller", a.RestrictRole(model.UserRoleReseller))
	{
		reseller.GET("/referrals", a.GetOwnReferrals)
		reseller.POST("/referrals", a.CreateReferral)
		reseller.POST("/referrals/import", a.ImportReferrals)

		reseller.GET("/commissions", a.GetOwnCommissions)
		reseller.GET("/dashboard", a.GetResellerDashboard)
	}

	srv.HTTP = &http.Server{
		Addr:    fmt.Sprintf(":%d", srv.config.Server.API.Port),
		Handler: r,
	}
	if err := srv.HTTP.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Str("section", "server").Msg("Unable to start http server")
	}
}

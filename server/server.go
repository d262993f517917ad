package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"gitlab.com/digitory/partner_portal_api/actions"
	"gitlab.com/digitory/partner_portal_api/config"
	"gitlab.com/digitory/partner_portal_api/crons"
	"gitlab.com/digitory/partner_portal_api/monitor"
	"gitlab.com/digitory/partner_portal_api/queries"
	"gitlab.com/digitory/partner_portal_api/service"
)

// Server interface
type Server interface {
	Listen()
}

type server struct {
	config  config.Config
	actions *actions.Actions
	service *service.Service
	HTTP    *http.Server
}

// NewServer constructor
func NewServer(cfg config.Config, repo *queries.Repo) Server {
	portalService := service.NewService(cfg, repo)
	portalActions := actions.NewActions(cfg, portalService)
	return &server{
		config:  cfg,
		actions: portalActions,
		service: portalService,
	}
}

// Listen starts the http server, the monitoring endpoint and the scheduled
// jobs, then blocks until a termination signal arrives
func (srv *server) Listen() {
	go srv.ListenToRequests()
	go monitor.Start(srv.config.Server.Monitoring)
	crons.Start(srv.config.Crons, srv.service)

	srv.stopOnSignal()
}

func (srv *server) stopOnSignal() {
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigc

	log.Info().Str("section", "server").Str("app_event", "terminate").Str("signal", sig.String()).Msg("Shutting down services")
	srv.closeApp(5 * time.Second)
}

func (srv *server) closeApp(timeout time.Duration) {
	crons.Stop()
	if srv.HTTP == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.HTTP.Shutdown(ctx); err != nil {
		log.Error().Err(err).Str("section", "server").Msg("Forced shutdown of http server")
	}
}

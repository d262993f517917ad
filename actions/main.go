package actions

import (
	"gitlab.com/digitory/partner_portal_api/config"
	"gitlab.com/digitory/partner_portal_api/service"
)

// Actions structure
type Actions struct {
	cfg            config.Config
	service        *service.Service
	jwtTokenSecret string
}

// NewActions constructor
func NewActions(cfg config.Config, srv *service.Service) *Actions {
	return &Actions{
		cfg:            cfg,
		service:        srv,
		jwtTokenSecret: cfg.Server.API.JWTTokenSecret,
	}
}

package service

import (
	"errors"

	"gitlab.com/digitory/partner_portal_api/config"
	"gitlab.com/digitory/partner_portal_api/lib/sendgrid"
	"gitlab.com/digitory/partner_portal_api/queries"
)

// Errors surfaced to the action layer. Store failures are propagated
// unchanged; these cover absent entities and rejected input.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrResellerNotFound   = errors.New("reseller not found")
	ErrReferralNotFound   = errors.New("referral not found")
	ErrCommissionNotFound = errors.New("commission not found")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
)

// Service structure
type Service struct {
	repo     *queries.Repo
	cfg      config.Config
	sendgrid sendgrid.Sendgrid
}

// NewService constructor
func NewService(cfg config.Config, repo *queries.Repo) *Service {
	return &Service{
		repo: repo,
		cfg:  cfg,
		// configure sendgrid with the from email and list of templates available
		sendgrid: sendgrid.NewSendgrid(cfg.Server.Sendgrid.Key, cfg.Server.Sendgrid.From, cfg.Server.Sendgrid.Templates),
	}
}

// GetRepo returns the repository used by the service
func (service *Service) GetRepo() *queries.Repo {
	return service.repo
}

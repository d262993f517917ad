package service

import (
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gitlab.com/digitory/partner_portal_api/config"
	"gitlab.com/digitory/partner_portal_api/queries"
)

func setupDB() (*gorm.DB, sqlmock.Sqlmock) {
	logger := log.With().Str("test", "service").Str("method", "setupDB").Logger()
	db, mock, err := sqlmock.New()
	if err != nil {
		logger.Fatal().Msgf("can't create sqlmock: %s", err)
	}

	dialector := postgres.New(postgres.Config{
		DSN:                  "postgres-mock",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		logger.Fatal().Msgf("can't open gorm connection: %s", err)
	}

	return gormDB, mock
}

func setupService() (*Service, sqlmock.Sqlmock) {
	db, mock := setupDB()
	repo := &queries.Repo{
		Conn:       db,
		ConnReader: db,
	}
	cfg := config.Config{}
	cfg.Portal.DefaultCommissionRate = 10
	cfg.Portal.DefaultCountry = "US"
	cfg.Server.API.JWTTokenSecret = "test-secret"
	cfg.Server.API.TokenDuration = 24
	return NewService(cfg, repo), mock
}

package queries

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gitlab.com/digitory/partner_portal_api/config"
)

// Repo wraps the database handles used by the services. Conn points at the
// writer node, ConnReader at the read replica; with a single node deployment
// both carry the same connection.
type Repo struct {
	Conn       *gorm.DB
	ConnReader *gorm.DB
}

// NewRepo opens the writer and reader connections from the cluster config
func NewRepo(cfg config.DatabaseClusterConfig) *Repo {
	writer := open(cfg.Writer)
	reader := writer
	if cfg.Reader.Host != "" && cfg.Reader.Host != cfg.Writer.Host {
		reader = open(cfg.Reader)
	}
	return &Repo{
		Conn:       writer,
		ConnReader: reader,
	}
}

func open(cfg config.DatabaseConfig) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s application_name=%s",
		cfg.Host, cfg.Port, cfg.Username, cfg.Password, cfg.Name, cfg.SSLmode, cfg.ApplicationName,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Str("section", "queries").Str("host", cfg.Host).Msg("Unable to connect to database")
	}
	return db
}

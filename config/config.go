package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config structure
type Config struct {
	Server          ServerConfig          `mapstructure:"server"`
	DatabaseCluster DatabaseClusterConfig `mapstructure:"database_cluster"`
	Crons           Crons                 `mapstructure:"crons"`
	Portal          PortalConfig          `mapstructure:"portal"`
}

// ServerConfig structure
type ServerConfig struct {
	API        APIConfig      `mapstructure:"api"`
	Monitoring MonitorConfig  `mapstructure:"monitoring"`
	Sendgrid   SendgridConfig `mapstructure:"sendgrid"`
}

// APIConfig structure
type APIConfig struct {
	Port           int    `mapstructure:"port"`
	Domain         string `mapstructure:"domain"`
	JWTTokenSecret string `mapstructure:"jwt_token_secret"`
	// TokenDuration is the login token lifetime in hours
	TokenDuration int `mapstructure:"token_duration"`
}

// MonitorConfig structure
type MonitorConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port"`
}

// SendgridConfig structure
type SendgridConfig struct {
	Key       string                       `mapstructure:"key"`
	From      string                       `mapstructure:"from"`
	Templates map[string]map[string]string `mapstructure:"templates"`
}

// DatabaseClusterConfig structure
type DatabaseClusterConfig struct {
	Writer DatabaseConfig `mapstructure:"writer"`
	Reader DatabaseConfig `mapstructure:"reader"`
}

// DatabaseConfig structure
type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Name            string `mapstructure:"name"`
	SSLmode         string `mapstructure:"sslmode"`
	ApplicationName string `mapstructure:"application_name"`
}

// Crons maps a cron id to its schedule expression
type Crons map[string]string

// PortalConfig carries portal level defaults. These are fallbacks only;
// the system settings rows in the store take precedence at call time.
type PortalConfig struct {
	DefaultCommissionRate float64 `mapstructure:"default_commission_rate"`
	DefaultCountry        string  `mapstructure:"default_country"`
	CompanyName           string  `mapstructure:"company_name"`
}

// LoadConfig Load server configuration from the yaml file
func LoadConfig(viperConf *viper.Viper) Config {
	var config Config
	err := viperConf.Unmarshal(&config)
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to decode config into struct")
	}
	return config
}

// OpenConfig godoc
func OpenConfig(file string) {
	if file != "" {
		// Use config file from the flag.
		viper.SetConfigFile(file)
	}

	viper.SetConfigType("yaml")
	viper.SetConfigName(".config")
	viper.AddConfigPath(".")                        // First try to load the config from the current directory
	viper.AddConfigPath("$HOME")                    // Then try to load it from the HOME directory
	viper.AddConfigPath("/etc/partner_portal_api/") // As a last resort try to load it from /etc/
	viper.SetEnvPrefix("CFG")
	viper.AutomaticEnv()
	setDefaultVariables()

	err := viper.ReadInConfig() // Find and read the config file
	if err != nil {             // Handle errors reading the config file
		log.Fatal().Err(err).Msg("Unable to read configuration file")
	}
}

func setDefaultVariables() {
	viper.SetDefault("server.api.port", 8080)
	viper.SetDefault("server.api.token_duration", 24)
	viper.SetDefault("server.monitoring.enabled", false)
	viper.SetDefault("server.monitoring.port", 9090)
	viper.SetDefault("database_cluster.writer.port", 5432)
	viper.SetDefault("database_cluster.writer.sslmode", "disable")
	viper.SetDefault("database_cluster.writer.application_name", "partner_portal_api")
	viper.SetDefault("portal.default_commission_rate", 10)
	viper.SetDefault("portal.default_country", "US")
	viper.SetDefault("portal.company_name", "Digitory")
}

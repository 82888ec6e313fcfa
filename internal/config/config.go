package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port       int    `mapstructure:"port"`
	CORSOrigin string `mapstructure:"corsOrigin"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	TTL    time.Duration `mapstructure:"ttl"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

type AppConfig struct {
	JobsPerPage       int      `mapstructure:"jobsPerPage"`
	DefaultCurrency   string   `mapstructure:"defaultCurrency"`
	AllowedCurrencies []string `mapstructure:"allowedCurrencies"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	SMTP     SMTPConfig     `mapstructure:"smtp"`
	App      AppConfig      `mapstructure:"app"`
}

// Load reads config.yaml from the working directory if present and applies
// NEXUS_* environment overrides on top of the defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("server.port", 3001)
	v.SetDefault("server.corsOrigin", "http://localhost:3000")
	v.SetDefault("database.path", "./data/database.sqlite")
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.ttl", 7*24*time.Hour)
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.from", "NE Nexus <no-reply@nenexus.com>")
	v.SetDefault("app.jobsPerPage", 10)
	v.SetDefault("app.defaultCurrency", "USD")
	v.SetDefault("app.allowedCurrencies", []string{"USD", "EUR", "GBP", "JPY", "AUD", "CAD"})

	v.SetEnvPrefix("NEXUS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MailEnabled reports whether enough SMTP settings are present to dial out.
func (c SMTPConfig) MailEnabled() bool {
	return c.Host != ""
}

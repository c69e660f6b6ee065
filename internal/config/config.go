package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Log       LogConfig
	LLM       LLMConfig
	Registrar RegistrarConfig
	PayPal    PayPalConfig
	SMTP      SMTPConfig
	Hosting   HostingConfig
	PublicURL string
}

type ServerConfig struct {
	Port int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type LogConfig struct {
	Level string
}

// LLMConfig drives AI website generation. An empty APIKey degrades
// generation to the built-in static templates.
type LLMConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RegistrarConfig covers the primary domain-availability API and the public
// WHOIS fallback. Missing credentials push every check into the fallback.
type RegistrarConfig struct {
	APIUser  string
	APIKey   string
	BaseURL  string
	WhoisURL string
}

// PayPalConfig covers pay-by-link issuance. Without client credentials the
// issuer emits static paypal.me links only.
type PayPalConfig struct {
	ClientID string
	Secret   string
	BaseURL  string
	MeHandle string
}

// SMTPConfig covers the mail relay. Missing credentials switch the sender
// into simulated (log-only) mode.
type SMTPConfig struct {
	Host     string
	Port     int
	Email    string
	Password string
}

type HostingConfig struct {
	DeployDelay time.Duration
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 3306)
	viper.SetDefault("DB_USER", "webgen")
	viper.SetDefault("DB_PASSWORD", "secret")
	viper.SetDefault("DB_NAME", "webgen")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	viper.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com")
	viper.SetDefault("NAMECHEAP_API_USER", "")
	viper.SetDefault("NAMECHEAP_API_KEY", "")
	viper.SetDefault("NAMECHEAP_BASE_URL", "https://api.namecheap.com/xml.response")
	viper.SetDefault("WHOIS_BASE_URL", "https://api.whoisfreaks.com/v1.0/whois")
	viper.SetDefault("PAYPAL_CLIENT_ID", "")
	viper.SetDefault("PAYPAL_CLIENT_SECRET", "")
	viper.SetDefault("PAYPAL_BASE_URL", "https://api-m.paypal.com")
	viper.SetDefault("PAYPAL_ME_HANDLE", "aiwebgen")
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_EMAIL", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("DEPLOY_DELAY", "2s")
	viper.SetDefault("PUBLIC_BASE_URL", "https://ia-webgen.com")

	connMaxLifetime, err := time.ParseDuration(viper.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		return nil, err
	}

	deployDelay, err := time.ParseDuration(viper.GetString("DEPLOY_DELAY"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			Name:            viper.GetString("DB_NAME"),
			MaxOpenConns:    viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connMaxLifetime,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		LLM: LLMConfig{
			APIKey:  viper.GetString("GEMINI_API_KEY"),
			Model:   viper.GetString("GEMINI_MODEL"),
			BaseURL: viper.GetString("GEMINI_BASE_URL"),
		},
		Registrar: RegistrarConfig{
			APIUser:  viper.GetString("NAMECHEAP_API_USER"),
			APIKey:   viper.GetString("NAMECHEAP_API_KEY"),
			BaseURL:  viper.GetString("NAMECHEAP_BASE_URL"),
			WhoisURL: viper.GetString("WHOIS_BASE_URL"),
		},
		PayPal: PayPalConfig{
			ClientID: viper.GetString("PAYPAL_CLIENT_ID"),
			Secret:   viper.GetString("PAYPAL_CLIENT_SECRET"),
			BaseURL:  viper.GetString("PAYPAL_BASE_URL"),
			MeHandle: viper.GetString("PAYPAL_ME_HANDLE"),
		},
		SMTP: SMTPConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			Email:    viper.GetString("SMTP_EMAIL"),
			Password: viper.GetString("SMTP_PASSWORD"),
		},
		Hosting: HostingConfig{
			DeployDelay: deployDelay,
		},
		PublicURL: viper.GetString("PUBLIC_BASE_URL"),
	}

	return cfg, nil
}

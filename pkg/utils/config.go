package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Session  SessionConfig
	Token    TokenConfig
	Gateway  GatewayConfig
	Email    EmailConfig
}

type AppConfig struct {
	Name    string
	Port    string
	BaseURL string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type SessionConfig struct {
	ExpiryHours int
}

type TokenConfig struct {
	Secret        string
	MaxAgeMinutes int
}

type GatewayConfig struct {
	PublicKey string
	SecretKey string
	Currency  string
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("BASE_URL", "http://localhost:8080")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("TOKEN_MAX_AGE_MINUTES", 60)
	viper.SetDefault("GATEWAY_CURRENCY", "gbp")
	viper.SetDefault("LOG_PATH", "logs/")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			BaseURL: viper.GetString("BASE_URL"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		Token: TokenConfig{
			Secret:        viper.GetString("TOKEN_SECRET"),
			MaxAgeMinutes: viper.GetInt("TOKEN_MAX_AGE_MINUTES"),
		},
		Gateway: GatewayConfig{
			PublicKey: viper.GetString("GATEWAY_PUBLIC_KEY"),
			SecretKey: viper.GetString("GATEWAY_SECRET_KEY"),
			Currency:  viper.GetString("GATEWAY_CURRENCY"),
		},
		Email: EmailConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASS"),
			From:     viper.GetString("EMAIL_FROM"),
		},
	}

	return config, nil
}

package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// Gateway settings
	GatewayBaseURL string
	GatewayAPIKey  string

	// Externally reachable base URL of this deployment; per-company
	// callback URLs registered with the gateway are formed under it.
	CallbackBaseURL string

	// Rate limit applied to the callback endpoint, in ulule/limiter
	// format (e.g. "300-M" for 300 requests per minute per IP).
	CallbackRateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("GATEWAY_BASE_URL", "https://api.balancedpayments.com")
	viper.SetDefault("GATEWAY_API_KEY", "")
	viper.SetDefault("CALLBACK_BASE_URL", "http://localhost:8080")
	viper.SetDefault("CALLBACK_RATE_LIMIT", "300-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.GatewayBaseURL = viper.GetString("GATEWAY_BASE_URL")
	cfg.GatewayAPIKey = viper.GetString("GATEWAY_API_KEY")
	if cfg.GatewayAPIKey == "" {
		log.Println("Warning: GATEWAY_API_KEY environment variable not set; dispatch operations will fail until configured.")
	}

	cfg.CallbackBaseURL = viper.GetString("CALLBACK_BASE_URL")
	cfg.CallbackRateLimit = viper.GetString("CALLBACK_RATE_LIMIT")

	return cfg, nil
}

package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Pricing   PricingConfig
	Lifecycle LifecycleConfig
	Insights  InsightsConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

// StoreConfig selects where collections are persisted.
type StoreConfig struct {
	Driver string // memory, redis or postgres
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	Schema   string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret       string
	SessionHours int
}

type PricingConfig struct {
	TaxRate     float64
	HandlingFee float64
}

type LifecycleConfig struct {
	TickInterval        time.Duration
	DeliveryProbability float64
}

type InsightsConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("STORE_DRIVER", "memory")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SCHEMA", "public")
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("JWT_SESSION_HOURS", 24)
	viper.SetDefault("GST_RATE", 0.12)
	viper.SetDefault("HANDLING_FEE", 150.0)
	viper.SetDefault("TICK_INTERVAL_SECONDS", 12)
	viper.SetDefault("DELIVERY_PROBABILITY", 0.3)
	viper.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta")
	viper.SetDefault("GEMINI_MODEL", "gemini-3-flash-preview")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file: %v", err)
	}

	return &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
			Env:  viper.GetString("SERVER_ENV"),
		},
		Store: StoreConfig{
			Driver: viper.GetString("STORE_DRIVER"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Database: viper.GetString("DB_DATABASE"),
			Schema:   viper.GetString("DB_SCHEMA"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:       viper.GetString("JWT_SECRET"),
			SessionHours: viper.GetInt("JWT_SESSION_HOURS"),
		},
		Pricing: PricingConfig{
			TaxRate:     viper.GetFloat64("GST_RATE"),
			HandlingFee: viper.GetFloat64("HANDLING_FEE"),
		},
		Lifecycle: LifecycleConfig{
			TickInterval:        time.Duration(viper.GetInt("TICK_INTERVAL_SECONDS")) * time.Second,
			DeliveryProbability: viper.GetFloat64("DELIVERY_PROBABILITY"),
		},
		Insights: InsightsConfig{
			APIKey:  viper.GetString("GEMINI_API_KEY"),
			BaseURL: viper.GetString("GEMINI_BASE_URL"),
			Model:   viper.GetString("GEMINI_MODEL"),
		},
	}
}

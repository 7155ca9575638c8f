package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// MongoDB configuration.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration (geocode lookup cache).
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`

	// Geocoding configuration.
	NominatimBaseURL   string `mapstructure:"NOMINATIM_BASE_URL"`
	NominatimUserAgent string `mapstructure:"NOMINATIM_USER_AGENT"`
	GeocodeTimeoutSec  int    `mapstructure:"GEOCODE_TIMEOUT_SECONDS"`
	GeocodeCacheTTLMin int    `mapstructure:"GEOCODE_CACHE_TTL_MINUTES"`

	// Nearby search configuration. The pre-filter radius bounds the
	// store-side candidate search; the default radius is the Medium
	// urgency cutoff applied afterwards.
	DefaultRadiusKm   float64 `mapstructure:"DEFAULT_SEARCH_RADIUS_KM"`
	PrefilterRadiusKm float64 `mapstructure:"SEARCH_PREFILTER_RADIUS_KM"`
	SearchLimit       int     `mapstructure:"DEFAULT_SEARCH_LIMIT"`

	MaxRequestsPerMin int `mapstructure:"MAX_REQUESTS_PER_MIN"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "nearaid")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org")
	viper.SetDefault("NOMINATIM_USER_AGENT", "Nearaid/1.0")
	viper.SetDefault("GEOCODE_TIMEOUT_SECONDS", 10)
	viper.SetDefault("GEOCODE_CACHE_TTL_MINUTES", 1440)
	viper.SetDefault("DEFAULT_SEARCH_RADIUS_KM", 10.0)
	viper.SetDefault("SEARCH_PREFILTER_RADIUS_KM", 20.0)
	viper.SetDefault("DEFAULT_SEARCH_LIMIT", 100)
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

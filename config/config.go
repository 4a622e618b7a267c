package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Backend API.
	APIBaseURL        string `mapstructure:"API_BASE_URL"`
	APITimeoutSeconds int    `mapstructure:"API_TIMEOUT_SECONDS"`
	TokenFile         string `mapstructure:"TOKEN_FILE"`

	// Local resource cache.
	CacheBackend string `mapstructure:"CACHE_BACKEND"` // "file" or "redis"
	CacheFile    string `mapstructure:"CACHE_FILE"`

	// Redis configuration (used when CACHE_BACKEND is "redis").
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`

	// Periodic refresh. Empty REFRESH_SPEC disables the worker.
	RefreshSpec string `mapstructure:"REFRESH_SPEC"`
	StudioSlug  string `mapstructure:"STUDIO_SLUG"`
	StudioID    string `mapstructure:"STUDIO_ID"`

	// Development stub server.
	DevServer           bool   `mapstructure:"DEV_SERVER"`
	DevServerPort       string `mapstructure:"DEV_SERVER_PORT"`
	DevServerRatePerMin int    `mapstructure:"DEV_SERVER_RATE_PER_MIN"`
	DevServerSeed       bool   `mapstructure:"DEV_SERVER_SEED"`
	JWTSecret           string `mapstructure:"JWT_SECRET"`
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
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("API_BASE_URL", "http://localhost:8000")
	viper.SetDefault("API_TIMEOUT_SECONDS", 15)
	viper.SetDefault("TOKEN_FILE", ".studiobook_token")
	viper.SetDefault("CACHE_BACKEND", "file")
	viper.SetDefault("CACHE_FILE", ".studiobook_cache.json")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REFRESH_SPEC", "")
	viper.SetDefault("STUDIO_SLUG", "")
	viper.SetDefault("STUDIO_ID", "")
	viper.SetDefault("DEV_SERVER", false)
	viper.SetDefault("DEV_SERVER_PORT", "8000")
	viper.SetDefault("DEV_SERVER_RATE_PER_MIN", 0)
	viper.SetDefault("DEV_SERVER_SEED", false)
	viper.SetDefault("JWT_SECRET", "")

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

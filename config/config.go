package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Storage backends accepted by STORAGE_BACKEND.
const (
	BackendRemote = "remote"
	BackendLocal  = "local"
	BackendMongo  = "mongo"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string        `mapstructure:"APP_PORT"`
	Env               string        `mapstructure:"ENV"`
	LogLevel          string        `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int           `mapstructure:"MAX_REQUESTS_PER_MIN"`
	ShutdownTimeout   time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`

	// Comma separated list, "*" allows every origin.
	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"`

	StorageBackend string `mapstructure:"STORAGE_BACKEND"`

	// Spreadsheet-backed endpoint used by the remote backend.
	APIURL        string        `mapstructure:"API_URL"`
	RemoteTimeout time.Duration `mapstructure:"REMOTE_TIMEOUT"`

	// Redis configuration for the local backend.
	RedisAddr        string        `mapstructure:"REDIS_ADDR"`
	RedisPassword    string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB          int           `mapstructure:"REDIS_DB"`
	BookingsKey      string        `mapstructure:"BOOKINGS_KEY"`
	LocalDelayFetch  time.Duration `mapstructure:"LOCAL_DELAY_FETCH"`
	LocalDelayCreate time.Duration `mapstructure:"LOCAL_DELAY_CREATE"`

	// MongoDB configuration for the mongo backend.
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	MongoDatabase string `mapstructure:"MONGO_DATABASE"`

	// Gemini credential and model for agenda drafting.
	GeminiAPIKey string `mapstructure:"API_KEY"`
	GeminiModel  string `mapstructure:"GEMINI_MODEL"`
}

var AppConfig Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("SHUTDOWN_TIMEOUT", 5*time.Second)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("STORAGE_BACKEND", BackendLocal)
	v.SetDefault("API_URL", "")
	v.SetDefault("REMOTE_TIMEOUT", 10*time.Second)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("BOOKINGS_KEY", "hr_bookings_ru")
	v.SetDefault("LOCAL_DELAY_FETCH", time.Duration(0))
	v.SetDefault("LOCAL_DELAY_CREATE", time.Duration(0))
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "roombook")
	v.SetDefault("API_KEY", "")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
}

// Load reads configuration from the given viper instance. A missing config file is not an error.
func Load(v *viper.Viper) (Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	// Automatically use environment variables where available.
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.StorageBackend = strings.ToLower(strings.TrimSpace(cfg.StorageBackend))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig populates AppConfig from the global viper instance.
func LoadConfig() {
	cfg, err := Load(viper.GetViper())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

// Validate rejects backend settings the service cannot start with.
func (c Config) Validate() error {
	switch c.StorageBackend {
	case BackendLocal, BackendMongo:
	case BackendRemote:
		if c.APIURL == "" {
			return fmt.Errorf("config: API_URL is required for the %q backend", BackendRemote)
		}
	default:
		return fmt.Errorf("config: unknown STORAGE_BACKEND %q", c.StorageBackend)
	}
	return nil
}

// AllowedOrigins splits CORSAllowedOrigins into a list.
func (c Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

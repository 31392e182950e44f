package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Appwrite  AppwriteConfig
	DB        DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Port           string
	Env            string
	AllowedOrigins []string
}

// AppwriteConfig identifies the project and the collections the app reads and writes.
type AppwriteConfig struct {
	Endpoint                   string
	Platform                   string
	ProjectID                  string
	StorageID                  string
	DatabaseID                 string
	UserCollectionID           string
	ServiceCentersCollectionID string
	AppointmentCollectionID    string
	Timeout                    time.Duration
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

type CacheConfig struct {
	ServiceCenterTTL time.Duration
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.SetDefault("APPWRITE_ENDPOINT", "https://cloud.appwrite.io/v1")
	v.SetDefault("APPWRITE_PLATFORM", "com.daddycoders.salon_app")
	v.SetDefault("APPWRITE_PROJECT_ID", "669a62fc003754897a01")
	v.SetDefault("APPWRITE_STORAGE_ID", "669a639500305bc7a3de")
	v.SetDefault("APPWRITE_DATABASE_ID", "669a63370002af4055f1")
	v.SetDefault("APPWRITE_USER_COLLECTION_ID", "669a633e000327a4805d")
	v.SetDefault("APPWRITE_SERVICE_CENTERS_COLLECTION_ID", "66a258ac001a931bdc19")
	v.SetDefault("APPWRITE_APPOINTMENT_COLLECTION_ID", "66a25893003c31a7f829")
	v.SetDefault("APPWRITE_TIMEOUT", "15s")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_ACCESS_EXPIRY", "15m")
	v.SetDefault("JWT_REFRESH_EXPIRY", "168h")
	v.SetDefault("CACHE_SERVICE_CENTER_TTL", "5m")
	v.SetDefault("RATE_LIMIT_RPS", 5)
	v.SetDefault("RATE_LIMIT_BURST", 10)
}

// LoadConfig reads .env (when present) and the process environment.
func LoadConfig() (*Config, error) {
	return load(viper.New(), ".env")
}

func load(v *viper.Viper, file string) (*Config, error) {
	setDefaults(v)
	v.SetConfigFile(file)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	config := &Config{
		App: AppConfig{
			Port:           v.GetString("APP_PORT"),
			Env:            v.GetString("APP_ENV"),
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Appwrite: AppwriteConfig{
			Endpoint:                   v.GetString("APPWRITE_ENDPOINT"),
			Platform:                   v.GetString("APPWRITE_PLATFORM"),
			ProjectID:                  v.GetString("APPWRITE_PROJECT_ID"),
			StorageID:                  v.GetString("APPWRITE_STORAGE_ID"),
			DatabaseID:                 v.GetString("APPWRITE_DATABASE_ID"),
			UserCollectionID:           v.GetString("APPWRITE_USER_COLLECTION_ID"),
			ServiceCentersCollectionID: v.GetString("APPWRITE_SERVICE_CENTERS_COLLECTION_ID"),
			AppointmentCollectionID:    v.GetString("APPWRITE_APPOINTMENT_COLLECTION_ID"),
			Timeout:                    durationOr(v, "APPWRITE_TIMEOUT", 15*time.Second),
		},
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        v.GetString("JWT_SECRET"),
			AccessExpiry:  durationOr(v, "JWT_ACCESS_EXPIRY", 15*time.Minute),
			RefreshExpiry: durationOr(v, "JWT_REFRESH_EXPIRY", 7*24*time.Hour),
		},
		Cache: CacheConfig{
			ServiceCenterTTL: durationOr(v, "CACHE_SERVICE_CENTER_TTL", 5*time.Minute),
		},
		RateLimit: RateLimitConfig{
			RPS:   v.GetFloat64("RATE_LIMIT_RPS"),
			Burst: v.GetInt("RATE_LIMIT_BURST"),
		},
	}

	if config.JWT.Secret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return config, nil
}

func durationOr(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		return fallback
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

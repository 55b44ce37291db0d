package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	StorageFile   = "file"
	StorageMongo  = "mongo"
	StorageMemory = "memory"

	AuthStatic   = "static"
	AuthSupabase = "supabase"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string

	StorageDriver   string
	DataDir         string
	MongoDBURI      string
	MongoDBPassword string
	MongoDBDatabase string

	AuthProvider    string
	JWTSecret       string
	JWKSURL         string
	TokenTTL        time.Duration
	AdminUsername   string
	AdminPassword   string
	SupabaseURL     string
	SupabaseAnonKey string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	CardPaymentDelay time.Duration
	UPIPaymentDelay  time.Duration

	AllowedOrigins []string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:                getEnvWithDefault("PORT", "8080"),
		Environment:         getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:            os.Getenv("LOG_LEVEL"),
		StorageDriver:       strings.ToLower(getEnvWithDefault("STORAGE_DRIVER", StorageFile)),
		DataDir:             getEnvWithDefault("DATA_DIR", "data"),
		MongoDBURI:          os.Getenv("MONGODB_URI"),
		MongoDBPassword:     os.Getenv("MONGODB_PASSWORD"),
		MongoDBDatabase:     getEnvWithDefault("MONGODB_DATABASE", "hallbook"),
		AuthProvider:        strings.ToLower(getEnvWithDefault("AUTH_PROVIDER", AuthStatic)),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		JWKSURL:             os.Getenv("JWKS_URL"),
		AdminUsername:       getEnvWithDefault("ADMIN_USERNAME", "admin"),
		AdminPassword:       getEnvWithDefault("ADMIN_PASSWORD", "admin123"),
		SupabaseURL:         os.Getenv("SUPABASE_URL"),
		SupabaseAnonKey:     os.Getenv("SUPABASE_URL_ANON_KEY"),
		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		AllowedOrigins:      splitList(getEnvWithDefault("ALLOWED_ORIGINS", "http://localhost:3000")),
	}

	var err error
	if cfg.TokenTTL, err = getDurationWithDefault("TOKEN_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.CardPaymentDelay, err = getDurationWithDefault("CARD_PAYMENT_DELAY", 3*time.Second); err != nil {
		return nil, err
	}
	if cfg.UPIPaymentDelay, err = getDurationWithDefault("UPI_PAYMENT_DELAY", 2*time.Second); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageDriver {
	case StorageFile:
		if c.DataDir == "" {
			return fmt.Errorf("DATA_DIR is required for the file storage driver")
		}
	case StorageMongo:
		if c.MongoDBURI == "" {
			return fmt.Errorf("MONGODB_URI is required for the mongo storage driver")
		}
		if strings.Contains(c.MongoDBURI, "<password>") && c.MongoDBPassword == "" {
			return fmt.Errorf("MONGODB_PASSWORD is required")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q (expected file, mongo or memory)", c.StorageDriver)
	}

	switch c.AuthProvider {
	case AuthStatic:
	case AuthSupabase:
		if c.SupabaseURL == "" {
			return fmt.Errorf("SUPABASE_URL is required")
		}
		if c.SupabaseAnonKey == "" {
			return fmt.Errorf("SUPABASE_URL_ANON_KEY is required")
		}
	default:
		return fmt.Errorf("unsupported AUTH_PROVIDER %q (expected static or supabase)", c.AuthProvider)
	}

	if c.JWTSecret == "" {
		if c.IsProduction() {
			return fmt.Errorf("JWT_SECRET is required in production")
		}
		c.JWTSecret = "hallbook-dev-secret"
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive")
	}
	if c.CardPaymentDelay < 0 || c.UPIPaymentDelay < 0 {
		return fmt.Errorf("payment delays must not be negative")
	}
	return nil
}

// HasCloudinary reports whether all Cloudinary credentials are set.
func (c *Config) HasCloudinary() bool {
	return c.CloudinaryCloudName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationWithDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

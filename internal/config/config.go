package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	JWT       JWTConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Printer   PrinterConfig
	Store     StoreConfig
	Register  RegisterConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type JWTConfig struct {
	Secret      string
	ExpiryHours time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

type PrinterConfig struct {
	Type    string // "usb", "network", or "none"
	USBPath string
	Address string
}

// StoreConfig holds the store identity printed on receipt headers.
type StoreConfig struct {
	Name    string
	Address string
	Phone   string
}

// RegisterConfig tunes the register session behaviour.
type RegisterConfig struct {
	// TransitionGrace is how long an outgoing screen stays mounted
	// during a screen handoff. Presentation only.
	TransitionGrace time.Duration
	// CatalogPath optionally points to a JSON product catalog file.
	// Empty means the built-in default catalog.
	CatalogPath string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "swift-register")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("JWT_EXPIRY_HOURS", 12)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_USB_PATH", "")
	viper.SetDefault("PRINTER_ADDRESS", "")
	viper.SetDefault("STORE_NAME", "QUICK SHOP POS")
	viper.SetDefault("STORE_ADDRESS", "123 Main Street")
	viper.SetDefault("STORE_PHONE", "Tel: (555) 123-4567")
	viper.SetDefault("TRANSITION_GRACE_MS", 400)
	viper.SetDefault("CATALOG_PATH", "")

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			ExpiryHours: time.Duration(viper.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
		Printer: PrinterConfig{
			Type:    viper.GetString("PRINTER_TYPE"),
			USBPath: viper.GetString("PRINTER_USB_PATH"),
			Address: viper.GetString("PRINTER_ADDRESS"),
		},
		Store: StoreConfig{
			Name:    viper.GetString("STORE_NAME"),
			Address: viper.GetString("STORE_ADDRESS"),
			Phone:   viper.GetString("STORE_PHONE"),
		},
		Register: RegisterConfig{
			TransitionGrace: time.Duration(viper.GetInt("TRANSITION_GRACE_MS")) * time.Millisecond,
			CatalogPath:     viper.GetString("CATALOG_PATH"),
		},
	}
}

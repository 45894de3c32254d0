package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Redis    RedisConfig
	Payment  PaymentConfig
	Checkout CheckoutConfig
	Mail     MailConfig
	Events   EventsConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Cookie   CookieConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type RedisConfig struct {
	Addr       string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password   string `envconfig:"REDIS_PASSWORD" default:""`
	SnapshotDB int    `envconfig:"REDIS_SNAPSHOT_DB" default:"0"`
	MarkerDB   int    `envconfig:"REDIS_MARKER_DB" default:"1"`
	SessionDB  int    `envconfig:"REDIS_SESSION_DB" default:"2"`
}

type PaymentConfig struct {
	// stripe | static
	Gateway         string `envconfig:"PAYMENT_GATEWAY" default:"stripe"`
	StripeSecretKey string `envconfig:"STRIPE_SECRET_KEY"`
}

type CheckoutConfig struct {
	FeePercent     float64       `envconfig:"CHECKOUT_FEE_PERCENT" default:"15"`
	SnapshotTTL    time.Duration `envconfig:"CHECKOUT_SNAPSHOT_TTL" default:"2h"`
	MarkerTTL      time.Duration `envconfig:"CHECKOUT_MARKER_TTL" default:"72h"`
	ResolverWindow time.Duration `envconfig:"CHECKOUT_RESOLVER_WINDOW" default:"30m"`
	CreditValidity time.Duration `envconfig:"CHECKOUT_CREDIT_VALIDITY" default:"8760h"`
}

type MailConfig struct {
	Host     string `envconfig:"SMTP_HOST" default:"localhost"`
	Port     string `envconfig:"SMTP_PORT" default:"1025"`
	User     string `envconfig:"SMTP_USER"`
	Password string `envconfig:"SMTP_PASSWORD"`
	From     string `envconfig:"MAIL_FROM" default:"bookings@example.com"`
}

type EventsConfig struct {
	// Publishing is disabled when URL is empty.
	URL      string `envconfig:"RABBITMQ_URL"`
	Exchange string `envconfig:"RABBITMQ_EXCHANGE" default:"bookings"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

type CookieConfig struct {
	Domain         string        `envconfig:"COOKIE_DOMAIN" default:""`
	Secure         bool          `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite       string        `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
	LastBookingTTL time.Duration `envconfig:"COOKIE_LAST_BOOKING_TTL" default:"24h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Checkout.FeePercent < 0 || cfg.Checkout.FeePercent > 100 {
		return Config{}, fmt.Errorf("CHECKOUT_FEE_PERCENT must be within [0,100], got %v", cfg.Checkout.FeePercent)
	}
	if cfg.Checkout.MarkerTTL < 24*time.Hour {
		return Config{}, fmt.Errorf("CHECKOUT_MARKER_TTL must be at least 24h, got %s", cfg.Checkout.MarkerTTL)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Redis: RedisConfig{
			Addr:       "localhost:16379",
			SnapshotDB: 0,
			MarkerDB:   1,
			SessionDB:  2,
		},
		Payment: PaymentConfig{
			Gateway: "static",
		},
		Checkout: CheckoutConfig{
			FeePercent:     15,
			SnapshotTTL:    2 * time.Hour,
			MarkerTTL:      72 * time.Hour,
			ResolverWindow: 30 * time.Minute,
			CreditValidity: 365 * 24 * time.Hour,
		},
		Mail: MailConfig{
			Host: "localhost",
			Port: "1025",
			From: "bookings@example.com",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
		Cookie: CookieConfig{
			SameSite:       "Lax",
			LastBookingTTL: 24 * time.Hour,
		},
	}
}

package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection,
//   Stripe keys, etc.), security settings
// - default: Values common across all environments (timezone, slot geometry,
//   timeouts, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Redis    RedisConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Stripe   StripeConfig
	Checkout CheckoutConfig
	Store    StoreConfig
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
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Chicago"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-21600"` // -6*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type StripeConfig struct {
	SecretKey     string `envconfig:"STRIPE_SECRET_KEY" required:"true"`
	WebhookSecret string `envconfig:"STRIPE_WEBHOOK_SECRET" required:"true"`
	SuccessURL    string `envconfig:"STRIPE_SUCCESS_URL" required:"true"`
	CancelURL     string `envconfig:"STRIPE_CANCEL_URL" required:"true"`
	Currency      string `envconfig:"STRIPE_CURRENCY" default:"usd"`
}

type CheckoutConfig struct {
	// Stripe expires checkout sessions after 30 minutes; ours are expired a few
	// minutes earlier so an abandoned session does not stay redeemable.
	SessionExpiry   time.Duration `envconfig:"CHECKOUT_SESSION_EXPIRY" default:"25m"`
	DraftTTL        time.Duration `envconfig:"CHECKOUT_DRAFT_TTL" default:"2h"`
	PickupBuffer    time.Duration `envconfig:"CHECKOUT_PICKUP_BUFFER" default:"30m"`
	SlotInterval    time.Duration `envconfig:"CHECKOUT_SLOT_INTERVAL" default:"15m"`
	MaxOrdersSlot   int           `envconfig:"CHECKOUT_MAX_ORDERS_PER_SLOT" default:"3"`
	StrictSlots     bool          `envconfig:"CHECKOUT_STRICT_SLOTS" default:"false"`
	PointCentRate   int           `envconfig:"CHECKOUT_POINT_CENT_RATE" default:"10"`
	MaxItemQuantity int           `envconfig:"CHECKOUT_MAX_ITEM_QUANTITY" default:"20"`
}

type StoreConfig struct {
	Timezone          string `envconfig:"STORE_TIMEZONE" default:"America/Chicago"`
	TaxRate           string `envconfig:"STORE_TAX_RATE" default:"0.08875"`
	PrintDeviceSecret string `envconfig:"PRINT_DEVICE_SECRET" required:"true"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
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
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Chicago",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -21600,
		},
		Checkout: CheckoutConfig{
			SessionExpiry:   25 * time.Minute,
			DraftTTL:        2 * time.Hour,
			PickupBuffer:    30 * time.Minute,
			SlotInterval:    15 * time.Minute,
			MaxOrdersSlot:   3,
			PointCentRate:   10,
			MaxItemQuantity: 20,
		},
		Store: StoreConfig{
			Timezone:          "America/Chicago",
			TaxRate:           "0.08875",
			PrintDeviceSecret: "test-device-secret",
		},
	}
}

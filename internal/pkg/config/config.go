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

const (
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
)

type Config struct {
	Server      ServerConfig
	Store       StoreConfig
	DB          DBConfig
	Mongo       MongoConfig
	Reservation ReservationConfig
	CORS        CORSConfig
	Log         LogConfig
	Tracing     TracingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
	// AdminToken guards /api/admin; empty leaves the admin routes open (local use only)
	AdminToken string `envconfig:"ADMIN_TOKEN"`
}

// StoreConfig selects the inventory backend once, at startup.
type StoreConfig struct {
	Backend string `envconfig:"STORE_BACKEND" default:"postgres"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME" default:"inventory"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"50"`
}

type MongoConfig struct {
	URI            string        `envconfig:"MONGO_URI" default:"mongodb://localhost:27017/?replicaSet=rs0"`
	Database       string        `envconfig:"MONGO_DATABASE" default:"inventory"`
	ConnectTimeout time.Duration `envconfig:"MONGO_CONNECT_TIMEOUT" default:"10s"`
	MaxPoolSize    uint64        `envconfig:"MONGO_MAX_POOL_SIZE" default:"100"`
	MinPoolSize    uint64        `envconfig:"MONGO_MIN_POOL_SIZE" default:"5"`
}

type ReservationConfig struct {
	TTL             time.Duration `envconfig:"RESERVATION_TTL" default:"15m"`
	ReclaimInterval time.Duration `envconfig:"RESERVATION_RECLAIM_INTERVAL" default:"5m"`
	ReclaimTimeout  time.Duration `envconfig:"RESERVATION_RECLAIM_TIMEOUT" default:"30s"`
	MaxQuantity     int           `envconfig:"RESERVATION_MAX_QUANTITY" default:"100"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-User-ID,X-Session-ID,X-Admin-Token"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type TracingConfig struct {
	Enabled      bool    `envconfig:"TRACING_ENABLED" default:"false"`
	ServiceName  string  `envconfig:"TRACING_SERVICE_NAME" default:"stock-reservation"`
	OTLPEndpoint string  `envconfig:"TRACING_OTLP_ENDPOINT" default:"localhost:4317"`
	SampleRate   float64 `envconfig:"TRACING_SAMPLE_RATE" default:"1.0"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c Config) Validate() error {
	switch c.Store.Backend {
	case BackendPostgres:
		if c.DB.User == "" {
			return fmt.Errorf("DB_USER is required for the %s backend", BackendPostgres)
		}
	case BackendMongo:
		if c.Mongo.URI == "" {
			return fmt.Errorf("MONGO_URI is required for the %s backend", BackendMongo)
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.Store.Backend)
	}
	if c.Reservation.TTL <= 0 {
		return fmt.Errorf("RESERVATION_TTL must be positive, got %s", c.Reservation.TTL)
	}
	if c.Reservation.ReclaimInterval <= 0 {
		return fmt.Errorf("RESERVATION_RECLAIM_INTERVAL must be positive, got %s", c.Reservation.ReclaimInterval)
	}
	if c.Reservation.MaxQuantity <= 0 {
		return fmt.Errorf("RESERVATION_MAX_QUANTITY must be positive, got %d", c.Reservation.MaxQuantity)
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Store: StoreConfig{
			Backend: BackendPostgres,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 20,
		},
		Mongo: MongoConfig{
			URI:            "mongodb://localhost:27017/?replicaSet=rs0",
			Database:       "inventory_test",
			ConnectTimeout: 5 * time.Second,
			MaxPoolSize:    20,
		},
		Reservation: ReservationConfig{
			TTL:             15 * time.Minute,
			ReclaimInterval: time.Minute,
			ReclaimTimeout:  10 * time.Second,
			MaxQuantity:     100,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
	}
}

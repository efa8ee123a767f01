package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Fouss011/ayii-ratp/internal/domain"
)

type Config struct {
	Env         string            `json:"env"`
	Http        HttpConfig        `json:"http"`
	Postgres    PostgresConfig    `json:"postgres"`
	Redis       RedisConfig       `json:"redis"`
	Kafka       KafkaConfig       `json:"kafka"`
	AdminToken  string            `json:"admin_token,omitempty"`
	Webhook     WebhookConfig     `json:"webhook"`
	Aggregation AggregationConfig `json:"aggregation"`
	Alert       AlertConfig       `json:"alert"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

type KafkaConfig struct {
	Brokers []string `json:"brokers"` // empty = firehose disabled
	Topic   string   `json:"topic"`
}

type WebhookConfig struct {
	URL      string `json:"url"`
	Disabled bool   `json:"disabled"`
}

// AggregationConfig holds every radius, factor and TTL the engines use. Built
// once at startup and passed by reference; nothing reads the environment at
// call time.
type AggregationConfig struct {
	MergeRadiusM float64 `json:"merge_radius_m"`

	CloseSearchM   float64 `json:"close_search_m"`
	CloseFactor    float64 `json:"close_factor"`
	CloseHardCapM  float64 `json:"close_hard_cap_m"`
	IncidentCloseM float64 `json:"incident_close_m"`

	OutageStaleWindow time.Duration `json:"outage_stale_window"`
	OutageStaleFactor float64       `json:"outage_stale_factor"`

	DefaultOutageRadiusM float64 `json:"default_outage_radius_m"`

	IncidentTTL        map[domain.Kind]time.Duration `json:"-"`
	IncidentTTLDefault time.Duration                 `json:"incident_ttl_default"`

	SweepEnabled  bool          `json:"sweep_enabled"`
	SweepInterval time.Duration `json:"sweep_interval"`
}

// TTL returns the per-kind time-to-live, falling back to the default.
func (a AggregationConfig) TTL(k domain.Kind) time.Duration {
	if d, ok := a.IncidentTTL[k]; ok {
		return d
	}
	return a.IncidentTTLDefault
}

type AlertConfig struct {
	WindowHours int `json:"window_hours"`
	MinReports  int `json:"min_reports"`
	CellMeters  int `json:"cell_meters"`
	MaxZones    int `json:"max_zones"`
}

func Load() (*Config, error) {
	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "pg-local"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "ayii_db"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        20,
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "redis-local:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Kafka: KafkaConfig{
			Brokers: getEnvList("KAFKA_BROKERS"),
			Topic:   getEnv("KAFKA_REPORTS_TOPIC", "ayii.reports"),
		},
		AdminToken: getEnv("ADMIN_TOKEN", ""),
		Webhook: WebhookConfig{
			URL:      getEnv("WEBHOOK_URL", ""),
			Disabled: getEnvBool("WEBHOOK_DISABLED", false),
		},
		Aggregation: AggregationConfig{
			MergeRadiusM:         getEnvFloat("INCIDENT_MERGE_M", 300),
			CloseSearchM:         getEnvFloat("CLOSE_SEARCH_M", 3000),
			CloseFactor:          getEnvFloat("CLOSE_FACTOR", 1.5),
			CloseHardCapM:        getEnvFloat("CLOSE_HARDCAP_M", 1500),
			IncidentCloseM:       getEnvFloat("INCIDENT_CLOSE_M", 800),
			OutageStaleWindow:    getEnvDuration("OUTAGE_STALE_WINDOW", 45*time.Minute),
			OutageStaleFactor:    getEnvFloat("OUTAGE_STALE_FACTOR", 1.5),
			DefaultOutageRadiusM: getEnvFloat("DEFAULT_OUTAGE_RADIUS_M", 500),
			IncidentTTL: map[domain.Kind]time.Duration{
				domain.KindTraffic:  getEnvDuration("TTL_TRAFFIC", 45*time.Minute),
				domain.KindAccident: getEnvDuration("TTL_ACCIDENT", 3*time.Hour),
				domain.KindFire:     getEnvDuration("TTL_FIRE", 4*time.Hour),
				domain.KindFlood:    getEnvDuration("TTL_FLOOD", 24*time.Hour),
			},
			IncidentTTLDefault: getEnvDuration("TTL_DEFAULT", 45*time.Minute),
			SweepEnabled:       getEnvBool("SCHEDULER_ENABLED", true),
			SweepInterval:      getEnvDuration("AGG_INTERVAL", 2*time.Minute),
		},
		Alert: AlertConfig{
			WindowHours: getEnvInt("ALERT_WINDOW_HOURS", 3),
			MinReports:  getEnvInt("ALERT_MIN_REPORTS", 3),
			CellMeters:  getEnvInt("ALERT_RADIUS_M", 150),
			MaxZones:    50,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("postgres_db", cfg.Postgres.Database),
		slog.String("redis_addr", cfg.Redis.Addr),
		slog.Bool("sweep_enabled", cfg.Aggregation.SweepEnabled))

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Http.Port == "" || c.Http.Port[0] != ':' {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}
	if c.Postgres.Host == "" {
		return errors.New("POSTGRES_HOST required")
	}
	if c.Aggregation.MergeRadiusM <= 0 {
		return errors.New("INCIDENT_MERGE_M must be positive")
	}
	if c.Aggregation.CloseFactor < 1 {
		return errors.New("CLOSE_FACTOR must be >= 1")
	}
	if c.Alert.MinReports < 2 {
		return errors.New("ALERT_MIN_REPORTS must be >= 2")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getEnvList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

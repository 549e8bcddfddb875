package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/rogerio-castellano/sales-analytics/internal/logging"
)

// Config materialises application configuration.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Logging   logging.Config  `mapstructure:"logging"`
	Database  DatabaseConfig  `mapstructure:"database"`
	HTTP      HTTPConfig      `mapstructure:"http"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Kafka     KafkaConfig     `mapstructure:"kafka"`
	Refresh   RefreshConfig   `mapstructure:"refresh"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

// DatabaseConfig encapsulates PostgreSQL connectivity.
type DatabaseConfig struct {
	DSN             string        `mapstructure:"dsn"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnectTimeout  time.Duration `mapstructure:"connect_timeout"`
}

type HTTPConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	RateLimit       float64       `mapstructure:"rate_limit"`
	RateBurst       int           `mapstructure:"rate_burst"`
	VisitorTTL      time.Duration `mapstructure:"visitor_ttl"`
}

type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

// RedisConfig is optional; an empty Addr keeps the refresh history in memory.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// KafkaConfig is optional; no brokers disables refresh events.
type KafkaConfig struct {
	Brokers      []string `mapstructure:"brokers"`
	RefreshTopic string   `mapstructure:"refresh_topic"`
}

type RefreshConfig struct {
	Views      []string      `mapstructure:"views"`
	Interval   time.Duration `mapstructure:"interval"`
	HistoryKey string        `mapstructure:"history_key"`
	HistoryMax int           `mapstructure:"history_max"`
}

// AnalyticsConfig holds the caps and defaults of the analytic queries.
type AnalyticsConfig struct {
	CashRiskMinAmount    float64       `mapstructure:"cash_risk_min_amount"`
	SuspiciousMaxMinutes float64       `mapstructure:"suspicious_max_minutes"`
	SuspiciousWindow     time.Duration `mapstructure:"suspicious_window"`
	SuspiciousCandidates int           `mapstructure:"suspicious_candidates"`
	SuspiciousResults    int           `mapstructure:"suspicious_results"`
	TopProductsLimit     int           `mapstructure:"top_products_limit"`
	TrendDays            int           `mapstructure:"trend_days"`
	MovementDays         int           `mapstructure:"movement_days"`
	MovementLimit        int           `mapstructure:"movement_limit"`
	MaxLimit             int           `mapstructure:"max_limit"`
	MaxDays              int           `mapstructure:"max_days"`
}

// DefaultViews is the refresh order; the enriched view is the most expensive
// and goes last.
var DefaultViews = []string{
	"mv_returns_metrics",
	"mv_returns_by_reason",
	"mv_returns_top_products",
	"mv_returns_enriched",
}

// Load builds configuration from .env, file, environment, and defaults.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("ANALYTICS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, decodeHook()); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "sales-analytics")
	v.SetDefault("app.environment", "development")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	// Bound so that ANALYTICS_DATABASE_DSN is picked up without a file.
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 1)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("database.connect_timeout", "5s")

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.read_timeout", "15s")
	// Refreshing every view can take minutes.
	v.SetDefault("http.write_timeout", "5m")
	v.SetDefault("http.shutdown_timeout", "10s")
	v.SetDefault("http.rate_limit", 5)
	v.SetDefault("http.rate_burst", 10)
	v.SetDefault("http.visitor_ttl", "3m")

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", "15m")

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.refresh_topic", "analytics.view-refresh")

	v.SetDefault("refresh.views", DefaultViews)
	v.SetDefault("refresh.interval", "0s")
	v.SetDefault("refresh.history_key", "analytics:refresh:runs")
	v.SetDefault("refresh.history_max", 100)

	v.SetDefault("analytics.cash_risk_min_amount", 10000.0)
	v.SetDefault("analytics.suspicious_max_minutes", 5.0)
	v.SetDefault("analytics.suspicious_window", "24h")
	v.SetDefault("analytics.suspicious_candidates", 10000)
	v.SetDefault("analytics.suspicious_results", 50)
	v.SetDefault("analytics.top_products_limit", 10)
	v.SetDefault("analytics.trend_days", 30)
	v.SetDefault("analytics.movement_days", 30)
	v.SetDefault("analytics.movement_limit", 20)
	v.SetDefault("analytics.max_limit", 500)
	v.SetDefault("analytics.max_days", 365)
}

func decodeHook() viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}
}

// IsDevelopment reports whether the app runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.App.Environment, "development")
}

// Validate performs basic sanity checks on the configuration values.
func (c *Config) Validate() error {
	if len(c.Refresh.Views) == 0 {
		return fmt.Errorf("refresh.views must list at least one view")
	}
	if c.Refresh.Interval < 0 {
		return fmt.Errorf("refresh.interval cannot be negative")
	}
	if c.Refresh.HistoryMax <= 0 {
		return fmt.Errorf("refresh.history_max must be greater than zero")
	}
	if c.Analytics.CashRiskMinAmount < 0 {
		return fmt.Errorf("analytics.cash_risk_min_amount cannot be negative")
	}
	if c.Analytics.SuspiciousMaxMinutes <= 0 {
		return fmt.Errorf("analytics.suspicious_max_minutes must be greater than zero")
	}
	if c.Analytics.SuspiciousWindow <= 0 {
		return fmt.Errorf("analytics.suspicious_window must be greater than zero")
	}
	if c.Analytics.SuspiciousCandidates <= 0 || c.Analytics.SuspiciousResults <= 0 {
		return fmt.Errorf("analytics suspicious caps must be greater than zero")
	}
	if c.Analytics.MaxLimit <= 0 || c.Analytics.MaxDays <= 0 {
		return fmt.Errorf("analytics.max_limit and analytics.max_days must be greater than zero")
	}
	if c.HTTP.RateLimit <= 0 || c.HTTP.RateBurst <= 0 {
		return fmt.Errorf("http.rate_limit and http.rate_burst must be greater than zero")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be greater than zero")
	}
	if c.Auth.JWTSecret == "" && !c.IsDevelopment() {
		return fmt.Errorf("auth.jwt_secret must be set outside development")
	}
	if len(c.Kafka.Brokers) > 0 && c.Kafka.RefreshTopic == "" {
		return fmt.Errorf("kafka.refresh_topic must be set when brokers are configured")
	}
	return nil
}

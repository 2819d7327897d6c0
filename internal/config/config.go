package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Environment string `toml:"-"`

	Host string `toml:"host"`
	Port int    `toml:"port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// prometheus
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// api
	AllowedOrigins             []string `toml:"allowed_origins"`
	LogWritesAllowedPerMin     int      `toml:"log_writes_allowed_per_min"`
	AnalyticsCacheSizeMB       int      `toml:"analytics_cache_size_mb"`
	AnalyticsCacheExpireSecond int      `toml:"analytics_cache_expire_seconds"`

	Client ClientConfig `toml:"client"`
}

// ClientConfig holds the settings of the logsync client.
type ClientConfig struct {
	ServerURL      string        `toml:"server_url"`
	StateFilePath  string        `toml:"state_file_path"`
	UseRedisStore  bool          `toml:"use_redis_store"`
	RequestTimeout time.Duration `toml:"request_timeout"`
	SettleGrace    time.Duration `toml:"settle_grace"`
	VisibleDays    int           `toml:"visible_days"`
}

// Secrets are never kept in the TOML file.
type Secrets struct {
	SentryDSN        string `env:"SENTRY_DSN"`
	APITokenHash     string `env:"TRAINLOG_API_TOKEN_HASH"`
	APIToken         string `env:"TRAINLOG_API_TOKEN"`
	RedisPassword    string `env:"TRAINLOG_REDIS_PASS"`
	HoneycombEnabled bool   `env:"HONEYCOMB_ENABLED, default=false"`
	HoneycombAPIKey  string `env:"HONEYCOMB_API_KEY"`
	OtelServiceName  string `env:"OTEL_SERVICE_NAME"`
}

type Toml struct {
	Development *Config `toml:"development"`
	Production  *Config `toml:"production"`
	DockerDev   *Config `toml:"dockerdev"`
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	case "ddev", "dockerdev":
		cfg = t.DockerDev
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}

	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	return cfg, nil
}

// Load reads the TOML file at path and returns the section for env,
// with defaults applied to the unset fields.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode toml config %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.Environment = strings.ToLower(env)
	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9000
	}
	if c.LogWritesAllowedPerMin <= 0 {
		c.LogWritesAllowedPerMin = 120
	}
	if c.AnalyticsCacheSizeMB <= 0 {
		c.AnalyticsCacheSizeMB = 16
	}
	if c.AnalyticsCacheExpireSecond <= 0 {
		c.AnalyticsCacheExpireSecond = 60
	}
	if c.Client.ServerURL == "" {
		c.Client.ServerURL = fmt.Sprintf("http://%s:%d", c.Host, c.Port)
	}
	if c.Client.StateFilePath == "" {
		c.Client.StateFilePath = "./trainlog-state.json"
	}
	if c.Client.RequestTimeout == 0 {
		c.Client.RequestTimeout = 10 * time.Second
	}
	if c.Client.SettleGrace == 0 {
		c.Client.SettleGrace = 5 * time.Second
	}
	if c.Client.VisibleDays <= 0 {
		c.Client.VisibleDays = 7
	}
}

// LoadSecrets decodes the secrets from the process environment.
func LoadSecrets(ctx context.Context) (*Secrets, error) {
	var secrets Secrets
	if err := envconfig.Process(ctx, &secrets); err != nil {
		return nil, fmt.Errorf("process env secrets: %w", err)
	}
	return &secrets, nil
}

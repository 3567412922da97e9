package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"log"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Data struct {
		PriceBackend      string `yaml:"price_backend"` // csv or clickhouse
		PriceCSVPath      string `yaml:"price_csv_path"`
		StateMatchMinRows int    `yaml:"state_match_min_rows"`
	} `yaml:"data"`
	ClickHouse struct {
		Host        string        `yaml:"host"`
		Port        int           `yaml:"port"`
		Database    string        `yaml:"database"`
		User        string        `yaml:"user"`
		Password    string        `yaml:"password"`
		PriceTable  string        `yaml:"price_table"`
		DialTimeout time.Duration `yaml:"dial_timeout"`
		ReadTimeout time.Duration `yaml:"read_timeout"`
	} `yaml:"clickhouse"`
	Kafka struct {
		Enabled      bool          `yaml:"enabled"`
		Brokers      []string      `yaml:"brokers"`
		Topic        string        `yaml:"topic"`
		RequiredAcks int           `yaml:"required_acks"`
		Compression  string        `yaml:"compression"`
		MaxAttempts  int           `yaml:"max_attempts"`
		WriteTimeout time.Duration `yaml:"write_timeout"`
	} `yaml:"kafka"`
	Cache struct {
		Enabled  bool          `yaml:"enabled"`
		Backend  string        `yaml:"backend"` // memory or redis
		Addr     string        `yaml:"addr"`
		Password string        `yaml:"password"`
		DB       int           `yaml:"db"`
		TTL      time.Duration `yaml:"ttl"`
	} `yaml:"cache"`
	Weather struct {
		Provider    string        `yaml:"provider"` // synthetic or openweather
		APIKey      string        `yaml:"api_key"`
		BaseURL     string        `yaml:"base_url"`
		Timeout     time.Duration `yaml:"timeout"`
		HorizonDays int           `yaml:"horizon_days"`
	} `yaml:"weather"`
	Advisory struct {
		TransitSpeedKmh float64       `yaml:"transit_speed_kmh"`
		RateLimitRPS    float64       `yaml:"rate_limit_rps"`
		RateLimitBurst  float64       `yaml:"rate_limit_burst"`
		CacheTTL        time.Duration `yaml:"cache_ttl"`
	} `yaml:"advisory"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("OWM_API_KEY"); v != "" {
		c.Weather.APIKey = v
	}
	if v := os.Getenv("WEATHER_PROVIDER"); v != "" {
		c.Weather.Provider = v
	}
	if v := os.Getenv("PRICE_CSV_PATH"); v != "" {
		c.Data.PriceCSVPath = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("KAFKA_TOPIC"); v != "" {
		c.Kafka.Topic = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Addr = v
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Data.PriceBackend == "" {
		c.Data.PriceBackend = "csv"
	}
	if c.Data.StateMatchMinRows == 0 {
		c.Data.StateMatchMinRows = 2
	}
	if c.Weather.Provider == "" {
		c.Weather.Provider = "synthetic"
	}
	if c.Weather.HorizonDays == 0 {
		c.Weather.HorizonDays = 7
	}
	if c.Weather.Timeout == 0 {
		c.Weather.Timeout = 10 * time.Second
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = "memory"
	}
	if c.Advisory.TransitSpeedKmh == 0 {
		c.Advisory.TransitSpeedKmh = 40
	}
	if c.Advisory.RateLimitRPS == 0 {
		c.Advisory.RateLimitRPS = 5
	}
	if c.Advisory.RateLimitBurst == 0 {
		c.Advisory.RateLimitBurst = 10
	}
	if c.Advisory.CacheTTL == 0 {
		c.Advisory.CacheTTL = 15 * time.Minute
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	if c.Log.Output == "" {
		c.Log.Output = "stdout"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Data.PriceBackend != "csv" && c.Data.PriceBackend != "clickhouse" {
		return fmt.Errorf("data.price_backend must be 'csv' or 'clickhouse', got '%s'", c.Data.PriceBackend)
	}
	if c.Data.PriceBackend == "csv" && c.Data.PriceCSVPath == "" {
		return fmt.Errorf("data.price_csv_path is required for the csv backend")
	}
	if c.Data.PriceBackend == "clickhouse" && c.ClickHouse.Host == "" {
		return fmt.Errorf("clickhouse.host is required for the clickhouse backend")
	}
	if c.Weather.Provider != "synthetic" && c.Weather.Provider != "openweather" {
		return fmt.Errorf("weather.provider must be 'synthetic' or 'openweather', got '%s'", c.Weather.Provider)
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers cannot be empty when kafka is enabled")
	}
	if c.Cache.Backend != "memory" && c.Cache.Backend != "redis" {
		return fmt.Errorf("cache.backend must be 'memory' or 'redis', got '%s'", c.Cache.Backend)
	}
	return nil
}

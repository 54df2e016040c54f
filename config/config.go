package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all tool configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig
	Logger      LoggerConfig

	// Qdrant - Vector database
	Qdrant QdrantConfig

	// Flows
	Quickstart QuickstartConfig
	Bench      BenchConfig

	// Monitoring
	Metrics MetricsConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// QdrantConfig is the configuration for Qdrant
type QdrantConfig struct {
	Host    string
	Port    int
	APIKey  string
	UseTLS  bool
	Timeout int // in seconds
}

// QuickstartConfig is the configuration for the quickstart flow
type QuickstartConfig struct {
	Collection string
	Distance   string
}

// BenchConfig is the configuration for the benchmark flow
type BenchConfig struct {
	Collection string
	Dimension  int
	Distance   string
	Points     int
	BatchSize  int
	Queries    int
	Limit      int
	Groups     int
	Seed       int64
}

// MetricsConfig controls the stage latency dump written after each run.
type MetricsConfig struct {
	Enabled    bool
	OutputFile string
}

// Load loads configuration using Viper. An empty path searches the default
// locations; a missing file falls back to defaults and environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("vectordb")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/vectordb/")
	}

	// Enable environment variable override
	v.SetEnvPrefix("VECTORDB")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Logger
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Qdrant
	cfg.Qdrant.Host = v.GetString("qdrant.host")
	cfg.Qdrant.Port = v.GetInt("qdrant.port")
	cfg.Qdrant.APIKey = v.GetString("qdrant.api_key")
	cfg.Qdrant.UseTLS = v.GetBool("qdrant.use_tls")
	cfg.Qdrant.Timeout = v.GetInt("qdrant.timeout")

	// Quickstart
	cfg.Quickstart.Collection = v.GetString("quickstart.collection")
	cfg.Quickstart.Distance = v.GetString("quickstart.distance")

	// Bench
	cfg.Bench.Collection = v.GetString("bench.collection")
	cfg.Bench.Dimension = v.GetInt("bench.dimension")
	cfg.Bench.Distance = v.GetString("bench.distance")
	cfg.Bench.Points = v.GetInt("bench.points")
	cfg.Bench.BatchSize = v.GetInt("bench.batch_size")
	cfg.Bench.Queries = v.GetInt("bench.queries")
	cfg.Bench.Limit = v.GetInt("bench.limit")
	cfg.Bench.Groups = v.GetInt("bench.groups")
	cfg.Bench.Seed = v.GetInt64("bench.seed")

	// Metrics
	cfg.Metrics.Enabled = v.GetBool("metrics.enabled")
	cfg.Metrics.OutputFile = v.GetString("metrics.output_file")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Environment
	v.SetDefault("environment.name", "local")

	// Logger
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	// 1. Qdrant (gRPC port)
	v.SetDefault("qdrant.host", "localhost")
	v.SetDefault("qdrant.port", 6334)
	v.SetDefault("qdrant.use_tls", false)
	v.SetDefault("qdrant.timeout", 30)

	// 2. Quickstart
	v.SetDefault("quickstart.collection", "test_collection")
	v.SetDefault("quickstart.distance", "dot")

	// 3. Bench
	v.SetDefault("bench.collection", "bench_collection")
	v.SetDefault("bench.dimension", 128)
	v.SetDefault("bench.distance", "cosine")
	v.SetDefault("bench.points", 10000)
	v.SetDefault("bench.batch_size", 500)
	v.SetDefault("bench.queries", 200)
	v.SetDefault("bench.limit", 10)
	v.SetDefault("bench.groups", 8)
	v.SetDefault("bench.seed", 1)

	// 4. Metrics
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.output_file", "vectordb-metrics.prom")
}

var validDistances = map[string]bool{
	"cosine":    true,
	"euclidean": true,
	"dot":       true,
	"manhattan": true,
}

func validate(cfg *Config) error {
	if cfg.Qdrant.Host == "" {
		return fmt.Errorf("qdrant.host is required")
	}
	if cfg.Qdrant.Port <= 0 || cfg.Qdrant.Port > 65535 {
		return fmt.Errorf("qdrant.port must be between 1 and 65535")
	}
	if cfg.Qdrant.Timeout < 0 {
		return fmt.Errorf("qdrant.timeout must not be negative")
	}
	if !validDistances[strings.ToLower(cfg.Quickstart.Distance)] {
		return fmt.Errorf("quickstart.distance %q is not supported", cfg.Quickstart.Distance)
	}
	if !validDistances[strings.ToLower(cfg.Bench.Distance)] {
		return fmt.Errorf("bench.distance %q is not supported", cfg.Bench.Distance)
	}
	if cfg.Bench.Dimension <= 0 || cfg.Bench.Points <= 0 || cfg.Bench.BatchSize <= 0 || cfg.Bench.Queries <= 0 {
		return fmt.Errorf("bench.dimension, bench.points, bench.batch_size and bench.queries must be positive")
	}
	if cfg.Bench.Limit < 0 {
		return fmt.Errorf("bench.limit must not be negative")
	}
	if cfg.Bench.Groups <= 0 {
		return fmt.Errorf("bench.groups must be positive")
	}
	if cfg.Metrics.Enabled && cfg.Metrics.OutputFile == "" {
		return fmt.Errorf("metrics.output_file is required when metrics are enabled")
	}
	return nil
}

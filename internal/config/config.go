package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port         string        `yaml:"port" env:"PORT"`
		Mode         string        `yaml:"mode" env:"SERVER_MODE"`
		StaticDir    string        `yaml:"static_dir" env:"STATIC_DIR"`
		ReadTimeout  time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
	} `yaml:"server"`

	Database struct {
		URL             string        `yaml:"url" env:"DATABASE_URL"`
		Host            string        `yaml:"host" env:"DB_HOST"`
		Port            string        `yaml:"port" env:"DB_PORT"`
		User            string        `yaml:"user" env:"DB_USER"`
		Password        string        `yaml:"password" env:"DB_PASSWORD"`
		DBName          string        `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string        `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int           `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int           `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		SeedOnBoot      bool          `yaml:"seed_on_boot" env:"DB_SEED_ON_BOOT"`
	} `yaml:"database"`

	Kafka struct {
		Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS"`
		Topic   string   `yaml:"topic" env:"KAFKA_TOPIC"`
	} `yaml:"kafka"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from defaults, an optional YAML file, an optional
// .env file and the process environment, in that order of precedence (last wins).
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// A missing .env is the normal case in production
	if !strings.EqualFold(os.Getenv("SERVER_MODE"), "production") {
		_ = godotenv.Load()
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "5000"
	config.Server.Mode = "development"
	config.Server.StaticDir = "public"
	config.Server.ReadTimeout = 10 * time.Second
	config.Server.WriteTimeout = 10 * time.Second

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "dsu_aiml"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 10
	config.Database.ConnMaxLifetime = time.Hour
	config.Database.SeedOnBoot = true

	config.Kafka.Topic = "directory.contact-queries"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	port, err := strconv.Atoi(config.Server.Port)
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port %q", config.Server.Port)
	}

	if config.Database.URL == "" && config.Database.Host == "" {
		return fmt.Errorf("database url or host is required")
	}

	if config.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("database max_open_conns must be positive")
	}

	durations := map[string]time.Duration{
		"server read timeout":          config.Server.ReadTimeout,
		"server write timeout":         config.Server.WriteTimeout,
		"database connection lifetime": config.Database.ConnMaxLifetime,
	}
	for name, value := range durations {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}

	if len(config.KafkaBrokers()) > 0 && config.Kafka.Topic == "" {
		return fmt.Errorf("kafka topic is required when brokers are set")
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}

	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// KafkaBrokers returns the configured broker addresses, or nil when publishing is disabled.
func (c *Config) KafkaBrokers() []string {
	return splitList(strings.Join(c.Kafka.Brokers, ","))
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Mode, "production")
}

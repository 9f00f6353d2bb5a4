package config

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Booking  BookingConfig  `yaml:"booking"`
	Events   EventsConfig   `yaml:"events"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	LogLevel string         `yaml:"log_level"`
}

type HTTPConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type BookingConfig struct {
	Workers   int           `yaml:"workers"`
	QueueSize int           `yaml:"queue_size"`
	Timeout   time.Duration `yaml:"timeout"`
	Surcharge float64       `yaml:"surcharge"`
}

type EventsConfig struct {
	QueueSize int `yaml:"queue_size"`
}

// DatabaseConfig enables the departure archive when Host is set.
type DatabaseConfig struct {
	Host       string `yaml:"host"`
	Port       string `yaml:"port"`
	User       string `yaml:"user"`
	Password   string `yaml:"password"`
	Name       string `yaml:"name"`
	MaxRetries int    `yaml:"max_retries"`
}

func (d DatabaseConfig) Enabled() bool {
	return d.Host != ""
}

// RedisConfig enables event publishing and the seat cache when Host is set.
type RedisConfig struct {
	Host    string        `yaml:"host"`
	Port    string        `yaml:"port"`
	DB      int           `yaml:"db"`
	SeatTTL time.Duration `yaml:"seat_ttl"`
}

func (r RedisConfig) Enabled() bool {
	return r.Host != ""
}

func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}

func Default() Config {
	return Config{
		HTTP: HTTPConfig{
			Addr:            ":8080",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Booking: BookingConfig{
			Workers:   16,
			QueueSize: 256,
			Timeout:   5 * time.Second,
			Surcharge: 0.10,
		},
		Events: EventsConfig{QueueSize: 1024},
		Database: DatabaseConfig{
			Port:       "5432",
			User:       "postgres",
			Name:       "airline_inventory",
			MaxRetries: 10,
		},
		Redis: RedisConfig{
			Port:    "6379",
			SeatTTL: 30 * time.Second,
		},
		LogLevel: "info",
	}
}

// Load layers configuration: defaults, then the YAML file at path (if any),
// then the .env file at envFile (if it exists), then the process
// environment.
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if envFile != "" {
		if err := LoadEnvFile(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.Booking.Workers <= 0:
		return errors.New("booking.workers must be positive")
	case c.Booking.QueueSize < 0 || c.Events.QueueSize < 0:
		return errors.New("queue sizes must not be negative")
	case c.Booking.Surcharge < 0:
		return errors.New("booking.surcharge must not be negative")
	}
	return nil
}

// LoadEnvFile copies KEY=VALUE lines from filepath into the process
// environment. Blank lines and # comments are skipped.
func LoadEnvFile(filepath string) error {
	file, err := os.Open(filepath)
	if err != nil {
		return err
	}

	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) == 2 {
			key := strings.TrimSpace(parts[0])
			value := strings.Trim(strings.TrimSpace(parts[1]), `"`)

			os.Setenv(key, value)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", filepath, err)
	}

	return nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.HTTP.Addr, "HTTP_ADDR")
	setString(&cfg.LogLevel, "LOG_LEVEL")

	setString(&cfg.Database.Host, "DB_HOST")
	setString(&cfg.Database.Port, "DB_PORT")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.Name, "DB_NAME")

	setString(&cfg.Redis.Host, "REDIS_HOST")
	setString(&cfg.Redis.Port, "REDIS_PORT")

	var errs []error
	errs = append(errs,
		setInt(&cfg.Booking.Workers, "BOOKING_WORKERS"),
		setInt(&cfg.Booking.QueueSize, "BOOKING_QUEUE_SIZE"),
		setInt(&cfg.Events.QueueSize, "EVENT_QUEUE_SIZE"),
		setInt(&cfg.Redis.DB, "REDIS_DB"),
		setDuration(&cfg.Booking.Timeout, "BOOKING_TIMEOUT"),
		setFloat(&cfg.Booking.Surcharge, "PRICE_SURCHARGE"),
	)

	return errors.Join(errs...)
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func setFloat(dst *float64, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = f
	return nil
}

func setDuration(dst *time.Duration, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = d
	return nil
}

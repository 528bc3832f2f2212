package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultNumFloors    = 10
	DefaultTickInterval = 1000 * time.Millisecond
	DefaultMaxPeople    = 100
	DefaultLogLevel     = "info"
)

// Environment keys read by LoadEnv.
const (
	EnvFloors          = "ELEVSIM_FLOORS"
	EnvTickMs          = "ELEVSIM_TICK_MS"
	EnvMaxPeople       = "ELEVSIM_MAX_PEOPLE"
	EnvEnforceCapacity = "ELEVSIM_ENFORCE_CAPACITY"
	EnvLogLevel        = "ELEVSIM_LOG_LEVEL"
	EnvLogFile         = "ELEVSIM_LOG_FILE"
)

type Config struct {
	NumFloors       int           `yaml:"numberOfFloors"`
	TickInterval    time.Duration `yaml:"-"`
	TickMs          int           `yaml:"millisecondsBetweenMovement"`
	MaxPeople       int           `yaml:"maximumNumberOfPeople"`
	EnforceCapacity bool          `yaml:"enforceCapacity"`
	LogLevel        string        `yaml:"logLevel"`
	LogFile         string        `yaml:"logFile"`
}

func Default() Config {
	return Config{
		NumFloors:    DefaultNumFloors,
		TickInterval: DefaultTickInterval,
		TickMs:       int(DefaultTickInterval / time.Millisecond),
		MaxPeople:    DefaultMaxPeople,
		LogLevel:     DefaultLogLevel,
	}
}

// NumberOfFloors makes Config usable as the building topology of an elevator.
func (c Config) NumberOfFloors() int {
	return c.NumFloors
}

// Load reads a YAML config file on top of the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return c, fmt.Errorf("open config %s: %w", path, err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return c, fmt.Errorf("decode config %s: %w", path, err)
	}
	c.TickInterval = time.Duration(c.TickMs) * time.Millisecond
	return c, nil
}

// LoadEnv applies overrides from a .env file (if envPath is set) and then from the process
// environment, which takes precedence.
func LoadEnv(c Config, envPath string) (Config, error) {
	values := map[string]string{}
	if envPath != "" {
		fileValues, err := godotenv.Read(envPath)
		if err != nil {
			return c, fmt.Errorf("read env file %s: %w", envPath, err)
		}
		values = fileValues
	}
	for _, key := range []string{EnvFloors, EnvTickMs, EnvMaxPeople, EnvEnforceCapacity, EnvLogLevel, EnvLogFile} {
		if v, ok := os.LookupEnv(key); ok {
			values[key] = v
		}
	}

	var err error
	if v, ok := values[EnvFloors]; ok {
		if c.NumFloors, err = strconv.Atoi(v); err != nil {
			return c, fmt.Errorf("%s: %w", EnvFloors, err)
		}
	}
	if v, ok := values[EnvTickMs]; ok {
		if c.TickMs, err = strconv.Atoi(v); err != nil {
			return c, fmt.Errorf("%s: %w", EnvTickMs, err)
		}
		c.TickInterval = time.Duration(c.TickMs) * time.Millisecond
	}
	if v, ok := values[EnvMaxPeople]; ok {
		if c.MaxPeople, err = strconv.Atoi(v); err != nil {
			return c, fmt.Errorf("%s: %w", EnvMaxPeople, err)
		}
	}
	if v, ok := values[EnvEnforceCapacity]; ok {
		if c.EnforceCapacity, err = strconv.ParseBool(v); err != nil {
			return c, fmt.Errorf("%s: %w", EnvEnforceCapacity, err)
		}
	}
	if v, ok := values[EnvLogLevel]; ok {
		c.LogLevel = strings.ToLower(v)
	}
	if v, ok := values[EnvLogFile]; ok {
		c.LogFile = v
	}
	return c, nil
}

var (
	ErrNoFloors        = errors.New("numberOfFloors must be at least 1")
	ErrTickInterval    = errors.New("millisecondsBetweenMovement must be positive")
	ErrNegativeCap     = errors.New("maximumNumberOfPeople must not be negative")
	ErrUnknownLogLevel = errors.New("unknown log level")
)

func (c Config) Validate() error {
	switch {
	case c.NumFloors < 1:
		return fmt.Errorf("%w: got %d", ErrNoFloors, c.NumFloors)
	case c.TickInterval <= 0:
		return fmt.Errorf("%w: got %v", ErrTickInterval, c.TickInterval)
	case c.MaxPeople < 0:
		return fmt.Errorf("%w: got %d", ErrNegativeCap, c.MaxPeople)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, c.LogLevel)
	}
	return nil
}

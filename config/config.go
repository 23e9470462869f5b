package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"weatherdash/models"
)

// Device locator kinds.
const (
	DeviceNone   = "none"
	DeviceStatic = "static"
	DeviceIP     = "ip"
)

type Config struct {
	Geocoding Geocoding `yaml:"geocoding"`
	OpenMeteo OpenMeteo `yaml:"openmeteo"`
	Cache     Cache     `yaml:"cache"`
	RateLimit RateLimit `yaml:"ratelimit"`
	Location  Location  `yaml:"location"`
	Server    Server    `yaml:"server"`
	Log       Log       `yaml:"log"`
}

type Geocoding struct {
	URL      string        `yaml:"url"`
	Language string        `yaml:"language"`
	Timeout  time.Duration `yaml:"timeout"`
}

type OpenMeteo struct {
	URL          string        `yaml:"url"`
	ForecastDays int           `yaml:"forecastDays"`
	Timeout      time.Duration `yaml:"timeout"`
}

// Cache bounds the forecast response cache. A zero TTL keeps entries for the process lifetime.
type Cache struct {
	Size      int           `yaml:"size"`
	TTL       time.Duration `yaml:"ttl"`
	Precision int           `yaml:"precision"`
}

// RateLimit paces outbound calls. RPS <= 0 disables pacing.
type RateLimit struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

type Location struct {
	Default  Place  `yaml:"default"`
	Device   string `yaml:"device"`
	Static   Place  `yaml:"static"`
	IPAPIURL string `yaml:"ipapiURL"`
}

type Place struct {
	Name      string  `yaml:"name"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

func (p Place) Coordinate() models.Coordinate {
	return models.Coordinate{Latitude: p.Latitude, Longitude: p.Longitude}
}

func (p Place) Location() models.Location {
	return models.Location{Coordinate: p.Coordinate(), DisplayName: p.Name}
}

type Server struct {
	Port   int    `yaml:"port"`
	Origin string `yaml:"origin"`
}

type Log struct {
	Level string `yaml:"level"`
}

// Parse decodes raw yaml into a Config.
func Parse(raw []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Load builds the configuration from the embedded defaults, an optional file
// whose values take precedence, then .env and process environment overrides.
func Load(embedded []byte, path string) (*Config, error) {
	cfg, err := Parse(embedded)
	if err != nil {
		return nil, err
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("WEATHERDASH_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("WEATHERDASH_PORT is not a number: %w", err)
		}
		c.Server.Port = port
	}

	if v := os.Getenv("WEATHERDASH_ORIGIN"); v != "" {
		c.Server.Origin = v
	}

	if v := os.Getenv("WEATHERDASH_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}

	if v := os.Getenv("WEATHERDASH_GEOCODING_URL"); v != "" {
		c.Geocoding.URL = v
	}

	if v := os.Getenv("WEATHERDASH_FORECAST_URL"); v != "" {
		c.OpenMeteo.URL = v
	}

	return nil
}

// Validate checks values that would otherwise fail later at request time.
func (c *Config) Validate() error {
	if c.Geocoding.URL == "" {
		return errors.New("geocoding url is required")
	}

	if c.OpenMeteo.URL == "" {
		return errors.New("openmeteo url is required")
	}

	if c.OpenMeteo.ForecastDays < 1 {
		return errors.New("openmeteo forecastDays should be more than 0")
	}

	if c.Cache.Size < 1 {
		return errors.New("cache size should be more than 0")
	}

	if c.Cache.Precision < 0 {
		return errors.New("cache precision can't be negative")
	}

	if c.Cache.TTL < 0 {
		return errors.New("cache ttl can't be negative")
	}

	if !c.Location.Default.Coordinate().Valid() {
		return fmt.Errorf("default location %+v is out of range", c.Location.Default)
	}

	switch c.Location.Device {
	case DeviceNone, DeviceIP:
	case DeviceStatic:
		if !c.Location.Static.Coordinate().Valid() {
			return fmt.Errorf("static location %+v is out of range", c.Location.Static)
		}
	default:
		return fmt.Errorf("unknown device locator %q", c.Location.Device)
	}

	return nil
}

// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/codr1/teamdesk/internal/leagues"
)

type SchedulingConfig struct {
	Courts               int    `yaml:"courts"`
	StartTime            string `yaml:"start_time"`
	MatchDurationMinutes int    `yaml:"match_duration_minutes"`
	RestTimeMinutes      int    `yaml:"rest_time_minutes"`
}

type Config struct {
	App struct {
		Name        string `yaml:"name"`
		Environment string `yaml:"environment"`
		LogLevel    string `yaml:"log_level"`
	} `yaml:"app"`

	Scheduling SchedulingConfig `yaml:"scheduling"`

	Announcements struct {
		StandingsTitle string `yaml:"standings_title"`
	} `yaml:"announcements"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	cfg.App.Name = "teamdesk"
	cfg.App.Environment = "development"
	cfg.App.LogLevel = "info"
	cfg.Scheduling.Courts = 1
	return &cfg
}

// Load loads both .env and yaml configuration
func Load(configPath string) (*Config, error) {
	envPath := filepath.Join(filepath.Dir(configPath), ".env")
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if value, ok := os.LookupEnv("TEAMDESK_ENVIRONMENT"); ok {
		c.App.Environment = value
	}
	if value, ok := os.LookupEnv("TEAMDESK_LOG_LEVEL"); ok {
		c.App.LogLevel = value
	}
	if value, ok := os.LookupEnv("TEAMDESK_COURTS"); ok {
		courts, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("invalid TEAMDESK_COURTS: %w", err)
		}
		c.Scheduling.Courts = courts
	}
	return nil
}

func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app name is required")
	}
	if _, err := zerolog.ParseLevel(c.App.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.App.LogLevel, err)
	}
	if c.Scheduling.Courts < 1 {
		return fmt.Errorf("at least one court is required")
	}
	if c.Scheduling.MatchDurationMinutes < 0 || c.Scheduling.RestTimeMinutes < 0 {
		return fmt.Errorf("match duration and rest time cannot be negative")
	}
	if c.Scheduling.StartTime != "" {
		if _, err := leagues.ParseTimeOfDay(c.Scheduling.StartTime); err != nil {
			return fmt.Errorf("invalid scheduling start_time: %w", err)
		}
	}
	return nil
}

// Timing converts the scheduling section for the fixture scheduler. It
// returns nil unless start time and match duration are both set.
func (c *Config) Timing() *leagues.Timing {
	s := c.Scheduling
	if strings.TrimSpace(s.StartTime) == "" || s.MatchDurationMinutes <= 0 {
		return nil
	}
	return &leagues.Timing{
		StartTime:     s.StartTime,
		MatchDuration: time.Duration(s.MatchDurationMinutes) * time.Minute,
		RestTime:      time.Duration(s.RestTimeMinutes) * time.Minute,
	}
}

func (c *Config) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.App.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

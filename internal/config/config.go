// Package config loads the allocator settings from YAML with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/rhyrak/ta-allocator/internal/allocator"
	"gopkg.in/yaml.v3"
)

// Config holds all allocator settings.
type Config struct {
	InputFile      string   `yaml:"input_file"`
	ExportFile     string   `yaml:"export_file"`
	Delimiter      string   `yaml:"delimiter"`
	Workers        int      `yaml:"workers"`
	IgnoredCourses []string `yaml:"ignored_courses"`

	Logging LoggingConfig `yaml:"logging"`
	Policy  PolicyConfig  `yaml:"policy"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	JSON  bool   `yaml:"json"`
}

// PolicyConfig mirrors allocator.Configuration.
type PolicyConfig struct {
	FullTAHours               float64 `yaml:"full_ta_hours"`
	MinTAThreshold            float64 `yaml:"min_ta_threshold"`
	LabRatioDenominator       float64 `yaml:"lab_ratio_denominator"`
	LabInstructorAdjustment   float64 `yaml:"lab_instructor_adjustment"`
	FirstYearExtraTAHours     float64 `yaml:"first_year_extra_ta_hours"`
	MinUnitWeightForFirstYear float64 `yaml:"min_unit_weight_for_first_year"`
	MinEnrollmentUndergrad    int     `yaml:"min_enrollment_undergrad"`
	MinEnrollmentGrad         int     `yaml:"min_enrollment_grad"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	d := allocator.NewDefaultConfiguration()
	return &Config{
		InputFile:  "courses.csv",
		ExportFile: "TA-Allocations.csv",
		Delimiter:  ",",
		Workers:    1,
		Logging:    LoggingConfig{Level: "info"},
		Policy: PolicyConfig{
			FullTAHours:               d.FullTAHours,
			MinTAThreshold:            d.MinTAThreshold,
			LabRatioDenominator:       d.LabRatioDenominator,
			LabInstructorAdjustment:   d.LabInstructorAdjustment,
			FirstYearExtraTAHours:     d.FirstYearExtraTAHours,
			MinUnitWeightForFirstYear: d.MinUnitWeightForFirstYear,
			MinEnrollmentUndergrad:    d.MinEnrollmentUndergrad,
			MinEnrollmentGrad:         d.MinEnrollmentGrad,
		},
	}
}

// Load reads configuration from a YAML file on top of the defaults, then
// applies environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// LoadDotEnv loads a .env file into the process environment. Variables that
// are already set win. A missing file is ignored.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("TA_ALLOC_INPUT"); v != "" {
		c.InputFile = v
	}
	if v := os.Getenv("TA_ALLOC_OUTPUT"); v != "" {
		c.ExportFile = v
	}
	if v := os.Getenv("TA_ALLOC_DELIMITER"); v != "" {
		c.Delimiter = v
	}
	if v := os.Getenv("TA_ALLOC_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TA_ALLOC_WORKERS: %w", err)
		}
		c.Workers = n
	}
	if v := os.Getenv("TA_ALLOC_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	return nil
}

// Validate rejects settings the engine cannot work with.
func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
	if c.Policy.FullTAHours <= 0 {
		return fmt.Errorf("full_ta_hours must be positive, got %v", c.Policy.FullTAHours)
	}
	if c.Policy.LabRatioDenominator <= 0 {
		return fmt.Errorf("lab_ratio_denominator must be positive, got %v", c.Policy.LabRatioDenominator)
	}
	if c.Policy.MinEnrollmentUndergrad < 0 || c.Policy.MinEnrollmentGrad < 0 {
		return fmt.Errorf("enrollment gates must not be negative")
	}
	return nil
}

// DelimiterRune returns the configured delimiter. Call after Validate.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// AllocatorConfiguration converts the policy block for the engine.
func (c *Config) AllocatorConfiguration() *allocator.Configuration {
	return &allocator.Configuration{
		FullTAHours:               c.Policy.FullTAHours,
		MinTAThreshold:            c.Policy.MinTAThreshold,
		LabRatioDenominator:       c.Policy.LabRatioDenominator,
		LabInstructorAdjustment:   c.Policy.LabInstructorAdjustment,
		FirstYearExtraTAHours:     c.Policy.FirstYearExtraTAHours,
		MinUnitWeightForFirstYear: c.Policy.MinUnitWeightForFirstYear,
		MinEnrollmentUndergrad:    c.Policy.MinEnrollmentUndergrad,
		MinEnrollmentGrad:         c.Policy.MinEnrollmentGrad,
	}
}

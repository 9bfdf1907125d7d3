// Package config provides configuration loading and validation for the parser and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-parser/internal/scoring"
)

// EnvConfigPath names a config file used when no --config flag is given
const EnvConfigPath = "RESUME_PARSER_CONFIG"

// Config holds the tunable thresholds of the extraction pipeline plus CLI
// logging options. It can be loaded from a JSON or YAML file; zero values are
// filled from Default by MergeWithDefaults.
type Config struct {
	// Extraction thresholds
	NameScanLines         int `json:"name_scan_lines,omitempty" yaml:"name_scan_lines" validate:"gte=0,lte=200"`                 // Leading lines searched for the name
	EducationProximity    int `json:"education_proximity,omitempty" yaml:"education_proximity" validate:"gte=0,lte=50"`          // Max line distance between degree and institute
	SkillsZoneMinimum     int `json:"skills_zone_minimum,omitempty" yaml:"skills_zone_minimum" validate:"gte=0,lte=100"`         // Skills needed before the whole-document pass is skipped
	ProjectTitleThreshold int `json:"project_title_threshold,omitempty" yaml:"project_title_threshold" validate:"gte=0,lte=100"` // Minimum title score

	// Aggregation
	Weights scoring.Weights `json:"weights,omitempty" yaml:"weights"`

	// Output
	IncludeRawText bool `json:"include_raw_text,omitempty" yaml:"include_raw_text"` // Copy the input text into the record

	// Logging
	LogFile string `json:"log_file,omitempty" yaml:"log_file"` // Rotating JSON log file, empty to disable
	Verbose bool   `json:"verbose,omitempty" yaml:"verbose"`   // Debug logging and human-readable summary
}

// Default returns the configuration every threshold falls back to
func Default() Config {
	return Config{
		NameScanLines:         20,
		EducationProximity:    3,
		SkillsZoneMinimum:     3,
		ProjectTitleThreshold: 60,
		Weights:               scoring.DefaultWeights(),
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Zero thresholds are allowed here since MergeWithDefaults fills them.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if !c.Weights.IsZero() {
		if err := c.Weights.Validate(); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}

	if c.LogFile != "" {
		dir := filepath.Dir(c.LogFile)
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			return fmt.Errorf("config error: log directory not found: %s", dir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// Int fields: use default if zero
	if result.NameScanLines == 0 {
		result.NameScanLines = defaults.NameScanLines
	}
	if result.EducationProximity == 0 {
		result.EducationProximity = defaults.EducationProximity
	}
	if result.SkillsZoneMinimum == 0 {
		result.SkillsZoneMinimum = defaults.SkillsZoneMinimum
	}
	if result.ProjectTitleThreshold == 0 {
		result.ProjectTitleThreshold = defaults.ProjectTitleThreshold
	}

	// Weights are replaced as a whole; a partial table would not sum to 1.0
	if result.Weights.IsZero() {
		result.Weights = defaults.Weights
	}

	// String fields: use default if empty
	if result.LogFile == "" {
		result.LogFile = defaults.LogFile
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Resolve loads the config at path, or the file named by RESUME_PARSER_CONFIG
// when path is empty, merges it with Default and validates the result. With
// neither set it returns Default.
func Resolve(path string) (Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		return Default(), nil
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		return Config{}, err
	}
	if err := loaded.Validate(); err != nil {
		return Config{}, err
	}
	return loaded.MergeWithDefaults(Default()), nil
}

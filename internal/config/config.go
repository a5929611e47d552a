// Package config provides configuration loading and validation for the site generator.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// trackingIDPattern matches a GA4 measurement ID: "G-" followed by ten
// upper-case alphanumeric characters.
var trackingIDPattern = regexp.MustCompile(`^G-[A-Z0-9]{10}$`)

// Config represents the generator configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	ContentDir string `json:"content_dir,omitempty"` // Directory holding resume sources (resume.en.md, resume.ko.md)
	OutputDir  string `json:"output_dir,omitempty"`  // Directory static pages and PDFs are written to
	DataDir    string `json:"data_dir,omitempty"`    // Directory for persisted state (consent record, language preference)

	// Site
	SiteName string `json:"site_name,omitempty"` // Title used on the homepage and page <title>
	BaseURL  string `json:"base_url,omitempty"`  // Canonical site origin, e.g. https://example.dev

	// Analytics
	TrackingID     string `json:"tracking_id,omitempty"`      // GA4 measurement ID (G-XXXXXXXXXX); empty disables analytics
	Environment    string `json:"environment,omitempty"`      // "production" or "development"
	AnalyticsInDev bool   `json:"analytics_in_dev,omitempty"` // Allow tracking in a development environment

	// Pointers so a config file omitting them inherits the safe defaults
	// (both on) instead of silently disabling the gates.
	ConsentRequired   *bool `json:"consent_required,omitempty"`     // Gate tracking on a valid consent record
	RespectDoNotTrack *bool `json:"respect_do_not_track,omitempty"` // Honor the DO_NOT_TRACK signal

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed build information
}

// Bool returns a pointer to v, for the optional bool config fields.
func Bool(v bool) *bool { return &v }

// Defaults returns the configuration used when no config file or flags override it.
func Defaults() Config {
	return Config{
		ContentDir:        "content",
		OutputDir:         "public",
		DataDir:           ".resume_site",
		SiteName:          "Resume",
		Environment:       "production",
		ConsentRequired:   Bool(true),
		RespectDoNotTrack: Bool(true),
	}
}

// LoadConfig loads configuration from a JSON file.
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
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overlays environment variables onto the config. Environment
// values win over file values so deployments can override without editing
// the config file.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("GA_TRACKING_ID"); v != "" {
		c.TrackingID = v
	}
	if v := os.Getenv("SITE_ENV"); v != "" {
		c.Environment = v
	}
	if v := os.Getenv("SITE_BASE_URL"); v != "" {
		c.BaseURL = v
	}
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.TrackingID != "" && !trackingIDPattern.MatchString(c.TrackingID) {
		return fmt.Errorf("config error: 'tracking_id' must look like G-XXXXXXXXXX, got %q", c.TrackingID)
	}

	if c.Environment != "" && c.Environment != "production" && c.Environment != "development" {
		return fmt.Errorf("config error: 'environment' must be \"production\" or \"development\"")
	}

	// Validate content directory exists (if specified)
	if c.ContentDir != "" {
		if _, err := os.Stat(c.ContentDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: content directory not found: %s", c.ContentDir)
		}
	}

	return nil
}

// AnalyticsConfigured reports whether a well-formed tracking ID is present.
// An absent or malformed ID disables the analytics subsystem entirely.
func (c *Config) AnalyticsConfigured() bool {
	return trackingIDPattern.MatchString(c.TrackingID)
}

// IsDevelopment reports whether the generator runs in a development-like
// environment where tracking is suppressed unless explicitly enabled.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// ConsentGateEnabled reports whether tracking requires a valid consent
// record. Unset means yes.
func (c *Config) ConsentGateEnabled() bool {
	return c.ConsentRequired == nil || *c.ConsentRequired
}

// HonorsDoNotTrack reports whether the DO_NOT_TRACK signal suppresses
// tracking. Unset means yes.
func (c *Config) HonorsDoNotTrack() bool {
	return c.RespectDoNotTrack == nil || *c.RespectDoNotTrack
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.ContentDir == "" {
		result.ContentDir = defaults.ContentDir
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.SiteName == "" {
		result.SiteName = defaults.SiteName
	}
	if result.BaseURL == "" {
		result.BaseURL = defaults.BaseURL
	}
	if result.TrackingID == "" {
		result.TrackingID = defaults.TrackingID
	}
	if result.Environment == "" {
		result.Environment = defaults.Environment
	}

	// Unset pointer bools inherit the defaults; an explicit false in the
	// config file survives the merge.
	if result.ConsentRequired == nil {
		result.ConsentRequired = defaults.ConsentRequired
	}
	if result.RespectDoNotTrack == nil {
		result.RespectDoNotTrack = defaults.RespectDoNotTrack
	}

	// Plain bool fields cannot distinguish unset from false, so we don't
	// merge them (CLI flags should always win)

	return result
}

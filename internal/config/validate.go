package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// Validate performs rule checks on the loaded configuration.
// Load calls it automatically; call it again after applying overrides.
func (c *Config) Validate() error {
	if c.Corpus.Root == "" {
		return fmt.Errorf("corpus.root must not be empty")
	}

	if err := c.Reference.validate(); err != nil {
		return fmt.Errorf("reference: %w", err)
	}

	if c.Report.Path == "" {
		return fmt.Errorf("report.path must not be empty")
	}

	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("log.level must be one of %v (got %q)", logLevels, c.Log.Level)
	}

	if !slices.Contains(logFormats, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("log.format must be one of %v (got %q)", logFormats, c.Log.Format)
	}

	return nil
}

func (r *ReferenceConfig) validate() error {
	u, err := url.Parse(r.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute URL (got %q)", r.BaseURL)
	}

	if r.Translation == "" {
		return fmt.Errorf("translation must not be empty")
	}

	if r.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", r.Timeout)
	}

	if r.Attempts <= 0 {
		return fmt.Errorf("attempts must be > 0 (got %d)", r.Attempts)
	}

	if r.MaxRateLimited < 0 {
		return fmt.Errorf("max_rate_limited must be >= 0 (got %d)", r.MaxRateLimited)
	}

	if r.RetrySleep < 0 || r.RateLimitSleep < 0 || r.Throttle < 0 {
		return fmt.Errorf("sleep intervals must be >= 0")
	}

	return nil
}

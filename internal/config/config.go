// Package config loads the settings of a validation run. Settings are
// fixed at process start.
package config

import (
	"path/filepath"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Corpus    CorpusConfig    `yaml:"corpus"`
	Reference ReferenceConfig `yaml:"reference"`
	Report    ReportConfig    `yaml:"report"`
	Log       LogConfig       `yaml:"log"`
}

// CorpusConfig locates the local chapter files.
type CorpusConfig struct {
	Root string `yaml:"root" env:"VERSECHECK_ROOT" env-default:"."`
}

// ReferenceConfig describes the remote text API and how politely to call it.
type ReferenceConfig struct {
	BaseURL        string        `yaml:"base_url"         env:"VERSECHECK_API_BASE"         env-default:"https://bible-api.com"`
	Translation    string        `yaml:"translation"      env:"VERSECHECK_TRANSLATION"      env-default:"kjv"`
	Timeout        time.Duration `yaml:"timeout"          env:"VERSECHECK_TIMEOUT"          env-default:"15s"`
	Attempts       int           `yaml:"attempts"         env:"VERSECHECK_RETRIES"          env-default:"3"`
	RetrySleep     time.Duration `yaml:"retry_sleep"      env:"VERSECHECK_RETRY_SLEEP"      env-default:"1500ms"`
	RateLimitSleep time.Duration `yaml:"rate_limit_sleep" env:"VERSECHECK_RATE_LIMIT_SLEEP" env-default:"2s"`
	MaxRateLimited int           `yaml:"max_rate_limited" env:"VERSECHECK_MAX_RATE_LIMITED" env-default:"5"`
	Throttle       time.Duration `yaml:"throttle"         env:"VERSECHECK_THROTTLE"         env-default:"250ms"`
}

// ReportConfig sets where the mismatch CSV goes.
type ReportConfig struct {
	Path string `yaml:"path" env:"VERSECHECK_REPORT" env-default:"bible_mismatches.csv"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"VERSECHECK_LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"VERSECHECK_LOG_FORMAT" env-default:"text"`
}

// ReportPath resolves the report location; relative paths are anchored at the corpus root.
func (c *Config) ReportPath() string {
	if filepath.IsAbs(c.Report.Path) {
		return c.Report.Path
	}

	return filepath.Join(c.Corpus.Root, c.Report.Path)
}

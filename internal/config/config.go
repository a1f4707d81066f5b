// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config is built once at startup and passed down to every component.
type Config struct {
	DatabaseURL string `json:"database_url,omitempty" validate:"required"` // PostgreSQL connection URL

	// Limits
	GfGPages          int `json:"gfg_pages,omitempty" validate:"min=1,max=50"`
	LeetCodePostLimit int `json:"leetcode_post_limit,omitempty" validate:"min=1,max=100"`
	MaxDocuments      int `json:"max_documents,omitempty" validate:"min=1,max=100"` // Articles or posts parsed per company

	// Pacing
	GfGIntervalMS         int `json:"gfg_interval_ms,omitempty" validate:"min=0"`
	LeetCodeIntervalMS    int `json:"leetcode_interval_ms,omitempty" validate:"min=0"`
	CompanyPauseMS        int `json:"company_pause_ms,omitempty" validate:"min=0"`
	RequestTimeoutSeconds int `json:"request_timeout_seconds,omitempty" validate:"min=1"`
	GraphQLTimeoutSeconds int `json:"graphql_timeout_seconds,omitempty" validate:"min=1"`

	// Companies restricts a run to these keys. Empty means every configured company.
	Companies []string `json:"companies,omitempty" validate:"dive,required"`

	// Behavior
	UseBrowser bool `json:"use_browser,omitempty"` // Render HTML pages with a headless browser
	Verbose    bool `json:"verbose,omitempty"`     // Print detailed debug information
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		GfGPages:              2,
		LeetCodePostLimit:     30,
		MaxDocuments:          10,
		GfGIntervalMS:         1000,
		LeetCodeIntervalMS:    500,
		CompanyPauseMS:        2000,
		RequestTimeoutSeconds: 10,
		GraphQLTimeoutSeconds: 15,
	}
}

// Load builds the run configuration: defaults, then the JSON file at path
// (if non-empty), then the environment. .env and ../.env are read first when present.
func Load(path string) (*Config, error) {
	loadDotEnv()

	cfg := Defaults()
	if path != "" {
		fileCfg, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}
	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadDotEnv() {
	for _, name := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(name); err == nil {
			_ = godotenv.Load(name)
		}
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

// ApplyEnv overrides fields from environment variables that are set.
func (c *Config) ApplyEnv() {
	c.DatabaseURL = getEnvString("DATABASE_URL", c.DatabaseURL)
	c.GfGPages = getEnvInt("PYQ_GFG_PAGES", c.GfGPages)
	c.LeetCodePostLimit = getEnvInt("PYQ_LEETCODE_POST_LIMIT", c.LeetCodePostLimit)
	c.MaxDocuments = getEnvInt("PYQ_MAX_DOCUMENTS", c.MaxDocuments)
	c.GfGIntervalMS = getEnvInt("PYQ_GFG_INTERVAL_MS", c.GfGIntervalMS)
	c.LeetCodeIntervalMS = getEnvInt("PYQ_LEETCODE_INTERVAL_MS", c.LeetCodeIntervalMS)
	c.CompanyPauseMS = getEnvInt("PYQ_COMPANY_PAUSE_MS", c.CompanyPauseMS)
	c.RequestTimeoutSeconds = getEnvInt("PYQ_REQUEST_TIMEOUT_SECONDS", c.RequestTimeoutSeconds)
	c.GraphQLTimeoutSeconds = getEnvInt("PYQ_GRAPHQL_TIMEOUT_SECONDS", c.GraphQLTimeoutSeconds)
	c.UseBrowser = getEnvBool("PYQ_USE_BROWSER", c.UseBrowser)
	c.Verbose = getEnvBool("PYQ_VERBOSE", c.Verbose)
	if list := getEnvString("PYQ_COMPANIES", ""); list != "" {
		c.Companies = parseList(list)
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if len(result.Companies) == 0 {
		result.Companies = defaults.Companies
	}

	// Int fields: use default if zero
	ints := []struct {
		dst *int
		def int
	}{
		{&result.GfGPages, defaults.GfGPages},
		{&result.LeetCodePostLimit, defaults.LeetCodePostLimit},
		{&result.MaxDocuments, defaults.MaxDocuments},
		{&result.GfGIntervalMS, defaults.GfGIntervalMS},
		{&result.LeetCodeIntervalMS, defaults.LeetCodeIntervalMS},
		{&result.CompanyPauseMS, defaults.CompanyPauseMS},
		{&result.RequestTimeoutSeconds, defaults.RequestTimeoutSeconds},
		{&result.GraphQLTimeoutSeconds, defaults.GraphQLTimeoutSeconds},
	}
	for _, f := range ints {
		if *f.dst == 0 {
			*f.dst = f.def
		}
	}

	// Bool fields: cannot distinguish unset from false, so true from either side wins
	result.UseBrowser = result.UseBrowser || defaults.UseBrowser
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}

// Wants reports whether companyKey is selected by the Companies filter.
func (c *Config) Wants(companyKey string) bool {
	if len(c.Companies) == 0 {
		return true
	}
	for _, k := range c.Companies {
		if strings.EqualFold(k, companyKey) {
			return true
		}
	}
	return false
}

// GfGInterval is the minimum spacing between article site requests.
func (c *Config) GfGInterval() time.Duration {
	return time.Duration(c.GfGIntervalMS) * time.Millisecond
}

// LeetCodeInterval is the minimum spacing between forum API requests.
func (c *Config) LeetCodeInterval() time.Duration {
	return time.Duration(c.LeetCodeIntervalMS) * time.Millisecond
}

// CompanyPause is the wait between two companies of the forum API.
func (c *Config) CompanyPause() time.Duration {
	return time.Duration(c.CompanyPauseMS) * time.Millisecond
}

// RequestTimeout bounds page GETs and forum post content queries.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// GraphQLTimeout bounds the forum topic list query.
func (c *Config) GraphQLTimeout() time.Duration {
	return time.Duration(c.GraphQLTimeoutSeconds) * time.Second
}

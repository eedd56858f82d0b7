// Package config provides configuration loading and validation for the scanner.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
)

// Defaults for tunables that are configuration values rather than constants
// buried in logic.
const (
	// DefaultThreshold is the minimum classifier confidence for a candidate
	// to be selectable.
	DefaultThreshold = 0.6
	// DefaultMinContentLength is the stripped-text length below which a
	// static fetch is treated as an SPA shell and retried in the browser.
	DefaultMinContentLength = 500
	// DefaultMaxContentChars caps normalized content sent to the classifier.
	DefaultMaxContentChars = 20000
	// DefaultMaxSearchResults caps search fallback candidates.
	DefaultMaxSearchResults = 5
	// DefaultConcurrency bounds parallel candidate fetch/score work.
	DefaultConcurrency = 3
	// DefaultPDFSizeLimitMB caps the size of PDFs we attempt to parse.
	DefaultPDFSizeLimitMB = 1
)

// Default timeouts
const (
	DefaultFetchTimeout   = 15 * time.Second
	DefaultBrowserTimeout = 30 * time.Second
	DefaultRecordTimeout  = 3 * time.Minute
)

// Config is the explicit configuration object constructed once at startup and
// passed by reference into each component. There is no ambient global lookup:
// API keys come in here, from the environment or a config file.
type Config struct {
	// Credentials
	GeminiAPIKey string `json:"gemini_api_key,omitempty"`
	SearchAPIKey string `json:"search_api_key,omitempty"`
	SearchCX     string `json:"search_cx,omitempty"`

	// Selection
	Threshold float64 `json:"threshold,omitempty" validate:"gte=0,lte=1"`

	// Fetching
	MinContentLength int  `json:"min_content_length,omitempty" validate:"gte=0"`
	MaxContentChars  int  `json:"max_content_chars,omitempty" validate:"gte=0"`
	PDFSizeLimitMB   int  `json:"pdf_size_limit_mb,omitempty" validate:"gte=0"`
	UseBrowser       bool `json:"use_browser,omitempty"`

	// Search fallback
	MaxSearchResults int `json:"max_search_results,omitempty" validate:"gte=0,lte=10"`

	// Scheduling. Concurrency 1 means strictly sequential candidate work.
	Concurrency    int           `json:"concurrency,omitempty" validate:"gte=0,lte=32"`
	FetchTimeout   time.Duration `json:"-"`
	BrowserTimeout time.Duration `json:"-"`
	RecordTimeout  time.Duration `json:"-"`

	// JSON-friendly timeout fields, in seconds
	FetchTimeoutSec   int `json:"fetch_timeout_sec,omitempty" validate:"gte=0"`
	BrowserTimeoutSec int `json:"browser_timeout_sec,omitempty" validate:"gte=0"`
	RecordTimeoutSec  int `json:"record_timeout_sec,omitempty" validate:"gte=0"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"`
}

// Default returns a Config populated with default tunables. Credentials are
// left empty; FromEnv fills them in.
func Default() *Config {
	return &Config{
		Threshold:        DefaultThreshold,
		MinContentLength: DefaultMinContentLength,
		MaxContentChars:  DefaultMaxContentChars,
		PDFSizeLimitMB:   DefaultPDFSizeLimitMB,
		MaxSearchResults: DefaultMaxSearchResults,
		Concurrency:      DefaultConcurrency,
		FetchTimeout:     DefaultFetchTimeout,
		BrowserTimeout:   DefaultBrowserTimeout,
		RecordTimeout:    DefaultRecordTimeout,
	}
}

// Load reads configuration from a JSON file and applies defaults for any
// field left unset. Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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

	cfg.ApplyDefaults()
	return &cfg, nil
}

// ApplyDefaults fills zero-value tunables and resolves second-granularity
// JSON fields into durations.
func (c *Config) ApplyDefaults() {
	d := Default()
	if c.Threshold == 0 {
		c.Threshold = d.Threshold
	}
	if c.MinContentLength == 0 {
		c.MinContentLength = d.MinContentLength
	}
	if c.MaxContentChars == 0 {
		c.MaxContentChars = d.MaxContentChars
	}
	if c.PDFSizeLimitMB == 0 {
		c.PDFSizeLimitMB = d.PDFSizeLimitMB
	}
	if c.MaxSearchResults == 0 {
		c.MaxSearchResults = d.MaxSearchResults
	}
	if c.Concurrency == 0 {
		c.Concurrency = d.Concurrency
	}

	c.FetchTimeout = d.FetchTimeout
	if c.FetchTimeoutSec > 0 {
		c.FetchTimeout = time.Duration(c.FetchTimeoutSec) * time.Second
	}
	c.BrowserTimeout = d.BrowserTimeout
	if c.BrowserTimeoutSec > 0 {
		c.BrowserTimeout = time.Duration(c.BrowserTimeoutSec) * time.Second
	}
	c.RecordTimeout = d.RecordTimeout
	if c.RecordTimeoutSec > 0 {
		c.RecordTimeout = time.Duration(c.RecordTimeoutSec) * time.Second
	}
}

// FromEnv fills empty credential fields from the environment.
// Expected variables: GEMINI_API_KEY, GOOGLE_SEARCH_API_KEY, GOOGLE_SEARCH_CX.
func (c *Config) FromEnv() {
	if c.GeminiAPIKey == "" {
		c.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.SearchAPIKey == "" {
		c.SearchAPIKey = os.Getenv("GOOGLE_SEARCH_API_KEY")
	}
	if c.SearchCX == "" {
		c.SearchCX = os.Getenv("GOOGLE_SEARCH_CX")
	}
}

// SearchEnabled reports whether the search fallback has usable credentials.
func (c *Config) SearchEnabled() bool {
	return c.SearchAPIKey != "" && c.SearchCX != ""
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("config error: gemini API key is required (set GEMINI_API_KEY)")
	}
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

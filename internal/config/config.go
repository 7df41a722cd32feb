package config

import (
	"fmt"
	"time"
)

const (
	DefaultPort           = 3000
	DefaultServiceName    = "Audio Summary API"
	DefaultTempDir        = "temp"
	DefaultModel          = "gemini-1.5-flash"
	DefaultMaxChars       = 1950
	DefaultYtDlpPath      = "yt-dlp"
	DefaultSweepInterval  = time.Hour
	DefaultSweepMaxAge    = time.Hour
	DefaultSummaryPrompt  = "Please provide a comprehensive summary of the following audio transcript. Extract key points, actionable insights, and main topics. Format the output as clean markdown."
	DefaultLoggingLevel   = "info"
	DefaultLoggingFormat  = "text"
	defaultAllowedDomains = "youtube.com,youtu.be,instagram.com"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Paths   PathsConfig   `yaml:"paths"`
	Logging LoggingConfig `yaml:"logging"`
	Gemini  GeminiConfig  `yaml:"gemini"`
	Summary SummaryConfig `yaml:"summary"`
	Fetcher FetcherConfig `yaml:"fetcher"`
	Sweep   SweepConfig   `yaml:"sweep"`
}

type ServerConfig struct {
	Port        int    `yaml:"port"`
	ServiceName string `yaml:"service_name"`
}

type PathsConfig struct {
	Temp string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type GeminiConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// SummaryConfig controls prompt composition. MaxChars of zero means the
// default ceiling; a negative value disables the ceiling altogether.
type SummaryConfig struct {
	Prompt     string `yaml:"prompt"`
	PromptFile string `yaml:"prompt_file"`
	MaxChars   int    `yaml:"max_chars"`
}

type FetcherConfig struct {
	BinaryPath     string   `yaml:"binary_path"`
	AllowedDomains []string `yaml:"allowed_domains"`
}

type SweepConfig struct {
	Interval time.Duration `yaml:"interval"`
	MaxAge   time.Duration `yaml:"max_age"`
}

// Validate fills defaults and rejects values that can never work. A missing
// API key is not an error here; it surfaces when Gemini is first called.
func (c *Config) Validate() error {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Server.ServiceName == "" {
		c.Server.ServiceName = DefaultServiceName
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = DefaultTempDir
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLoggingLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLoggingFormat
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = DefaultModel
	}
	if c.Summary.Prompt == "" {
		c.Summary.Prompt = DefaultSummaryPrompt
	}
	if c.Summary.MaxChars == 0 {
		c.Summary.MaxChars = DefaultMaxChars
	}
	if c.Fetcher.BinaryPath == "" {
		c.Fetcher.BinaryPath = DefaultYtDlpPath
	}
	if len(c.Fetcher.AllowedDomains) == 0 {
		c.Fetcher.AllowedDomains = splitList(defaultAllowedDomains)
	}
	if c.Sweep.Interval == 0 {
		c.Sweep.Interval = DefaultSweepInterval
	}
	if c.Sweep.Interval < 0 {
		return fmt.Errorf("sweep.interval must be positive: %s", c.Sweep.Interval)
	}
	if c.Sweep.MaxAge == 0 {
		c.Sweep.MaxAge = DefaultSweepMaxAge
	}
	if c.Sweep.MaxAge < 0 {
		return fmt.Errorf("sweep.max_age must be positive: %s", c.Sweep.MaxAge)
	}

	return nil
}

// SummaryCap returns the effective character ceiling, zero when disabled.
func (c *Config) SummaryCap() int {
	if c.Summary.MaxChars < 0 {
		return 0
	}
	return c.Summary.MaxChars
}

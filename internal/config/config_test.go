package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name:    "port out of range",
			config:  Config{Server: ServerConfig{Port: 70000}},
			wantErr: true,
		},
		{
			name:    "negative sweep interval",
			config:  Config{Sweep: SweepConfig{Interval: -time.Second}},
			wantErr: true,
		},
		{
			name:    "negative max age",
			config:  Config{Sweep: SweepConfig{MaxAge: -time.Second}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	var cfg Config
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("Port = %v, want %v", cfg.Server.Port, 3000)
	}
	if cfg.Paths.Temp != "temp" {
		t.Errorf("Temp = %v, want %v", cfg.Paths.Temp, "temp")
	}
	if cfg.Gemini.Model != DefaultModel {
		t.Errorf("Model = %v, want %v", cfg.Gemini.Model, DefaultModel)
	}
	if cfg.Sweep.Interval != time.Hour {
		t.Errorf("Interval = %v, want %v", cfg.Sweep.Interval, time.Hour)
	}
	if cfg.SummaryCap() != 1950 {
		t.Errorf("SummaryCap() = %v, want %v", cfg.SummaryCap(), 1950)
	}
	if len(cfg.Fetcher.AllowedDomains) != 3 {
		t.Errorf("AllowedDomains = %v, want 3 entries", cfg.Fetcher.AllowedDomains)
	}
	if cfg.Gemini.APIKey != "" {
		t.Errorf("APIKey = %q, want empty", cfg.Gemini.APIKey)
	}
}

func TestSummaryCapDisabled(t *testing.T) {
	cfg := Config{Summary: SummaryConfig{MaxChars: -1}}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.SummaryCap() != 0 {
		t.Errorf("SummaryCap() = %v, want 0", cfg.SummaryCap())
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"PORT":              "8080",
		"TEMP_DIR":          "/var/tmp/clips",
		"GOOGLE_AI_API_KEY": "secret",
		"GEMINI_MODEL":      "gemini-2.5-flash",
		"SUMMARY_PROMPT":    "Summarize briefly.",
		"SUMMARY_MAX_CHARS": "500",
		"SWEEP_INTERVAL":    "10m",
		"ALLOWED_DOMAINS":   "youtube.com, tiktok.com",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	var cfg Config
	if err := applyEnv(&cfg, lookup); err != nil {
		t.Fatalf("applyEnv() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Port = %v, want %v", cfg.Server.Port, 8080)
	}
	if cfg.Paths.Temp != "/var/tmp/clips" {
		t.Errorf("Temp = %v, want %v", cfg.Paths.Temp, "/var/tmp/clips")
	}
	if cfg.Gemini.APIKey != "secret" {
		t.Errorf("APIKey = %v, want %v", cfg.Gemini.APIKey, "secret")
	}
	if cfg.Summary.MaxChars != 500 {
		t.Errorf("MaxChars = %v, want %v", cfg.Summary.MaxChars, 500)
	}
	if cfg.Sweep.Interval != 10*time.Minute {
		t.Errorf("Interval = %v, want %v", cfg.Sweep.Interval, 10*time.Minute)
	}
	if len(cfg.Fetcher.AllowedDomains) != 2 || cfg.Fetcher.AllowedDomains[1] != "tiktok.com" {
		t.Errorf("AllowedDomains = %v", cfg.Fetcher.AllowedDomains)
	}
}

func TestApplyEnvInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad port", "PORT", "abc"},
		{"bad max chars", "SUMMARY_MAX_CHARS", "many"},
		{"bad duration", "SWEEP_MAX_AGE", "forever"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := func(k string) (string, bool) {
				if k == tt.key {
					return tt.val, true
				}
				return "", false
			}
			var cfg Config
			if err := applyEnv(&cfg, lookup); err == nil {
				t.Errorf("applyEnv() should fail for %s=%s", tt.key, tt.val)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 4000
paths:
  temp: "data/temp"
gemini:
  model: "gemini-2.5-flash"
sweep:
  interval: 30m
  max_age: 2h
logging:
  level: "debug"
  format: "json"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 4000 && os.Getenv("PORT") == "" {
		t.Errorf("Port = %v, want %v", cfg.Server.Port, 4000)
	}
	if cfg.Sweep.MaxAge != 2*time.Hour && os.Getenv("SWEEP_MAX_AGE") == "" {
		t.Errorf("MaxAge = %v, want %v", cfg.Sweep.MaxAge, 2*time.Hour)
	}
	if cfg.Sweep.Interval != 30*time.Minute && os.Getenv("SWEEP_INTERVAL") == "" {
		t.Errorf("Interval = %v, want %v", cfg.Sweep.Interval, 30*time.Minute)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() should return error for malformed YAML")
	}
}

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// setEnv sets the baseline valid environment and clears optional variables
func setEnv(t *testing.T, overrides map[string]string) {
	t.Helper()

	for _, name := range GetEnvVars() {
		t.Setenv(name, "")
	}
	t.Setenv("PORT", "8002")
	t.Setenv("ADDRESS", "127.0.0.1")
	t.Setenv("ENV", "dev")
	t.Setenv("LOG_LEVEL", "info")

	for key, value := range overrides {
		t.Setenv(key, value)
	}
}

func TestLoadValidConfig(t *testing.T) {
	setEnv(t, map[string]string{
		"DATASET_PATH":   "/data/ctg-studies.json",
		"DATASET_RELOAD": "0 6 * * *",
		"CORS_ORIGINS":   "https://a.example, https://b.example",
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Port != "8002" {
		t.Errorf("Expected port 8002, got %s", cfg.Port)
	}
	if cfg.Env != EnvDevelopment {
		t.Errorf("Expected env dev, got %s", cfg.Env)
	}
	if cfg.DatasetPath != "/data/ctg-studies.json" {
		t.Errorf("Expected dataset path, got %s", cfg.DatasetPath)
	}
	if cfg.DatasetReload != "0 6 * * *" {
		t.Errorf("Expected reload schedule, got %q", cfg.DatasetReload)
	}
	if !reflect.DeepEqual(cfg.CORSOrigins, []string{"https://a.example", "https://b.example"}) {
		t.Errorf("Unexpected CORS origins %v", cfg.CORSOrigins)
	}
}

func TestLoadWithDefaults(t *testing.T) {
	for _, name := range GetEnvVars() {
		t.Setenv(name, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Port != "8000" {
		t.Errorf("Expected default port 8000, got %s", cfg.Port)
	}
	if cfg.Address != "127.0.0.1" {
		t.Errorf("Expected default address 127.0.0.1, got %s", cfg.Address)
	}
	if cfg.Env != EnvDevelopment {
		t.Errorf("Expected default env dev, got %s", cfg.Env)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level info, got %s", cfg.LogLevel)
	}
	if cfg.DatasetPath != "ctg-studies.json" {
		t.Errorf("Expected default dataset path, got %s", cfg.DatasetPath)
	}
	if cfg.DatasetReload != "" {
		t.Errorf("Expected reloads disabled by default, got %q", cfg.DatasetReload)
	}
	if !reflect.DeepEqual(cfg.CORSOrigins, []string{"*"}) {
		t.Errorf("Expected CORS origins [*], got %v", cfg.CORSOrigins)
	}
	if cfg.RateLimitRate != 3 || cfg.RateLimitCapacity != 1000 {
		t.Errorf("Unexpected rate limit defaults %v/%d", cfg.RateLimitRate, cfg.RateLimitCapacity)
	}
}

func TestInvalidValues(t *testing.T) {
	testCases := []struct {
		name     string
		key      string
		value    string
		expected string
	}{
		{"non numeric port", "PORT", "abc", "PORT must be a valid number"},
		{"port zero", "PORT", "0", "PORT must be between 1 and 65535"},
		{"port too high", "PORT", "65536", "PORT must be between 1 and 65535"},
		{"privileged port", "PORT", "80", "PORT 80 is privileged"},
		{"address", "ADDRESS", "invalid", "ADDRESS must be a valid IP address"},
		{"env", "ENV", "invalid", "ENV must be one of"},
		{"log level", "LOG_LEVEL", "invalid", "LOG_LEVEL must be one of"},
		{"request body", "MAX_REQUEST_BODY", "-1", "MAX_REQUEST_BODY must be positive"},
		{"header size", "MAX_HEADER_SIZE", "209715200", "MAX_HEADER_SIZE is too large"},
		{"retention", "LOG_RETENTION_WEEKS", "60", "LOG_RETENTION_WEEKS is too large"},
		{"log file size", "MAX_LOG_FILE_SIZE", "10", "MAX_LOG_FILE_SIZE is too small"},
		{"reload schedule", "DATASET_RELOAD", "every day", "DATASET_RELOAD must be a cron expression"},
		{"rate", "RATE_LIMIT_RATE", "-2", "RATE_LIMIT_RATE must be positive"},
		{"capacity", "RATE_LIMIT_CAPACITY", "-5", "RATE_LIMIT_CAPACITY must be positive"},
		{"cors", "CORS_ORIGINS", " , ", "at least one origin"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setEnv(t, map[string]string{tc.key: tc.value})

			_, err := Load()
			if err == nil {
				t.Fatalf("Expected error for %s=%s, got nil", tc.key, tc.value)
			}
			if !strings.Contains(err.Error(), tc.expected) {
				t.Errorf("Expected error containing %q, got %v", tc.expected, err)
			}
		})
	}
}

func TestWildcardAddress(t *testing.T) {
	setEnv(t, map[string]string{"ADDRESS": "0.0.0.0"})

	if _, err := Load(); err != nil {
		t.Errorf("Expected 0.0.0.0 to be accepted, got %v", err)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("DATASET_PATH=from-dotenv.json\nPORT=9100\n"), 0600); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}

	setEnv(t, nil)
	// Unset so godotenv is allowed to fill it
	_ = os.Unsetenv("DATASET_PATH")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv failed: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DatasetPath != "from-dotenv.json" {
		t.Errorf("Expected dataset path from .env, got %s", cfg.DatasetPath)
	}
	if cfg.Port != "8002" {
		t.Errorf("Existing environment should win over .env, got port %s", cfg.Port)
	}
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("A missing .env file should be ignored, got %v", err)
	}
}

func TestParseEnvironment(t *testing.T) {
	tests := []struct {
		input    string
		expected Environment
		hasError bool
	}{
		{"dev", EnvDevelopment, false},
		{"development", EnvDevelopment, false},
		{"staging", EnvStaging, false},
		{"prod", EnvProduction, false},
		{"production", EnvProduction, false},
		{"TEST", EnvTest, false},
		{"invalid", EnvDevelopment, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			env, err := ParseEnvironment(tt.input)
			if tt.hasError {
				if err == nil {
					t.Errorf("Expected error for %s, got none", tt.input)
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error for %s: %v", tt.input, err)
			}
			if env != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, env)
			}
		})
	}
}

func TestEnvironmentString(t *testing.T) {
	tests := []struct {
		env      Environment
		expected string
	}{
		{EnvDevelopment, "dev"},
		{EnvStaging, "staging"},
		{EnvProduction, "prod"},
		{EnvTest, "test"},
	}

	for _, tt := range tests {
		if got := tt.env.String(); got != tt.expected {
			t.Errorf("Expected %s, got %s", tt.expected, got)
		}
	}
}

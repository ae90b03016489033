package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Host != "127.0.0.1" {
		t.Errorf("Expected default host to be '127.0.0.1', got '%s'", cfg.Host)
	}

	if cfg.Port != 8000 {
		t.Errorf("Expected default port to be 8000, got %d", cfg.Port)
	}

	if cfg.ServerName != "pdf-form-server" {
		t.Errorf("Expected default server name to be 'pdf-form-server', got '%s'", cfg.ServerName)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level to be 'info', got '%s'", cfg.LogLevel)
	}

	if cfg.MaxUploadSize != 10*1024*1024 {
		t.Errorf("Expected default max upload size to be 10MB, got %d", cfg.MaxUploadSize)
	}

	currentDir, _ := os.Getwd()
	expected := filepath.Join(currentDir, "data")
	if cfg.DataDirectory != expected {
		t.Errorf("Expected default data directory to be '%s', got '%s'", expected, cfg.DataDirectory)
	}
}

func TestConfigValidate(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: &Config{
				Host:          "127.0.0.1",
				Port:          8000,
				DataDirectory: tempDir,
				LogLevel:      "info",
				MaxUploadSize: 1024,
			},
			wantErr: false,
		},
		{
			name: "invalid port - too low",
			config: &Config{
				Host:          "127.0.0.1",
				Port:          0,
				DataDirectory: tempDir,
				LogLevel:      "info",
				MaxUploadSize: 1024,
			},
			wantErr: true,
		},
		{
			name: "invalid port - too high",
			config: &Config{
				Host:          "127.0.0.1",
				Port:          70000,
				DataDirectory: tempDir,
				LogLevel:      "info",
				MaxUploadSize: 1024,
			},
			wantErr: true,
		},
		{
			name: "empty data directory",
			config: &Config{
				Host:          "127.0.0.1",
				Port:          8000,
				DataDirectory: "",
				LogLevel:      "info",
				MaxUploadSize: 1024,
			},
			wantErr: true,
		},
		{
			name: "invalid log level",
			config: &Config{
				Host:          "127.0.0.1",
				Port:          8000,
				DataDirectory: tempDir,
				LogLevel:      "verbose",
				MaxUploadSize: 1024,
			},
			wantErr: true,
		},
		{
			name: "non-positive upload size",
			config: &Config{
				Host:          "127.0.0.1",
				Port:          8000,
				DataDirectory: tempDir,
				LogLevel:      "info",
				MaxUploadSize: 0,
			},
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

func TestConfigValidate_CreatesMissingDataDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	cfg := &Config{
		Host:          "127.0.0.1",
		Port:          8000,
		DataDirectory: dir,
		LogLevel:      "info",
		MaxUploadSize: 1024,
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("data directory was not created: %v", err)
	}
}

func TestConfigAddress(t *testing.T) {
	cfg := &Config{Host: "0.0.0.0", Port: 9000}
	if got := cfg.Address(); got != "0.0.0.0:9000" {
		t.Errorf("Address() = %s, want 0.0.0.0:9000", got)
	}
}

func TestConfigTemplatesDirectory(t *testing.T) {
	cfg := &Config{DataDirectory: "/var/lib/pdf-forms"}
	want := filepath.Join("/var/lib/pdf-forms", "templates")
	if got := cfg.TemplatesDirectory(); got != want {
		t.Errorf("TemplatesDirectory() = %s, want %s", got, want)
	}
}

// Helper function to reset pflag.CommandLine for testing
func resetFlags() {
	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	viper.Reset()
}

func clearEnvVars() {
	os.Unsetenv("PDF_FORM_HOST")
	os.Unsetenv("PDF_FORM_PORT")
	os.Unsetenv("PDF_FORM_DATADIR")
	os.Unsetenv("PDF_FORM_LOGLEVEL")
	os.Unsetenv("PDF_FORM_MAXUPLOADSIZE")
}

func TestLoadFromFlags_DefaultConfig(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
		resetFlags()
		clearEnvVars()
	}()

	os.Args = []string{"pdf-form-server"}
	resetFlags()
	clearEnvVars()

	cfg, err := LoadFromFlags()
	if err != nil {
		t.Fatalf("LoadFromFlags() unexpected error: %v", err)
	}
	if cfg.Port != DefaultPort {
		t.Errorf("Expected port %d, got %d", DefaultPort, cfg.Port)
	}
	if cfg.Host != DefaultHost {
		t.Errorf("Expected host %s, got %s", DefaultHost, cfg.Host)
	}
}

func TestLoadFromFlags_CustomFlags(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
		resetFlags()
		clearEnvVars()
	}()

	dataDir := t.TempDir()
	os.Args = []string{
		"pdf-form-server",
		"--host=0.0.0.0",
		"--port=9001",
		"--datadir=" + dataDir,
		"--loglevel=debug",
	}
	resetFlags()
	clearEnvVars()

	cfg, err := LoadFromFlags()
	if err != nil {
		t.Fatalf("LoadFromFlags() unexpected error: %v", err)
	}
	if cfg.Host != "0.0.0.0" {
		t.Errorf("Expected host 0.0.0.0, got %s", cfg.Host)
	}
	if cfg.Port != 9001 {
		t.Errorf("Expected port 9001, got %d", cfg.Port)
	}
	if cfg.DataDirectory != dataDir {
		t.Errorf("Expected data directory %s, got %s", dataDir, cfg.DataDirectory)
	}
	if !cfg.IsDebug() {
		t.Error("Expected debug logging to be enabled")
	}
}

func TestLoadFromFlags_EnvironmentVariables(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
		resetFlags()
		clearEnvVars()
	}()

	os.Args = []string{"pdf-form-server"}
	resetFlags()
	clearEnvVars()
	t.Setenv("PDF_FORM_PORT", "9100")
	t.Setenv("PDF_FORM_LOGLEVEL", "warn")

	cfg, err := LoadFromFlags()
	if err != nil {
		t.Fatalf("LoadFromFlags() unexpected error: %v", err)
	}
	if cfg.Port != 9100 {
		t.Errorf("Expected port 9100 from environment, got %d", cfg.Port)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("Expected log level warn from environment, got %s", cfg.LogLevel)
	}
}

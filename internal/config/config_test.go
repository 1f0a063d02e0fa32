package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfigFile(t, `
env: production
log:
  log_level: debug
  output_file: logs/bot.log
exchange:
  api_key: file-key
  api_secret: file-secret
  testnet: false
  recv_window: 10000
`)

	if err := LoadConfig(path); err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if Env.Env != "production" {
		t.Fatalf("Env.Env = %q, want %q", Env.Env, "production")
	}
	if Env.Log.LogLevel != "debug" {
		t.Fatalf("Env.Log.LogLevel = %q, want %q", Env.Log.LogLevel, "debug")
	}
	if Env.Exchange.APIKey != "file-key" || Env.Exchange.APISecret != "file-secret" {
		t.Fatalf("Env.Exchange credentials = %q/%q, want file values", Env.Exchange.APIKey, Env.Exchange.APISecret)
	}
	if Env.Exchange.Testnet {
		t.Fatalf("Env.Exchange.Testnet = true, want false")
	}
	if Env.Exchange.RecvWindow != 10000 {
		t.Fatalf("Env.Exchange.RecvWindow = %d, want 10000", Env.Exchange.RecvWindow)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfigFile(t, "env: development\n")

	if err := LoadConfig(path); err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if !Env.Exchange.Testnet {
		t.Fatalf("Env.Exchange.Testnet = false, want default true")
	}
	if Env.Log.OutputFile != "trading_bot.log" {
		t.Fatalf("Env.Log.OutputFile = %q, want %q", Env.Log.OutputFile, "trading_bot.log")
	}
	if Env.Exchange.RecvWindow != 5000 {
		t.Fatalf("Env.Exchange.RecvWindow = %d, want 5000", Env.Exchange.RecvWindow)
	}
}

func TestLoadConfigCredentialsFromEnv(t *testing.T) {
	t.Setenv("EXCHANGE_API_KEY", "env-key")
	t.Setenv("EXCHANGE_API_SECRET", "env-secret")

	path := writeConfigFile(t, "env: development\n")

	if err := LoadConfig(path); err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if Env.Exchange.APIKey != "env-key" {
		t.Fatalf("Env.Exchange.APIKey = %q, want %q", Env.Exchange.APIKey, "env-key")
	}
	if Env.Exchange.APISecret != "env-secret" {
		t.Fatalf("Env.Exchange.APISecret = %q, want %q", Env.Exchange.APISecret, "env-secret")
	}
}

func TestValidateCredentials(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ExchangeConfig
		wantErr bool
	}{
		{name: "valid", cfg: ExchangeConfig{APIKey: "a", APISecret: "b"}},
		{name: "empty key", cfg: ExchangeConfig{APISecret: "b"}, wantErr: true},
		{name: "empty secret", cfg: ExchangeConfig{APIKey: "a"}, wantErr: true},
		{name: "whitespace only", cfg: ExchangeConfig{APIKey: "  ", APISecret: "b"}, wantErr: true},
		{name: "placeholder key", cfg: ExchangeConfig{APIKey: "YOUR_API_KEY_HERE", APISecret: "b"}, wantErr: true},
		{name: "placeholder secret", cfg: ExchangeConfig{APIKey: "a", APISecret: "CHANGE_ME"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.ValidateCredentials()
			if tt.wantErr {
				if !errors.Is(err, ErrMissingCredentials) {
					t.Fatalf("ValidateCredentials() error = %v, want ErrMissingCredentials", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateCredentials() error = %v, want nil", err)
			}
		})
	}
}

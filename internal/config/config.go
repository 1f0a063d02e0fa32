package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

var (
	ServiceName    = "trading-bot"
	ServiceVersion = ""
)

var (
	Env *EnvConfig
)

var (
	// ErrMissingCredentials means the API key or secret is unset or still a
	// placeholder. Nothing may touch the network in that state.
	ErrMissingCredentials = errors.New("api credentials are unset or placeholder")
)

type EnvConfig struct {
	Env      string         `mapstructure:"env"`
	Log      LogConfig      `mapstructure:"log"`
	Exchange ExchangeConfig `mapstructure:"exchange"`
}

type LogConfig struct {
	ShowCaller bool   `mapstructure:"show_caller"`
	LogLevel   string `mapstructure:"log_level"`
	OutputFile string `mapstructure:"output_file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

type ExchangeConfig struct {
	Name       string `mapstructure:"name"`
	APIKey     string `mapstructure:"api_key"`
	APISecret  string `mapstructure:"api_secret"`
	Testnet    bool   `mapstructure:"testnet"`
	BaseURL    string `mapstructure:"base_url"`
	RecvWindow int64  `mapstructure:"recv_window"`
}

// ValidateCredentials rejects empty or template credentials so that the bot
// fails before any network activity instead of sending unsigned requests.
func (c ExchangeConfig) ValidateCredentials() error {
	apiKey := strings.TrimSpace(c.APIKey)
	apiSecret := strings.TrimSpace(c.APISecret)

	if apiKey == "" || apiSecret == "" {
		return fmt.Errorf("%w: set EXCHANGE_API_KEY and EXCHANGE_API_SECRET", ErrMissingCredentials)
	}

	for _, placeholder := range []string{"YOUR_API_KEY", "YOUR_API_SECRET", "CHANGE_ME"} {
		if strings.Contains(apiKey, placeholder) || strings.Contains(apiSecret, placeholder) {
			return fmt.Errorf("%w: replace the placeholder values", ErrMissingCredentials)
		}
	}

	return nil
}

func LoadConfig(configPath string) error {
	viper.Reset()

	configPath = strings.TrimSpace(configPath)
	if configPath == "" {
		viper.SetConfigName("config")
		viper.SetConfigType("yml")
		viper.AddConfigPath(".")
	} else {
		ext := strings.ToLower(filepath.Ext(configPath))
		if ext == ".yml" || ext == ".yaml" {
			viper.SetConfigFile(configPath)
		} else {
			viper.SetConfigName(filepath.Base(configPath))
			viper.SetConfigType("yml")
			configDir := filepath.Dir(configPath)
			if configDir == "." || configDir == "" {
				viper.AddConfigPath(".")
			} else {
				viper.AddConfigPath(configDir)
			}
		}
	}

	setDefaults()

	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)
	viper.AutomaticEnv()

	// Credentials come from the environment (EXCHANGE_API_KEY,
	// EXCHANGE_API_SECRET); a config file may override everything else.
	for _, key := range []string{"exchange.api_key", "exchange.api_secret", "exchange.base_url"} {
		if err := viper.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind env key %s: %w", key, err)
		}
	}

	err := viper.ReadInConfig()
	if err != nil {
		// A config file is optional as long as the environment provides the
		// credentials.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	err = viper.Unmarshal(&Env)
	if err != nil {
		return fmt.Errorf("failed to unmarshal config file: %w", err)
	}

	return nil
}

func setDefaults() {
	viper.SetDefault("env", "development")
	viper.SetDefault("log.show_caller", false)
	viper.SetDefault("log.log_level", "info")
	viper.SetDefault("log.output_file", "trading_bot.log")
	viper.SetDefault("log.max_size_mb", 100)
	viper.SetDefault("log.max_backups", 3)
	viper.SetDefault("log.max_age_days", 7)
	viper.SetDefault("exchange.name", "binance-futures")
	viper.SetDefault("exchange.api_key", "")
	viper.SetDefault("exchange.api_secret", "")
	viper.SetDefault("exchange.testnet", true)
	viper.SetDefault("exchange.base_url", "")
	viper.SetDefault("exchange.recv_window", 5000)
}

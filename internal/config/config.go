package config

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

type LogConfig struct {
	Level      string `yaml:"level"`
	Path       string `yaml:"path"`
	ErrorPath  string `yaml:"errorpath"`
	MaxSize    int    `yaml:"maxsize"`
	MaxBackups int    `yaml:"maxbackups"`
	MaxAge     int    `yaml:"maxage"`
	Compress   bool   `yaml:"compress"`
}

type ServerConfig struct {
	RunAddress string `yaml:"runaddress"`
}

type TelegramConfig struct {
	Token  string `yaml:"token"`
	APIURL string `yaml:"apiurl"`
}

type PageConfig struct {
	URL string `yaml:"url"`
}

// Config holds the whole configuration tree
type Config struct {
	Server ServerConfig `yaml:"server"`

	Telegram TelegramConfig `yaml:"telegram"`

	// Page is the public base URL of the QR image endpoint, used to
	// build the "open this QR code in the browser" button.
	Page PageConfig `yaml:"page"`

	Log LogConfig `yaml:"logger"`
}

const (
	defaultAPIURL  = "https://api.telegram.org"
	defaultPageURL = "https://your-worker.workers.dev"
)

// LoadConfig loads the configuration from a YAML file. An empty path
// means "take it from the -c flag". The TELEGRAM_TOKEN environment
// variable overrides the token from the file.
func LoadConfig(filepath string) (*Config, error) {
	if filepath == "" {
		flag.StringVar(&filepath, "c", "config.yaml", "config path")
		flag.Parse()
	}
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config data: %w", err)
	}

	if token := os.Getenv("TELEGRAM_TOKEN"); token != "" {
		config.Telegram.Token = token
	}
	if config.Telegram.APIURL == "" {
		config.Telegram.APIURL = defaultAPIURL
	}
	if config.Page.URL == "" {
		config.Page.URL = defaultPageURL
	}
	if config.Log.Level == "" {
		config.Log.Level = "info"
	}

	return config, nil
}

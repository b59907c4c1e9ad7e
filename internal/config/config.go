package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	defaultBookmarksKey = "bookmarks"
	defaultLogLevel     = "warn"
)

type Config struct {
	DBPath       string `mapstructure:"db_path"`
	BookmarksKey string `mapstructure:"bookmarks_key"`
	LogLevel     string `mapstructure:"log_level"`
}

var (
	configDir  string
	configFile string
)

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Sprintf("failed to get home directory: %v", err))
	}

	configDir = filepath.Join(homeDir, ".aboutbrowser")
	configFile = filepath.Join(configDir, "config.yaml")
}

func GetConfigDir() string {
	return configDir
}

func GetConfigFile() string {
	return configFile
}

func ConfigExists() bool {
	_, err := os.Stat(configFile)
	return err == nil
}

func EnsureConfigDir() error {
	return os.MkdirAll(configDir, 0755)
}

// LoadConfig reads the config file, falling back to defaults for missing keys.
func LoadConfig() (*Config, error) {
	if err := EnsureConfigDir(); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if !ConfigExists() {
		return GetDefaultConfig(), nil
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("aboutbrowser")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func SaveConfig(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.Set("db_path", cfg.DBPath)
	v.Set("bookmarks_key", cfg.BookmarksKey)
	v.Set("log_level", cfg.LogLevel)

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func GetDefaultConfig() *Config {
	return &Config{
		DBPath:       filepath.Join(configDir, "browser.db"),
		BookmarksKey: defaultBookmarksKey,
		LogLevel:     defaultLogLevel,
	}
}

func UpdateLogLevel(level string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.LogLevel = level
	return SaveConfig(cfg)
}

// UpdateBookmarksKey changes the local-storage key the bookmarks bar persists under.
func UpdateBookmarksKey(key string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.BookmarksKey = key
	return SaveConfig(cfg)
}

func applyDefaults(cfg *Config) {
	def := GetDefaultConfig()
	if cfg.DBPath == "" {
		cfg.DBPath = def.DBPath
	}
	if cfg.BookmarksKey == "" {
		cfg.BookmarksKey = def.BookmarksKey
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
}

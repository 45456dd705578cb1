package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Settings backends
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMongo  = "mongo"
)

// Config holds all configuration for the clipper CLI and API server
type Config struct {
	Port string `mapstructure:"port"`

	SettingsBackend string `mapstructure:"settings_backend"`
	SettingsPath    string `mapstructure:"settings_path"`
	SQLitePath      string `mapstructure:"sqlite_path"`
	MongoURI        string `mapstructure:"mongo_uri"`
	MongoDatabase   string `mapstructure:"mongo_database"`

	SendGridAPIKey string `mapstructure:"sendgrid_api_key"`
	NotifyEmail    string `mapstructure:"notify_email"`
	NotifyName     string `mapstructure:"notify_name"`
	FromEmail      string `mapstructure:"from_email"`
	NotifyLevel    string `mapstructure:"notify_level"`

	ChromeDriverPath string        `mapstructure:"chromedriver_path"`
	FetchTimeout     time.Duration `mapstructure:"fetch_timeout"`
	UseBrowsers      bool          `mapstructure:"use_browsers"`
}

// Load reads .env, then config.yaml (optional), then PRODUCTCLIP_* environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values or system environment variables")
	}

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(dataDir())

	v.SetEnvPrefix("PRODUCTCLIP")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// dataDir is where settings live by default, ~/.product-clipper
func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".product-clipper"
	}
	return filepath.Join(home, ".product-clipper")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")

	v.SetDefault("settings_backend", BackendFile)
	v.SetDefault("settings_path", filepath.Join(dataDir(), "settings.json"))
	v.SetDefault("sqlite_path", filepath.Join(dataDir(), "settings.db"))
	v.SetDefault("mongo_uri", "mongodb://localhost:27017/")
	v.SetDefault("mongo_database", "product_clipper")

	v.SetDefault("sendgrid_api_key", "")
	v.SetDefault("notify_email", "")
	v.SetDefault("notify_name", "")
	v.SetDefault("from_email", "noreply@product-clipper.app")
	v.SetDefault("notify_level", "warning")

	v.SetDefault("chromedriver_path", "/usr/local/bin/chromedriver")
	v.SetDefault("fetch_timeout", "30s")
	v.SetDefault("use_browsers", true)
}

func validate(config *Config) error {
	switch config.SettingsBackend {
	case BackendFile:
		if config.SettingsPath == "" {
			return fmt.Errorf("settings path is required for the file backend")
		}
	case BackendSQLite:
		if config.SQLitePath == "" {
			return fmt.Errorf("sqlite path is required for the sqlite backend")
		}
	case BackendMongo:
		if config.MongoURI == "" {
			return fmt.Errorf("mongo URI is required for the mongo backend (set PRODUCTCLIP_MONGO_URI)")
		}
	default:
		return fmt.Errorf("settings backend must be 'file', 'sqlite' or 'mongo', got: %s", config.SettingsBackend)
	}

	switch config.NotifyLevel {
	case "success", "warning", "error", "info":
	default:
		return fmt.Errorf("notify level must be one of success, warning, error, info, got: %s", config.NotifyLevel)
	}

	if config.FetchTimeout <= 0 {
		return fmt.Errorf("fetch timeout must be positive, got: %v", config.FetchTimeout)
	}

	return nil
}

// EmailEnabled reports whether notifications should also be mailed
func (c *Config) EmailEnabled() bool {
	return c.SendGridAPIKey != "" && c.NotifyEmail != ""
}

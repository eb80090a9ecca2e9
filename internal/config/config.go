package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrMissingEnvironmentVariables = errors.New("missing required environment variables")
	ErrUnknownFlagSource           = errors.New("unknown flag source")
	ErrInvalidQuizLength           = errors.New("quiz length must be positive")
)

// Flag sources.
const (
	SourceRestCountries = "restcountries"
	SourcePostgres      = "postgres"
	SourceFile          = "file"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string   `mapstructure:"env"`         // current application environment (local, dev, production etc)
	TelegramAPIToken string   `mapstructure:"-"`           // Telegram API token loaded from environment
	AccessCode       string   `mapstructure:"access_code"` // shared secret that unlocks the quiz
	Quiz             Quiz     `mapstructure:"quiz"`        // quiz section
	Flags            Flags    `mapstructure:"flags"`       // flag data provider section
	Telegram         Telegram `mapstructure:"telegram"`    // telegram client section
	DB               DB       `mapstructure:"database"`    // database configuration section
}

// Quiz contains quiz parameters.
type Quiz struct {
	Length int `mapstructure:"length"` // maximum number of questions per quiz
}

// Flags configures where flags are loaded from.
type Flags struct {
	Source   string        `mapstructure:"source"`    // restcountries, postgres or file
	BaseURL  string        `mapstructure:"base_url"`  // REST Countries API base URL
	Timeout  time.Duration `mapstructure:"timeout"`   // HTTP timeout for the flag request
	FilePath string        `mapstructure:"file_path"` // JSON catalog used by the file source
}

// Telegram contains Telegram client options.
type Telegram struct {
	Debug bool `mapstructure:"debug"` // log raw Bot API traffic
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Load reads configuration from .env, config files and environment variables.
func Load() (*Config, error) {
	return load(".env", "./config")
}

func load(envFile, configDir string) (*Config, error) {
	// A missing .env file is fine; real environment variables take precedence.
	_ = godotenv.Load(envFile)

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	v.SetDefault("env", "local")
	v.SetDefault("access_code", "3675")
	v.SetDefault("quiz.length", 10)
	v.SetDefault("flags.source", SourceRestCountries)
	v.SetDefault("flags.base_url", "https://restcountries.com")
	v.SetDefault("flags.timeout", "10s")
	v.SetDefault("flags.file_path", "assets/flags.json")
	v.SetDefault("telegram.debug", false)
	v.SetDefault("database.max_connections", 5)
	v.SetDefault("database.max_conn_lifetime", "30s")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("access_code", "ACCESS_CODE")
	_ = v.BindEnv("quiz.length", "QUIZ_LENGTH")
	_ = v.BindEnv("flags.source", "FLAGS_SOURCE")
	_ = v.BindEnv("flags.base_url", "FLAGS_BASE_URL")
	_ = v.BindEnv("flags.timeout", "FLAGS_TIMEOUT")
	_ = v.BindEnv("flags.file_path", "FLAGS_FILE_PATH")
	_ = v.BindEnv("telegram.debug", "TELEGRAM_DEBUG")

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, fmt.Errorf("%w: TELEGRAM_API_TOKEN", ErrMissingEnvironmentVariables)
	}

	if cfg.AccessCode == "" {
		return nil, fmt.Errorf("%w: ACCESS_CODE", ErrMissingEnvironmentVariables)
	}

	if cfg.Quiz.Length < 1 {
		return nil, ErrInvalidQuizLength
	}

	switch cfg.Flags.Source {
	case SourceRestCountries, SourceFile:
	case SourcePostgres:
		cfg.DB.URL = v.GetString("database_url")
		if cfg.DB.URL == "" {
			return nil, fmt.Errorf("%w: DATABASE_URL", ErrMissingEnvironmentVariables)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFlagSource, cfg.Flags.Source)
	}

	return &cfg, nil
}

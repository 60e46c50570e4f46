// Package config loads the converter configuration.
//
// Values come from a TOML file when one is given, then from the environment
// (an optional .env file is loaded first). Unset values fall back to the
// env-default tags below.
package config

import (
	"CurrencyConverter/internal/model"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageFile     = "file"
)

type Config struct {
	API       API       `toml:"api"`
	Storage   Storage   `toml:"storage"`
	Converter Converter `toml:"converter"`
	Server    Server    `toml:"server"`
	Log       Log       `toml:"log"`
}

type API struct {
	BaseURL string `toml:"base_url" env:"CONVERTER_API_URL" env-default:"https://api.frankfurter.dev"`
	// RequestsPerSecond below zero disables outbound rate limiting.
	RequestsPerSecond float64 `toml:"requests_per_second" env:"CONVERTER_API_RPS" env-default:"5"`
	// TimeoutSeconds of zero leaves the transport default in place.
	TimeoutSeconds int `toml:"timeout_seconds" env:"CONVERTER_API_TIMEOUT_SECONDS"`
}

type Storage struct {
	Driver string `toml:"driver" env:"CONVERTER_STORAGE_DRIVER" env-default:"sqlite"`
	// DSN is used by the postgres driver.
	DSN string `toml:"dsn" env:"CONVERTER_DB_DSN"`
	// Path is the sqlite database file, or the directory for the file driver.
	// Empty means a location under the user's home directory.
	Path string `toml:"path" env:"CONVERTER_STORAGE_PATH"`
}

type Converter struct {
	DefaultFavorites []string `toml:"default_favorites" env:"CONVERTER_DEFAULT_FAVORITES" env-default:"USD,EUR,INR" env-separator:","`
	DefaultFrom      string   `toml:"default_from" env:"CONVERTER_DEFAULT_FROM" env-default:"USD"`
	DefaultTo        string   `toml:"default_to" env:"CONVERTER_DEFAULT_TO" env-default:"INR"`
	DefaultAmount    string   `toml:"default_amount" env:"CONVERTER_DEFAULT_AMOUNT" env-default:"1"`
	MaxAmount        float64  `toml:"max_amount" env:"CONVERTER_MAX_AMOUNT" env-default:"1000000"`
}

type Server struct {
	Addr string `toml:"addr" env:"CONVERTER_HTTP_ADDR" env-default:":8080"`
}

type Log struct {
	// File receives log output while the terminal UI owns the screen.
	File string `toml:"file" env:"CONVERTER_LOG_FILE" env-default:"converter.log"`
}

// Load reads path (optional) and the environment.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() {
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	c.Converter.DefaultFrom = string(model.NormalizeCode(c.Converter.DefaultFrom))
	c.Converter.DefaultTo = string(model.NormalizeCode(c.Converter.DefaultTo))
	for i, f := range c.Converter.DefaultFavorites {
		c.Converter.DefaultFavorites[i] = string(model.NormalizeCode(f))
	}
}

func (c *Config) Validate() error {
	var errs []error
	switch c.Storage.Driver {
	case StorageSQLite, StorageFile:
	case StoragePostgres:
		if c.Storage.DSN == "" {
			errs = append(errs, errors.New("storage.dsn is required for postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("storage.driver %q is not one of sqlite, postgres, file", c.Storage.Driver))
	}
	if c.Converter.DefaultFrom != "" && c.Converter.DefaultFrom == c.Converter.DefaultTo {
		errs = append(errs, errors.New("converter.default_from and converter.default_to must differ"))
	}
	if c.Converter.MaxAmount <= 0 {
		errs = append(errs, errors.New("converter.max_amount must be positive"))
	}
	if c.API.TimeoutSeconds < 0 {
		errs = append(errs, errors.New("api.timeout_seconds must not be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

func (c *Config) DefaultFavorites() []model.CurrencyCode {
	out := make([]model.CurrencyCode, 0, len(c.Converter.DefaultFavorites))
	for _, f := range c.Converter.DefaultFavorites {
		out = append(out, model.CurrencyCode(f))
	}
	return out
}

// StoragePath resolves the storage location for the sqlite and file drivers.
func (c *Config) StoragePath() (string, error) {
	if c.Storage.Path != "" {
		return c.Storage.Path, nil
	}
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	if c.Storage.Driver == StorageFile {
		return dir, nil
	}
	return filepath.Join(dir, "favorites.db"), nil
}

func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".currency-converter"), nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		API: API{
			BaseURL:           "https://api.frankfurter.dev",
			RequestsPerSecond: 5,
		},
		Storage: Storage{Driver: StorageSQLite},
		Converter: Converter{
			DefaultFavorites: []string{"USD", "EUR", "INR"},
			DefaultFrom:      "USD",
			DefaultTo:        "INR",
			DefaultAmount:    "1",
			MaxAmount:        model.DefaultMaxAmount,
		},
		Server: Server{Addr: ":8080"},
		Log:    Log{File: "converter.log"},
	}
}

// WriteTOML writes cfg to path, refusing to overwrite an existing file.
func WriteTOML(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return fmt.Errorf("config: encode: %w", err)
	}
	return f.Close()
}

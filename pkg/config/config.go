package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	AppEnv   string `yaml:"app_env"`
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`

	Catalog CatalogConfig `yaml:"catalog"`
	Storage StorageConfig `yaml:"storage"`

	// FormOut is where submitted order forms are written. Empty disables
	// hand-off; the form is still shown.
	FormOut string `yaml:"form_out"`
}

type CatalogConfig struct {
	// Source is a file path or an http(s) URL.
	Source   string `yaml:"source"`
	Watch    bool   `yaml:"watch"`
	Currency string `yaml:"currency"`
}

type StorageConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
	Key     string `yaml:"key"`
}

func Default() Config {
	return Config{
		AppEnv:   "dev",
		LogLevel: "info",
		LogFile:  "storefront.log",
		Catalog: CatalogConfig{
			Source:   "products.json",
			Currency: "USD",
		},
		Storage: StorageConfig{
			Backend: BackendFile,
			Path:    ".luckybox/storage.json",
			Key:     "luckybox_cart",
		},
	}
}

// LoadFile layers defaults, the YAML file at path, then the environment.
// An empty path skips the YAML layer. A .env file in the working directory
// is loaded first when present.
func LoadFile(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.AppEnv = getEnv("APP_ENV", c.AppEnv)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.LogFile = getEnv("LOG_FILE", c.LogFile)
	c.Catalog.Source = getEnv("CATALOG_SOURCE", c.Catalog.Source)
	c.Catalog.Watch = getEnvBool("CATALOG_WATCH", c.Catalog.Watch)
	c.Catalog.Currency = getEnv("CURRENCY", c.Catalog.Currency)
	c.Storage.Backend = getEnv("STORAGE_BACKEND", c.Storage.Backend)
	c.Storage.Path = getEnv("STORAGE_PATH", c.Storage.Path)
	c.Storage.Key = getEnv("STORAGE_KEY", c.Storage.Key)
	c.FormOut = getEnv("FORM_OUT", c.FormOut)
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Catalog.Source) == "" {
		return fmt.Errorf("%w: catalog source is required", ErrInvalidConfig)
	}
	switch c.Storage.Backend {
	case BackendFile, BackendSQLite:
		if strings.TrimSpace(c.Storage.Path) == "" {
			return fmt.Errorf("%w: storage path is required for %s backend", ErrInvalidConfig, c.Storage.Backend)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("%w: unknown storage backend %q", ErrInvalidConfig, c.Storage.Backend)
	}
	if strings.TrimSpace(c.Storage.Key) == "" {
		return fmt.Errorf("%w: storage key is required", ErrInvalidConfig)
	}
	return nil
}

// CatalogIsRemote reports whether the catalog source is an HTTP URL.
func (c Config) CatalogIsRemote() bool {
	s := strings.ToLower(c.Catalog.Source)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}

	return b
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// envPrefix namespaces environment overrides, e.g. FREIGHTDASH_SHEET_ID.
const envPrefix = "FREIGHTDASH"

// Config holds every tunable of the dashboard service.
type Config struct {
	SheetID         string        `mapstructure:"sheet_id" yaml:"sheet_id"`
	Range           string        `mapstructure:"range" yaml:"range"`
	CredentialsFile string        `mapstructure:"credentials_file" yaml:"credentials_file"`
	APIBaseURL      string        `mapstructure:"api_base_url" yaml:"api_base_url"`
	CacheTTL        time.Duration `mapstructure:"cache_ttl" yaml:"cache_ttl"`
	HTTPTimeout     time.Duration `mapstructure:"http_timeout" yaml:"http_timeout"`
	Listen          string        `mapstructure:"listen" yaml:"listen"`
	DBPath          string        `mapstructure:"db_path" yaml:"db_path"`
}

// Every key gets a default so AutomaticEnv can bind it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("sheet_id", "")
	v.SetDefault("api_base_url", "")
	v.SetDefault("range", "Sheet1!A1:K100")
	v.SetDefault("cache_ttl", "10m")
	v.SetDefault("http_timeout", "10s")
	v.SetDefault("listen", ":8080")
	v.SetDefault("db_path", "freight-dashboard.db")
	v.SetDefault("credentials_file", "credentials.json")
}

// Load reads configuration from the given file (optional), the environment,
// and built-in defaults, in increasing order of precedence for env over file.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config %q: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Range == "" {
		return fmt.Errorf("config: range must not be empty")
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("config: cache_ttl must be positive")
	}
	if c.Listen == "" {
		return fmt.Errorf("config: listen address must not be empty")
	}
	return nil
}

// Save writes the config as YAML, creating parent directories as needed.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %q: %w", path, err)
	}
	return nil
}

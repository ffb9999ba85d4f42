package config

import (
	"fmt"
	"os"
	"path"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Pg       Pg            `yaml:"pg"`
	Port     int           `yaml:"port"`
	JwtTTL   time.Duration `yaml:"jwt_ttl"`
	LogLevel string        `yaml:"log_level"`
	LogJSON  bool          `yaml:"log_json"`
}

type Pg struct {
	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`
	User   string `yaml:"user"`
	Dbname string `yaml:"dbname"`
}

type Private struct {
	PgPassword string `yaml:"pg_password"`
	JwtKey     string `yaml:"jwt_key"`
}

func (c *Config) JwtKey() string {
	return c.Private.JwtKey
}

func (c *Config) JwtTTL() time.Duration {
	return c.Public.JwtTTL
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

// applyEnvOverrides lets deployment environments override file values
// without editing yaml (PORT, DB_*, JWT_SECRET).
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Public.Port = port
		}
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		cfg.Public.Pg.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Public.Pg.Port = port
		}
	}
	if v := os.Getenv("DB_USER"); v != "" {
		cfg.Public.Pg.User = v
	}
	if v := os.Getenv("DB_DATABASE"); v != "" {
		cfg.Public.Pg.Dbname = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Private.PgPassword = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Private.JwtKey = v
	}
}

func validate(cfg *Config) error {
	// Without a signing key every issued token would be forgeable,
	// so treat its absence as a startup failure.
	if cfg.Private.JwtKey == "" {
		return fmt.Errorf("jwt_key is required")
	}
	if cfg.Public.Pg.Host == "" {
		return fmt.Errorf("pg.host is required")
	}
	if cfg.Public.Pg.User == "" {
		return fmt.Errorf("pg.user is required")
	}
	if cfg.Public.Pg.Dbname == "" {
		return fmt.Errorf("pg.dbname is required")
	}
	return nil
}

func setDefaults(cfg *Config) {
	if cfg.Public.Port == 0 {
		cfg.Public.Port = 3000
	}
	if cfg.Public.JwtTTL == 0 {
		cfg.Public.JwtTTL = time.Hour
	}
	if cfg.Public.Pg.Port == 0 {
		cfg.Public.Pg.Port = 5432
	}
	if cfg.Public.LogLevel == "" {
		cfg.Public.LogLevel = "info"
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	applyEnvOverrides(cfg)
	setDefaults(cfg)
	if err := validate(cfg); err != nil {
		panic("invalid config: " + err.Error())
	}
	return cfg
}

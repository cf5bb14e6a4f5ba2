package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		Driver string
		DSN    string
	}
	Auth struct {
		Secret        string
		Algorithm     string
		TokenLifetime time.Duration
		BcryptCost    int
	}
}

// Load reads config from environment (LV_ prefix) and optional linkventory.yaml.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("LV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("linkventory")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("auth.algorithm", "HS256")
	v.SetDefault("auth.token_lifetime", "1440m")
	v.SetDefault("auth.bcrypt_cost", 0)

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.DB.Driver = v.GetString("db.driver")
	cfg.DB.DSN = v.GetString("db.dsn")
	cfg.Auth.Secret = v.GetString("auth.secret")
	cfg.Auth.Algorithm = v.GetString("auth.algorithm")
	cfg.Auth.BcryptCost = v.GetInt("auth.bcrypt_cost")

	lifetime, err := time.ParseDuration(v.GetString("auth.token_lifetime"))
	if err != nil {
		return nil, fmt.Errorf("invalid LV_AUTH_TOKEN_LIFETIME: %w", err)
	}
	cfg.Auth.TokenLifetime = lifetime

	if cfg.DB.Driver == "" {
		return nil, fmt.Errorf("LV_DB_DRIVER is required (sqlite3, mysql, postgres)")
	}
	if cfg.DB.DSN == "" {
		return nil, fmt.Errorf("LV_DB_DSN is required")
	}
	if cfg.Auth.Secret == "" {
		return nil, fmt.Errorf("LV_AUTH_SECRET is required")
	}

	return cfg, nil
}

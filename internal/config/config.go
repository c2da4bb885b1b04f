// internal/config/config.go
package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type AuthConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type JWTConfig struct {
	SecretKey string `mapstructure:"secret_key"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

// AppConfig は復習スケジューリングに関する設定
type AppConfig struct {
	Timezone            string `mapstructure:"timezone"`
	DueLimit            int    `mapstructure:"due_limit"`
	BulkBatchSize       int    `mapstructure:"bulk_batch_size"`
	BulkParallelism     int    `mapstructure:"bulk_parallelism"`
	LedgerRetryAttempts uint   `mapstructure:"ledger_retry_attempts"`
}

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Auth     AuthConfig     `mapstructure:"auth"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	CORS     CORSConfig     `mapstructure:"cors"`
	App      AppConfig      `mapstructure:"app"`
}

var Cfg Config

func LoadConfig(path string) error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(".")

	// APP_DATABASE_URL のように APP_ 接頭辞の環境変数で上書きできる
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("database.url", "DATABASE_URL")
	_ = v.BindEnv("auth.enabled", "AUTH_ENABLED")
	_ = v.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// auth.enabled は未設定なら有効にする
	if !v.IsSet("auth.enabled") {
		log.Println("Auth enabled flag not set, defaulting to true (enabled)")
		cfg.Auth.Enabled = true
	}

	if err := cfg.applyDefaults(); err != nil {
		return err
	}
	Cfg = cfg

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Timezone: %s", Cfg.App.Timezone)
	log.Printf("Auth Enabled: %t", Cfg.Auth.Enabled)

	return nil
}

// applyDefaults は未設定の項目にデフォルト値を設定する
func (c *Config) applyDefaults() error {
	if c.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		c.Server.Port = DefaultServerPort
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if c.App.Timezone == "" {
		c.App.Timezone = DefaultTimezone
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("invalid app.timezone %q: %w", c.App.Timezone, err)
	}
	if c.App.DueLimit <= 0 {
		c.App.DueLimit = DefaultDueLimit
	}
	if c.App.BulkBatchSize <= 0 {
		c.App.BulkBatchSize = DefaultBulkBatchSize
	}
	if c.App.BulkParallelism <= 0 {
		c.App.BulkParallelism = DefaultBulkParallelism
	}
	if c.App.LedgerRetryAttempts == 0 {
		c.App.LedgerRetryAttempts = DefaultLedgerRetryAttempts
	}
	return nil
}

// Location は app.timezone を *time.Location に変換する
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Default はテストや CLI 用にデフォルト値だけを埋めた Config を返す
func Default() *Config {
	cfg := &Config{}
	_ = cfg.applyDefaults()
	return cfg
}

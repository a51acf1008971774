package config

import (
	"os"
	"sync"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"

	"github.com/ramya-constructions/estate-backend/pkg/logutils"
)

type Config struct {
	// ServerAddr is the address the HTTP server binds to.
	ServerAddr string `yaml:"serverAddr"`

	Auth struct {
		// TokenSecret signs admin bearer tokens. The default exists so a
		// fresh checkout can boot; it must be overridden in production
		// via JWT_SECRET.
		TokenSecret     string `yaml:"tokenSecret"`
		TokenExpiryDays int    `yaml:"tokenExpiryDays"`
	} `yaml:"auth"`

	Postgres struct {
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		DBName   string `yaml:"dbname"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		SSLMode  string `yaml:"sslmode"`
		TimeZone string `yaml:"timeZone"`
	} `yaml:"postgres"`
}

var (
	once   sync.Once
	config *Config
)

func GetConfig() *Config {
	once.Do(func() {
		config = initConfig()
	})
	return config
}

func IsDebugMode() bool {
	return gin.Mode() == gin.DebugMode
}

// initConfig builds the configuration from defaults, then an optional
// YAML file (ESTATE_CONFIG_PATH or ./etc/config.yaml), then environment
// overrides. Environment wins so deployments can stay file-less.
func initConfig() *Config {
	cfg := defaults()

	configPath := os.Getenv("ESTATE_CONFIG_PATH")
	if configPath == "" {
		configPath = "./etc/config.yaml"
	}
	if raw, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			logutils.Log.Error("parse config file: ", err)
			panic(err)
		}
		logutils.Log.Info("config loaded from ", configPath)
	}

	applyEnv(cfg)
	return cfg
}

func defaults() *Config {
	cfg := &Config{ServerAddr: ":8000"}
	cfg.Auth.TokenSecret = "ramyaconstructions"
	cfg.Auth.TokenExpiryDays = 7
	cfg.Postgres.Host = "localhost"
	cfg.Postgres.Port = "5432"
	cfg.Postgres.DBName = "ramya_constructions"
	cfg.Postgres.User = "postgres"
	cfg.Postgres.Password = ""
	cfg.Postgres.SSLMode = "disable"
	cfg.Postgres.TimeZone = "UTC"
	return cfg
}

func applyEnv(cfg *Config) {
	setIfPresent(&cfg.ServerAddr, "SERVER_ADDR")
	setIfPresent(&cfg.Auth.TokenSecret, "JWT_SECRET")
	setIfPresent(&cfg.Postgres.Host, "DB_HOST")
	setIfPresent(&cfg.Postgres.Port, "DB_PORT")
	setIfPresent(&cfg.Postgres.DBName, "DB_NAME")
	setIfPresent(&cfg.Postgres.User, "DB_USER")
	setIfPresent(&cfg.Postgres.Password, "DB_PASSWORD")
	setIfPresent(&cfg.Postgres.SSLMode, "DB_SSLMODE")
}

func setIfPresent(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}

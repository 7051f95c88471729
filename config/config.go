package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port          string `envconfig:"PORT" default:"8080"`
	MongoURI      string `envconfig:"MONGO_URI"`
	MongoDB       string `envconfig:"MONGO_DB" default:"lifedrop"`
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	JWTKey        string `envconfig:"JWT_KEY"`

	DefaultPageSize int64 `envconfig:"DEFAULT_PAGE_SIZE" default:"10"`
	MaxPageSize     int64 `envconfig:"MAX_PAGE_SIZE" default:"100"`
}

// Load reads .env if present and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debugf("no .env file loaded: %v", err)
	}

	c := new(Config)
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}

	if c.MongoURI == "" {
		return nil, fmt.Errorf("set MONGO_URI")
	}

	if c.JWTKey == "" {
		return nil, fmt.Errorf("set JWT_KEY")
	}

	if c.DefaultPageSize <= 0 {
		c.DefaultPageSize = 10
	}

	if c.MaxPageSize < c.DefaultPageSize {
		c.MaxPageSize = c.DefaultPageSize
	}

	return c, nil
}

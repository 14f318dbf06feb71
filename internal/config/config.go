package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Config struct {
	Service    svcConfig
	RequestLog requestLogConfig
}

type svcConfig struct {
	Name         string        `envconfig:"ESTIMATOR_SERVICE_NAME" default:"covid-estimator"`
	Port         string        `envconfig:"PORT" default:"8080"`
	LogLevel     string        `envconfig:"ESTIMATOR_LOG_LEVEL" default:"info"`
	ReadTimeout  time.Duration `envconfig:"ESTIMATOR_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"ESTIMATOR_WRITE_TIMEOUT" default:"5s"`
	MaxBodyBytes int           `envconfig:"ESTIMATOR_MAX_BODY_BYTES" default:"1048576"`
}

type requestLogConfig struct {
	// File mirrors the in-memory request log when set.
	File string `envconfig:"ESTIMATOR_REQUEST_LOG_FILE" default:""`
}

// Load reads the environment, after applying envFiles (default ".env") when
// they exist. Variables already set in the environment win.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, errors.Wrapf(err, "loading %s", f)
		}
	}

	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, errors.Wrap(err, "processing environment")
	}
	return cfg, nil
}

func (c *Config) Address() string {
	return ":" + c.Service.Port
}

func (c *Config) String() string {
	return fmt.Sprintf("service=%s address=%s log_level=%s request_log_file=%q",
		c.Service.Name, c.Address(), c.Service.LogLevel, c.RequestLog.File)
}

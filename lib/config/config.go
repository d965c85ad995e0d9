package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

type Config struct {
	APIURL   string
	APIKey   string
	Timeout  time.Duration
	MaxPages int
	LogFile  string
	LogLevel string
}

// Load builds the configuration from the environment. When envFile is
// empty a .env file in the working directory is loaded if present;
// otherwise the named file must exist.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil {
			return nil, errors.Wrapf(err, "error loading env file %v", envFile)
		}
	} else {
		_ = godotenv.Load()
	}

	cfg := &Config{
		APIURL:   os.Getenv("CREWLENS_API_URL"),
		APIKey:   os.Getenv("CREWLENS_API_KEY"),
		Timeout:  30 * time.Second,
		LogFile:  os.Getenv("CREWLENS_LOG_FILE"),
		LogLevel: os.Getenv("CREWLENS_LOG_LEVEL"),
	}

	if v := os.Getenv("CREWLENS_TIMEOUT_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid CREWLENS_TIMEOUT_SECONDS: %v", v)
		}

		cfg.Timeout = time.Duration(secs) * time.Second
	}

	if v := os.Getenv("CREWLENS_MAX_PAGES"); v != "" {
		pages, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid CREWLENS_MAX_PAGES: %v", v)
		}

		cfg.MaxPages = pages
	}

	if cfg.APIURL == "" {
		return nil, errors.New("CREWLENS_API_URL is not set")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("CREWLENS_API_KEY is not set")
	}

	return cfg, nil
}

package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"adwatch/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is only
	// attached to log records.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP    configs.HTTP     `envPrefix:"HTTP_"`
	Log     configs.Logger   `envPrefix:"LOG_"`
	Psql    configs.Postgres `envPrefix:"PSQL_"`
	Scrape  configs.Scrape   `envPrefix:"SCRAPE_"`
	Guard   configs.Guard    `envPrefix:"GUARD_"`
	Redis   configs.Redis    `envPrefix:"REDIS_"`
	Browser configs.Browser  `envPrefix:"BROWSER_"`
	Seed    configs.Seed     `envPrefix:"SEED_"`

	// SimilarityThreshold is the largest fingerprint distance, in bits,
	// at which two creatives are reported as one.
	SimilarityThreshold int `env:"SIMILARITY_THRESHOLD" envDefault:"14"`
	// ImagesDir is where downloaded creative images are kept.
	ImagesDir string `env:"IMAGES_DIR" envDefault:"images"`
	// AdsURLTemplate is the ads library address; %s is the page id.
	AdsURLTemplate string `env:"ADS_URL_TEMPLATE"`
}

// Load reads an optional .env file and then the environment into a Config.
// Variables already set in the environment win over the file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Scrape.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

package validator

import (
	"errors"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds engine defaults that can be supplied through the environment.
type Config struct {
	DefaultSeverity Severity `env:"VALIDATION_DEFAULT_SEVERITY" envDefault:"error"` // DefaultSeverity is applied to rules without an explicit severity.
	DateLayout      string   `env:"VALIDATION_DATE_LAYOUT" envDefault:"2006-01-02"` // DateLayout is used by Date when no layout is given.
	Language        string   `env:"VALIDATION_LANGUAGE" envDefault:"en"`            // Language is the default language for localized messages.
}

// DefaultConfig returns the values LoadConfig produces for an empty environment.
func DefaultConfig() Config {
	return Config{
		DefaultSeverity: SeverityError,
		DateLayout:      DefaultDateLayout,
		Language:        "en",
	}
}

// LoadConfig parses Config from environment variables. When files are given
// they are loaded first and must exist; otherwise an optional .env in the
// working directory is loaded. Variables already set in the process win.
func LoadConfig(files ...string) (Config, error) {
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return Config{}, errors.Join(ErrLoadingEnvFile, err)
		}
	} else {
		// The default .env file is optional
		_ = godotenv.Load()
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

package favicon

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/jmylchreest/favico/internal/ico"
	"github.com/jmylchreest/favico/internal/image"
)

// Default paths, relative to the working directory.
const (
	DefaultSource      = "house.png"
	DefaultDestination = "favicon.ico"
)

// Config describes one export.
type Config struct {
	// Source is the image to convert.
	Source string
	// Destination is the icon file to create or overwrite.
	Destination string
	// Sizes lists the resolutions to embed, in order.
	Sizes Sizes
	// Resample selects the resampling filter and fit mode.
	Resample image.ResampleOptions
	// Format selects how each entry is stored in the container.
	Format ico.Format
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Source:      DefaultSource,
		Destination: DefaultDestination,
		Sizes:       DefaultSizes.Clone(),
		Resample: image.ResampleOptions{
			Filter: image.FilterLanczos,
			Fit:    image.FitStretch,
		},
		Format: ico.FormatPNG,
	}
}

// Validate checks the configuration without touching the filesystem.
func (c Config) Validate() error {
	if c.Source == "" {
		return fmt.Errorf("%w: source path is required", ErrConfig)
	}
	if c.Destination == "" {
		return fmt.Errorf("%w: destination path is required", ErrConfig)
	}
	if err := c.Sizes.Validate(); err != nil {
		return err
	}
	if err := c.Resample.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if _, err := ico.ParseFormat(string(c.Format)); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return nil
}

// envConfig mirrors Config as environment variables.
type envConfig struct {
	Source      string   `env:"FAVICO_SOURCE" envDefault:"house.png"`
	Destination string   `env:"FAVICO_OUTPUT" envDefault:"favicon.ico"`
	Sizes       []string `env:"FAVICO_SIZES"  envDefault:"16,32,48,64,128,256" envSeparator:","`
	Filter      string   `env:"FAVICO_FILTER" envDefault:"lanczos"`
	Fit         string   `env:"FAVICO_FIT"    envDefault:"stretch"`
	Format      string   `env:"FAVICO_FORMAT" envDefault:"png"`
}

// LoadConfigFromEnv returns DefaultConfig overridden by FAVICO_* environment
// variables. The result is not validated.
func LoadConfigFromEnv() (Config, error) {
	var raw envConfig
	if err := env.Parse(&raw); err != nil {
		return Config{}, fmt.Errorf("%w: parse env: %w", ErrConfig, err)
	}

	sizes, err := ParseSizes(raw.Sizes)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Source:      raw.Source,
		Destination: raw.Destination,
		Sizes:       sizes,
		Resample: image.ResampleOptions{
			Filter: image.Filter(raw.Filter),
			Fit:    image.Fit(raw.Fit),
		},
		Format: ico.Format(raw.Format),
	}, nil
}

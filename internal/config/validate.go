package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/NielsdaWheelz/jsoncheck/internal/errors"
)

// Validate checks a config and returns E_INVALID_CONFIG on the first problem.
func Validate(cfg Config) (Config, error) {
	if cfg.Version != 1 {
		return cfg, errors.New(errors.EInvalidConfig, "version must be 1")
	}
	if len(cfg.Extensions) == 0 {
		return cfg, errors.New(errors.EInvalidConfig, "extensions must not be empty")
	}
	for i, ext := range cfg.Extensions {
		if len(ext) < 2 || !strings.HasPrefix(ext, ".") || strings.ContainsAny(ext, `/\`) {
			return cfg, errors.New(errors.EInvalidConfig,
				fmt.Sprintf("extensions[%d] must look like \".json\", got %q", i, ext))
		}
	}
	for i, pattern := range cfg.Exclude {
		if pattern == "" {
			return cfg, errors.New(errors.EInvalidConfig, fmt.Sprintf("exclude[%d] must be a non-empty string", i))
		}
		if _, err := filepath.Match(pattern, ""); err != nil {
			return cfg, errors.New(errors.EInvalidConfig, fmt.Sprintf("exclude[%d] is not a valid pattern: %q", i, pattern))
		}
	}
	if cfg.Workers < 1 {
		return cfg, errors.New(errors.EInvalidConfig, "workers must be at least 1")
	}
	return cfg, nil
}

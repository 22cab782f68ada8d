// Package config handles loading and validation of the .jsoncheck.yaml configuration file.
package config

import (
	"bytes"
	stderrors "errors"
	"io"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/NielsdaWheelz/jsoncheck/internal/errors"
	"github.com/NielsdaWheelz/jsoncheck/internal/fs"
)

// DefaultFileName is looked up in the working directory when --config is not given.
const DefaultFileName = ".jsoncheck.yaml"

// Config is the parsed and validated configuration.
type Config struct {
	Version    int
	Extensions []string
	Exclude    []string
	Workers    int
	Strict     bool
	RawStrings bool
}

// fileConfig mirrors the YAML document. Pointers distinguish "absent" from zero.
type fileConfig struct {
	Version    *int     `yaml:"version"`
	Extensions []string `yaml:"extensions"`
	Exclude    []string `yaml:"exclude"`
	Workers    *int     `yaml:"workers"`
	Strict     *bool    `yaml:"strict"`
	RawStrings *bool    `yaml:"raw_strings"`
}

const allowedKeys = "version, extensions, exclude, workers, strict, raw_strings"

// Default returns the built-in configuration used when no file exists.
func Default() Config {
	return Config{
		Version:    1,
		Extensions: []string{".json"},
		Workers:    runtime.NumCPU(),
	}
}

// Load reads and validates the config at path.
// If the file is missing, returns defaults with found=false.
// If the file exists but is invalid, returns E_INVALID_CONFIG.
func Load(filesystem fs.FS, path string) (Config, bool, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), false, nil
		}
		return Config{}, false, errors.WrapWithDetails(errors.EInvalidConfig, "failed to read config", err,
			map[string]string{"config": path})
	}

	cfg, err := Parse(data)
	if err != nil {
		if ce, ok := errors.AsCheckError(err); ok {
			details := map[string]string{"config": path}
			if hint := ce.Details["hint"]; hint != "" {
				details["hint"] = hint
			}
			return Config{}, false, errors.WrapWithDetails(ce.Code, ce.Msg, ce.Cause, details)
		}
		return Config{}, false, err
	}
	return cfg, true, nil
}

// Parse decodes a YAML document strictly (unknown keys are rejected), merges it
// over the defaults and validates the result. An empty document yields defaults.
func Parse(data []byte) (Config, error) {
	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		if stderrors.Is(err, io.EOF) {
			return Default(), nil
		}
		return Config{}, errors.WrapWithDetails(errors.EInvalidConfig, "invalid yaml: "+err.Error(), err,
			map[string]string{"hint": "allowed keys: " + allowedKeys})
	}

	if fc.Version == nil {
		return Config{}, errors.NewWithDetails(errors.EInvalidConfig, "missing required field version",
			map[string]string{"hint": "add \"version: 1\" at the top of the file"})
	}

	cfg := Default()
	cfg.Version = *fc.Version
	if fc.Extensions != nil {
		cfg.Extensions = fc.Extensions
	}
	if fc.Exclude != nil {
		cfg.Exclude = fc.Exclude
	}
	if fc.Workers != nil {
		cfg.Workers = *fc.Workers
	}
	if fc.Strict != nil {
		cfg.Strict = *fc.Strict
	}
	if fc.RawStrings != nil {
		cfg.RawStrings = *fc.RawStrings
	}

	return Validate(cfg)
}

// Filter returns the candidate filter described by the config.
func (c Config) Filter() fs.Filter {
	return fs.Filter{Extensions: c.Extensions, Exclude: c.Exclude}
}

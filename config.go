package main

import (
	"fmt"
	"io"

	"github.com/caarlos0/env/v9"
	"gopkg.in/yaml.v3"

	"github.com/evad1n/bigramstats/bigram"
)

type Config struct {
	// Inputs are the sources to aggregate, in order. A source ending in .db
	// is read as a sqlite shard; an http:// or https:// source is downloaded
	// first; anything else is a plain text file of "<w1> <w2> <count>" lines.
	Inputs []string `yaml:"inputs" env:"BIGRAM_INPUTS" envSeparator:","`

	// Duplicates selects how repeated bigram keys are resolved: "overwrite"
	// keeps the last count seen (the legacy count-job behavior), "sum"
	// accumulates them.
	Duplicates string `yaml:"duplicates" env:"BIGRAM_DUPLICATES"`

	// Store is an optional path; when set, the aggregate table is persisted
	// there as a sqlite snapshot after loading.
	Store string `yaml:"store" env:"BIGRAM_STORE"`

	LogLevel string `yaml:"log_level" env:"BIGRAM_LOG_LEVEL"`
}

func defaultConfig() *Config {
	return &Config{
		Inputs:     []string{"result"},
		Duplicates: "overwrite",
		LogLevel:   "INFO",
	}
}

// LoadConfig reads the YAML configuration from file (which may be nil to use
// defaults) and applies environment variable overrides on top.
func LoadConfig(file io.Reader) (*Config, error) {
	cfg := defaultConfig()
	if file != nil {
		buf, err := io.ReadAll(file)
		if err != nil {
			return nil, fmt.Errorf("reading YAML configuration: %v", err)
		}
		if err := yaml.Unmarshal(buf, cfg); err != nil {
			return nil, fmt.Errorf("parsing YAML configuration: %v", err)
		}
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("reading env vars: %v", err)
	}
	if _, err := cfg.Policy(); err != nil {
		return nil, err
	}
	if len(cfg.Inputs) == 0 {
		return nil, fmt.Errorf("no inputs configured")
	}
	return cfg, nil
}

// Policy maps the configured duplicates value to a bigram.Policy.
func (c *Config) Policy() (bigram.Policy, error) {
	switch c.Duplicates {
	case "overwrite":
		return bigram.Overwrite, nil
	case "sum":
		return bigram.Sum, nil
	default:
		return 0, fmt.Errorf("unknown duplicates value %q, choices are [overwrite, sum]", c.Duplicates)
	}
}

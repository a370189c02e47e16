package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/evad1n/bigramstats/bigram"
)

func main() {
	lvl := slog.LevelVar{}
	lvl.Set(slog.LevelInfo)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: &lvl,
	})))

	configPath := flag.String("config", "", "path to the configuration file")
	flag.Parse()

	cfg := loadConfig(configPath)

	if err := lvl.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		slog.Error("unknown log level specified, choices are [DEBUG, INFO, WARN, ERROR]", "error", err)
		os.Exit(1)
	}

	if err := run(cfg, os.Stdout); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func loadConfig(configPath *string) *Config {
	var configReader io.ReadCloser
	if configPath != nil && *configPath != "" {
		var err error
		if configReader, err = os.Open(*configPath); err != nil {
			slog.Error("can't open "+*configPath, "error", err)
			os.Exit(1)
		}
		defer configReader.Close()
	}
	cfg, err := LoadConfig(configReader)
	if err != nil {
		slog.Error("wrong configuration", "error", err)
		os.Exit(1)
	}
	return cfg
}

// run aggregates all configured inputs into one table, ranks it, and writes
// the report to w.
func run(cfg *Config, w io.Writer) error {
	policy, err := cfg.Policy()
	if err != nil {
		return err
	}

	table := bigram.Table{}
	for _, input := range cfg.Inputs {
		if err := loadInput(input, table, policy); err != nil {
			return fmt.Errorf("loading %s: %v", input, err)
		}
	}
	slog.Debug("aggregate table built", "keys", len(table))

	if cfg.Store != "" {
		if err := writeDatabase(cfg.Store, table); err != nil {
			return fmt.Errorf("storing snapshot: %v", err)
		}
	}

	if err := bigram.Report(w, bigram.Rank(table)); err != nil {
		return fmt.Errorf("reporting: %v", err)
	}
	return nil
}

// loadInput reads one source into the table. Remote sources are downloaded
// to a temp file first; the local path then decides the format.
func loadInput(input string, table bigram.Table, policy bigram.Policy) error {
	path := input
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		dir, err := os.MkdirTemp("", "bigramstats")
		if err != nil {
			return fmt.Errorf("creating temp dir: %v", err)
		}
		defer os.RemoveAll(dir)

		path = filepath.Join(dir, filepath.Base(input))
		if err := download(input, path); err != nil {
			return fmt.Errorf("downloading input: %v", err)
		}
	}

	if strings.HasSuffix(path, ".db") {
		return readDatabase(path, table, policy)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening input file: %v", err)
	}
	defer f.Close()

	return bigram.Load(f, table, policy)
}

package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv  = "MEDIA_OBSERVATORY_CONFIG"
	databaseDSNEnv = "DATABASE_DSN"
	lexiconPathEnv = "MEDIA_OBSERVATORY_KEYWORDS"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Lexicon  LexiconConfig  `yaml:"lexicon"`
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Database DatabaseConfig `yaml:"database"`
	Analysis AnalysisConfig `yaml:"analysis"`
}

// LoggingConfig controls log verbosity and encoding.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// LexiconConfig points to the weighted keyword file.
type LexiconConfig struct {
	Path string `yaml:"path"`
}

// InputConfig describes where cleaned article records come from.
type InputConfig struct {
	Format string `yaml:"format"`
	Path   string `yaml:"path"`
}

// OutputConfig describes where the stats report is written.
type OutputConfig struct {
	StatsPath string `yaml:"statsPath"`
}

// DatabaseConfig describes the optional Postgres score store.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// AnalysisConfig bounds scoring and report shaping.
type AnalysisConfig struct {
	TopArticles     int      `yaml:"topArticles"`
	MinBodyLength   int      `yaml:"minBodyLength"`
	MinYear         int      `yaml:"minYear"`
	MaxYear         int      `yaml:"maxYear"`
	ExcludedDomains []string `yaml:"excludedDomains"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(databaseDSNEnv); v != "" {
		c.Database.DSN = v
	}

	if v := os.Getenv(lexiconPathEnv); v != "" {
		c.Lexicon.Path = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.Format != "" {
		base.Logging.Format = override.Logging.Format
	}

	if override.Lexicon.Path != "" {
		base.Lexicon = override.Lexicon
	}

	if override.Input.Format != "" {
		base.Input.Format = override.Input.Format
	}
	if override.Input.Path != "" {
		base.Input.Path = override.Input.Path
	}

	if override.Output.StatsPath != "" {
		base.Output = override.Output
	}

	if override.Database.DSN != "" {
		base.Database = override.Database
	}

	// Zero means "not set in the file"; -1 explicitly disables a bound
	// (the scorer ignores non-positive values). An empty excludedDomains
	// list in the file clears the default, a missing key keeps it.
	if override.Analysis.TopArticles != 0 {
		base.Analysis.TopArticles = override.Analysis.TopArticles
	}
	if override.Analysis.MinBodyLength != 0 {
		base.Analysis.MinBodyLength = override.Analysis.MinBodyLength
	}
	if override.Analysis.MinYear != 0 {
		base.Analysis.MinYear = override.Analysis.MinYear
	}
	if override.Analysis.MaxYear != 0 {
		base.Analysis.MaxYear = override.Analysis.MaxYear
	}
	if override.Analysis.ExcludedDomains != nil {
		base.Analysis.ExcludedDomains = override.Analysis.ExcludedDomains
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Lexicon: LexiconConfig{Path: "config/keywords.yml"},
		Input:   InputConfig{Format: "csv", Path: "data/articles_clean.csv"},
		Output:  OutputConfig{StatsPath: "data/stats_daily.json"},
		Analysis: AnalysisConfig{
			TopArticles:     10,
			MinBodyLength:   100,
			MinYear:         2000,
			MaxYear:         2025,
			ExcludedDomains: []string{"franceculture.fr"},
		},
	}
}

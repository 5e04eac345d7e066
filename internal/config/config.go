// Package config holds the run-wide configuration: where to read events,
// where to write pages, which front-matter dialect to emit and how to
// rewrite links. A Config is resolved once per run and then treated as
// read-only.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/ctfpress/internal/foundation/errors"
	"git.home.luguber.info/inful/ctfpress/internal/frontmatter"
)

const (
	DefaultInput   = "in"
	DefaultOutput  = "out"
	DefaultDialect = frontmatter.Zola
)

// Config represents the run configuration.
type Config struct {
	Input   string `yaml:"input"`
	Output  string `yaml:"output"`
	Dialect string `yaml:"dialect"`
	// RewritePrefix is nil when root-relative links are left untouched.
	RewritePrefix *string       `yaml:"rewrite_prefix,omitempty"`
	Authors       []string      `yaml:"authors,omitempty"`
	Logging       LoggingConfig `yaml:"logging"`
	MetricsFile   string        `yaml:"metrics_file,omitempty"`
	ReportFile    string        `yaml:"report_file,omitempty"`
}

// LoggingConfig controls the default slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// Default returns the configuration used when nothing else is specified.
func Default() Config {
	return Config{
		Input:   DefaultInput,
		Output:  DefaultOutput,
		Dialect: string(DefaultDialect),
		Logging: LoggingConfig{
			Level:  string(LogLevelInfo),
			Format: string(LogFormatText),
		},
	}
}

// Load reads a YAML configuration file on top of the defaults. Environment
// variables referenced as $VAR or ${VAR} are expanded before decoding, after
// any .env files have been loaded.
func Load(configPath string) (Config, error) {
	cfg := Default()
	LoadEnvFiles()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, ferrors.ConfigError("configuration file not found").
				WithContext("path", configPath).
				Build()
		}
		return cfg, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to read config file").
			WithContext("path", configPath).
			Build()
	}

	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return cfg, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to unmarshal config").
			WithContext("path", configPath).
			Build()
	}
	return cfg, nil
}

// DialectValue returns the parsed dialect. Call Validate first.
func (c Config) DialectValue() frontmatter.Dialect {
	d, err := frontmatter.ParseDialect(c.Dialect)
	if err != nil {
		return DefaultDialect
	}
	return d
}

// Prefix returns the rewrite prefix, or "" when links are not rewritten.
func (c Config) Prefix() string {
	if c.RewritePrefix == nil {
		return ""
	}
	return *c.RewritePrefix
}

// SetPrefix marks links for rewriting with p.
func (c *Config) SetPrefix(p string) {
	c.RewritePrefix = &p
}

// AuthorList returns a copy of the author list.
func (c Config) AuthorList() []string {
	out := make([]string, len(c.Authors))
	copy(out, c.Authors)
	return out
}

package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/ctfpress/internal/config"
)

// Global carries state shared by all subcommands.
type Global struct {
	// Out receives user-facing command output.
	Out io.Writer
}

func (g *Global) out() io.Writer {
	if g == nil || g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

// CLI definition & global flags.
type CLI struct {
	Config    string           `short:"c" help:"Configuration file path (optional)" env:"CTFPRESS_CONFIG"`
	Verbose   bool             `short:"v" help:"Enable verbose logging"`
	LogFormat string           `name:"log-format" help:"Log format (text|json); overrides logging.format" env:"CTFPRESS_LOG_FORMAT"`
	Version   kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build    BuildCmd    `cmd:"" default:"withargs" help:"Convert every event folder into site pages (default)"`
	Watch    WatchCmd    `cmd:"" help:"Convert, then reconvert whenever the input changes"`
	Discover DiscoverCmd `cmd:"" help:"List events, challenges and assets without writing output"`
	Init     InitCmd     `cmd:"" help:"Write an example configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	slog.SetDefault(config.NewLogger(os.Stderr, config.LoggingConfig{Format: c.LogFormat}, c.Verbose))
	return nil
}

// RunFlags are the run configuration flags shared by build, watch and discover.
// Unset flags fall back to the environment, then the config file, then defaults.
type RunFlags struct {
	Input         string   `short:"i" help:"Input folder holding one folder per event" env:"CTFPRESS_INPUT"`
	Output        string   `short:"o" help:"Output content folder" env:"CTFPRESS_OUTPUT"`
	Dialect       string   `short:"t" name:"type" help:"Front matter dialect (zola|hugo)" env:"CTFPRESS_DIALECT"`
	RewritePrefix *string  `short:"r" name:"rewrite-prefix" help:"Prefix inserted into root-relative links" env:"CTFPRESS_REWRITE_PREFIX"`
	Authors       []string `short:"a" name:"author" sep:"none" help:"Author name (repeatable; commas are kept)" env:"CTFPRESS_AUTHORS"`
	MetricsFile   string   `name:"metrics-file" help:"Write Prometheus textfile metrics to this path" env:"CTFPRESS_METRICS_FILE"`
	Report        string   `name:"report" help:"Write a JSON run report to this path" env:"CTFPRESS_REPORT"`
}

// Resolve merges the config file (if any) with the flags and validates the result.
// It also reinstalls the default logger when the file configures logging.
func (f RunFlags) Resolve(root *CLI) (config.Config, error) {
	cfg := config.Default()
	if root.Config != "" {
		loaded, err := config.Load(root.Config)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
		lc := cfg.Logging
		if root.LogFormat != "" {
			lc.Format = root.LogFormat
		}
		slog.SetDefault(config.NewLogger(os.Stderr, lc, root.Verbose))
	}

	f.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (f RunFlags) apply(cfg *config.Config) {
	if f.Input != "" {
		cfg.Input = f.Input
	}
	if f.Output != "" {
		cfg.Output = f.Output
	}
	if f.Dialect != "" {
		cfg.Dialect = f.Dialect
	}
	if f.RewritePrefix != nil {
		cfg.SetPrefix(*f.RewritePrefix)
	}
	if len(f.Authors) > 0 {
		cfg.Authors = append([]string(nil), f.Authors...)
	}
	if f.MetricsFile != "" {
		cfg.MetricsFile = f.MetricsFile
	}
	if f.Report != "" {
		cfg.ReportFile = f.Report
	}
}

// Package commands provides CLI command handlers for mdbind.
package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/mdbind"
	"github.com/erraggy/mdbind/internal/cliutil"
	"github.com/erraggy/mdbind/internal/config"
	"github.com/erraggy/mdbind/parser"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// stdinSourceName labels stdin input in issues and generated headers.
const stdinSourceName = "stdin.md"

// CommonFlags are accepted by every command.
type CommonFlags struct {
	ConfigPath string
	Verbose    bool
	LogFormat  string
}

// addCommonFlags registers the shared flags on fs.
func addCommonFlags(fs *flag.FlagSet, flags *CommonFlags) {
	fs.StringVar(&flags.ConfigPath, "config", "", "config file (default: ./mdbind.yaml if present)")
	fs.BoolVar(&flags.Verbose, "verbose", false, "enable debug logging on stderr")
	fs.StringVar(&flags.LogFormat, "log-format", "", "log format: text (slog) or json (zap)")
}

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	cliutil.Writef(os.Stdout, "%s\n", bytes)
	return nil
}

// FormatSourcePath returns a display-friendly path for the reference document.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatSourcePath(sourcePath string) string {
	if sourcePath == StdinFilePath {
		return "<stdin>"
	}
	return sourcePath
}

// loadEnvironment resolves configuration and builds the logger. Flag values
// take precedence over the config file and environment. The returned
// function flushes the logger.
func loadEnvironment(fs *flag.FlagSet, flags *CommonFlags) (*config.Config, parser.Logger, func(), error) {
	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return nil, nil, nil, err
	}
	if flagWasSet(fs, "verbose") {
		cfg.Verbose = flags.Verbose
	}
	if flagWasSet(fs, "log-format") {
		if err := ValidateLogFormat(flags.LogFormat); err != nil {
			return nil, nil, nil, err
		}
		cfg.LogFormat = flags.LogFormat
	}

	for _, w := range cfg.Warnings {
		cliutil.Warnf(os.Stderr, "%s", w)
	}
	logger, flush := newLogger(os.Stderr, cfg.LogFormat, cfg.Verbose)
	return cfg, logger, flush, nil
}

// ValidateLogFormat validates the --log-format value.
func ValidateLogFormat(format string) error {
	if format != config.LogFormatText && format != config.LogFormatJSON {
		return fmt.Errorf("invalid log format '%s'. Valid formats: %s, %s", format, config.LogFormatText, config.LogFormatJSON)
	}
	return nil
}

// newLogger builds the structured logger for a command. Commands print
// issues themselves, so only errors are logged unless verbose is set.
func newLogger(w io.Writer, format string, verbose bool) (parser.Logger, func()) {
	if format == config.LogFormatJSON {
		level := zapcore.ErrorLevel
		if verbose {
			level = zapcore.DebugLevel
		}
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(w),
			level,
		)
		adapter := parser.NewZapAdapter(zap.New(core))
		return adapter, func() { _ = adapter.Sync() }
	}

	level := slog.LevelError
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return parser.NewSlogAdapter(slog.New(handler)), func() {}
}

// flagWasSet reports whether any of names was given on the command line.
func flagWasSet(fs *flag.FlagSet, names ...string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		for _, name := range names {
			if f.Name == name {
				set = true
			}
		}
	})
	return set
}

// parseSource parses a file path, URL, or stdin.
func parseSource(source string, cfg *config.Config, logger parser.Logger) (*parser.ParseResult, error) {
	opts := []parser.Option{parser.WithLogger(logger)}
	if cfg.UserAgent != "" {
		opts = append(opts, parser.WithUserAgent(cfg.UserAgent))
	}
	if source == StdinFilePath {
		opts = append(opts, parser.WithReader(os.Stdin), parser.WithSourceName(stdinSourceName))
	} else {
		opts = append(opts, parser.WithFilePath(source))
	}
	return parser.ParseWithOptions(opts...)
}

// blockFailures aggregates rejections other than request-body exclusions.
func blockFailures(result *parser.ParseResult) error {
	var merr *multierror.Error
	for _, rej := range result.Rejections {
		if rej.Reason != parser.ReasonUnsupportedRequestBody {
			merr = multierror.Append(merr, rej)
		}
	}
	return merr.ErrorOrNil()
}

// OutputSourceHeader outputs the common document header to stderr.
func OutputSourceHeader(sourcePath string) {
	cliutil.Writef(os.Stderr, "mdbind version: %s\n", mdbind.Version())
	cliutil.Writef(os.Stderr, "Source: %s\n", FormatSourcePath(sourcePath))
}

// OutputParseStats outputs the common parse statistics to stderr.
func OutputParseStats(result *parser.ParseResult) {
	cliutil.Writef(os.Stderr, "Source Size: %d bytes\n", result.SourceSize)
	cliutil.Writef(os.Stderr, "Blocks: %d\n", result.Stats.Blocks)
	cliutil.Writef(os.Stderr, "Endpoints: %d\n", result.Stats.Endpoints)
	cliutil.Writef(os.Stderr, "Rejected: %d\n", result.Stats.Rejected)
	if result.Stats.Duplicates > 0 {
		cliutil.Writef(os.Stderr, "Duplicates replaced: %d\n", result.Stats.Duplicates)
	}
	cliutil.Writef(os.Stderr, "Load Time: %v\n", result.LoadTime)
}

// OutputIssues writes one line per issue to stderr.
func OutputIssues(list []parser.Issue) {
	for _, issue := range list {
		cliutil.Writef(os.Stderr, "  %s\n", issue.String())
	}
}

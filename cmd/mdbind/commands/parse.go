package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/mdbind/internal/cliutil"
)

// ParseFlags contains flags for the parse command
type ParseFlags struct {
	Format string
	Quiet  bool
	Strict bool
	Common CommonFlags
}

// SetupParseFlags creates and configures a FlagSet for the parse command.
// Returns the FlagSet and a ParseFlags struct with bound flag variables.
func SetupParseFlags() (*flag.FlagSet, *ParseFlags) {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	flags := &ParseFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Format, "f", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the catalog, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the catalog, no diagnostic messages")
	fs.BoolVar(&flags.Strict, "strict", false, "fail if any block is malformed or has an unparsable response")
	addCommonFlags(fs, &flags.Common)

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: mdbind parse [flags] <file|url|->\n\n")
		cliutil.Writef(output, "Parse a markdown API reference and output its endpoint catalog.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  mdbind parse http-api.md\n")
		cliutil.Writef(output, "  mdbind parse --format yaml https://docs.ipfs.tech/reference/kubo/rpc/index.md\n")
		cliutil.Writef(output, "  cat http-api.md | mdbind parse -q --format json -\n")
		cliutil.Writef(output, "\nOutput:\n")
		cliutil.Writef(output, "  text  one line per endpoint: path, argument count, response class\n")
		cliutil.Writef(output, "  json  the full parse result (catalog, rejections, stats)\n")
		cliutil.Writef(output, "  yaml  same as json, as YAML\n")
		cliutil.Writef(output, "\nExit Codes:\n")
		cliutil.Writef(output, "  0    Parsing successful (rejected endpoints are reported, not fatal)\n")
		cliutil.Writef(output, "  1    The document could not be read, or --strict and a block failed\n")
	}

	return fs, flags
}

// HandleParse executes the parse command
func HandleParse(args []string) error {
	fs, flags := SetupParseFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("parse command requires exactly one file path, URL, or '-' for stdin")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	cfg, logger, flush, err := loadEnvironment(fs, &flags.Common)
	if err != nil {
		return err
	}
	defer flush()

	sourcePath := fs.Arg(0)
	result, err := parseSource(sourcePath, cfg, logger)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", FormatSourcePath(sourcePath), err)
	}

	if !flags.Quiet {
		OutputSourceHeader(sourcePath)
		OutputParseStats(result)
		if result.HasRejections() {
			cliutil.Writef(os.Stderr, "\n")
			cliutil.Heading(os.Stderr, "Rejections", len(result.Rejections))
			OutputIssues(result.Issues())
		}
		cliutil.Writef(os.Stderr, "\n")
	}

	if flags.Format == FormatText {
		for _, ep := range result.Catalog.Endpoints() {
			cliutil.Writef(os.Stdout, "%s (%d args, %s)\n", ep.Path, len(ep.Arguments), ep.Response.ContentClass)
		}
	} else if err := OutputStructured(result, flags.Format); err != nil {
		return err
	}

	if flags.Strict || (cfg.Strict && !flagWasSet(fs, "strict")) {
		if err := blockFailures(result); err != nil {
			return fmt.Errorf("strict mode: %w", err)
		}
	}
	return nil
}

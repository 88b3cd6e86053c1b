package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/erraggy/mdbind/generator"
	"github.com/erraggy/mdbind/internal/cliutil"
)

// GenerateFlags contains flags for the generate command
type GenerateFlags struct {
	Output        string
	Target        string
	PackageName   string
	InterfaceName string
	BaseURL       string
	Strict        bool
	NoInfo        bool
	Quiet         bool
	Common        CommonFlags
}

// SetupGenerateFlags creates and configures a FlagSet for the generate command.
// Returns the FlagSet and a GenerateFlags struct with bound flag variables.
func SetupGenerateFlags() (*flag.FlagSet, *GenerateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &GenerateFlags{}

	fs.StringVar(&flags.Output, "o", "", "output directory (default: write the generated source to stdout)")
	fs.StringVar(&flags.Output, "output", "", "output directory (default: write the generated source to stdout)")
	fs.StringVar(&flags.Target, "t", "go", "target calling convention: go or kotlin")
	fs.StringVar(&flags.Target, "target", "go", "target calling convention: go or kotlin")
	fs.StringVar(&flags.PackageName, "p", "api", "package clause of the generated file")
	fs.StringVar(&flags.PackageName, "package", "api", "package clause of the generated file")
	fs.StringVar(&flags.InterfaceName, "interface", "", "client struct or interface name (default: Client for go, IPFS for kotlin)")
	fs.StringVar(&flags.BaseURL, "base-url", generator.DefaultBaseURL, "default server address of generated Go clients")
	fs.BoolVar(&flags.Strict, "strict", false, "fail if any endpoint is skipped for a reason other than a request body")
	fs.BoolVar(&flags.NoInfo, "no-info", false, "suppress informational messages (request-body exclusions)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: no diagnostic messages")
	addCommonFlags(fs, &flags.Common)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: mdbind generate [flags] <file|url|->\n\n")
		cliutil.Writef(fs.Output(), "Generate client bindings from a markdown API reference.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  mdbind generate http-api.md > client.go\n")
		cliutil.Writef(fs.Output(), "  mdbind generate -p kubo -o ./kubo http-api.md\n")
		cliutil.Writef(fs.Output(), "  mdbind generate --target kotlin -p io.ipfs.api -o ./src http-api.md\n")
		cliutil.Writef(fs.Output(), "  cat http-api.md | mdbind generate -q -\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Endpoints with a request body are skipped and reported on stderr\n")
		cliutil.Writef(fs.Output(), "  - An argument type other than string, bool, int, int64, uint64 or array aborts generation\n")
		cliutil.Writef(fs.Output(), "  - Flag defaults can be set in mdbind.yaml or with MDBIND_* environment variables\n")
	}

	return fs, flags
}

// HandleGenerate executes the generate command
func HandleGenerate(args []string) error {
	fs, flags := SetupGenerateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("generate command requires exactly one file path, URL, or '-' for stdin")
	}

	cfg, logger, flush, err := loadEnvironment(fs, &flags.Common)
	if err != nil {
		return err
	}
	defer flush()

	// Config values fill in flags that were not given.
	if !flagWasSet(fs, "t", "target") {
		flags.Target = cfg.Target
	}
	if !flagWasSet(fs, "p", "package") {
		flags.PackageName = cfg.Package
	}
	if !flagWasSet(fs, "interface") {
		flags.InterfaceName = cfg.Interface
	}
	if !flagWasSet(fs, "base-url") {
		flags.BaseURL = cfg.BaseURL
	}
	if !flagWasSet(fs, "strict") {
		flags.Strict = cfg.Strict
	}
	if !flagWasSet(fs, "no-info") {
		flags.NoInfo = !cfg.IncludeInfo
	}

	target, err := generator.ParseTarget(flags.Target)
	if err != nil {
		return err
	}

	sourcePath := fs.Arg(0)
	startTime := time.Now()

	parseResult, err := parseSource(sourcePath, cfg, logger)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", FormatSourcePath(sourcePath), err)
	}

	result, err := generator.GenerateWithOptions(
		generator.WithParsed(*parseResult),
		generator.WithTarget(target),
		generator.WithPackageName(flags.PackageName),
		generator.WithInterfaceName(flags.InterfaceName),
		generator.WithBaseURL(flags.BaseURL),
		generator.WithStrictMode(flags.Strict),
		generator.WithIncludeInfo(!flags.NoInfo),
		generator.WithLogger(logger),
	)
	if result != nil && !flags.Quiet {
		cliutil.Heading(os.Stderr, "Issues", len(result.Issues))
		OutputIssues(result.Issues)
	}
	if err != nil {
		return fmt.Errorf("generating bindings: %w", err)
	}

	if flags.Output == "" {
		cliutil.Writef(os.Stdout, "%s", result.Output)
	} else {
		if err := result.WriteFiles(flags.Output); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	if !flags.Quiet {
		cliutil.Writef(os.Stderr, "\nGenerated %d %s bindings from %s in %v\n",
			len(result.Bindings), result.Target, FormatSourcePath(sourcePath), time.Since(startTime))
		if flags.Output != "" {
			for _, f := range result.Files {
				cliutil.Writef(os.Stderr, "  %s\n", filepath.Join(flags.Output, f.Name))
			}
		}
	}

	return nil
}

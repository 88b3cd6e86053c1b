package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/erraggy/mdbind/internal/cliutil"
	"github.com/erraggy/mdbind/internal/mcpserver"
	"github.com/erraggy/mdbind/parser"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() (*flag.FlagSet, *CommonFlags) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	flags := &CommonFlags{}
	addCommonFlags(fs, flags)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: mdbind mcp [flags]\n\n")
		cliutil.Writef(fs.Output(), "Run an MCP server over stdio exposing the parse and generate tools.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nDefaults for the tools come from mdbind.yaml and MDBIND_* environment variables.\n")
	}

	return fs, flags
}

// HandleMCP executes the mcp command. It blocks until the client disconnects
// or the process is interrupted.
func HandleMCP(args []string) error {
	fs, flags := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	cfg, _, flush, err := loadEnvironment(fs, flags)
	if err != nil {
		return err
	}
	defer flush()

	// stdout carries the protocol; logs always go to stderr via slog.
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := parser.NewSlogAdapter(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return mcpserver.Run(ctx, cfg, logger)
}

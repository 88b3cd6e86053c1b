package main

import (
	"os"

	"github.com/erraggy/mdbind"
	"github.com/erraggy/mdbind/cmd/mdbind/commands"
	"github.com/erraggy/mdbind/internal/cliutil"
	"github.com/erraggy/mdbind/internal/stringutil"
)

// commandNames lists the commands suggestCommand can propose.
var commandNames = []string{"parse", "generate", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	var err error
	switch command {
	case "version", "-v", "--version":
		cliutil.Writef(os.Stdout, "mdbind v%s\n", mdbind.Version())
		if len(os.Args) > 2 && (os.Args[2] == "-l" || os.Args[2] == "--long") {
			cliutil.Writef(os.Stdout, "%s\n", mdbind.BuildInfo())
		}
	case "help", "-h", "--help":
		printUsage()
	case "parse":
		err = commands.HandleParse(os.Args[2:])
	case "generate":
		err = commands.HandleGenerate(os.Args[2:])
	case "mcp":
		err = commands.HandleMCP(os.Args[2:])
	default:
		cliutil.Writef(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			cliutil.Writef(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		cliutil.Writef(os.Stderr, "\n")
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		cliutil.Writef(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the command closest to a mistyped one, or "".
func suggestCommand(input string) string {
	return stringutil.Closest(input, commandNames, 2)
}

func printUsage() {
	usage := `mdbind - generate client bindings from markdown HTTP RPC API references

Usage:
  mdbind <command> [flags] [args]

Commands:
  parse       Parse a reference document and print its endpoint catalog
  generate    Generate Go or Kotlin (Retrofit) bindings
  mcp         Run an MCP server over stdio
  version     Print the version (--long for build details)
  help        Show this help

Common flags:
  --config <file>      config file (default: ./mdbind.yaml if present)
  --verbose            enable debug logging on stderr
  --log-format <fmt>   text (slog) or json (zap)

Environment:
  MDBIND_TARGET, MDBIND_PACKAGE, MDBIND_STRICT, MDBIND_BASE_URL, MDBIND_LOG_FORMAT,
  MDBIND_USER_AGENT and MDBIND_MAX_INLINE_SIZE set defaults for flags that are not given.

Examples:
  mdbind parse http-api.md
  mdbind generate -p kubo -o ./kubo http-api.md
  mdbind generate --target kotlin -p io.ipfs.api https://docs.ipfs.tech/reference/kubo/rpc/index.md

Run 'mdbind <command> --help' for more information on a command.
`
	cliutil.Writef(os.Stderr, "%s", usage)
}

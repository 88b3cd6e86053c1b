// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes mdbind's parse and generate passes as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/mdbind"
	"github.com/erraggy/mdbind/internal/config"
	"github.com/erraggy/mdbind/parser"
)

const serverInstructions = `mdbind MCP server: parses markdown HTTP RPC API references into endpoint catalogs and generates Go or Kotlin (Retrofit) bindings.

Configuration: defaults come from mdbind.yaml in the working directory or from MDBIND_* environment variables set in your MCP client config.

Key settings:
- MDBIND_TARGET (default: go): default target of the generate tool
- MDBIND_PACKAGE (default: api): default package clause
- MDBIND_BASE_URL (default: http://127.0.0.1:5001): server address baked into Go clients
- MDBIND_STRICT (default: false): fail generation when an endpoint is skipped
- MDBIND_MAX_INLINE_SIZE (default: 10485760): largest inline document accepted, in bytes
- MDBIND_ALLOW_PRIVATE_IPS (default: false): allow url inputs that resolve to private networks

Every call reads its document again; nothing is kept between calls.`

// Limits for the endpoint list of the parse tool.
const (
	defaultLimit = 100
	maxLimit     = 1000
)

// toolset carries the configuration shared by all tool handlers.
type toolset struct {
	cfg    *config.Config
	logger parser.Logger
}

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled. A nil cfg uses config.Default.
func Run(ctx context.Context, cfg *config.Config, logger parser.Logger) error {
	return newServer(cfg, logger).Run(ctx, &mcp.StdioTransport{})
}

func newServer(cfg *config.Config, logger parser.Logger) *mcp.Server {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = parser.NopLogger{}
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "mdbind", Version: mdbind.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server, &toolset{cfg: cfg, logger: logger})
	return server
}

func registerAllTools(server *mcp.Server, ts *toolset) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse",
		Description: "Parse a markdown HTTP RPC API reference into an endpoint catalog. Returns counts, the rejection log (endpoints left out and why), and the endpoint paths in document order. Use full=true to include arguments and response examples; use offset/limit to page through large catalogs.",
	}, ts.handleParse)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Generate client bindings from a markdown HTTP RPC API reference. target is go (a Go client struct, one method per endpoint) or kotlin (a Retrofit interface). Without output_dir the generated source is returned inline; with output_dir a single file is written there. Endpoints with a request body are skipped and reported as info issues. An undocumented argument type aborts generation.",
	}, ts.handleGenerate)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to defaultLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// pathPattern matches absolute filesystem paths in error messages.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

// sanitizeError strips absolute filesystem paths from error messages
// so MCP clients never see the server's directory layout.
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// Package parser turns a markdown HTTP API reference into an ordered catalog
// of endpoint records.
//
// The input is a line-oriented document in the style of the IPFS Kubo RPC
// reference. Each endpoint is a block that opens with a header line such as
// "## /api/v0/bitswap/ledger" and ends with a "---" line. Inside a block,
// "### Arguments", "### Response", "### cURL Example" and "### Request Body"
// headers switch the section being read.
//
// # Quick Start
//
// Parse a file using functional options:
//
//	result, err := parser.ParseWithOptions(
//		parser.WithFilePath("api.md"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, ep := range result.Catalog.Endpoints() {
//		fmt.Println(ep.Path, len(ep.Arguments))
//	}
//
// Parse from a URL:
//
//	result, err := parser.ParseWithOptions(
//		parser.WithFilePath("https://raw.githubusercontent.com/ipfs/ipfs-docs/main/docs/reference/http/api.md"),
//	)
//
// Or create a reusable Parser instance:
//
//	p := parser.New()
//	p.Logger = parser.NewSlogAdapter(slog.Default())
//	result, _ := p.Parse("api.md")
//
// # Options
//
//	WithFilePath(path)      read a local file, or fetch an http(s) URL
//	WithReader(r)           read from an io.Reader
//	WithBytes(data)         read from a byte slice
//	WithSourceName(name)    name reported for reader and byte inputs
//	WithUserAgent(ua)       User-Agent header for URL fetches
//	WithHTTPClient(client)  client used for URL fetches
//	WithLogger(l)           structured logger for the parse pass
//
// Exactly one of WithFilePath, WithReader or WithBytes must be given.
//
// # Rejections
//
// A bad block never aborts the pass. Blocks that end before their
// terminator, blocks whose response has neither a JSON example nor the
// "text/plain response body" notice, and blocks that declare a request body
// are recorded in ParseResult.Rejections with their path and reason, and
// scanning continues with the next header. Only a read failure of the source
// itself is returned as an error.
//
// # Duplicates
//
// When the same path appears more than once, the catalog keeps the last
// successful parse at the position of the first one.
//
// # Immutability
//
// Endpoint records are built once per parse pass. Callers should treat the
// catalog and its records as read-only.
package parser

// Package mdbind turns a markdown HTTP API reference into typed client
// bindings.
//
// A reference document describes each endpoint in a block that opens with a
// "## /api/..." header and closes with a "---" line. Between the two, fixed
// "### Arguments", "### Response", "### cURL Example" and "### Request Body"
// headings divide the block into sections. mdbind reads such a document in a
// single pass and produces two things:
//
//   - parser: a Catalog of endpoint records, ordered by first appearance,
//     plus a rejection log naming every block that was left out and why
//   - generator: one binding per catalogued endpoint, each a typed method
//     signature with a documentation comment, emitted as Go or Kotlin
//
// # Installation
//
//	go get github.com/erraggy/mdbind
//
// Or install the CLI:
//
//	go install github.com/erraggy/mdbind/cmd/mdbind@latest
//
// # Quick Start
//
// Parse a reference document:
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("http-api.md"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%d endpoints, %d rejected\n", result.Catalog.Len(), len(result.Rejections))
//
// Generate Go bindings from it:
//
//	gen, err := generator.GenerateWithOptions(
//		generator.WithParsed(*result),
//		generator.WithPackageName("kubo"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := gen.WriteFiles("./kubo"); err != nil {
//		log.Fatal(err)
//	}
//
// # Failure Policy
//
// A block that cannot be parsed affects only that endpoint: it is recorded in
// the rejection log and the scan moves on. An argument type the generator
// cannot map aborts the whole generation run, because a guessed type would be
// wrong for every caller. Blocks with a request body are skipped as an
// expected exclusion.
//
// # CLI
//
//	mdbind parse http-api.md
//	mdbind generate --target kotlin -o ./out http-api.md
//	mdbind mcp
//
// See the parser and generator packages for details.
package mdbind

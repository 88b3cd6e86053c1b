// Package testutil provides markdown fixtures and helpers for unit tests.
//
// Go raw strings cannot contain backticks, so fixtures are written with "~"
// in their place and expanded by Markdown.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Markdown expands "~" to "`" in s.
func Markdown(s string) string {
	return strings.ReplaceAll(s, "~", "`")
}

// BitswapLedgerBlock is a well-formed block with one required argument and
// a JSON response example.
var BitswapLedgerBlock = Markdown(`## /api/v0/bitswap/ledger

Show the current ledger for a peer.

### Arguments

- ~arg~ [string]: The PeerID (B58) of the ledger to inspect. Required: **yes**.

### Response

On success, the call to this endpoint will return with 200 and the following body:

~~~json
{
  "Exchanged": "<uint64>",
  "Peer": "<string>",
  "Recv": "<uint64>",
  "Sent": "<uint64>",
  "Value": "<float64>"
}

~~~

### cURL Example

~curl -X POST "http://127.0.0.1:5001/api/v0/bitswap/ledger?arg=<arg>"~

---
`)

// BitswapReprovideBlock is a block without arguments whose response is a
// text/plain body.
var BitswapReprovideBlock = Markdown(`## /api/v0/bitswap/reprovide

Trigger reprovider.

### Arguments

This endpoint takes no arguments.

### Response

On success, the call to this endpoint will return with 200 and the following body:

This endpoint returns a ~text/plain~ response body.

### cURL Example

~curl -X POST "http://127.0.0.1:5001/api/v0/bitswap/reprovide"~

---
`)

// BitswapStatBlock has two optional boolean arguments.
var BitswapStatBlock = Markdown(`## /api/v0/bitswap/stat

Show some diagnostic information on the bitswap agent.

### Arguments

- ~verbose~ [bool]: Print extra information. Required: no.
- ~human~ [bool]: Print sizes in human readable format (e.g., 1K 234M 2G). Required: no.

### Response

On success, the call to this endpoint will return with 200 and the following body:

~~~json
{
  "BlocksReceived": "<uint64>",
  "Peers": [
    "<string>"
  ],
  "ProvideBufLen": "<int>"
}

~~~

### cURL Example

~curl -X POST "http://127.0.0.1:5001/api/v0/bitswap/stat?verbose=<value>&human=<value>"~

---
`)

// FilesCpBlock repeats the "arg" wire key for two positional values.
var FilesCpBlock = Markdown(`## /api/v0/files/cp

Add references to IPFS files and directories in MFS (or copy within MFS).

### Arguments

- ~arg~ [string]: Source IPFS or MFS path to copy. Required: **yes**.
- ~arg~ [string]: Destination within MFS. Required: **yes**.
- ~parents~ [bool]: Make parent directories as needed. Required: no.

### Response

On success, the call to this endpoint will return with 200 and the following body:

This endpoint returns a ~text/plain~ response body.

### cURL Example

~curl -X POST "http://127.0.0.1:5001/api/v0/files/cp?arg=<source>&arg=<dest>&parents=<value>"~

---
`)

// FilesReadBlock uses int64 arguments and a text/plain response.
var FilesReadBlock = Markdown(`## /api/v0/files/read

Read a file from MFS.

### Arguments

- ~arg~ [string]: Path to file to be read. Required: **yes**.
- ~offset~ [int64]: Byte offset to begin reading from. Required: no.
- ~count~ [int64]: Maximum number of bytes to read. Required: no.

### Response

On success, the call to this endpoint will return with 200 and the following body:

This endpoint returns a ~text/plain~ response body.

### cURL Example

~curl -X POST "http://127.0.0.1:5001/api/v0/files/read?arg=<path>&offset=<value>&count=<value>"~

---
`)

// FilesWriteBlock declares a request body and must be rejected.
var FilesWriteBlock = Markdown(`## /api/v0/files/write

Append to (modify) a file in MFS.

### Arguments

- ~arg~ [string]: Path to write to. Required: **yes**.
- ~offset~ [int64]: Byte offset to begin writing at. Required: no.

### Request Body

Argument ~data~ is of file type. This endpoint expects one or several files (depending on the command) in the body of the request as 'multipart/form-data'.

### Response

On success, the call to this endpoint will return with 200 and the following body:

This endpoint returns a ~text/plain~ response body.

### cURL Example

~curl -X POST -F file=@myfile "http://127.0.0.1:5001/api/v0/files/write?arg=<path>"~

---
`)

// PinRemoteAddBlock has a three-segment route and mixed argument types.
var PinRemoteAddBlock = Markdown(`## /api/v0/pin/remote/add

Pin object to remote pinning service.

### Arguments

- ~arg~ [string]: CID or Path to be pinned. Required: **yes**.
- ~service~ [string]: Name of the remote pinning service to use (mandatory). Required: no.
- ~name~ [string]: An optional name for the pin. Required: no.
- ~background~ [bool]: Add to the queue on the remote service and return immediately (does not wait for pinned status). Default: "false". Required: no.

### Response

On success, the call to this endpoint will return with 200 and the following body:

~~~json
{
  "Cid": "<string>",
  "Name": "<string>",
  "Status": "<string>"
}

~~~

### cURL Example

~curl -X POST "http://127.0.0.1:5001/api/v0/pin/remote/add?arg=<ipfs-path>"~

---
`)

// DiagCmdsSetTimeBlock has a hyphenated route segment and a uint64 argument
// written in angle brackets.
var DiagCmdsSetTimeBlock = Markdown(`## /api/v0/diag/cmds/set-time

Set how long to keep inactive requests in the log.

### Arguments

- ~arg~ [string]: Time to keep inactive requests in log. Required: **yes**.
- ~limit~ [<uint64>]: Maximum number of entries. Required: no.

### Response

On success, the call to this endpoint will return with 200 and the following body:

This endpoint returns a ~text/plain~ response body.

### cURL Example

~curl -X POST "http://127.0.0.1:5001/api/v0/diag/cmds/set-time?arg=<time>"~

---
`)

// SwarmPeeringAddBlock has an array argument.
var SwarmPeeringAddBlock = Markdown(`## /api/v0/swarm/peering/add

Add peers into the peering subsystem.

### Arguments

- ~arg~ [array]: address of peer to add into the peering subsystem Required: **yes**.

### Response

On success, the call to this endpoint will return with 200 and the following body:

~~~json
{
  "ID": "<peer-id>",
  "Status": "<string>"
}

~~~

### cURL Example

~curl -X POST "http://127.0.0.1:5001/api/v0/swarm/peering/add?arg=<address>"~

---
`)

// UnparsableResponseBlock has a response with neither a JSON example nor
// the text/plain notice.
var UnparsableResponseBlock = Markdown(`## /api/v0/broken/response

A block whose response cannot be classified.

### Response

On success, the call to this endpoint will return with 200.

---
`)

// FloatArgumentBlock declares an argument type with no generator mapping.
var FloatArgumentBlock = Markdown(`## /api/v0/stats/ratio

Report a ratio.

### Arguments

- ~ratio~ [float64]: The ratio to apply. Required: **yes**.

### Response

On success, the call to this endpoint will return with 200 and the following body:

~~~json
{
  "Ratio": "<float64>"
}

~~~

---
`)

// DocumentPreamble is the free text that precedes the first endpoint block.
const DocumentPreamble = `# HTTP API reference

Generated on 2022-06-01, from go-ipfs v0.13.0.

When a go-ipfs node is running as a daemon, it exposes an HTTP RPC API.

## Getting started

### Alignment with CLI Commands

Every command usable from the CLI is also available through the HTTP RPC API.

---

`

// SampleDocument is a reference document with a preamble, eight catalogued
// endpoints and one request-body endpoint, in that order:
// bitswap/ledger, bitswap/reprovide, bitswap/stat, files/cp, files/read,
// files/write (rejected), pin/remote/add, diag/cmds/set-time, swarm/peering/add.
func SampleDocument() string {
	return DocumentPreamble + strings.Join([]string{
		BitswapLedgerBlock,
		BitswapReprovideBlock,
		BitswapStatBlock,
		FilesCpBlock,
		FilesReadBlock,
		FilesWriteBlock,
		PinRemoteAddBlock,
		DiagCmdsSetTimeBlock,
		SwarmPeeringAddBlock,
	}, "\n")
}

// Truncate removes the final terminator line from a block.
func Truncate(block string) string {
	idx := strings.LastIndex(block, "\n---")
	if idx < 0 {
		return block
	}
	return block[:idx+1]
}

// WriteTempMarkdown writes content to a temporary .md file and returns its path.
// The file is cleaned up when the test completes (via t.TempDir).
func WriteTempMarkdown(t *testing.T, content string) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), "api.md")
	if err := os.WriteFile(tmpFile, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write temporary markdown file: %v", err)
	}
	return tmpFile
}

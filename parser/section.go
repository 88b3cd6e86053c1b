package parser

import "strings"

// Markers recognized in the source document. They are matched verbatim
// against whole lines; no trimming or pattern matching is applied.
const (
	// EndpointHeaderPrefix starts the header line of every endpoint block.
	EndpointHeaderPrefix = "## /api/"
	// MarkerArguments opens the argument list.
	MarkerArguments = "### Arguments"
	// MarkerResponse opens the response description and example.
	MarkerResponse = "### Response"
	// MarkerCurlExample opens the cURL example, which is skipped.
	MarkerCurlExample = "### cURL Example"
	// MarkerRequestBody opens a request body section.
	MarkerRequestBody = "### Request Body"
	// MarkerEnd terminates an endpoint block.
	MarkerEnd = "---"
)

// RequiredMarker is the substring that marks an argument as required.
const RequiredMarker = "Required: **yes**"

// RawBodySentinel is the phrase that marks a response as an opaque
// text/plain body. Backticks around "text/plain" are ignored when matching.
const RawBodySentinel = "text/plain response body"

// Mode is the section of an endpoint block the scanner is in.
type Mode int

const (
	// ModeSkip is the initial mode; free text is ignored.
	ModeSkip Mode = iota
	// ModeArguments reads argument definitions.
	ModeArguments
	// ModeResponse buffers response text.
	ModeResponse
	// ModeCurlExample consumes the cURL example without interpreting it.
	ModeCurlExample
	// ModeRequestBody marks the endpoint as unsupported.
	ModeRequestBody
	// ModeDone ends the block.
	ModeDone
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeSkip:
		return "skip"
	case ModeArguments:
		return "arguments"
	case ModeResponse:
		return "response"
	case ModeCurlExample:
		return "curl-example"
	case ModeRequestBody:
		return "request-body"
	case ModeDone:
		return "done"
	default:
		return "unknown"
	}
}

// markerModes maps each marker line to the mode it selects.
var markerModes = map[string]Mode{
	MarkerArguments:   ModeArguments,
	MarkerResponse:    ModeResponse,
	MarkerCurlExample: ModeCurlExample,
	MarkerRequestBody: ModeRequestBody,
	MarkerEnd:         ModeDone,
}

// NextMode returns the mode that applies after line has been read in mode
// current. Only a line exactly equal to a marker changes the mode.
func NextMode(line string, current Mode) Mode {
	if next, ok := markerModes[line]; ok {
		return next
	}
	return current
}

// IsMarker reports whether line is one of the section markers.
func IsMarker(line string) bool {
	_, ok := markerModes[line]
	return ok
}

// IsEndpointHeader reports whether line opens an endpoint block.
func IsEndpointHeader(line string) bool {
	return strings.HasPrefix(line, EndpointHeaderPrefix)
}

// hasRawSentinel reports whether s contains the raw-body sentinel.
func hasRawSentinel(s string) bool {
	return strings.Contains(strings.ReplaceAll(s, "`", ""), RawBodySentinel)
}

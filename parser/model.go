package parser

import (
	"fmt"
	"strings"
)

// ContentClass classifies a documented response body.
type ContentClass int

const (
	// ContentStructured is a JSON object or array response.
	ContentStructured ContentClass = iota
	// ContentRaw is an opaque text/plain response body.
	ContentRaw
)

// String returns the class name.
func (c ContentClass) String() string {
	switch c {
	case ContentStructured:
		return "STRUCTURED"
	case ContentRaw:
		return "RAW"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler for JSON and YAML output.
func (c ContentClass) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *ContentClass) UnmarshalText(text []byte) error {
	switch string(text) {
	case "STRUCTURED":
		*c = ContentStructured
	case "RAW":
		*c = ContentRaw
	default:
		return fmt.Errorf("parser: unknown content class %q", string(text))
	}
	return nil
}

// Argument is one declared call parameter.
// Names are not unique within an endpoint: the same wire key may be listed
// several times for repeated positional values, so arguments are identified
// by their index in Endpoint.Arguments.
type Argument struct {
	// Name is the wire-level key sent with the request
	Name string `json:"name" yaml:"name"`
	// DocType is the type token as written (e.g. "string", "bool", "<uint64>")
	DocType string `json:"type" yaml:"type"`
	// Description is the free text after the type, including any required marker
	Description string `json:"description" yaml:"description"`
	// Required is true iff Description contains RequiredMarker
	Required bool `json:"required" yaml:"required"`
}

// newArgument builds an Argument and derives Required from the description.
func newArgument(name, docType, description string) Argument {
	return Argument{
		Name:        name,
		DocType:     docType,
		Description: description,
		Required:    strings.Contains(description, RequiredMarker),
	}
}

// Response is an endpoint's documented response.
type Response struct {
	// Description is the prose around the example
	Description string `json:"description" yaml:"description"`
	// Example is the fenced JSON body, or the raw-body notice for RAW responses
	Example string `json:"example" yaml:"example"`
	// ContentClass is RAW when Example carries the raw-body sentinel
	ContentClass ContentClass `json:"content_class" yaml:"content_class"`
}

// newResponse builds a Response and derives its content class from the example.
func newResponse(description, example string) Response {
	class := ContentStructured
	if hasRawSentinel(example) {
		class = ContentRaw
	}
	return Response{Description: description, Example: example, ContentClass: class}
}

// Endpoint is one API endpoint parsed from a block.
type Endpoint struct {
	// Path is the absolute route, e.g. "/api/v0/pin/remote/add"
	Path string `json:"path" yaml:"path"`
	// Description is the first non-empty line of the block (may be empty)
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// Arguments are in call order
	Arguments []Argument `json:"arguments,omitempty" yaml:"arguments,omitempty"`
	// Response is the documented response
	Response Response `json:"response" yaml:"response"`
	// HasUnsupportedBody is true when the block has a "### Request Body" section
	HasUnsupportedBody bool `json:"has_unsupported_body,omitempty" yaml:"has_unsupported_body,omitempty"`
	// Line is the 1-based line of the block header in the source
	Line int `json:"line,omitempty" yaml:"line,omitempty"`
}

// RequiredArguments returns the number of arguments marked required.
func (e *Endpoint) RequiredArguments() int {
	n := 0
	for _, a := range e.Arguments {
		if a.Required {
			n++
		}
	}
	return n
}

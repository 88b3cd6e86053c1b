package binderrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrMalformedBlock indicates an endpoint block ended before its terminator.
	ErrMalformedBlock = errors.New("malformed block")

	// ErrUnparsableResponse indicates a response section had neither a JSON
	// example nor the raw-body sentinel.
	ErrUnparsableResponse = errors.New("unparsable response")

	// ErrUnsupportedRequestBody marks an endpoint that declares a request body.
	// It is an expected exclusion, never returned as a failure of a run.
	ErrUnsupportedRequestBody = errors.New("unsupported request body")

	// ErrUnsupportedArgumentType indicates an argument type the generator cannot map.
	ErrUnsupportedArgumentType = errors.New("unsupported argument type")

	// ErrSource indicates the markdown source could not be read.
	ErrSource = errors.New("source error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// BlockKind identifies which per-endpoint failure a BlockError describes.
type BlockKind int

const (
	// KindMalformedBlock means the input ended (or the next endpoint header
	// started) before the block's terminating marker.
	KindMalformedBlock BlockKind = iota
	// KindUnparsableResponse means the response section could not be classified.
	KindUnparsableResponse
)

// String returns the reason name used in rejection logs.
func (k BlockKind) String() string {
	switch k {
	case KindMalformedBlock:
		return "MalformedBlock"
	case KindUnparsableResponse:
		return "UnparsableResponse"
	default:
		return "Unknown"
	}
}

// BlockError is a failure local to a single endpoint block.
type BlockError struct {
	// Kind is the failure category
	Kind BlockKind
	// Path is the endpoint path from the block header
	Path string
	// Line is the 1-based line of the block header (0 if unknown)
	Line int
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *BlockError) Error() string {
	msg := "malformed block"
	if e.Kind == KindUnparsableResponse {
		msg = "unparsable response"
	}
	if e.Path != "" {
		msg += " for " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as BlockError has no underlying cause.
func (e *BlockError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error's kind.
func (e *BlockError) Is(target error) bool {
	switch target {
	case ErrMalformedBlock:
		return e.Kind == KindMalformedBlock
	case ErrUnparsableResponse:
		return e.Kind == KindUnparsableResponse
	}
	return false
}

// TypeError reports an argument whose documented type has no mapping.
// It aborts the whole generation run.
type TypeError struct {
	// Path is the endpoint path declaring the argument
	Path string
	// Argument is the argument's wire name
	Argument string
	// Index is the argument's zero-based position in the endpoint
	Index int
	// DocType is the type token as written in the documentation
	DocType string
}

// Error returns a human-readable error message.
func (e *TypeError) Error() string {
	msg := "unsupported argument type"
	if e.DocType != "" {
		msg += fmt.Sprintf(" %q", e.DocType)
	}
	if e.Argument != "" {
		msg += fmt.Sprintf(" for argument %q (index %d)", e.Argument, e.Index)
	}
	if e.Path != "" {
		msg += " in " + e.Path
	}
	return msg
}

// Unwrap returns nil as TypeError has no underlying cause.
func (e *TypeError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *TypeError) Is(target error) bool {
	return target == ErrUnsupportedArgumentType
}

// SourceError represents a failure to read or fetch the markdown source.
type SourceError struct {
	// Source is the file path or URL
	Source string
	// StatusCode is the HTTP status for URL sources (0 otherwise)
	StatusCode int
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *SourceError) Error() string {
	msg := "source error"
	if e.Source != "" {
		msg += " for " + e.Source
	}
	if e.StatusCode > 0 {
		msg += fmt.Sprintf(" (HTTP %d)", e.StatusCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *SourceError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *SourceError) Is(target error) bool {
	return target == ErrSource
}

// ConfigError represents an invalid configuration or input.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
